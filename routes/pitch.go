package routes

import (
	"github.com/AESiR-0/daftar-backend/models"
	"github.com/AESiR-0/daftar-backend/storage"
	"github.com/AESiR-0/daftar-backend/utils"
	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

type CreatePitchInput struct {
	PitchName       string `json:"pitchName" validate:"required,max=255"`
	ScoutID         uint   `json:"scoutID" validate:"required"`
	FounderLanguage string `json:"founderLanguage" validate:"max=50"`
	AskForInvestor  bool   `json:"askForInvestor"`
	DemoLink        string `json:"demoLink" validate:"omitempty,url"`
}

// UpdatePitchInput is a sparse patch: only fields present in the request are
// applied. statusFounder and hasConfirmed are free-form on purpose; there is
// no pitch status machine to enforce.
type UpdatePitchInput struct {
	PitchName       *string `json:"pitchName"`
	FounderLanguage *string `json:"founderLanguage"`
	AskForInvestor  *bool   `json:"askForInvestor"`
	HasConfirmed    *bool   `json:"hasConfirmed"`
	StatusFounder   *string `json:"statusFounder"`
	DemoLink        *string `json:"demoLink"`
}

type PitchTeamInviteInput struct {
	InvitedEmail string `json:"invitedEmail" validate:"required,email"`
	FirstName    string `json:"firstName" validate:"required,max=255"`
	LastName     string `json:"lastName" validate:"required,max=255"`
	Designation  string `json:"designation" validate:"required,max=255"`
	Role         string `json:"role" validate:"required,max=50"`
}

// CreatePitch submits a pitch against a scout and links the creating founder
// as its owner.
func CreatePitch(ctx iris.Context) {
	founderID := utils.ActorID(ctx)

	var input CreatePitchInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !scoutExists(input.ScoutID) {
		utils.CreateNotFound(ctx)
		return
	}

	pitch := models.Pitch{
		ScoutID:         input.ScoutID,
		PitchName:       input.PitchName,
		FounderLanguage: input.FounderLanguage,
		AskForInvestor:  input.AskForInvestor,
		StatusFounder:   models.PitchStatusInbox,
		DemoLink:        input.DemoLink,
	}

	txErr := storage.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&pitch).Error; err != nil {
			return err
		}
		relationship := models.FounderPitchRelationship{
			FounderID: founderID,
			PitchID:   pitch.ID,
		}
		return tx.Create(&relationship).Error
	})
	if txErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(pitch)
}

// GetPitch returns pitch details by ID.
func GetPitch(ctx iris.Context) {
	pitchID := ctx.Params().GetUintDefault("id", 0)
	if pitchID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid pitch ID", ctx)
		return
	}

	var pitch models.Pitch
	res := storage.DB.Where("id = ?", pitchID).Limit(1).Find(&pitch)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if res.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(pitch)
}

// UpdatePitch applies only the fields present in the request.
func UpdatePitch(ctx iris.Context) {
	founderID := utils.ActorID(ctx)
	pitchID := ctx.Params().GetUintDefault("id", 0)
	if pitchID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid pitch ID", ctx)
		return
	}

	var input UpdatePitchInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !utils.FounderOwnsPitch(founderID, pitchID) {
		utils.CreateNotFound(ctx)
		return
	}

	updates := buildPitchUpdates(input)
	if len(updates) > 0 {
		if err := storage.DB.Model(&models.Pitch{}).
			Where("id = ?", pitchID).
			Updates(updates).Error; err != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
	}

	var pitch models.Pitch
	if err := storage.DB.Where("id = ?", pitchID).Limit(1).Find(&pitch).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(pitch)
}

// DeletePitch hard-deletes a pitch the founder owns, along with its
// ownership rows.
func DeletePitch(ctx iris.Context) {
	founderID := utils.ActorID(ctx)
	pitchID := ctx.Params().GetUintDefault("id", 0)
	if pitchID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid pitch ID", ctx)
		return
	}

	if !utils.FounderOwnsPitch(founderID, pitchID) {
		utils.CreateNotFound(ctx)
		return
	}

	txErr := storage.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pitch_id = ?", pitchID).
			Delete(&models.FounderPitchRelationship{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.Pitch{}, pitchID).Error
	})
	if txErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusNoContent)
}

// InviteTeamMember records a pending team invite; one pending invite per
// (pitch, email).
func InviteTeamMember(ctx iris.Context) {
	founderID := utils.ActorID(ctx)
	pitchID := ctx.Params().GetUintDefault("id", 0)
	if pitchID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid pitch ID", ctx)
		return
	}

	var input PitchTeamInviteInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !utils.FounderOwnsPitch(founderID, pitchID) {
		utils.CreateNotFound(ctx)
		return
	}

	var count int64
	storage.DB.Model(&models.PitchTeamInvite{}).
		Where("pitch_id = ? AND invited_email = ? AND status = ?",
			pitchID, input.InvitedEmail, models.InviteStatusPending).
		Count(&count)
	if count > 0 {
		utils.CreateConflict("Invite already sent to this email", ctx)
		return
	}

	invite := models.PitchTeamInvite{
		PitchID:      pitchID,
		InvitedEmail: input.InvitedEmail,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Designation:  input.Designation,
		Role:         input.Role,
		Status:       string(models.InviteStatusPending),
	}
	if err := storage.DB.Create(&invite).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(invite)
}

func buildPitchUpdates(input UpdatePitchInput) map[string]interface{} {
	updates := map[string]interface{}{}
	if input.PitchName != nil {
		updates["pitch_name"] = *input.PitchName
	}
	if input.FounderLanguage != nil {
		updates["founder_language"] = *input.FounderLanguage
	}
	if input.AskForInvestor != nil {
		updates["ask_for_investor"] = *input.AskForInvestor
	}
	if input.HasConfirmed != nil {
		updates["has_confirmed"] = *input.HasConfirmed
	}
	if input.StatusFounder != nil {
		updates["status_founder"] = *input.StatusFounder
	}
	if input.DemoLink != nil {
		updates["demo_link"] = *input.DemoLink
	}
	return updates
}
