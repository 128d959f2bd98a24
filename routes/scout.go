package routes

import (
	"time"

	"github.com/AESiR-0/daftar-backend/models"
	"github.com/AESiR-0/daftar-backend/storage"
	"github.com/AESiR-0/daftar-backend/utils"
	"github.com/kataras/iris/v12"
)

type CreateScoutInput struct {
	DaftarID uint   `json:"daftarID" validate:"required"`
	Name     string `json:"name" validate:"required,max=255"`
	Vision   string `json:"vision"`
}

type ScoutDetailsInput struct {
	Name   *string `json:"name"`
	Vision *string `json:"vision"`
}

type ScoutAudienceInput struct {
	Location  *string `json:"location"`
	Community *string `json:"community"`
	AgeRange  *string `json:"ageRange"`
	Stage     *string `json:"stage"`
	Sector    *string `json:"sector"`
}

type ScoutCollaborationInput struct {
	TeamSize             *int    `json:"teamSize"`
	CollaborationType    *string `json:"collaborationType"`
	CollaborationDetails *string `json:"collaborationDetails"`
}

type ApproveScoutInput struct {
	ApprovedBy uint `json:"approvedBy"`
}

type CreateScoutFAQInput struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

type FounderInPitch struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

type ScoutPitchResponse struct {
	ID              uint             `json:"id"`
	PitchName       string           `json:"pitchName"`
	FounderLanguage string           `json:"founderLanguage"`
	AskForInvestor  bool             `json:"askForInvestor"`
	HasConfirmed    bool             `json:"hasConfirmed"`
	CreatedAt       time.Time        `json:"createdAt"`
	Founders        []FounderInPitch `json:"founders"`
}

// CreateScout creates a scout in draft for a daftar the investor belongs to.
func CreateScout(ctx iris.Context) {
	investorID := utils.ActorID(ctx)

	var input CreateScoutInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	// Membership check doubles as the daftar existence check; both failure
	// modes read the same to the caller.
	if !utils.InvestorIsActiveMember(investorID, input.DaftarID) {
		utils.CreateNotFound(ctx)
		return
	}

	scout := models.Scout{
		DaftarID: input.DaftarID,
		Name:     input.Name,
		Vision:   input.Vision,
		Status:   string(models.ScoutStatusDraft),
	}
	if err := storage.DB.Create(&scout).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(scout)
}

// GetScout returns a scout by ID.
func GetScout(ctx iris.Context) {
	scoutID := ctx.Params().GetUintDefault("id", 0)
	if scoutID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid scout ID", ctx)
		return
	}

	var scout models.Scout
	res := storage.DB.Where("id = ?", scoutID).Limit(1).Find(&scout)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if res.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(scout)
}

// UpdateScoutDetails applies a sparse patch to the scout's name and vision.
func UpdateScoutDetails(ctx iris.Context) {
	var input ScoutDetailsInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Vision != nil {
		updates["vision"] = *input.Vision
	}

	applyScoutUpdates(ctx, updates)
}

// UpdateScoutAudience applies a sparse patch to the audience fields.
func UpdateScoutAudience(ctx iris.Context) {
	var input ScoutAudienceInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	updates := map[string]interface{}{}
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.Community != nil {
		updates["community"] = *input.Community
	}
	if input.AgeRange != nil {
		updates["age_range"] = *input.AgeRange
	}
	if input.Stage != nil {
		updates["stage"] = *input.Stage
	}
	if input.Sector != nil {
		updates["sector"] = *input.Sector
	}

	applyScoutUpdates(ctx, updates)
}

// UpdateScoutCollaboration applies a sparse patch to the collaboration
// fields.
func UpdateScoutCollaboration(ctx iris.Context) {
	var input ScoutCollaborationInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	updates := map[string]interface{}{}
	if input.TeamSize != nil {
		updates["team_size"] = *input.TeamSize
	}
	if input.CollaborationType != nil {
		updates["collaboration_type"] = *input.CollaborationType
	}
	if input.CollaborationDetails != nil {
		updates["collaboration_details"] = *input.CollaborationDetails
	}

	applyScoutUpdates(ctx, updates)
}

// SubmitScout moves a draft scout to pending.
func SubmitScout(ctx iris.Context) {
	transitionScout(ctx, "submit", models.ScoutStatusPending, nil)
}

// ApproveScout moves a pending scout to approved, recording who approved it
// and when. A second approve on the same scout conflicts.
func ApproveScout(ctx iris.Context) {
	var input ApproveScoutInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}
	approvedBy := input.ApprovedBy
	if approvedBy == 0 {
		approvedBy = utils.ActorID(ctx)
	}

	transitionScout(ctx, "approve", models.ScoutStatusApproved, map[string]interface{}{
		"approved_by": approvedBy,
		"approved_at": time.Now(),
	})
}

// RejectScout moves a pending scout to rejected.
func RejectScout(ctx iris.Context) {
	transitionScout(ctx, "reject", models.ScoutStatusRejected, nil)
}

// ArchiveScout moves a scout from any non-archived state to archived.
// Archive is one-way: archiving an archived scout conflicts.
func ArchiveScout(ctx iris.Context) {
	transitionScout(ctx, "archive", models.ScoutStatusArchived, nil)
}

// transitionScout moves a scout to next. The set of admissible current
// statuses comes from the transition table, and the status check and the
// update are one conditional statement so concurrent transitions cannot both
// succeed.
func transitionScout(ctx iris.Context, action string, next models.ScoutStatus, extra map[string]interface{}) {
	scoutID := ctx.Params().GetUintDefault("id", 0)
	if scoutID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid scout ID", ctx)
		return
	}

	if !utils.InvestorCanManageScout(utils.ActorID(ctx), scoutID) {
		utils.CreateNotFound(ctx)
		return
	}

	updates := map[string]interface{}{"status": next}
	for column, value := range extra {
		updates[column] = value
	}

	res := storage.DB.Model(&models.Scout{}).
		Where("id = ? AND status IN ?", scoutID, models.ScoutStatusesAllowing(next)).
		Updates(updates)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if res.RowsAffected == 0 {
		failScoutTransition(ctx, scoutID, action)
		return
	}

	returnScout(ctx, scoutID)
}

// GetScoutPitches lists a scout's pitches grouped with their founders.
func GetScoutPitches(ctx iris.Context) {
	scoutID := ctx.Params().GetUintDefault("id", 0)
	if scoutID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid scout ID", ctx)
		return
	}

	if !scoutExists(scoutID) {
		utils.CreateNotFound(ctx)
		return
	}

	var pitches []models.Pitch
	if err := storage.DB.Where("scout_id = ?", scoutID).
		Order("created_at DESC").
		Find(&pitches).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	responses := make([]ScoutPitchResponse, 0, len(pitches))
	for _, pitch := range pitches {
		var founders []FounderInPitch
		storage.DB.Table("founders").
			Select("founders.id, founders.first_name, founders.last_name, founders.phone").
			Joins("JOIN founder_pitch_relationships fpr ON fpr.founder_id = founders.id").
			Where("fpr.pitch_id = ?", pitch.ID).
			Scan(&founders)
		if founders == nil {
			founders = []FounderInPitch{}
		}

		responses = append(responses, ScoutPitchResponse{
			ID:              pitch.ID,
			PitchName:       pitch.PitchName,
			FounderLanguage: pitch.FounderLanguage,
			AskForInvestor:  pitch.AskForInvestor,
			HasConfirmed:    pitch.HasConfirmed,
			CreatedAt:       pitch.CreatedAt,
			Founders:        founders,
		})
	}

	ctx.JSON(responses)
}

// CreateScoutFAQ adds a question/answer pair to a scout.
func CreateScoutFAQ(ctx iris.Context) {
	scoutID := ctx.Params().GetUintDefault("id", 0)
	if scoutID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid scout ID", ctx)
		return
	}

	var input CreateScoutFAQInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !scoutExists(scoutID) {
		utils.CreateNotFound(ctx)
		return
	}

	faq := models.ScoutFAQ{
		ScoutID:  scoutID,
		Question: input.Question,
		Answer:   input.Answer,
	}
	if err := storage.DB.Create(&faq).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(faq)
}

// ListScoutFAQs returns a scout's FAQ entries.
func ListScoutFAQs(ctx iris.Context) {
	scoutID := ctx.Params().GetUintDefault("id", 0)
	if scoutID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid scout ID", ctx)
		return
	}

	if !scoutExists(scoutID) {
		utils.CreateNotFound(ctx)
		return
	}

	var faqs []models.ScoutFAQ
	if err := storage.DB.Where("scout_id = ?", scoutID).Find(&faqs).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(faqs)
}

func applyScoutUpdates(ctx iris.Context, updates map[string]interface{}) {
	scoutID := ctx.Params().GetUintDefault("id", 0)
	if scoutID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid scout ID", ctx)
		return
	}

	if !utils.InvestorCanManageScout(utils.ActorID(ctx), scoutID) {
		utils.CreateNotFound(ctx)
		return
	}

	if len(updates) > 0 {
		res := storage.DB.Model(&models.Scout{}).
			Where("id = ?", scoutID).
			Updates(updates)
		if res.Error != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		if res.RowsAffected == 0 {
			utils.CreateNotFound(ctx)
			return
		}
	}

	returnScout(ctx, scoutID)
}

// failScoutTransition distinguishes a missing scout from a wrong-state scout
// after a zero-row conditional update.
func failScoutTransition(ctx iris.Context, scoutID uint, action string) {
	var scout models.Scout
	res := storage.DB.Select("status").Where("id = ?", scoutID).Limit(1).Find(&scout)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if res.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}
	utils.CreateConflict("Cannot "+action+" scout with status "+scout.Status, ctx)
}

func returnScout(ctx iris.Context, scoutID uint) {
	var scout models.Scout
	res := storage.DB.Where("id = ?", scoutID).Limit(1).Find(&scout)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if res.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}
	ctx.JSON(scout)
}
