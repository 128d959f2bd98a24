package routes

import (
	"time"

	"github.com/AESiR-0/daftar-backend/models"
	"github.com/AESiR-0/daftar-backend/storage"
	"github.com/AESiR-0/daftar-backend/utils"
	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

type CreateDaftarInput struct {
	Name               string `json:"name" validate:"required,max=255"`
	Type               string `json:"type" validate:"required,max=255"`
	DaftarCode         string `json:"daftarCode" validate:"max=100"`
	Website            string `json:"website" validate:"omitempty,url"`
	Location           string `json:"location" validate:"max=255"`
	BigPicture         string `json:"bigPicture"`
	BillingPlan        string `json:"billingPlan" validate:"max=100"`
	BillingInformation string `json:"billingInformation"`
}

type JoinDaftarInput struct {
	DaftarCode string `json:"daftarCode" validate:"required,max=100"`
}

type AddDaftarInvestorInput struct {
	InvestorID uint   `json:"investorID" validate:"required"`
	Role       string `json:"role" validate:"omitempty,oneof=member admin"`
}

type CreateDaftarInviteInput struct {
	Email string `json:"email" validate:"required,email"`
}

type DaftarInvestorResponse struct {
	ID         uint      `json:"id"`
	InvestorID uint      `json:"investorID"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Role       string    `json:"role"`
	JoinedAt   time.Time `json:"joinedAt"`
	IsActive   bool      `json:"isActive"`
}

// CreateDaftar creates a daftar and makes the creating investor its admin
// member. The join code is generated when the client does not supply one.
func CreateDaftar(ctx iris.Context) {
	investorID := utils.ActorID(ctx)

	var input CreateDaftarInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var investor models.Investor
	res := storage.DB.Where("id = ?", investorID).Limit(1).Find(&investor)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if res.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	code := input.DaftarCode
	if code == "" {
		code = utils.GenerateShortToken(5)
	}

	active := true
	daftar := models.Daftar{
		Name:               input.Name,
		Type:               input.Type,
		DaftarCode:         code,
		Website:            input.Website,
		Location:           input.Location,
		BigPicture:         input.BigPicture,
		OnDaftarSince:      time.Now(),
		BillingPlan:        input.BillingPlan,
		BillingInformation: input.BillingInformation,
		IsActive:           &active,
	}

	txErr := storage.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&daftar).Error; err != nil {
			return err
		}
		membership := models.DaftarInvestor{
			DaftarID:   daftar.ID,
			InvestorID: investorID,
			Role:       models.DaftarRoleAdmin,
			JoinedAt:   time.Now(),
			IsActive:   &active,
		}
		return tx.Create(&membership).Error
	})
	if txErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(daftar)
}

// JoinDaftar adds the investor as a member of the daftar matching the code.
func JoinDaftar(ctx iris.Context) {
	investorID := utils.ActorID(ctx)

	var input JoinDaftarInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var daftar models.Daftar
	res := storage.DB.
		Where("daftar_code = ? AND is_active = ?", input.DaftarCode, true).
		Limit(1).Find(&daftar)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if res.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	if utils.InvestorIsActiveMember(investorID, daftar.ID) {
		utils.CreateConflict("Investor is already a member of this daftar", ctx)
		return
	}

	active := true
	membership := models.DaftarInvestor{
		DaftarID:   daftar.ID,
		InvestorID: investorID,
		Role:       models.DaftarRoleMember,
		JoinedAt:   time.Now(),
		IsActive:   &active,
	}
	if err := storage.DB.Create(&membership).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(daftar)
}

// ListDaftarInvestors returns the active members of a daftar with their
// investor names.
func ListDaftarInvestors(ctx iris.Context) {
	daftarID := ctx.Params().GetUintDefault("id", 0)
	if daftarID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid daftar ID", ctx)
		return
	}

	if !daftarExists(daftarID) {
		utils.CreateNotFound(ctx)
		return
	}

	var members []DaftarInvestorResponse
	err := storage.DB.Table("daftar_investors").
		Select("daftar_investors.id, daftar_investors.investor_id, investors.first_name, " +
			"investors.last_name, daftar_investors.role, daftar_investors.joined_at, " +
			"daftar_investors.is_active").
		Joins("JOIN investors ON investors.id = daftar_investors.investor_id").
		Where("daftar_investors.daftar_id = ? AND daftar_investors.is_active = ?", daftarID, true).
		Order("daftar_investors.joined_at DESC").
		Scan(&members).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(members)
}

// AddDaftarInvestor adds an investor to a daftar; duplicate active
// memberships are rejected.
func AddDaftarInvestor(ctx iris.Context) {
	daftarID := ctx.Params().GetUintDefault("id", 0)
	if daftarID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid daftar ID", ctx)
		return
	}

	var input AddDaftarInvestorInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}
	if input.Role == "" {
		input.Role = models.DaftarRoleMember
	}

	var daftar models.Daftar
	res := storage.DB.Where("id = ?", daftarID).Limit(1).Find(&daftar)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if res.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}
	if daftar.IsActive != nil && !*daftar.IsActive {
		utils.CreateError(iris.StatusForbidden, "Forbidden", "This daftar is not active", ctx)
		return
	}

	var investor models.Investor
	invRes := storage.DB.Where("id = ?", input.InvestorID).Limit(1).Find(&investor)
	if invRes.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if invRes.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	if utils.InvestorIsActiveMember(input.InvestorID, daftarID) {
		utils.CreateConflict("Investor is already a member of this daftar", ctx)
		return
	}

	active := true
	membership := models.DaftarInvestor{
		DaftarID:   daftarID,
		InvestorID: input.InvestorID,
		Role:       input.Role,
		JoinedAt:   time.Now(),
		IsActive:   &active,
	}
	if err := storage.DB.Create(&membership).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(DaftarInvestorResponse{
		ID:         membership.ID,
		InvestorID: input.InvestorID,
		FirstName:  investor.FirstName,
		LastName:   investor.LastName,
		Role:       input.Role,
		JoinedAt:   membership.JoinedAt,
		IsActive:   true,
	})
}

// CreateDaftarInvite records a pending email invite; one pending invite per
// (daftar, email).
func CreateDaftarInvite(ctx iris.Context) {
	daftarID := ctx.Params().GetUintDefault("id", 0)
	if daftarID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid daftar ID", ctx)
		return
	}

	var input CreateDaftarInviteInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !daftarExists(daftarID) {
		utils.CreateNotFound(ctx)
		return
	}

	var count int64
	storage.DB.Model(&models.DaftarPendingInvite{}).
		Where("daftar_id = ? AND email = ?", daftarID, input.Email).
		Count(&count)
	if count > 0 {
		utils.CreateConflict("Invite already sent to this email", ctx)
		return
	}

	invite := models.DaftarPendingInvite{
		DaftarID:  daftarID,
		Email:     input.Email,
		InvitedBy: utils.ActorID(ctx),
		InvitedAt: time.Now(),
	}
	if err := storage.DB.Create(&invite).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(invite)
}

func daftarExists(daftarID uint) bool {
	var count int64
	storage.DB.Model(&models.Daftar{}).Where("id = ?", daftarID).Count(&count)
	return count > 0
}
