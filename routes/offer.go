package routes

import (
	"time"

	"github.com/AESiR-0/daftar-backend/models"
	"github.com/AESiR-0/daftar-backend/storage"
	"github.com/AESiR-0/daftar-backend/utils"
	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

type CreateOfferInput struct {
	Amount           float64    `json:"amount" validate:"required,gt=0"`
	EquityPercentage float64    `json:"equityPercentage" validate:"gte=0,lte=100"`
	Terms            string     `json:"terms"`
	Notes            string     `json:"notes"`
	ValidUntil       *time.Time `json:"validUntil"`
}

type OfferActionInput struct {
	Action string `json:"action" validate:"required"`
	Notes  string `json:"notes"`
}

type CreateBillInput struct {
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	Description string    `json:"description" validate:"required"`
	DueDate     time.Time `json:"dueDate" validate:"required"`
	PaymentLink string    `json:"paymentLink" validate:"omitempty,url"`
}

// CreateOffer makes a pending offer on a pitch the investor's daftar can
// reach through a scout.
func CreateOffer(ctx iris.Context) {
	investorID := utils.ActorID(ctx)
	pitchID := ctx.Params().GetUintDefault("id", 0)
	if pitchID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid pitch ID", ctx)
		return
	}

	var input CreateOfferInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !utils.InvestorCanAccessPitch(investorID, pitchID) {
		utils.CreateNotFound(ctx)
		return
	}

	offer := models.Offer{
		PitchID:          pitchID,
		InvestorID:       investorID,
		Amount:           input.Amount,
		EquityPercentage: input.EquityPercentage,
		Terms:            input.Terms,
		Notes:            input.Notes,
		Status:           string(models.OfferStatusPending),
		ValidUntil:       input.ValidUntil,
		OfferSentAt:      time.Now(),
	}
	if err := storage.DB.Create(&offer).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(offer)
}

// ListPitchOffers returns the investor's own offers on a pitch.
func ListPitchOffers(ctx iris.Context) {
	investorID := utils.ActorID(ctx)
	pitchID := ctx.Params().GetUintDefault("id", 0)
	if pitchID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid pitch ID", ctx)
		return
	}

	var offers []models.Offer
	err := storage.DB.
		Where("pitch_id = ? AND investor_id = ?", pitchID, investorID).
		Order("created_at DESC").
		Find(&offers).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(offers)
}

// TakeOfferAction handles investor actions on an offer. Withdraw is the only
// permitted action, and only from pending. The conditional status update and
// the audit row share one transaction, so concurrent withdraws cannot both
// succeed.
func TakeOfferAction(ctx iris.Context) {
	investorID := utils.ActorID(ctx)
	offerID := ctx.Params().GetUintDefault("id", 0)
	if offerID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid offer ID", ctx)
		return
	}

	var input OfferActionInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var offer models.Offer
	res := storage.DB.
		Where("id = ? AND investor_id = ?", offerID, investorID).
		Limit(1).Find(&offer)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if res.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	// Status is checked before the action type, so acting on a settled offer
	// reports the offer's state rather than the unsupported action.
	if !models.OfferStatus(offer.Status).CanTransitionTo(models.OfferStatusWithdrawn) {
		utils.CreateConflict("Cannot "+input.Action+" offer with status "+offer.Status, ctx)
		return
	}

	if input.Action != models.OfferActionWithdraw {
		utils.CreateError(iris.StatusBadRequest, "Bad Request",
			"Investors can only withdraw offers", ctx)
		return
	}

	conflict := false
	txErr := storage.DB.Transaction(func(tx *gorm.DB) error {
		update := tx.Model(&models.Offer{}).
			Where("id = ? AND status = ?", offerID, models.OfferStatusPending).
			Update("status", models.OfferStatusWithdrawn)
		if update.Error != nil {
			return update.Error
		}
		if update.RowsAffected == 0 {
			conflict = true
			return nil
		}

		action := models.OfferAction{
			OfferID:       offerID,
			Action:        models.OfferActionWithdraw,
			ActionBy:      investorID,
			Notes:         input.Notes,
			ActionTakenAt: time.Now(),
		}
		return tx.Create(&action).Error
	})
	if txErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if conflict {
		// Re-read for the message; the offer left pending under us or was
		// never pending.
		storage.DB.Select("status").Where("id = ?", offerID).Limit(1).Find(&offer)
		utils.CreateConflict("Cannot "+input.Action+" offer with status "+offer.Status, ctx)
		return
	}

	ctx.JSON(iris.Map{"status": "success", "message": "Offer withdrawn successfully"})
}

// CreateBill creates a bill on a pitch. Only investors whose membership in
// the owning daftar carries the admin role may bill; everyone else gets 403.
func CreateBill(ctx iris.Context) {
	investorID := utils.ActorID(ctx)
	pitchID := ctx.Params().GetUintDefault("id", 0)
	if pitchID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid pitch ID", ctx)
		return
	}

	var input CreateBillInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !utils.InvestorIsDaftarAdminForPitch(investorID, pitchID) {
		utils.CreateError(iris.StatusForbidden, "Forbidden", "Not authorized to create bills", ctx)
		return
	}

	bill := models.Bill{
		PitchID:     pitchID,
		Amount:      input.Amount,
		Description: input.Description,
		DueDate:     input.DueDate,
		PaymentLink: input.PaymentLink,
	}
	if err := storage.DB.Create(&bill).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(bill)
}

// ListPitchBills returns bills on a pitch for any investor with access.
func ListPitchBills(ctx iris.Context) {
	investorID := utils.ActorID(ctx)
	pitchID := ctx.Params().GetUintDefault("id", 0)
	if pitchID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid pitch ID", ctx)
		return
	}

	if !utils.InvestorCanAccessPitch(investorID, pitchID) {
		utils.CreateNotFound(ctx)
		return
	}

	var bills []models.Bill
	err := storage.DB.
		Where("pitch_id = ?", pitchID).
		Order("due_date ASC").
		Find(&bills).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(bills)
}
