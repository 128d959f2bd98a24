package routes

import (
	"github.com/AESiR-0/daftar-backend/models"
	"github.com/AESiR-0/daftar-backend/storage"
	"github.com/AESiR-0/daftar-backend/utils"
	"github.com/kataras/iris/v12"
)

type CreateFeedbackInput struct {
	Description string `json:"description" validate:"required"`
	IsHappy     *bool  `json:"isHappy" validate:"required"`
}

type CreateFeatureRequestInput struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	DoesExist   bool   `json:"doesExist"`
}

func CreateFeedback(ctx iris.Context) {
	var input CreateFeedbackInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	feedback := models.Feedback{
		UserID:      utils.ActorID(ctx),
		Description: input.Description,
		IsHappy:     *input.IsHappy,
	}
	if err := storage.DB.Create(&feedback).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(feedback)
}

func CreateFeatureRequest(ctx iris.Context) {
	var input CreateFeatureRequestInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	request := models.FeatureRequest{
		UserID:      utils.ActorID(ctx),
		Name:        input.Name,
		Description: input.Description,
		DoesExist:   input.DoesExist,
		Status:      "open",
	}
	if err := storage.DB.Create(&request).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(request)
}
