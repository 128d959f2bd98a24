package routes

import (
	"time"

	"github.com/AESiR-0/daftar-backend/models"
	"github.com/AESiR-0/daftar-backend/storage"
	"github.com/AESiR-0/daftar-backend/utils"
	"github.com/kataras/iris/v12"
)

type QuestionAnswerResponse struct {
	QuestionID     uint       `json:"questionID"`
	QuestionText   string     `json:"questionText"`
	AnswerText     string     `json:"answerText"`
	AnswerVideoURL string     `json:"answerVideoURL"`
	AnsweredAt     *time.Time `json:"answeredAt"`
}

type CreateDocumentInput struct {
	DocumentURL  string `json:"documentURL" validate:"required,url"`
	DocumentType string `json:"documentType" validate:"required,max=50"`
	Title        string `json:"title" validate:"required,max=255"`
	Description  string `json:"description" validate:"max=2000"`
	IsPrivate    bool   `json:"isPrivate"`
}

// GetFounderProfile returns an active, non-deleted founder.
func GetFounderProfile(ctx iris.Context) {
	founderID := ctx.Params().GetUintDefault("id", 0)
	if founderID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid founder ID", ctx)
		return
	}

	var founder models.Founder
	res := storage.DB.
		Where("id = ? AND is_active = ? AND deleted_on IS NULL", founderID, true).
		Limit(1).Find(&founder)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if res.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(founder)
}

// GetFounderPitches lists the founder's pitches through the relationship
// table, newest first.
func GetFounderPitches(ctx iris.Context) {
	founderID := ctx.Params().GetUintDefault("id", 0)
	if founderID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid founder ID", ctx)
		return
	}

	var pitches []models.Pitch
	err := storage.DB.
		Joins("JOIN founder_pitch_relationships fpr ON fpr.pitch_id = pitches.id").
		Where("fpr.founder_id = ?", founderID).
		Order("pitches.created_at DESC").
		Find(&pitches).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(pitches)
}

// GetFounderPitchQuestions returns investor questions with any answers for a
// pitch the founder owns.
func GetFounderPitchQuestions(ctx iris.Context) {
	founderID := ctx.Params().GetUintDefault("id", 0)
	pitchID := ctx.Params().GetUintDefault("pitchID", 0)
	if founderID == 0 || pitchID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid ID", ctx)
		return
	}

	if !utils.FounderOwnsPitch(founderID, pitchID) {
		utils.CreateNotFound(ctx)
		return
	}

	var questions []QuestionAnswerResponse
	err := storage.DB.Table("investor_questions").
		Select("investor_questions.id AS question_id, investor_questions.question_text, " +
			"question_answers.answer_text, question_answers.video_url AS answer_video_url, " +
			"question_answers.answered_at").
		Joins("LEFT JOIN question_answers ON question_answers.question_id = investor_questions.id").
		Where("investor_questions.pitch_id = ?", pitchID).
		Order("investor_questions.created_at DESC").
		Scan(&questions).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(questions)
}

// GetFounderUnansweredQuestions returns open questions across all the
// founder's pitches.
func GetFounderUnansweredQuestions(ctx iris.Context) {
	founderID := ctx.Params().GetUintDefault("id", 0)
	if founderID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid founder ID", ctx)
		return
	}

	var questions []QuestionAnswerResponse
	err := storage.DB.Table("investor_questions").
		Select("investor_questions.id AS question_id, investor_questions.question_text").
		Joins("JOIN founder_pitch_relationships fpr ON fpr.pitch_id = investor_questions.pitch_id").
		Joins("LEFT JOIN question_answers ON question_answers.question_id = investor_questions.id").
		Where("fpr.founder_id = ? AND question_answers.id IS NULL", founderID).
		Order("investor_questions.created_at DESC").
		Scan(&questions).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(questions)
}

// UploadFounderDocument attaches a document to a pitch the founder owns.
func UploadFounderDocument(ctx iris.Context) {
	founderID := ctx.Params().GetUintDefault("id", 0)
	pitchID := ctx.Params().GetUintDefault("pitchID", 0)
	if founderID == 0 || pitchID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid ID", ctx)
		return
	}

	var input CreateDocumentInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !utils.FounderOwnsPitch(founderID, pitchID) {
		utils.CreateNotFound(ctx)
		return
	}

	document := models.Document{
		PitchID:        pitchID,
		DocumentURL:    input.DocumentURL,
		DocumentType:   input.DocumentType,
		Title:          input.Title,
		Description:    input.Description,
		IsPrivate:      input.IsPrivate,
		UploadedByType: models.UploaderFounder,
		UploadedByID:   founderID,
		UploadedAt:     time.Now(),
	}
	if err := storage.DB.Create(&document).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(document)
}

// GetFounderPitchDocuments lists the documents the founder may see on a
// pitch: their own uploads plus non-private investor uploads.
func GetFounderPitchDocuments(ctx iris.Context) {
	founderID := ctx.Params().GetUintDefault("id", 0)
	pitchID := ctx.Params().GetUintDefault("pitchID", 0)
	if founderID == 0 || pitchID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid ID", ctx)
		return
	}

	if !utils.FounderOwnsPitch(founderID, pitchID) {
		utils.CreateNotFound(ctx)
		return
	}

	var documents []models.Document
	err := storage.DB.
		Where("pitch_id = ?", pitchID).
		Scopes(utils.VisibleDocuments(models.UploaderFounder, founderID)).
		Order("uploaded_at DESC").
		Find(&documents).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(documents)
}
