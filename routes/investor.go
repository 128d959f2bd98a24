package routes

import (
	"time"

	"github.com/AESiR-0/daftar-backend/models"
	"github.com/AESiR-0/daftar-backend/storage"
	"github.com/AESiR-0/daftar-backend/utils"
	"github.com/kataras/iris/v12"
)

type CreateCustomQuestionInput struct {
	QuestionText string `json:"questionText" validate:"required"`
}

type CreateAnswerInput struct {
	AnswerText string `json:"answerText"`
	VideoURL   string `json:"videoURL" validate:"omitempty,url"`
}

type CreateNoteInput struct {
	NoteText string `json:"noteText" validate:"required"`
}

type SampleQuestionResponse struct {
	ID           uint   `json:"id"`
	ScoutID      uint   `json:"scoutID"`
	QuestionText string `json:"questionText"`
	VideoURL     string `json:"videoURL"`
}

// GetInvestorProfile returns an active investor.
func GetInvestorProfile(ctx iris.Context) {
	investorID := ctx.Params().GetUintDefault("id", 0)
	if investorID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid investor ID", ctx)
		return
	}

	var investor models.Investor
	res := storage.DB.Where("id = ? AND is_active = ?", investorID, true).Limit(1).Find(&investor)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if res.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(investor)
}

// GetDaftarProfile returns an active daftar.
func GetDaftarProfile(ctx iris.Context) {
	daftarID := ctx.Params().GetUintDefault("id", 0)
	if daftarID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid daftar ID", ctx)
		return
	}

	var daftar models.Daftar
	res := storage.DB.Where("id = ? AND is_active = ?", daftarID, true).Limit(1).Find(&daftar)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if res.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(daftar)
}

// GetSampleQuestions lists a scout's sample questions with any sample
// answers.
func GetSampleQuestions(ctx iris.Context) {
	scoutID := ctx.Params().GetUintDefault("id", 0)
	if scoutID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid scout ID", ctx)
		return
	}

	if !scoutExists(scoutID) {
		utils.CreateNotFound(ctx)
		return
	}

	var questions []SampleQuestionResponse
	err := storage.DB.Table("sample_investor_questions").
		Select("sample_investor_questions.id, sample_investor_questions.scout_id, " +
			"sample_investor_questions.question_text, sample_pitch_answers.video_url").
		Joins("LEFT JOIN sample_pitch_answers ON sample_pitch_answers.question_id = sample_investor_questions.id").
		Where("sample_investor_questions.scout_id = ?", scoutID).
		Order("sample_investor_questions.id").
		Scan(&questions).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(questions)
}

// CreateCustomQuestion adds an investor-authored question to a scout.
func CreateCustomQuestion(ctx iris.Context) {
	scoutID := ctx.Params().GetUintDefault("id", 0)
	if scoutID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid scout ID", ctx)
		return
	}

	var input CreateCustomQuestionInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !scoutExists(scoutID) {
		utils.CreateNotFound(ctx)
		return
	}

	question := models.CustomInvestorQuestion{
		ScoutID:      scoutID,
		QuestionText: input.QuestionText,
	}
	if err := storage.DB.Create(&question).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(question)
}

// GetCustomQuestions lists a scout's custom questions, newest first.
func GetCustomQuestions(ctx iris.Context) {
	scoutID := ctx.Params().GetUintDefault("id", 0)
	if scoutID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid scout ID", ctx)
		return
	}

	if !scoutExists(scoutID) {
		utils.CreateNotFound(ctx)
		return
	}

	var questions []models.CustomInvestorQuestion
	err := storage.DB.Where("scout_id = ?", scoutID).
		Order("created_at DESC").
		Find(&questions).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(questions)
}

// CreateQuestionAnswer records the single answer to an investor question.
// Either text or a video reference must be supplied.
func CreateQuestionAnswer(ctx iris.Context) {
	pitchID := ctx.Params().GetUintDefault("id", 0)
	questionID := ctx.Params().GetUintDefault("questionID", 0)
	if pitchID == 0 || questionID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid ID", ctx)
		return
	}

	var input CreateAnswerInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.AnswerText == "" && input.VideoURL == "" {
		utils.CreateError(iris.StatusBadRequest, "Bad Request",
			"Either answerText or videoURL must be provided", ctx)
		return
	}

	var count int64
	storage.DB.Model(&models.InvestorQuestion{}).
		Where("id = ? AND pitch_id = ?", questionID, pitchID).
		Count(&count)
	if count == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	var existing int64
	storage.DB.Model(&models.QuestionAnswer{}).
		Where("question_id = ?", questionID).
		Count(&existing)
	if existing > 0 {
		utils.CreateConflict("Answer already exists for this question", ctx)
		return
	}

	now := time.Now()
	answer := models.QuestionAnswer{
		QuestionID: questionID,
		AnswerText: input.AnswerText,
		VideoURL:   input.VideoURL,
		AnsweredAt: &now,
	}
	if err := storage.DB.Create(&answer).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(answer)
}

// UploadInvestorDocument attaches a document to a pitch the investor's
// daftar owns through a scout.
func UploadInvestorDocument(ctx iris.Context) {
	investorID := utils.ActorID(ctx)
	pitchID := ctx.Params().GetUintDefault("id", 0)
	if pitchID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid pitch ID", ctx)
		return
	}

	var input CreateDocumentInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !utils.InvestorCanAccessPitch(investorID, pitchID) {
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
		UploadedByType: models.UploaderInvestor,
		UploadedByID:   investorID,
		UploadedAt:     time.Now(),
	}
	if err := storage.DB.Create(&document).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(document)
}

// GetInvestorPitchDocuments lists documents the investor may see on a pitch:
// their own uploads plus non-private founder uploads.
func GetInvestorPitchDocuments(ctx iris.Context) {
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

	var documents []models.Document
	err := storage.DB.
		Where("pitch_id = ?", pitchID).
		Scopes(utils.VisibleDocuments(models.UploaderInvestor, investorID)).
		Order("uploaded_at DESC").
		Find(&documents).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(documents)
}

// CreateInvestorNote adds a private note on a pitch.
func CreateInvestorNote(ctx iris.Context) {
	investorID := utils.ActorID(ctx)
	pitchID := ctx.Params().GetUintDefault("id", 0)
	if pitchID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid pitch ID", ctx)
		return
	}

	var input CreateNoteInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !utils.InvestorCanAccessPitch(investorID, pitchID) {
		utils.CreateNotFound(ctx)
		return
	}

	note := models.InvestorNote{
		PitchID:    pitchID,
		InvestorID: investorID,
		NoteText:   input.NoteText,
	}
	if err := storage.DB.Create(&note).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(note)
}

// ListInvestorNotes returns the investor's own notes on a pitch.
func ListInvestorNotes(ctx iris.Context) {
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

	var notes []models.InvestorNote
	err := storage.DB.
		Where("pitch_id = ? AND investor_id = ?", pitchID, investorID).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(notes)
}

func scoutExists(scoutID uint) bool {
	var count int64
	storage.DB.Model(&models.Scout{}).Where("id = ?", scoutID).Count(&count)
	return count > 0
}
