package routes

import (
	"encoding/json"
	"time"

	"github.com/AESiR-0/daftar-backend/models"
	"github.com/AESiR-0/daftar-backend/storage"
	"github.com/AESiR-0/daftar-backend/utils"
	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

type CreateMeetingInput struct {
	DaftarID        uint      `json:"daftarID" validate:"required"`
	InvitedGuest    uint      `json:"invitedGuest" validate:"required"`
	StartDate       time.Time `json:"startDate" validate:"required"`
	StartTime       time.Time `json:"startTime" validate:"required"`
	EndDate         time.Time `json:"endDate" validate:"required"`
	EndTime         time.Time `json:"endTime" validate:"required"`
	Location        string    `json:"location" validate:"required,max=255"`
	AgendaOfMeeting string    `json:"agendaOfMeeting" validate:"required"`
	NameOfInvitees  []string  `json:"nameOfInvitees"`
}

// CreateFounderMeeting schedules a meeting on a pitch the founder owns and
// records the invitee list as a detail row.
func CreateFounderMeeting(ctx iris.Context) {
	founderID := ctx.Params().GetUintDefault("id", 0)
	pitchID := ctx.Params().GetUintDefault("pitchID", 0)
	if founderID == 0 || pitchID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid ID", ctx)
		return
	}

	var input CreateMeetingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !utils.FounderOwnsPitch(founderID, pitchID) {
		utils.CreateNotFound(ctx)
		return
	}

	meeting := models.FounderMeeting{
		DaftarID:        input.DaftarID,
		PitchID:         pitchID,
		InvitedGuest:    input.InvitedGuest,
		StartDate:       input.StartDate,
		StartTime:       input.StartTime,
		EndDate:         input.EndDate,
		EndTime:         input.EndTime,
		Location:        input.Location,
		AgendaOfMeeting: input.AgendaOfMeeting,
		CreatedBy:       founderID,
	}

	txErr := storage.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&meeting).Error; err != nil {
			return err
		}

		invitees := input.NameOfInvitees
		if invitees == nil {
			invitees = []string{}
		}
		inviteesJSON, err := json.Marshal(invitees)
		if err != nil {
			return err
		}
		attendeesJSON, err := json.Marshal([]string{})
		if err != nil {
			return err
		}

		detail := models.FounderMeetingDetail{
			MeetingID:       meeting.ID,
			TotalInvitees:   len(invitees),
			NameOfInvitees:  inviteesJSON,
			TotalAttendees:  0,
			NameOfAttendees: attendeesJSON,
		}
		return tx.Create(&detail).Error
	})
	if txErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(meeting)
}

// ListPitchMeetings returns the meetings on a pitch the founder owns.
func ListPitchMeetings(ctx iris.Context) {
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

	var meetings []models.FounderMeeting
	err := storage.DB.
		Where("pitch_id = ?", pitchID).
		Order("start_date ASC").
		Find(&meetings).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(meetings)
}
