package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Founder struct {
	gorm.Model
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email" gorm:"uniqueIndex"`
	Gender         string     `json:"gender"`
	Phone          string     `json:"phone" gorm:"uniqueIndex"`
	Password       string     `json:"-"`
	Designation    string     `json:"designation"`
	Location       string     `json:"location"`
	JournalContent string     `json:"journalContent"`
	IsActive       *bool      `json:"isActive" gorm:"default:true"`
	DeletedOn      *time.Time `json:"deletedOn"`
}

type FounderPreferredLanguage struct {
	gorm.Model
	FounderID uint   `json:"founderID"`
	Language  string `json:"language"`
}

type Pitch struct {
	gorm.Model
	ScoutID         uint   `json:"scoutID"`
	PitchName       string `json:"pitchName"`
	FounderLanguage string `json:"founderLanguage"`
	AskForInvestor  bool   `json:"askForInvestor"`
	HasConfirmed    bool   `json:"hasConfirmed"`
	StatusFounder   string `json:"statusFounder" gorm:"type:varchar(50);default:Inbox"`
	DemoLink        string `json:"demoLink"`
}

// FounderPitchRelationship links founders to the pitches they own. A pitch
// can have several founders; ownership is this row, nothing finer.
type FounderPitchRelationship struct {
	gorm.Model
	FounderID uint `json:"founderID" gorm:"index:idx_founder_pitch,unique"`
	PitchID   uint `json:"pitchID" gorm:"index:idx_founder_pitch,unique"`
}

type InvestorQuestion struct {
	gorm.Model
	PitchID      uint   `json:"pitchID"`
	QuestionText string `json:"questionText"`
}

type QuestionAnswer struct {
	gorm.Model
	QuestionID uint       `json:"questionID" gorm:"uniqueIndex"`
	AnswerText string     `json:"answerText"`
	VideoURL   string     `json:"videoURL"`
	AnsweredAt *time.Time `json:"answeredAt"`
}

type PendingConfirmation struct {
	gorm.Model
	PitchID   uint `json:"pitchID"`
	FounderID uint `json:"founderID"`
}

type Document struct {
	gorm.Model
	PitchID        uint      `json:"pitchID"`
	DocumentURL    string    `json:"documentURL"`
	DocumentType   string    `json:"documentType"` // pitch_deck, financial, legal, ...
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	IsPrivate      bool      `json:"isPrivate"`
	UploadedByType string    `json:"uploadedByType" gorm:"type:varchar(50)"` // founder or investor
	UploadedByID   uint      `json:"uploadedByID"`
	UploadedAt     time.Time `json:"uploadedAt"`
}

type Bill struct {
	gorm.Model
	PitchID     uint       `json:"pitchID"`
	Amount      float64    `json:"amount" gorm:"type:numeric(10,2)"`
	Description string     `json:"description"`
	DueDate     time.Time  `json:"dueDate"`
	PaymentLink string     `json:"paymentLink"`
	IsPaid      bool       `json:"isPaid"`
	PaidAt      *time.Time `json:"paidAt"`
}

type FounderMeeting struct {
	gorm.Model
	DaftarID        uint       `json:"daftarID"`
	PitchID         uint       `json:"pitchID"`
	InvitedGuest    uint       `json:"invitedGuest"`
	StartDate       time.Time  `json:"startDate"`
	StartTime       time.Time  `json:"startTime"`
	EndDate         time.Time  `json:"endDate"`
	EndTime         time.Time  `json:"endTime"`
	Location        string     `json:"location"`
	AgendaOfMeeting string     `json:"agendaOfMeeting"`
	CreatedBy       uint       `json:"createdBy"`
}

type FounderMeetingDetail struct {
	gorm.Model
	MeetingID       uint           `json:"meetingID"`
	TotalInvitees   int            `json:"totalInvitees"`
	NameOfInvitees  datatypes.JSON `json:"nameOfInvitees"`
	TotalAttendees  int            `json:"totalAttendees"`
	NameOfAttendees datatypes.JSON `json:"nameOfAttendees"`
}

type FeatureRequest struct {
	gorm.Model
	UserID      uint   `json:"userID"`
	DoesExist   bool   `json:"doesExist"`
	Status      string `json:"status"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Feedback struct {
	gorm.Model
	UserID      uint   `json:"userID"`
	Description string `json:"description"`
	IsHappy     bool   `json:"isHappy"`
}

type PitchTeamInvite struct {
	gorm.Model
	PitchID      uint       `json:"pitchID"`
	InvitedEmail string     `json:"invitedEmail"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Designation  string     `json:"designation"`
	Status       string     `json:"status" gorm:"type:varchar(50);default:pending"` // pending, accepted, rejected
	Role         string     `json:"role"`
	AcceptedAt   *time.Time `json:"acceptedAt"`
}
