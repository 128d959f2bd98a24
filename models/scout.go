package models

import (
	"time"

	"gorm.io/gorm"
)

type Scout struct {
	gorm.Model
	DaftarID uint   `json:"daftarID" gorm:"index"`
	Name     string `json:"name"`
	Vision   string `json:"vision"`

	// Audience details, free-form until filled in
	Location  string `json:"location"`
	Community string `json:"community"`
	AgeRange  string `json:"ageRange"`
	Stage     string `json:"stage"`
	Sector    string `json:"sector"`

	// Collaboration details
	TeamSize             int    `json:"teamSize"`
	CollaborationType    string `json:"collaborationType"`
	CollaborationDetails string `json:"collaborationDetails"`

	Status     string     `json:"status" gorm:"type:varchar(50);default:draft"` // draft, pending, approved, rejected, archived
	ApprovedAt *time.Time `json:"approvedAt"`
	ApprovedBy *uint      `json:"approvedBy"`
}

type ScoutFAQ struct {
	gorm.Model
	ScoutID  uint   `json:"scoutID"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type ScoutSchedule struct {
	gorm.Model
	ScoutID      uint      `json:"scoutID"`
	Date         time.Time `json:"date"`
	TimeSlot     string    `json:"timeSlot"`
	Availability *bool     `json:"availability" gorm:"default:true"`
}

type ScoutUpdate struct {
	gorm.Model
	ScoutID     uint   `json:"scoutID"`
	Description string `json:"description"`
	CreatedBy   uint   `json:"createdBy"`
}

type SampleInvestorQuestion struct {
	gorm.Model
	ScoutID      uint   `json:"scoutID"`
	QuestionText string `json:"questionText"`
}

type SamplePitchAnswer struct {
	gorm.Model
	QuestionID uint   `json:"questionID"`
	VideoURL   string `json:"videoURL"`
}

type CustomInvestorQuestion struct {
	gorm.Model
	ScoutID      uint   `json:"scoutID"`
	QuestionText string `json:"questionText"`
}
