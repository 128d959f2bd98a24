package models

import (
	"time"

	"gorm.io/gorm"
)

type Investor struct {
	gorm.Model
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email" gorm:"uniqueIndex"`
	Gender    string     `json:"gender"`
	Phone     string     `json:"phone" gorm:"uniqueIndex"`
	Password  string     `json:"-"`
	Location  string     `json:"location"`
	IsActive  *bool      `json:"isActive" gorm:"default:true"`
	DeletedOn *time.Time `json:"deletedOn"`
}

type Daftar struct {
	gorm.Model
	Name               string     `json:"name"`
	Type               string     `json:"type"`
	DaftarCode         string     `json:"daftarCode" gorm:"uniqueIndex"`
	Website            string     `json:"website"`
	Location           string     `json:"location"`
	BigPicture         string     `json:"bigPicture"`
	OnDaftarSince      time.Time  `json:"onDaftarSince"`
	BillingPlan        string     `json:"billingPlan"`
	BillingInformation string     `json:"billingInformation"`
	IsActive           *bool      `json:"isActive" gorm:"default:true"`
	DeletedOn          *time.Time `json:"deletedOn"`
}

// DaftarInvestor is the membership row. At most one membership per
// (daftar, investor) pair: the add/join handlers check before insert for a
// friendly 400, and the composite unique index holds the line under
// concurrent joins.
type DaftarInvestor struct {
	gorm.Model
	DaftarID   uint      `json:"daftarID" gorm:"index:idx_daftar_investor,unique"`
	InvestorID uint      `json:"investorID" gorm:"index:idx_daftar_investor,unique"`
	Role       string    `json:"role" gorm:"type:varchar(50);default:member"` // member, admin
	JoinedAt   time.Time `json:"joinedAt"`
	IsActive   *bool     `json:"isActive" gorm:"default:true"`
}

type DaftarTeamMember struct {
	gorm.Model
	DaftarID    uint   `json:"daftarID"`
	Designation string `json:"designation"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
}

type DaftarPendingInvite struct {
	gorm.Model
	DaftarID  uint      `json:"daftarID"`
	Email     string    `json:"email"`
	InvitedBy uint      `json:"invitedBy"`
	InvitedAt time.Time `json:"invitedAt"`
}

type Offer struct {
	gorm.Model
	PitchID          uint       `json:"pitchID"`
	InvestorID       uint       `json:"investorID"`
	Amount           float64    `json:"amount" gorm:"type:numeric(12,2)"`
	EquityPercentage float64    `json:"equityPercentage"`
	Terms            string     `json:"terms"`
	Notes            string     `json:"notes"`
	Status           string     `json:"status" gorm:"type:varchar(50);default:pending"` // pending, accepted, rejected, withdrawn
	ValidUntil       *time.Time `json:"validUntil"`
	OfferSentAt      time.Time  `json:"offerSentAt"`
}

// OfferAction is the append-only audit log of status-changing actions on an
// offer. Rows are only ever inserted, inside the same transaction as the
// status update they record.
type OfferAction struct {
	gorm.Model
	OfferID       uint      `json:"offerID" gorm:"index"`
	Action        string    `json:"action" gorm:"type:varchar(50)"`
	ActionBy      uint      `json:"actionBy"` // founder or investor id, per action
	Notes         string    `json:"notes"`
	ActionTakenAt time.Time `json:"actionTakenAt"`
}

type InvestorNote struct {
	gorm.Model
	PitchID    uint   `json:"pitchID"`
	InvestorID uint   `json:"investorID"`
	NoteText   string `json:"noteText"`
}
