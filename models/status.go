package models

import (
	"golang.org/x/exp/slices"
)

// ScoutStatus is the lifecycle state of a scout campaign.
type ScoutStatus string

const (
	ScoutStatusDraft    ScoutStatus = "draft"
	ScoutStatusPending  ScoutStatus = "pending"
	ScoutStatusApproved ScoutStatus = "approved"
	ScoutStatusRejected ScoutStatus = "rejected"
	ScoutStatusArchived ScoutStatus = "archived"
)

// scoutTransitions is the full transition table. Archive is terminal:
// every non-archived state may move to archived, archived moves nowhere.
var scoutTransitions = map[ScoutStatus][]ScoutStatus{
	ScoutStatusDraft:    {ScoutStatusPending, ScoutStatusArchived},
	ScoutStatusPending:  {ScoutStatusApproved, ScoutStatusRejected, ScoutStatusArchived},
	ScoutStatusApproved: {ScoutStatusArchived},
	ScoutStatusRejected: {ScoutStatusArchived},
	ScoutStatusArchived: {},
}

func (s ScoutStatus) Valid() bool {
	_, ok := scoutTransitions[s]
	return ok
}

func (s ScoutStatus) CanTransitionTo(next ScoutStatus) bool {
	return slices.Contains(scoutTransitions[s], next)
}

// ScoutStatusesAllowing returns every status that may move to next. Transition
// handlers use it as the WHERE set of their conditional updates, so the table
// above is the single source of truth for the lifecycle.
func ScoutStatusesAllowing(next ScoutStatus) []ScoutStatus {
	var from []ScoutStatus
	for s, targets := range scoutTransitions {
		if slices.Contains(targets, next) {
			from = append(from, s)
		}
	}
	return from
}

// OfferStatus is the lifecycle state of an investor's offer on a pitch.
type OfferStatus string

const (
	OfferStatusPending   OfferStatus = "pending"
	OfferStatusAccepted  OfferStatus = "accepted"
	OfferStatusRejected  OfferStatus = "rejected"
	OfferStatusWithdrawn OfferStatus = "withdrawn"
)

// Offers only ever leave pending; accepted/rejected/withdrawn are terminal.
var offerTransitions = map[OfferStatus][]OfferStatus{
	OfferStatusPending:   {OfferStatusAccepted, OfferStatusRejected, OfferStatusWithdrawn},
	OfferStatusAccepted:  {},
	OfferStatusRejected:  {},
	OfferStatusWithdrawn: {},
}

func (s OfferStatus) Valid() bool {
	_, ok := offerTransitions[s]
	return ok
}

func (s OfferStatus) CanTransitionTo(next OfferStatus) bool {
	return slices.Contains(offerTransitions[s], next)
}

// OfferActionWithdraw is the only action investors may take on their own
// offers; the action endpoint rejects everything else.
const (
	OfferActionWithdraw = "withdraw"
)

// InviteStatus covers pitch team invites.
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusRejected InviteStatus = "rejected"
)

// Uploader type tags on pitch documents.
const (
	UploaderFounder  = "founder"
	UploaderInvestor = "investor"
)

// DaftarRoleAdmin gates privileged membership actions (bill creation).
const (
	DaftarRoleAdmin  = "admin"
	DaftarRoleMember = "member"
)

// PitchStatusInbox is the initial founder-visible pitch state. Pitch status
// has no enforced machine: status_founder is a free-form field mutated by
// sparse PATCH requests, matching the upstream behavior.
const PitchStatusInbox = "Inbox"
