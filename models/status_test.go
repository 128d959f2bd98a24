package models

import "testing"

func TestScoutTransitions(t *testing.T) {
	cases := []struct {
		from    ScoutStatus
		to      ScoutStatus
		allowed bool
	}{
		{ScoutStatusDraft, ScoutStatusPending, true},
		{ScoutStatusDraft, ScoutStatusApproved, false},
		{ScoutStatusDraft, ScoutStatusRejected, false},
		{ScoutStatusPending, ScoutStatusApproved, true},
		{ScoutStatusPending, ScoutStatusRejected, true},
		{ScoutStatusPending, ScoutStatusDraft, false},
		{ScoutStatusApproved, ScoutStatusPending, false},
		{ScoutStatusApproved, ScoutStatusRejected, false},
		{ScoutStatusRejected, ScoutStatusPending, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.allowed {
			t.Errorf("%s -> %s: got %v, want %v", c.from, c.to, got, c.allowed)
		}
	}
}

func TestScoutArchiveIsTerminal(t *testing.T) {
	all := []ScoutStatus{
		ScoutStatusDraft, ScoutStatusPending, ScoutStatusApproved,
		ScoutStatusRejected, ScoutStatusArchived,
	}

	// Every non-archived state may archive.
	for _, s := range all {
		if s == ScoutStatusArchived {
			continue
		}
		if !s.CanTransitionTo(ScoutStatusArchived) {
			t.Errorf("%s should be archivable", s)
		}
	}

	// Archived goes nowhere, including back to itself.
	for _, s := range all {
		if ScoutStatusArchived.CanTransitionTo(s) {
			t.Errorf("archived -> %s should be denied", s)
		}
	}
}

func TestScoutStatusesAllowing(t *testing.T) {
	asSet := func(statuses []ScoutStatus) map[ScoutStatus]bool {
		set := make(map[ScoutStatus]bool, len(statuses))
		for _, s := range statuses {
			set[s] = true
		}
		return set
	}

	cases := []struct {
		next ScoutStatus
		want []ScoutStatus
	}{
		{ScoutStatusPending, []ScoutStatus{ScoutStatusDraft}},
		{ScoutStatusApproved, []ScoutStatus{ScoutStatusPending}},
		{ScoutStatusRejected, []ScoutStatus{ScoutStatusPending}},
		{ScoutStatusArchived, []ScoutStatus{
			ScoutStatusDraft, ScoutStatusPending, ScoutStatusApproved, ScoutStatusRejected,
		}},
	}
	for _, c := range cases {
		got := asSet(ScoutStatusesAllowing(c.next))
		if len(got) != len(c.want) {
			t.Errorf("sources of %s: got %v, want %v", c.next, got, c.want)
			continue
		}
		for _, s := range c.want {
			if !got[s] {
				t.Errorf("sources of %s: missing %s", c.next, s)
			}
		}
	}
}

func TestScoutStatusValid(t *testing.T) {
	if !ScoutStatusDraft.Valid() {
		t.Error("draft should be a valid status")
	}
	if ScoutStatus("published").Valid() {
		t.Error("unknown status should be invalid")
	}
}

func TestOfferTransitions(t *testing.T) {
	if !OfferStatusPending.CanTransitionTo(OfferStatusWithdrawn) {
		t.Error("pending -> withdrawn should be allowed")
	}
	if !OfferStatusPending.CanTransitionTo(OfferStatusAccepted) {
		t.Error("pending -> accepted should be allowed")
	}
	if !OfferStatusPending.CanTransitionTo(OfferStatusRejected) {
		t.Error("pending -> rejected should be allowed")
	}

	all := []OfferStatus{
		OfferStatusPending, OfferStatusAccepted, OfferStatusRejected, OfferStatusWithdrawn,
	}
	terminal := []OfferStatus{OfferStatusAccepted, OfferStatusRejected, OfferStatusWithdrawn}
	for _, from := range terminal {
		for _, to := range all {
			if from.CanTransitionTo(to) {
				t.Errorf("%s -> %s should be denied", from, to)
			}
		}
	}
}
