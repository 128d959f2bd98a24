package routes

import "testing"

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestBuildPitchUpdatesSparse(t *testing.T) {
	// Absent fields produce no updates at all.
	if updates := buildPitchUpdates(UpdatePitchInput{}); len(updates) != 0 {
		t.Fatalf("expected no updates for empty input, got %v", updates)
	}

	// Only the provided field appears.
	updates := buildPitchUpdates(UpdatePitchInput{PitchName: strPtr("Acme")})
	if len(updates) != 1 {
		t.Fatalf("expected 1 update, got %v", updates)
	}
	if updates["pitch_name"] != "Acme" {
		t.Errorf("pitch_name = %v, want Acme", updates["pitch_name"])
	}
}

func TestBuildPitchUpdatesKeepsFalseAndEmpty(t *testing.T) {
	// Explicit false and explicit empty string are real updates, not
	// omissions.
	updates := buildPitchUpdates(UpdatePitchInput{
		AskForInvestor: boolPtr(false),
		DemoLink:       strPtr(""),
	})
	if len(updates) != 2 {
		t.Fatalf("expected 2 updates, got %v", updates)
	}
	if v, ok := updates["ask_for_investor"]; !ok || v != false {
		t.Errorf("ask_for_investor = %v, want false", v)
	}
	if v, ok := updates["demo_link"]; !ok || v != "" {
		t.Errorf("demo_link = %v, want empty string", v)
	}
}

func TestBuildPitchUpdatesAllFields(t *testing.T) {
	updates := buildPitchUpdates(UpdatePitchInput{
		PitchName:       strPtr("Acme"),
		FounderLanguage: strPtr("en"),
		AskForInvestor:  boolPtr(true),
		HasConfirmed:    boolPtr(true),
		StatusFounder:   strPtr("Accepted"),
		DemoLink:        strPtr("https://example.com/demo"),
	})
	want := []string{
		"pitch_name", "founder_language", "ask_for_investor",
		"has_confirmed", "status_founder", "demo_link",
	}
	if len(updates) != len(want) {
		t.Fatalf("expected %d updates, got %v", len(want), updates)
	}
	for _, key := range want {
		if _, ok := updates[key]; !ok {
			t.Errorf("missing update key %q", key)
		}
	}
}
