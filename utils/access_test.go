package utils

import (
	"testing"

	"github.com/AESiR-0/daftar-backend/models"
)

func TestCanViewDocument(t *testing.T) {
	founderDoc := func(uploaderID uint, private bool) models.Document {
		return models.Document{
			UploadedByType: models.UploaderFounder,
			UploadedByID:   uploaderID,
			IsPrivate:      private,
		}
	}
	investorDoc := func(uploaderID uint, private bool) models.Document {
		return models.Document{
			UploadedByType: models.UploaderInvestor,
			UploadedByID:   uploaderID,
			IsPrivate:      private,
		}
	}

	cases := []struct {
		name       string
		doc        models.Document
		viewerType string
		viewerID   uint
		want       bool
	}{
		{"founder sees own upload", founderDoc(1, true), models.UploaderFounder, 1, true},
		{"founder blind to another founder's upload", founderDoc(2, false), models.UploaderFounder, 1, false},
		{"founder sees investor public upload", investorDoc(9, false), models.UploaderFounder, 1, true},
		{"founder blind to investor private upload", investorDoc(9, true), models.UploaderFounder, 1, false},
		{"investor sees own upload", investorDoc(9, true), models.UploaderInvestor, 9, true},
		{"investor blind to another investor's upload", investorDoc(8, false), models.UploaderInvestor, 9, false},
		{"investor sees founder public upload", founderDoc(1, false), models.UploaderInvestor, 9, true},
		{"investor blind to founder private upload", founderDoc(1, true), models.UploaderInvestor, 9, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CanViewDocument(c.doc, c.viewerType, c.viewerID); got != c.want {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestNormalizePhoneNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"+1 (555) 123-4567", "15551234567"},
		{"0044 20 7946 0958", "442079460958"},
		{"555.123.4567", "5551234567"},
		{"000", ""},
	}
	for _, c := range cases {
		if got := NormalizePhoneNumber(c.in); got != c.want {
			t.Errorf("NormalizePhoneNumber(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestValidatePhoneNumber(t *testing.T) {
	valid := []string{"+1 555 123 4567", "5551234", "919876543210"}
	for _, p := range valid {
		if !ValidatePhoneNumber(p) {
			t.Errorf("expected %q to be valid", p)
		}
	}

	invalid := []string{"", "12345", "abc", "1234567890123456"}
	for _, p := range invalid {
		if ValidatePhoneNumber(p) {
			t.Errorf("expected %q to be invalid", p)
		}
	}
}
