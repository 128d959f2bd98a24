package routes

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/AESiR-0/daftar-backend/models"
	"github.com/AESiR-0/daftar-backend/storage"
)

func TestJoinDaftarDuplicateMembership(t *testing.T) {
	app := buildDomainTestApp(t)

	active := true
	daftar := models.Daftar{Name: "Join Target", DaftarCode: "join1", OnDaftarSince: time.Now(), IsActive: &active}
	if err := storage.DB.Create(&daftar).Error; err != nil {
		t.Fatalf("seed daftar: %v", err)
	}
	investor := models.Investor{FirstName: "Joiner", Email: "join@example.com", Phone: "15550000020", IsActive: &active}
	if err := storage.DB.Create(&investor).Error; err != nil {
		t.Fatalf("seed investor: %v", err)
	}
	token := signTestToken(investor.ID, "investor")

	resp := doJSON(app, http.MethodPost, "/daftars/join", token, `{"daftarCode":"join1"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("first join: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(app, http.MethodPost, "/daftars/join", token, `{"daftarCode":"join1"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("second join: expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "already a member") {
		t.Fatalf("second join: got %s", resp.Body.String())
	}

	var memberships int64
	storage.DB.Model(&models.DaftarInvestor{}).
		Where("daftar_id = ? AND investor_id = ?", daftar.ID, investor.ID).
		Count(&memberships)
	if memberships != 1 {
		t.Fatalf("expected a single membership row, got %d", memberships)
	}
}

func TestJoinDaftarUnknownCode(t *testing.T) {
	app := buildDomainTestApp(t)

	active := true
	investor := models.Investor{FirstName: "Lost", Email: "lost@example.com", Phone: "15550000021", IsActive: &active}
	if err := storage.DB.Create(&investor).Error; err != nil {
		t.Fatalf("seed investor: %v", err)
	}
	token := signTestToken(investor.ID, "investor")

	resp := doJSON(app, http.MethodPost, "/daftars/join", token, `{"daftarCode":"nope"}`)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("unknown code: expected 404, got %d", resp.Code)
	}
}
