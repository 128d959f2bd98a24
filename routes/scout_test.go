package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/AESiR-0/daftar-backend/models"
	"github.com/AESiR-0/daftar-backend/storage"
	"github.com/AESiR-0/daftar-backend/utils"
	"github.com/glebarez/sqlite"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"gorm.io/gorm"
)

// setupTestDB swaps storage.DB for an in-memory sqlite database with the
// relevant tables migrated.
func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&models.Founder{},
		&models.Investor{},
		&models.Daftar{},
		&models.DaftarInvestor{},
		&models.Scout{},
		&models.Pitch{},
		&models.FounderPitchRelationship{},
		&models.Offer{},
		&models.OfferAction{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	storage.DB = db
}

// buildDomainTestApp registers the scout, offer, and daftar routes behind the
// real verifier and role middlewares, backed by the test database.
func buildDomainTestApp(t *testing.T) *iris.Application {
	t.Helper()
	setupTestDB(t)
	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")

	app := iris.New()
	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	scouts := app.Party("/scouts", accessTokenVerifierMiddleware, utils.InvestorOnlyMiddleware)
	{
		scouts.Put("/{id:uint}/details", UpdateScoutDetails)
		scouts.Put("/{id:uint}/submit", SubmitScout)
		scouts.Put("/{id:uint}/approve", ApproveScout)
		scouts.Put("/{id:uint}/reject", RejectScout)
		scouts.Put("/{id:uint}/archive", ArchiveScout)
	}

	offers := app.Party("/offers", accessTokenVerifierMiddleware, utils.InvestorOnlyMiddleware)
	{
		offers.Post("/{id:uint}/action", TakeOfferAction)
	}

	daftars := app.Party("/daftars", accessTokenVerifierMiddleware, utils.InvestorOnlyMiddleware)
	{
		daftars.Post("/join", JoinDaftar)
	}

	if err := app.Build(); err != nil {
		t.Fatalf("build app: %v", err)
	}
	return app
}

// seedInvestorWithDaftar creates an investor holding an active admin
// membership in a fresh daftar.
func seedInvestorWithDaftar(t *testing.T, email, phone, code string) (investorID, daftarID uint) {
	t.Helper()
	active := true
	investor := models.Investor{FirstName: "Test", Email: email, Phone: phone, IsActive: &active}
	if err := storage.DB.Create(&investor).Error; err != nil {
		t.Fatalf("seed investor: %v", err)
	}
	daftar := models.Daftar{Name: "Test Daftar", DaftarCode: code, OnDaftarSince: time.Now(), IsActive: &active}
	if err := storage.DB.Create(&daftar).Error; err != nil {
		t.Fatalf("seed daftar: %v", err)
	}
	membership := models.DaftarInvestor{
		DaftarID:   daftar.ID,
		InvestorID: investor.ID,
		Role:       models.DaftarRoleAdmin,
		JoinedAt:   time.Now(),
		IsActive:   &active,
	}
	if err := storage.DB.Create(&membership).Error; err != nil {
		t.Fatalf("seed membership: %v", err)
	}
	return investor.ID, daftar.ID
}

func seedScout(t *testing.T, daftarID uint, status models.ScoutStatus) uint {
	t.Helper()
	scout := models.Scout{DaftarID: daftarID, Name: "Health", Status: string(status)}
	if err := storage.DB.Create(&scout).Error; err != nil {
		t.Fatalf("seed scout: %v", err)
	}
	return scout.ID
}

func doJSON(app *iris.Application, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func TestUpdateScoutDetailsMissingScout(t *testing.T) {
	app := buildDomainTestApp(t)
	investorID, _ := seedInvestorWithDaftar(t, "miss@example.com", "15550000001", "miss1")
	token := signTestToken(investorID, "investor")

	// Empty patch on a scout that does not exist must still be a 404, not a
	// zero-value scout.
	resp := doJSON(app, http.MethodPut, "/scouts/999/details", token, `{}`)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing scout, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestUpdateScoutDetailsEmptyPatch(t *testing.T) {
	app := buildDomainTestApp(t)
	investorID, daftarID := seedInvestorWithDaftar(t, "patch@example.com", "15550000002", "patch1")
	scoutID := seedScout(t, daftarID, models.ScoutStatusDraft)
	token := signTestToken(investorID, "investor")

	resp := doJSON(app, http.MethodPut, scoutPath(scoutID, "details"), token, `{}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for empty patch on existing scout, got %d: %s", resp.Code, resp.Body.String())
	}

	var scout models.Scout
	if err := json.Unmarshal(resp.Body.Bytes(), &scout); err != nil {
		t.Fatalf("decode scout: %v", err)
	}
	if scout.ID != scoutID || scout.Name != "Health" {
		t.Fatalf("expected seeded scout back, got %+v", scout)
	}
}

func TestScoutLifecycle(t *testing.T) {
	app := buildDomainTestApp(t)
	investorID, daftarID := seedInvestorWithDaftar(t, "life@example.com", "15550000003", "life1")
	scoutID := seedScout(t, daftarID, models.ScoutStatusDraft)
	token := signTestToken(investorID, "investor")

	// draft -> pending
	resp := doJSON(app, http.MethodPut, scoutPath(scoutID, "submit"), token, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("submit: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	// Submitting again conflicts and names the current status.
	resp = doJSON(app, http.MethodPut, scoutPath(scoutID, "submit"), token, "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("second submit: expected 400, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "pending") {
		t.Fatalf("second submit: expected current status in message, got %s", resp.Body.String())
	}

	// pending -> approved records the approver.
	resp = doJSON(app, http.MethodPut, scoutPath(scoutID, "approve"), token, `{}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("approve: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var scout models.Scout
	if err := json.Unmarshal(resp.Body.Bytes(), &scout); err != nil {
		t.Fatalf("decode scout: %v", err)
	}
	if scout.Status != string(models.ScoutStatusApproved) {
		t.Fatalf("approve: status = %s, want approved", scout.Status)
	}
	if scout.ApprovedBy == nil || *scout.ApprovedBy != investorID {
		t.Fatalf("approve: approved_by = %v, want %d", scout.ApprovedBy, investorID)
	}
	if scout.ApprovedAt == nil {
		t.Fatal("approve: approved_at not set")
	}

	// Rejecting an approved scout conflicts.
	resp = doJSON(app, http.MethodPut, scoutPath(scoutID, "reject"), token, "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("reject after approve: expected 400, got %d", resp.Code)
	}

	// approved -> archived, then archive is terminal.
	resp = doJSON(app, http.MethodPut, scoutPath(scoutID, "archive"), token, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("archive: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	resp = doJSON(app, http.MethodPut, scoutPath(scoutID, "archive"), token, "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("second archive: expected 400, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "archived") {
		t.Fatalf("second archive: expected current status in message, got %s", resp.Body.String())
	}
}

func TestScoutLifecycleRequiresMembership(t *testing.T) {
	app := buildDomainTestApp(t)
	_, daftarID := seedInvestorWithDaftar(t, "owner@example.com", "15550000004", "own1")
	scoutID := seedScout(t, daftarID, models.ScoutStatusDraft)

	outsiderID, _ := seedInvestorWithDaftar(t, "outsider@example.com", "15550000005", "out1")
	token := signTestToken(outsiderID, "investor")

	resp := doJSON(app, http.MethodPut, scoutPath(scoutID, "submit"), token, "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("submit by non-member: expected 404, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(app, http.MethodPut, scoutPath(scoutID, "details"), token, `{"name":"Taken"}`)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("update by non-member: expected 404, got %d: %s", resp.Code, resp.Body.String())
	}

	// The scout is untouched.
	var scout models.Scout
	storage.DB.First(&scout, scoutID)
	if scout.Status != string(models.ScoutStatusDraft) || scout.Name != "Health" {
		t.Fatalf("scout changed by non-member: %+v", scout)
	}
}

func scoutPath(scoutID uint, suffix string) string {
	return "/scouts/" + strconv.FormatUint(uint64(scoutID), 10) + "/" + suffix
}
