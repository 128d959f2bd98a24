package routes

import (
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/AESiR-0/daftar-backend/models"
	"github.com/AESiR-0/daftar-backend/storage"
)

func seedPendingOffer(t *testing.T, investorID uint) uint {
	t.Helper()
	offer := models.Offer{
		PitchID:     1,
		InvestorID:  investorID,
		Amount:      50000,
		Status:      string(models.OfferStatusPending),
		OfferSentAt: time.Now(),
	}
	if err := storage.DB.Create(&offer).Error; err != nil {
		t.Fatalf("seed offer: %v", err)
	}
	return offer.ID
}

func offerActionPath(offerID uint) string {
	return "/offers/" + strconv.FormatUint(uint64(offerID), 10) + "/action"
}

func TestWithdrawOfferAppendsOneAction(t *testing.T) {
	app := buildDomainTestApp(t)
	investorID, _ := seedInvestorWithDaftar(t, "wd@example.com", "15550000010", "wd1")
	offerID := seedPendingOffer(t, investorID)
	token := signTestToken(investorID, "investor")

	resp := doJSON(app, http.MethodPost, offerActionPath(offerID), token, `{"action":"withdraw"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("withdraw: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var offer models.Offer
	storage.DB.First(&offer, offerID)
	if offer.Status != string(models.OfferStatusWithdrawn) {
		t.Fatalf("offer status = %s, want withdrawn", offer.Status)
	}

	var actions int64
	storage.DB.Model(&models.OfferAction{}).Where("offer_id = ?", offerID).Count(&actions)
	if actions != 1 {
		t.Fatalf("expected exactly 1 audit row, got %d", actions)
	}

	// A second withdraw conflicts and appends nothing.
	resp = doJSON(app, http.MethodPost, offerActionPath(offerID), token, `{"action":"withdraw"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("second withdraw: expected 400, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "withdrawn") {
		t.Fatalf("second withdraw: expected current status in message, got %s", resp.Body.String())
	}
	storage.DB.Model(&models.OfferAction{}).Where("offer_id = ?", offerID).Count(&actions)
	if actions != 1 {
		t.Fatalf("expected audit rows unchanged after conflict, got %d", actions)
	}
}

func TestOfferActionStatusCheckedFirst(t *testing.T) {
	app := buildDomainTestApp(t)
	investorID, _ := seedInvestorWithDaftar(t, "acc@example.com", "15550000011", "acc1")
	offerID := seedPendingOffer(t, investorID)
	token := signTestToken(investorID, "investor")

	// Settle the offer first.
	resp := doJSON(app, http.MethodPost, offerActionPath(offerID), token, `{"action":"withdraw"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("withdraw: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	// An unsupported action on a settled offer reports the offer's state, not
	// the unsupported action.
	resp = doJSON(app, http.MethodPost, offerActionPath(offerID), token, `{"action":"accept"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("accept on withdrawn: expected 400, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Cannot accept offer with status withdrawn") {
		t.Fatalf("accept on withdrawn: got %s", resp.Body.String())
	}
}

func TestOfferActionUnsupportedOnPending(t *testing.T) {
	app := buildDomainTestApp(t)
	investorID, _ := seedInvestorWithDaftar(t, "pend@example.com", "15550000012", "pend1")
	offerID := seedPendingOffer(t, investorID)
	token := signTestToken(investorID, "investor")

	resp := doJSON(app, http.MethodPost, offerActionPath(offerID), token, `{"action":"accept"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("accept on pending: expected 400, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "only withdraw") {
		t.Fatalf("accept on pending: got %s", resp.Body.String())
	}

	var offer models.Offer
	storage.DB.First(&offer, offerID)
	if offer.Status != string(models.OfferStatusPending) {
		t.Fatalf("offer status = %s, want pending", offer.Status)
	}
}

func TestOfferActionNotOwnOffer(t *testing.T) {
	app := buildDomainTestApp(t)
	ownerID, _ := seedInvestorWithDaftar(t, "owner2@example.com", "15550000013", "own2")
	offerID := seedPendingOffer(t, ownerID)

	otherID, _ := seedInvestorWithDaftar(t, "other@example.com", "15550000014", "oth1")
	token := signTestToken(otherID, "investor")

	resp := doJSON(app, http.MethodPost, offerActionPath(offerID), token, `{"action":"withdraw"}`)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("withdraw of another investor's offer: expected 404, got %d", resp.Code)
	}
}
