package utils

import (
	"github.com/AESiR-0/daftar-backend/models"
	"github.com/AESiR-0/daftar-backend/storage"
	"gorm.io/gorm"
)

// Capability checks over the entity store. Each check is implemented once and
// called from every handler that needs it; a false result is surfaced to the
// caller as not-found (bills excepted, see InvestorIsDaftarAdminForPitch).

// FounderOwnsPitch reports whether a founder_pitch_relationship row links the
// founder to the pitch. That row is the whole of founder-side access control.
func FounderOwnsPitch(founderID, pitchID uint) bool {
	var count int64
	storage.DB.Model(&models.FounderPitchRelationship{}).
		Where("founder_id = ? AND pitch_id = ?", founderID, pitchID).
		Count(&count)
	return count > 0
}

// InvestorCanAccessPitch walks pitch -> scout -> daftar -> daftar_investors
// and requires an active membership at the end of the chain.
func InvestorCanAccessPitch(investorID, pitchID uint) bool {
	var count int64
	storage.DB.Table("pitches").
		Joins("JOIN scouts ON scouts.id = pitches.scout_id").
		Joins("JOIN daftar_investors ON daftar_investors.daftar_id = scouts.daftar_id").
		Where("pitches.id = ? AND daftar_investors.investor_id = ? AND daftar_investors.is_active = ?",
			pitchID, investorID, true).
		Count(&count)
	return count > 0
}

// InvestorIsDaftarAdminForPitch is the stricter variant for privileged
// actions: the membership must also carry the admin role.
func InvestorIsDaftarAdminForPitch(investorID, pitchID uint) bool {
	var count int64
	storage.DB.Table("pitches").
		Joins("JOIN scouts ON scouts.id = pitches.scout_id").
		Joins("JOIN daftar_investors ON daftar_investors.daftar_id = scouts.daftar_id").
		Where("pitches.id = ? AND daftar_investors.investor_id = ? AND daftar_investors.is_active = ? AND daftar_investors.role = ?",
			pitchID, investorID, true, models.DaftarRoleAdmin).
		Count(&count)
	return count > 0
}

// InvestorCanManageScout requires an active membership in the scout's daftar.
// Guards the scout update and lifecycle endpoints; a false result covers both
// a missing scout and a non-member caller.
func InvestorCanManageScout(investorID, scoutID uint) bool {
	var count int64
	storage.DB.Table("scouts").
		Joins("JOIN daftar_investors ON daftar_investors.daftar_id = scouts.daftar_id").
		Where("scouts.id = ? AND daftar_investors.investor_id = ? AND daftar_investors.is_active = ?",
			scoutID, investorID, true).
		Count(&count)
	return count > 0
}

// InvestorIsActiveMember reports whether the investor holds an active
// membership in the daftar itself.
func InvestorIsActiveMember(investorID, daftarID uint) bool {
	var count int64
	storage.DB.Model(&models.DaftarInvestor{}).
		Where("daftar_id = ? AND investor_id = ? AND is_active = ?", daftarID, investorID, true).
		Count(&count)
	return count > 0
}

// CanViewDocument is the read-time visibility rule: a viewer sees their own
// uploads plus the other side's non-private uploads. Own-side uploads by a
// different actor of the same type stay hidden.
func CanViewDocument(doc models.Document, viewerType string, viewerID uint) bool {
	if doc.UploadedByType == viewerType {
		return doc.UploadedByID == viewerID
	}
	return !doc.IsPrivate
}

// VisibleDocuments is CanViewDocument as a gorm scope, for listing queries.
func VisibleDocuments(viewerType string, viewerID uint) func(db *gorm.DB) *gorm.DB {
	otherType := models.UploaderInvestor
	if viewerType == models.UploaderInvestor {
		otherType = models.UploaderFounder
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"(uploaded_by_type = ? AND uploaded_by_id = ?) OR (uploaded_by_type = ? AND is_private = ?)",
			viewerType, viewerID, otherType, false)
	}
}
