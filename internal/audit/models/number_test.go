package models_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hsse/internal/audit/models"
)

func TestAuditNumberPrefixes(t *testing.T) {
	want := map[models.AuditType]string{
		models.AuditTypeSafety:        "SA",
		models.AuditTypeEnvironmental: "EA",
		models.AuditTypeEquipment:     "EQ",
		models.AuditTypeCompliance:    "CA",
		models.AuditTypeFire:          "FA",
		models.AuditTypeChemical:      "CH",
		models.AuditTypeErgonomic:     "ER",
		models.AuditTypeEmergency:     "EM",
		models.AuditTypeManagement:    "MA",
		models.AuditTypeProcess:       "PA",
		models.AuditType("other"):     "AU",
	}
	for auditType, prefix := range want {
		assert.Equal(t, prefix+"-20240315-A1B2C3", fixedNumbers.AuditNumber(auditType, fixedNow), string(auditType))
	}
}

func TestNumberFormats(t *testing.T) {
	late := time.Date(2024, 12, 31, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600))
	assert.Equal(t, "FND-20250101-A1B2C3", fixedNumbers.FindingNumber(late), "date uses UTC")
	assert.Equal(t, "IN-20240315-A1B2C3", fixedNumbers.InspectionNumber(fixedNow))
	assert.Equal(t, "AI-000042-007", models.ItemNumber(42, 7))

	random := models.DefaultNumberGenerator().FindingNumber(fixedNow)
	assert.Regexp(t, regexp.MustCompile(`^FND-20240315-[0-9A-F]{6}$`), random)
}
