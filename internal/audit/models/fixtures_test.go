package models_test

import (
	"time"

	"github.com/google/uuid"

	"hsse/internal/audit/models"
	id "hsse/pkg/domain"
)

var (
	fixedNow      = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	fixedUUID     = uuid.MustParse("a1b2c3d4-e5f6-4789-abcd-ef0123456789")
	fixedNumbers  = models.NewNumberGenerator(func() uuid.UUID { return fixedUUID })
	testAuditorID = id.UserID(uuid.MustParse("11111111-2222-4333-8444-555555555555"))
)

func intPtr(v int) *int { return &v }

func validBasicInfo() models.BasicInfo {
	return models.BasicInfo{
		Title:         "Quarterly warehouse safety walk",
		Description:   "Racking, forklifts and exits",
		Type:          models.AuditTypeSafety,
		Category:      models.AuditCategoryRoutine,
		Priority:      models.AuditPriorityMedium,
		ScheduledDate: fixedNow.Add(48 * time.Hour),
		AuditorID:     testAuditorID,
	}
}

func newDraftAudit() *models.Audit {
	a, err := models.NewAudit(1, validBasicInfo(), fixedNumbers, fixedNow)
	if err != nil {
		panic(err)
	}
	a.PullEvents()
	return a
}

func newInProgressAudit() *models.Audit {
	a := newDraftAudit()
	mustNil(a.Schedule(fixedNow.Add(time.Hour), fixedNow))
	mustNil(a.StartAudit(fixedNow.Add(2 * time.Hour)))
	a.PullEvents()
	return a
}

func mustNil(err error) {
	if err != nil {
		panic(err)
	}
}

func findingInput(sev models.FindingSeverity) models.FindingInput {
	return models.FindingInput{
		Description: "Blocked fire exit in bay 4",
		Type:        models.FindingTypeNonConformance,
		Severity:    sev,
	}
}

func newFinding(sev models.FindingSeverity) *models.Finding {
	f, err := models.NewFinding(findingInput(sev), "FND-20240315-A1B2C3", fixedNow)
	if err != nil {
		panic(err)
	}
	return f
}
