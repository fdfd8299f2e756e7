package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"hsse/internal/audit/models"
	id "hsse/pkg/domain"
	dErrors "hsse/pkg/domain-errors"
)

type AuditSuite struct {
	suite.Suite
}

func TestAuditSuite(t *testing.T) {
	suite.Run(t, new(AuditSuite))
}

func (s *AuditSuite) TestNewAudit() {
	s.Run("starts in draft with low risk and a typed number", func() {
		a, err := models.NewAudit(7, validBasicInfo(), fixedNumbers, fixedNow)
		s.Require().NoError(err)
		s.Equal(models.AuditStatusDraft, a.Status())
		s.Equal(models.RiskLevelLow, a.RiskLevel())
		s.Equal("SA-20240315-A1B2C3", a.Number())
		s.True(a.ScoringEnabled())
		s.Nil(a.OverallScore())

		events := a.PullEvents()
		s.Require().Len(events, 1)
		s.Equal(models.EventAuditCreated, events[0].Type)
		s.Equal(id.AuditID(7), events[0].AuditID)
		s.Empty(a.PendingEvents())
	})

	s.Run("inspection variant disables scoring", func() {
		a, err := models.NewInspection(8, validBasicInfo(), fixedNumbers, fixedNow)
		s.Require().NoError(err)
		s.False(a.ScoringEnabled())
		s.Equal("IN-20240315-A1B2C3", a.Number())
	})

	s.Run("rejects invalid input", func() {
		cases := map[string]func(*models.BasicInfo){
			"empty title":     func(b *models.BasicInfo) { b.Title = "   " },
			"unknown type":    func(b *models.BasicInfo) { b.Type = "radiation" },
			"nil auditor":     func(b *models.BasicInfo) { b.AuditorID = id.UserID{} },
			"zero schedule":   func(b *models.BasicInfo) { b.ScheduledDate = time.Time{} },
			"unknown urgency": func(b *models.BasicInfo) { b.Priority = "urgent" },
		}
		for name, mutate := range cases {
			info := validBasicInfo()
			mutate(&info)
			_, err := models.NewAudit(1, info, fixedNumbers, fixedNow)
			s.Require().Error(err, name)
			s.True(models.IsInvariantViolation(err), name)
		}
	})

	s.Run("rejects non-positive id", func() {
		_, err := models.NewAudit(0, validBasicInfo(), fixedNumbers, fixedNow)
		s.Require().Error(err)
	})
}

func (s *AuditSuite) TestLifecycle() {
	s.Run("happy path through archive", func() {
		a := newDraftAudit()
		s.Require().NoError(a.Schedule(fixedNow.Add(time.Hour), fixedNow))
		s.Equal(models.AuditStatusScheduled, a.Status())

		started := fixedNow.Add(2 * time.Hour)
		s.Require().NoError(a.StartAudit(started))
		s.Equal(models.AuditStatusInProgress, a.Status())
		s.Require().NotNil(a.StartedDate())
		s.Equal(started, *a.StartedDate())

		completed := started.Add(95 * time.Minute)
		s.Require().NoError(a.CompleteAudit("all good", "keep going", completed))
		s.Equal(models.AuditStatusCompleted, a.Status())
		s.Require().NotNil(a.ActualDurationMinutes())
		s.Equal(95, *a.ActualDurationMinutes())
		s.Equal("all good", a.Summary())

		s.Require().NoError(a.Archive(completed.Add(time.Hour)))
		s.Equal(models.AuditStatusArchived, a.Status())

		var types []models.EventType
		for _, e := range a.PullEvents() {
			types = append(types, e.Type)
		}
		s.Equal([]models.EventType{
			models.EventAuditScheduled,
			models.EventAuditStarted,
			models.EventAuditCompleted,
			models.EventAuditArchived,
		}, types)
	})

	s.Run("completing twice fails the second time", func() {
		a := newInProgressAudit()
		s.Require().NoError(a.CompleteAudit("", "", fixedNow.Add(3*time.Hour)))
		err := a.CompleteAudit("", "", fixedNow.Add(4*time.Hour))
		s.Require().Error(err)
		s.True(models.IsIllegalStateTransition(err))
		s.Contains(err.Error(), "cannot complete audit in status completed")
	})

	s.Run("completing a draft is illegal and leaves state untouched", func() {
		a := newDraftAudit()
		before := a.ToRecord()
		err := a.CompleteAudit("x", "y", fixedNow)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeIllegalStateTransition))
		s.Equal(before, a.ToRecord())
		s.Empty(a.PendingEvents())
	})

	s.Run("schedule only from draft", func() {
		a := newInProgressAudit()
		err := a.Schedule(fixedNow, fixedNow)
		s.True(models.IsIllegalStateTransition(err))
	})

	s.Run("submit for review and reopen resets failed items", func() {
		a := newInProgressAudit()
		ok, err := a.AddItem(models.ItemInput{Description: "Exit clear", Type: models.ItemTypeYesNo, SortOrder: 1}, fixedNow)
		s.Require().NoError(err)
		bad, err := a.AddItem(models.ItemInput{Description: "Extinguisher tagged", Type: models.ItemTypeYesNo, SortOrder: 2}, fixedNow)
		s.Require().NoError(err)
		s.Require().NoError(a.CompleteItemAssessment(ok.ID(), models.Assessment{IsCompliant: true, AssessedBy: "kim"}, fixedNow))
		s.Require().NoError(a.CompleteItemAssessment(bad.ID(), models.Assessment{IsCompliant: false, AssessedBy: "kim"}, fixedNow))

		s.Require().NoError(a.SubmitForReview(fixedNow))
		s.Equal(models.AuditStatusUnderReview, a.Status())
		s.Require().NoError(a.ReopenForReassessment("photos missing", fixedNow))
		s.Equal(models.AuditStatusInProgress, a.Status())

		got, _ := a.Item(ok.ID())
		s.Equal(models.ItemStatusCompleted, got.Status())
		got, _ = a.Item(bad.ID())
		s.Equal(models.ItemStatusNotStarted, got.Status())

		events := a.PullEvents()
		s.Equal(models.EventAuditReopened, events[len(events)-1].Type)
		s.Equal("photos missing", events[len(events)-1].Reason)
	})

	s.Run("every status change is an edge of the status graph", func() {
		a := newDraftAudit()
		steps := []func() error{
			func() error { return a.Schedule(fixedNow.Add(time.Hour), fixedNow) },
			func() error { return a.MarkOverdue(fixedNow.Add(2 * time.Hour)) },
			func() error { return a.StartAudit(fixedNow.Add(3 * time.Hour)) },
			func() error { return a.SubmitForReview(fixedNow.Add(4 * time.Hour)) },
			func() error { return a.ReopenForReassessment("recheck", fixedNow.Add(5*time.Hour)) },
			func() error { return a.CompleteAudit("", "", fixedNow.Add(6*time.Hour)) },
			func() error { return a.Archive(fixedNow.Add(7 * time.Hour)) },
		}
		for _, step := range steps {
			from := a.Status()
			s.Require().NoError(step())
			s.True(from.CanTransitionTo(a.Status()), "%s -> %s", from, a.Status())
		}
	})

	s.Run("start cannot take the reopen edge out of review", func() {
		a := newInProgressAudit()
		s.Require().NoError(a.SubmitForReview(fixedNow))
		a.PullEvents()
		s.True(models.AuditStatusUnderReview.CanTransitionTo(models.AuditStatusInProgress))

		err := a.StartAudit(fixedNow)
		s.True(models.IsIllegalStateTransition(err))
		s.Equal(models.AuditStatusUnderReview, a.Status())
		s.Empty(a.PendingEvents())
	})

	s.Run("cancel from any non-final state", func() {
		for _, build := range []func() *models.Audit{newDraftAudit, newInProgressAudit} {
			a := build()
			s.Require().NoError(a.Cancel("budget", fixedNow))
			s.Equal(models.AuditStatusCancelled, a.Status())
			s.Equal("budget", a.CancellationReason())
			s.True(a.CanArchive())
		}
	})

	s.Run("cancel rejected once completed", func() {
		a := newInProgressAudit()
		s.Require().NoError(a.CompleteAudit("", "", fixedNow.Add(3*time.Hour)))
		s.False(a.CanCancel())
		s.True(models.IsIllegalStateTransition(a.Cancel("late", fixedNow)))
	})

	s.Run("archive requires completed or cancelled", func() {
		a := newInProgressAudit()
		s.True(models.IsIllegalStateTransition(a.Archive(fixedNow)))
	})
}

func (s *AuditSuite) TestOverdue() {
	s.Run("marks a scheduled audit whose date has passed", func() {
		a := newDraftAudit()
		s.Require().NoError(a.Schedule(fixedNow, fixedNow))
		later := fixedNow.Add(24 * time.Hour)
		s.True(a.IsOverdue(later))
		s.Require().NoError(a.MarkOverdue(later))
		s.Equal(models.AuditStatusOverdue, a.Status())
		s.Equal(models.EventAuditOverdue, a.PullEvents()[1].Type)
	})

	s.Run("rejects a future schedule", func() {
		a := newDraftAudit()
		s.Require().NoError(a.Schedule(fixedNow.Add(time.Hour), fixedNow))
		err := a.MarkOverdue(fixedNow)
		s.True(models.IsIllegalStateTransition(err))
		s.Equal(models.AuditStatusScheduled, a.Status())
	})

	s.Run("overdue does not block starting or cancelling", func() {
		a := newDraftAudit()
		s.Require().NoError(a.Schedule(fixedNow, fixedNow))
		s.Require().NoError(a.MarkOverdue(fixedNow.Add(time.Hour)))
		s.True(a.CanStart())
		s.Require().NoError(a.StartAudit(fixedNow.Add(2 * time.Hour)))

		b := newDraftAudit()
		s.Require().NoError(b.Schedule(fixedNow, fixedNow))
		s.Require().NoError(b.MarkOverdue(fixedNow.Add(time.Hour)))
		s.Require().NoError(b.Cancel("site closed", fixedNow.Add(2*time.Hour)))
	})
}

func (s *AuditSuite) TestUpdateBasicInfo() {
	s.Run("allowed while draft", func() {
		a := newDraftAudit()
		info := validBasicInfo()
		info.Title = "Revised title"
		s.Require().NoError(a.UpdateBasicInfo(info, fixedNow))
		s.Equal("Revised title", a.Title())
		s.Equal(models.EventAuditUpdated, a.PullEvents()[0].Type)
	})

	s.Run("rejected once in progress", func() {
		a := newInProgressAudit()
		err := a.UpdateBasicInfo(validBasicInfo(), fixedNow)
		s.True(models.IsIllegalStateTransition(err))
	})
}

func (s *AuditSuite) TestScoring() {
	s.Run("ten items scoring 82 of 100 band as good", func() {
		a := newInProgressAudit()
		points := []int{10, 9, 8, 8, 8, 8, 8, 8, 8, 7}
		for i, p := range points {
			item, err := a.AddItem(models.ItemInput{
				Description: "Check",
				Type:        models.ItemTypeRating,
				SortOrder:   i + 1,
				MaxPoints:   intPtr(10),
			}, fixedNow)
			s.Require().NoError(err)
			s.Require().NoError(a.CompleteItemAssessment(item.ID(), models.Assessment{
				IsCompliant:  true,
				AssessedBy:   "kim",
				ActualPoints: intPtr(p),
			}, fixedNow))
		}
		s.Require().NoError(a.CompleteAudit("", "", fixedNow.Add(3*time.Hour)))
		s.Require().NotNil(a.ScorePercentage())
		s.InDelta(82.0, *a.ScorePercentage(), 0.0001)
		s.Equal(models.ScoreGood, *a.OverallScore())

		events := a.PullEvents()
		last := events[len(events)-1]
		s.Equal(models.EventAuditCompleted, last.Type)
		s.Equal(models.ScoreGood, *last.OverallScore)
	})

	s.Run("no completed items leaves score unset", func() {
		a := newInProgressAudit()
		_, err := a.AddItem(models.ItemInput{Description: "Check", Type: models.ItemTypeYesNo, SortOrder: 1}, fixedNow)
		s.Require().NoError(err)
		s.Require().NoError(a.CompleteAudit("", "", fixedNow.Add(time.Hour)))
		s.Nil(a.OverallScore())
		s.Nil(a.ScorePercentage())
	})

	s.Run("inspections never score", func() {
		a, err := models.NewInspection(2, validBasicInfo(), fixedNumbers, fixedNow)
		s.Require().NoError(err)
		s.Require().NoError(a.Schedule(fixedNow, fixedNow))
		s.Require().NoError(a.StartAudit(fixedNow))
		item, err := a.AddItem(models.ItemInput{Description: "Check", Type: models.ItemTypeYesNo, SortOrder: 1}, fixedNow)
		s.Require().NoError(err)
		s.Require().NoError(a.CompleteItemAssessment(item.ID(), models.Assessment{IsCompliant: true, AssessedBy: "kim"}, fixedNow))

		updated, err := a.UpdateItemScore(item.ID(), 1, fixedNow)
		s.Require().NoError(err)
		s.False(updated)

		s.Require().NoError(a.CompleteAudit("", "", fixedNow.Add(time.Hour)))
		s.Nil(a.OverallScore())
	})

	s.Run("update item score when scoring is enabled", func() {
		a := newInProgressAudit()
		item, err := a.AddItem(models.ItemInput{Description: "Check", Type: models.ItemTypeRating, SortOrder: 1, MaxPoints: intPtr(5)}, fixedNow)
		s.Require().NoError(err)
		s.Require().NoError(a.CompleteItemAssessment(item.ID(), models.Assessment{IsCompliant: true, AssessedBy: "kim"}, fixedNow))

		updated, err := a.UpdateItemScore(item.ID(), 4, fixedNow)
		s.Require().NoError(err)
		s.True(updated)
		got, _ := a.Item(item.ID())
		s.Equal(4, *got.ActualPoints())

		_, err = a.UpdateItemScore(item.ID(), 6, fixedNow)
		s.True(models.IsInvariantViolation(err))
	})
}

func (s *AuditSuite) TestItems() {
	s.Run("items are kept in sort order with derived numbers", func() {
		a := newDraftAudit()
		_, err := a.AddItem(models.ItemInput{Description: "Second", Type: models.ItemTypeText, SortOrder: 20}, fixedNow)
		s.Require().NoError(err)
		_, err = a.AddItem(models.ItemInput{Description: "First", Type: models.ItemTypeText, SortOrder: 10}, fixedNow)
		s.Require().NoError(err)

		items := a.Items()
		s.Require().Len(items, 2)
		s.Equal("First", items[0].Description())
		s.Equal("AI-000001-010", items[0].Number())
	})

	s.Run("duplicate sort order is rejected", func() {
		a := newDraftAudit()
		_, err := a.AddItem(models.ItemInput{Description: "One", Type: models.ItemTypeText, SortOrder: 1}, fixedNow)
		s.Require().NoError(err)
		_, err = a.AddItem(models.ItemInput{Description: "Two", Type: models.ItemTypeText, SortOrder: 1}, fixedNow)
		s.True(models.IsInvariantViolation(err))
		s.Len(a.Items(), 1)
	})

	s.Run("items are frozen after completion", func() {
		a := newInProgressAudit()
		item, err := a.AddItem(models.ItemInput{Description: "One", Type: models.ItemTypeText, SortOrder: 1}, fixedNow)
		s.Require().NoError(err)
		s.Require().NoError(a.CompleteAudit("", "", fixedNow.Add(time.Hour)))

		_, err = a.AddItem(models.ItemInput{Description: "Two", Type: models.ItemTypeText, SortOrder: 2}, fixedNow)
		s.True(models.IsInvariantViolation(err))
		s.True(models.IsInvariantViolation(a.RemoveItem(item.ID(), fixedNow)))
		s.True(models.IsInvariantViolation(a.StartItemAssessment(item.ID(), fixedNow)))
	})

	s.Run("removing an item unlinks its findings", func() {
		a := newInProgressAudit()
		item, err := a.AddItem(models.ItemInput{Description: "One", Type: models.ItemTypeText, SortOrder: 1}, fixedNow)
		s.Require().NoError(err)
		itemID := item.ID()
		in := findingInput(models.SeverityMinor)
		in.AuditItemID = &itemID
		f, err := a.RaiseFinding(in, fixedNumbers, fixedNow)
		s.Require().NoError(err)

		s.Require().NoError(a.RemoveItem(itemID, fixedNow))
		got, ok := a.Finding(f.ID())
		s.Require().True(ok)
		s.Nil(got.AuditItemID())
	})

	s.Run("unknown item is not found", func() {
		a := newInProgressAudit()
		err := a.StartItemAssessment(99, fixedNow)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("returned items are copies", func() {
		a := newInProgressAudit()
		item, err := a.AddItem(models.ItemInput{Description: "One", Type: models.ItemTypeYesNo, SortOrder: 1}, fixedNow)
		s.Require().NoError(err)
		s.Require().NoError(item.StartAssessment(fixedNow))
		got, _ := a.Item(item.ID())
		s.Equal(models.ItemStatusNotStarted, got.Status())
	})

	s.Run("completion percentage counts completed and not applicable", func() {
		a := newInProgressAudit()
		s.Equal(0, a.CompletionPercentage())
		var ids []id.ItemID
		for i := 1; i <= 3; i++ {
			item, err := a.AddItem(models.ItemInput{Description: "Check", Type: models.ItemTypeYesNo, SortOrder: i}, fixedNow)
			s.Require().NoError(err)
			ids = append(ids, item.ID())
		}
		s.Require().NoError(a.CompleteItemAssessment(ids[0], models.Assessment{IsCompliant: true, AssessedBy: "kim"}, fixedNow))
		s.Require().NoError(a.MarkItemNotApplicable(ids[1], "no forklifts on site", "kim", fixedNow))
		s.Equal(67, a.CompletionPercentage())
	})
}

func (s *AuditSuite) TestFindings() {
	s.Run("risk follows aggregation rules", func() {
		cases := []struct {
			name       string
			severities []models.FindingSeverity
			want       models.RiskLevel
		}{
			{"critical wins over minors", []models.FindingSeverity{models.SeverityMinor, models.SeverityCritical, models.SeverityMinor}, models.RiskLevelCritical},
			{"three majors escalate", []models.FindingSeverity{models.SeverityMajor, models.SeverityMajor, models.SeverityMajor}, models.RiskLevelCritical},
			{"one major is high", []models.FindingSeverity{models.SeverityMajor}, models.RiskLevelHigh},
			{"moderate is medium", []models.FindingSeverity{models.SeverityMinor, models.SeverityModerate}, models.RiskLevelMedium},
			{"minor only is low", []models.FindingSeverity{models.SeverityMinor}, models.RiskLevelLow},
		}
		for _, tc := range cases {
			a := newInProgressAudit()
			for _, sev := range tc.severities {
				_, err := a.RaiseFinding(findingInput(sev), fixedNumbers, fixedNow)
				s.Require().NoError(err, tc.name)
			}
			s.Equal(tc.want, a.RiskLevel(), tc.name)
		}
	})

	s.Run("finding added event carries finding identity", func() {
		a := newInProgressAudit()
		f, err := a.RaiseFinding(findingInput(models.SeverityMajor), fixedNumbers, fixedNow)
		s.Require().NoError(err)
		s.Equal(id.FindingID(1), f.ID())
		s.Equal(id.AuditID(1), f.AuditID())
		s.Equal("FND-20240315-A1B2C3", f.Number())

		events := a.PullEvents()
		s.Require().Len(events, 1)
		s.Equal(models.EventFindingAdded, events[0].Type)
		s.Equal(f.ID(), events[0].FindingID)
		s.Equal(models.SeverityMajor, events[0].FindingSeverity)
		s.Equal(models.RiskLevelHigh, events[0].RiskLevel)
	})

	s.Run("has critical findings", func() {
		a := newInProgressAudit()
		s.False(a.HasFindings())
		_, err := a.RaiseFinding(findingInput(models.SeverityCritical), fixedNumbers, fixedNow)
		s.Require().NoError(err)
		s.True(a.HasFindings())
		s.True(a.HasCriticalFindings())
	})

	s.Run("update finding recomputes risk and commits only on success", func() {
		a := newInProgressAudit()
		f, err := a.RaiseFinding(findingInput(models.SeverityMinor), fixedNumbers, fixedNow)
		s.Require().NoError(err)

		s.Require().NoError(a.UpdateFinding(f.ID(), fixedNow, func(f *models.Finding) error {
			return f.UpdateSeverity(models.SeverityCritical, fixedNow)
		}))
		s.Equal(models.RiskLevelCritical, a.RiskLevel())

		err = a.UpdateFinding(f.ID(), fixedNow, func(f *models.Finding) error {
			if err := f.SetRootCause("worn seal", fixedNow); err != nil {
				return err
			}
			return f.MarkAsResolved(fixedNow)
		})
		s.True(models.IsIllegalStateTransition(err))
		got, _ := a.Finding(f.ID())
		s.Empty(got.RootCause())
	})

	s.Run("remove finding recomputes risk", func() {
		a := newInProgressAudit()
		f, err := a.RaiseFinding(findingInput(models.SeverityCritical), fixedNumbers, fixedNow)
		s.Require().NoError(err)
		s.Require().NoError(a.RemoveFinding(f.ID(), fixedNow))
		s.Equal(models.RiskLevelLow, a.RiskLevel())
		s.True(dErrors.HasCode(a.RemoveFinding(f.ID(), fixedNow), dErrors.CodeNotFound))
	})

	s.Run("add finding rejects an attached finding and unknown item link", func() {
		a := newInProgressAudit()
		f := newFinding(models.SeverityMinor)
		s.Require().NoError(a.AddFinding(f, fixedNow))
		s.True(models.IsInvariantViolation(a.AddFinding(f, fixedNow)))

		missing := id.ItemID(42)
		in := findingInput(models.SeverityMinor)
		in.AuditItemID = &missing
		_, err := a.RaiseFinding(in, fixedNumbers, fixedNow)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
		s.Len(a.Findings(), 1)
	})

	s.Run("findings are frozen once completed", func() {
		a := newInProgressAudit()
		s.Require().NoError(a.CompleteAudit("", "", fixedNow.Add(time.Hour)))
		a.PullEvents()
		_, err := a.RaiseFinding(findingInput(models.SeverityMinor), fixedNumbers, fixedNow)
		s.True(models.IsInvariantViolation(err))
		s.Empty(a.PendingEvents())
	})
}

func (s *AuditSuite) TestAttachmentsAndComments() {
	s.Run("attachments are added and removed", func() {
		a := newDraftAudit()
		att, err := a.AddAttachment(models.AttachmentInput{FileName: "site.jpg", ContentType: "image/jpeg", Size: 2048}, fixedNow)
		s.Require().NoError(err)
		s.Len(a.Attachments(), 1)
		s.Require().NoError(a.RemoveAttachment(att.ID, fixedNow))
		s.Empty(a.Attachments())
		s.True(dErrors.HasCode(a.RemoveAttachment(att.ID, fixedNow), dErrors.CodeNotFound))
	})

	s.Run("empty file name is rejected", func() {
		a := newDraftAudit()
		_, err := a.AddAttachment(models.AttachmentInput{}, fixedNow)
		s.True(models.IsInvariantViolation(err))
	})

	s.Run("comments are allowed after completion but not after archive", func() {
		a := newInProgressAudit()
		s.Require().NoError(a.CompleteAudit("", "", fixedNow.Add(time.Hour)))
		c, err := a.AddComment("  signed off  ", "lead", fixedNow)
		s.Require().NoError(err)
		s.Equal("signed off", c.Text)

		s.Require().NoError(a.Archive(fixedNow))
		_, err = a.AddComment("late note", "lead", fixedNow)
		s.True(models.IsInvariantViolation(err))
		s.Len(a.Comments(), 1)
	})
}

func (s *AuditSuite) TestSetters() {
	s.Run("estimated duration must be positive", func() {
		a := newDraftAudit()
		s.True(models.IsInvariantViolation(a.SetEstimatedDuration(0, fixedNow)))
		s.Require().NoError(a.SetEstimatedDuration(90, fixedNow))
		s.Equal(90, *a.EstimatedDurationMinutes())
	})

	s.Run("compliance info is stored until locked", func() {
		a := newInProgressAudit()
		info := models.ComplianceInfo{StandardsApplied: "ISO 45001", IsRegulatory: true, RegulatoryAuthority: "HSE"}
		s.Require().NoError(a.SetComplianceInfo(info, fixedNow))
		s.Equal(info, a.Compliance())

		s.Require().NoError(a.CompleteAudit("", "", fixedNow.Add(time.Hour)))
		s.True(models.IsInvariantViolation(a.SetComplianceInfo(models.ComplianceInfo{}, fixedNow)))
	})
}
