package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"hsse/internal/audit/models"
	"hsse/internal/audit/store"
	id "hsse/pkg/domain"
	"hsse/pkg/platform/sentinel"
)

var (
	fixedNow  = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	auditorID = id.UserID(uuid.MustParse("11111111-2222-4333-8444-555555555555"))
)

func newAudit(t *testing.T, auditID id.AuditID, scheduled time.Time) *models.Audit {
	t.Helper()
	a, err := models.NewAudit(auditID, models.BasicInfo{
		Title:         "Loading dock walk",
		Type:          models.AuditTypeSafety,
		Category:      models.AuditCategoryRoutine,
		Priority:      models.AuditPriorityMedium,
		ScheduledDate: scheduled,
		AuditorID:     auditorID,
	}, nil, fixedNow)
	if err != nil {
		t.Fatalf("new audit: %v", err)
	}
	return a
}

type InMemoryStoreSuite struct {
	suite.Suite
	store *store.InMemoryStore
	ctx   context.Context
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = store.NewInMemoryStore()
	s.ctx = context.Background()
}

func (s *InMemoryStoreSuite) create(scheduled time.Time) *models.Audit {
	auditID, err := s.store.NextID(s.ctx)
	s.Require().NoError(err)
	a := newAudit(s.T(), auditID, scheduled)
	s.Require().NoError(s.store.Create(s.ctx, a))
	return a
}

func (s *InMemoryStoreSuite) TestNextID() {
	first, err := s.store.NextID(s.ctx)
	s.Require().NoError(err)
	second, err := s.store.NextID(s.ctx)
	s.Require().NoError(err)
	s.Equal(first+1, second)
}

func (s *InMemoryStoreSuite) TestCreateAndFind() {
	a := s.create(fixedNow.Add(time.Hour))
	s.Equal(int64(1), a.Version())

	s.Run("returns an independent copy", func() {
		loaded, err := s.store.FindByID(s.ctx, a.ID())
		s.Require().NoError(err)
		s.Equal(a.Number(), loaded.Number())
		s.Equal(int64(1), loaded.Version())

		s.Require().NoError(loaded.UpdateBasicInfo(models.BasicInfo{
			Title:         "Changed",
			Type:          models.AuditTypeSafety,
			Category:      models.AuditCategoryRoutine,
			Priority:      models.AuditPriorityHigh,
			ScheduledDate: fixedNow.Add(time.Hour),
			AuditorID:     auditorID,
		}, fixedNow))

		again, err := s.store.FindByID(s.ctx, a.ID())
		s.Require().NoError(err)
		s.Equal("Loading dock walk", again.Title())
	})

	s.Run("duplicate id conflicts", func() {
		s.ErrorIs(s.store.Create(s.ctx, newAudit(s.T(), a.ID(), fixedNow)), sentinel.ErrConflict)
	})

	s.Run("missing audit", func() {
		_, err := s.store.FindByID(s.ctx, 999)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *InMemoryStoreSuite) TestSaveOptimisticVersion() {
	a := s.create(fixedNow.Add(time.Hour))

	first, err := s.store.FindByID(s.ctx, a.ID())
	s.Require().NoError(err)
	second, err := s.store.FindByID(s.ctx, a.ID())
	s.Require().NoError(err)

	s.Require().NoError(first.Schedule(fixedNow.Add(2*time.Hour), fixedNow))
	s.Require().NoError(s.store.Save(s.ctx, first))
	s.Equal(int64(2), first.Version())

	s.Require().NoError(second.Cancel("duplicate", fixedNow))
	s.ErrorIs(s.store.Save(s.ctx, second), sentinel.ErrConflict)

	loaded, err := s.store.FindByID(s.ctx, a.ID())
	s.Require().NoError(err)
	s.Equal(models.AuditStatusScheduled, loaded.Status())
}

func (s *InMemoryStoreSuite) TestSaveUnknown() {
	s.ErrorIs(s.store.Save(s.ctx, newAudit(s.T(), 77, fixedNow)), sentinel.ErrNotFound)
}

func (s *InMemoryStoreSuite) TestListAndOverdue() {
	past := s.create(fixedNow.Add(time.Hour))
	s.Require().NoError(past.Schedule(fixedNow.Add(time.Hour), fixedNow))
	s.Require().NoError(s.store.Save(s.ctx, past))

	future := s.create(fixedNow.Add(48 * time.Hour))
	s.Require().NoError(future.Schedule(fixedNow.Add(48*time.Hour), fixedNow))
	s.Require().NoError(s.store.Save(s.ctx, future))

	draft := s.create(fixedNow.Add(time.Hour))

	s.Run("filters by status", func() {
		scheduled, err := s.store.List(s.ctx, store.ListFilter{Status: models.AuditStatusScheduled})
		s.Require().NoError(err)
		s.Len(scheduled, 2)

		drafts, err := s.store.List(s.ctx, store.ListFilter{Status: models.AuditStatusDraft})
		s.Require().NoError(err)
		s.Require().Len(drafts, 1)
		s.Equal(draft.ID(), drafts[0].ID())
	})

	s.Run("limit", func() {
		all, err := s.store.List(s.ctx, store.ListFilter{Limit: 2})
		s.Require().NoError(err)
		s.Len(all, 2)
	})

	s.Run("due for overdue", func() {
		due, err := s.store.ListDueForOverdue(s.ctx, fixedNow.Add(24*time.Hour), 10)
		s.Require().NoError(err)
		s.Equal([]id.AuditID{past.ID()}, due)
	})
}
