package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"hsse/internal/audit/models"
	id "hsse/pkg/domain"
	"hsse/pkg/platform/sentinel"
)

// InMemoryStore keeps record snapshots so callers never share aggregate
// pointers with the store.
type InMemoryStore struct {
	mu      sync.RWMutex
	nextID  int64
	records map[id.AuditID]models.AuditRecord
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[id.AuditID]models.AuditRecord)}
}

func (s *InMemoryStore) NextID(_ context.Context) (id.AuditID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	return id.AuditID(s.nextID), nil
}

func (s *InMemoryStore) Create(_ context.Context, audit *models.Audit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[audit.ID()]; exists {
		return sentinel.ErrConflict
	}
	for _, rec := range s.records {
		if rec.Number == audit.Number() {
			return sentinel.ErrConflict
		}
	}
	rec := audit.ToRecord()
	rec.Version = 1
	s.records[audit.ID()] = rec
	audit.SetVersion(1)
	return nil
}

func (s *InMemoryStore) Save(_ context.Context, audit *models.Audit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.records[audit.ID()]
	if !ok {
		return sentinel.ErrNotFound
	}
	if current.Version != audit.Version() {
		return sentinel.ErrConflict
	}
	rec := audit.ToRecord()
	rec.Version = current.Version + 1
	s.records[audit.ID()] = rec
	audit.SetVersion(rec.Version)
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, auditID id.AuditID) (*models.Audit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[auditID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return models.FromRecord(rec), nil
}

func (s *InMemoryStore) List(_ context.Context, filter ListFilter) ([]*models.Audit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]id.AuditID, 0, len(s.records))
	for auditID, rec := range s.records {
		if filter.matches(rec) {
			ids = append(ids, auditID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if len(ids) > filter.limit() {
		ids = ids[:filter.limit()]
	}
	out := make([]*models.Audit, len(ids))
	for i, auditID := range ids {
		out[i] = models.FromRecord(s.records[auditID])
	}
	return out, nil
}

func (s *InMemoryStore) ListDueForOverdue(_ context.Context, now time.Time, limit int) ([]id.AuditID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var due []models.AuditRecord
	for _, rec := range s.records {
		if dueForOverdue(rec, now) {
			due = append(due, rec)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].ScheduledDate.Before(due[j].ScheduledDate) })
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	out := make([]id.AuditID, len(due))
	for i, rec := range due {
		out[i] = rec.ID
	}
	return out, nil
}
