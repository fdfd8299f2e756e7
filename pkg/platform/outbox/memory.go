package outbox

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps records in process. Used when no database is configured
// and in tests.
type MemoryStore struct {
	mu      sync.Mutex
	records []Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, records ...Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, records...)
	return nil
}

func (s *MemoryStore) FetchUnpublished(_ context.Context, limit int) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Record
	for _, r := range s.records {
		if r.PublishedAt != nil {
			continue
		}
		out = append(out, r)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *MemoryStore) MarkPublished(_ context.Context, ids []uuid.UUID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	want := idSet(ids)
	for i := range s.records {
		if want[s.records[i].ID] {
			published := at
			s.records[i].PublishedAt = &published
		}
	}
	return nil
}

func (s *MemoryStore) MarkFailed(_ context.Context, ids []uuid.UUID, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	want := idSet(ids)
	for i := range s.records {
		if want[s.records[i].ID] {
			s.records[i].Attempts++
			s.records[i].LastError = reason
		}
	}
	return nil
}

// All returns a copy of every record, published or not.
func (s *MemoryStore) All() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

func idSet(ids []uuid.UUID) map[uuid.UUID]bool {
	set := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
