// Package outbox implements the transactional outbox: events are appended in
// the same transaction as the state change and relayed to a broker afterwards.
package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Record is one pending message. Payload is the JSON body published as-is.
type Record struct {
	ID            uuid.UUID
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Attempts      int
	LastError     string
}

// NewRecord marshals payload and stamps a fresh id.
func NewRecord(aggregateType, aggregateID, eventType string, payload any, now time.Time) (Record, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Record{}, fmt.Errorf("marshal outbox payload: %w", err)
	}
	return Record{
		ID:            uuid.New(),
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Payload:       body,
		CreatedAt:     now,
	}, nil
}

// Appender writes records as part of the caller's unit of work.
type Appender interface {
	Append(ctx context.Context, records ...Record) error
}

// Store is the relay's view of the outbox table.
type Store interface {
	Appender
	// FetchUnpublished returns up to limit records in creation order.
	FetchUnpublished(ctx context.Context, limit int) ([]Record, error)
	MarkPublished(ctx context.Context, ids []uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, ids []uuid.UUID, reason string) error
}

// Publisher delivers records to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, records []Record) error
	Close() error
}
