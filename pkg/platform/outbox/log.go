package outbox

import (
	"context"
	"log/slog"
)

// LogPublisher writes records to a logger. Used when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, records []Record) error {
	for _, r := range records {
		p.logger.InfoContext(ctx, "domain event",
			"outbox_id", r.ID,
			"event_type", r.EventType,
			"aggregate_type", r.AggregateType,
			"aggregate_id", r.AggregateID,
			"payload", string(r.Payload),
		)
	}
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
