package outbox

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"hsse/pkg/platform/circuit"
	txcontext "hsse/pkg/platform/tx"
)

const (
	defaultRelayInterval = time.Second
	defaultBatchSize     = 100
)

// Relay polls the store and hands pending records to a publisher. Delivery is
// at-least-once: a crash between publish and mark re-sends the batch.
type Relay struct {
	store     Store
	publisher Publisher
	tx        txcontext.Runner
	interval  time.Duration
	batchSize int
	logger    *slog.Logger
	metrics   *Metrics
	now       func() time.Time

	breakerThreshold int
	breakerCooldown  time.Duration
	breaker          *circuit.Breaker
}

// Option configures the Relay.
type Option func(*Relay)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Relay) { r.logger = logger }
}

func WithMetrics(m *Metrics) Option {
	return func(r *Relay) { r.metrics = m }
}

func WithInterval(d time.Duration) Option {
	return func(r *Relay) {
		if d > 0 {
			r.interval = d
		}
	}
}

func WithBatchSize(n int) Option {
	return func(r *Relay) {
		if n > 0 {
			r.batchSize = n
		}
	}
}

// WithTxRunner wraps fetch, publish and mark in one transaction so row locks
// taken by FetchUnpublished hold until the batch is marked.
func WithTxRunner(tx txcontext.Runner) Option {
	return func(r *Relay) { r.tx = tx }
}

// WithBreaker opens the relay after threshold consecutive publish failures.
func WithBreaker(threshold int, cooldown time.Duration) Option {
	return func(r *Relay) {
		r.breakerThreshold = threshold
		r.breakerCooldown = cooldown
	}
}

func WithClock(now func() time.Time) Option {
	return func(r *Relay) { r.now = now }
}

func NewRelay(store Store, publisher Publisher, opts ...Option) *Relay {
	r := &Relay{
		store:     store,
		publisher: publisher,
		tx:        txcontext.NoopRunner{},
		interval:  defaultRelayInterval,
		batchSize: defaultBatchSize,
		logger:    slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.breaker = circuit.New("outbox-relay",
		circuit.WithFailureThreshold(r.breakerThreshold),
		circuit.WithCooldown(r.breakerCooldown),
		circuit.WithClock(r.now),
	)
	return r
}

// Run relays until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			for {
				n, err := r.RelayOnce(ctx)
				if err != nil {
					r.logger.WarnContext(ctx, "outbox relay batch failed", "error", err)
					break
				}
				if n < r.batchSize {
					break
				}
			}
		}
	}
}

// RelayOnce publishes at most one batch and returns the number delivered.
func (r *Relay) RelayOnce(ctx context.Context) (int, error) {
	if !r.breaker.Allow() {
		return 0, nil
	}
	start := r.now()
	var delivered int
	var publishErr error
	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		records, err := r.store.FetchUnpublished(ctx, r.batchSize)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		ids := make([]uuid.UUID, len(records))
		for i, rec := range records {
			ids[i] = rec.ID
		}
		if publishErr = r.publisher.Publish(ctx, records); publishErr != nil {
			return r.store.MarkFailed(ctx, ids, publishErr.Error())
		}
		if err := r.store.MarkPublished(ctx, ids, r.now()); err != nil {
			return err
		}
		delivered = len(records)
		return nil
	})
	if err != nil {
		return 0, err
	}
	if publishErr != nil {
		_, change := r.breaker.RecordFailure()
		if r.metrics != nil {
			r.metrics.IncPublishFailure()
			r.metrics.SetBreakerState(r.breaker.IsOpen())
		}
		if change.Opened {
			r.logger.ErrorContext(ctx, "outbox relay paused after repeated publish failures", "error", publishErr)
		}
		return 0, publishErr
	}
	if delivered > 0 {
		if _, change := r.breaker.RecordSuccess(); change.Closed {
			r.logger.InfoContext(ctx, "outbox relay resumed")
		}
		if r.metrics != nil {
			r.metrics.IncPublished(delivered)
			r.metrics.SetBreakerState(false)
			r.metrics.ObserveBatchDuration(r.now().Sub(start).Seconds())
		}
		r.logger.DebugContext(ctx, "outbox batch relayed", "count", delivered)
	}
	return delivered, nil
}
