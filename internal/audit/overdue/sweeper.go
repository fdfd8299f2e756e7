// Package overdue periodically flags Scheduled audits whose date has passed.
// Overdue is advisory: a flagged audit can still be started or cancelled.
package overdue

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"hsse/internal/audit/metrics"
	"hsse/internal/audit/models"
	id "hsse/pkg/domain"
	dErrors "hsse/pkg/domain-errors"
	"hsse/pkg/requestcontext"
)

// Marker is the slice of the audit service the sweeper drives.
type Marker interface {
	DueForOverdue(ctx context.Context, limit int) ([]id.AuditID, error)
	MarkOverdue(ctx context.Context, auditID id.AuditID) (*models.Audit, error)
}

// Result summarizes one sweep.
type Result struct {
	Candidates int
	Marked     int
	Skipped    int
	Failed     int
}

type Sweeper struct {
	marker      Marker
	logger      *slog.Logger
	metrics     *metrics.Metrics
	interval    time.Duration
	batchSize   int
	concurrency int
	now         func() time.Time
}

type Option func(*Sweeper)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Sweeper) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Sweeper) {
		s.metrics = m
	}
}

func WithInterval(d time.Duration) Option {
	return func(s *Sweeper) {
		if d > 0 {
			s.interval = d
		}
	}
}

func WithBatchSize(n int) Option {
	return func(s *Sweeper) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

// WithConcurrency bounds how many audits are flagged in parallel. Each
// goroutine owns one aggregate.
func WithConcurrency(n int) Option {
	return func(s *Sweeper) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Sweeper) {
		if now != nil {
			s.now = now
		}
	}
}

func New(marker Marker, opts ...Option) *Sweeper {
	s := &Sweeper{
		marker:      marker,
		logger:      slog.Default(),
		interval:    5 * time.Minute,
		batchSize:   200,
		concurrency: 4,
		now:         time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Run sweeps immediately and then on every tick until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		if _, err := s.SweepOnce(ctx); err != nil && ctx.Err() == nil {
			s.logger.ErrorContext(ctx, "overdue sweep failed", "error", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// SweepOnce flags one batch of past-due audits. A failure on one audit does
// not stop the others; audits that moved on since listing are skipped.
func (s *Sweeper) SweepOnce(ctx context.Context) (Result, error) {
	start := time.Now()
	if s.metrics != nil {
		defer s.metrics.ObserveSweep(start)
	}
	ctx = requestcontext.WithTime(ctx, s.now())

	due, err := s.marker.DueForOverdue(ctx, s.batchSize)
	if err != nil {
		return Result{}, err
	}

	var marked, skipped, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, auditID := range due {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			_, err := s.marker.MarkOverdue(gctx, auditID)
			switch {
			case err == nil:
				marked.Add(1)
			case dErrors.HasCode(err, dErrors.CodeIllegalStateTransition), dErrors.HasCode(err, dErrors.CodeConflict):
				skipped.Add(1)
				s.logger.InfoContext(gctx, "audit no longer due for overdue", "audit_id", auditID, "error", err)
			default:
				failed.Add(1)
				s.logger.ErrorContext(gctx, "failed to mark audit overdue", "audit_id", auditID, "error", err)
			}
			return nil
		})
	}
	waitErr := g.Wait()

	res := Result{
		Candidates: len(due),
		Marked:     int(marked.Load()),
		Skipped:    int(skipped.Load()),
		Failed:     int(failed.Load()),
	}
	if res.Candidates > 0 {
		s.logger.InfoContext(ctx, "overdue sweep finished",
			"candidates", res.Candidates,
			"marked", res.Marked,
			"skipped", res.Skipped,
			"failed", res.Failed,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
	return res, waitErr
}
