// Package service runs audit commands: it serializes work per audit, loads
// the aggregate inside a transaction, applies one lifecycle operation, saves
// with a version check and appends the drained domain events to the outbox in
// the same transaction.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"hsse/internal/audit/metrics"
	"hsse/internal/audit/models"
	"hsse/internal/audit/store"
	"hsse/internal/audit/store/lock"
	"hsse/internal/audit/template"
	id "hsse/pkg/domain"
	dErrors "hsse/pkg/domain-errors"
	"hsse/pkg/platform/outbox"
	"hsse/pkg/platform/sentinel"
	txcontext "hsse/pkg/platform/tx"
	"hsse/pkg/requestcontext"
)

const aggregateType = "audit"

type Store interface {
	NextID(ctx context.Context) (id.AuditID, error)
	Create(ctx context.Context, audit *models.Audit) error
	Save(ctx context.Context, audit *models.Audit) error
	FindByID(ctx context.Context, auditID id.AuditID) (*models.Audit, error)
	List(ctx context.Context, filter store.ListFilter) ([]*models.Audit, error)
	ListDueForOverdue(ctx context.Context, now time.Time, limit int) ([]id.AuditID, error)
}

type Locker interface {
	Acquire(ctx context.Context, key string) (lock.Release, error)
}

type Templates interface {
	Get(name string) (*template.Template, bool)
}

// Service orchestrates audit commands.
type Service struct {
	store     Store
	locker    Locker
	tx        txcontext.Runner
	outbox    outbox.Appender
	templates Templates
	numbers   *models.NumberGenerator
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTxRunner sets the unit of work. Postgres deployments pass a SQL runner
// so the store and the outbox share one transaction.
func WithTxRunner(r txcontext.Runner) Option {
	return func(s *Service) {
		s.tx = r
	}
}

func WithLocker(l Locker) Option {
	return func(s *Service) {
		s.locker = l
	}
}

func WithOutbox(a outbox.Appender) Option {
	return func(s *Service) {
		s.outbox = a
	}
}

func WithTemplates(t Templates) Option {
	return func(s *Service) {
		s.templates = t
	}
}

func WithNumberGenerator(g *models.NumberGenerator) Option {
	return func(s *Service) {
		s.numbers = g
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// New constructs a Service. Without options it runs on an in-process lock, a
// no-op transaction runner and an in-memory outbox.
func New(st Store, opts ...Option) *Service {
	s := &Service{
		store:     st,
		locker:    lock.NewLocal(),
		tx:        txcontext.NoopRunner{},
		outbox:    outbox.NewMemoryStore(),
		templates: template.NewRegistry(),
		numbers:   models.DefaultNumberGenerator(),
		logger:    slog.Default(),
		tracer:    otel.Tracer("hsse/audit"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// execute runs one command against an existing audit:
// lock(audit) -> tx{load, mutate, save, append events} -> unlock.
// A failed mutate leaves nothing persisted and publishes nothing.
func (s *Service) execute(ctx context.Context, op string, auditID id.AuditID, mutate func(a *models.Audit, now time.Time) error) (*models.Audit, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "audit."+op, trace.WithAttributes(
		attribute.String("audit.operation", op),
		attribute.Int64("audit.id", int64(auditID)),
	))
	defer span.End()
	defer s.observeCommand(op, start)

	release, err := s.locker.Acquire(ctx, auditID.String())
	if err != nil {
		return nil, s.fail(ctx, span, op, auditID, err)
	}
	defer release()

	now := requestcontext.Now(ctx)
	var out *models.Audit
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		a, err := s.store.FindByID(ctx, auditID)
		if err != nil {
			return err
		}
		if err := mutate(a, now); err != nil {
			return err
		}
		if err := s.store.Save(ctx, a); err != nil {
			return err
		}
		if err := s.appendEvents(ctx, a.PullEvents(), now); err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, span, op, auditID, err)
	}

	s.incrementTransition(op)
	s.logger.InfoContext(ctx, "audit command applied",
		"operation", op,
		"audit_id", auditID,
		"status", out.Status(),
		"version", out.Version(),
		"request_id", requestcontext.RequestID(ctx),
	)
	return out, nil
}

func (s *Service) appendEvents(ctx context.Context, events []models.Event, now time.Time) error {
	if len(events) == 0 {
		return nil
	}
	records := make([]outbox.Record, 0, len(events))
	for _, e := range events {
		rec, err := outbox.NewRecord(aggregateType, e.AuditID.String(), string(e.Type), e, now)
		if err != nil {
			return err
		}
		records = append(records, rec)
	}
	return s.outbox.Append(ctx, records...)
}

// fail translates err, records it on the span and in metrics, and logs it at
// a level matching its cause.
func (s *Service) fail(ctx context.Context, span trace.Span, op string, auditID id.AuditID, err error) error {
	err = translate(err)
	code := dErrors.CodeOf(err)
	span.RecordError(err)
	span.SetStatus(codes.Error, string(code))

	switch code {
	case dErrors.CodeInternal, dErrors.CodeTimeout:
		s.logger.ErrorContext(ctx, "audit command failed",
			"operation", op,
			"audit_id", auditID,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	default:
		s.incrementRejected(op, code)
		s.logger.WarnContext(ctx, "audit command rejected",
			"operation", op,
			"audit_id", auditID,
			"code", code,
			"error", err,
		)
	}
	return err
}

// translate maps store and lock facts to coded errors. Coded errors from the
// engine pass through unchanged.
func translate(err error) error {
	var coded *dErrors.Error
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, "audit not found")
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.Wrap(err, dErrors.CodeConflict, "audit was modified concurrently, retry the command")
	case errors.Is(err, sentinel.ErrLocked):
		return dErrors.Wrap(err, dErrors.CodeConflict, "audit is busy, retry the command")
	case errors.As(err, &coded):
		return err
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return dErrors.Wrap(err, dErrors.CodeTimeout, "audit command timed out")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "audit command failed")
	}
}

// asValidation reports malformed command input as a validation error rather
// than a lifecycle conflict.
func asValidation(err error) error {
	if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
		return dErrors.Wrap(err, dErrors.CodeValidation, "invalid input")
	}
	return err
}

// actorName prefers an explicit name and falls back to the request actor.
func actorName(ctx context.Context, given string) string {
	if given != "" {
		return given
	}
	if actor := requestcontext.ActorID(ctx); !actor.IsNil() {
		return actor.String()
	}
	return ""
}

func (s *Service) incrementTransition(op string) {
	if s.metrics != nil {
		s.metrics.IncrementTransition(op)
	}
}

func (s *Service) incrementRejected(op string, code dErrors.Code) {
	if s.metrics != nil {
		s.metrics.IncrementRejected(op, string(code))
	}
}

func (s *Service) observeCommand(op string, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveCommand(op, start)
	}
}
