package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"hsse/internal/audit/models"
	"hsse/internal/audit/store"
	id "hsse/pkg/domain"
	dErrors "hsse/pkg/domain-errors"
	"hsse/pkg/requestcontext"
)

// CreateCommand describes a new audit. Template optionally names a checklist
// whose items seed the audit.
type CreateCommand struct {
	Info                     models.BasicInfo
	Inspection               bool
	Template                 string
	EstimatedDurationMinutes *int
	Compliance               *models.ComplianceInfo
}

// Create builds a Draft audit with a store-allocated id and persists it with
// its creation event.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*models.Audit, error) {
	const op = "create"
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "audit."+op, trace.WithAttributes(attribute.String("audit.operation", op)))
	defer span.End()
	defer s.observeCommand(op, start)

	if err := cmd.Info.Validate(); err != nil {
		return nil, s.fail(ctx, span, op, 0, asValidation(err))
	}
	var items []models.ItemInput
	if cmd.Template != "" {
		tmpl, ok := s.templates.Get(cmd.Template)
		if !ok {
			return nil, s.fail(ctx, span, op, 0, dErrors.Newf(dErrors.CodeValidation, "unknown checklist template %q", cmd.Template))
		}
		if tmpl.Type != "" && tmpl.Type != cmd.Info.Type {
			return nil, s.fail(ctx, span, op, 0, dErrors.Newf(dErrors.CodeValidation,
				"checklist template %q is for %s audits", cmd.Template, tmpl.Type))
		}
		items = tmpl.ItemInputs()
	}

	now := requestcontext.Now(ctx)
	var out *models.Audit
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		auditID, err := s.store.NextID(ctx)
		if err != nil {
			return err
		}
		construct := models.NewAudit
		if cmd.Inspection {
			construct = models.NewInspection
		}
		a, err := construct(auditID, cmd.Info, s.numbers, now)
		if err != nil {
			return asValidation(err)
		}
		for _, in := range items {
			if _, err := a.AddItem(in, now); err != nil {
				return err
			}
		}
		if cmd.EstimatedDurationMinutes != nil {
			if err := a.SetEstimatedDuration(*cmd.EstimatedDurationMinutes, now); err != nil {
				return asValidation(err)
			}
		}
		if cmd.Compliance != nil {
			if err := a.SetComplianceInfo(*cmd.Compliance, now); err != nil {
				return err
			}
		}
		if err := s.store.Create(ctx, a); err != nil {
			return err
		}
		if err := s.appendEvents(ctx, a.PullEvents(), now); err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, span, op, 0, err)
	}

	span.SetAttributes(attribute.Int64("audit.id", int64(out.ID())))
	s.incrementTransition(op)
	s.logger.InfoContext(ctx, "audit created",
		"audit_id", out.ID(),
		"audit_number", out.Number(),
		"scoring_enabled", out.ScoringEnabled(),
		"items", len(out.Items()),
		"request_id", requestcontext.RequestID(ctx),
	)
	return out, nil
}

func (s *Service) Get(ctx context.Context, auditID id.AuditID) (*models.Audit, error) {
	a, err := s.store.FindByID(ctx, auditID)
	if err != nil {
		return nil, translate(err)
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, filter store.ListFilter) ([]*models.Audit, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, dErrors.Newf(dErrors.CodeValidation, "invalid audit status %q", filter.Status)
	}
	if filter.Type != "" && !filter.Type.IsValid() {
		return nil, dErrors.Newf(dErrors.CodeValidation, "invalid audit type %q", filter.Type)
	}
	audits, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, translate(err)
	}
	return audits, nil
}

func (s *Service) UpdateBasicInfo(ctx context.Context, auditID id.AuditID, info models.BasicInfo) (*models.Audit, error) {
	return s.execute(ctx, "update_basic_info", auditID, func(a *models.Audit, now time.Time) error {
		if err := info.Validate(); err != nil {
			return asValidation(err)
		}
		return a.UpdateBasicInfo(info, now)
	})
}

func (s *Service) SetComplianceInfo(ctx context.Context, auditID id.AuditID, info models.ComplianceInfo) (*models.Audit, error) {
	return s.execute(ctx, "set_compliance_info", auditID, func(a *models.Audit, now time.Time) error {
		return a.SetComplianceInfo(info, now)
	})
}

func (s *Service) SetEstimatedDuration(ctx context.Context, auditID id.AuditID, minutes int) (*models.Audit, error) {
	return s.execute(ctx, "set_estimated_duration", auditID, func(a *models.Audit, now time.Time) error {
		if minutes <= 0 {
			return dErrors.New(dErrors.CodeValidation, "estimated duration must be positive")
		}
		return a.SetEstimatedDuration(minutes, now)
	})
}

func (s *Service) Schedule(ctx context.Context, auditID id.AuditID, date time.Time) (*models.Audit, error) {
	return s.execute(ctx, "schedule", auditID, func(a *models.Audit, now time.Time) error {
		if date.IsZero() {
			return dErrors.New(dErrors.CodeValidation, "scheduled date is required")
		}
		return a.Schedule(date, now)
	})
}

func (s *Service) Start(ctx context.Context, auditID id.AuditID) (*models.Audit, error) {
	return s.execute(ctx, "start", auditID, func(a *models.Audit, now time.Time) error {
		return a.StartAudit(now)
	})
}

func (s *Service) SubmitForReview(ctx context.Context, auditID id.AuditID) (*models.Audit, error) {
	return s.execute(ctx, "submit_for_review", auditID, func(a *models.Audit, now time.Time) error {
		return a.SubmitForReview(now)
	})
}

func (s *Service) Reopen(ctx context.Context, auditID id.AuditID, reason string) (*models.Audit, error) {
	return s.execute(ctx, "reopen", auditID, func(a *models.Audit, now time.Time) error {
		return a.ReopenForReassessment(reason, now)
	})
}

// Complete finishes fieldwork and, for scored audits, records the completion
// score in metrics.
func (s *Service) Complete(ctx context.Context, auditID id.AuditID, summary, recommendations string) (*models.Audit, error) {
	a, err := s.execute(ctx, "complete", auditID, func(a *models.Audit, now time.Time) error {
		return a.CompleteAudit(summary, recommendations, now)
	})
	if err != nil {
		return nil, err
	}
	if pct := a.ScorePercentage(); pct != nil && s.metrics != nil {
		s.metrics.ObserveCompletionScore(*pct)
	}
	return a, nil
}

func (s *Service) Cancel(ctx context.Context, auditID id.AuditID, reason string) (*models.Audit, error) {
	return s.execute(ctx, "cancel", auditID, func(a *models.Audit, now time.Time) error {
		return a.Cancel(reason, now)
	})
}

func (s *Service) Archive(ctx context.Context, auditID id.AuditID) (*models.Audit, error) {
	return s.execute(ctx, "archive", auditID, func(a *models.Audit, now time.Time) error {
		return a.Archive(now)
	})
}

// MarkOverdue flags a past-due Scheduled audit. The overdue sweeper calls it
// once per candidate.
func (s *Service) MarkOverdue(ctx context.Context, auditID id.AuditID) (*models.Audit, error) {
	a, err := s.execute(ctx, "mark_overdue", auditID, func(a *models.Audit, now time.Time) error {
		return a.MarkOverdue(now)
	})
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.IncrementOverdueMarked()
	}
	return a, nil
}

// DueForOverdue lists Scheduled audits whose date has passed.
func (s *Service) DueForOverdue(ctx context.Context, limit int) ([]id.AuditID, error) {
	ids, err := s.store.ListDueForOverdue(ctx, requestcontext.Now(ctx), limit)
	if err != nil {
		return nil, translate(err)
	}
	return ids, nil
}

func (s *Service) AddComment(ctx context.Context, auditID id.AuditID, text, author string) (models.Comment, error) {
	var out models.Comment
	_, err := s.execute(ctx, "add_comment", auditID, func(a *models.Audit, now time.Time) error {
		c, err := a.AddComment(text, actorName(ctx, author), now)
		out = c
		return err
	})
	return out, err
}

func (s *Service) AddAttachment(ctx context.Context, auditID id.AuditID, in models.AttachmentInput) (models.Attachment, error) {
	in.UploadedBy = actorName(ctx, in.UploadedBy)
	var out models.Attachment
	_, err := s.execute(ctx, "add_attachment", auditID, func(a *models.Audit, now time.Time) error {
		att, err := a.AddAttachment(in, now)
		out = att
		return err
	})
	return out, err
}

func (s *Service) RemoveAttachment(ctx context.Context, auditID id.AuditID, attachmentID id.AttachmentID) (*models.Audit, error) {
	return s.execute(ctx, "remove_attachment", auditID, func(a *models.Audit, now time.Time) error {
		return a.RemoveAttachment(attachmentID, now)
	})
}
