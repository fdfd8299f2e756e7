package service

import (
	"context"
	"strings"
	"time"

	"hsse/internal/audit/models"
	id "hsse/pkg/domain"
	dErrors "hsse/pkg/domain-errors"
)

func (s *Service) AddFinding(ctx context.Context, auditID id.AuditID, in models.FindingInput) (*models.Finding, error) {
	if err := in.Validate(); err != nil {
		return nil, asValidation(err)
	}
	var out *models.Finding
	_, err := s.execute(ctx, "add_finding", auditID, func(a *models.Audit, now time.Time) error {
		f, err := a.RaiseFinding(in, s.numbers, now)
		out = f
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) RemoveFinding(ctx context.Context, auditID id.AuditID, findingID id.FindingID) (*models.Audit, error) {
	return s.execute(ctx, "remove_finding", auditID, func(a *models.Audit, now time.Time) error {
		return a.RemoveFinding(findingID, now)
	})
}

// UpdateFindingSeverity reclassifies a finding; the audit risk level follows.
func (s *Service) UpdateFindingSeverity(ctx context.Context, auditID id.AuditID, findingID id.FindingID, severity models.FindingSeverity) (*models.Finding, error) {
	if !severity.IsValid() {
		return nil, dErrors.Newf(dErrors.CodeValidation, "invalid finding severity %q", severity)
	}
	return s.findingCommand(ctx, "update_finding_severity", auditID, findingID, func(f *models.Finding, now time.Time) error {
		return f.UpdateSeverity(severity, now)
	})
}

func (s *Service) SetFindingCorrectiveAction(ctx context.Context, auditID id.AuditID, findingID id.FindingID, action models.CorrectiveAction) (*models.Finding, error) {
	return s.findingCommand(ctx, "set_finding_corrective_action", auditID, findingID, func(f *models.Finding, now time.Time) error {
		return f.SetCorrectiveAction(action, now)
	})
}

func (s *Service) UpdateFindingDescription(ctx context.Context, auditID id.AuditID, findingID id.FindingID, description string, findingType models.FindingType) (*models.Finding, error) {
	if strings.TrimSpace(description) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "finding description cannot be empty")
	}
	if !findingType.IsValid() {
		return nil, dErrors.Newf(dErrors.CodeValidation, "invalid finding type %q", findingType)
	}
	return s.findingCommand(ctx, "update_finding_description", auditID, findingID, func(f *models.Finding, now time.Time) error {
		return f.UpdateDescription(description, findingType, now)
	})
}

// FindingContext locates a finding and names the requirement it breaches.
type FindingContext struct {
	Location   string
	Equipment  string
	Standard   string
	Regulation string
}

func (s *Service) UpdateFindingContext(ctx context.Context, auditID id.AuditID, findingID id.FindingID, fc FindingContext) (*models.Finding, error) {
	return s.findingCommand(ctx, "update_finding_context", auditID, findingID, func(f *models.Finding, now time.Time) error {
		return f.UpdateContext(fc.Location, fc.Equipment, fc.Standard, fc.Regulation, now)
	})
}

func (s *Service) SetFindingRootCause(ctx context.Context, auditID id.AuditID, findingID id.FindingID, text string) (*models.Finding, error) {
	return s.findingCommand(ctx, "set_finding_root_cause", auditID, findingID, func(f *models.Finding, now time.Time) error {
		return f.SetRootCause(text, now)
	})
}

func (s *Service) SetFindingImmediateAction(ctx context.Context, auditID id.AuditID, findingID id.FindingID, text string) (*models.Finding, error) {
	return s.findingCommand(ctx, "set_finding_immediate_action", auditID, findingID, func(f *models.Finding, now time.Time) error {
		return f.SetImmediateAction(text, now)
	})
}

func (s *Service) SetFindingPreventiveAction(ctx context.Context, auditID id.AuditID, findingID id.FindingID, text string) (*models.Finding, error) {
	return s.findingCommand(ctx, "set_finding_preventive_action", auditID, findingID, func(f *models.Finding, now time.Time) error {
		return f.SetPreventiveAction(text, now)
	})
}

// FindingCost is the remediation cost estimate, actual spend and impact.
type FindingCost struct {
	Estimated *float64
	Actual    *float64
	Impact    string
}

func (s *Service) SetFindingCost(ctx context.Context, auditID id.AuditID, findingID id.FindingID, cost FindingCost) (*models.Finding, error) {
	if (cost.Estimated != nil && *cost.Estimated < 0) || (cost.Actual != nil && *cost.Actual < 0) {
		return nil, dErrors.New(dErrors.CodeValidation, "cost cannot be negative")
	}
	return s.findingCommand(ctx, "set_finding_cost", auditID, findingID, func(f *models.Finding, now time.Time) error {
		return f.SetCostInformation(cost.Estimated, cost.Actual, cost.Impact, now)
	})
}

// AddFindingAttachment records evidence metadata on a finding. The uploader
// defaults to the request actor.
func (s *Service) AddFindingAttachment(ctx context.Context, auditID id.AuditID, findingID id.FindingID, in models.AttachmentInput) (models.FindingAttachment, error) {
	in.UploadedBy = actorName(ctx, in.UploadedBy)
	var out models.FindingAttachment
	_, err := s.findingCommand(ctx, "add_finding_attachment", auditID, findingID, func(f *models.Finding, now time.Time) error {
		att, err := f.AddAttachment(in, now)
		out = att
		return err
	})
	if err != nil {
		return models.FindingAttachment{}, err
	}
	return out, nil
}

func (s *Service) DescribeFindingAttachment(ctx context.Context, auditID id.AuditID, findingID id.FindingID, attachmentID id.AttachmentID, description string) (*models.Finding, error) {
	return s.findingCommand(ctx, "describe_finding_attachment", auditID, findingID, func(f *models.Finding, now time.Time) error {
		return f.DescribeAttachment(attachmentID, description, now)
	})
}

func (s *Service) RemoveFindingAttachment(ctx context.Context, auditID id.AuditID, findingID id.FindingID, attachmentID id.AttachmentID) (*models.Finding, error) {
	return s.findingCommand(ctx, "remove_finding_attachment", auditID, findingID, func(f *models.Finding, now time.Time) error {
		return f.RemoveAttachment(attachmentID, now)
	})
}

func (s *Service) ResolveFinding(ctx context.Context, auditID id.AuditID, findingID id.FindingID) (*models.Finding, error) {
	return s.findingCommand(ctx, "resolve_finding", auditID, findingID, func(f *models.Finding, now time.Time) error {
		return f.MarkAsResolved(now)
	})
}

// VerifyFinding signs off a resolved finding. The verifier defaults to the
// request actor.
func (s *Service) VerifyFinding(ctx context.Context, auditID id.AuditID, findingID id.FindingID, verifiedBy, method string) (*models.Finding, error) {
	verifiedBy = actorName(ctx, verifiedBy)
	return s.findingCommand(ctx, "verify_finding", auditID, findingID, func(f *models.Finding, now time.Time) error {
		return f.MarkAsVerified(verifiedBy, method, now)
	})
}

func (s *Service) CloseFinding(ctx context.Context, auditID id.AuditID, findingID id.FindingID, notes, closedBy string) (*models.Finding, error) {
	closedBy = actorName(ctx, closedBy)
	return s.findingCommand(ctx, "close_finding", auditID, findingID, func(f *models.Finding, now time.Time) error {
		return f.Close(notes, closedBy, now)
	})
}

// ReopenFinding is a no-op for findings that are not Closed.
func (s *Service) ReopenFinding(ctx context.Context, auditID id.AuditID, findingID id.FindingID, reason string) (*models.Finding, error) {
	return s.findingCommand(ctx, "reopen_finding", auditID, findingID, func(f *models.Finding, now time.Time) error {
		f.Reopen(reason, now)
		return nil
	})
}

func (s *Service) findingCommand(ctx context.Context, op string, auditID id.AuditID, findingID id.FindingID, fn func(f *models.Finding, now time.Time) error) (*models.Finding, error) {
	a, err := s.execute(ctx, op, auditID, func(a *models.Audit, now time.Time) error {
		return a.UpdateFinding(findingID, now, func(f *models.Finding) error {
			return fn(f, now)
		})
	})
	if err != nil {
		return nil, err
	}
	f, ok := a.Finding(findingID)
	if !ok {
		return nil, dErrors.Newf(dErrors.CodeNotFound, "finding %s not found", findingID)
	}
	return f, nil
}
