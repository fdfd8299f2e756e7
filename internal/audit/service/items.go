package service

import (
	"context"
	"time"

	"hsse/internal/audit/models"
	id "hsse/pkg/domain"
	dErrors "hsse/pkg/domain-errors"
)

func (s *Service) AddItem(ctx context.Context, auditID id.AuditID, in models.ItemInput) (*models.Item, error) {
	if err := in.Validate(); err != nil {
		return nil, asValidation(err)
	}
	var out *models.Item
	_, err := s.execute(ctx, "add_item", auditID, func(a *models.Audit, now time.Time) error {
		item, err := a.AddItem(in, now)
		out = item
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) RemoveItem(ctx context.Context, auditID id.AuditID, itemID id.ItemID) (*models.Audit, error) {
	return s.execute(ctx, "remove_item", auditID, func(a *models.Audit, now time.Time) error {
		return a.RemoveItem(itemID, now)
	})
}

func (s *Service) StartItemAssessment(ctx context.Context, auditID id.AuditID, itemID id.ItemID) (*models.Item, error) {
	return s.itemCommand(ctx, "start_item_assessment", auditID, itemID, func(a *models.Audit, now time.Time) error {
		return a.StartItemAssessment(itemID, now)
	})
}

// AssessItem records an item result. The assessor defaults to the request actor.
func (s *Service) AssessItem(ctx context.Context, auditID id.AuditID, itemID id.ItemID, assessment models.Assessment) (*models.Item, error) {
	assessment.AssessedBy = actorName(ctx, assessment.AssessedBy)
	return s.itemCommand(ctx, "assess_item", auditID, itemID, func(a *models.Audit, now time.Time) error {
		return a.CompleteItemAssessment(itemID, assessment, now)
	})
}

func (s *Service) MarkItemNotApplicable(ctx context.Context, auditID id.AuditID, itemID id.ItemID, reason, assessedBy string) (*models.Item, error) {
	assessedBy = actorName(ctx, assessedBy)
	return s.itemCommand(ctx, "mark_item_not_applicable", auditID, itemID, func(a *models.Audit, now time.Time) error {
		return a.MarkItemNotApplicable(itemID, reason, assessedBy, now)
	})
}

type ItemCorrectiveAction struct {
	Text        string
	DueDate     *time.Time
	Responsible *id.UserID
}

func (s *Service) AddItemCorrectiveAction(ctx context.Context, auditID id.AuditID, itemID id.ItemID, action ItemCorrectiveAction) (*models.Item, error) {
	return s.itemCommand(ctx, "add_item_corrective_action", auditID, itemID, func(a *models.Audit, now time.Time) error {
		return a.AddItemCorrectiveAction(itemID, action.Text, action.DueDate, action.Responsible, now)
	})
}

// UpdateItemScore changes awarded points. Audits without scoring reject the
// command as a validation error since nothing would change.
func (s *Service) UpdateItemScore(ctx context.Context, auditID id.AuditID, itemID id.ItemID, points int) (*models.Item, error) {
	return s.itemCommand(ctx, "update_item_score", auditID, itemID, func(a *models.Audit, now time.Time) error {
		applied, err := a.UpdateItemScore(itemID, points, now)
		if err != nil {
			return err
		}
		if !applied {
			return dErrors.New(dErrors.CodeValidation, "scoring is disabled for this audit")
		}
		return nil
	})
}

func (s *Service) ResetItem(ctx context.Context, auditID id.AuditID, itemID id.ItemID) (*models.Item, error) {
	return s.itemCommand(ctx, "reset_item", auditID, itemID, func(a *models.Audit, now time.Time) error {
		return a.ResetItem(itemID, now)
	})
}

func (s *Service) itemCommand(ctx context.Context, op string, auditID id.AuditID, itemID id.ItemID, mutate func(a *models.Audit, now time.Time) error) (*models.Item, error) {
	a, err := s.execute(ctx, op, auditID, mutate)
	if err != nil {
		return nil, err
	}
	item, ok := a.Item(itemID)
	if !ok {
		return nil, dErrors.Newf(dErrors.CodeNotFound, "item %s not found", itemID)
	}
	return item, nil
}
