package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hsse/internal/audit/models"
	id "hsse/pkg/domain"
)

func (h *Handler) updateBasicInfo(ctx context.Context, _ *http.Request, auditID id.AuditID, req *BasicInfoRequest) (any, error) {
	return auditBody(h.service.UpdateBasicInfo(ctx, auditID, req.info))
}

func (h *Handler) setCompliance(ctx context.Context, _ *http.Request, auditID id.AuditID, req *ComplianceRequest) (any, error) {
	return auditBody(h.service.SetComplianceInfo(ctx, auditID, req.info()))
}

func (h *Handler) setEstimatedDuration(ctx context.Context, _ *http.Request, auditID id.AuditID, req *EstimatedDurationRequest) (any, error) {
	return auditBody(h.service.SetEstimatedDuration(ctx, auditID, req.Minutes))
}

func (h *Handler) schedule(ctx context.Context, _ *http.Request, auditID id.AuditID, req *ScheduleRequest) (any, error) {
	return auditBody(h.service.Schedule(ctx, auditID, req.ScheduledDate.UTC()))
}

func (h *Handler) reopen(ctx context.Context, _ *http.Request, auditID id.AuditID, req *ReasonRequest) (any, error) {
	return auditBody(h.service.Reopen(ctx, auditID, req.Reason))
}

func (h *Handler) complete(ctx context.Context, _ *http.Request, auditID id.AuditID, req *CompleteRequest) (any, error) {
	return auditBody(h.service.Complete(ctx, auditID, req.Summary, req.Recommendations))
}

func (h *Handler) cancel(ctx context.Context, _ *http.Request, auditID id.AuditID, req *ReasonRequest) (any, error) {
	return auditBody(h.service.Cancel(ctx, auditID, req.Reason))
}

func (h *Handler) addComment(ctx context.Context, _ *http.Request, auditID id.AuditID, req *CommentRequest) (any, error) {
	return h.service.AddComment(ctx, auditID, req.Text, req.Author)
}

func (h *Handler) addAttachment(ctx context.Context, _ *http.Request, auditID id.AuditID, req *AttachmentRequest) (any, error) {
	return h.service.AddAttachment(ctx, auditID, req.input())
}

func (h *Handler) removeAttachment(ctx context.Context, r *http.Request, auditID id.AuditID) (any, error) {
	attachmentID, err := id.ParseAttachmentID(chi.URLParam(r, "attachmentID"))
	if err != nil {
		return nil, err
	}
	return auditBody(h.service.RemoveAttachment(ctx, auditID, attachmentID))
}

func (h *Handler) addItem(ctx context.Context, _ *http.Request, auditID id.AuditID, req *AddItemRequest) (any, error) {
	return itemBody(h.service.AddItem(ctx, auditID, req.input()))
}

func (h *Handler) removeItem(ctx context.Context, r *http.Request, auditID id.AuditID) (any, error) {
	itemID, err := id.ParseItemID(chi.URLParam(r, "itemID"))
	if err != nil {
		return nil, err
	}
	return auditBody(h.service.RemoveItem(ctx, auditID, itemID))
}

func (h *Handler) startItem(ctx context.Context, r *http.Request, auditID id.AuditID) (any, error) {
	itemID, err := id.ParseItemID(chi.URLParam(r, "itemID"))
	if err != nil {
		return nil, err
	}
	return itemBody(h.service.StartItemAssessment(ctx, auditID, itemID))
}

func (h *Handler) assessItem(ctx context.Context, r *http.Request, auditID id.AuditID, req *AssessItemRequest) (any, error) {
	itemID, err := id.ParseItemID(chi.URLParam(r, "itemID"))
	if err != nil {
		return nil, err
	}
	return itemBody(h.service.AssessItem(ctx, auditID, itemID, req.assessment()))
}

func (h *Handler) markNotApplicable(ctx context.Context, r *http.Request, auditID id.AuditID, req *NotApplicableRequest) (any, error) {
	itemID, err := id.ParseItemID(chi.URLParam(r, "itemID"))
	if err != nil {
		return nil, err
	}
	return itemBody(h.service.MarkItemNotApplicable(ctx, auditID, itemID, req.Reason, req.AssessedBy))
}

func (h *Handler) itemCorrectiveAction(ctx context.Context, r *http.Request, auditID id.AuditID, req *ItemCorrectiveActionRequest) (any, error) {
	itemID, err := id.ParseItemID(chi.URLParam(r, "itemID"))
	if err != nil {
		return nil, err
	}
	return itemBody(h.service.AddItemCorrectiveAction(ctx, auditID, itemID, req.action()))
}

func (h *Handler) updateItemScore(ctx context.Context, r *http.Request, auditID id.AuditID, req *ItemScoreRequest) (any, error) {
	itemID, err := id.ParseItemID(chi.URLParam(r, "itemID"))
	if err != nil {
		return nil, err
	}
	return itemBody(h.service.UpdateItemScore(ctx, auditID, itemID, req.ActualPoints))
}

func (h *Handler) resetItem(ctx context.Context, r *http.Request, auditID id.AuditID) (any, error) {
	itemID, err := id.ParseItemID(chi.URLParam(r, "itemID"))
	if err != nil {
		return nil, err
	}
	return itemBody(h.service.ResetItem(ctx, auditID, itemID))
}

func (h *Handler) addFinding(ctx context.Context, _ *http.Request, auditID id.AuditID, req *AddFindingRequest) (any, error) {
	return findingBody(h.service.AddFinding(ctx, auditID, req.input()))
}

func (h *Handler) removeFinding(ctx context.Context, r *http.Request, auditID id.AuditID) (any, error) {
	findingID, err := id.ParseFindingID(chi.URLParam(r, "findingID"))
	if err != nil {
		return nil, err
	}
	return auditBody(h.service.RemoveFinding(ctx, auditID, findingID))
}

func (h *Handler) updateSeverity(ctx context.Context, r *http.Request, auditID id.AuditID, req *SeverityRequest) (any, error) {
	findingID, err := id.ParseFindingID(chi.URLParam(r, "findingID"))
	if err != nil {
		return nil, err
	}
	return findingBody(h.service.UpdateFindingSeverity(ctx, auditID, findingID, req.severity))
}

func (h *Handler) findingCorrectiveAction(ctx context.Context, r *http.Request, auditID id.AuditID, req *FindingCorrectiveActionRequest) (any, error) {
	findingID, err := id.ParseFindingID(chi.URLParam(r, "findingID"))
	if err != nil {
		return nil, err
	}
	return findingBody(h.service.SetFindingCorrectiveAction(ctx, auditID, findingID, req.action()))
}

func (h *Handler) resolveFinding(ctx context.Context, r *http.Request, auditID id.AuditID) (any, error) {
	findingID, err := id.ParseFindingID(chi.URLParam(r, "findingID"))
	if err != nil {
		return nil, err
	}
	return findingBody(h.service.ResolveFinding(ctx, auditID, findingID))
}

func (h *Handler) verifyFinding(ctx context.Context, r *http.Request, auditID id.AuditID, req *VerifyFindingRequest) (any, error) {
	findingID, err := id.ParseFindingID(chi.URLParam(r, "findingID"))
	if err != nil {
		return nil, err
	}
	return findingBody(h.service.VerifyFinding(ctx, auditID, findingID, req.VerifiedBy, req.Method))
}

func (h *Handler) closeFinding(ctx context.Context, r *http.Request, auditID id.AuditID, req *CloseFindingRequest) (any, error) {
	findingID, err := id.ParseFindingID(chi.URLParam(r, "findingID"))
	if err != nil {
		return nil, err
	}
	return findingBody(h.service.CloseFinding(ctx, auditID, findingID, req.Notes, req.ClosedBy))
}

func (h *Handler) reopenFinding(ctx context.Context, r *http.Request, auditID id.AuditID, req *ReasonRequest) (any, error) {
	findingID, err := id.ParseFindingID(chi.URLParam(r, "findingID"))
	if err != nil {
		return nil, err
	}
	return findingBody(h.service.ReopenFinding(ctx, auditID, findingID, req.Reason))
}

func (h *Handler) updateFindingDescription(ctx context.Context, r *http.Request, auditID id.AuditID, req *FindingDescriptionRequest) (any, error) {
	findingID, err := id.ParseFindingID(chi.URLParam(r, "findingID"))
	if err != nil {
		return nil, err
	}
	return findingBody(h.service.UpdateFindingDescription(ctx, auditID, findingID, req.Description, req.findingType))
}

func (h *Handler) updateFindingContext(ctx context.Context, r *http.Request, auditID id.AuditID, req *FindingContextRequest) (any, error) {
	findingID, err := id.ParseFindingID(chi.URLParam(r, "findingID"))
	if err != nil {
		return nil, err
	}
	return findingBody(h.service.UpdateFindingContext(ctx, auditID, findingID, req.findingContext()))
}

type findingTextSetter func(ctx context.Context, auditID id.AuditID, findingID id.FindingID, text string) (*models.Finding, error)

// findingText adapts the single-field narrative setters to withBody.
func findingText(set findingTextSetter) func(context.Context, *http.Request, id.AuditID, *FindingTextRequest) (any, error) {
	return func(ctx context.Context, r *http.Request, auditID id.AuditID, req *FindingTextRequest) (any, error) {
		findingID, err := id.ParseFindingID(chi.URLParam(r, "findingID"))
		if err != nil {
			return nil, err
		}
		return findingBody(set(ctx, auditID, findingID, req.Text))
	}
}

func (h *Handler) setFindingCost(ctx context.Context, r *http.Request, auditID id.AuditID, req *FindingCostRequest) (any, error) {
	findingID, err := id.ParseFindingID(chi.URLParam(r, "findingID"))
	if err != nil {
		return nil, err
	}
	return findingBody(h.service.SetFindingCost(ctx, auditID, findingID, req.cost()))
}

func (h *Handler) addFindingAttachment(ctx context.Context, r *http.Request, auditID id.AuditID, req *AttachmentRequest) (any, error) {
	findingID, err := id.ParseFindingID(chi.URLParam(r, "findingID"))
	if err != nil {
		return nil, err
	}
	return h.service.AddFindingAttachment(ctx, auditID, findingID, req.input())
}

func (h *Handler) describeFindingAttachment(ctx context.Context, r *http.Request, auditID id.AuditID, req *AttachmentDescriptionRequest) (any, error) {
	findingID, err := id.ParseFindingID(chi.URLParam(r, "findingID"))
	if err != nil {
		return nil, err
	}
	attachmentID, err := id.ParseAttachmentID(chi.URLParam(r, "attachmentID"))
	if err != nil {
		return nil, err
	}
	return findingBody(h.service.DescribeFindingAttachment(ctx, auditID, findingID, attachmentID, req.Description))
}

func (h *Handler) removeFindingAttachment(ctx context.Context, r *http.Request, auditID id.AuditID) (any, error) {
	findingID, err := id.ParseFindingID(chi.URLParam(r, "findingID"))
	if err != nil {
		return nil, err
	}
	attachmentID, err := id.ParseAttachmentID(chi.URLParam(r, "attachmentID"))
	if err != nil {
		return nil, err
	}
	return findingBody(h.service.RemoveFindingAttachment(ctx, auditID, findingID, attachmentID))
}
