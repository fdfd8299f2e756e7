// Package handler exposes the audit lifecycle over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"hsse/internal/audit/models"
	"hsse/internal/audit/service"
	"hsse/internal/audit/store"
	id "hsse/pkg/domain"
	dErrors "hsse/pkg/domain-errors"
	"hsse/pkg/platform/httputil"
	"hsse/pkg/requestcontext"
)

// Service is the audit application service consumed by the handler.
type Service interface {
	Create(ctx context.Context, cmd service.CreateCommand) (*models.Audit, error)
	Get(ctx context.Context, auditID id.AuditID) (*models.Audit, error)
	List(ctx context.Context, filter store.ListFilter) ([]*models.Audit, error)
	UpdateBasicInfo(ctx context.Context, auditID id.AuditID, info models.BasicInfo) (*models.Audit, error)
	SetComplianceInfo(ctx context.Context, auditID id.AuditID, info models.ComplianceInfo) (*models.Audit, error)
	SetEstimatedDuration(ctx context.Context, auditID id.AuditID, minutes int) (*models.Audit, error)
	Schedule(ctx context.Context, auditID id.AuditID, date time.Time) (*models.Audit, error)
	Start(ctx context.Context, auditID id.AuditID) (*models.Audit, error)
	SubmitForReview(ctx context.Context, auditID id.AuditID) (*models.Audit, error)
	Reopen(ctx context.Context, auditID id.AuditID, reason string) (*models.Audit, error)
	Complete(ctx context.Context, auditID id.AuditID, summary, recommendations string) (*models.Audit, error)
	Cancel(ctx context.Context, auditID id.AuditID, reason string) (*models.Audit, error)
	Archive(ctx context.Context, auditID id.AuditID) (*models.Audit, error)
	AddComment(ctx context.Context, auditID id.AuditID, text, author string) (models.Comment, error)
	AddAttachment(ctx context.Context, auditID id.AuditID, in models.AttachmentInput) (models.Attachment, error)
	RemoveAttachment(ctx context.Context, auditID id.AuditID, attachmentID id.AttachmentID) (*models.Audit, error)
	AddItem(ctx context.Context, auditID id.AuditID, in models.ItemInput) (*models.Item, error)
	RemoveItem(ctx context.Context, auditID id.AuditID, itemID id.ItemID) (*models.Audit, error)
	StartItemAssessment(ctx context.Context, auditID id.AuditID, itemID id.ItemID) (*models.Item, error)
	AssessItem(ctx context.Context, auditID id.AuditID, itemID id.ItemID, assessment models.Assessment) (*models.Item, error)
	MarkItemNotApplicable(ctx context.Context, auditID id.AuditID, itemID id.ItemID, reason, assessedBy string) (*models.Item, error)
	AddItemCorrectiveAction(ctx context.Context, auditID id.AuditID, itemID id.ItemID, action service.ItemCorrectiveAction) (*models.Item, error)
	UpdateItemScore(ctx context.Context, auditID id.AuditID, itemID id.ItemID, points int) (*models.Item, error)
	ResetItem(ctx context.Context, auditID id.AuditID, itemID id.ItemID) (*models.Item, error)
	AddFinding(ctx context.Context, auditID id.AuditID, in models.FindingInput) (*models.Finding, error)
	RemoveFinding(ctx context.Context, auditID id.AuditID, findingID id.FindingID) (*models.Audit, error)
	UpdateFindingSeverity(ctx context.Context, auditID id.AuditID, findingID id.FindingID, severity models.FindingSeverity) (*models.Finding, error)
	UpdateFindingDescription(ctx context.Context, auditID id.AuditID, findingID id.FindingID, description string, findingType models.FindingType) (*models.Finding, error)
	UpdateFindingContext(ctx context.Context, auditID id.AuditID, findingID id.FindingID, fc service.FindingContext) (*models.Finding, error)
	SetFindingRootCause(ctx context.Context, auditID id.AuditID, findingID id.FindingID, text string) (*models.Finding, error)
	SetFindingImmediateAction(ctx context.Context, auditID id.AuditID, findingID id.FindingID, text string) (*models.Finding, error)
	SetFindingPreventiveAction(ctx context.Context, auditID id.AuditID, findingID id.FindingID, text string) (*models.Finding, error)
	SetFindingCost(ctx context.Context, auditID id.AuditID, findingID id.FindingID, cost service.FindingCost) (*models.Finding, error)
	AddFindingAttachment(ctx context.Context, auditID id.AuditID, findingID id.FindingID, in models.AttachmentInput) (models.FindingAttachment, error)
	DescribeFindingAttachment(ctx context.Context, auditID id.AuditID, findingID id.FindingID, attachmentID id.AttachmentID, description string) (*models.Finding, error)
	RemoveFindingAttachment(ctx context.Context, auditID id.AuditID, findingID id.FindingID, attachmentID id.AttachmentID) (*models.Finding, error)
	SetFindingCorrectiveAction(ctx context.Context, auditID id.AuditID, findingID id.FindingID, action models.CorrectiveAction) (*models.Finding, error)
	ResolveFinding(ctx context.Context, auditID id.AuditID, findingID id.FindingID) (*models.Finding, error)
	VerifyFinding(ctx context.Context, auditID id.AuditID, findingID id.FindingID, verifiedBy, method string) (*models.Finding, error)
	CloseFinding(ctx context.Context, auditID id.AuditID, findingID id.FindingID, notes, closedBy string) (*models.Finding, error)
	ReopenFinding(ctx context.Context, auditID id.AuditID, findingID id.FindingID, reason string) (*models.Finding, error)
}

// Handler serves the /audits resource.
type Handler struct {
	logger  *slog.Logger
	service Service
}

func New(svc Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: svc}
}

// Register mounts the audit routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Route("/audits", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)

		r.Route("/{auditID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/", withBody(h, "update_basic_info", h.updateBasicInfo))
			r.Put("/compliance", withBody(h, "set_compliance_info", h.setCompliance))
			r.Put("/estimated-duration", withBody(h, "set_estimated_duration", h.setEstimatedDuration))
			r.Post("/schedule", withBody(h, "schedule", h.schedule))
			r.Post("/start", h.auditCommand("start", h.service.Start))
			r.Post("/submit", h.auditCommand("submit_for_review", h.service.SubmitForReview))
			r.Post("/reopen", withBody(h, "reopen", h.reopen))
			r.Post("/complete", withBody(h, "complete", h.complete))
			r.Post("/cancel", withBody(h, "cancel", h.cancel))
			r.Post("/archive", h.auditCommand("archive", h.service.Archive))
			r.Post("/comments", withBody(h, "add_comment", h.addComment))
			r.Post("/attachments", withBody(h, "add_attachment", h.addAttachment))
			r.Delete("/attachments/{attachmentID}", h.command("remove_attachment", h.removeAttachment))

			r.Post("/items", withBody(h, "add_item", h.addItem))
			r.Route("/items/{itemID}", func(r chi.Router) {
				r.Delete("/", h.command("remove_item", h.removeItem))
				r.Post("/start", h.command("start_item_assessment", h.startItem))
				r.Post("/assessment", withBody(h, "assess_item", h.assessItem))
				r.Post("/not-applicable", withBody(h, "mark_item_not_applicable", h.markNotApplicable))
				r.Post("/corrective-action", withBody(h, "add_item_corrective_action", h.itemCorrectiveAction))
				r.Put("/score", withBody(h, "update_item_score", h.updateItemScore))
				r.Post("/reset", h.command("reset_item", h.resetItem))
			})

			r.Post("/findings", withBody(h, "add_finding", h.addFinding))
			r.Route("/findings/{findingID}", func(r chi.Router) {
				r.Delete("/", h.command("remove_finding", h.removeFinding))
				r.Put("/severity", withBody(h, "update_finding_severity", h.updateSeverity))
				r.Put("/description", withBody(h, "update_finding_description", h.updateFindingDescription))
				r.Put("/context", withBody(h, "update_finding_context", h.updateFindingContext))
				r.Put("/root-cause", withBody(h, "set_finding_root_cause", findingText(h.service.SetFindingRootCause)))
				r.Put("/immediate-action", withBody(h, "set_finding_immediate_action", findingText(h.service.SetFindingImmediateAction)))
				r.Put("/preventive-action", withBody(h, "set_finding_preventive_action", findingText(h.service.SetFindingPreventiveAction)))
				r.Put("/cost", withBody(h, "set_finding_cost", h.setFindingCost))
				r.Post("/attachments", withBody(h, "add_finding_attachment", h.addFindingAttachment))
				r.Put("/attachments/{attachmentID}", withBody(h, "describe_finding_attachment", h.describeFindingAttachment))
				r.Delete("/attachments/{attachmentID}", h.command("remove_finding_attachment", h.removeFindingAttachment))
				r.Post("/corrective-action", withBody(h, "set_finding_corrective_action", h.findingCorrectiveAction))
				r.Post("/resolve", h.command("resolve_finding", h.resolveFinding))
				r.Post("/verify", withBody(h, "verify_finding", h.verifyFinding))
				r.Post("/close", withBody(h, "close_finding", h.closeFinding))
				r.Post("/reopen", withBody(h, "reopen_finding", h.reopenFinding))
			})
		})
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateAuditRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	a, err := h.service.Create(ctx, req.command())
	if err != nil {
		h.fail(ctx, w, "create", err)
		return
	}
	h.logger.InfoContext(ctx, "audit created",
		"request_id", requestID,
		"audit_id", a.ID(),
		"number", a.Number(),
	)
	httputil.WriteJSON(w, http.StatusCreated, toAuditResponse(a))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	auditID, err := id.ParseAuditID(chi.URLParam(r, "auditID"))
	if err != nil {
		h.fail(ctx, w, "get", err)
		return
	}
	a, err := h.service.Get(ctx, auditID)
	if err != nil {
		h.fail(ctx, w, "get", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toAuditResponse(a))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	filter := store.ListFilter{
		Status: models.AuditStatus(q.Get("status")),
		Type:   models.AuditType(q.Get("type")),
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			h.fail(ctx, w, "list", dErrors.New(dErrors.CodeBadRequest, "invalid limit"))
			return
		}
		filter.Limit = limit
	}
	audits, err := h.service.List(ctx, filter)
	if err != nil {
		h.fail(ctx, w, "list", err)
		return
	}
	resp := ListResponse{Audits: make([]AuditSummary, 0, len(audits)), Count: len(audits)}
	for _, a := range audits {
		resp.Audits = append(resp.Audits, toAuditSummary(a))
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// command adapts an audit-scoped call without a request body.
func (h *Handler) command(op string, fn func(ctx context.Context, r *http.Request, auditID id.AuditID) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		auditID, err := id.ParseAuditID(chi.URLParam(r, "auditID"))
		if err != nil {
			h.fail(ctx, w, op, err)
			return
		}
		body, err := fn(ctx, r, auditID)
		if err != nil {
			h.fail(ctx, w, op, err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, body)
	}
}

func (h *Handler) auditCommand(op string, fn func(ctx context.Context, auditID id.AuditID) (*models.Audit, error)) http.HandlerFunc {
	return h.command(op, func(ctx context.Context, _ *http.Request, auditID id.AuditID) (any, error) {
		return auditBody(fn(ctx, auditID))
	})
}

// withBody adapts an audit-scoped call that decodes a JSON request of type T.
func withBody[T any](h *Handler, op string, fn func(ctx context.Context, r *http.Request, auditID id.AuditID, req *T) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		requestID := requestcontext.RequestID(ctx)
		auditID, err := id.ParseAuditID(chi.URLParam(r, "auditID"))
		if err != nil {
			h.fail(ctx, w, op, err)
			return
		}
		req, ok := httputil.DecodeAndPrepare[T](w, r, h.logger, ctx, requestID)
		if !ok {
			return
		}
		body, err := fn(ctx, r, auditID, req)
		if err != nil {
			h.fail(ctx, w, op, err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, body)
	}
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, op string, err error) {
	requestID := requestcontext.RequestID(ctx)
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, "audit request failed",
			"request_id", requestID,
			"op", op,
			"error", err.Error(),
		)
	} else {
		h.logger.WarnContext(ctx, "audit request rejected",
			"request_id", requestID,
			"op", op,
			"error", err.Error(),
		)
	}
	httputil.WriteError(w, err)
}

func auditBody(a *models.Audit, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return toAuditResponse(a), nil
}

func itemBody(i *models.Item, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return toItemResponse(i), nil
}

func findingBody(f *models.Finding, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return toFindingResponse(f), nil
}
