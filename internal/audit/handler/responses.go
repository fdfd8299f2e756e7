package handler

import (
	"time"

	"hsse/internal/audit/models"
	id "hsse/pkg/domain"
)

type AuditResponse struct {
	ID                       int64                 `json:"id"`
	Number                   string                `json:"number"`
	Title                    string                `json:"title"`
	Description              string                `json:"description,omitempty"`
	Type                     string                `json:"type"`
	Category                 string                `json:"category"`
	Priority                 string                `json:"priority"`
	Status                   string                `json:"status"`
	AuditorID                string                `json:"auditor_id"`
	LocationID               *int64                `json:"location_id,omitempty"`
	DepartmentID             *int64                `json:"department_id,omitempty"`
	FacilityID               *int64                `json:"facility_id,omitempty"`
	ScheduledDate            time.Time             `json:"scheduled_date"`
	StartedDate              *time.Time            `json:"started_date,omitempty"`
	CompletedDate            *time.Time            `json:"completed_date,omitempty"`
	RiskLevel                string                `json:"risk_level"`
	ScoringEnabled           bool                  `json:"scoring_enabled"`
	OverallScore             *string               `json:"overall_score,omitempty"`
	ScorePercentage          *float64              `json:"score_percentage,omitempty"`
	CompletionPercentage     int                   `json:"completion_percentage"`
	Summary                  string                `json:"summary,omitempty"`
	Recommendations          string                `json:"recommendations,omitempty"`
	CancellationReason       string                `json:"cancellation_reason,omitempty"`
	EstimatedDurationMinutes *int                  `json:"estimated_duration_minutes,omitempty"`
	ActualDurationMinutes    *int                  `json:"actual_duration_minutes,omitempty"`
	Compliance               models.ComplianceInfo `json:"compliance"`
	Items                    []ItemResponse        `json:"items"`
	Findings                 []FindingResponse     `json:"findings"`
	Comments                 []models.Comment      `json:"comments"`
	Attachments              []models.Attachment   `json:"attachments"`
	Version                  int64                 `json:"version"`
	CreatedAt                time.Time             `json:"created_at"`
	UpdatedAt                time.Time             `json:"updated_at"`
}

// AuditSummary is the list view of an audit.
type AuditSummary struct {
	ID            int64     `json:"id"`
	Number        string    `json:"number"`
	Title         string    `json:"title"`
	Type          string    `json:"type"`
	Status        string    `json:"status"`
	RiskLevel     string    `json:"risk_level"`
	ScheduledDate time.Time `json:"scheduled_date"`
	AuditorID     string    `json:"auditor_id"`
}

type ListResponse struct {
	Audits []AuditSummary `json:"audits"`
	Count  int            `json:"count"`
}

type ItemResponse struct {
	ID                      int64      `json:"id"`
	Number                  string     `json:"number"`
	Description             string     `json:"description"`
	Type                    string     `json:"type"`
	Required                bool       `json:"required"`
	SortOrder               int        `json:"sort_order"`
	Category                string     `json:"category,omitempty"`
	ExpectedResult          string     `json:"expected_result,omitempty"`
	MaxPoints               *int       `json:"max_points,omitempty"`
	Status                  string     `json:"status"`
	ActualResult            string     `json:"actual_result,omitempty"`
	IsCompliant             *bool      `json:"is_compliant,omitempty"`
	ActualPoints            *int       `json:"actual_points,omitempty"`
	ScorePercentage         *float64   `json:"score_percentage,omitempty"`
	AssessedBy              string     `json:"assessed_by,omitempty"`
	AssessedAt              *time.Time `json:"assessed_at,omitempty"`
	Comments                string     `json:"comments,omitempty"`
	Evidence                string     `json:"evidence,omitempty"`
	CorrectiveAction        string     `json:"corrective_action,omitempty"`
	CorrectiveActionDueDate *time.Time `json:"corrective_action_due_date,omitempty"`
	ResponsiblePersonID     *string    `json:"responsible_person_id,omitempty"`
}

type FindingResponse struct {
	ID                    int64      `json:"id"`
	Number                string     `json:"number"`
	AuditItemID           *int64     `json:"audit_item_id,omitempty"`
	Description           string     `json:"description"`
	Type                  string     `json:"type"`
	Severity              string     `json:"severity"`
	RiskLevel             string     `json:"risk_level"`
	Status                string     `json:"status"`
	RequiresVerification  bool       `json:"requires_verification"`
	Location              string     `json:"location,omitempty"`
	Equipment             string     `json:"equipment,omitempty"`
	Standard              string     `json:"standard,omitempty"`
	Regulation            string     `json:"regulation,omitempty"`
	RootCause             string     `json:"root_cause,omitempty"`
	ImmediateAction       string     `json:"immediate_action,omitempty"`
	CorrectiveAction      string     `json:"corrective_action,omitempty"`
	PreventiveAction      string     `json:"preventive_action,omitempty"`
	DueDate               *time.Time `json:"due_date,omitempty"`
	ResponsiblePersonID   *string    `json:"responsible_person_id,omitempty"`
	ResponsiblePersonName string     `json:"responsible_person_name,omitempty"`
	VerificationMethod    string     `json:"verification_method,omitempty"`
	VerifiedBy            string     `json:"verified_by,omitempty"`
	VerifiedDate          *time.Time `json:"verified_date,omitempty"`
	ClosedBy              string     `json:"closed_by,omitempty"`
	ClosedDate            *time.Time `json:"closed_date,omitempty"`
	ClosureNotes          string     `json:"closure_notes,omitempty"`
	ReopenReason          string     `json:"reopen_reason,omitempty"`
	EstimatedCost         *float64   `json:"estimated_cost,omitempty"`
	ActualCost            *float64   `json:"actual_cost,omitempty"`
	ImpactDescription     string     `json:"impact_description,omitempty"`

	Attachments []models.FindingAttachment `json:"attachments"`
}

func toAuditResponse(a *models.Audit) AuditResponse {
	resp := AuditResponse{
		ID:                       int64(a.ID()),
		Number:                   a.Number(),
		Title:                    a.Title(),
		Description:              a.Description(),
		Type:                     string(a.Type()),
		Category:                 string(a.Category()),
		Priority:                 string(a.Priority()),
		Status:                   a.Status().String(),
		AuditorID:                a.AuditorID().String(),
		LocationID:               a.LocationID(),
		DepartmentID:             a.DepartmentID(),
		FacilityID:               a.FacilityID(),
		ScheduledDate:            a.ScheduledDate(),
		StartedDate:              a.StartedDate(),
		CompletedDate:            a.CompletedDate(),
		RiskLevel:                string(a.RiskLevel()),
		ScoringEnabled:           a.ScoringEnabled(),
		ScorePercentage:          a.ScorePercentage(),
		CompletionPercentage:     a.CompletionPercentage(),
		Summary:                  a.Summary(),
		Recommendations:          a.Recommendations(),
		CancellationReason:       a.CancellationReason(),
		EstimatedDurationMinutes: a.EstimatedDurationMinutes(),
		ActualDurationMinutes:    a.ActualDurationMinutes(),
		Compliance:               a.Compliance(),
		Items:                    make([]ItemResponse, 0),
		Findings:                 make([]FindingResponse, 0),
		Comments:                 a.Comments(),
		Attachments:              a.Attachments(),
		Version:                  a.Version(),
		CreatedAt:                a.CreatedAt(),
		UpdatedAt:                a.UpdatedAt(),
	}
	if band := a.OverallScore(); band != nil {
		s := string(*band)
		resp.OverallScore = &s
	}
	for _, item := range a.Items() {
		resp.Items = append(resp.Items, toItemResponse(item))
	}
	for _, f := range a.Findings() {
		resp.Findings = append(resp.Findings, toFindingResponse(f))
	}
	if resp.Comments == nil {
		resp.Comments = []models.Comment{}
	}
	if resp.Attachments == nil {
		resp.Attachments = []models.Attachment{}
	}
	return resp
}

func toAuditSummary(a *models.Audit) AuditSummary {
	return AuditSummary{
		ID:            int64(a.ID()),
		Number:        a.Number(),
		Title:         a.Title(),
		Type:          string(a.Type()),
		Status:        a.Status().String(),
		RiskLevel:     string(a.RiskLevel()),
		ScheduledDate: a.ScheduledDate(),
		AuditorID:     a.AuditorID().String(),
	}
}

func toItemResponse(i *models.Item) ItemResponse {
	return ItemResponse{
		ID:                      int64(i.ID()),
		Number:                  i.Number(),
		Description:             i.Description(),
		Type:                    string(i.Type()),
		Required:                i.Required(),
		SortOrder:               i.SortOrder(),
		Category:                i.Category(),
		ExpectedResult:          i.ExpectedResult(),
		MaxPoints:               i.MaxPoints(),
		Status:                  i.Status().String(),
		ActualResult:            i.ActualResult(),
		IsCompliant:             i.IsCompliant(),
		ActualPoints:            i.ActualPoints(),
		ScorePercentage:         i.ScorePercentage(),
		AssessedBy:              i.AssessedBy(),
		AssessedAt:              i.AssessedAt(),
		Comments:                i.Comments(),
		Evidence:                i.Evidence(),
		CorrectiveAction:        i.CorrectiveAction(),
		CorrectiveActionDueDate: i.CorrectiveActionDue(),
		ResponsiblePersonID:     userString(i.ResponsiblePersonID()),
	}
}

func toFindingResponse(f *models.Finding) FindingResponse {
	resp := FindingResponse{
		ID:                    int64(f.ID()),
		Number:                f.Number(),
		Description:           f.Description(),
		Type:                  string(f.Type()),
		Severity:              string(f.Severity()),
		RiskLevel:             string(f.RiskLevel()),
		Status:                f.Status().String(),
		RequiresVerification:  f.RequiresVerification(),
		Location:              f.Location(),
		Equipment:             f.Equipment(),
		Standard:              f.Standard(),
		Regulation:            f.Regulation(),
		RootCause:             f.RootCause(),
		ImmediateAction:       f.ImmediateAction(),
		CorrectiveAction:      f.CorrectiveAction(),
		PreventiveAction:      f.PreventiveAction(),
		DueDate:               f.DueDate(),
		ResponsiblePersonID:   userString(f.ResponsiblePersonID()),
		ResponsiblePersonName: f.ResponsiblePersonName(),
		VerificationMethod:    f.VerificationMethod(),
		VerifiedBy:            f.VerifiedBy(),
		VerifiedDate:          f.VerifiedDate(),
		ClosedBy:              f.ClosedBy(),
		ClosedDate:            f.ClosedDate(),
		ClosureNotes:          f.ClosureNotes(),
		ReopenReason:          f.ReopenReason(),
		EstimatedCost:         f.EstimatedCost(),
		ActualCost:            f.ActualCost(),
		ImpactDescription:     f.ImpactDescription(),
		Attachments:           f.Attachments(),
	}
	if resp.Attachments == nil {
		resp.Attachments = []models.FindingAttachment{}
	}
	if itemID := f.AuditItemID(); itemID != nil {
		v := int64(*itemID)
		resp.AuditItemID = &v
	}
	return resp
}

func userString(u *id.UserID) *string {
	if u == nil {
		return nil
	}
	s := u.String()
	return &s
}
