package handler

import (
	"time"

	"hsse/internal/audit/models"
	"hsse/internal/audit/service"
	id "hsse/pkg/domain"
	dErrors "hsse/pkg/domain-errors"
)

// BasicInfoRequest carries the editable descriptive fields of an audit.
type BasicInfoRequest struct {
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Type          string    `json:"type"`
	Category      string    `json:"category"`
	Priority      string    `json:"priority"`
	ScheduledDate time.Time `json:"scheduled_date"`
	AuditorID     string    `json:"auditor_id"`
	LocationID    *int64    `json:"location_id,omitempty"`
	DepartmentID  *int64    `json:"department_id,omitempty"`
	FacilityID    *int64    `json:"facility_id,omitempty"`

	info models.BasicInfo
}

func (r *BasicInfoRequest) Normalize() { sanitize(r) }

func (r *BasicInfoRequest) Validate() error {
	if r.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title is required")
	}
	if r.ScheduledDate.IsZero() {
		return dErrors.New(dErrors.CodeValidation, "scheduled_date is required")
	}
	auditType, err := models.ParseAuditType(r.Type)
	if err != nil {
		return err
	}
	category, err := models.ParseAuditCategory(r.Category)
	if err != nil {
		return err
	}
	priority, err := models.ParseAuditPriority(r.Priority)
	if err != nil {
		return err
	}
	auditor, err := id.ParseUserID(r.AuditorID)
	if err != nil {
		return err
	}
	r.info = models.BasicInfo{
		Title:         r.Title,
		Description:   r.Description,
		Type:          auditType,
		Category:      category,
		Priority:      priority,
		ScheduledDate: r.ScheduledDate.UTC(),
		AuditorID:     auditor,
		LocationID:    r.LocationID,
		DepartmentID:  r.DepartmentID,
		FacilityID:    r.FacilityID,
	}
	return nil
}

// CreateAuditRequest creates a Draft audit, optionally seeded from a
// checklist template.
type CreateAuditRequest struct {
	BasicInfoRequest
	Inspection               bool                   `json:"inspection"`
	Template                 string                 `json:"template,omitempty"`
	EstimatedDurationMinutes *int                   `json:"estimated_duration_minutes,omitempty"`
	Compliance               *models.ComplianceInfo `json:"compliance,omitempty"`
}

func (r *CreateAuditRequest) Normalize() {
	r.BasicInfoRequest.Normalize()
	sanitize(r)
}

func (r *CreateAuditRequest) Validate() error {
	if err := r.BasicInfoRequest.Validate(); err != nil {
		return err
	}
	if r.EstimatedDurationMinutes != nil && *r.EstimatedDurationMinutes <= 0 {
		return dErrors.New(dErrors.CodeValidation, "estimated_duration_minutes must be positive")
	}
	return nil
}

func (r *CreateAuditRequest) command() service.CreateCommand {
	return service.CreateCommand{
		Info:                     r.info,
		Inspection:               r.Inspection,
		Template:                 r.Template,
		EstimatedDurationMinutes: r.EstimatedDurationMinutes,
		Compliance:               r.Compliance,
	}
}

type EstimatedDurationRequest struct {
	Minutes int `json:"minutes"`
}

func (r *EstimatedDurationRequest) Validate() error {
	if r.Minutes <= 0 {
		return dErrors.New(dErrors.CodeValidation, "minutes must be positive")
	}
	return nil
}

type ScheduleRequest struct {
	ScheduledDate time.Time `json:"scheduled_date"`
}

func (r *ScheduleRequest) Validate() error {
	if r.ScheduledDate.IsZero() {
		return dErrors.New(dErrors.CodeValidation, "scheduled_date is required")
	}
	return nil
}

// ReasonRequest is shared by cancel, reopen and not-applicable commands.
type ReasonRequest struct {
	Reason string `json:"reason"`
}

func (r *ReasonRequest) Normalize() { sanitize(r) }

type CompleteRequest struct {
	Summary         string `json:"summary"`
	Recommendations string `json:"recommendations"`
}

func (r *CompleteRequest) Normalize() { sanitize(r) }

type CommentRequest struct {
	Text   string `json:"text"`
	Author string `json:"author,omitempty"`
}

func (r *CommentRequest) Normalize() { sanitize(r) }

func (r *CommentRequest) Validate() error {
	if r.Text == "" {
		return dErrors.New(dErrors.CodeValidation, "text is required")
	}
	return nil
}

// AttachmentRequest registers an already-stored evidence file.
type AttachmentRequest struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	StoragePath string `json:"storage_path"`
	Description string `json:"description,omitempty"`
	UploadedBy  string `json:"uploaded_by,omitempty"`
}

func (r *AttachmentRequest) Normalize() { sanitize(r) }

func (r *AttachmentRequest) Validate() error {
	if r.FileName == "" {
		return dErrors.New(dErrors.CodeValidation, "file_name is required")
	}
	if r.Size < 0 {
		return dErrors.New(dErrors.CodeValidation, "size cannot be negative")
	}
	return nil
}

func (r *AttachmentRequest) input() models.AttachmentInput {
	return models.AttachmentInput{
		FileName:    r.FileName,
		ContentType: r.ContentType,
		Size:        r.Size,
		StoragePath: r.StoragePath,
		Description: r.Description,
		UploadedBy:  r.UploadedBy,
	}
}

type AddItemRequest struct {
	Description    string `json:"description"`
	Type           string `json:"type"`
	Required       bool   `json:"required"`
	SortOrder      int    `json:"sort_order"`
	Category       string `json:"category,omitempty"`
	ExpectedResult string `json:"expected_result,omitempty"`
	MaxPoints      *int   `json:"max_points,omitempty"`

	itemType models.ItemType
}

func (r *AddItemRequest) Normalize() { sanitize(r) }

func (r *AddItemRequest) Validate() error {
	if r.Description == "" {
		return dErrors.New(dErrors.CodeValidation, "description is required")
	}
	t, err := models.ParseItemType(r.Type)
	if err != nil {
		return err
	}
	r.itemType = t
	return nil
}

func (r *AddItemRequest) input() models.ItemInput {
	return models.ItemInput{
		Description:    r.Description,
		Type:           r.itemType,
		Required:       r.Required,
		SortOrder:      r.SortOrder,
		Category:       r.Category,
		ExpectedResult: r.ExpectedResult,
		MaxPoints:      r.MaxPoints,
	}
}

type AssessItemRequest struct {
	ActualResult string `json:"actual_result"`
	IsCompliant  bool   `json:"is_compliant"`
	AssessedBy   string `json:"assessed_by,omitempty"`
	ActualPoints *int   `json:"actual_points,omitempty"`
	Comments     string `json:"comments,omitempty"`
	Evidence     string `json:"evidence,omitempty"`
}

func (r *AssessItemRequest) Normalize() { sanitize(r) }

func (r *AssessItemRequest) assessment() models.Assessment {
	return models.Assessment{
		ActualResult: r.ActualResult,
		IsCompliant:  r.IsCompliant,
		AssessedBy:   r.AssessedBy,
		ActualPoints: r.ActualPoints,
		Comments:     r.Comments,
		Evidence:     r.Evidence,
	}
}

type NotApplicableRequest struct {
	Reason     string `json:"reason"`
	AssessedBy string `json:"assessed_by,omitempty"`
}

func (r *NotApplicableRequest) Normalize() { sanitize(r) }

type ItemScoreRequest struct {
	ActualPoints int `json:"actual_points"`
}

type ItemCorrectiveActionRequest struct {
	Text                string     `json:"text"`
	DueDate             *time.Time `json:"due_date,omitempty"`
	ResponsiblePersonID *string    `json:"responsible_person_id,omitempty"`

	responsible *id.UserID
}

func (r *ItemCorrectiveActionRequest) Normalize() { sanitize(r) }

func (r *ItemCorrectiveActionRequest) Validate() error {
	if r.Text == "" {
		return dErrors.New(dErrors.CodeValidation, "text is required")
	}
	responsible, err := parseOptionalUser(r.ResponsiblePersonID)
	if err != nil {
		return err
	}
	r.responsible = responsible
	return nil
}

func (r *ItemCorrectiveActionRequest) action() service.ItemCorrectiveAction {
	return service.ItemCorrectiveAction{Text: r.Text, DueDate: r.DueDate, Responsible: r.responsible}
}

type AddFindingRequest struct {
	Description string `json:"description"`
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	AuditItemID *int64 `json:"audit_item_id,omitempty"`
	Location    string `json:"location,omitempty"`
	Equipment   string `json:"equipment,omitempty"`
	Standard    string `json:"standard,omitempty"`
	Regulation  string `json:"regulation,omitempty"`

	findingType models.FindingType
	severity    models.FindingSeverity
}

func (r *AddFindingRequest) Normalize() { sanitize(r) }

func (r *AddFindingRequest) Validate() error {
	if r.Description == "" {
		return dErrors.New(dErrors.CodeValidation, "description is required")
	}
	t, err := models.ParseFindingType(r.Type)
	if err != nil {
		return err
	}
	sev, err := models.ParseFindingSeverity(r.Severity)
	if err != nil {
		return err
	}
	if r.AuditItemID != nil && *r.AuditItemID <= 0 {
		return dErrors.New(dErrors.CodeValidation, "invalid audit_item_id")
	}
	r.findingType, r.severity = t, sev
	return nil
}

func (r *AddFindingRequest) input() models.FindingInput {
	in := models.FindingInput{
		Description: r.Description,
		Type:        r.findingType,
		Severity:    r.severity,
		Location:    r.Location,
		Equipment:   r.Equipment,
		Standard:    r.Standard,
		Regulation:  r.Regulation,
	}
	if r.AuditItemID != nil {
		itemID := id.ItemID(*r.AuditItemID)
		in.AuditItemID = &itemID
	}
	return in
}

type SeverityRequest struct {
	Severity string `json:"severity"`

	severity models.FindingSeverity
}

func (r *SeverityRequest) Validate() error {
	sev, err := models.ParseFindingSeverity(r.Severity)
	if err != nil {
		return err
	}
	r.severity = sev
	return nil
}

type FindingCorrectiveActionRequest struct {
	Text                  string     `json:"text"`
	DueDate               *time.Time `json:"due_date,omitempty"`
	ResponsiblePersonID   *string    `json:"responsible_person_id,omitempty"`
	ResponsiblePersonName string     `json:"responsible_person_name,omitempty"`

	responsible *id.UserID
}

func (r *FindingCorrectiveActionRequest) Normalize() { sanitize(r) }

func (r *FindingCorrectiveActionRequest) Validate() error {
	if r.Text == "" {
		return dErrors.New(dErrors.CodeValidation, "text is required")
	}
	responsible, err := parseOptionalUser(r.ResponsiblePersonID)
	if err != nil {
		return err
	}
	r.responsible = responsible
	return nil
}

func (r *FindingCorrectiveActionRequest) action() models.CorrectiveAction {
	return models.CorrectiveAction{
		Text:                  r.Text,
		DueDate:               r.DueDate,
		ResponsiblePersonID:   r.responsible,
		ResponsiblePersonName: r.ResponsiblePersonName,
	}
}

type FindingDescriptionRequest struct {
	Description string `json:"description"`
	Type        string `json:"type"`

	findingType models.FindingType
}

func (r *FindingDescriptionRequest) Normalize() { sanitize(r) }

func (r *FindingDescriptionRequest) Validate() error {
	if r.Description == "" {
		return dErrors.New(dErrors.CodeValidation, "description is required")
	}
	t, err := models.ParseFindingType(r.Type)
	if err != nil {
		return err
	}
	r.findingType = t
	return nil
}

type FindingContextRequest struct {
	Location   string `json:"location"`
	Equipment  string `json:"equipment"`
	Standard   string `json:"standard"`
	Regulation string `json:"regulation"`
}

func (r *FindingContextRequest) Normalize() { sanitize(r) }

func (r *FindingContextRequest) findingContext() service.FindingContext {
	return service.FindingContext{
		Location:   r.Location,
		Equipment:  r.Equipment,
		Standard:   r.Standard,
		Regulation: r.Regulation,
	}
}

// FindingTextRequest sets one narrative field: root cause, immediate or
// preventive action.
type FindingTextRequest struct {
	Text string `json:"text"`
}

func (r *FindingTextRequest) Normalize() { sanitize(r) }

func (r *FindingTextRequest) Validate() error {
	if r.Text == "" {
		return dErrors.New(dErrors.CodeValidation, "text is required")
	}
	return nil
}

type FindingCostRequest struct {
	EstimatedCost     *float64 `json:"estimated_cost,omitempty"`
	ActualCost        *float64 `json:"actual_cost,omitempty"`
	ImpactDescription string   `json:"impact_description,omitempty"`
}

func (r *FindingCostRequest) Normalize() { sanitize(r) }

func (r *FindingCostRequest) Validate() error {
	if (r.EstimatedCost != nil && *r.EstimatedCost < 0) || (r.ActualCost != nil && *r.ActualCost < 0) {
		return dErrors.New(dErrors.CodeValidation, "cost cannot be negative")
	}
	return nil
}

func (r *FindingCostRequest) cost() service.FindingCost {
	return service.FindingCost{Estimated: r.EstimatedCost, Actual: r.ActualCost, Impact: r.ImpactDescription}
}

type AttachmentDescriptionRequest struct {
	Description string `json:"description"`
}

func (r *AttachmentDescriptionRequest) Normalize() { sanitize(r) }

type VerifyFindingRequest struct {
	Method     string `json:"method"`
	VerifiedBy string `json:"verified_by,omitempty"`
}

func (r *VerifyFindingRequest) Normalize() { sanitize(r) }

type CloseFindingRequest struct {
	Notes    string `json:"notes"`
	ClosedBy string `json:"closed_by,omitempty"`
}

func (r *CloseFindingRequest) Normalize() { sanitize(r) }

func parseOptionalUser(raw *string) (*id.UserID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	u, err := id.ParseUserID(*raw)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

type ComplianceRequest struct {
	StandardsApplied     string `json:"standards_applied"`
	RegulatoryReferences string `json:"regulatory_references"`
	IsRegulatory         bool   `json:"is_regulatory"`
	RegulatoryAuthority  string `json:"regulatory_authority"`
}

func (r *ComplianceRequest) Normalize() { sanitize(r) }

func (r *ComplianceRequest) Validate() error {
	if r.IsRegulatory && r.RegulatoryAuthority == "" {
		return dErrors.New(dErrors.CodeValidation, "regulatory_authority is required for regulatory audits")
	}
	return nil
}

func (r *ComplianceRequest) info() models.ComplianceInfo {
	return models.ComplianceInfo{
		StandardsApplied:     r.StandardsApplied,
		RegulatoryReferences: r.RegulatoryReferences,
		IsRegulatory:         r.IsRegulatory,
		RegulatoryAuthority:  r.RegulatoryAuthority,
	}
}
