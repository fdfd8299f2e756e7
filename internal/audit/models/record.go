package models

import (
	"time"

	id "hsse/pkg/domain"
)

// AuditRecord is the persistence shape of an audit. Stores serialize it as a
// single document so children are always written with their root.
type AuditRecord struct {
	ID                       id.AuditID      `json:"id"`
	Number                   string          `json:"number"`
	ScoringEnabled           bool            `json:"scoring_enabled"`
	Title                    string          `json:"title"`
	Description              string          `json:"description"`
	Type                     AuditType       `json:"type"`
	Category                 AuditCategory   `json:"category"`
	Priority                 AuditPriority   `json:"priority"`
	Status                   AuditStatus     `json:"status"`
	AuditorID                id.UserID       `json:"auditor_id"`
	LocationID               *int64          `json:"location_id,omitempty"`
	DepartmentID             *int64          `json:"department_id,omitempty"`
	FacilityID               *int64          `json:"facility_id,omitempty"`
	ScheduledDate            time.Time       `json:"scheduled_date"`
	StartedDate              *time.Time      `json:"started_date,omitempty"`
	CompletedDate            *time.Time      `json:"completed_date,omitempty"`
	RiskLevel                RiskLevel       `json:"risk_level"`
	Summary                  string          `json:"summary,omitempty"`
	Recommendations          string          `json:"recommendations,omitempty"`
	OverallScore             *ScoreBand      `json:"overall_score,omitempty"`
	ScorePercentage          *float64        `json:"score_percentage,omitempty"`
	CancellationReason       string          `json:"cancellation_reason,omitempty"`
	EstimatedDurationMinutes *int            `json:"estimated_duration_minutes,omitempty"`
	ActualDurationMinutes    *int            `json:"actual_duration_minutes,omitempty"`
	Compliance               ComplianceInfo  `json:"compliance"`
	Items                    []ItemRecord    `json:"items"`
	Findings                 []FindingRecord `json:"findings"`
	Attachments              []Attachment    `json:"attachments"`
	Comments                 []Comment       `json:"comments"`
	NextItemID               int64           `json:"next_item_id"`
	NextFindingID            int64           `json:"next_finding_id"`
	Version                  int64           `json:"-"`
	CreatedAt                time.Time       `json:"created_at"`
	UpdatedAt                time.Time       `json:"updated_at"`
}

type ItemRecord struct {
	ID                      id.ItemID  `json:"id"`
	Description             string     `json:"description"`
	Type                    ItemType   `json:"type"`
	Required                bool       `json:"required"`
	SortOrder               int        `json:"sort_order"`
	Category                string     `json:"category,omitempty"`
	ExpectedResult          string     `json:"expected_result,omitempty"`
	MaxPoints               *int       `json:"max_points,omitempty"`
	Status                  ItemStatus `json:"status"`
	ActualResult            string     `json:"actual_result,omitempty"`
	IsCompliant             *bool      `json:"is_compliant,omitempty"`
	ActualPoints            *int       `json:"actual_points,omitempty"`
	AssessedBy              string     `json:"assessed_by,omitempty"`
	AssessedAt              *time.Time `json:"assessed_at,omitempty"`
	Comments                string     `json:"comments,omitempty"`
	Evidence                string     `json:"evidence,omitempty"`
	CorrectiveAction        string     `json:"corrective_action,omitempty"`
	CorrectiveActionDueDate *time.Time `json:"corrective_action_due_date,omitempty"`
	ResponsiblePersonID     *id.UserID `json:"responsible_person_id,omitempty"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
}

type FindingRecord struct {
	ID                    id.FindingID        `json:"id"`
	AuditItemID           *id.ItemID          `json:"audit_item_id,omitempty"`
	Number                string              `json:"number"`
	Description           string              `json:"description"`
	Type                  FindingType         `json:"type"`
	Severity              FindingSeverity     `json:"severity"`
	RiskLevel             RiskLevel           `json:"risk_level"`
	Status                FindingStatus       `json:"status"`
	RequiresVerification  bool                `json:"requires_verification"`
	Location              string              `json:"location,omitempty"`
	Equipment             string              `json:"equipment,omitempty"`
	Standard              string              `json:"standard,omitempty"`
	Regulation            string              `json:"regulation,omitempty"`
	RootCause             string              `json:"root_cause,omitempty"`
	ImmediateAction       string              `json:"immediate_action,omitempty"`
	CorrectiveAction      string              `json:"corrective_action,omitempty"`
	PreventiveAction      string              `json:"preventive_action,omitempty"`
	DueDate               *time.Time          `json:"due_date,omitempty"`
	ResponsiblePersonID   *id.UserID          `json:"responsible_person_id,omitempty"`
	ResponsiblePersonName string              `json:"responsible_person_name,omitempty"`
	ClosedDate            *time.Time          `json:"closed_date,omitempty"`
	ClosureNotes          string              `json:"closure_notes,omitempty"`
	ClosedBy              string              `json:"closed_by,omitempty"`
	VerificationMethod    string              `json:"verification_method,omitempty"`
	VerifiedDate          *time.Time          `json:"verified_date,omitempty"`
	VerifiedBy            string              `json:"verified_by,omitempty"`
	ReopenReason          string              `json:"reopen_reason,omitempty"`
	EstimatedCost         *float64            `json:"estimated_cost,omitempty"`
	ActualCost            *float64            `json:"actual_cost,omitempty"`
	ImpactDescription     string              `json:"impact_description,omitempty"`
	Attachments           []FindingAttachment `json:"attachments,omitempty"`
	CreatedAt             time.Time           `json:"created_at"`
	UpdatedAt             time.Time           `json:"updated_at"`
}

// ToRecord snapshots the aggregate. Pending events are not part of the record.
func (a *Audit) ToRecord() AuditRecord {
	rec := AuditRecord{
		ID:                       a.id,
		Number:                   a.number,
		ScoringEnabled:           a.scoringEnabled,
		Title:                    a.title,
		Description:              a.description,
		Type:                     a.auditType,
		Category:                 a.category,
		Priority:                 a.priority,
		Status:                   a.status,
		AuditorID:                a.auditorID,
		LocationID:               copyInt64(a.locationID),
		DepartmentID:             copyInt64(a.departmentID),
		FacilityID:               copyInt64(a.facilityID),
		ScheduledDate:            a.scheduledDate,
		StartedDate:              copyTime(a.startedDate),
		CompletedDate:            copyTime(a.completedDate),
		RiskLevel:                a.riskLevel,
		Summary:                  a.summary,
		Recommendations:          a.recommendations,
		OverallScore:             a.OverallScore(),
		ScorePercentage:          copyFloat(a.scorePercentage),
		CancellationReason:       a.cancellationReason,
		EstimatedDurationMinutes: copyInt(a.estimatedDurationMinutes),
		ActualDurationMinutes:    copyInt(a.actualDurationMinutes),
		Compliance:               a.compliance,
		Attachments:              a.Attachments(),
		Comments:                 a.Comments(),
		NextItemID:               a.nextItemID,
		NextFindingID:            a.nextFindingID,
		Version:                  a.version,
		CreatedAt:                a.createdAt,
		UpdatedAt:                a.updatedAt,
	}
	rec.Items = make([]ItemRecord, len(a.items))
	for i, item := range a.items {
		rec.Items[i] = item.toRecord()
	}
	rec.Findings = make([]FindingRecord, len(a.findings))
	for i, f := range a.findings {
		rec.Findings[i] = f.toRecord()
	}
	return rec
}

// FromRecord rehydrates an audit. Rehydration records no events and does not
// re-run lifecycle guards; the risk level is recomputed from the findings.
func FromRecord(rec AuditRecord) *Audit {
	a := &Audit{
		id:                       rec.ID,
		number:                   rec.Number,
		scoringEnabled:           rec.ScoringEnabled,
		title:                    rec.Title,
		description:              rec.Description,
		auditType:                rec.Type,
		category:                 rec.Category,
		priority:                 rec.Priority,
		status:                   rec.Status,
		auditorID:                rec.AuditorID,
		locationID:               copyInt64(rec.LocationID),
		departmentID:             copyInt64(rec.DepartmentID),
		facilityID:               copyInt64(rec.FacilityID),
		scheduledDate:            rec.ScheduledDate,
		startedDate:              copyTime(rec.StartedDate),
		completedDate:            copyTime(rec.CompletedDate),
		summary:                  rec.Summary,
		recommendations:          rec.Recommendations,
		scorePercentage:          copyFloat(rec.ScorePercentage),
		cancellationReason:       rec.CancellationReason,
		estimatedDurationMinutes: copyInt(rec.EstimatedDurationMinutes),
		actualDurationMinutes:    copyInt(rec.ActualDurationMinutes),
		compliance:               rec.Compliance,
		nextItemID:               rec.NextItemID,
		nextFindingID:            rec.NextFindingID,
		version:                  rec.Version,
		createdAt:                rec.CreatedAt,
		updatedAt:                rec.UpdatedAt,
	}
	if rec.OverallScore != nil {
		band := *rec.OverallScore
		a.overallScore = &band
	}
	a.attachments = append([]Attachment(nil), rec.Attachments...)
	a.comments = append([]Comment(nil), rec.Comments...)
	for _, ir := range rec.Items {
		a.items = append(a.items, itemFromRecord(rec.ID, ir))
	}
	for _, fr := range rec.Findings {
		a.findings = append(a.findings, findingFromRecord(rec.ID, fr))
	}
	a.recomputeRisk()
	return a
}

// SetVersion is called by stores after a successful optimistic write.
func (a *Audit) SetVersion(v int64) {
	a.version = v
}

func (i *Item) toRecord() ItemRecord {
	return ItemRecord{
		ID:                      i.id,
		Description:             i.description,
		Type:                    i.itemType,
		Required:                i.required,
		SortOrder:               i.sortOrder,
		Category:                i.category,
		ExpectedResult:          i.expectedResult,
		MaxPoints:               copyInt(i.maxPoints),
		Status:                  i.status,
		ActualResult:            i.actualResult,
		IsCompliant:             copyBool(i.isCompliant),
		ActualPoints:            copyInt(i.actualPoints),
		AssessedBy:              i.assessedBy,
		AssessedAt:              copyTime(i.assessedAt),
		Comments:                i.comments,
		Evidence:                i.evidence,
		CorrectiveAction:        i.correctiveAction,
		CorrectiveActionDueDate: copyTime(i.correctiveActionDueDate),
		ResponsiblePersonID:     copyUserID(i.responsiblePersonID),
		CreatedAt:               i.createdAt,
		UpdatedAt:               i.updatedAt,
	}
}

func itemFromRecord(auditID id.AuditID, r ItemRecord) *Item {
	return &Item{
		id:                      r.ID,
		auditID:                 auditID,
		description:             r.Description,
		itemType:                r.Type,
		required:                r.Required,
		sortOrder:               r.SortOrder,
		category:                r.Category,
		expectedResult:          r.ExpectedResult,
		maxPoints:               copyInt(r.MaxPoints),
		status:                  r.Status,
		actualResult:            r.ActualResult,
		isCompliant:             copyBool(r.IsCompliant),
		actualPoints:            copyInt(r.ActualPoints),
		assessedBy:              r.AssessedBy,
		assessedAt:              copyTime(r.AssessedAt),
		comments:                r.Comments,
		evidence:                r.Evidence,
		correctiveAction:        r.CorrectiveAction,
		correctiveActionDueDate: copyTime(r.CorrectiveActionDueDate),
		responsiblePersonID:     copyUserID(r.ResponsiblePersonID),
		createdAt:               r.CreatedAt,
		updatedAt:               r.UpdatedAt,
	}
}

func (f *Finding) toRecord() FindingRecord {
	return FindingRecord{
		ID:                    f.id,
		AuditItemID:           f.AuditItemID(),
		Number:                f.number,
		Description:           f.description,
		Type:                  f.findingType,
		Severity:              f.severity,
		RiskLevel:             f.riskLevel,
		Status:                f.status,
		RequiresVerification:  f.requiresVerification,
		Location:              f.location,
		Equipment:             f.equipment,
		Standard:              f.standard,
		Regulation:            f.regulation,
		RootCause:             f.rootCause,
		ImmediateAction:       f.immediateAction,
		CorrectiveAction:      f.correctiveAction,
		PreventiveAction:      f.preventiveAction,
		DueDate:               copyTime(f.dueDate),
		ResponsiblePersonID:   copyUserID(f.responsiblePersonID),
		ResponsiblePersonName: f.responsiblePersonName,
		ClosedDate:            copyTime(f.closedDate),
		ClosureNotes:          f.closureNotes,
		ClosedBy:              f.closedBy,
		VerificationMethod:    f.verificationMethod,
		VerifiedDate:          copyTime(f.verifiedDate),
		VerifiedBy:            f.verifiedBy,
		ReopenReason:          f.reopenReason,
		EstimatedCost:         copyFloat(f.estimatedCost),
		ActualCost:            copyFloat(f.actualCost),
		ImpactDescription:     f.impactDescription,
		Attachments:           f.Attachments(),
		CreatedAt:             f.createdAt,
		UpdatedAt:             f.updatedAt,
	}
}

func findingFromRecord(auditID id.AuditID, r FindingRecord) *Finding {
	f := &Finding{
		id:                    r.ID,
		auditID:               auditID,
		number:                r.Number,
		description:           r.Description,
		findingType:           r.Type,
		status:                r.Status,
		location:              r.Location,
		equipment:             r.Equipment,
		standard:              r.Standard,
		regulation:            r.Regulation,
		rootCause:             r.RootCause,
		immediateAction:       r.ImmediateAction,
		correctiveAction:      r.CorrectiveAction,
		preventiveAction:      r.PreventiveAction,
		dueDate:               copyTime(r.DueDate),
		responsiblePersonID:   copyUserID(r.ResponsiblePersonID),
		responsiblePersonName: r.ResponsiblePersonName,
		closedDate:            copyTime(r.ClosedDate),
		closureNotes:          r.ClosureNotes,
		closedBy:              r.ClosedBy,
		verificationMethod:    r.VerificationMethod,
		verifiedDate:          copyTime(r.VerifiedDate),
		verifiedBy:            r.VerifiedBy,
		reopenReason:          r.ReopenReason,
		estimatedCost:         copyFloat(r.EstimatedCost),
		actualCost:            copyFloat(r.ActualCost),
		impactDescription:     r.ImpactDescription,
		attachments:           append([]FindingAttachment(nil), r.Attachments...),
		createdAt:             r.CreatedAt,
		updatedAt:             r.UpdatedAt,
	}
	if r.AuditItemID != nil {
		itemID := *r.AuditItemID
		f.auditItemID = &itemID
	}
	f.applySeverity(r.Severity)
	return f
}
