package models

import (
	"math"
	"sort"
	"strings"
	"time"

	id "hsse/pkg/domain"
	dErrors "hsse/pkg/domain-errors"
)

const maxTitleLength = 200

// Audit is the aggregate root for one compliance audit. Items, findings,
// attachments and comments are created through it and never outlive it.
//
// Invariants:
//   - Status only follows an edge of the lifecycle graph (see auditTransitions)
//   - Items and findings are frozen once the audit is Completed or Archived
//   - RiskLevel is a pure function of current finding severities
//   - OverallScore and ScorePercentage are nil until completion, and stay nil
//     when scoring is disabled (inspection variant)
//   - Every guard runs before any field changes; a failed call leaves the
//     aggregate untouched and records no event
type Audit struct {
	id             id.AuditID
	number         string
	scoringEnabled bool

	title        string
	description  string
	auditType    AuditType
	category     AuditCategory
	priority     AuditPriority
	status       AuditStatus
	auditorID    id.UserID
	locationID   *int64
	departmentID *int64
	facilityID   *int64

	scheduledDate time.Time
	startedDate   *time.Time
	completedDate *time.Time

	riskLevel          RiskLevel
	summary            string
	recommendations    string
	overallScore       *ScoreBand
	scorePercentage    *float64
	cancellationReason string

	estimatedDurationMinutes *int
	actualDurationMinutes    *int

	compliance ComplianceInfo

	items       []*Item
	findings    []*Finding
	attachments []Attachment
	comments    []Comment

	nextItemID    int64
	nextFindingID int64
	version       int64

	createdAt time.Time
	updatedAt time.Time

	events []Event
}

// BasicInfo is the editable descriptive part of an audit.
type BasicInfo struct {
	Title         string
	Description   string
	Type          AuditType
	Category      AuditCategory
	Priority      AuditPriority
	ScheduledDate time.Time
	AuditorID     id.UserID
	LocationID    *int64
	DepartmentID  *int64
	FacilityID    *int64
}

// Validate checks the fields every audit must carry.
func (b BasicInfo) Validate() error {
	title := strings.TrimSpace(b.Title)
	if title == "" {
		return invariantViolation("audit title cannot be empty")
	}
	if len(title) > maxTitleLength {
		return invariantViolation("audit title must be 200 characters or less")
	}
	if !b.Type.IsValid() {
		return invariantViolation("invalid audit type")
	}
	if !b.Category.IsValid() {
		return invariantViolation("invalid audit category")
	}
	if !b.Priority.IsValid() {
		return invariantViolation("invalid audit priority")
	}
	if b.AuditorID.IsNil() {
		return invariantViolation("assigned auditor is required")
	}
	if b.ScheduledDate.IsZero() {
		return invariantViolation("scheduled date is required")
	}
	return nil
}

// ComplianceInfo records the standards and regulators an audit answers to.
type ComplianceInfo struct {
	StandardsApplied     string `json:"standards_applied"`
	RegulatoryReferences string `json:"regulatory_references"`
	IsRegulatory         bool   `json:"is_regulatory"`
	RegulatoryAuthority  string `json:"regulatory_authority"`
}

// Attachment is an evidence file reference owned by an audit.
type Attachment struct {
	ID          id.AttachmentID `json:"id"`
	FileName    string          `json:"file_name"`
	ContentType string          `json:"content_type"`
	Size        int64           `json:"size"`
	StoragePath string          `json:"storage_path"`
	Description string          `json:"description"`
	UploadedBy  string          `json:"uploaded_by"`
	UploadedAt  time.Time       `json:"uploaded_at"`
}

type Comment struct {
	ID        id.CommentID `json:"id"`
	Text      string       `json:"text"`
	Author    string       `json:"author"`
	CreatedAt time.Time    `json:"created_at"`
}

// NewAudit creates a scored audit in Draft with a generated number.
func NewAudit(auditID id.AuditID, info BasicInfo, numbers *NumberGenerator, now time.Time) (*Audit, error) {
	return newAudit(auditID, info, true, numbers, now)
}

// NewInspection creates the unscored variant of the same engine.
func NewInspection(auditID id.AuditID, info BasicInfo, numbers *NumberGenerator, now time.Time) (*Audit, error) {
	return newAudit(auditID, info, false, numbers, now)
}

func newAudit(auditID id.AuditID, info BasicInfo, scoring bool, numbers *NumberGenerator, now time.Time) (*Audit, error) {
	if auditID <= 0 {
		return nil, invariantViolation("audit id must be positive")
	}
	if err := info.Validate(); err != nil {
		return nil, err
	}
	if numbers == nil {
		numbers = defaultNumbers
	}
	number := numbers.AuditNumber(info.Type, now)
	if !scoring {
		number = numbers.InspectionNumber(now)
	}
	a := &Audit{
		id:             auditID,
		number:         number,
		scoringEnabled: scoring,
		status:         AuditStatusDraft,
		riskLevel:      RiskLevelLow,
		createdAt:      now,
		updatedAt:      now,
	}
	a.applyBasicInfo(info)
	a.record(EventAuditCreated, now, nil)
	return a, nil
}

func (a *Audit) applyBasicInfo(info BasicInfo) {
	a.title = strings.TrimSpace(info.Title)
	a.description = info.Description
	a.auditType = info.Type
	a.category = info.Category
	a.priority = info.Priority
	a.scheduledDate = info.ScheduledDate
	a.auditorID = info.AuditorID
	a.locationID = copyInt64(info.LocationID)
	a.departmentID = copyInt64(info.DepartmentID)
	a.facilityID = copyInt64(info.FacilityID)
}

func (a *Audit) ID() id.AuditID { return a.id }
func (a *Audit) Number() string { return a.number }
func (a *Audit) ScoringEnabled() bool { return a.scoringEnabled }
func (a *Audit) Title() string { return a.title }
func (a *Audit) Description() string { return a.description }
func (a *Audit) Type() AuditType { return a.auditType }
func (a *Audit) Category() AuditCategory { return a.category }
func (a *Audit) Priority() AuditPriority { return a.priority }
func (a *Audit) Status() AuditStatus { return a.status }
func (a *Audit) AuditorID() id.UserID { return a.auditorID }
func (a *Audit) LocationID() *int64 { return copyInt64(a.locationID) }
func (a *Audit) DepartmentID() *int64 { return copyInt64(a.departmentID) }
func (a *Audit) FacilityID() *int64 { return copyInt64(a.facilityID) }
func (a *Audit) ScheduledDate() time.Time { return a.scheduledDate }
func (a *Audit) StartedDate() *time.Time { return copyTime(a.startedDate) }
func (a *Audit) CompletedDate() *time.Time { return copyTime(a.completedDate) }
func (a *Audit) RiskLevel() RiskLevel { return a.riskLevel }
func (a *Audit) Summary() string { return a.summary }
func (a *Audit) Recommendations() string { return a.recommendations }
func (a *Audit) ScorePercentage() *float64 { return copyFloat(a.scorePercentage) }
func (a *Audit) CancellationReason() string { return a.cancellationReason }
func (a *Audit) EstimatedDurationMinutes() *int { return copyInt(a.estimatedDurationMinutes) }
func (a *Audit) ActualDurationMinutes() *int { return copyInt(a.actualDurationMinutes) }
func (a *Audit) Compliance() ComplianceInfo { return a.compliance }
func (a *Audit) Version() int64 { return a.version }
func (a *Audit) CreatedAt() time.Time { return a.createdAt }
func (a *Audit) UpdatedAt() time.Time { return a.updatedAt }

func (a *Audit) OverallScore() *ScoreBand {
	if a.overallScore == nil {
		return nil
	}
	b := *a.overallScore
	return &b
}

// Items returns copies of the items in sort order. Mutate through the audit.
func (a *Audit) Items() []*Item {
	out := make([]*Item, len(a.items))
	for i, item := range a.items {
		out[i] = item.clone()
	}
	return out
}

// Item returns a copy of one item.
func (a *Audit) Item(itemID id.ItemID) (*Item, bool) {
	if item := a.findItem(itemID); item != nil {
		return item.clone(), true
	}
	return nil, false
}

// Findings returns copies of the findings in insertion order.
func (a *Audit) Findings() []*Finding {
	out := make([]*Finding, len(a.findings))
	for i, f := range a.findings {
		out[i] = f.clone()
	}
	return out
}

// Finding returns a copy of one finding.
func (a *Audit) Finding(findingID id.FindingID) (*Finding, bool) {
	if f := a.findFinding(findingID); f != nil {
		return f.clone(), true
	}
	return nil, false
}

func (a *Audit) Attachments() []Attachment {
	out := make([]Attachment, len(a.attachments))
	copy(out, a.attachments)
	return out
}

func (a *Audit) Comments() []Comment {
	out := make([]Comment, len(a.comments))
	copy(out, a.comments)
	return out
}

// IsOverdue reports a not-yet-started audit whose scheduled date has passed.
func (a *Audit) IsOverdue(now time.Time) bool {
	return (a.status == AuditStatusScheduled || a.status == AuditStatusOverdue) && a.scheduledDate.Before(now)
}

func (a *Audit) CanEdit() bool {
	return a.status == AuditStatusDraft || a.status == AuditStatusScheduled
}

func (a *Audit) CanStart() bool {
	return a.status == AuditStatusScheduled || a.status == AuditStatusOverdue
}

func (a *Audit) CanComplete() bool {
	return a.status == AuditStatusInProgress
}

func (a *Audit) CanCancel() bool {
	return a.status != AuditStatusCompleted && a.status != AuditStatusArchived
}

func (a *Audit) CanArchive() bool {
	return a.status == AuditStatusCompleted || a.status == AuditStatusCancelled
}

func (a *Audit) HasFindings() bool {
	return len(a.findings) > 0
}

func (a *Audit) HasCriticalFindings() bool {
	for _, f := range a.findings {
		if f.severity == SeverityCritical {
			return true
		}
	}
	return false
}

// CompletionPercentage is the share of items that are Completed or
// NotApplicable, rounded to the nearest integer; 0 without items.
func (a *Audit) CompletionPercentage() int {
	if len(a.items) == 0 {
		return 0
	}
	done := 0
	for _, item := range a.items {
		if item.status == ItemStatusCompleted || item.status == ItemStatusNotApplicable {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(a.items)) * 100))
}

func (a *Audit) ensureMutable(op string) error {
	if a.status.IsLocked() {
		return dErrors.Newf(dErrors.CodeInvariantViolation, "cannot %s audit in status %s: audit is locked", op, a.status)
	}
	return nil
}

// transition moves the audit along an edge of the status graph. Operations
// narrow the allowed sources further before calling it.
func (a *Audit) transition(op string, next AuditStatus) error {
	if !a.status.CanTransitionTo(next) {
		return illegalTransition(op, "audit", a.status)
	}
	a.status = next
	return nil
}

// UpdateBasicInfo edits descriptive fields while the audit is Draft or Scheduled.
func (a *Audit) UpdateBasicInfo(info BasicInfo, now time.Time) error {
	if !a.CanEdit() {
		return illegalTransition("update", "audit", a.status)
	}
	if err := info.Validate(); err != nil {
		return err
	}
	a.applyBasicInfo(info)
	a.updatedAt = now
	a.record(EventAuditUpdated, now, nil)
	return nil
}

func (a *Audit) SetComplianceInfo(info ComplianceInfo, now time.Time) error {
	if err := a.ensureMutable("set compliance info on"); err != nil {
		return err
	}
	a.compliance = info
	a.updatedAt = now
	return nil
}

// SetEstimatedDuration records the planned effort in minutes.
func (a *Audit) SetEstimatedDuration(minutes int, now time.Time) error {
	if err := a.ensureMutable("set estimated duration on"); err != nil {
		return err
	}
	if minutes <= 0 {
		return invariantViolation("estimated duration must be positive")
	}
	a.estimatedDurationMinutes = &minutes
	a.updatedAt = now
	return nil
}

func (a *Audit) Schedule(date time.Time, now time.Time) error {
	if a.status != AuditStatusDraft {
		return illegalTransition("schedule", "audit", a.status)
	}
	if date.IsZero() {
		return invariantViolation("scheduled date is required")
	}
	if err := a.transition("schedule", AuditStatusScheduled); err != nil {
		return err
	}
	a.scheduledDate = date
	a.updatedAt = now
	a.record(EventAuditScheduled, now, nil)
	return nil
}

// StartAudit begins fieldwork. Overdue is advisory and does not block starting.
func (a *Audit) StartAudit(now time.Time) error {
	if !a.CanStart() {
		return illegalTransition("start", "audit", a.status)
	}
	if err := a.transition("start", AuditStatusInProgress); err != nil {
		return err
	}
	a.startedDate = &now
	a.updatedAt = now
	a.record(EventAuditStarted, now, nil)
	return nil
}

func (a *Audit) SubmitForReview(now time.Time) error {
	if a.status != AuditStatusInProgress {
		return illegalTransition("submit for review", "audit", a.status)
	}
	if err := a.transition("submit for review", AuditStatusUnderReview); err != nil {
		return err
	}
	a.updatedAt = now
	a.record(EventAuditSubmittedForReview, now, nil)
	return nil
}

// ReopenForReassessment sends a reviewed audit back to fieldwork and resets
// every item that failed assessment.
func (a *Audit) ReopenForReassessment(reason string, now time.Time) error {
	if a.status != AuditStatusUnderReview {
		return illegalTransition("reopen", "audit", a.status)
	}
	if err := a.transition("reopen", AuditStatusInProgress); err != nil {
		return err
	}
	for _, item := range a.items {
		if item.status == ItemStatusNonCompliant || item.status == ItemStatusRequiresFollowUp {
			item.Reset(now)
		}
	}
	a.updatedAt = now
	a.record(EventAuditReopened, now, func(e *Event) { e.Reason = reason })
	return nil
}

// CompleteAudit closes fieldwork, records the actual duration and, when
// scoring is enabled, the overall score from completed items.
func (a *Audit) CompleteAudit(summary, recommendations string, now time.Time) error {
	if !a.CanComplete() {
		return illegalTransition("complete", "audit", a.status)
	}
	if err := a.transition("complete", AuditStatusCompleted); err != nil {
		return err
	}
	a.completedDate = &now
	if a.startedDate != nil {
		minutes := int(now.Sub(*a.startedDate).Minutes())
		a.actualDurationMinutes = &minutes
	}
	if summary != "" {
		a.summary = summary
	}
	if recommendations != "" {
		a.recommendations = recommendations
	}
	if a.scoringEnabled {
		if score, ok := ScoreItems(a.items); ok {
			band, pct := score.Band, score.Percentage
			a.overallScore = &band
			a.scorePercentage = &pct
		}
	}
	a.updatedAt = now
	a.record(EventAuditCompleted, now, func(e *Event) {
		e.OverallScore = a.OverallScore()
		e.ScorePercentage = a.ScorePercentage()
	})
	return nil
}

func (a *Audit) Cancel(reason string, now time.Time) error {
	if !a.CanCancel() {
		return illegalTransition("cancel", "audit", a.status)
	}
	if err := a.transition("cancel", AuditStatusCancelled); err != nil {
		return err
	}
	a.cancellationReason = reason
	a.updatedAt = now
	a.record(EventAuditCancelled, now, func(e *Event) { e.Reason = reason })
	return nil
}

func (a *Audit) Archive(now time.Time) error {
	if !a.CanArchive() {
		return illegalTransition("archive", "audit", a.status)
	}
	if err := a.transition("archive", AuditStatusArchived); err != nil {
		return err
	}
	a.updatedAt = now
	a.record(EventAuditArchived, now, nil)
	return nil
}

// MarkOverdue flags a scheduled audit whose date has passed so reminder and
// escalation consumers can react.
func (a *Audit) MarkOverdue(now time.Time) error {
	if a.status != AuditStatusScheduled {
		return illegalTransition("mark overdue", "audit", a.status)
	}
	if !a.scheduledDate.Before(now) {
		return dErrors.Newf(dErrors.CodeIllegalStateTransition,
			"cannot mark overdue audit in status %s: scheduled date has not passed", a.status)
	}
	if err := a.transition("mark overdue", AuditStatusOverdue); err != nil {
		return err
	}
	a.updatedAt = now
	a.record(EventAuditOverdue, now, nil)
	return nil
}

// AddItem appends a checklist item. Sort orders are unique within an audit
// because they form the item number.
func (a *Audit) AddItem(in ItemInput, now time.Time) (*Item, error) {
	if err := a.ensureMutable("add item to"); err != nil {
		return nil, err
	}
	item, err := NewItem(in, now)
	if err != nil {
		return nil, err
	}
	for _, existing := range a.items {
		if existing.sortOrder == item.sortOrder {
			return nil, invariantViolation("item sort order must be unique within an audit")
		}
	}
	a.nextItemID++
	item.id = id.ItemID(a.nextItemID)
	item.auditID = a.id
	a.items = append(a.items, item)
	sort.SliceStable(a.items, func(i, j int) bool { return a.items[i].sortOrder < a.items[j].sortOrder })
	a.updatedAt = now
	return item.clone(), nil
}

// RemoveItem deletes an item and unlinks findings raised against it.
func (a *Audit) RemoveItem(itemID id.ItemID, now time.Time) error {
	if err := a.ensureMutable("remove item from"); err != nil {
		return err
	}
	idx := -1
	for i, item := range a.items {
		if item.id == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return dErrors.New(dErrors.CodeNotFound, "audit item not found")
	}
	a.items = append(a.items[:idx:idx], a.items[idx+1:]...)
	for _, f := range a.findings {
		if f.auditItemID != nil && *f.auditItemID == itemID {
			f.auditItemID = nil
		}
	}
	a.updatedAt = now
	return nil
}

func (a *Audit) findItem(itemID id.ItemID) *Item {
	for _, item := range a.items {
		if item.id == itemID {
			return item
		}
	}
	return nil
}

// withItem applies fn to a clone of the item and commits it only on success.
func (a *Audit) withItem(op string, itemID id.ItemID, now time.Time, fn func(*Item) error) error {
	if err := a.ensureMutable(op); err != nil {
		return err
	}
	item := a.findItem(itemID)
	if item == nil {
		return dErrors.New(dErrors.CodeNotFound, "audit item not found")
	}
	working := item.clone()
	if err := fn(working); err != nil {
		return err
	}
	*item = *working
	a.updatedAt = now
	return nil
}

func (a *Audit) StartItemAssessment(itemID id.ItemID, now time.Time) error {
	return a.withItem("assess item on", itemID, now, func(i *Item) error {
		return i.StartAssessment(now)
	})
}

func (a *Audit) CompleteItemAssessment(itemID id.ItemID, assessment Assessment, now time.Time) error {
	return a.withItem("assess item on", itemID, now, func(i *Item) error {
		return i.CompleteAssessment(assessment, now)
	})
}

func (a *Audit) MarkItemNotApplicable(itemID id.ItemID, reason, assessedBy string, now time.Time) error {
	return a.withItem("assess item on", itemID, now, func(i *Item) error {
		i.MarkAsNotApplicable(reason, assessedBy, now)
		return nil
	})
}

func (a *Audit) AddItemCorrectiveAction(itemID id.ItemID, text string, dueDate *time.Time, responsible *id.UserID, now time.Time) error {
	return a.withItem("add corrective action on", itemID, now, func(i *Item) error {
		return i.AddCorrectiveAction(text, dueDate, responsible, now)
	})
}

func (a *Audit) ResetItem(itemID id.ItemID, now time.Time) error {
	return a.withItem("reset item on", itemID, now, func(i *Item) error {
		i.Reset(now)
		return nil
	})
}

// UpdateItemScore changes an item's points. It reports false without touching
// anything when scoring is disabled.
func (a *Audit) UpdateItemScore(itemID id.ItemID, actualPoints int, now time.Time) (bool, error) {
	if !a.scoringEnabled {
		return false, nil
	}
	err := a.withItem("update item score on", itemID, now, func(i *Item) error {
		return i.UpdateScore(actualPoints, now)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// RaiseFinding creates a finding with a generated number and adds it.
func (a *Audit) RaiseFinding(in FindingInput, numbers *NumberGenerator, now time.Time) (*Finding, error) {
	if err := a.ensureMutable("add finding to"); err != nil {
		return nil, err
	}
	if numbers == nil {
		numbers = defaultNumbers
	}
	f, err := NewFinding(in, numbers.FindingNumber(now), now)
	if err != nil {
		return nil, err
	}
	if err := a.AddFinding(f, now); err != nil {
		return nil, err
	}
	return f.clone(), nil
}

// AddFinding attaches a copy of an unattached finding and recomputes the risk
// level. The caller's finding receives its id but is not the stored instance.
func (a *Audit) AddFinding(f *Finding, now time.Time) error {
	if err := a.ensureMutable("add finding to"); err != nil {
		return err
	}
	if f == nil {
		return invariantViolation("finding is required")
	}
	if f.id != 0 || f.auditID != 0 {
		return invariantViolation("finding already belongs to an audit")
	}
	if f.auditItemID != nil && a.findItem(*f.auditItemID) == nil {
		return dErrors.New(dErrors.CodeNotFound, "linked audit item not found")
	}
	a.nextFindingID++
	f.id = id.FindingID(a.nextFindingID)
	f.auditID = a.id
	owned := f.clone()
	a.findings = append(a.findings, owned)
	a.recomputeRisk()
	a.updatedAt = now
	a.record(EventFindingAdded, now, func(e *Event) {
		e.FindingID = owned.id
		e.FindingNumber = owned.number
		e.FindingSeverity = owned.severity
	})
	return nil
}

func (a *Audit) findFinding(findingID id.FindingID) *Finding {
	for _, f := range a.findings {
		if f.id == findingID {
			return f
		}
	}
	return nil
}

// UpdateFinding runs fn against a working copy of the finding and commits it
// only when fn succeeds. Risk is recomputed afterwards since fn may change severity.
func (a *Audit) UpdateFinding(findingID id.FindingID, now time.Time, fn func(*Finding) error) error {
	if err := a.ensureMutable("update finding on"); err != nil {
		return err
	}
	f := a.findFinding(findingID)
	if f == nil {
		return dErrors.New(dErrors.CodeNotFound, "audit finding not found")
	}
	working := f.clone()
	if err := fn(working); err != nil {
		return err
	}
	*f = *working
	a.recomputeRisk()
	a.updatedAt = now
	return nil
}

func (a *Audit) RemoveFinding(findingID id.FindingID, now time.Time) error {
	if err := a.ensureMutable("remove finding from"); err != nil {
		return err
	}
	for i, f := range a.findings {
		if f.id == findingID {
			a.findings = append(a.findings[:i:i], a.findings[i+1:]...)
			a.recomputeRisk()
			a.updatedAt = now
			return nil
		}
	}
	return dErrors.New(dErrors.CodeNotFound, "audit finding not found")
}

func (a *Audit) recomputeRisk() {
	severities := make([]FindingSeverity, len(a.findings))
	for i, f := range a.findings {
		severities[i] = f.severity
	}
	a.riskLevel = AggregateRisk(severities)
}

func (a *Audit) AddAttachment(in AttachmentInput, now time.Time) (Attachment, error) {
	if err := a.ensureMutable("add attachment to"); err != nil {
		return Attachment{}, err
	}
	attID, err := newAttachmentRef(in)
	if err != nil {
		return Attachment{}, err
	}
	att := Attachment{
		ID:          attID,
		FileName:    in.FileName,
		ContentType: in.ContentType,
		Size:        in.Size,
		StoragePath: in.StoragePath,
		Description: in.Description,
		UploadedBy:  in.UploadedBy,
		UploadedAt:  now,
	}
	a.attachments = append(a.attachments, att)
	a.updatedAt = now
	return att, nil
}

func (a *Audit) RemoveAttachment(attachmentID id.AttachmentID, now time.Time) error {
	if err := a.ensureMutable("remove attachment from"); err != nil {
		return err
	}
	for i := range a.attachments {
		if a.attachments[i].ID == attachmentID {
			a.attachments = append(a.attachments[:i:i], a.attachments[i+1:]...)
			a.updatedAt = now
			return nil
		}
	}
	return dErrors.New(dErrors.CodeNotFound, "audit attachment not found")
}

// AddComment appends a remark. Comments stay open after completion and only
// freeze once the audit is archived.
func (a *Audit) AddComment(text, author string, now time.Time) (Comment, error) {
	if a.status == AuditStatusArchived {
		return Comment{}, dErrors.Newf(dErrors.CodeInvariantViolation, "cannot comment on audit in status %s: audit is locked", a.status)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Comment{}, invariantViolation("comment text cannot be empty")
	}
	c := Comment{ID: id.NewCommentID(), Text: text, Author: author, CreatedAt: now}
	a.comments = append(a.comments, c)
	a.updatedAt = now
	return c, nil
}

func (i *Item) clone() *Item {
	c := *i
	return &c
}

func (f *Finding) clone() *Finding {
	c := *f
	if f.attachments != nil {
		c.attachments = make([]FindingAttachment, len(f.attachments))
		copy(c.attachments, f.attachments)
	}
	return &c
}

func copyInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
