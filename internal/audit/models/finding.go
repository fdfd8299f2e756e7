package models

import (
	"strings"
	"time"

	id "hsse/pkg/domain"
	dErrors "hsse/pkg/domain-errors"
)

const hoursPerDay = 24

// Finding is a non-conformance or observation raised against an audit.
//
// Invariants:
//   - Status moves Open -> InProgress -> Resolved -> Verified -> Closed;
//     Reopen takes Closed back to Open, or InProgress when corrective action exists
//   - RiskLevel and RequiresVerification are derived from Severity whenever it is set
//   - Closing requires Verified when verification is required, else Resolved or Verified
//   - Once Closed every mutating operation except Reopen is rejected
type Finding struct {
	id          id.FindingID
	auditID     id.AuditID
	auditItemID *id.ItemID
	number      string
	description string
	findingType FindingType
	severity    FindingSeverity
	riskLevel   RiskLevel
	status      FindingStatus

	requiresVerification bool

	location   string
	equipment  string
	standard   string
	regulation string

	rootCause             string
	immediateAction       string
	correctiveAction      string
	preventiveAction      string
	dueDate               *time.Time
	responsiblePersonID   *id.UserID
	responsiblePersonName string

	closedDate         *time.Time
	closureNotes       string
	closedBy           string
	verificationMethod string
	verifiedDate       *time.Time
	verifiedBy         string
	reopenReason       string

	estimatedCost     *float64
	actualCost        *float64
	impactDescription string

	attachments []FindingAttachment

	createdAt time.Time
	updatedAt time.Time
}

// FindingInput describes a new finding.
type FindingInput struct {
	Description string
	Type        FindingType
	Severity    FindingSeverity
	AuditItemID *id.ItemID
	Location    string
	Equipment   string
	Standard    string
	Regulation  string
}

func (in FindingInput) Validate() error {
	if strings.TrimSpace(in.Description) == "" {
		return invariantViolation("finding description cannot be empty")
	}
	if !in.Type.IsValid() {
		return invariantViolation("invalid finding type")
	}
	if !in.Severity.IsValid() {
		return invariantViolation("invalid finding severity")
	}
	return nil
}

// NewFinding validates input and returns an unattached Open finding.
func NewFinding(in FindingInput, number string, now time.Time) (*Finding, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	desc := strings.TrimSpace(in.Description)
	if number == "" {
		return nil, invariantViolation("finding number cannot be empty")
	}
	var itemID *id.ItemID
	if in.AuditItemID != nil {
		v := *in.AuditItemID
		itemID = &v
	}
	f := &Finding{
		auditItemID: itemID,
		number:      number,
		description: desc,
		findingType: in.Type,
		status:      FindingStatusOpen,
		location:    in.Location,
		equipment:   in.Equipment,
		standard:    in.Standard,
		regulation:  in.Regulation,
		createdAt:   now,
		updatedAt:   now,
	}
	f.applySeverity(in.Severity)
	return f, nil
}

func (f *Finding) applySeverity(s FindingSeverity) {
	f.severity = s
	f.riskLevel = s.RiskLevel()
	f.requiresVerification = s.RequiresVerification()
}

func (f *Finding) ID() id.FindingID { return f.id }
func (f *Finding) AuditID() id.AuditID { return f.auditID }
func (f *Finding) Number() string { return f.number }
func (f *Finding) Description() string { return f.description }
func (f *Finding) Type() FindingType { return f.findingType }
func (f *Finding) Severity() FindingSeverity { return f.severity }
func (f *Finding) RiskLevel() RiskLevel { return f.riskLevel }
func (f *Finding) Status() FindingStatus { return f.status }
func (f *Finding) RequiresVerification() bool { return f.requiresVerification }
func (f *Finding) Location() string { return f.location }
func (f *Finding) Equipment() string { return f.equipment }
func (f *Finding) Standard() string { return f.standard }
func (f *Finding) Regulation() string { return f.regulation }
func (f *Finding) RootCause() string { return f.rootCause }
func (f *Finding) ImmediateAction() string { return f.immediateAction }
func (f *Finding) CorrectiveAction() string { return f.correctiveAction }
func (f *Finding) PreventiveAction() string { return f.preventiveAction }
func (f *Finding) DueDate() *time.Time { return copyTime(f.dueDate) }
func (f *Finding) ResponsiblePersonID() *id.UserID { return copyUserID(f.responsiblePersonID) }
func (f *Finding) ResponsiblePersonName() string { return f.responsiblePersonName }
func (f *Finding) ClosedDate() *time.Time { return copyTime(f.closedDate) }
func (f *Finding) ClosureNotes() string { return f.closureNotes }
func (f *Finding) ClosedBy() string { return f.closedBy }
func (f *Finding) VerificationMethod() string { return f.verificationMethod }
func (f *Finding) VerifiedDate() *time.Time { return copyTime(f.verifiedDate) }
func (f *Finding) VerifiedBy() string { return f.verifiedBy }
func (f *Finding) ReopenReason() string { return f.reopenReason }
func (f *Finding) EstimatedCost() *float64 { return copyFloat(f.estimatedCost) }
func (f *Finding) ActualCost() *float64 { return copyFloat(f.actualCost) }
func (f *Finding) ImpactDescription() string { return f.impactDescription }
func (f *Finding) CreatedAt() time.Time { return f.createdAt }
func (f *Finding) UpdatedAt() time.Time { return f.updatedAt }

// AuditItemID returns the linked checklist item, if any.
func (f *Finding) AuditItemID() *id.ItemID {
	if f.auditItemID == nil {
		return nil
	}
	v := *f.auditItemID
	return &v
}

// Attachments returns a copy of the evidence list.
func (f *Finding) Attachments() []FindingAttachment {
	out := make([]FindingAttachment, len(f.attachments))
	copy(out, f.attachments)
	return out
}

func (f *Finding) ensureNotClosed(op string) error {
	if f.status == FindingStatusClosed {
		return illegalTransition(op, "finding", f.status)
	}
	return nil
}

// UpdateDescription replaces the description and type.
func (f *Finding) UpdateDescription(description string, findingType FindingType, now time.Time) error {
	if err := f.ensureNotClosed("update description of"); err != nil {
		return err
	}
	desc := strings.TrimSpace(description)
	if desc == "" {
		return invariantViolation("finding description cannot be empty")
	}
	if !findingType.IsValid() {
		return invariantViolation("invalid finding type")
	}
	f.description = desc
	f.findingType = findingType
	f.updatedAt = now
	return nil
}

// UpdateSeverity re-derives risk level and the verification requirement.
func (f *Finding) UpdateSeverity(severity FindingSeverity, now time.Time) error {
	if err := f.ensureNotClosed("update severity of"); err != nil {
		return err
	}
	if !severity.IsValid() {
		return invariantViolation("invalid finding severity")
	}
	f.applySeverity(severity)
	f.updatedAt = now
	return nil
}

// UpdateContext replaces where and against what the finding was raised.
func (f *Finding) UpdateContext(location, equipment, standard, regulation string, now time.Time) error {
	if err := f.ensureNotClosed("update context of"); err != nil {
		return err
	}
	f.location = location
	f.equipment = equipment
	f.standard = standard
	f.regulation = regulation
	f.updatedAt = now
	return nil
}

func (f *Finding) SetRootCause(text string, now time.Time) error {
	if err := f.ensureNotClosed("set root cause of"); err != nil {
		return err
	}
	f.rootCause = text
	f.updatedAt = now
	return nil
}

func (f *Finding) SetImmediateAction(text string, now time.Time) error {
	if err := f.ensureNotClosed("set immediate action of"); err != nil {
		return err
	}
	f.immediateAction = text
	f.updatedAt = now
	return nil
}

func (f *Finding) SetPreventiveAction(text string, now time.Time) error {
	if err := f.ensureNotClosed("set preventive action of"); err != nil {
		return err
	}
	f.preventiveAction = text
	f.updatedAt = now
	return nil
}

// CorrectiveAction describes planned remediation for a finding.
type CorrectiveAction struct {
	Text                  string
	DueDate               *time.Time
	ResponsiblePersonID   *id.UserID
	ResponsiblePersonName string
}

// SetCorrectiveAction records remediation. An Open finding moves to InProgress.
func (f *Finding) SetCorrectiveAction(action CorrectiveAction, now time.Time) error {
	if err := f.ensureNotClosed("set corrective action of"); err != nil {
		return err
	}
	f.correctiveAction = action.Text
	f.dueDate = copyTime(action.DueDate)
	f.responsiblePersonID = copyUserID(action.ResponsiblePersonID)
	f.responsiblePersonName = action.ResponsiblePersonName
	if f.status == FindingStatusOpen {
		f.status = FindingStatusInProgress
	}
	f.updatedAt = now
	return nil
}

// SetCostInformation records estimated and actual remediation cost and impact.
func (f *Finding) SetCostInformation(estimated, actual *float64, impact string, now time.Time) error {
	if err := f.ensureNotClosed("set cost information of"); err != nil {
		return err
	}
	if (estimated != nil && *estimated < 0) || (actual != nil && *actual < 0) {
		return invariantViolation("cost cannot be negative")
	}
	f.estimatedCost = copyFloat(estimated)
	f.actualCost = copyFloat(actual)
	f.impactDescription = impact
	f.updatedAt = now
	return nil
}

func (f *Finding) MarkAsResolved(now time.Time) error {
	if f.status != FindingStatusInProgress {
		return illegalTransition("resolve", "finding", f.status)
	}
	f.status = FindingStatusResolved
	f.updatedAt = now
	return nil
}

func (f *Finding) MarkAsVerified(verifiedBy, method string, now time.Time) error {
	if f.status != FindingStatusResolved {
		return illegalTransition("verify", "finding", f.status)
	}
	if strings.TrimSpace(verifiedBy) == "" {
		return invariantViolation("verifier is required")
	}
	f.status = FindingStatusVerified
	f.verifiedBy = verifiedBy
	f.verificationMethod = method
	f.verifiedDate = &now
	f.updatedAt = now
	return nil
}

// CanClose mirrors the Close precondition.
func (f *Finding) CanClose() bool {
	if f.requiresVerification {
		return f.status == FindingStatusVerified
	}
	return f.status == FindingStatusVerified || f.status == FindingStatusResolved
}

// Close records closure. Critical and major findings must be verified first.
func (f *Finding) Close(notes, closedBy string, now time.Time) error {
	if !f.CanClose() {
		if f.requiresVerification && f.status == FindingStatusResolved {
			return dErrors.Newf(dErrors.CodeIllegalStateTransition,
				"cannot close finding in status %s: critical/major findings must be verified before closing", f.status)
		}
		return illegalTransition("close", "finding", f.status)
	}
	f.status = FindingStatusClosed
	f.closureNotes = notes
	f.closedBy = closedBy
	f.closedDate = &now
	f.updatedAt = now
	return nil
}

// Reopen returns a Closed finding to work. It is a no-op in any other status.
func (f *Finding) Reopen(reason string, now time.Time) {
	if f.status != FindingStatusClosed {
		return
	}
	f.closedDate = nil
	f.closureNotes = ""
	f.closedBy = ""
	f.verifiedDate = nil
	f.verifiedBy = ""
	f.verificationMethod = ""
	f.reopenReason = reason
	if strings.TrimSpace(f.correctiveAction) == "" {
		f.status = FindingStatusOpen
	} else {
		f.status = FindingStatusInProgress
	}
	f.updatedAt = now
}

// IsOverdue reports a due date in the past on a finding that is not Closed.
func (f *Finding) IsOverdue(now time.Time) bool {
	return f.dueDate != nil && f.dueDate.Before(now) && f.status != FindingStatusClosed
}

// DaysOverdue is the number of whole days past the due date, 0 when not overdue.
func (f *Finding) DaysOverdue(now time.Time) int {
	if !f.IsOverdue(now) {
		return 0
	}
	return int(now.Sub(*f.dueDate).Hours() / hoursPerDay)
}

// FindingAttachment is an evidence file reference owned by a finding.
type FindingAttachment = Attachment

// AttachmentInput describes an uploaded evidence file.
type AttachmentInput struct {
	FileName    string
	ContentType string
	Size        int64
	StoragePath string
	Description string
	UploadedBy  string
}

func newAttachmentRef(in AttachmentInput) (id.AttachmentID, error) {
	if strings.TrimSpace(in.FileName) == "" {
		return id.AttachmentID{}, invariantViolation("attachment file name cannot be empty")
	}
	if in.Size < 0 {
		return id.AttachmentID{}, invariantViolation("attachment size cannot be negative")
	}
	return id.NewAttachmentID(), nil
}

func (f *Finding) AddAttachment(in AttachmentInput, now time.Time) (FindingAttachment, error) {
	if err := f.ensureNotClosed("add attachment to"); err != nil {
		return FindingAttachment{}, err
	}
	attID, err := newAttachmentRef(in)
	if err != nil {
		return FindingAttachment{}, err
	}
	att := FindingAttachment{
		ID:          attID,
		FileName:    in.FileName,
		ContentType: in.ContentType,
		Size:        in.Size,
		StoragePath: in.StoragePath,
		Description: in.Description,
		UploadedBy:  in.UploadedBy,
		UploadedAt:  now,
	}
	f.attachments = append(f.attachments, att)
	f.updatedAt = now
	return att, nil
}

// DescribeAttachment replaces an attachment's description.
func (f *Finding) DescribeAttachment(attachmentID id.AttachmentID, description string, now time.Time) error {
	if err := f.ensureNotClosed("describe attachment of"); err != nil {
		return err
	}
	for i := range f.attachments {
		if f.attachments[i].ID == attachmentID {
			f.attachments[i].Description = description
			f.updatedAt = now
			return nil
		}
	}
	return dErrors.New(dErrors.CodeNotFound, "finding attachment not found")
}

func (f *Finding) RemoveAttachment(attachmentID id.AttachmentID, now time.Time) error {
	if err := f.ensureNotClosed("remove attachment from"); err != nil {
		return err
	}
	for i := range f.attachments {
		if f.attachments[i].ID == attachmentID {
			f.attachments = append(f.attachments[:i:i], f.attachments[i+1:]...)
			f.updatedAt = now
			return nil
		}
	}
	return dErrors.New(dErrors.CodeNotFound, "finding attachment not found")
}
