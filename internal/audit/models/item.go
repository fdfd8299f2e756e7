package models

import (
	"strings"
	"time"

	id "hsse/pkg/domain"
)

// Item is one checklist question evaluated during an audit.
//
// Invariants:
//   - Status moves NotStarted -> InProgress -> {Completed, NonCompliant};
//     NonCompliant -> RequiresFollowUp once corrective action text is attached;
//     any status -> NotApplicable; Reset returns to NotStarted
//   - Corrective action can only be attached while NonCompliant
//   - A failed operation leaves the item unchanged
type Item struct {
	id             id.ItemID
	auditID        id.AuditID
	description    string
	itemType       ItemType
	required       bool
	sortOrder      int
	category       string
	expectedResult string
	maxPoints      *int

	status       ItemStatus
	actualResult string
	isCompliant  *bool
	actualPoints *int
	assessedBy   string
	assessedAt   *time.Time
	comments     string
	evidence     string

	correctiveAction        string
	correctiveActionDueDate *time.Time
	responsiblePersonID     *id.UserID

	createdAt time.Time
	updatedAt time.Time
}

// ItemInput describes a new checklist item.
type ItemInput struct {
	Description    string
	Type           ItemType
	Required       bool
	SortOrder      int
	Category       string
	ExpectedResult string
	MaxPoints      *int
}

func (in ItemInput) Validate() error {
	if strings.TrimSpace(in.Description) == "" {
		return invariantViolation("item description cannot be empty")
	}
	if !in.Type.IsValid() {
		return invariantViolation("invalid item type")
	}
	if in.SortOrder < 0 {
		return invariantViolation("item sort order cannot be negative")
	}
	if in.MaxPoints != nil && *in.MaxPoints < 0 {
		return invariantViolation("item max points cannot be negative")
	}
	return nil
}

// NewItem validates input and returns an unattached item. The owning audit
// assigns the id when the item is added.
func NewItem(in ItemInput, now time.Time) (*Item, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	desc := strings.TrimSpace(in.Description)
	return &Item{
		description:    desc,
		itemType:       in.Type,
		required:       in.Required,
		sortOrder:      in.SortOrder,
		category:       strings.TrimSpace(in.Category),
		expectedResult: in.ExpectedResult,
		maxPoints:      copyInt(in.MaxPoints),
		status:         ItemStatusNotStarted,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func (i *Item) ID() id.ItemID { return i.id }
func (i *Item) AuditID() id.AuditID { return i.auditID }
func (i *Item) Description() string { return i.description }
func (i *Item) Type() ItemType { return i.itemType }
func (i *Item) Required() bool { return i.required }
func (i *Item) SortOrder() int { return i.sortOrder }
func (i *Item) Category() string { return i.category }
func (i *Item) ExpectedResult() string { return i.expectedResult }
func (i *Item) MaxPoints() *int { return copyInt(i.maxPoints) }
func (i *Item) Status() ItemStatus { return i.status }
func (i *Item) ActualResult() string { return i.actualResult }
func (i *Item) IsCompliant() *bool { return copyBool(i.isCompliant) }
func (i *Item) ActualPoints() *int { return copyInt(i.actualPoints) }
func (i *Item) AssessedBy() string { return i.assessedBy }
func (i *Item) AssessedAt() *time.Time { return copyTime(i.assessedAt) }
func (i *Item) Comments() string { return i.comments }
func (i *Item) Evidence() string { return i.evidence }
func (i *Item) CorrectiveAction() string { return i.correctiveAction }
func (i *Item) CorrectiveActionDue() *time.Time { return copyTime(i.correctiveActionDueDate) }
func (i *Item) ResponsiblePersonID() *id.UserID { return copyUserID(i.responsiblePersonID) }
func (i *Item) CreatedAt() time.Time { return i.createdAt }
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }

// Number is derived from the owning audit id and the sort order.
func (i *Item) Number() string {
	return ItemNumber(i.auditID, i.sortOrder)
}

// StartAssessment moves a not-started item into progress.
func (i *Item) StartAssessment(now time.Time) error {
	if i.status != ItemStatusNotStarted {
		return illegalTransition("start assessment of", "item", i.status)
	}
	i.status = ItemStatusInProgress
	i.updatedAt = now
	return nil
}

// Assessment is the outcome recorded by CompleteAssessment.
type Assessment struct {
	ActualResult string
	IsCompliant  bool
	AssessedBy   string
	ActualPoints *int
	Comments     string
	Evidence     string
}

// CompleteAssessment records the result and classifies the item as Completed
// or NonCompliant.
func (i *Item) CompleteAssessment(a Assessment, now time.Time) error {
	if i.status != ItemStatusNotStarted && i.status != ItemStatusInProgress {
		return illegalTransition("complete assessment of", "item", i.status)
	}
	if strings.TrimSpace(a.AssessedBy) == "" {
		return invariantViolation("assessor is required")
	}
	if a.ActualPoints != nil && *a.ActualPoints < 0 {
		return invariantViolation("actual points cannot be negative")
	}

	compliant := a.IsCompliant
	i.actualResult = a.ActualResult
	i.isCompliant = &compliant
	i.actualPoints = copyInt(a.ActualPoints)
	i.assessedBy = a.AssessedBy
	i.assessedAt = &now
	i.comments = a.Comments
	i.evidence = a.Evidence
	if compliant {
		i.status = ItemStatusCompleted
	} else {
		i.status = ItemStatusNonCompliant
	}
	i.updatedAt = now
	return nil
}

// MarkAsNotApplicable excludes the item from assessment from any status.
func (i *Item) MarkAsNotApplicable(reason, assessedBy string, now time.Time) {
	i.status = ItemStatusNotApplicable
	i.isCompliant = nil
	i.actualResult = "Not Applicable: " + reason
	i.assessedBy = assessedBy
	i.assessedAt = &now
	i.updatedAt = now
}

// AddCorrectiveAction attaches remediation to a non-compliant item. Non-empty
// text moves the item to RequiresFollowUp.
func (i *Item) AddCorrectiveAction(text string, dueDate *time.Time, responsible *id.UserID, now time.Time) error {
	if i.status != ItemStatusNonCompliant {
		return illegalTransition("add corrective action to", "item", i.status)
	}
	i.correctiveAction = text
	i.correctiveActionDueDate = copyTime(dueDate)
	i.responsiblePersonID = copyUserID(responsible)
	if strings.TrimSpace(text) != "" {
		i.status = ItemStatusRequiresFollowUp
	}
	i.updatedAt = now
	return nil
}

// UpdateScore replaces the awarded points of an assessed item.
func (i *Item) UpdateScore(actualPoints int, now time.Time) error {
	if !i.status.IsAssessed() {
		return illegalTransition("update score of", "item", i.status)
	}
	if actualPoints < 0 {
		return invariantViolation("actual points cannot be negative")
	}
	if i.maxPoints != nil && actualPoints > *i.maxPoints {
		return invariantViolation("actual points cannot exceed max points")
	}
	i.actualPoints = &actualPoints
	i.updatedAt = now
	return nil
}

// Reset returns the item to NotStarted and clears every assessment and
// corrective action field.
func (i *Item) Reset(now time.Time) {
	i.status = ItemStatusNotStarted
	i.actualResult = ""
	i.isCompliant = nil
	i.actualPoints = nil
	i.assessedBy = ""
	i.assessedAt = nil
	i.comments = ""
	i.evidence = ""
	i.correctiveAction = ""
	i.correctiveActionDueDate = nil
	i.responsiblePersonID = nil
	i.updatedAt = now
}

// ScorePercentage is actual/max*100 rounded to two decimals, or nil when
// either side is missing or max is zero.
func (i *Item) ScorePercentage() *float64 {
	if i.actualPoints == nil || i.maxPoints == nil || *i.maxPoints <= 0 {
		return nil
	}
	pct := round2(float64(*i.actualPoints) / float64(*i.maxPoints) * 100)
	return &pct
}

// IsOverdue reports a corrective action due date in the past on an item that
// is not Completed.
func (i *Item) IsOverdue(now time.Time) bool {
	return i.correctiveActionDueDate != nil &&
		i.correctiveActionDueDate.Before(now) &&
		i.status != ItemStatusCompleted
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyBool(v *bool) *bool {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyTime(v *time.Time) *time.Time {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyUserID(v *id.UserID) *id.UserID {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
