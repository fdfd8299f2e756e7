package models

import (
	dErrors "hsse/pkg/domain-errors"
)

// AuditType classifies the subject of an audit. Each type owns the prefix
// used in human-readable audit numbers.
type AuditType string

const (
	AuditTypeSafety        AuditType = "safety"
	AuditTypeEnvironmental AuditType = "environmental"
	AuditTypeEquipment     AuditType = "equipment"
	AuditTypeCompliance    AuditType = "compliance"
	AuditTypeFire          AuditType = "fire"
	AuditTypeChemical      AuditType = "chemical"
	AuditTypeErgonomic     AuditType = "ergonomic"
	AuditTypeEmergency     AuditType = "emergency"
	AuditTypeManagement    AuditType = "management"
	AuditTypeProcess       AuditType = "process"
)

const defaultNumberPrefix = "AU"

var auditTypePrefixes = map[AuditType]string{
	AuditTypeSafety:        "SA",
	AuditTypeEnvironmental: "EA",
	AuditTypeEquipment:     "EQ",
	AuditTypeCompliance:    "CA",
	AuditTypeFire:          "FA",
	AuditTypeChemical:      "CH",
	AuditTypeErgonomic:     "ER",
	AuditTypeEmergency:     "EM",
	AuditTypeManagement:    "MA",
	AuditTypeProcess:       "PA",
}

func (t AuditType) IsValid() bool {
	_, ok := auditTypePrefixes[t]
	return ok
}

// NumberPrefix returns the audit number prefix, AU for unknown types.
func (t AuditType) NumberPrefix() string {
	if p, ok := auditTypePrefixes[t]; ok {
		return p
	}
	return defaultNumberPrefix
}

type AuditCategory string

const (
	AuditCategoryRoutine       AuditCategory = "routine"
	AuditCategoryPlanned       AuditCategory = "planned"
	AuditCategoryUnplanned     AuditCategory = "unplanned"
	AuditCategoryRegulatory    AuditCategory = "regulatory"
	AuditCategoryInternal      AuditCategory = "internal"
	AuditCategoryExternal      AuditCategory = "external"
	AuditCategoryCertification AuditCategory = "certification"
	AuditCategoryFollowUp      AuditCategory = "follow_up"
)

func (c AuditCategory) IsValid() bool {
	switch c {
	case AuditCategoryRoutine, AuditCategoryPlanned, AuditCategoryUnplanned, AuditCategoryRegulatory,
		AuditCategoryInternal, AuditCategoryExternal, AuditCategoryCertification, AuditCategoryFollowUp:
		return true
	}
	return false
}

type AuditPriority string

const (
	AuditPriorityLow      AuditPriority = "low"
	AuditPriorityMedium   AuditPriority = "medium"
	AuditPriorityHigh     AuditPriority = "high"
	AuditPriorityCritical AuditPriority = "critical"
)

func (p AuditPriority) IsValid() bool {
	switch p {
	case AuditPriorityLow, AuditPriorityMedium, AuditPriorityHigh, AuditPriorityCritical:
		return true
	}
	return false
}

// AuditStatus is a node in the audit lifecycle graph.
type AuditStatus string

const (
	AuditStatusDraft       AuditStatus = "draft"
	AuditStatusScheduled   AuditStatus = "scheduled"
	AuditStatusInProgress  AuditStatus = "in_progress"
	AuditStatusCompleted   AuditStatus = "completed"
	AuditStatusCancelled   AuditStatus = "cancelled"
	AuditStatusArchived    AuditStatus = "archived"
	AuditStatusUnderReview AuditStatus = "under_review"
	AuditStatusOverdue     AuditStatus = "overdue"
)

// auditTransitions is the legal audit status graph. Every status change goes
// through Audit.transition, which rejects edges missing here.
// Overdue is advisory: it keeps the exits Scheduled has, minus rescheduling.
var auditTransitions = map[AuditStatus][]AuditStatus{
	AuditStatusDraft:       {AuditStatusScheduled, AuditStatusCancelled},
	AuditStatusScheduled:   {AuditStatusInProgress, AuditStatusOverdue, AuditStatusCancelled},
	AuditStatusOverdue:     {AuditStatusInProgress, AuditStatusCancelled},
	AuditStatusInProgress:  {AuditStatusCompleted, AuditStatusCancelled, AuditStatusUnderReview},
	AuditStatusUnderReview: {AuditStatusInProgress, AuditStatusCancelled},
	AuditStatusCompleted:   {AuditStatusArchived},
	AuditStatusCancelled:   {AuditStatusArchived, AuditStatusCancelled},
	AuditStatusArchived:    nil,
}

func (s AuditStatus) IsValid() bool {
	_, ok := auditTransitions[s]
	return ok
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s AuditStatus) CanTransitionTo(next AuditStatus) bool {
	for _, candidate := range auditTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// IsLocked reports whether the audit's child collections are frozen.
func (s AuditStatus) IsLocked() bool {
	return s == AuditStatusCompleted || s == AuditStatusArchived
}

func (s AuditStatus) String() string { return string(s) }

// RiskLevel is the audit-wide classification derived from finding severities.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

var riskOrder = map[RiskLevel]int{
	RiskLevelLow:      1,
	RiskLevelMedium:   2,
	RiskLevelHigh:     3,
	RiskLevelCritical: 4,
}

func (r RiskLevel) IsValid() bool {
	_, ok := riskOrder[r]
	return ok
}

// AtLeast reports whether r is at or above other. Unknown levels rank lowest.
func (r RiskLevel) AtLeast(other RiskLevel) bool {
	return riskOrder[r] >= riskOrder[other]
}

// FindingSeverity is totally ordered: Minor < Moderate < Major < Critical.
type FindingSeverity string

const (
	SeverityMinor    FindingSeverity = "minor"
	SeverityModerate FindingSeverity = "moderate"
	SeverityMajor    FindingSeverity = "major"
	SeverityCritical FindingSeverity = "critical"
)

var severityOrder = map[FindingSeverity]int{
	SeverityMinor:    1,
	SeverityModerate: 2,
	SeverityMajor:    3,
	SeverityCritical: 4,
}

func (s FindingSeverity) IsValid() bool {
	_, ok := severityOrder[s]
	return ok
}

// Compare returns -1, 0 or 1 as s ranks below, equal to or above other.
func (s FindingSeverity) Compare(other FindingSeverity) int {
	a, b := severityOrder[s], severityOrder[other]
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (s FindingSeverity) AtLeast(other FindingSeverity) bool {
	return s.Compare(other) >= 0
}

// RiskLevel maps a single finding's severity to its risk level.
func (s FindingSeverity) RiskLevel() RiskLevel {
	switch s {
	case SeverityCritical:
		return RiskLevelCritical
	case SeverityMajor:
		return RiskLevelHigh
	case SeverityModerate:
		return RiskLevelMedium
	}
	return RiskLevelLow
}

// RequiresVerification is true for Major and Critical findings.
func (s FindingSeverity) RequiresVerification() bool {
	return s.AtLeast(SeverityMajor)
}

type ScoreBand string

const (
	ScoreExcellent        ScoreBand = "excellent"
	ScoreGood             ScoreBand = "good"
	ScoreSatisfactory     ScoreBand = "satisfactory"
	ScoreNeedsImprovement ScoreBand = "needs_improvement"
	ScoreUnsatisfactory   ScoreBand = "unsatisfactory"
)

func (b ScoreBand) IsValid() bool {
	switch b {
	case ScoreExcellent, ScoreGood, ScoreSatisfactory, ScoreNeedsImprovement, ScoreUnsatisfactory:
		return true
	}
	return false
}

type ItemType string

const (
	ItemTypeYesNo          ItemType = "yes_no"
	ItemTypeText           ItemType = "text"
	ItemTypeNumber         ItemType = "number"
	ItemTypeMultipleChoice ItemType = "multiple_choice"
	ItemTypeChecklist      ItemType = "checklist"
	ItemTypePhoto          ItemType = "photo"
	ItemTypeMeasurement    ItemType = "measurement"
	ItemTypeRating         ItemType = "rating"
)

func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeYesNo, ItemTypeText, ItemTypeNumber, ItemTypeMultipleChoice,
		ItemTypeChecklist, ItemTypePhoto, ItemTypeMeasurement, ItemTypeRating:
		return true
	}
	return false
}

type ItemStatus string

const (
	ItemStatusNotStarted       ItemStatus = "not_started"
	ItemStatusInProgress       ItemStatus = "in_progress"
	ItemStatusCompleted        ItemStatus = "completed"
	ItemStatusNonCompliant     ItemStatus = "non_compliant"
	ItemStatusNotApplicable    ItemStatus = "not_applicable"
	ItemStatusRequiresFollowUp ItemStatus = "requires_follow_up"
)

func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusNotStarted, ItemStatusInProgress, ItemStatusCompleted,
		ItemStatusNonCompliant, ItemStatusNotApplicable, ItemStatusRequiresFollowUp:
		return true
	}
	return false
}

// IsAssessed reports whether the item carries an assessment result.
func (s ItemStatus) IsAssessed() bool {
	return s == ItemStatusCompleted || s == ItemStatusNonCompliant || s == ItemStatusRequiresFollowUp
}

func (s ItemStatus) String() string { return string(s) }

type FindingType string

const (
	FindingTypeNonConformance         FindingType = "non_conformance"
	FindingTypeObservation            FindingType = "observation"
	FindingTypeImprovementOpportunity FindingType = "improvement_opportunity"
	FindingTypePositiveFinding        FindingType = "positive_finding"
	FindingTypeCriticalNonConformance FindingType = "critical_non_conformance"
)

func (t FindingType) IsValid() bool {
	switch t {
	case FindingTypeNonConformance, FindingTypeObservation, FindingTypeImprovementOpportunity,
		FindingTypePositiveFinding, FindingTypeCriticalNonConformance:
		return true
	}
	return false
}

type FindingStatus string

const (
	FindingStatusOpen       FindingStatus = "open"
	FindingStatusInProgress FindingStatus = "in_progress"
	FindingStatusResolved   FindingStatus = "resolved"
	FindingStatusVerified   FindingStatus = "verified"
	FindingStatusClosed     FindingStatus = "closed"
)

func (s FindingStatus) IsValid() bool {
	switch s {
	case FindingStatusOpen, FindingStatusInProgress, FindingStatusResolved,
		FindingStatusVerified, FindingStatusClosed:
		return true
	}
	return false
}

func (s FindingStatus) String() string { return string(s) }

type validatable interface {
	~string
	IsValid() bool
}

// parseEnum validates external input against a closed enumeration.
func parseEnum[T validatable](raw, field string) (T, error) {
	v := T(raw)
	if !v.IsValid() {
		var zero T
		return zero, dErrors.Newf(dErrors.CodeInvalidInput, "invalid %s: %q", field, raw)
	}
	return v, nil
}

func ParseAuditType(raw string) (AuditType, error) { return parseEnum[AuditType](raw, "audit type") }
func ParseAuditCategory(raw string) (AuditCategory, error) {
	return parseEnum[AuditCategory](raw, "audit category")
}
func ParseAuditPriority(raw string) (AuditPriority, error) {
	return parseEnum[AuditPriority](raw, "audit priority")
}
func ParseAuditStatus(raw string) (AuditStatus, error) {
	return parseEnum[AuditStatus](raw, "audit status")
}
func ParseItemType(raw string) (ItemType, error) { return parseEnum[ItemType](raw, "item type") }
func ParseFindingType(raw string) (FindingType, error) {
	return parseEnum[FindingType](raw, "finding type")
}
func ParseFindingSeverity(raw string) (FindingSeverity, error) {
	return parseEnum[FindingSeverity](raw, "finding severity")
}
