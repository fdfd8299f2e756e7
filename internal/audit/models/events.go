package models

import (
	"time"

	id "hsse/pkg/domain"
)

// EventType names a domain event recorded by the audit aggregate.
type EventType string

const (
	EventAuditCreated            EventType = "audit.created"
	EventAuditUpdated            EventType = "audit.updated"
	EventAuditScheduled          EventType = "audit.scheduled"
	EventAuditStarted            EventType = "audit.started"
	EventAuditCompleted          EventType = "audit.completed"
	EventAuditCancelled          EventType = "audit.cancelled"
	EventAuditSubmittedForReview EventType = "audit.submitted_for_review"
	EventAuditOverdue            EventType = "audit.overdue"
	EventAuditArchived           EventType = "audit.archived"
	EventAuditReopened           EventType = "audit.reopened"
	EventFindingAdded            EventType = "audit.finding_added"
)

// Event is an immutable record of something that happened to an audit. It
// carries enough identifying data for a notifier to act without re-reading
// the aggregate.
type Event struct {
	Type            EventType       `json:"type"`
	AuditID         id.AuditID      `json:"audit_id"`
	AuditNumber     string          `json:"audit_number"`
	Title           string          `json:"title"`
	AuditType       AuditType       `json:"audit_type"`
	Priority        AuditPriority   `json:"priority"`
	Status          AuditStatus     `json:"status"`
	RiskLevel       RiskLevel       `json:"risk_level"`
	AuditorID       id.UserID       `json:"auditor_id"`
	OccurredAt      time.Time       `json:"occurred_at"`
	ScheduledDate   *time.Time      `json:"scheduled_date,omitempty"`
	Reason          string          `json:"reason,omitempty"`
	OverallScore    *ScoreBand      `json:"overall_score,omitempty"`
	ScorePercentage *float64        `json:"score_percentage,omitempty"`
	FindingID       id.FindingID    `json:"finding_id,omitempty"`
	FindingNumber   string          `json:"finding_number,omitempty"`
	FindingSeverity FindingSeverity `json:"finding_severity,omitempty"`
}

// record appends an event snapshotting the aggregate's current identity.
func (a *Audit) record(t EventType, now time.Time, extra func(e *Event)) {
	scheduled := a.scheduledDate
	e := Event{
		Type:          t,
		AuditID:       a.id,
		AuditNumber:   a.number,
		Title:         a.title,
		AuditType:     a.auditType,
		Priority:      a.priority,
		Status:        a.status,
		RiskLevel:     a.riskLevel,
		AuditorID:     a.auditorID,
		OccurredAt:    now,
		ScheduledDate: &scheduled,
	}
	if extra != nil {
		extra(&e)
	}
	a.events = append(a.events, e)
}

// PendingEvents returns a copy of the events recorded since the last drain.
func (a *Audit) PendingEvents() []Event {
	out := make([]Event, len(a.events))
	copy(out, a.events)
	return out
}

// PullEvents drains the recorded events. Hosts call it after a successful
// persist, inside the same transaction boundary.
func (a *Audit) PullEvents() []Event {
	out := a.events
	a.events = nil
	return out
}
