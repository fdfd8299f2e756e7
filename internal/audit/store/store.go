// Package store persists audit aggregates as a single JSON document per audit
// with an optimistic version counter.
package store

import (
	"time"

	"hsse/internal/audit/models"
)

// ListFilter narrows List results. Zero values match everything.
type ListFilter struct {
	Status models.AuditStatus
	Type   models.AuditType
	Limit  int
}

const defaultListLimit = 100

func (f ListFilter) limit() int {
	if f.Limit <= 0 || f.Limit > 1000 {
		return defaultListLimit
	}
	return f.Limit
}

func (f ListFilter) matches(rec models.AuditRecord) bool {
	if f.Status != "" && rec.Status != f.Status {
		return false
	}
	if f.Type != "" && rec.Type != f.Type {
		return false
	}
	return true
}

func dueForOverdue(rec models.AuditRecord, now time.Time) bool {
	return rec.Status == models.AuditStatusScheduled && rec.ScheduledDate.Before(now)
}
