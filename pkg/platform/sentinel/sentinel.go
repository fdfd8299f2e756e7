package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores, locks and publishers return
// these (optionally wrapped) so services can translate them into domain errors.
//
// These describe resources, not input:
// - ErrNotFound: aggregate does not exist in the store
// - ErrConflict: optimistic version check failed or a unique key already exists
// - ErrLocked: another command holds the aggregate lock
// - ErrUnavailable: backing service temporarily unavailable
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrLocked      = errors.New("locked")
	ErrUnavailable = errors.New("unavailable")
)
