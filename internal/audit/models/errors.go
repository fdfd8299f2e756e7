package models

import (
	dErrors "hsse/pkg/domain-errors"
)

// illegalTransition reports an operation invoked from a state that does not permit it.
func illegalTransition(op, entity string, status interface{ String() string }) error {
	return dErrors.Newf(dErrors.CodeIllegalStateTransition, "cannot %s %s in status %s", op, entity, status.String())
}

func invariantViolation(msg string) error {
	return dErrors.New(dErrors.CodeInvariantViolation, msg)
}

// IsIllegalStateTransition reports whether err was caused by an illegal lifecycle transition.
func IsIllegalStateTransition(err error) bool {
	return dErrors.HasCode(err, dErrors.CodeIllegalStateTransition)
}

// IsInvariantViolation reports whether err was caused by mutating a locked aggregate
// or by input that breaks an entity invariant.
func IsInvariantViolation(err error) bool {
	return dErrors.HasCode(err, dErrors.CodeInvariantViolation)
}
