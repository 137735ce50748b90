package usecase

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError: an identifier did not resolve to a stored document.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// InvalidStatusError: a status outside the enumerated set was given.
// The lead is never mutated in that case.
type InvalidStatusError struct {
	Status string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid status value %q", e.Status)
}

// AlreadyAssignedError: the lead already belongs to that KAM.
type AlreadyAssignedError struct {
	LeadID     string
	AssignedTo string
}

func (e *AlreadyAssignedError) Error() string {
	return fmt.Sprintf("lead %s is already assigned to %s", e.LeadID, e.AssignedTo)
}

// ErrVersionConflict: the guarded write lost a race; the caller saw a
// stale version of the lead and should retry.
var ErrVersionConflict = errors.New("lead was modified concurrently")

// StoreError wraps an unclassified persistence failure.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates every failed field so the caller gets
// one response, not the first failure.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, ve := range e {
		parts[i] = ve.Error()
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func IsValidation(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}
