package services

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the workflow engines. Handlers map these
// to HTTP statuses; none of them is fatal to the process.
var (
	// ErrInvalidCredentials covers both unknown username and wrong
	// password so responses cannot be used for username enumeration.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrTokenMismatch means the submitted digital token does not
	// match the user's stored token. Retryable.
	ErrTokenMismatch = errors.New("digital token does not match our records")

	// ErrPolicyNotEligible means the referenced policy is missing, not
	// owned by the caller, or not active.
	ErrPolicyNotEligible = errors.New("no active policy eligible for this claim")

	// ErrNotWithdrawable means the cooling-off window has closed or
	// the policy already left the applied state.
	ErrNotWithdrawable = errors.New("policy can no longer be withdrawn")
)

// ValidationError reports malformed or missing input. The message is
// user-correctable and surfaced verbatim.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a field-scoped validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ConflictError reports a uniqueness violation on the named field.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already registered", e.Field)
}

// StorageError wraps a document persistence failure. The enclosing
// claim submission is aborted; the caller may retry by resubmitting.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("document storage failed: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
