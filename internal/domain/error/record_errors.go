// Package error defines domain-specific errors for the levy records application.
package error

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Record domain errors.
var (
	// ErrRecordNotFound is returned when a record does not exist or is not owned by the caller.
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidPayload is returned when a submitted record payload fails validation.
	ErrInvalidPayload = errors.New("invalid record payload")

	// ErrDuplicateYear is returned when another record of the same user already uses the year label.
	ErrDuplicateYear = errors.New("a record for this year already exists")

	// ErrMutationTimeout is returned when a mutation transaction exceeds the configured timeout.
	ErrMutationTimeout = errors.New("record mutation timed out")

	// ErrStorageFailure is returned when the store fails during a mutation.
	ErrStorageFailure = errors.New("record storage failure")
)

// RecordErrorCode defines error codes for record errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecordErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPayload RecordErrorCode = "REC-010001"
	ErrCodeRecordNotFound RecordErrorCode = "REC-010002"

	// Conflict errors (02XXXX)
	ErrCodeDuplicateYear RecordErrorCode = "REC-020001"

	// Storage errors (03XXXX)
	ErrCodeStorageFailure  RecordErrorCode = "REC-030001"
	ErrCodeMutationTimeout RecordErrorCode = "REC-030002"
)

// RecordError represents a record error with code and message.
type RecordError struct {
	Code    RecordErrorCode
	Message string
	Details []string
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError with the given code and message.
func NewRecordError(code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewValidationError creates a payload validation error carrying per-field details.
func NewValidationError(details []string) *RecordError {
	return &RecordError{
		Code:    ErrCodeInvalidPayload,
		Message: "record payload is invalid",
		Details: details,
		Err:     ErrInvalidPayload,
	}
}

// DuplicateYearConflict is the expected outcome of writing a year label that another
// record of the same user already holds. It is not a fault.
type DuplicateYearConflict struct {
	YearLabel        string
	ExistingRecordID uuid.UUID
}

// Error implements the error interface.
func (e *DuplicateYearConflict) Error() string {
	return fmt.Sprintf("year %q already recorded by %s", e.YearLabel, e.ExistingRecordID)
}

// Unwrap lets errors.Is match ErrDuplicateYear.
func (e *DuplicateYearConflict) Unwrap() error {
	return ErrDuplicateYear
}

// AsDuplicateYear extracts a DuplicateYearConflict from err.
func AsDuplicateYear(err error) (*DuplicateYearConflict, bool) {
	var conflict *DuplicateYearConflict
	if errors.As(err, &conflict) {
		return conflict, true
	}
	return nil, false
}
