package error

import "errors"

// Runtime setting domain errors.
var (
	// ErrTimeoutOutOfRange is returned when an administrator submits a timeout outside the allowed range.
	ErrTimeoutOutOfRange = errors.New("timeout out of range")
)

// SettingErrorCode defines error codes for runtime setting errors.
type SettingErrorCode string

const (
	ErrCodeTimeoutOutOfRange SettingErrorCode = "SET-010001"
	ErrCodeInvalidSetting    SettingErrorCode = "SET-010002"
)

// SettingError represents a runtime setting error with code and message.
type SettingError struct {
	Code    SettingErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettingError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettingError) Unwrap() error {
	return e.Err
}

// NewSettingError creates a new SettingError with the given code and message.
func NewSettingError(code SettingErrorCode, message string, err error) *SettingError {
	return &SettingError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ErrSettingNotFound is returned when a runtime setting has never been stored.
var ErrSettingNotFound = errors.New("setting not found")
