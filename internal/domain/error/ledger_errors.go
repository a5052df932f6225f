// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Ledger domain errors.
var (
	// ErrInvalidDate is returned when an entry date cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidMonthKey is returned when a month key is not a valid MMYYYY string.
	ErrInvalidMonthKey = errors.New("invalid month key")

	// ErrMissingEntryFields is returned when required entry fields are absent.
	ErrMissingEntryFields = errors.New("missing required entry fields")

	// ErrBucketNotFound is returned when no bucket exists for a month key.
	ErrBucketNotFound = errors.New("month bucket not found")

	// ErrEntryNotFound is returned when an entry id is absent within a bucket.
	ErrEntryNotFound = errors.New("entry not found")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LED-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDate        LedgerErrorCode = "LED-010001"
	ErrCodeInvalidMonthKey    LedgerErrorCode = "LED-010002"
	ErrCodeMissingEntryFields LedgerErrorCode = "LED-010003"

	// Lookup errors (02XXXX)
	ErrCodeBucketNotFound LedgerErrorCode = "LED-020001"
	ErrCodeEntryNotFound  LedgerErrorCode = "LED-020002"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
