// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Storage collaborator errors. These surface unchanged to the boundary;
// no retries happen internally.
var (
	// ErrAggregateConflict is returned when a concurrent write moved the
	// aggregate version between load and save.
	ErrAggregateConflict = errors.New("aggregate modified concurrently")

	// ErrStorageUnavailable is returned when the persistence collaborator
	// fails or its timeout/cancellation fires.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// StorageErrorCode defines error codes for storage errors.
type StorageErrorCode string

const (
	ErrCodeAggregateConflict  StorageErrorCode = "STOR-010001"
	ErrCodeStorageUnavailable StorageErrorCode = "STOR-010002"
)
