package store

import (
	"errors"
	"fmt"
)

// Common store error causes
var (
	ErrInvalidRecord    = errors.New("invalid submission record")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// StoreError wraps a failed store call with the operation and record context
type StoreError struct {
	Op  string // operation that failed ("Put", "Get", "ScanAll")
	Key string // record identifier involved, if any
	Err error  // underlying cause
}

func (e *StoreError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("store %s failed for submission '%s': %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError
func NewStoreError(op, key string, err error) *StoreError {
	return &StoreError{
		Op:  op,
		Key: key,
		Err: err,
	}
}

// IsStoreError checks if an error originated in a RecordStore call
func IsStoreError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}

// Cause returns the underlying error text for a store failure. Responses
// surface this verbatim in the details field for diagnostics.
func Cause(err error) string {
	var storeErr *StoreError
	if errors.As(err, &storeErr) && storeErr.Err != nil {
		return storeErr.Err.Error()
	}
	return err.Error()
}
