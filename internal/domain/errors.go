package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by a DocumentStore when no document matches the requested identifier.
	ErrNotFound = errors.New("document not found")
	// ErrStoreUnavailable is returned when no document store was configured at startup.
	ErrStoreUnavailable = errors.New("database not available")
)

// StorageError reports a failed store operation (unreachable store, rejected read or write).
type StorageError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StorageError) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NewStorageError wraps err as a StorageError. It returns nil when err is nil.
func NewStorageError(op, collection string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Collection: collection, Err: err}
}
