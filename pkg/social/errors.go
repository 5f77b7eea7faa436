package social

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrCycleDetected is returned when an ancestor walk discovers a cycle
	// in the comment parent chain. This indicates corrupted stored data and
	// should be treated as a failure by the caller.
	ErrCycleDetected = errors.New("cycle detected in comment parent chain")
)

// StorageError wraps an error from the underlying adjacency store. Traversals
// never retry; the error is surfaced unchanged for the caller's retry policy.
type StorageError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error in %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}
