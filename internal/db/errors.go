// ABOUTME: Error types returned by the storage layer.
// ABOUTME: StorageError wraps any failure at the database boundary.

package db

import (
	"errors"
	"fmt"
)

var (
	ErrNoteNotFound     = errors.New("note not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// StorageError reports a failed database operation. Op names the store
// operation, Err is the underlying driver or database/sql error.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsStorageError reports whether err or anything it wraps is a *StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
