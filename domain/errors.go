package domain

import (
	"errors"
	"fmt"
)

// NotFoundError means a referenced id does not exist (or was deleted).
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
}

// ValidationError covers missing/blank required fields, out-of-range values
// and role mismatches. Checked before any write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// DuplicateError is a uniqueness violation, either pre-checked or translated
// from the storage layer's unique index.
type DuplicateError struct {
	Entity string
	Detail string
}

func (e *DuplicateError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s already exists", e.Entity)
	}
	return fmt.Sprintf("%s already exists: %s", e.Entity, e.Detail)
}

// StorageError wraps an underlying persistence failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsDuplicate(err error) bool {
	var e *DuplicateError
	return errors.As(err, &e)
}
