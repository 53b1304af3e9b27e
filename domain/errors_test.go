package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	notFound := &NotFoundError{Entity: "subject", ID: 7}
	validation := &ValidationError{Field: "name", Reason: "is required"}
	duplicate := &DuplicateError{Entity: "school year", Detail: "2026-2027"}
	storage := &StorageError{Op: "create subject", Err: errors.New("connection refused")}

	assert.True(t, IsNotFound(notFound))
	assert.True(t, IsValidation(validation))
	assert.True(t, IsDuplicate(duplicate))

	assert.False(t, IsNotFound(validation))
	assert.False(t, IsValidation(duplicate))
	assert.False(t, IsDuplicate(storage))
}

func TestErrorClassificationThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("assign student: %w", &DuplicateError{Entity: "enrollment"})
	assert.True(t, IsDuplicate(wrapped))
	assert.False(t, IsNotFound(wrapped))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "subject with ID 7 not found", (&NotFoundError{Entity: "subject", ID: 7}).Error())
	assert.Equal(t, "name: is required", (&ValidationError{Field: "name", Reason: "is required"}).Error())
	assert.Equal(t, "is required", (&ValidationError{Reason: "is required"}).Error())
	assert.Equal(t, "school year already exists", (&DuplicateError{Entity: "school year"}).Error())
}

func TestStorageErrorUnwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := &StorageError{Op: "create subject", Err: inner}
	assert.ErrorIs(t, err, inner)
}
