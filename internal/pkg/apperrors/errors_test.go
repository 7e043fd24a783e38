package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yigit/registrar/internal/pkg/validation"
)

func TestEntityErrorsMatchCategories(t *testing.T) {
	for _, err := range []error{ErrCourseTypeNotFound, ErrCourseNotFound, ErrOfferingNotFound, ErrRegistrationNotFound} {
		assert.ErrorIs(t, err, ErrNotFound, err.Error())
		assert.NotErrorIs(t, err, ErrReferentialIntegrity)
	}
	for _, err := range []error{ErrCourseTypeInUse, ErrCourseInUse} {
		assert.ErrorIs(t, err, ErrReferentialIntegrity, err.Error())
	}

	wrapped := fmt.Errorf("context: %w", ErrCourseInUse)
	assert.True(t, Is(wrapped, ErrNotFound, ErrReferentialIntegrity))
	assert.False(t, Is(wrapped, ErrNotFound))
}

func TestCustomError(t *testing.T) {
	assert.Equal(t, "course not found", ErrCourseNotFound.Error())
	assert.Equal(t, ErrNotFound.Error(), NewCustomError(ErrNotFound, "").Error())
	assert.Equal(t, "unknown error", (&CustomError{}).Error())
}

func TestValidationError(t *testing.T) {
	fields := validation.FieldErrors{}
	fields.Add("studentPhone", validation.KindRequired, "Student phone is required")
	fields.Add("studentEmail", validation.KindInvalidFormat, "Email is invalid")

	err := error(NewValidationError(fields))
	assert.Equal(t, "validation failed: studentEmail: Email is invalid; studentPhone: Student phone is required", err.Error())
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.NotErrorIs(t, err, ErrDuplicateOffering)

	var verr *ValidationError
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &verr))
	assert.Equal(t, fields, verr.Fields)

	dup := validation.FieldErrors{}
	dup.Add(validation.GeneralField, validation.KindDuplicateOffering, "This course offering already exists")
	assert.ErrorIs(t, NewValidationError(dup), ErrDuplicateOffering)
}
