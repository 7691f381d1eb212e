package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorsCollectsAllViolations(t *testing.T) {
	v := NewValidationErrors()
	assert.False(t, v.HasErrors())

	v.Add("endTime", "end time must be after start time").
		Add("status", "unknown status: Pending")

	assert.True(t, v.HasErrors())
	assert.Len(t, v.Violations, 2)
	assert.Contains(t, v.Error(), "endTime")
	assert.Contains(t, v.Error(), "status")
}

func TestValidationErrorsMatchesSentinel(t *testing.T) {
	v := NewValidationErrors()
	v.Add("field", "bad")

	var err error = v
	assert.ErrorIs(t, err, ErrValidationFailed)

	var extracted *ValidationErrors
	assert.ErrorAs(t, err, &extracted)
	assert.Len(t, extracted.Violations, 1)
}

func TestCustomErrorWrapsSentinel(t *testing.T) {
	err := NewNotFoundError(ErrDoctorNotFound, "doctor %d does not exist", 42)
	assert.ErrorIs(t, err, ErrDoctorNotFound)
	assert.Equal(t, "doctor 42 does not exist", err.Error())

	conflict := NewConflictError("doctor %d already booked", 1)
	assert.ErrorIs(t, conflict, ErrAppointmentConflict)

	forbidden := NewForbiddenError("no access")
	assert.ErrorIs(t, forbidden, ErrPermissionDenied)
	assert.Equal(t, "no access", forbidden.Error())
}

func TestSentinelsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrFileNotFound, ErrPhysicalFileMissing))
	assert.False(t, errors.Is(ErrTokenInvalid, ErrTokenExpired))
}
