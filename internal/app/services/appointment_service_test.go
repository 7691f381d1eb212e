package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ycelik/clinicore/internal/app/models"
	"github.com/ycelik/clinicore/internal/app/models/dto"
	"github.com/ycelik/clinicore/internal/pkg/apperrors"
)

// The clock is pinned to the day before the slots booked by slotRequest.
var fixedNow = time.Date(2030, 5, 31, 8, 0, 0, 0, time.UTC)

func newAppointmentService(apptRepo *MockAppointmentRepository, doctorRepo *MockDoctorRepository, patientRepo *MockPatientRepository) *AppointmentService {
	svc := NewAppointmentService(apptRepo, doctorRepo, patientRepo)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func slotRequest(startMin, endMin int) *dto.AppointmentRequest {
	base := time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC)
	return &dto.AppointmentRequest{
		DoctorID:  1,
		PatientID: 2,
		Date:      base.Truncate(24 * time.Hour),
		StartTime: base.Add(time.Duration(startMin) * time.Minute),
		EndTime:   base.Add(time.Duration(endMin) * time.Minute),
		Status:    models.AppointmentScheduled,
	}
}

func expectReferences(doctorRepo *MockDoctorRepository, patientRepo *MockPatientRepository) {
	doctorRepo.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	patientRepo.On("Exists", mock.Anything, int64(2)).Return(true, nil)
}

func TestAppointmentCreateSuccess(t *testing.T) {
	apptRepo := new(MockAppointmentRepository)
	doctorRepo := new(MockDoctorRepository)
	patientRepo := new(MockPatientRepository)
	svc := newAppointmentService(apptRepo, doctorRepo, patientRepo)

	expectReferences(doctorRepo, patientRepo)
	apptRepo.On("HasDoctorOverlap", mock.Anything, int64(1), mock.Anything, mock.Anything, int64(0)).Return(false, nil)
	apptRepo.On("HasPatientOverlap", mock.Anything, int64(2), mock.Anything, mock.Anything, int64(0)).Return(false, nil)
	apptRepo.On("Create", mock.Anything, mock.Anything).Return(int64(7), nil)
	apptRepo.On("GetByID", mock.Anything, int64(7)).Return(&models.Appointment{
		ID:      7,
		Doctor:  &models.Doctor{Name: "Dr. Demir"},
		Patient: &models.Patient{Name: "Mehmet"},
	}, nil)

	appt, err := svc.Create(context.Background(), slotRequest(0, 30))
	require.NoError(t, err)
	assert.Equal(t, int64(7), appt.ID)
	apptRepo.AssertExpectations(t)
}

func TestAppointmentCreateDoctorConflict(t *testing.T) {
	apptRepo := new(MockAppointmentRepository)
	doctorRepo := new(MockDoctorRepository)
	patientRepo := new(MockPatientRepository)
	svc := newAppointmentService(apptRepo, doctorRepo, patientRepo)

	expectReferences(doctorRepo, patientRepo)
	// Existing booking 10:00-10:30; the request 10:15-10:45 intersects it.
	apptRepo.On("HasDoctorOverlap", mock.Anything, int64(1), mock.Anything, mock.Anything, int64(0)).Return(true, nil)

	_, err := svc.Create(context.Background(), slotRequest(15, 45))
	assert.ErrorIs(t, err, apperrors.ErrAppointmentConflict)
	apptRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAppointmentCreateTouchingSlotAllowed(t *testing.T) {
	apptRepo := new(MockAppointmentRepository)
	doctorRepo := new(MockDoctorRepository)
	patientRepo := new(MockPatientRepository)
	svc := newAppointmentService(apptRepo, doctorRepo, patientRepo)

	expectReferences(doctorRepo, patientRepo)
	// A 10:30-11:00 slot touching an existing 10:00-10:30 booking is not a
	// conflict; the repository reports no overlap for it.
	apptRepo.On("HasDoctorOverlap", mock.Anything, int64(1), mock.Anything, mock.Anything, int64(0)).Return(false, nil)
	apptRepo.On("HasPatientOverlap", mock.Anything, int64(2), mock.Anything, mock.Anything, int64(0)).Return(false, nil)
	apptRepo.On("Create", mock.Anything, mock.Anything).Return(int64(8), nil)
	apptRepo.On("GetByID", mock.Anything, int64(8)).Return(&models.Appointment{ID: 8}, nil)

	_, err := svc.Create(context.Background(), slotRequest(30, 60))
	assert.NoError(t, err)
}

func TestAppointmentCreatePatientConflict(t *testing.T) {
	apptRepo := new(MockAppointmentRepository)
	doctorRepo := new(MockDoctorRepository)
	patientRepo := new(MockPatientRepository)
	svc := newAppointmentService(apptRepo, doctorRepo, patientRepo)

	expectReferences(doctorRepo, patientRepo)
	// The doctor is free, but the patient has a booking with another doctor.
	apptRepo.On("HasDoctorOverlap", mock.Anything, int64(1), mock.Anything, mock.Anything, int64(0)).Return(false, nil)
	apptRepo.On("HasPatientOverlap", mock.Anything, int64(2), mock.Anything, mock.Anything, int64(0)).Return(true, nil)

	_, err := svc.Create(context.Background(), slotRequest(0, 30))
	assert.ErrorIs(t, err, apperrors.ErrAppointmentConflict)
	apptRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAppointmentCreateFieldValidation(t *testing.T) {
	apptRepo := new(MockAppointmentRepository)
	doctorRepo := new(MockDoctorRepository)
	patientRepo := new(MockPatientRepository)
	svc := newAppointmentService(apptRepo, doctorRepo, patientRepo)

	// End before start, in the past: both rules collected in one response.
	req := slotRequest(0, -30)
	req.StartTime = fixedNow.Add(-2 * time.Hour)
	req.EndTime = fixedNow.Add(-3 * time.Hour)

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	var validationErrs *apperrors.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Len(t, validationErrs.Violations, 2)

	// Field validation fails before any repository access.
	doctorRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestAppointmentCreatePastDate(t *testing.T) {
	apptRepo := new(MockAppointmentRepository)
	doctorRepo := new(MockDoctorRepository)
	patientRepo := new(MockPatientRepository)
	svc := newAppointmentService(apptRepo, doctorRepo, patientRepo)

	// Future start and end times do not excuse a date in the past.
	req := slotRequest(0, 30)
	req.Date = fixedNow.Add(-72 * time.Hour)

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	var validationErrs *apperrors.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	require.Len(t, validationErrs.Violations, 1)
	assert.Equal(t, "date", validationErrs.Violations[0].Field)

	doctorRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestAppointmentCreateUnknownDoctor(t *testing.T) {
	apptRepo := new(MockAppointmentRepository)
	doctorRepo := new(MockDoctorRepository)
	patientRepo := new(MockPatientRepository)
	svc := newAppointmentService(apptRepo, doctorRepo, patientRepo)

	doctorRepo.On("Exists", mock.Anything, int64(1)).Return(false, nil)

	_, err := svc.Create(context.Background(), slotRequest(0, 30))
	assert.ErrorIs(t, err, apperrors.ErrDoctorNotFound)
	assert.Contains(t, err.Error(), "doctor 1")
}

func TestAppointmentCreateCanceledSkipsConflictCheck(t *testing.T) {
	apptRepo := new(MockAppointmentRepository)
	doctorRepo := new(MockDoctorRepository)
	patientRepo := new(MockPatientRepository)
	svc := newAppointmentService(apptRepo, doctorRepo, patientRepo)

	expectReferences(doctorRepo, patientRepo)
	apptRepo.On("Create", mock.Anything, mock.Anything).Return(int64(9), nil)
	apptRepo.On("GetByID", mock.Anything, int64(9)).Return(&models.Appointment{ID: 9}, nil)

	req := slotRequest(0, 30)
	req.Status = models.AppointmentCanceled

	_, err := svc.Create(context.Background(), req)
	assert.NoError(t, err)
	apptRepo.AssertNotCalled(t, "HasDoctorOverlap", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAppointmentUpdateExcludesSelfFromConflictCheck(t *testing.T) {
	apptRepo := new(MockAppointmentRepository)
	doctorRepo := new(MockDoctorRepository)
	patientRepo := new(MockPatientRepository)
	svc := newAppointmentService(apptRepo, doctorRepo, patientRepo)

	current := &models.Appointment{ID: 7, Status: models.AppointmentScheduled}
	apptRepo.On("GetByID", mock.Anything, int64(7)).Return(current, nil)

	expectReferences(doctorRepo, patientRepo)
	apptRepo.On("HasDoctorOverlap", mock.Anything, int64(1), mock.Anything, mock.Anything, int64(7)).Return(false, nil)
	apptRepo.On("HasPatientOverlap", mock.Anything, int64(2), mock.Anything, mock.Anything, int64(7)).Return(false, nil)
	apptRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Update(context.Background(), 7, slotRequest(0, 30))
	assert.NoError(t, err)
	apptRepo.AssertExpectations(t)
}

func TestAppointmentUpdateIllegalTransition(t *testing.T) {
	apptRepo := new(MockAppointmentRepository)
	doctorRepo := new(MockDoctorRepository)
	patientRepo := new(MockPatientRepository)
	svc := newAppointmentService(apptRepo, doctorRepo, patientRepo)

	current := &models.Appointment{ID: 7, Status: models.AppointmentCompleted}
	apptRepo.On("GetByID", mock.Anything, int64(7)).Return(current, nil)

	req := slotRequest(0, 30)
	req.Status = models.AppointmentScheduled

	_, err := svc.Update(context.Background(), 7, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	apptRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAppointmentUpdateCancelReleasesSlot(t *testing.T) {
	apptRepo := new(MockAppointmentRepository)
	doctorRepo := new(MockDoctorRepository)
	patientRepo := new(MockPatientRepository)
	svc := newAppointmentService(apptRepo, doctorRepo, patientRepo)

	current := &models.Appointment{ID: 7, Status: models.AppointmentScheduled}
	apptRepo.On("GetByID", mock.Anything, int64(7)).Return(current, nil)
	expectReferences(doctorRepo, patientRepo)
	apptRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	req := slotRequest(0, 30)
	req.Status = models.AppointmentCanceled

	_, err := svc.Update(context.Background(), 7, req)
	assert.NoError(t, err)
	// Canceling never needs the calendars checked.
	apptRepo.AssertNotCalled(t, "HasDoctorOverlap", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
