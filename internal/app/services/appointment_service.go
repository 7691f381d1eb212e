package services

import (
	"context"
	"time"

	"github.com/ycelik/clinicore/internal/app/models"
	"github.com/ycelik/clinicore/internal/app/models/dto"
	"github.com/ycelik/clinicore/internal/app/repositories"
	"github.com/ycelik/clinicore/internal/pkg/apperrors"
	"github.com/ycelik/clinicore/internal/pkg/logger"
)

// AppointmentService handles appointment booking, conflict detection, and the
// status workflow.
type AppointmentService struct {
	appointmentRepo repositories.IAppointmentRepository
	doctorRepo      repositories.IDoctorRepository
	patientRepo     repositories.IPatientRepository
	now             func() time.Time
}

// NewAppointmentService creates a new AppointmentService
func NewAppointmentService(appointmentRepo repositories.IAppointmentRepository, doctorRepo repositories.IDoctorRepository, patientRepo repositories.IPatientRepository) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		now:             time.Now,
	}
}

// Create validates and books a new appointment. The checks run in a fixed
// order: field rules first (all collected into one response), then
// referential existence, then the doctor's calendar, then the patient's.
func (s *AppointmentService) Create(ctx context.Context, req *dto.AppointmentRequest) (*models.Appointment, error) {
	appt := apptFromRequest(req)
	if appt.Status == "" {
		appt.Status = models.AppointmentScheduled
	}

	if err := s.validateFields(appt); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, appt); err != nil {
		return nil, err
	}
	if err := s.checkConflicts(ctx, appt, 0); err != nil {
		return nil, err
	}

	id, err := s.appointmentRepo.Create(ctx, appt)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int64("appointmentId", id).
		Int64("doctorId", appt.DoctorID).
		Int64("patientId", appt.PatientID).
		Time("startTime", appt.StartTime).
		Msg("Appointment booked")

	return s.appointmentRepo.GetByID(ctx, id)
}

// GetByID retrieves an appointment.
func (s *AppointmentService) GetByID(ctx context.Context, id int64) (*models.Appointment, error) {
	return s.appointmentRepo.GetByID(ctx, id)
}

// GetAll retrieves all appointments.
func (s *AppointmentService) GetAll(ctx context.Context) ([]*models.Appointment, error) {
	return s.appointmentRepo.GetAll(ctx)
}

// Update rewrites an appointment. On top of the create-time checks it
// enforces the status workflow: Scheduled may move to Completed or Canceled,
// terminal states only keep their value.
func (s *AppointmentService) Update(ctx context.Context, id int64, req *dto.AppointmentRequest) (*models.Appointment, error) {
	current, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	appt := apptFromRequest(req)
	appt.ID = id
	if appt.Status == "" {
		appt.Status = current.Status
	}

	if err := s.validateFields(appt); err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(appt.Status) {
		validationErrs := apperrors.NewValidationErrors()
		validationErrs.Add("status", string(current.Status)+" appointments cannot move to "+string(appt.Status))
		return nil, validationErrs
	}
	if err := s.checkReferences(ctx, appt); err != nil {
		return nil, err
	}
	if err := s.checkConflicts(ctx, appt, id); err != nil {
		return nil, err
	}

	if err := s.appointmentRepo.Update(ctx, appt); err != nil {
		return nil, err
	}

	logger.Info().Int64("appointmentId", id).Str("status", string(appt.Status)).Msg("Appointment updated")
	return s.appointmentRepo.GetByID(ctx, id)
}

// Delete removes an appointment.
func (s *AppointmentService) Delete(ctx context.Context, id int64) error {
	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("appointmentId", id).Msg("Appointment deleted")
	return nil
}

func apptFromRequest(req *dto.AppointmentRequest) *models.Appointment {
	return &models.Appointment{
		DoctorID:    req.DoctorID,
		PatientID:   req.PatientID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Description: req.Description,
		Location:    req.Location,
		Status:      req.Status,
	}
}

// validateFields collects every failing field rule into one error so the
// caller sees the full list at once.
func (s *AppointmentService) validateFields(appt *models.Appointment) error {
	validationErrs := apperrors.NewValidationErrors()

	if !appt.EndTime.After(appt.StartTime) {
		validationErrs.Add("endTime", "end time must be after start time")
	}
	if !appt.Date.After(s.now()) {
		validationErrs.Add("date", "appointment date must be in the future")
	}
	if appt.StartTime.Before(s.now()) {
		validationErrs.Add("startTime", "appointment must be in the future")
	}
	if !appt.Status.Valid() {
		validationErrs.Add("status", "unknown status: "+string(appt.Status))
	}

	if validationErrs.HasErrors() {
		return validationErrs
	}
	return nil
}

// checkReferences verifies the doctor and patient exist, naming the missing
// id in the error.
func (s *AppointmentService) checkReferences(ctx context.Context, appt *models.Appointment) error {
	exists, err := s.doctorRepo.Exists(ctx, appt.DoctorID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewNotFoundError(apperrors.ErrDoctorNotFound,
			"doctor %d does not exist", appt.DoctorID)
	}

	exists, err = s.patientRepo.Exists(ctx, appt.PatientID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewNotFoundError(apperrors.ErrPatientNotFound,
			"patient %d does not exist", appt.PatientID)
	}
	return nil
}

// checkConflicts rejects the slot when it overlaps another active booking on
// either calendar. Canceled appointments never block, including the one
// being saved.
func (s *AppointmentService) checkConflicts(ctx context.Context, appt *models.Appointment, excludeID int64) error {
	if !appt.Status.Blocks() {
		return nil
	}

	conflict, err := s.appointmentRepo.HasDoctorOverlap(ctx, appt.DoctorID, appt.StartTime, appt.EndTime, excludeID)
	if err != nil {
		return err
	}
	if conflict {
		return apperrors.NewConflictError("doctor %d already has an appointment in this time slot", appt.DoctorID)
	}

	conflict, err = s.appointmentRepo.HasPatientOverlap(ctx, appt.PatientID, appt.StartTime, appt.EndTime, excludeID)
	if err != nil {
		return err
	}
	if conflict {
		return apperrors.NewConflictError("patient %d already has an appointment in this time slot", appt.PatientID)
	}
	return nil
}
