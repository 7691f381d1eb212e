package services

import (
	"context"

	"github.com/ycelik/clinicore/internal/app/models"
	"github.com/ycelik/clinicore/internal/app/models/dto"
	"github.com/ycelik/clinicore/internal/app/repositories"
	"github.com/ycelik/clinicore/internal/pkg/logger"
)

// PatientService handles patient record operations.
type PatientService struct {
	patientRepo repositories.IPatientRepository
}

// NewPatientService creates a new PatientService
func NewPatientService(patientRepo repositories.IPatientRepository) *PatientService {
	return &PatientService{patientRepo: patientRepo}
}

// Create registers a new patient record.
func (s *PatientService) Create(ctx context.Context, req *dto.PatientRequest) (*models.Patient, error) {
	patient := patientFromRequest(req)
	id, err := s.patientRepo.Create(ctx, patient)
	if err != nil {
		return nil, err
	}
	logger.Info().Int64("patientId", id).Msg("Patient created")
	return s.patientRepo.GetByID(ctx, id)
}

// GetByID retrieves a patient record.
func (s *PatientService) GetByID(ctx context.Context, id int64) (*models.Patient, error) {
	return s.patientRepo.GetByID(ctx, id)
}

// GetAll retrieves all patient records.
func (s *PatientService) GetAll(ctx context.Context) ([]*models.Patient, error) {
	return s.patientRepo.GetAll(ctx)
}

// Update rewrites a patient record.
func (s *PatientService) Update(ctx context.Context, id int64, req *dto.PatientRequest) (*models.Patient, error) {
	patient := patientFromRequest(req)
	patient.ID = id
	if err := s.patientRepo.Update(ctx, patient); err != nil {
		return nil, err
	}
	return s.patientRepo.GetByID(ctx, id)
}

// Delete removes a patient record. Appointments referencing the patient are
// removed by the schema; user accounts and files keep a nulled link.
func (s *PatientService) Delete(ctx context.Context, id int64) error {
	if err := s.patientRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("patientId", id).Msg("Patient deleted")
	return nil
}

func patientFromRequest(req *dto.PatientRequest) *models.Patient {
	return &models.Patient{
		Name:          req.Name,
		DateOfBirth:   req.DateOfBirth,
		Gender:        req.Gender,
		PhoneNumber:   req.PhoneNumber,
		Email:         req.Email,
		MedicalRecord: req.MedicalRecord,
	}
}
