package services

import (
	"context"

	"github.com/ycelik/clinicore/internal/app/models"
	"github.com/ycelik/clinicore/internal/app/models/dto"
	"github.com/ycelik/clinicore/internal/app/repositories"
	"github.com/ycelik/clinicore/internal/pkg/apperrors"
	"github.com/ycelik/clinicore/internal/pkg/logger"
)

// DoctorService handles doctor record operations.
type DoctorService struct {
	doctorRepo repositories.IDoctorRepository
}

// NewDoctorService creates a new DoctorService
func NewDoctorService(doctorRepo repositories.IDoctorRepository) *DoctorService {
	return &DoctorService{doctorRepo: doctorRepo}
}

// Create registers a new doctor. Status defaults to Offline when omitted.
func (s *DoctorService) Create(ctx context.Context, req *dto.DoctorRequest) (*models.Doctor, error) {
	doctor := doctorFromRequest(req)
	if doctor.Status == "" {
		doctor.Status = models.DoctorOffline
	}
	if err := validateDoctorStatus(doctor.Status); err != nil {
		return nil, err
	}

	id, err := s.doctorRepo.Create(ctx, doctor)
	if err != nil {
		return nil, err
	}
	logger.Info().Int64("doctorId", id).Str("specialty", doctor.Specialty).Msg("Doctor created")
	return s.doctorRepo.GetByID(ctx, id)
}

// GetByID retrieves a doctor record.
func (s *DoctorService) GetByID(ctx context.Context, id int64) (*models.Doctor, error) {
	return s.doctorRepo.GetByID(ctx, id)
}

// GetAll retrieves all doctor records.
func (s *DoctorService) GetAll(ctx context.Context) ([]*models.Doctor, error) {
	return s.doctorRepo.GetAll(ctx)
}

// Update rewrites a doctor record. An omitted status keeps the current one.
func (s *DoctorService) Update(ctx context.Context, id int64, req *dto.DoctorRequest) (*models.Doctor, error) {
	current, err := s.doctorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	doctor := doctorFromRequest(req)
	doctor.ID = id
	if doctor.Status == "" {
		doctor.Status = current.Status
	}
	if err := validateDoctorStatus(doctor.Status); err != nil {
		return nil, err
	}

	if err := s.doctorRepo.Update(ctx, doctor); err != nil {
		return nil, err
	}
	return s.doctorRepo.GetByID(ctx, id)
}

// Delete removes a doctor record. Appointments referencing the doctor are
// removed by the schema.
func (s *DoctorService) Delete(ctx context.Context, id int64) error {
	if err := s.doctorRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("doctorId", id).Msg("Doctor deleted")
	return nil
}

func doctorFromRequest(req *dto.DoctorRequest) *models.Doctor {
	return &models.Doctor{
		Name:        req.Name,
		Specialty:   req.Specialty,
		Department:  req.Department,
		PhoneNumber: req.PhoneNumber,
		Status:      req.Status,
	}
}

func validateDoctorStatus(status models.DoctorStatus) error {
	if !status.Valid() {
		validationErrs := apperrors.NewValidationErrors()
		validationErrs.Add("status", "unknown status: "+string(status))
		return validationErrs
	}
	return nil
}
