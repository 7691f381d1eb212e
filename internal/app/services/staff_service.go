package services

import (
	"context"

	"github.com/ycelik/clinicore/internal/app/models"
	"github.com/ycelik/clinicore/internal/app/models/dto"
	"github.com/ycelik/clinicore/internal/app/repositories"
	"github.com/ycelik/clinicore/internal/pkg/logger"
)

// StaffService handles staff record operations.
type StaffService struct {
	staffRepo repositories.IStaffRepository
}

// NewStaffService creates a new StaffService
func NewStaffService(staffRepo repositories.IStaffRepository) *StaffService {
	return &StaffService{staffRepo: staffRepo}
}

// Create registers a new staff member.
func (s *StaffService) Create(ctx context.Context, req *dto.StaffRequest) (*models.Staff, error) {
	staff := staffFromRequest(req)
	id, err := s.staffRepo.Create(ctx, staff)
	if err != nil {
		return nil, err
	}
	logger.Info().Int64("staffId", id).Msg("Staff member created")
	return s.staffRepo.GetByID(ctx, id)
}

// GetByID retrieves a staff record.
func (s *StaffService) GetByID(ctx context.Context, id int64) (*models.Staff, error) {
	return s.staffRepo.GetByID(ctx, id)
}

// GetAll retrieves all staff records.
func (s *StaffService) GetAll(ctx context.Context) ([]*models.Staff, error) {
	return s.staffRepo.GetAll(ctx)
}

// Update rewrites a staff record.
func (s *StaffService) Update(ctx context.Context, id int64, req *dto.StaffRequest) (*models.Staff, error) {
	staff := staffFromRequest(req)
	staff.ID = id
	if err := s.staffRepo.Update(ctx, staff); err != nil {
		return nil, err
	}
	return s.staffRepo.GetByID(ctx, id)
}

// Delete removes a staff record.
func (s *StaffService) Delete(ctx context.Context, id int64) error {
	if err := s.staffRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("staffId", id).Msg("Staff member deleted")
	return nil
}

func staffFromRequest(req *dto.StaffRequest) *models.Staff {
	return &models.Staff{
		Name:        req.Name,
		Position:    req.Position,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
}
