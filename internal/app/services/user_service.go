package services

import (
	"context"
	"fmt"

	"github.com/ycelik/clinicore/internal/app/models"
	"github.com/ycelik/clinicore/internal/app/models/dto"
	"github.com/ycelik/clinicore/internal/app/repositories"
	"github.com/ycelik/clinicore/internal/pkg/apperrors"
	"github.com/ycelik/clinicore/internal/pkg/auth"
	"github.com/ycelik/clinicore/internal/pkg/logger"
)

// UserService handles user account administration.
type UserService struct {
	userRepo    repositories.IUserRepository
	patientRepo repositories.IPatientRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository, patientRepo repositories.IPatientRepository) *UserService {
	return &UserService{
		userRepo:    userRepo,
		patientRepo: patientRepo,
	}
}

// GetByID retrieves a user account.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetAll retrieves all user accounts.
func (s *UserService) GetAll(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// Update rewrites a user account. An empty password keeps the current hash;
// a non-empty one is re-hashed.
func (s *UserService) Update(ctx context.Context, id int64, req *dto.UserUpdateRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = user.Role
	}
	if !role.Valid() {
		validationErrs := apperrors.NewValidationErrors()
		validationErrs.Add("role", fmt.Sprintf("unknown role: %s", role))
		return nil, validationErrs
	}

	if req.PatientID != nil {
		exists, err := s.patientRepo.Exists(ctx, *req.PatientID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.NewNotFoundError(apperrors.ErrPatientNotFound,
				"patient %d does not exist", *req.PatientID)
		}
	}

	user.UserName = req.Username
	user.Role = role
	user.PatientID = req.PatientID
	if req.Password != "" {
		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hashed
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().Int64("userId", id).Msg("User updated")
	return s.userRepo.GetByID(ctx, id)
}

// Delete removes a user account.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("userId", id).Msg("User deleted")
	return nil
}
