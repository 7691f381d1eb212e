package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ycelik/clinicore/internal/app/models"
	"github.com/ycelik/clinicore/internal/app/models/dto"
	"github.com/ycelik/clinicore/internal/app/repositories"
	"github.com/ycelik/clinicore/internal/pkg/apperrors"
	"github.com/ycelik/clinicore/internal/pkg/auth"
	"github.com/ycelik/clinicore/internal/pkg/logger"
)

// AuthService handles authentication operations.
type AuthService struct {
	userRepo    repositories.IUserRepository
	patientRepo repositories.IPatientRepository
	jwtService  *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, patientRepo repositories.IPatientRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		patientRepo: patientRepo,
		jwtService:  jwtService,
	}
}

// Login authenticates the user and returns a token pair. A missing account
// and a wrong password both surface as ErrInvalidCredentials so the response
// does not leak which usernames exist.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByUserName(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			logger.Debug().Str("username", req.Username).Msg("Login attempt for unknown user")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.CheckPassword(user.Password, req.Password); err != nil {
		logger.Debug().Str("username", req.Username).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// Register creates a new account and signs it in.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.ErrPasswordMismatch
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if !role.Valid() {
		validationErrs := apperrors.NewValidationErrors()
		validationErrs.Add("role", fmt.Sprintf("unknown role: %s", role))
		return nil, validationErrs
	}

	// Friendly pre-check; the unique index still catches concurrent races.
	taken, err := s.userRepo.UserNameExists(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrUsernameAlreadyExists
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

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		UserName:  req.Username,
		Password:  hashed,
		Role:      role,
		PatientID: req.PatientID,
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	logger.Info().Int64("userId", id).Str("role", string(role)).Msg("User registered")
	return s.issueTokens(user)
}

// Refresh renews an expired or still valid access token. The submitted token
// must pass signature, issuer, and audience checks; only the lifetime is
// waived. The result is a brand new pair bound to the user's current record.
func (s *AuthService) Refresh(ctx context.Context, tokenString string) (*dto.AuthResponse, error) {
	claims, err := s.jwtService.ParseIgnoringExpiry(tokenString)
	if err != nil {
		logger.Debug().Msg("Refresh rejected: token failed verification")
		return nil, apperrors.ErrTokenInvalid
	}

	userID, err := claims.SubjectID()
	if err != nil {
		logger.Debug().Str("subject", claims.Subject).Msg("Refresh rejected: malformed subject claim")
		return nil, apperrors.ErrTokenInvalid
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			// Surface the same 401 as any other bad token so a stale token
			// cannot be used to probe whether an account still exists.
			logger.Debug().Int64("userId", userID).Msg("Refresh rejected: account no longer exists")
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, err
	}

	return s.issueTokens(user)
}

// ValidateToken reports whether the token passes every check.
func (s *AuthService) ValidateToken(tokenString string) bool {
	return s.jwtService.Validate(tokenString)
}

// Me returns the profile behind a user id.
func (s *AuthService) Me(ctx context.Context, userID int64) (*dto.UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewUserProfile(user), nil
}

func (s *AuthService) issueTokens(user *models.User) (*dto.AuthResponse, error) {
	accessToken, refreshToken, expiresAt, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}
	return &dto.AuthResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		User:         dto.NewUserProfile(user),
	}, nil
}
