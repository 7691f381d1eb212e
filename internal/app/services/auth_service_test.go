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
	"github.com/ycelik/clinicore/internal/pkg/auth"
)

func newAuthService(userRepo *MockUserRepository, patientRepo *MockPatientRepository, tokenExp time.Duration) *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret-key-for-signing",
		TokenExp:    tokenExp,
		TokenIssuer: "clinicore.app",
		Audience:    "clinicore.clients",
	})
	return NewAuthService(userRepo, patientRepo, jwtService)
}

func storedUser(t *testing.T) *models.User {
	t.Helper()
	hashed, err := auth.HashPassword("s3cret-pass")
	require.NoError(t, err)
	return &models.User{
		ID:       42,
		UserName: "jdoe",
		Password: hashed,
		Role:     models.RoleUser,
	}
}

func TestLoginSuccess(t *testing.T) {
	userRepo := new(MockUserRepository)
	patientRepo := new(MockPatientRepository)
	svc := newAuthService(userRepo, patientRepo, time.Hour)

	userRepo.On("GetByUserName", mock.Anything, "jdoe").Return(storedUser(t), nil)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "jdoe", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, int64(42), resp.User.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	patientRepo := new(MockPatientRepository)
	svc := newAuthService(userRepo, patientRepo, time.Hour)

	userRepo.On("GetByUserName", mock.Anything, "jdoe").Return(storedUser(t), nil)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "jdoe", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	patientRepo := new(MockPatientRepository)
	svc := newAuthService(userRepo, patientRepo, time.Hour)

	userRepo.On("GetByUserName", mock.Anything, "ghost").Return(nil, apperrors.ErrUserNotFound)

	// Indistinguishable from a wrong password.
	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRegisterSuccess(t *testing.T) {
	userRepo := new(MockUserRepository)
	patientRepo := new(MockPatientRepository)
	svc := newAuthService(userRepo, patientRepo, time.Hour)

	userRepo.On("UserNameExists", mock.Anything, "newuser").Return(false, nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		// The stored password must be a hash, never the plaintext.
		return u.UserName == "newuser" && u.Password != "s3cret-pass" && u.Role == models.RoleUser
	})).Return(int64(10), nil)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username:        "newuser",
		Password:        "s3cret-pass",
		ConfirmPassword: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.User.ID)
	assert.Equal(t, models.RoleUser, resp.User.Role)
	userRepo.AssertExpectations(t)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	userRepo := new(MockUserRepository)
	patientRepo := new(MockPatientRepository)
	svc := newAuthService(userRepo, patientRepo, time.Hour)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username:        "newuser",
		Password:        "one",
		ConfirmPassword: "two",
	})
	assert.ErrorIs(t, err, apperrors.ErrPasswordMismatch)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterInvalidRole(t *testing.T) {
	userRepo := new(MockUserRepository)
	patientRepo := new(MockPatientRepository)
	svc := newAuthService(userRepo, patientRepo, time.Hour)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username:        "newuser",
		Password:        "pw",
		ConfirmPassword: "pw",
		Role:            models.Role("Superadmin"),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	userRepo := new(MockUserRepository)
	patientRepo := new(MockPatientRepository)
	svc := newAuthService(userRepo, patientRepo, time.Hour)

	userRepo.On("UserNameExists", mock.Anything, "jdoe").Return(true, nil)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username:        "jdoe",
		Password:        "pw",
		ConfirmPassword: "pw",
	})
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterUnknownPatient(t *testing.T) {
	userRepo := new(MockUserRepository)
	patientRepo := new(MockPatientRepository)
	svc := newAuthService(userRepo, patientRepo, time.Hour)

	patientID := int64(99)
	userRepo.On("UserNameExists", mock.Anything, "newuser").Return(false, nil)
	patientRepo.On("Exists", mock.Anything, int64(99)).Return(false, nil)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username:        "newuser",
		Password:        "pw",
		ConfirmPassword: "pw",
		PatientID:       &patientID,
	})
	assert.ErrorIs(t, err, apperrors.ErrPatientNotFound)
}

func TestRefreshExpiredToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	patientRepo := new(MockPatientRepository)

	// Mint with a negative lifetime so the access token is already expired.
	expiredSvc := newAuthService(userRepo, patientRepo, -time.Minute)
	user := storedUser(t)
	userRepo.On("GetByUserName", mock.Anything, "jdoe").Return(user, nil)
	resp, err := expiredSvc.Login(context.Background(), &dto.LoginRequest{Username: "jdoe", Password: "s3cret-pass"})
	require.NoError(t, err)

	assert.False(t, expiredSvc.ValidateToken(resp.Token))

	userRepo.On("GetByID", mock.Anything, int64(42)).Return(user, nil)
	refreshed, err := expiredSvc.Refresh(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.Token)
	assert.Equal(t, int64(42), refreshed.User.ID)
}

func TestRefreshGarbageToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	patientRepo := new(MockPatientRepository)
	svc := newAuthService(userRepo, patientRepo, time.Hour)

	_, err := svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
	userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestRefreshDeletedAccount(t *testing.T) {
	userRepo := new(MockUserRepository)
	patientRepo := new(MockPatientRepository)
	svc := newAuthService(userRepo, patientRepo, time.Hour)

	user := storedUser(t)
	userRepo.On("GetByUserName", mock.Anything, "jdoe").Return(user, nil)
	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "jdoe", Password: "s3cret-pass"})
	require.NoError(t, err)

	// A deleted account must look exactly like any other bad token.
	userRepo.On("GetByID", mock.Anything, int64(42)).Return(nil, apperrors.ErrUserNotFound)
	_, err = svc.Refresh(context.Background(), resp.Token)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
	assert.NotErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestValidateToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	patientRepo := new(MockPatientRepository)
	svc := newAuthService(userRepo, patientRepo, time.Hour)

	user := storedUser(t)
	userRepo.On("GetByUserName", mock.Anything, "jdoe").Return(user, nil)
	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "jdoe", Password: "s3cret-pass"})
	require.NoError(t, err)

	assert.True(t, svc.ValidateToken(resp.Token))
	assert.False(t, svc.ValidateToken("garbage"))
	assert.False(t, svc.ValidateToken(""))
}
