package dto

import (
	"time"

	"github.com/ycelik/clinicore/internal/app/models"
)

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest carries a new account registration.
type RegisterRequest struct {
	Username        string      `json:"username" binding:"required,max=100"`
	Password        string      `json:"password" binding:"required,min=6"`
	ConfirmPassword string      `json:"confirmPassword" binding:"required"`
	Role            models.Role `json:"role"`
	PatientID       *int64      `json:"patientId,omitempty"`
}

// RefreshTokenRequest carries the token to renew.
type RefreshTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// ValidateTokenRequest carries the token to check.
type ValidateTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// ValidateTokenResponse reports token validity.
type ValidateTokenResponse struct {
	IsValid bool `json:"isValid"`
}

// AuthResponse is the token triple returned by login, register, and refresh.
type AuthResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresAt    time.Time    `json:"expiresAt"`
	User         *UserProfile `json:"user"`
}

// UserProfile is the public view of a user account.
type UserProfile struct {
	ID        int64       `json:"id"`
	Username  string      `json:"username"`
	Role      models.Role `json:"role"`
	PatientID *int64      `json:"patientId,omitempty"`
}

// NewUserProfile builds the public view of a user.
func NewUserProfile(user *models.User) *UserProfile {
	return &UserProfile{
		ID:        user.ID,
		Username:  user.UserName,
		Role:      user.Role,
		PatientID: user.PatientID,
	}
}
