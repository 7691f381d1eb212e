package dto

import (
	"time"

	"github.com/ycelik/clinicore/internal/app/models"
)

// PatientRequest carries a patient create or update.
type PatientRequest struct {
	Name          string    `json:"name" binding:"required,max=255"`
	DateOfBirth   time.Time `json:"dateOfBirth" binding:"required"`
	Gender        string    `json:"gender" binding:"required"`
	PhoneNumber   *string   `json:"phoneNumber,omitempty"`
	Email         *string   `json:"email,omitempty" binding:"omitempty,email"`
	MedicalRecord *string   `json:"medicalRecord,omitempty"`
}

// DoctorRequest carries a doctor create or update.
type DoctorRequest struct {
	Name        string              `json:"name" binding:"required,max=255"`
	Specialty   string              `json:"specialty" binding:"required,max=100"`
	Department  string              `json:"department" binding:"required,max=100"`
	PhoneNumber string              `json:"phoneNumber"`
	Status      models.DoctorStatus `json:"status"`
}

// StaffRequest carries a staff create or update.
type StaffRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Position    string  `json:"position"`
	Email       *string `json:"email,omitempty" binding:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

// UserUpdateRequest carries a user account update. Password is optional; an
// empty value keeps the current one.
type UserUpdateRequest struct {
	Username  string      `json:"username" binding:"required,max=100"`
	Password  string      `json:"password" binding:"omitempty,min=6"`
	Role      models.Role `json:"role"`
	PatientID *int64      `json:"patientId,omitempty"`
}
