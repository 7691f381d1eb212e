package models

import (
	"time"
)

// Role defines the access level of a user account.
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleDoctor Role = "Doctor"
	RoleGuest  Role = "Guest"
	RoleStaff  Role = "Staff"
	RoleUser   Role = "User"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleGuest, RoleStaff, RoleUser:
		return true
	}
	return false
}

// IsPrivileged reports whether the role has unconditional access to
// patient-scoped resources.
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleDoctor
}

// User defines the user model based on the 'users' table. PatientID is a weak
// reference linking a portal account to its patient record; it does not imply
// ownership or cascade deletion.
type User struct {
	ID        int64     `json:"id" db:"id"`
	UserName  string    `json:"userName" db:"user_name"`
	Password  string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Role      Role      `json:"role" db:"role"`
	PatientID *int64    `json:"patientId,omitempty" db:"patient_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
