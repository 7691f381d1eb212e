package models

import "time"

// DoctorStatus represents a doctor's availability state.
type DoctorStatus string

const (
	DoctorOnline  DoctorStatus = "Online"
	DoctorOffline DoctorStatus = "Offline"
	DoctorBusy    DoctorStatus = "Busy"
)

// Valid reports whether the status is one of the known values.
func (s DoctorStatus) Valid() bool {
	switch s {
	case DoctorOnline, DoctorOffline, DoctorBusy:
		return true
	}
	return false
}

// Doctor defines the doctor model based on the 'doctors' table.
type Doctor struct {
	ID          int64        `json:"id" db:"id"`
	Name        string       `json:"name" db:"name"`
	Specialty   string       `json:"specialty" db:"specialty"`
	Department  string       `json:"department" db:"department"`
	PhoneNumber string       `json:"phoneNumber" db:"phone_number"`
	Status      DoctorStatus `json:"status" db:"status"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time    `json:"updatedAt" db:"updated_at"`
}
