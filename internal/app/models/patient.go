package models

import "time"

// Patient defines the patient model based on the 'patients' table.
type Patient struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	DateOfBirth   time.Time `json:"dateOfBirth" db:"date_of_birth"`
	Gender        string    `json:"gender" db:"gender"`
	PhoneNumber   *string   `json:"phoneNumber,omitempty" db:"phone_number"`
	Email         *string   `json:"email,omitempty" db:"email"`
	MedicalRecord *string   `json:"medicalRecord,omitempty" db:"medical_record"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}
