package models

import "time"

// Staff defines the staff model based on the 'staff' table.
type Staff struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Position    string    `json:"position" db:"position"`
	Email       *string   `json:"email,omitempty" db:"email"`
	PhoneNumber *string   `json:"phoneNumber,omitempty" db:"phone_number"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
