package models

import "time"

// AppointmentStatus represents the lifecycle state of a booking.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "Scheduled"
	AppointmentCompleted AppointmentStatus = "Completed"
	AppointmentCanceled  AppointmentStatus = "Canceled"
)

// Valid reports whether the status is one of the known values.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentScheduled, AppointmentCompleted, AppointmentCanceled:
		return true
	}
	return false
}

// CanTransitionTo reports whether a status change is legal. Scheduled may
// move to Completed or Canceled; Completed and Canceled are terminal.
// Keeping the same status is always allowed.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if s == next {
		return true
	}
	return s == AppointmentScheduled &&
		(next == AppointmentCompleted || next == AppointmentCanceled)
}

// Blocks reports whether an appointment in this state occupies its time
// slot. Canceled appointments release the slot.
func (s AppointmentStatus) Blocks() bool {
	return s != AppointmentCanceled
}

// Appointment defines the appointment model based on the 'appointments'
// table. Doctor and Patient are populated on reads; on writes only the ids
// are used, attaching the existing records by reference.
type Appointment struct {
	ID          int64             `json:"id" db:"id"`
	DoctorID    int64             `json:"doctorId" db:"doctor_id"`
	PatientID   int64             `json:"patientId" db:"patient_id"`
	Date        time.Time         `json:"date" db:"date"`
	StartTime   time.Time         `json:"startTime" db:"start_time"`
	EndTime     time.Time         `json:"endTime" db:"end_time"`
	Description *string           `json:"description,omitempty" db:"description"`
	Location    *string           `json:"location,omitempty" db:"location"`
	Status      AppointmentStatus `json:"status" db:"status"`
	CreatedAt   time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time         `json:"updatedAt" db:"updated_at"`

	Doctor  *Doctor  `json:"doctor,omitempty"`
	Patient *Patient `json:"patient,omitempty"`
}

// OverlapsInterval applies the half-open interval test: [start, end)
// intersects the appointment's slot when start < a.EndTime and
// end > a.StartTime. Touching endpoints do not overlap.
func (a *Appointment) OverlapsInterval(start, end time.Time) bool {
	return start.Before(a.EndTime) && end.After(a.StartTime)
}
