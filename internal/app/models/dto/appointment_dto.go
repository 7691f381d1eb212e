package dto

import (
	"time"

	"github.com/ycelik/clinicore/internal/app/models"
)

// AppointmentRequest carries an appointment create or update.
type AppointmentRequest struct {
	DoctorID    int64                    `json:"doctorId" binding:"required"`
	PatientID   int64                    `json:"patientId" binding:"required"`
	Date        time.Time                `json:"date" binding:"required"`
	StartTime   time.Time                `json:"startTime" binding:"required"`
	EndTime     time.Time                `json:"endTime" binding:"required"`
	Description *string                  `json:"description,omitempty"`
	Location    *string                  `json:"location,omitempty"`
	Status      models.AppointmentStatus `json:"status"`
}

// BookedSlotResponse is the confirmation returned after a successful
// booking: who, with whom, and when.
type BookedSlotResponse struct {
	AppointmentID int64     `json:"appointmentId"`
	DoctorName    string    `json:"doctorName"`
	PatientName   string    `json:"patientName"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
}

// NewBookedSlotResponse builds the booking confirmation from a persisted
// appointment with resolved doctor and patient records.
func NewBookedSlotResponse(appt *models.Appointment) *BookedSlotResponse {
	resp := &BookedSlotResponse{
		AppointmentID: appt.ID,
		DoctorName:    "Unknown",
		PatientName:   "Unknown",
		StartTime:     appt.StartTime,
		EndTime:       appt.EndTime,
	}
	if appt.Doctor != nil {
		resp.DoctorName = appt.Doctor.Name
	}
	if appt.Patient != nil {
		resp.PatientName = appt.Patient.Name
	}
	return resp
}
