package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ycelik/clinicore/internal/app/models"
	"github.com/ycelik/clinicore/internal/db"
	"github.com/ycelik/clinicore/internal/pkg/apperrors"
	"github.com/ycelik/clinicore/internal/pkg/dberrors"
)

// IAppointmentRepository defines appointment persistence operations.
type IAppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Appointment, error)
	GetAll(ctx context.Context) ([]*models.Appointment, error)
	HasDoctorOverlap(ctx context.Context, doctorID int64, start, end time.Time, excludeID int64) (bool, error)
	HasPatientOverlap(ctx context.Context, patientID int64, start, end time.Time, excludeID int64) (bool, error)
	Update(ctx context.Context, appt *models.Appointment) error
	Delete(ctx context.Context, id int64) error
}

// AppointmentRepository is the pgx-backed IAppointmentRepository.
type AppointmentRepository struct {
	db *pgxpool.Pool
}

// NewAppointmentRepository creates a new AppointmentRepository
func NewAppointmentRepository(db *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// Half-open interval overlap over non-canceled rows: a slot [start, end)
// conflicts when start < existing.end AND end > existing.start. Touching
// endpoints do not conflict.
const overlapQuery = `
	SELECT EXISTS(
		SELECT 1 FROM appointments
		WHERE %s = $1
		  AND status <> 'Canceled'
		  AND id <> $2
		  AND start_time < $4 AND end_time > $3
	)`

// HasDoctorOverlap checks the doctor's calendar for a conflicting booking.
// excludeID skips the appointment being updated; pass 0 for creates.
func (r *AppointmentRepository) HasDoctorOverlap(ctx context.Context, doctorID int64, start, end time.Time, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, fmt.Sprintf(overlapQuery, "doctor_id"),
		doctorID, excludeID, start, end).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking doctor overlap: %w", err)
	}
	return exists, nil
}

// HasPatientOverlap checks the patient's calendar for a conflicting booking.
func (r *AppointmentRepository) HasPatientOverlap(ctx context.Context, patientID int64, start, end time.Time, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, fmt.Sprintf(overlapQuery, "patient_id"),
		patientID, excludeID, start, end).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking patient overlap: %w", err)
	}
	return exists, nil
}

// Create inserts an appointment. The overlap check runs again inside the
// insert transaction, and the schema's exclusion constraints catch anything
// a concurrent writer slips past it, so check-then-insert cannot double-book.
func (r *AppointmentRepository) Create(ctx context.Context, appt *models.Appointment) (int64, error) {
	var id int64
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := checkOverlapsTx(ctx, tx, appt, 0); err != nil {
			return err
		}
		return tx.QueryRow(ctx, `
			INSERT INTO appointments (doctor_id, patient_id, date, start_time, end_time, description, location, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id`,
			appt.DoctorID, appt.PatientID, appt.Date, appt.StartTime, appt.EndTime,
			appt.Description, appt.Location, appt.Status).Scan(&id)
	})
	if err != nil {
		if dberrors.IsExclusionViolation(err) {
			return 0, apperrors.ErrAppointmentConflict
		}
		return 0, err
	}
	return id, nil
}

// Update rewrites an appointment, re-running the overlap checks in the same
// transaction with the row itself excluded.
func (r *AppointmentRepository) Update(ctx context.Context, appt *models.Appointment) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := checkOverlapsTx(ctx, tx, appt, appt.ID); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `
			UPDATE appointments
			SET doctor_id = $1, patient_id = $2, date = $3, start_time = $4, end_time = $5,
			    description = $6, location = $7, status = $8, updated_at = CURRENT_TIMESTAMP
			WHERE id = $9`,
			appt.DoctorID, appt.PatientID, appt.Date, appt.StartTime, appt.EndTime,
			appt.Description, appt.Location, appt.Status, appt.ID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrAppointmentNotFound
		}
		return nil
	})
	if err != nil {
		if dberrors.IsExclusionViolation(err) {
			return apperrors.ErrAppointmentConflict
		}
		return err
	}
	return nil
}

// checkOverlapsTx re-runs both overlap checks inside the write transaction.
// Canceled appointments do not block a slot, including the one being saved.
func checkOverlapsTx(ctx context.Context, tx pgx.Tx, appt *models.Appointment, excludeID int64) error {
	if !appt.Status.Blocks() {
		return nil
	}
	for _, check := range []struct {
		column string
		id     int64
	}{
		{"doctor_id", appt.DoctorID},
		{"patient_id", appt.PatientID},
	} {
		var exists bool
		err := tx.QueryRow(ctx, fmt.Sprintf(overlapQuery, check.column),
			check.id, excludeID, appt.StartTime, appt.EndTime).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking %s overlap: %w", check.column, err)
		}
		if exists {
			return apperrors.ErrAppointmentConflict
		}
	}
	return nil
}

const appointmentSelect = `
	SELECT a.id, a.doctor_id, a.patient_id, a.date, a.start_time, a.end_time,
	       a.description, a.location, a.status, a.created_at, a.updated_at,
	       d.id, d.name, d.specialty, d.department, d.phone_number, d.status, d.created_at, d.updated_at,
	       p.id, p.name, p.date_of_birth, p.gender, p.phone_number, p.email, p.medical_record, p.created_at, p.updated_at
	FROM appointments a
	JOIN doctors d ON d.id = a.doctor_id
	JOIN patients p ON p.id = a.patient_id`

func scanAppointment(row pgx.Row) (*models.Appointment, error) {
	appt := &models.Appointment{
		Doctor:  &models.Doctor{},
		Patient: &models.Patient{},
	}
	err := row.Scan(
		&appt.ID, &appt.DoctorID, &appt.PatientID, &appt.Date, &appt.StartTime, &appt.EndTime,
		&appt.Description, &appt.Location, &appt.Status, &appt.CreatedAt, &appt.UpdatedAt,
		&appt.Doctor.ID, &appt.Doctor.Name, &appt.Doctor.Specialty, &appt.Doctor.Department,
		&appt.Doctor.PhoneNumber, &appt.Doctor.Status, &appt.Doctor.CreatedAt, &appt.Doctor.UpdatedAt,
		&appt.Patient.ID, &appt.Patient.Name, &appt.Patient.DateOfBirth, &appt.Patient.Gender,
		&appt.Patient.PhoneNumber, &appt.Patient.Email, &appt.Patient.MedicalRecord,
		&appt.Patient.CreatedAt, &appt.Patient.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("error scanning appointment: %w", err)
	}
	return appt, nil
}

// GetByID retrieves an appointment with its doctor and patient resolved.
func (r *AppointmentRepository) GetByID(ctx context.Context, id int64) (*models.Appointment, error) {
	row := r.db.QueryRow(ctx, appointmentSelect+` WHERE a.id = $1`, id)
	return scanAppointment(row)
}

// GetAll retrieves all appointments with doctors and patients resolved.
func (r *AppointmentRepository) GetAll(ctx context.Context) ([]*models.Appointment, error) {
	rows, err := r.db.Query(ctx, appointmentSelect+` ORDER BY a.start_time`)
	if err != nil {
		return nil, fmt.Errorf("error listing appointments: %w", err)
	}
	defer rows.Close()

	var appts []*models.Appointment
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appts = append(appts, appt)
	}
	return appts, rows.Err()
}

// Delete removes an appointment.
func (r *AppointmentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting appointment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAppointmentNotFound
	}
	return nil
}
