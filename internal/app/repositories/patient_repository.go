package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ycelik/clinicore/internal/app/models"
	"github.com/ycelik/clinicore/internal/pkg/apperrors"
)

// IPatientRepository defines patient persistence operations.
type IPatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Patient, error)
	GetAll(ctx context.Context) ([]*models.Patient, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, patient *models.Patient) error
	Delete(ctx context.Context, id int64) error
}

// PatientRepository is the pgx-backed IPatientRepository.
type PatientRepository struct {
	db *pgxpool.Pool
}

// NewPatientRepository creates a new PatientRepository
func NewPatientRepository(db *pgxpool.Pool) *PatientRepository {
	return &PatientRepository{db: db}
}

const patientColumns = `id, name, date_of_birth, gender, phone_number, email, medical_record, created_at, updated_at`

// Create inserts a new patient and returns its id.
func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO patients (name, date_of_birth, gender, phone_number, email, medical_record)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		patient.Name, patient.DateOfBirth, patient.Gender,
		patient.PhoneNumber, patient.Email, patient.MedicalRecord).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating patient: %w", err)
	}
	return id, nil
}

// GetByID retrieves a patient by id.
func (r *PatientRepository) GetByID(ctx context.Context, id int64) (*models.Patient, error) {
	patient := &models.Patient{}
	err := r.db.QueryRow(ctx, `SELECT `+patientColumns+` FROM patients WHERE id = $1`, id).Scan(
		&patient.ID, &patient.Name, &patient.DateOfBirth, &patient.Gender,
		&patient.PhoneNumber, &patient.Email, &patient.MedicalRecord,
		&patient.CreatedAt, &patient.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPatientNotFound
		}
		return nil, fmt.Errorf("error getting patient: %w", err)
	}
	return patient, nil
}

// GetAll retrieves all patients.
func (r *PatientRepository) GetAll(ctx context.Context) ([]*models.Patient, error) {
	rows, err := r.db.Query(ctx, `SELECT `+patientColumns+` FROM patients ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing patients: %w", err)
	}
	defer rows.Close()

	var patients []*models.Patient
	for rows.Next() {
		patient := &models.Patient{}
		if err := rows.Scan(
			&patient.ID, &patient.Name, &patient.DateOfBirth, &patient.Gender,
			&patient.PhoneNumber, &patient.Email, &patient.MedicalRecord,
			&patient.CreatedAt, &patient.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning patient: %w", err)
		}
		patients = append(patients, patient)
	}
	return patients, rows.Err()
}

// Exists checks whether a patient id resolves to a record.
func (r *PatientRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM patients WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking patient: %w", err)
	}
	return exists, nil
}

// Update rewrites a patient record.
func (r *PatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE patients
		SET name = $1, date_of_birth = $2, gender = $3, phone_number = $4,
		    email = $5, medical_record = $6, updated_at = CURRENT_TIMESTAMP
		WHERE id = $7`,
		patient.Name, patient.DateOfBirth, patient.Gender, patient.PhoneNumber,
		patient.Email, patient.MedicalRecord, patient.ID)
	if err != nil {
		return fmt.Errorf("error updating patient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPatientNotFound
	}
	return nil
}

// Delete removes a patient record.
func (r *PatientRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting patient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPatientNotFound
	}
	return nil
}
