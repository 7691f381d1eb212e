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

// IDoctorRepository defines doctor persistence operations.
type IDoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Doctor, error)
	GetAll(ctx context.Context) ([]*models.Doctor, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, doctor *models.Doctor) error
	Delete(ctx context.Context, id int64) error
}

// DoctorRepository is the pgx-backed IDoctorRepository.
type DoctorRepository struct {
	db *pgxpool.Pool
}

// NewDoctorRepository creates a new DoctorRepository
func NewDoctorRepository(db *pgxpool.Pool) *DoctorRepository {
	return &DoctorRepository{db: db}
}

const doctorColumns = `id, name, specialty, department, phone_number, status, created_at, updated_at`

// Create inserts a new doctor and returns its id.
func (r *DoctorRepository) Create(ctx context.Context, doctor *models.Doctor) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO doctors (name, specialty, department, phone_number, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		doctor.Name, doctor.Specialty, doctor.Department,
		doctor.PhoneNumber, doctor.Status).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating doctor: %w", err)
	}
	return id, nil
}

// GetByID retrieves a doctor by id.
func (r *DoctorRepository) GetByID(ctx context.Context, id int64) (*models.Doctor, error) {
	doctor := &models.Doctor{}
	err := r.db.QueryRow(ctx, `SELECT `+doctorColumns+` FROM doctors WHERE id = $1`, id).Scan(
		&doctor.ID, &doctor.Name, &doctor.Specialty, &doctor.Department,
		&doctor.PhoneNumber, &doctor.Status, &doctor.CreatedAt, &doctor.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDoctorNotFound
		}
		return nil, fmt.Errorf("error getting doctor: %w", err)
	}
	return doctor, nil
}

// GetAll retrieves all doctors.
func (r *DoctorRepository) GetAll(ctx context.Context) ([]*models.Doctor, error) {
	rows, err := r.db.Query(ctx, `SELECT `+doctorColumns+` FROM doctors ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing doctors: %w", err)
	}
	defer rows.Close()

	var doctors []*models.Doctor
	for rows.Next() {
		doctor := &models.Doctor{}
		if err := rows.Scan(
			&doctor.ID, &doctor.Name, &doctor.Specialty, &doctor.Department,
			&doctor.PhoneNumber, &doctor.Status, &doctor.CreatedAt, &doctor.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning doctor: %w", err)
		}
		doctors = append(doctors, doctor)
	}
	return doctors, rows.Err()
}

// Exists checks whether a doctor id resolves to a record.
func (r *DoctorRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM doctors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking doctor: %w", err)
	}
	return exists, nil
}

// Update rewrites a doctor record.
func (r *DoctorRepository) Update(ctx context.Context, doctor *models.Doctor) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE doctors
		SET name = $1, specialty = $2, department = $3, phone_number = $4,
		    status = $5, updated_at = CURRENT_TIMESTAMP
		WHERE id = $6`,
		doctor.Name, doctor.Specialty, doctor.Department, doctor.PhoneNumber,
		doctor.Status, doctor.ID)
	if err != nil {
		return fmt.Errorf("error updating doctor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDoctorNotFound
	}
	return nil
}

// Delete removes a doctor record.
func (r *DoctorRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting doctor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDoctorNotFound
	}
	return nil
}
