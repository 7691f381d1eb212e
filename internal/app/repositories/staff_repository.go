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

// IStaffRepository defines staff persistence operations.
type IStaffRepository interface {
	Create(ctx context.Context, staff *models.Staff) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Staff, error)
	GetAll(ctx context.Context) ([]*models.Staff, error)
	Update(ctx context.Context, staff *models.Staff) error
	Delete(ctx context.Context, id int64) error
}

// StaffRepository is the pgx-backed IStaffRepository.
type StaffRepository struct {
	db *pgxpool.Pool
}

// NewStaffRepository creates a new StaffRepository
func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{db: db}
}

const staffColumns = `id, name, position, email, phone_number, created_at, updated_at`

// Create inserts a new staff member and returns its id.
func (r *StaffRepository) Create(ctx context.Context, staff *models.Staff) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO staff (name, position, email, phone_number)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		staff.Name, staff.Position, staff.Email, staff.PhoneNumber).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating staff member: %w", err)
	}
	return id, nil
}

// GetByID retrieves a staff member by id.
func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*models.Staff, error) {
	staff := &models.Staff{}
	err := r.db.QueryRow(ctx, `SELECT `+staffColumns+` FROM staff WHERE id = $1`, id).Scan(
		&staff.ID, &staff.Name, &staff.Position, &staff.Email,
		&staff.PhoneNumber, &staff.CreatedAt, &staff.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("error getting staff member: %w", err)
	}
	return staff, nil
}

// GetAll retrieves all staff members.
func (r *StaffRepository) GetAll(ctx context.Context) ([]*models.Staff, error) {
	rows, err := r.db.Query(ctx, `SELECT `+staffColumns+` FROM staff ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing staff: %w", err)
	}
	defer rows.Close()

	var members []*models.Staff
	for rows.Next() {
		staff := &models.Staff{}
		if err := rows.Scan(
			&staff.ID, &staff.Name, &staff.Position, &staff.Email,
			&staff.PhoneNumber, &staff.CreatedAt, &staff.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning staff member: %w", err)
		}
		members = append(members, staff)
	}
	return members, rows.Err()
}

// Update rewrites a staff record.
func (r *StaffRepository) Update(ctx context.Context, staff *models.Staff) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE staff
		SET name = $1, position = $2, email = $3, phone_number = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5`,
		staff.Name, staff.Position, staff.Email, staff.PhoneNumber, staff.ID)
	if err != nil {
		return fmt.Errorf("error updating staff member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStaffNotFound
	}
	return nil
}

// Delete removes a staff record.
func (r *StaffRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting staff member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStaffNotFound
	}
	return nil
}
