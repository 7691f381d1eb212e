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

// IFileRepository defines medical file metadata persistence operations.
type IFileRepository interface {
	Create(ctx context.Context, file *models.MedicalFile) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.MedicalFile, error)
	GetByPatientID(ctx context.Context, patientID int64) ([]*models.MedicalFile, error)
	GetAll(ctx context.Context) ([]*models.MedicalFile, error)
	Update(ctx context.Context, file *models.MedicalFile) error
	Delete(ctx context.Context, id int64) error
}

// FileRepository is the pgx-backed IFileRepository.
type FileRepository struct {
	db *pgxpool.Pool
}

// NewFileRepository creates a new FileRepository
func NewFileRepository(db *pgxpool.Pool) *FileRepository {
	return &FileRepository{db: db}
}

const fileColumns = `id, file_name, file_path, size, uploaded_at, patient_id, content_type`

func scanFile(row pgx.Row) (*models.MedicalFile, error) {
	file := &models.MedicalFile{}
	err := row.Scan(&file.ID, &file.FileName, &file.FilePath, &file.Size,
		&file.UploadedAt, &file.PatientID, &file.ContentType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFileNotFound
		}
		return nil, fmt.Errorf("error scanning file: %w", err)
	}
	return file, nil
}

// Create inserts file metadata and returns the new ID.
func (r *FileRepository) Create(ctx context.Context, file *models.MedicalFile) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO files (file_name, file_path, size, patient_id, content_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		file.FileName, file.FilePath, file.Size, file.PatientID, file.ContentType).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating file record: %w", err)
	}
	return id, nil
}

// GetByID retrieves file metadata by ID.
func (r *FileRepository) GetByID(ctx context.Context, id int64) (*models.MedicalFile, error) {
	row := r.db.QueryRow(ctx, `SELECT `+fileColumns+` FROM files WHERE id = $1`, id)
	return scanFile(row)
}

// GetByPatientID retrieves all files attached to a patient.
func (r *FileRepository) GetByPatientID(ctx context.Context, patientID int64) ([]*models.MedicalFile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+fileColumns+` FROM files WHERE patient_id = $1 ORDER BY uploaded_at DESC`, patientID)
	if err != nil {
		return nil, fmt.Errorf("error listing patient files: %w", err)
	}
	defer rows.Close()
	return collectFiles(rows)
}

// GetAll retrieves all file metadata.
func (r *FileRepository) GetAll(ctx context.Context) ([]*models.MedicalFile, error) {
	rows, err := r.db.Query(ctx, `SELECT `+fileColumns+` FROM files ORDER BY uploaded_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing files: %w", err)
	}
	defer rows.Close()
	return collectFiles(rows)
}

func collectFiles(rows pgx.Rows) ([]*models.MedicalFile, error) {
	var files []*models.MedicalFile
	for rows.Next() {
		file, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, rows.Err()
}

// Update rewrites file metadata.
func (r *FileRepository) Update(ctx context.Context, file *models.MedicalFile) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE files
		SET file_name = $1, file_path = $2, patient_id = $3
		WHERE id = $4`,
		file.FileName, file.FilePath, file.PatientID, file.ID)
	if err != nil {
		return fmt.Errorf("error updating file record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrFileNotFound
	}
	return nil
}

// Delete removes file metadata.
func (r *FileRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM files WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting file record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrFileNotFound
	}
	return nil
}
