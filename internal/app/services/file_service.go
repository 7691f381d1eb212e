package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/ycelik/clinicore/internal/app/auth"
	"github.com/ycelik/clinicore/internal/app/models"
	"github.com/ycelik/clinicore/internal/app/models/dto"
	"github.com/ycelik/clinicore/internal/app/repositories"
	"github.com/ycelik/clinicore/internal/pkg/apperrors"
	"github.com/ycelik/clinicore/internal/pkg/filestorage"
	"github.com/ycelik/clinicore/internal/pkg/logger"
)

// MaxFileSize is the upload size ceiling (1 GB).
const MaxFileSize = 1 << 30

// allowedExtensions whitelists upload file types by extension,
// case-insensitively.
var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".png":  {},
	".pdf":  {},
	".docx": {},
}

// FileService handles medical file uploads, retrieval, and the ownership
// gate in front of them.
type FileService struct {
	fileRepo    repositories.IFileRepository
	patientRepo repositories.IPatientRepository
	storage     filestorage.Storage
}

// NewFileService creates a new FileService
func NewFileService(fileRepo repositories.IFileRepository, patientRepo repositories.IPatientRepository, storage filestorage.Storage) *FileService {
	return &FileService{
		fileRepo:    fileRepo,
		patientRepo: patientRepo,
		storage:     storage,
	}
}

// Upload stores a file for a patient. Authorization runs before any content
// validation: a caller with no right to the patient learns nothing about
// which file types or sizes the server accepts.
func (s *FileService) Upload(ctx context.Context, caller *auth.Identity, fileHeader *multipart.FileHeader, patientID *int64) (*models.MedicalFile, error) {
	if !auth.CanAccessPatient(caller, patientID) {
		return nil, apperrors.NewForbiddenError("you do not have access to this patient's files")
	}

	if err := validateUpload(fileHeader); err != nil {
		return nil, err
	}

	if patientID != nil {
		exists, err := s.patientRepo.Exists(ctx, *patientID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.NewNotFoundError(apperrors.ErrPatientNotFound,
				"patient %d does not exist", *patientID)
		}
	}

	relPath, err := s.storage.SavePatientFile(fileHeader, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	contentType := fileHeader.Header.Get("Content-Type")
	file := &models.MedicalFile{
		FileName:  fileHeader.Filename,
		FilePath:  relPath,
		Size:      fileHeader.Size,
		PatientID: patientID,
	}
	if contentType != "" {
		file.ContentType = &contentType
	}

	id, err := s.fileRepo.Create(ctx, file)
	if err != nil {
		// Roll back the bytes so a failed insert leaves no orphan on disk.
		if rmErr := s.storage.Delete(relPath); rmErr != nil {
			logger.Warn().Err(rmErr).Str("path", relPath).Msg("Failed to remove orphaned upload")
		}
		return nil, err
	}
	file.ID = id

	logger.Info().Int64("fileId", id).Str("fileName", file.FileName).Int64("size", file.Size).Msg("File uploaded")
	return s.fileRepo.GetByID(ctx, id)
}

// Fetch resolves a file for download or preview after the ownership check.
// A missing metadata row is ErrFileNotFound; a row whose bytes are gone from
// disk is ErrPhysicalFileMissing, a server-side fault.
func (s *FileService) Fetch(ctx context.Context, caller *auth.Identity, id int64) (*models.MedicalFile, string, error) {
	file, err := s.fileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	if !auth.CanAccessPatient(caller, file.PatientID) {
		return nil, "", apperrors.NewForbiddenError("you do not have access to this patient's files")
	}

	if !s.storage.Exists(file.FilePath) {
		logger.Error().Int64("fileId", id).Str("path", file.FilePath).Msg("File metadata exists but bytes are missing")
		return nil, "", apperrors.ErrPhysicalFileMissing
	}

	fullPath, err := s.storage.FullPath(file.FilePath)
	if err != nil {
		return nil, "", err
	}
	return file, fullPath, nil
}

// GetInfo returns file metadata after the ownership check.
func (s *FileService) GetInfo(ctx context.Context, caller *auth.Identity, id int64) (*models.MedicalFile, error) {
	file, err := s.fileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !auth.CanAccessPatient(caller, file.PatientID) {
		return nil, apperrors.NewForbiddenError("you do not have access to this patient's files")
	}
	return file, nil
}

// ListByPatient returns all files attached to a patient after the ownership
// check.
func (s *FileService) ListByPatient(ctx context.Context, caller *auth.Identity, patientID int64) ([]*models.MedicalFile, error) {
	if !auth.CanAccessPatient(caller, &patientID) {
		return nil, apperrors.NewForbiddenError("you do not have access to this patient's files")
	}

	exists, err := s.patientRepo.Exists(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewNotFoundError(apperrors.ErrPatientNotFound,
			"patient %d does not exist", patientID)
	}

	return s.fileRepo.GetByPatientID(ctx, patientID)
}

// ListAll returns every file on record. Only callers who can see any
// patient's files qualify; a patient-bound account is refused.
func (s *FileService) ListAll(ctx context.Context, caller *auth.Identity) ([]*models.MedicalFile, error) {
	if !auth.CanAccessPatient(caller, nil) {
		return nil, apperrors.NewForbiddenError("you do not have access to the file archive")
	}
	return s.fileRepo.GetAll(ctx)
}

// UpdateMetadata renames a file or reassigns it to a patient. The caller
// must have access to both the current and the target patient.
func (s *FileService) UpdateMetadata(ctx context.Context, caller *auth.Identity, id int64, req *dto.FileUpdateRequest) (*models.MedicalFile, error) {
	file, err := s.fileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !auth.CanAccessPatient(caller, file.PatientID) || !auth.CanAccessPatient(caller, req.PatientID) {
		return nil, apperrors.NewForbiddenError("you do not have access to this patient's files")
	}

	if req.PatientID != nil {
		exists, err := s.patientRepo.Exists(ctx, *req.PatientID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.NewNotFoundError(apperrors.ErrPatientNotFound,
				"patient %d does not exist", *req.PatientID)
		}
	}

	file.FileName = req.FileName
	file.PatientID = req.PatientID

	if err := s.fileRepo.Update(ctx, file); err != nil {
		return nil, err
	}
	return s.fileRepo.GetByID(ctx, id)
}

// Delete removes a file's metadata row and its bytes after the ownership
// check. Missing bytes do not block deletion of the row.
func (s *FileService) Delete(ctx context.Context, caller *auth.Identity, id int64) error {
	file, err := s.fileRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CanAccessPatient(caller, file.PatientID) {
		return apperrors.NewForbiddenError("you do not have access to this patient's files")
	}

	if err := s.fileRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.storage.Delete(file.FilePath); err != nil {
		logger.Warn().Err(err).Int64("fileId", id).Str("path", file.FilePath).Msg("Failed to remove file bytes")
	}

	logger.Info().Int64("fileId", id).Msg("File deleted")
	return nil
}

// validateUpload enforces the extension whitelist and the size ceiling,
// collecting every violation.
func validateUpload(fileHeader *multipart.FileHeader) error {
	validationErrs := apperrors.NewValidationErrors()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		validationErrs.Add("file", fmt.Sprintf("file type %q is not allowed; accepted: .jpg, .png, .pdf, .docx", ext))
	}
	if fileHeader.Size <= 0 {
		validationErrs.Add("file", "file is empty")
	} else if fileHeader.Size > MaxFileSize {
		validationErrs.Add("file", "file exceeds the 1GB size limit")
	}

	if validationErrs.HasErrors() {
		return validationErrs
	}
	return nil
}
