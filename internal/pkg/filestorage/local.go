package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/ycelik/clinicore/internal/pkg/logger"
)

// LocalStorage saves files on the local filesystem. The on-disk layout is
// one directory per patient:
//
//	{basePath}/patients/{patientId}/{uuid}_{originalFileName}
//
// The uuid prefix deduplicates collisions while keeping the original name
// visible for display.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a LocalStorage rooted at basePath, creating the
// directory if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{basePath: basePath}, nil
}

// SavePatientFile stores an uploaded file and returns its relative path.
func (ls *LocalStorage) SavePatientFile(fileHeader *multipart.FileHeader, patientID *int64) (string, error) {
	if fileHeader == nil {
		return "", fmt.Errorf("no file provided")
	}

	original := sanitizeFileName(fileHeader.Filename)
	if original == "" {
		return "", fmt.Errorf("invalid file name %q", fileHeader.Filename)
	}

	subDir := "unassigned"
	if patientID != nil {
		subDir = fmt.Sprintf("%d", *patientID)
	}
	relDir := path.Join("patients", subDir)

	fullDir := filepath.Join(ls.basePath, filepath.FromSlash(relDir))
	if err := os.MkdirAll(fullDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create patient directory: %w", err)
	}

	storedName := uuid.New().String() + "_" + original
	dstPath := filepath.Join(fullDir, storedName)

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	relPath := path.Join(relDir, storedName)
	logger.Info().
		Str("filename", fileHeader.Filename).
		Str("storedAs", relPath).
		Msg("File saved")
	return relPath, nil
}

// FullPath resolves a stored relative path to an absolute path, rejecting
// anything that escapes the storage root.
func (ls *LocalStorage) FullPath(relPath string) (string, error) {
	cleaned := path.Clean("/" + relPath)
	if strings.Contains(relPath, "..") {
		return "", fmt.Errorf("invalid file path %q", relPath)
	}
	return filepath.Join(ls.basePath, filepath.FromSlash(strings.TrimPrefix(cleaned, "/"))), nil
}

// Exists reports whether the stored bytes are present on disk.
func (ls *LocalStorage) Exists(relPath string) bool {
	full, err := ls.FullPath(relPath)
	if err != nil {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && !info.IsDir()
}

// Delete removes the stored file. Missing files are treated as already
// deleted.
func (ls *LocalStorage) Delete(relPath string) error {
	full, err := ls.FullPath(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", relPath).Msg("File to delete does not exist")
			return nil
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// sanitizeFileName strips any directory component from an uploaded name.
func sanitizeFileName(name string) string {
	base := filepath.Base(filepath.ToSlash(name))
	if base == "." || base == ".." || base == "/" || strings.Contains(base, "..") {
		return ""
	}
	return base
}
