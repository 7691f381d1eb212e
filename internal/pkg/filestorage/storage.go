package filestorage

import (
	"mime/multipart"
)

// Storage defines the interface for medical file storage operations.
type Storage interface {
	// SavePatientFile stores an uploaded file under the patient's directory
	// and returns the relative path recorded in the metadata row. A nil
	// patientID stores the file in the unassigned area.
	SavePatientFile(fileHeader *multipart.FileHeader, patientID *int64) (string, error)

	// FullPath resolves a stored relative path to an absolute path on disk.
	FullPath(relPath string) (string, error)

	// Exists reports whether the bytes for a stored path are present.
	Exists(relPath string) bool

	// Delete removes a stored file. Deleting a missing file is not an error.
	Delete(relPath string) error
}
