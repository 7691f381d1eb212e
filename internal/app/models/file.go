package models

import "time"

// MedicalFile represents an uploaded document's metadata, based on the
// 'files' table. PatientID links the file to the patient who owns it; a file
// with no patient is only visible to privileged roles. The bytes live on
// disk at FilePath under the configured storage root.
type MedicalFile struct {
	ID          int64     `json:"id" db:"id"`
	FileName    string    `json:"fileName" db:"file_name"`
	FilePath    string    `json:"filePath" db:"file_path"`
	Size        int64     `json:"size" db:"size"`
	UploadedAt  time.Time `json:"uploadedAt" db:"uploaded_at"`
	PatientID   *int64    `json:"patientId,omitempty" db:"patient_id"`
	ContentType *string   `json:"contentType,omitempty" db:"content_type"`
}
