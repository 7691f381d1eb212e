package dto

import (
	"time"

	"github.com/ycelik/clinicore/internal/app/models"
)

// FileInfoResponse is the public metadata view of a stored file. The
// on-disk path stays server-side.
type FileInfoResponse struct {
	ID          int64     `json:"id"`
	FileName    string    `json:"fileName"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploadedAt"`
	PatientID   *int64    `json:"patientId,omitempty"`
	ContentType *string   `json:"contentType,omitempty"`
}

// NewFileInfoResponse builds the public view of a file record.
func NewFileInfoResponse(f *models.MedicalFile) *FileInfoResponse {
	return &FileInfoResponse{
		ID:          f.ID,
		FileName:    f.FileName,
		Size:        f.Size,
		UploadedAt:  f.UploadedAt,
		PatientID:   f.PatientID,
		ContentType: f.ContentType,
	}
}

// NewFileInfoResponses maps a list of file records.
func NewFileInfoResponses(files []*models.MedicalFile) []*FileInfoResponse {
	out := make([]*FileInfoResponse, 0, len(files))
	for _, f := range files {
		out = append(out, NewFileInfoResponse(f))
	}
	return out
}

// FileUpdateRequest carries a metadata update for a stored file.
type FileUpdateRequest struct {
	FileName  string `json:"fileName" binding:"required,max=255"`
	PatientID *int64 `json:"patientId,omitempty"`
}
