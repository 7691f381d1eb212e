package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeFileHeader builds a real multipart.FileHeader from an in-memory upload.
func makeFileHeader(t *testing.T, fileName, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["file"][0]
}

func TestSavePatientFile(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	patientID := int64(5)
	relPath, err := storage.SavePatientFile(makeFileHeader(t, "scan.pdf", "pdf-bytes"), &patientID)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(relPath, "patients/5/"))
	assert.True(t, strings.HasSuffix(relPath, "_scan.pdf"))
	assert.True(t, storage.Exists(relPath))

	full, err := storage.FullPath(relPath)
	require.NoError(t, err)
	content, err := os.ReadFile(full)
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(content))
}

func TestSavePatientFileUnassigned(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	relPath, err := storage.SavePatientFile(makeFileHeader(t, "note.docx", "doc"), nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(relPath, "patients/unassigned/"))
}

func TestSavePatientFileNameCollision(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	patientID := int64(5)
	first, err := storage.SavePatientFile(makeFileHeader(t, "scan.pdf", "a"), &patientID)
	require.NoError(t, err)
	second, err := storage.SavePatientFile(makeFileHeader(t, "scan.pdf", "b"), &patientID)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, storage.Exists(first))
	assert.True(t, storage.Exists(second))
}

func TestFullPathRejectsTraversal(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = storage.FullPath("../../../etc/passwd")
	assert.Error(t, err)

	_, err = storage.FullPath("patients/5/../../secret")
	assert.Error(t, err)
}

func TestDeleteMissingFileIsNoop(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, storage.Delete("patients/5/nope.pdf"))
}

func TestDeleteRemovesFile(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir)
	require.NoError(t, err)

	patientID := int64(5)
	relPath, err := storage.SavePatientFile(makeFileHeader(t, "scan.pdf", "x"), &patientID)
	require.NoError(t, err)

	require.NoError(t, storage.Delete(relPath))
	assert.False(t, storage.Exists(relPath))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(relPath)))
	assert.True(t, os.IsNotExist(err))
}
