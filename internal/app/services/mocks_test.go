package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/ycelik/clinicore/internal/app/models"
)

// MockUserRepository is a mock implementation of IUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUserName(ctx context.Context, userName string) (*models.User, error) {
	args := m.Called(ctx, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UserNameExists(ctx context.Context, userName string) (bool, error) {
	args := m.Called(ctx, userName)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPatientRepository is a mock implementation of IPatientRepository
type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *models.Patient) (int64, error) {
	args := m.Called(ctx, patient)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPatientRepository) GetByID(ctx context.Context, id int64) (*models.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) GetAll(ctx context.Context) ([]*models.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDoctorRepository is a mock implementation of IDoctorRepository
type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) Create(ctx context.Context, doctor *models.Doctor) (int64, error) {
	args := m.Called(ctx, doctor)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDoctorRepository) GetByID(ctx context.Context, id int64) (*models.Doctor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) GetAll(ctx context.Context) ([]*models.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockDoctorRepository) Update(ctx context.Context, doctor *models.Doctor) error {
	args := m.Called(ctx, doctor)
	return args.Error(0)
}

func (m *MockDoctorRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAppointmentRepository is a mock implementation of IAppointmentRepository
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appt *models.Appointment) (int64, error) {
	args := m.Called(ctx, appt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentRepository) GetByID(ctx context.Context, id int64) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) GetAll(ctx context.Context) ([]*models.Appointment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) HasDoctorOverlap(ctx context.Context, doctorID int64, start, end time.Time, excludeID int64) (bool, error) {
	args := m.Called(ctx, doctorID, start, end, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAppointmentRepository) HasPatientOverlap(ctx context.Context, patientID int64, start, end time.Time, excludeID int64) (bool, error) {
	args := m.Called(ctx, patientID, start, end, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAppointmentRepository) Update(ctx context.Context, appt *models.Appointment) error {
	args := m.Called(ctx, appt)
	return args.Error(0)
}

func (m *MockAppointmentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFileRepository is a mock implementation of IFileRepository
type MockFileRepository struct {
	mock.Mock
}

func (m *MockFileRepository) Create(ctx context.Context, file *models.MedicalFile) (int64, error) {
	args := m.Called(ctx, file)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFileRepository) GetByID(ctx context.Context, id int64) (*models.MedicalFile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MedicalFile), args.Error(1)
}

func (m *MockFileRepository) GetByPatientID(ctx context.Context, patientID int64) ([]*models.MedicalFile, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MedicalFile), args.Error(1)
}

func (m *MockFileRepository) GetAll(ctx context.Context) ([]*models.MedicalFile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MedicalFile), args.Error(1)
}

func (m *MockFileRepository) Update(ctx context.Context, file *models.MedicalFile) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockFileRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockStorage is a mock implementation of filestorage.Storage
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) SavePatientFile(fileHeader *multipart.FileHeader, patientID *int64) (string, error) {
	args := m.Called(fileHeader, patientID)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) FullPath(relPath string) (string, error) {
	args := m.Called(relPath)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) Exists(relPath string) bool {
	args := m.Called(relPath)
	return args.Bool(0)
}

func (m *MockStorage) Delete(relPath string) error {
	args := m.Called(relPath)
	return args.Error(0)
}
