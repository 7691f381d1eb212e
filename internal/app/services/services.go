package services

import (
	"github.com/ycelik/clinicore/internal/app/repositories"
	"github.com/ycelik/clinicore/internal/pkg/auth"
	"github.com/ycelik/clinicore/internal/pkg/filestorage"
)

// Services holds all service instances.
type Services struct {
	Auth        *AuthService
	User        *UserService
	Patient     *PatientService
	Doctor      *DoctorService
	Staff       *StaffService
	Appointment *AppointmentService
	File        *FileService
}

// NewServices wires every service to its repositories.
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, storage filestorage.Storage) *Services {
	return &Services{
		Auth:        NewAuthService(repos.User, repos.Patient, jwtService),
		User:        NewUserService(repos.User, repos.Patient),
		Patient:     NewPatientService(repos.Patient),
		Doctor:      NewDoctorService(repos.Doctor),
		Staff:       NewStaffService(repos.Staff),
		Appointment: NewAppointmentService(repos.Appointment, repos.Doctor, repos.Patient),
		File:        NewFileService(repos.File, repos.Patient, storage),
	}
}
