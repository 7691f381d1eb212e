package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all repository instances.
type Repositories struct {
	User        IUserRepository
	Patient     IPatientRepository
	Doctor      IDoctorRepository
	Staff       IStaffRepository
	Appointment IAppointmentRepository
	File        IFileRepository
}

// NewRepositories creates all repositories backed by the given pool.
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:        NewUserRepository(pool),
		Patient:     NewPatientRepository(pool),
		Doctor:      NewDoctorRepository(pool),
		Staff:       NewStaffRepository(pool),
		Appointment: NewAppointmentRepository(pool),
		File:        NewFileRepository(pool),
	}
}
