package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes relevant to this application.
const (
	uniqueViolation    = "23505"
	exclusionViolation = "23P01"
)

// IsUniqueViolation checks if the error is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// IsExclusionViolation checks if the error is an exclusion constraint
// violation. The appointment tables use gist exclusion constraints on
// (doctor_id, timerange) and (patient_id, timerange), so a concurrent insert
// that slips past the in-transaction overlap check still fails with 23P01.
func IsExclusionViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == exclusionViolation
}
