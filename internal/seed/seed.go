// Package seed creates default records on a fresh database.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ycelik/clinicore/internal/app/models"
	"github.com/ycelik/clinicore/internal/pkg/auth"
	"github.com/ycelik/clinicore/internal/pkg/logger"
)

// CreateDefaultData inserts the initial admin account plus a demo doctor and
// patient when the tables are empty. Running it twice is a no-op.
func CreateDefaultData(ctx context.Context, pool *pgxpool.Pool) error {
	if err := seedAdmin(ctx, pool); err != nil {
		return err
	}
	if err := seedDemoRecords(ctx, pool); err != nil {
		return err
	}
	return nil
}

func seedAdmin(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE role = $1`, models.RoleAdmin).Scan(&count); err != nil {
		return fmt.Errorf("failed to count admin users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := auth.HashPassword("admin")
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO users (user_name, password, role) VALUES ($1, $2, $3)`,
		"admin", hashed, models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	logger.Info().Msg("Default admin account created (username: admin)")
	logger.Warn().Msg("Change the default admin password before exposing this server")
	return nil
}

func seedDemoRecords(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM doctors`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count doctors: %w", err)
	}
	if count > 0 {
		return nil
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO doctors (name, specialty, department, phone_number, status)
		 VALUES ($1, $2, $3, $4, $5)`,
		"Dr. Ayse Demir", "Cardiology", "Internal Medicine", "+90 555 000 0001", models.DoctorOnline)
	if err != nil {
		return fmt.Errorf("failed to create demo doctor: %w", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO patients (name, date_of_birth, gender, phone_number)
		 VALUES ($1, $2, $3, $4)`,
		"Mehmet Yilmaz", time.Date(1985, 3, 14, 0, 0, 0, 0, time.UTC), "Male", "+90 555 000 0002")
	if err != nil {
		return fmt.Errorf("failed to create demo patient: %w", err)
	}

	logger.Info().Msg("Demo doctor and patient created")
	return nil
}
