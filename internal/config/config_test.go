package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
jwt:
  secret: "test-secret"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "uploads", cfg.Server.StoragePath)
	assert.Equal(t, "168h", cfg.JWT.TokenExpiration)
	assert.Equal(t, "clinicore.app", cfg.JWT.Issuer)
	assert.Equal(t, "clinicore.clients", cfg.JWT.Audience)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NotEmpty(t, cfg.CORS.AllowedOrigins)
}

func TestLoadConfigFileOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
  mode: "production"
jwt:
  secret: "test-secret"
  token_expiration: "24h"
database:
  dbname: "clinic_test"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Mode)
	assert.Equal(t, "24h", cfg.JWT.TokenExpiration)
	assert.Equal(t, "clinic_test", cfg.Database.DBName)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
jwt:
  secret: "file-secret"
`)

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "8080"
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret")
}

func TestLoadConfigRejectsBadDuration(t *testing.T) {
	path := writeConfig(t, `
jwt:
  secret: "test-secret"
  token_expiration: "one week"
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestGetPostgresConnectionString(t *testing.T) {
	path := writeConfig(t, `
jwt:
  secret: "test-secret"
database:
  host: "db.internal"
  port: "5433"
  user: "clinic"
  password: "pw"
  dbname: "clinicore"
  sslmode: "require"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t,
		"postgres://clinic:pw@db.internal:5433/clinicore?sslmode=require",
		cfg.GetPostgresConnectionString())
}
