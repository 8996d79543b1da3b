package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contentsrv.toml")
	data := `
[server]
address = ":9000"
handle_cors = true

[database]
host = "db.internal"
port = 5433
dbname = "content"
run_migrations = true

[auth]
jwt_secret = "file-secret"
token_ttl = "2h"
issuer = "contentsrv-test"

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	require.NoError(t, Load(path))
	defer LoadDefault()

	c := Config()
	assert.Equal(t, ":9000", c.Server.Address)
	assert.True(t, c.Server.HandleCORS)
	assert.Equal(t, "db.internal", c.Database.Host)
	assert.Equal(t, 5433, c.Database.Port)
	assert.True(t, c.Database.RunMigrations)
	assert.Equal(t, "file-secret", c.Auth.JWTSecret)
	assert.Equal(t, Duration(2*time.Hour), c.Auth.TokenTTL)
	assert.Equal(t, "debug", c.Log.Level)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@h:5432/db")
	t.Setenv("JWT_SECRET_KEY", "env-secret")

	LoadDefault()
	defer LoadDefault()

	c := Config()
	assert.Equal(t, "postgres://u:p@h:5432/db", c.Database.ConnString())
	assert.Equal(t, "env-secret", c.Auth.JWTSecret)
}

func TestConnStringFromFields(t *testing.T) {
	d := &DatabaseConfig{
		Host:    "localhost",
		Port:    5432,
		User:    "contentsrv",
		DBName:  "contentsrv",
		SSLMode: "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=contentsrv password= dbname=contentsrv sslmode=disable",
		d.ConnString())
}

func TestLoadMissingFile(t *testing.T) {
	assert.Error(t, Load("/nonexistent/contentsrv.toml"))
}
