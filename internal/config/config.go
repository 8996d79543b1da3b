// Package config loads the server configuration from a TOML file with
// environment overrides for anything secret or deployment specific.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type ServerConfig struct {
	Address    string `toml:"address"`
	HandleCORS bool   `toml:"handle_cors"`
}

type DatabaseConfig struct {
	Host           string `toml:"host"`
	Port           int    `toml:"port"`
	User           string `toml:"user"`
	Password       string `toml:"password"`
	DBName         string `toml:"dbname"`
	SSLMode        string `toml:"sslmode"`
	MaxConns       int    `toml:"max_conns"`
	MigrationsPath string `toml:"migrations_path"`
	RunMigrations  bool   `toml:"run_migrations"`

	// DSN, when set, takes precedence over the individual fields. The
	// DATABASE_URL environment variable overrides both.
	DSN string `toml:"dsn"`
}

type AuthConfig struct {
	// JWTSecret is the HS256 signing secret. Overridden by JWT_SECRET_KEY.
	JWTSecret string   `toml:"jwt_secret"`
	TokenTTL  Duration `toml:"token_ttl"`
	Issuer    string   `toml:"issuer"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Auth     AuthConfig     `toml:"auth"`
	Log      LogConfig      `toml:"log"`
}

// Duration parses TOML duration strings like "24h".
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

var cfg = defaultConfig()

func defaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Address: ":8190",
		},
		Database: DatabaseConfig{
			Host:           "localhost",
			Port:           5432,
			User:           "contentsrv",
			DBName:         "contentsrv",
			SSLMode:        "disable",
			MaxConns:       10,
			MigrationsPath: "migrations",
		},
		Auth: AuthConfig{
			TokenTTL: Duration(24 * time.Hour),
			Issuer:   "contentsrv",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Config returns the process configuration. Load must have been called
// first; otherwise the defaults (plus environment overrides) apply.
func Config() *AppConfig {
	return cfg
}

// Load reads the TOML file at path and applies environment overrides.
func Load(path string) error {
	c := defaultConfig()
	if path != "" {
		if _, err := toml.DecodeFile(path, c); err != nil {
			return fmt.Errorf("unable to load config %s: %w", path, err)
		}
	}
	applyEnv(c)
	cfg = c
	return nil
}

// LoadDefault resets the configuration to defaults plus environment
// overrides. Intended for tests and for running without a config file.
func LoadDefault() {
	c := defaultConfig()
	applyEnv(c)
	cfg = c
}

func applyEnv(c *AppConfig) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("JWT_SECRET_KEY"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("CONTENTSRV_ADDR"); v != "" {
		c.Server.Address = v
	}
	if v := os.Getenv("CONTENTSRV_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// ConnString returns the postgres connection string for the configured
// database.
func (d *DatabaseConfig) ConnString() string {
	if d.DSN != "" {
		return d.DSN
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}
