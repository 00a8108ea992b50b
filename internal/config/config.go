package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DatabaseOptions struct {
	Driver     string `env:"DB_DRIVER" envDefault:"postgres"`
	Host       string `env:"DB_HOST" envDefault:"localhost"`
	Port       string `env:"DB_PORT" envDefault:"5432"`
	User       string `env:"DB_USER" envDefault:"postgres"`
	Password   string `env:"DB_PASSWORD" envDefault:"password"`
	Name       string `env:"DB_NAME" envDefault:"pkrms"`
	SSLMode    string `env:"DB_SSLMODE" envDefault:"disable"`
	TimeZone   string `env:"DB_TIMEZONE" envDefault:"UTC"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"pkrms.db"`
	// LinkLocks serialises writes to one link with advisory locks (postgres only).
	LinkLocks bool `env:"LINK_LOCKS" envDefault:"true"`
}

// DSN builds the connection string for the configured driver.
func (d DatabaseOptions) DSN() string {
	if d.Driver == DriverSQLite {
		return d.SQLitePath
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode, d.TimeZone,
	)
}

type LogOptions struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Path   string `env:"LOG_PATH" envDefault:"./logs/app.log"`
	Stdout bool   `env:"LOG_STDOUT" envDefault:"true"`
}

type Config struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	CORSOrigins    []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://127.0.0.1:3000"`
	MaxBodyBytes   int64    `env:"MAX_BODY_BYTES" envDefault:"67108864"`
	MetricsEnabled bool     `env:"METRICS_ENABLED" envDefault:"true"`

	Database DatabaseOptions
	Log      LogOptions
}

// Load reads .env files when present, then the environment.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env files: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.Database.Driver)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", c.MaxBodyBytes)
	}
	return nil
}
