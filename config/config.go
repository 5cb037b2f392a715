package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     int    `env:"PORT, default=4000"`
	GinMode  string `env:"GIN_MODE, default=release"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Database Database
}

type Database struct {
	Host     string `env:"DB_HOST, default=127.0.0.1"`
	Port     int    `env:"DB_PORT, default=5432"`
	User     string `env:"DB_USER, default=postgres"`
	Password string `env:"DB_PASSWORD"`
	// DB_PW is the variable name older deployments use.
	LegacyPassword string `env:"DB_PW"`
	Name           string `env:"DB_NAME, default=articles"`
	SSLMode        string `env:"DB_SSLMODE, default=disable"`

	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS, default=10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS, default=5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME, default=30m"`

	ConnectAttempts uint          `env:"DB_CONNECT_ATTEMPTS, default=5"`
	ConnectDelay    time.Duration `env:"DB_CONNECT_DELAY, default=3s"`
	SlowQuery       time.Duration `env:"DB_SLOW_QUERY, default=200ms"`
}

// DSN builds a libpq style connection string for the postgres driver.
func (d Database) DSN() string {
	password := d.Password
	if password == "" {
		password = d.LegacyPassword
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=UTC",
		d.Host, d.User, password, d.Name, d.Port, d.SSLMode)
}

// Load reads an optional .env file from the working directory and then
// fills Config from the environment. Real environment variables win over
// values from the file.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper(), ".env")
}

// LoadWith is Load with an explicit lookuper and dotenv files, mainly for tests.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper, dotenvFiles ...string) (*Config, error) {
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
		slog.Debug("loaded dotenv file", slog.String("file", file))
	}

	cfg := &Config{}
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	return cfg, nil
}
