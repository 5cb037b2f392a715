package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"articles_api/config"
)

// Connect opens the postgres pool described by cfg, retrying while the
// server is not reachable yet.
func Connect(ctx context.Context, cfg config.Database) (*gorm.DB, error) {
	return Open(ctx, postgres.Open(cfg.DSN()), cfg)
}

// Open opens a gorm handle on dialector and applies the pool limits from cfg.
func Open(ctx context.Context, dialector gorm.Dialector, cfg config.Database) (*gorm.DB, error) {
	// retry-go treats zero attempts as unlimited
	if cfg.ConnectAttempts == 0 {
		cfg.ConnectAttempts = 1
	}

	var db *gorm.DB
	err := retry.Do(
		func() error {
			var err error
			db, err = gorm.Open(dialector, &gorm.Config{
				Logger: newLogger(cfg.SlowQuery),
			})
			return err
		},
		retry.Context(ctx),
		retry.Attempts(cfg.ConnectAttempts),
		retry.Delay(cfg.ConnectDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.WarnContext(ctx, "failed to connect to database",
				slog.Uint64("attempt", uint64(n+1)),
				slog.Uint64("max_attempts", uint64(cfg.ConnectAttempts)),
				slog.Any("error", err))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", cfg.ConnectAttempts, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	slog.InfoContext(ctx, "connected to database", slog.String("dialect", db.Dialector.Name()))
	return db, nil
}

// Ping checks that the pool can still reach the database.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close releases every pooled connection.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func newLogger(slowThreshold time.Duration) logger.Interface {
	return logger.New(
		slog.NewLogLogger(slog.Default().Handler(), slog.LevelWarn),
		logger.Config{
			SlowThreshold:             slowThreshold,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
		},
	)
}
