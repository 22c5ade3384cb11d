package postgres

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"cybershield.backend/internal/infrastructure/models"
	"cybershield.backend/pkg/logger"
)

// Open connects to PostgreSQL using GORM. The pool underneath pings
// connections before use so stale cloud connections are replaced instead of
// surfacing as request failures.
func Open(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
	})
}

// SchemaOptions controls the bounded startup retry loop
type SchemaOptions struct {
	MaxAttempts int
	RetryDelay  time.Duration
	// Migrate performs the idempotent schema creation for one attempt.
	// Defaults to AutoMigrate over all known models.
	Migrate func(db *gorm.DB) error
}

// DefaultSchemaOptions returns the production retry settings: five attempts
// two seconds apart.
func DefaultSchemaOptions() SchemaOptions {
	return SchemaOptions{
		MaxAttempts: 5,
		RetryDelay:  2 * time.Second,
	}
}

// AutoMigrate creates schema objects for all persisted models if absent
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.ScanReport{})
}

// InitSchema runs schema creation against the live connection, retrying a
// bounded number of times before giving up. It runs exactly once per process
// lifetime, before any request is accepted; the last error is returned
// verbatim on exhaustion.
func InitSchema(ctx context.Context, db *gorm.DB, opts SchemaOptions) error {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 1
	}
	if opts.Migrate == nil {
		opts.Migrate = AutoMigrate
	}

	var lastErr error
	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		logger.Info(ctx, "Attempting database schema initialization",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", opts.MaxAttempts),
		)

		if lastErr = opts.Migrate(db); lastErr == nil {
			logger.Info(ctx, "Database schema ready")
			return nil
		}

		logger.Error(ctx, "Schema initialization failed", zap.Error(lastErr))

		if attempt < opts.MaxAttempts {
			select {
			case <-time.After(opts.RetryDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	return lastErr
}
