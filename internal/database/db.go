package database

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/justsurfingit/job-portal-api/internal/models"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Connect opens the store, pings it and migrates the job and application
// tables. The returned handle is shared by every store for the life of the
// process.
func Connect(ctx context.Context, driver, dsn string, log zerolog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewLogger(log, time.Second),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		// A single connection serializes writers instead of failing with
		// SQLITE_BUSY.
		sqlDB.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	log.Info().Str("driver", driver).Msg("database connection established")

	if err := Migrate(ctx, db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&models.Job{}, &models.Application{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Ping reports whether the store is reachable.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// NewLogger routes gorm's logging through zerolog. Queries slower than
// slowThreshold are logged at warn level; record-not-found is not an error.
func NewLogger(log zerolog.Logger, slowThreshold time.Duration) gormlogger.Interface {
	return gormlogger.New(zerologWriter{log: log.With().Str("component", "gorm").Logger()}, gormlogger.Config{
		SlowThreshold:             slowThreshold,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

type zerologWriter struct {
	log zerolog.Logger
}

func (w zerologWriter) Printf(format string, args ...any) {
	w.log.Warn().Msgf(format, args...)
}
