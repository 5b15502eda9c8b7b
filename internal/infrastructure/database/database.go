package database

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/pkg/config"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// Open connects to the store selected by cfg.Database.URL: PostgreSQL for
// postgres:// URLs, otherwise an embedded SQLite file.
func Open(ctx context.Context, cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	dialect, err := cfg.Database.Dialect()
	if err != nil {
		return nil, err
	}

	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Warn)
	if cfg.IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	var dialector gorm.Dialector
	switch dialect {
	case DialectPostgres:
		dialector = postgres.Open(cfg.Database.DSN())
	default:
		dialector = sqlite.Open(cfg.Database.DSN())
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get generic database object to configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	if dialect == DialectSQLite {
		// SQLite allows a single writer; one connection keeps request
		// transactions serialized instead of failing with SQLITE_BUSY.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MinConns)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	// The store may still be starting (compose, k8s); retry the first ping only.
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = cfg.Database.ConnectRetry
	ping := func() error {
		return sqlDB.PingContext(ctx)
	}
	notify := func(err error, wait time.Duration) {
		log.Warn("database not ready, retrying", zap.Error(err), zap.Duration("wait", wait))
	}
	if err := backoff.RetryNotify(ping, backoff.WithContext(policy, ctx), notify); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connected", zap.String("dialect", dialect))
	return db, nil
}

// Migrate brings the schema up to date. PostgreSQL uses the versioned SQL
// files under migrations/; SQLite is created from the models directly.
func Migrate(db *gorm.DB, dialect string, log *zap.Logger) error {
	if dialect != DialectPostgres {
		if err := AutoMigrate(db); err != nil {
			return err
		}
		log.Info("schema synchronized from models")
		return nil
	}

	migrations := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFiles,
		Root:       "migrations",
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get db connection during migrate up, error: %v", err)
	}

	n, err := migrate.Exec(sqlDB, "postgres", migrations, migrate.Up)
	if err != nil {
		return fmt.Errorf("failed to apply migration, error: %v", err)
	}

	log.Info("migrations applied", zap.Int("count", n))
	return nil
}

// AutoMigrate creates or updates tables from the entity definitions
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(entities.All()...); err != nil {
		return fmt.Errorf("failed to auto-migrate: %w", err)
	}
	return nil
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}
