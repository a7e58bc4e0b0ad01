// Package store persists the cellar and pantry in MySQL or SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/housestock/backend/internal/domain"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Config holds database connection settings
type Config struct {
	Driver            string
	DSN               string
	ConnectRetries    int
	ConnectRetryDelay time.Duration
}

// Open connects to the configured database and waits until it answers a ping.
// It gives up after ConnectRetries attempts spaced ConnectRetryDelay apart.
func Open(ctx context.Context, cfg Config, log *zap.SugaredLogger) (*sql.DB, error) {
	dsn, err := normalizeDSN(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Driver, err)
	}

	if cfg.Driver == DriverSQLite {
		// one writer at a time
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	attempts := cfg.ConnectRetries
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; ; attempt++ {
		err = db.PingContext(ctx)
		if err == nil {
			return db, nil
		}
		if attempt >= attempts {
			break
		}

		log.Warnw("Database not ready, retrying",
			"attempt", attempt,
			"remaining", attempts-attempt,
			"delay", cfg.ConnectRetryDelay,
			"error", err)

		select {
		case <-ctx.Done():
			_ = db.Close()
			return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, ctx.Err())
		case <-time.After(cfg.ConnectRetryDelay):
		}
	}

	_ = db.Close()
	return nil, fmt.Errorf("%w after %d attempts: %v", domain.ErrStoreUnavailable, attempts, err)
}

// normalizeDSN enables the MySQL options the repositories rely on: found rows instead
// of changed rows for UPDATE, and several statements per migration file.
func normalizeDSN(driver, dsn string) (string, error) {
	switch driver {
	case DriverMySQL:
		cfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return "", fmt.Errorf("parse mysql dsn: %w", err)
		}
		cfg.ClientFoundRows = true
		cfg.MultiStatements = true
		cfg.ParseTime = true
		return cfg.FormatDSN(), nil
	case DriverSQLite:
		return dsn, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}
