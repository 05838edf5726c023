// Package db opens the entity store and owns its schema.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/example/core2/internal/config"
	"github.com/example/core2/internal/db/driver"
)

// Open connects to the configured store and, when enabled, runs migrations.
func Open(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (driver.Driver, error) {
	dialect, err := driver.ParseDialect(cfg.Dialect)
	if err != nil {
		return nil, err
	}

	if dialect == driver.DialectSQLite && cfg.DSN != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.DSN), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	drv, err := driver.Open(ctx, dialect, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.Migrate {
		if err := Migrate(ctx, drv, logger); err != nil {
			_ = drv.Close()
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return drv, nil
}
