package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/example/core2/internal/db/driver"
)

// Migration is one schema step. Up receives the open transaction.
type Migration struct {
	Version int
	Name    string
	Up      func(ctx context.Context, tx *sql.Tx, dialect driver.Dialect) error
}

// migrations is the list of all migrations in order.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_core_tables",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "unique_analysis_document_per_project",
		Up:      migrationV2,
	},
}

// Migrate applies pending migrations, each in its own transaction.
func Migrate(ctx context.Context, drv driver.Driver, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	db := drv.DB()

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP NOT NULL
		)`); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	var current int
	if err := db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&current); err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}
		logger.Info("running migration", "version", m.Version, "name", m.Name)

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", m.Version, err)
		}
		if err := m.Up(ctx, tx, drv.Dialect()); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", m.Version, err)
		}
		if _, err := tx.ExecContext(ctx,
			drv.Rebind("INSERT INTO schema_version (version, name, applied_at) VALUES (?, ?, ?)"),
			m.Version, m.Name, drv.Now()); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}
	}
	return nil
}

// CurrentVersion returns the highest applied migration, 0 on a fresh store.
func CurrentVersion(ctx context.Context, drv driver.Driver) (int, error) {
	var v int
	err := drv.DB().QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&v)
	if err != nil {
		return 0, fmt.Errorf("failed to get current schema version: %w", err)
	}
	return v, nil
}

func migrationV1(ctx context.Context, tx *sql.Tx, dialect driver.Dialect) error {
	_, err := tx.ExecContext(ctx, SchemaFor(dialect))
	return err
}

// migrationV2 keeps the newest analysis document of each project and makes
// project_id unique. Stores created at V1 carry a plain index.
func migrationV2(ctx context.Context, tx *sql.Tx, _ driver.Dialect) error {
	stmts := []string{
		`DELETE FROM analysis_document
		WHERE EXISTS (
			SELECT 1 FROM analysis_document newer
			WHERE newer.project_id = analysis_document.project_id
			AND (newer.created_at > analysis_document.created_at
				OR (newer.created_at = analysis_document.created_at AND newer.id > analysis_document.id))
		)`,
		`DROP INDEX IF EXISTS idx_analysis_document_project`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_analysis_document_project ON analysis_document(project_id)`,
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
