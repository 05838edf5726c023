package driver

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
)

// SQLiteDriver implements Driver over mattn/go-sqlite3.
type SQLiteDriver struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens the database file (or ":memory:") with foreign keys enabled
// and write transactions taken with BEGIN IMMEDIATE.
// The pool is limited to one connection so an in-memory database is shared and
// writers serialize.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteDriver, error) {
	if !strings.Contains(dsn, "?") {
		dsn += "?_foreign_keys=on&_busy_timeout=5000&_txlock=immediate"
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return &SQLiteDriver{db: db, now: utcNow}, nil
}

// Dialect returns DialectSQLite.
func (d *SQLiteDriver) Dialect() Dialect { return DialectSQLite }

// DB returns the underlying pool.
func (d *SQLiteDriver) DB() *sql.DB { return d.db }

// Close closes the database.
func (d *SQLiteDriver) Close() error {
	if d.db == nil {
		return nil
	}
	return d.db.Close()
}

// Rebind is the identity for SQLite.
func (d *SQLiteDriver) Rebind(query string) string { return query }

// ForUpdate is empty: SQLite locks the whole database for a write transaction.
func (d *SQLiteDriver) ForUpdate() string { return "" }

// IsForeignKeyViolation reports SQLITE_CONSTRAINT_FOREIGNKEY.
func (d *SQLiteDriver) IsForeignKeyViolation(err error) bool {
	var se sqlite3.Error
	return errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintForeignKey
}

// IsUniqueViolation reports SQLITE_CONSTRAINT_UNIQUE and primary key clashes.
func (d *SQLiteDriver) IsUniqueViolation(err error) bool {
	var se sqlite3.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.ExtendedCode == sqlite3.ErrConstraintUnique || se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

// Now returns the current UTC instant.
func (d *SQLiteDriver) Now() time.Time { return d.now() }

// SetClock replaces the clock. Used by tests that need fixed timestamps.
func (d *SQLiteDriver) SetClock(now func() time.Time) { d.now = now }

var _ Driver = (*SQLiteDriver)(nil)
