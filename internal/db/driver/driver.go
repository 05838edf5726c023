// Package driver provides database driver abstraction for SQLite and PostgreSQL.
package driver

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Dialect represents the database dialect.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Querier is satisfied by *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Driver abstracts the dialect differences the repositories care about.
// Queries are written with ? placeholders and passed through Rebind.
type Driver interface {
	Dialect() Dialect
	DB() *sql.DB
	Close() error

	// Rebind rewrites ? placeholders for the dialect ($1.. for Postgres).
	Rebind(query string) string
	// ForUpdate is the row-lock suffix for a SELECT inside a transaction.
	ForUpdate() string
	// IsForeignKeyViolation reports whether err was raised by a missing
	// parent row or a child row that still references the target.
	IsForeignKeyViolation(err error) bool
	// IsUniqueViolation reports whether err was raised by a unique constraint.
	IsUniqueViolation(err error) bool

	// Now returns the current instant used for created_at/updated_at.
	Now() time.Time
}

// Open connects to the store using the dialect's driver.
func Open(ctx context.Context, dialect Dialect, dsn string) (Driver, error) {
	switch dialect {
	case DialectSQLite:
		return OpenSQLite(ctx, dsn)
	case DialectPostgres:
		return OpenPostgres(ctx, dsn)
	default:
		return nil, fmt.Errorf("unsupported dialect: %s", dialect)
	}
}

// ParseDialect parses a dialect string.
func ParseDialect(s string) (Dialect, error) {
	switch s {
	case "sqlite", "sqlite3":
		return DialectSQLite, nil
	case "postgres", "postgresql", "pg":
		return DialectPostgres, nil
	default:
		return "", fmt.Errorf("unknown dialect: %s", s)
	}
}

// rebindDollar replaces each ? with $1, $2, ... in order. Queries in this
// module never contain ? inside string literals.
func rebindDollar(query string) string {
	if !strings.Contains(query, "?") {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

func utcNow() time.Time {
	return time.Now().UTC()
}
