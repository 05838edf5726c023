package driver

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
)

// PostgresDriver implements Driver over pgx's database/sql adapter.
type PostgresDriver struct {
	db  *sql.DB
	now func() time.Time
}

// OpenPostgres connects and pings the server.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresDriver, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &PostgresDriver{db: db, now: utcNow}, nil
}

// Dialect returns DialectPostgres.
func (d *PostgresDriver) Dialect() Dialect { return DialectPostgres }

// DB returns the underlying pool.
func (d *PostgresDriver) DB() *sql.DB { return d.db }

// Close closes the pool.
func (d *PostgresDriver) Close() error {
	if d.db == nil {
		return nil
	}
	return d.db.Close()
}

// Rebind rewrites ? placeholders to $n.
func (d *PostgresDriver) Rebind(query string) string { return rebindDollar(query) }

// ForUpdate locks the selected rows until the transaction ends.
func (d *PostgresDriver) ForUpdate() string { return " FOR UPDATE" }

// IsForeignKeyViolation reports SQLSTATE 23503.
func (d *PostgresDriver) IsForeignKeyViolation(err error) bool {
	return pgCode(err) == pgerrcode.ForeignKeyViolation
}

// IsUniqueViolation reports SQLSTATE 23505.
func (d *PostgresDriver) IsUniqueViolation(err error) bool {
	return pgCode(err) == pgerrcode.UniqueViolation
}

// Now returns the current UTC instant truncated to the column precision.
func (d *PostgresDriver) Now() time.Time { return d.now().Truncate(time.Microsecond) }

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

var _ Driver = (*PostgresDriver)(nil)
