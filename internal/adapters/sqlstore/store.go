// Package sqlstore contains database/sql implementations of the repository
// ports, shared by the SQLite and Postgres dialects.
//
// Queries are written with ? placeholders and rebound by the driver. Rows are
// written and returned in a single statement (INSERT/UPDATE/DELETE ... RETURNING).
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/core2/internal/db/driver"
	core2err "github.com/example/core2/internal/errors"
	"github.com/example/core2/internal/ports/secondary"
)

type scanner interface {
	Scan(dest ...any) error
}

// base carries the driver shared by every repository.
type base struct {
	drv driver.Driver
}

func (b base) q(query string) string {
	return b.drv.Rebind(query)
}

func (b base) newID() string {
	return uuid.NewString()
}

// storeErr wraps a driver failure. Constraint violations get a readable message
// in front of the driver text.
func (b base) storeErr(op string, err error) error {
	switch {
	case b.drv.IsForeignKeyViolation(err):
		return &core2err.Error{Kind: core2err.KindStore, Op: op, What: "failed to " + op + ": referenced row is missing or still referenced", Cause: err}
	case b.drv.IsUniqueViolation(err):
		return &core2err.Error{Kind: core2err.KindStore, Op: op, What: "failed to " + op + ": duplicate row", Cause: err}
	default:
		return core2err.Store(op, err)
	}
}

// rowErr maps sql.ErrNoRows to a not-found error.
func (b base) rowErr(entity, id, op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return core2err.NotFound(entity, id)
	}
	return b.storeErr(op, err)
}

// withTx runs fn in a transaction, rolling back on error.
func (b base) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := b.drv.DB().BeginTx(ctx, nil)
	if err != nil {
		return core2err.Store("begin transaction", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return core2err.Store("commit transaction", err)
	}
	return nil
}

// pageClause renders LIMIT/OFFSET only when a limit is set.
func pageClause(page secondary.Page) (string, []any) {
	if page.Limit <= 0 {
		return "", nil
	}
	offset := page.Offset
	if offset < 0 {
		offset = 0
	}
	return " LIMIT ? OFFSET ?", []any{page.Limit, offset}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

// timeCol scans timestamps from either driver. SQLite may hand back text when
// the declared column type is not visible (RETURNING, expressions).
type timeCol struct {
	Time  time.Time
	Valid bool
}

var sqliteTimeFormats = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Scan implements sql.Scanner.
func (c *timeCol) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		c.Time, c.Valid = time.Time{}, false
		return nil
	case time.Time:
		c.Time, c.Valid = v.UTC(), true
		return nil
	case []byte:
		return c.parse(string(v))
	case string:
		return c.parse(v)
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (c *timeCol) parse(s string) error {
	s = strings.TrimSuffix(s, "Z")
	for _, layout := range sqliteTimeFormats {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			c.Time, c.Valid = t.UTC(), true
			return nil
		}
	}
	return fmt.Errorf("cannot parse timestamp %q", s)
}

func (c timeCol) ptr() *time.Time {
	if !c.Valid {
		return nil
	}
	t := c.Time
	return &t
}

// setList accumulates the SET clause of a partial update.
type setList struct {
	cols []string
	args []any
}

func (s *setList) add(col string, val any) {
	s.cols = append(s.cols, col+" = ?")
	s.args = append(s.args, val)
}

func (s *setList) text(col string, v *string) {
	if v != nil {
		s.add(col, *v)
	}
}

func (s *setList) nullableText(col string, v *string) {
	if v != nil {
		s.add(col, nullString(*v))
	}
}

// update runs UPDATE table SET ... , updated_at = ? WHERE id = ? RETURNING cols.
func (b base) update(ctx context.Context, table, cols, id string, s *setList) *sql.Row {
	s.add("updated_at", b.drv.Now())
	query := "UPDATE " + table + " SET " + strings.Join(s.cols, ", ") + " WHERE id = ? RETURNING " + cols
	args := append(s.args, id)
	return b.drv.DB().QueryRowContext(ctx, b.q(query), args...)
}

// deleteReturning runs DELETE FROM table WHERE id = ? RETURNING cols.
func (b base) deleteReturning(ctx context.Context, q driver.Querier, table, cols, id string) *sql.Row {
	return q.QueryRowContext(ctx, b.q("DELETE FROM "+table+" WHERE id = ? RETURNING "+cols), id)
}

// collect drains rows with scan.
func collect[T any](rows *sql.Rows, scan func(scanner) (*T, error)) ([]*T, error) {
	defer rows.Close()
	out := []*T{}
	for rows.Next() {
		rec, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
