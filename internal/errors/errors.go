// Package errors provides the structured error taxonomy for core2.
//
// Importers alias the package (core2err) to keep the standard library's
// errors package available.
package errors

import (
	"fmt"
	"strings"
)

// Kind classifies an error for reporting.
type Kind string

const (
	// KindStore is any failure returned by a repository call.
	KindStore Kind = "STORE"
	// KindValidation is raised by guards before any repository call.
	KindValidation Kind = "VALIDATION"
	// KindNotFound reports a missing row.
	KindNotFound Kind = "NOT_FOUND"
	// KindAuth reports a missing session or a failed auth API call.
	KindAuth Kind = "AUTH"
)

// Error is the structured error type for core2.
type Error struct {
	Kind   Kind
	Op     string // operation that failed, e.g. "list stories"
	Entity string // entity name for not-found errors
	ID     string
	What   string
	Cause  error
}

// Sentinels for errors.Is matching by kind.
var (
	ErrStore      = &Error{Kind: KindStore}
	ErrValidation = &Error{Kind: KindValidation}
	ErrNotFound   = &Error{Kind: KindNotFound}
	ErrAuth       = &Error{Kind: KindAuth}
)

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	switch {
	case e.What != "":
		b.WriteString(e.What)
	case e.Kind == KindNotFound && e.Entity != "":
		fmt.Fprintf(&b, "%s %s not found", e.Entity, e.ID)
	case e.Op != "":
		b.WriteString("failed to ")
		b.WriteString(e.Op)
	default:
		b.WriteString(strings.ToLower(string(e.Kind)))
		b.WriteString(" error")
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Store wraps a repository failure. The cause message is kept verbatim.
func Store(op string, cause error) *Error {
	return &Error{Kind: KindStore, Op: op, Cause: cause}
}

// Validation returns a guard rejection.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, What: msg}
}

// Validationf formats a guard rejection.
func Validationf(format string, args ...any) *Error {
	return Validation(fmt.Sprintf(format, args...))
}

// NotFound returns a missing-row error for the entity and id.
func NotFound(entity, id string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, ID: id}
}

// Auth returns a session error.
func Auth(msg string, cause error) *Error {
	return &Error{Kind: KindAuth, What: msg, Cause: cause}
}

// KindOf returns the kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
