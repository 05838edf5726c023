// Package app contains the application layer - service implementations and effect execution.
package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/example/core2/internal/ctxutil"
	core2err "github.com/example/core2/internal/errors"
	"github.com/example/core2/internal/ports/secondary"
)

// all lists every row of a parent.
var all = secondary.Page{}

func requireOwner(ctx context.Context) (string, error) {
	owner := ctxutil.OwnerFromContext(ctx)
	if owner == "" {
		return "", core2err.Auth("sign in required: run core2 login", nil)
	}
	return owner, nil
}

func loggerOrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}

// trimmed returns a trimmed copy of p, or nil.
func trimmed(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}
