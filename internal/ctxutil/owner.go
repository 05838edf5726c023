// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import "context"

// OwnerKey is the context key for the authenticated owner ID.
type OwnerKey struct{}

// WithOwnerID returns a context with the owner ID embedded.
func WithOwnerID(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, OwnerKey{}, ownerID)
}

// OwnerFromContext returns the owner ID from context, or empty string if not set.
func OwnerFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(OwnerKey{}).(string); ok {
		return v
	}
	return ""
}
