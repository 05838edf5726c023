package primary

import (
	"context"
	"time"
)

// SessionService defines the primary port for authentication.
type SessionService interface {
	// SignIn authenticates with email and password and saves the session.
	SignIn(ctx context.Context, email, password string) (*Session, error)

	// SignUp registers a user. The session is nil when the auth service
	// asks for email confirmation first.
	SignUp(ctx context.Context, email, password string) (*Session, error)

	// ResetPassword sends a password-reset email.
	ResetPassword(ctx context.Context, email string) error

	// SignOut revokes and forgets the saved session.
	SignOut(ctx context.Context) error

	// Current returns the active session. Without a saved session it falls
	// back to the configured offline owner, else fails with an auth error.
	Current(ctx context.Context) (*Session, error)

	// Subscribe registers fn for session changes and returns a function that
	// removes it.
	Subscribe(fn func(*Session)) (unsubscribe func())

	// Watch delivers session changes made by other processes to
	// subscribers until ctx is done.
	Watch(ctx context.Context) error
}

// Session is the authenticated user at the port boundary.
type Session struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
	Offline   bool // owner taken from configuration, no auth service
}
