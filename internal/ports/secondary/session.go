package secondary

import (
	"context"
	"time"
)

// AuthProvider is the store's session API.
type AuthProvider interface {
	// SignInWithPassword exchanges credentials for a session.
	SignInWithPassword(ctx context.Context, email, password string) (*SessionRecord, error)
	// SignUp registers a user. The session is nil when the service requires
	// email confirmation first.
	SignUp(ctx context.Context, email, password string) (*SessionRecord, error)
	// ResetPasswordForEmail sends a password-reset email.
	ResetPasswordForEmail(ctx context.Context, email string) error
	// SignOut revokes the session's tokens.
	SignOut(ctx context.Context, accessToken string) error
}

// SessionRecord is an authenticated session.
type SessionRecord struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	UserID       string    `json:"user_id"`
	Email        string    `json:"email,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// StateRecord is the client-side state kept outside the store.
type StateRecord struct {
	LastProjectID string         `json:"last_project_id,omitempty"`
	Session       *SessionRecord `json:"session,omitempty"`
}

// StateStore persists StateRecord between runs.
type StateStore interface {
	// Load returns the saved state, or an empty record when none exists.
	Load(ctx context.Context) (*StateRecord, error)
	Save(ctx context.Context, state *StateRecord) error
	// Watch calls onChange after every external write until ctx is done.
	Watch(ctx context.Context, onChange func()) error
}
