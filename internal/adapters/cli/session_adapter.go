package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	core2err "github.com/example/core2/internal/errors"
	"github.com/example/core2/internal/ports/primary"
)

// SessionAdapter translates CLI operations to SessionService calls.
type SessionAdapter struct {
	service primary.SessionService
	out     io.Writer
}

// NewSessionAdapter creates a new SessionAdapter with the given service.
func NewSessionAdapter(service primary.SessionService, out io.Writer) *SessionAdapter {
	return &SessionAdapter{service: service, out: out}
}

// Login signs in with email and password.
func (a *SessionAdapter) Login(ctx context.Context, email, password string) error {
	sess, err := a.service.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Signed in as %s\n", sess.Email)
	return nil
}

// Signup registers a new account.
func (a *SessionAdapter) Signup(ctx context.Context, email, password string) error {
	sess, err := a.service.SignUp(ctx, email, password)
	if err != nil {
		return err
	}
	if sess == nil {
		fmt.Fprintf(a.out, "✓ Account created for %s\n", email)
		fmt.Fprintln(a.out, "  Confirm the address from the email you received, then run core2 login")
		return nil
	}
	fmt.Fprintf(a.out, "✓ Account created, signed in as %s\n", sess.Email)
	return nil
}

// ResetPassword requests a password reset email.
func (a *SessionAdapter) ResetPassword(ctx context.Context, email string) error {
	if err := a.service.ResetPassword(ctx, email); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Password reset email sent to %s\n", email)
	return nil
}

// Logout ends the session. The local session is cleared even when the
// server call fails; that failure is reported as a warning.
func (a *SessionAdapter) Logout(ctx context.Context) error {
	if err := a.service.SignOut(ctx); err != nil {
		if !errors.Is(err, core2err.ErrAuth) {
			return err
		}
		fmt.Fprintf(a.out, "%s signed out locally, server revoke failed: %v\n", color.New(color.FgYellow).Sprint("!"), err)
		return nil
	}
	fmt.Fprintln(a.out, "✓ Signed out")
	return nil
}

// WhoAmI prints the current session.
func (a *SessionAdapter) WhoAmI(ctx context.Context) error {
	sess, err := a.service.Current(ctx)
	if err != nil {
		return err
	}
	if sess.Offline {
		fmt.Fprintf(a.out, "Owner:   %s (offline)\n", sess.UserID)
		return nil
	}
	fmt.Fprintf(a.out, "User:    %s\n", sess.UserID)
	fmt.Fprintf(a.out, "Email:   %s\n", sess.Email)
	fmt.Fprintf(a.out, "Expires: %s\n", formatTime(sess.ExpiresAt))
	return nil
}
