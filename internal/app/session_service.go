package app

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	core2err "github.com/example/core2/internal/errors"
	"github.com/example/core2/internal/ports/primary"
	"github.com/example/core2/internal/ports/secondary"
)

// SessionServiceImpl implements the SessionService interface.
type SessionServiceImpl struct {
	auth         secondary.AuthProvider // nil when running offline
	state        secondary.StateStore
	offlineOwner string
	now          func() time.Time
	logger       *slog.Logger

	mu          sync.Mutex
	nextSubID   int
	subscribers map[int]func(*primary.Session)
}

// NewSessionService creates a new SessionService. auth may be nil, in which
// case only the offline owner is available.
func NewSessionService(auth secondary.AuthProvider, state secondary.StateStore, offlineOwner string, logger *slog.Logger) *SessionServiceImpl {
	return &SessionServiceImpl{
		auth:         auth,
		state:        state,
		offlineOwner: offlineOwner,
		now:          time.Now,
		logger:       loggerOrDefault(logger),
		subscribers:  make(map[int]func(*primary.Session)),
	}
}

// SignIn authenticates and saves the session.
func (s *SessionServiceImpl) SignIn(ctx context.Context, email, password string) (*primary.Session, error) {
	if err := s.requireAuth(); err != nil {
		return nil, err
	}
	if err := checkCredentials(email, password); err != nil {
		return nil, err
	}
	rec, err := s.auth.SignInWithPassword(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return nil, err
	}
	if err := s.saveSession(ctx, rec); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "signed in", "user", rec.UserID)
	return s.publish(rec), nil
}

// SignUp registers a user and saves the session when one is returned.
func (s *SessionServiceImpl) SignUp(ctx context.Context, email, password string) (*primary.Session, error) {
	if err := s.requireAuth(); err != nil {
		return nil, err
	}
	if err := checkCredentials(email, password); err != nil {
		return nil, err
	}
	rec, err := s.auth.SignUp(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	if err := s.saveSession(ctx, rec); err != nil {
		return nil, err
	}
	return s.publish(rec), nil
}

// ResetPassword asks the auth service to send a reset email.
func (s *SessionServiceImpl) ResetPassword(ctx context.Context, email string) error {
	if err := s.requireAuth(); err != nil {
		return err
	}
	if strings.TrimSpace(email) == "" {
		return core2err.Validation("email is required")
	}
	return s.auth.ResetPasswordForEmail(ctx, strings.TrimSpace(email))
}

// SignOut revokes the saved session and forgets it locally. The local session
// is cleared even when revocation fails; that failure is still returned.
func (s *SessionServiceImpl) SignOut(ctx context.Context) error {
	st, err := s.state.Load(ctx)
	if err != nil {
		return err
	}
	if st.Session == nil {
		return nil
	}

	var revokeErr error
	if s.auth != nil {
		revokeErr = s.auth.SignOut(ctx, st.Session.AccessToken)
		if revokeErr != nil {
			s.logger.WarnContext(ctx, "failed to revoke session", "error", revokeErr)
		}
	}
	st.Session = nil
	if err := s.state.Save(ctx, st); err != nil {
		return err
	}
	s.publish(nil)
	return revokeErr
}

// Current returns the saved session if still valid, else the offline owner.
func (s *SessionServiceImpl) Current(ctx context.Context) (*primary.Session, error) {
	st, err := s.state.Load(ctx)
	if err != nil {
		return nil, err
	}
	if st.Session != nil {
		if !st.Session.ExpiresAt.IsZero() && !s.now().Before(st.Session.ExpiresAt) {
			return nil, core2err.Auth("session expired: run core2 login", nil)
		}
		return recordToSession(st.Session), nil
	}
	if s.offlineOwner != "" {
		return &primary.Session{UserID: s.offlineOwner, Offline: true}, nil
	}
	return nil, core2err.Auth("login required: run core2 login", nil)
}

// Subscribe registers fn for session changes.
func (s *SessionServiceImpl) Subscribe(fn func(*primary.Session)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// Watch forwards state file changes to subscribers until ctx is done.
func (s *SessionServiceImpl) Watch(ctx context.Context) error {
	return s.state.Watch(ctx, func() {
		sess, err := s.Current(ctx)
		if err != nil {
			sess = nil
		}
		s.notify(sess)
	})
}

func (s *SessionServiceImpl) requireAuth() error {
	if s.auth == nil {
		return core2err.Auth("no auth service configured: set auth.url", nil)
	}
	return nil
}

func (s *SessionServiceImpl) saveSession(ctx context.Context, rec *secondary.SessionRecord) error {
	st, err := s.state.Load(ctx)
	if err != nil {
		return err
	}
	st.Session = rec
	return s.state.Save(ctx, st)
}

// publish notifies subscribers and returns the port view of rec.
func (s *SessionServiceImpl) publish(rec *secondary.SessionRecord) *primary.Session {
	var sess *primary.Session
	if rec != nil {
		sess = recordToSession(rec)
	}
	s.notify(sess)
	return sess
}

func (s *SessionServiceImpl) notify(sess *primary.Session) {
	s.mu.Lock()
	subs := make([]func(*primary.Session), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()
	for _, fn := range subs {
		fn(sess)
	}
}

func checkCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return core2err.Validation("email is required")
	}
	if password == "" {
		return core2err.Validation("password is required")
	}
	return nil
}

func recordToSession(r *secondary.SessionRecord) *primary.Session {
	return &primary.Session{
		UserID:    r.UserID,
		Email:     r.Email,
		ExpiresAt: r.ExpiresAt,
	}
}

// Ensure SessionServiceImpl implements the interface
var _ primary.SessionService = (*SessionServiceImpl)(nil)
