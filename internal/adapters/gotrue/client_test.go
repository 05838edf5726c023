package gotrue

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	core2err "github.com/example/core2/internal/errors"
)

func signedToken(t *testing.T, sub string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sub,
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

type recorded struct {
	path   string
	query  string
	apikey string
	auth   string
	body   map[string]string
}

func newServer(t *testing.T, status int, response string) (*httptest.Server, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		rec.apikey = r.Header.Get("apikey")
		rec.auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&rec.body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestSignInWithPassword(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `{
		"access_token": "tok",
		"refresh_token": "ref",
		"expires_at": 1714564800,
		"user": {"id": "user-1", "email": "alice@example.com"}
	}`)
	client := New(srv.URL+"/", "anon")

	sess, err := client.SignInWithPassword(context.Background(), "alice@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "/auth/v1/token", rec.path)
	assert.Equal(t, "grant_type=password", rec.query)
	assert.Equal(t, "anon", rec.apikey)
	assert.Equal(t, "Bearer anon", rec.auth)
	assert.Equal(t, map[string]string{"email": "alice@example.com", "password": "secret"}, rec.body)

	assert.Equal(t, "tok", sess.AccessToken)
	assert.Equal(t, "ref", sess.RefreshToken)
	assert.Equal(t, "user-1", sess.UserID)
	assert.Equal(t, time.Unix(1714564800, 0).UTC(), sess.ExpiresAt)
}

func TestSignInWithPassword_ClaimsFallback(t *testing.T) {
	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	token := signedToken(t, "user-from-sub", exp)
	srv, _ := newServer(t, http.StatusOK, `{"access_token": "`+token+`"}`)

	sess, err := New(srv.URL, "anon").SignInWithPassword(context.Background(), "a@b.c", "pw")

	require.NoError(t, err)
	assert.Equal(t, "user-from-sub", sess.UserID)
	assert.True(t, exp.Equal(sess.ExpiresAt))
}

func TestSignInWithPassword_Rejected(t *testing.T) {
	srv, _ := newServer(t, http.StatusBadRequest, `{"error":"invalid_grant","error_description":"Invalid login credentials"}`)

	_, err := New(srv.URL, "anon").SignInWithPassword(context.Background(), "a@b.c", "wrong")

	require.Error(t, err)
	assert.True(t, errors.Is(err, core2err.ErrAuth))
	assert.Equal(t, "Invalid login credentials", err.Error())
}

func TestSignUp_ConfirmationRequired(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `{"id": "user-2", "email": "bob@example.com", "confirmation_sent_at": "2024-05-01T00:00:00Z"}`)

	sess, err := New(srv.URL, "anon").SignUp(context.Background(), "bob@example.com", "secret")

	require.NoError(t, err)
	assert.Nil(t, sess)
	assert.Equal(t, "/auth/v1/signup", rec.path)
}

func TestSignUp_AutoConfirmed(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"access_token": "tok", "expires_in": 3600, "user": {"id": "user-2"}}`)
	client := New(srv.URL, "anon")
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	client.now = func() time.Time { return fixed }

	sess, err := client.SignUp(context.Background(), "bob@example.com", "secret")

	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, fixed.Add(time.Hour), sess.ExpiresAt)
}

func TestResetPasswordForEmail(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `{}`)

	require.NoError(t, New(srv.URL, "anon").ResetPasswordForEmail(context.Background(), "alice@example.com"))
	assert.Equal(t, "/auth/v1/recover", rec.path)
	assert.Equal(t, "alice@example.com", rec.body["email"])
}

func TestSignOut(t *testing.T) {
	srv, rec := newServer(t, http.StatusNoContent, ``)

	require.NoError(t, New(srv.URL, "anon").SignOut(context.Background(), "user-token"))
	assert.Equal(t, "/auth/v1/logout", rec.path)
	assert.Equal(t, "Bearer user-token", rec.auth)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "User already registered", errorMessage(422, []byte(`{"msg":"User already registered"}`)))
	assert.Equal(t, "rate limited", errorMessage(429, []byte(`{"message":"rate limited"}`)))
	assert.Equal(t, "auth request failed with status 502", errorMessage(502, []byte(`<html>bad gateway</html>`)))
}
