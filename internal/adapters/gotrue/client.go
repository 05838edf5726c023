// Package gotrue implements secondary.AuthProvider against a GoTrue-compatible
// auth REST API.
package gotrue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tidwall/gjson"

	core2err "github.com/example/core2/internal/errors"
	"github.com/example/core2/internal/ports/secondary"
)

// Client talks to <baseURL>/auth/v1.
type Client struct {
	baseURL string
	anonKey string
	http    *http.Client
	now     func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a client for the project at baseURL using the public anon key.
func New(baseURL, anonKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/auth/v1",
		anonKey: anonKey,
		http:    &http.Client{Timeout: 30 * time.Second},
		now:     time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// SignInWithPassword exchanges email and password for a session.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*secondary.SessionRecord, error) {
	body, err := c.post(ctx, "/token?grant_type=password", "", map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}
	return c.parseSession(body)
}

// SignUp registers a user. When the service requires email confirmation the
// response has no token and the returned session is nil.
func (c *Client) SignUp(ctx context.Context, email, password string) (*secondary.SessionRecord, error) {
	body, err := c.post(ctx, "/signup", "", map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}
	if !gjson.GetBytes(body, "access_token").Exists() {
		return nil, nil
	}
	return c.parseSession(body)
}

// ResetPasswordForEmail sends a password-reset email.
func (c *Client) ResetPasswordForEmail(ctx context.Context, email string) error {
	_, err := c.post(ctx, "/recover", "", map[string]string{"email": email})
	return err
}

// SignOut revokes the session's refresh tokens.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	_, err := c.post(ctx, "/logout", accessToken, nil)
	return err
}

func (c *Client) post(ctx context.Context, path, bearer string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, core2err.Auth("encode request", err)
		}
		reqBody = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reqBody)
	if err != nil {
		return nil, core2err.Auth("build request", err)
	}
	if bearer == "" {
		bearer = c.anonKey
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, core2err.Auth("auth service unreachable", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, core2err.Auth("read auth response", err)
	}
	if resp.StatusCode >= 300 {
		return nil, core2err.Auth(errorMessage(resp.StatusCode, body), nil)
	}
	return body, nil
}

// errorMessage picks the human readable part of an error body. GoTrue
// versions disagree on the field name.
func errorMessage(status int, body []byte) string {
	for _, path := range []string{"error_description", "msg", "message", "error"} {
		if v := gjson.GetBytes(body, path); v.Type == gjson.String && v.String() != "" {
			return v.String()
		}
	}
	return fmt.Sprintf("auth request failed with status %d", status)
}

// parseSession reads a token response. The user id and expiry fall back to
// the access token's sub and exp claims.
func (c *Client) parseSession(body []byte) (*secondary.SessionRecord, error) {
	res := gjson.ParseBytes(body)
	rec := &secondary.SessionRecord{
		AccessToken:  res.Get("access_token").String(),
		RefreshToken: res.Get("refresh_token").String(),
		UserID:       res.Get("user.id").String(),
		Email:        res.Get("user.email").String(),
	}
	if rec.AccessToken == "" {
		return nil, core2err.Auth("auth response has no access token", nil)
	}

	switch {
	case res.Get("expires_at").Exists():
		rec.ExpiresAt = time.Unix(res.Get("expires_at").Int(), 0).UTC()
	case res.Get("expires_in").Exists():
		rec.ExpiresAt = c.now().Add(time.Duration(res.Get("expires_in").Int()) * time.Second).UTC()
	}

	if rec.UserID == "" || rec.ExpiresAt.IsZero() {
		claims, err := unverifiedClaims(rec.AccessToken)
		if err != nil {
			return nil, core2err.Auth("read access token", err)
		}
		if rec.UserID == "" {
			rec.UserID, _ = claims.GetSubject()
		}
		if exp, _ := claims.GetExpirationTime(); rec.ExpiresAt.IsZero() && exp != nil {
			rec.ExpiresAt = exp.UTC()
		}
		if rec.Email == "" {
			rec.Email, _ = claims["email"].(string)
		}
	}
	if rec.UserID == "" {
		return nil, core2err.Auth("auth response has no user id", nil)
	}
	return rec, nil
}

// unverifiedClaims decodes the token without checking its signature. The
// token came straight from the auth service over TLS and is only read for
// display and the owner id.
func unverifiedClaims(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

var _ secondary.AuthProvider = (*Client)(nil)
