package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// adminTokenLifetime is assumed when the backend token carries no usable
	// exp claim.
	adminTokenLifetime = 30 * time.Minute

	// expiryLeeway refreshes the token slightly before its actual expiry so
	// an in-flight request never presents a token that dies mid-call.
	expiryLeeway = 30 * time.Second
)

// ErrNoCredentials is returned when the token source has nothing to
// authenticate with.
var ErrNoCredentials = errors.New("no API token or admin credentials configured")

// TokenSource produces the bearer token for CMS requests. A static API token
// is returned as-is; admin email/password credentials are exchanged for a
// session JWT via the admin login endpoint and cached until expiry.
type TokenSource struct {
	baseURL    string
	httpClient *http.Client

	apiToken string
	email    string
	password string

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// NewTokenSource creates a token source. apiToken wins over email/password
// when both are set.
func NewTokenSource(baseURL, apiToken, email, password string, httpClient *http.Client) *TokenSource {
	return &TokenSource{
		baseURL:    baseURL,
		httpClient: httpClient,
		apiToken:   apiToken,
		email:      email,
		password:   password,
	}
}

// Token returns a valid bearer token, logging in again only when the cached
// one is absent or past its lifetime.
func (ts *TokenSource) Token(ctx context.Context) (string, error) {
	if ts.apiToken != "" {
		return ts.apiToken, nil
	}
	if ts.email == "" || ts.password == "" {
		return "", ErrNoCredentials
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.token != "" && time.Now().Before(ts.expiresAt.Add(-expiryLeeway)) {
		return ts.token, nil
	}

	token, err := ts.login(ctx)
	if err != nil {
		return "", err
	}

	ts.token = token
	ts.expiresAt = tokenExpiry(token, time.Now())
	return ts.token, nil
}

// Invalidate drops the cached token so the next call logs in again. Called
// after the backend rejects a request with 401.
func (ts *TokenSource) Invalidate() {
	ts.mu.Lock()
	ts.token = ""
	ts.expiresAt = time.Time{}
	ts.mu.Unlock()
}

// login exchanges admin credentials for a session token.
func (ts *TokenSource) login(ctx context.Context) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    ts.email,
		"password": ts.password,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal login request: %w", err)
	}

	endpoint := ts.baseURL + "/admin/login"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute login request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read login response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if msg := decodeErrorMessage(body); msg != "" {
			return "", fmt.Errorf("authentication failed: %s", msg)
		}
		return "", fmt.Errorf("authentication failed: unexpected status code %d", resp.StatusCode)
	}

	var loginResp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &loginResp); err != nil {
		return "", fmt.Errorf("failed to parse login response: %w", err)
	}
	if loginResp.Data.Token == "" {
		return "", errors.New("authentication failed: empty token in login response")
	}

	return loginResp.Data.Token, nil
}

// tokenExpiry reads the exp claim from the session JWT without verifying the
// signature (the backend signed it, we only need the deadline). Tokens with
// no usable claim fall back to a fixed lifetime from now.
func tokenExpiry(token string, now time.Time) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil && exp.After(now) {
			return exp.Time
		}
	}
	return now.Add(adminTokenLifetime)
}
