package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/draftstack/mcp-draftstack/internal/client"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestTokenSource_StaticAPIToken(t *testing.T) {
	t.Parallel()

	ts := client.NewTokenSource("http://unused", "static-token", "", "", http.DefaultClient)
	token, err := ts.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "static-token", token)
}

func TestTokenSource_NoCredentials(t *testing.T) {
	t.Parallel()

	ts := client.NewTokenSource("http://unused", "", "", "", http.DefaultClient)
	_, err := ts.Token(context.Background())
	assert.ErrorIs(t, err, client.ErrNoCredentials)
}

func TestTokenSource_AdminLogin_CachesUntilExpiry(t *testing.T) {
	t.Parallel()

	var logins atomic.Int32
	sessionToken := signedToken(t, time.Hour)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/admin/login", r.URL.Path)

		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "admin@example.com", creds.Email)
		require.Equal(t, "hunter2", creds.Password)

		logins.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"token": sessionToken},
		})
	}))
	defer srv.Close()

	ts := client.NewTokenSource(srv.URL, "", "admin@example.com", "hunter2", srv.Client())

	first, err := ts.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sessionToken, first)

	second, err := ts.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sessionToken, second)

	assert.Equal(t, int32(1), logins.Load(), "second call should reuse the cached token")
}

func TestTokenSource_Invalidate_ForcesRelogin(t *testing.T) {
	t.Parallel()

	var logins atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logins.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"token": signedToken(t, time.Hour)},
		})
	}))
	defer srv.Close()

	ts := client.NewTokenSource(srv.URL, "", "admin@example.com", "hunter2", srv.Client())

	_, err := ts.Token(context.Background())
	require.NoError(t, err)

	ts.Invalidate()

	_, err = ts.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), logins.Load())
}

func TestTokenSource_LoginFailure_SurfacesBackendMessage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "Invalid credentials"},
		})
	}))
	defer srv.Close()

	ts := client.NewTokenSource(srv.URL, "", "admin@example.com", "wrong", srv.Client())

	_, err := ts.Token(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials")
}

func TestTokenSource_OpaqueToken_StillAccepted(t *testing.T) {
	t.Parallel()

	// A backend token that is not a JWT gets the fixed fallback lifetime.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"token": "opaque-session-token"},
		})
	}))
	defer srv.Close()

	ts := client.NewTokenSource(srv.URL, "", "admin@example.com", "hunter2", srv.Client())

	token, err := ts.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "opaque-session-token", token)
}
