package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/sarhadcorp/catalog-api/internal/config"
	"github.com/sarhadcorp/catalog-api/internal/errs"
	"github.com/sarhadcorp/catalog-api/internal/lib/token"
	"github.com/sarhadcorp/catalog-api/internal/server"
)

const testSecret = "test-secret"

func newAuthTestServer(secret string) *server.Server {
	nop := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Auth: config.AuthConfig{SecretKey: secret},
		},
		Logger: &nop,
	}
}

// invokeAuth runs RequireAuth around a probe handler and reports the
// middleware's error plus whether the probe ran.
func invokeAuth(t *testing.T, srv *server.Server, authHeader string) (error, bool, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/verify", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := NewAuthMiddleware(srv).RequireAuth(func(c echo.Context) error {
		called = true
		return nil
	})

	return mw(c), called, c
}

func requireAuthStatus(t *testing.T, err error, status int) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	require.Equal(t, status, httpErr.Status)
	return httpErr
}

func TestRequireAuthMissingHeader(t *testing.T) {
	err, called, _ := invokeAuth(t, newAuthTestServer(testSecret), "")

	httpErr := requireAuthStatus(t, err, http.StatusUnauthorized)
	require.Equal(t, "No token, authorization denied", httpErr.Message)
	require.False(t, called)
}

func TestRequireAuthNonBearerScheme(t *testing.T) {
	err, called, _ := invokeAuth(t, newAuthTestServer(testSecret), "Basic dXNlcjpwYXNz")

	requireAuthStatus(t, err, http.StatusUnauthorized)
	require.False(t, called)
}

func TestRequireAuthMissingSecret(t *testing.T) {
	signed, signErr := token.Sign(testSecret, "admin-123", time.Hour)
	require.NoError(t, signErr)

	err, called, _ := invokeAuth(t, newAuthTestServer(""), "Bearer "+signed)

	httpErr := requireAuthStatus(t, err, http.StatusInternalServerError)
	require.Equal(t, "SERVER_MISCONFIGURED", httpErr.Code)
	require.False(t, called)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	err, called, _ := invokeAuth(t, newAuthTestServer(testSecret), "Bearer garbage")

	httpErr := requireAuthStatus(t, err, http.StatusUnauthorized)
	require.Equal(t, "Invalid or expired token", httpErr.Message)
	require.False(t, called)
}

func TestRequireAuthExpiredToken(t *testing.T) {
	signed, signErr := token.Sign(testSecret, "admin-123", -time.Minute)
	require.NoError(t, signErr)

	err, called, _ := invokeAuth(t, newAuthTestServer(testSecret), "Bearer "+signed)

	httpErr := requireAuthStatus(t, err, http.StatusUnauthorized)
	// Same message as a forged token: callers can't probe why it failed.
	require.Equal(t, "Invalid or expired token", httpErr.Message)
	require.False(t, called)
}

func TestRequireAuthNonAdminToken(t *testing.T) {
	// A well-signed token without the admin capability gets 403, not 401.
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, token.Claims{
		AdminID: "admin-123",
		IsAdmin: false,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, signErr := tok.SignedString([]byte(testSecret))
	require.NoError(t, signErr)

	err, called, _ := invokeAuth(t, newAuthTestServer(testSecret), "Bearer "+signed)

	requireAuthStatus(t, err, http.StatusForbidden)
	require.False(t, called)
}

func TestRequireAuthValidToken(t *testing.T) {
	signed, signErr := token.Sign(testSecret, "admin-123", time.Hour)
	require.NoError(t, signErr)

	err, called, c := invokeAuth(t, newAuthTestServer(testSecret), "Bearer "+signed)

	require.NoError(t, err)
	require.True(t, called)
	require.Equal(t, "admin-123", GetUserID(c))
}
