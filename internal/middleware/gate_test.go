package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subtrack/internal/auth"
)

const gateSecret = "gate-test-secret"

func newGateEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Use(Gate(auth.NewEdgeVerifier(gateSecret)))
	e.GET("/login", func(c echo.Context) error { return c.String(http.StatusOK, "login") })
	e.GET("/signup", func(c echo.Context) error { return c.String(http.StatusOK, "signup") })
	e.GET("/dashboard", func(c echo.Context) error {
		id, ok := UserID(c)
		require.True(t, ok, "gate must inject a verified subject id")
		return c.String(http.StatusOK, id.String())
	})
	e.GET("/api/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })
	return e
}

func sessionCookie(t *testing.T, secret string, userID uuid.UUID) *http.Cookie {
	t.Helper()
	token, err := auth.NewJWTService(secret).GenerateSessionToken(userID, "gate@example.com", "")
	require.NoError(t, err)
	return &http.Cookie{Name: auth.SessionCookieName, Value: token}
}

func TestGate_RedirectsAnonymousToLogin(t *testing.T) {
	e := newGateEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?from=%2Fdashboard", rec.Header().Get(echo.HeaderLocation))
}

func TestGate_RedirectsAuthenticatedAwayFromAuthPages(t *testing.T) {
	e := newGateEcho(t)

	for _, path := range []string{"/login", "/signup"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.AddCookie(sessionCookie(t, gateSecret, uuid.New()))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code, "path %s", path)
		assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))
	}
}

func TestGate_ForwardsAuthenticatedWithSubject(t *testing.T) {
	e := newGateEcho(t)
	userID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(sessionCookie(t, gateSecret, userID))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID.String(), rec.Body.String())
}

func TestGate_InvalidTokenTreatedAsAnonymous(t *testing.T) {
	e := newGateEcho(t)

	// Signed with the wrong secret: gate must not trust it.
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(sessionCookie(t, "some-other-secret", uuid.New()))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?from=%2Fdashboard", rec.Header().Get(echo.HeaderLocation))
}

func TestGate_AnonymousCanReachAuthPages(t *testing.T) {
	e := newGateEcho(t)

	for _, path := range []string{"/login", "/signup"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, "path %s", path)
	}
}

func TestGate_PassesThroughAPIRoutes(t *testing.T) {
	e := newGateEcho(t)

	// API paths carry their own authentication; the gate must not redirect.
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestGate_BearerHeaderFallback(t *testing.T) {
	e := newGateEcho(t)
	userID := uuid.New()
	token, err := auth.NewJWTService(gateSecret).GenerateSessionToken(userID, "gate@example.com", "")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID.String(), rec.Body.String())
}
