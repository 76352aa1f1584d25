package middleware

import (
	"net/http"
	"net/url"
	"strings"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"subtrack/internal/auth"
)

const userIDKey = "subtrack.userID"

// UserID returns the verified subject id injected by the gate or the secured
// API group. Handlers never see an unverified identity claim: if this returns
// ok, the token signature and expiry were checked.
func UserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(userIDKey).(uuid.UUID)
	return id, ok
}

// Gate classifies page requests before their handlers run:
//   - authenticated user on an auth page (login/signup) → redirect to /dashboard
//   - unauthenticated user on a protected page → redirect to /login,
//     preserving the original path as a return target
//   - otherwise forward, injecting the subject id when a valid token is present
//
// API and infrastructure paths are passed through untouched; they carry their
// own authentication.
func Gate(verifier auth.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if strings.HasPrefix(path, "/api") || path == "/healthz" || strings.HasPrefix(path, "/swagger") {
				return next(c)
			}

			var userID uuid.UUID
			authenticated := false
			if token := tokenFromRequest(c); token != "" {
				if id, err := verifier.Verify(token); err == nil {
					userID = id
					authenticated = true
				}
			}

			authPage := path == "/login" || path == "/signup"
			switch {
			case authPage && authenticated:
				return c.Redirect(http.StatusFound, "/dashboard")
			case !authPage && !authenticated:
				return c.Redirect(http.StatusFound, "/login?from="+url.QueryEscape(path))
			}

			if authenticated {
				c.Set(userIDKey, userID)
			}
			return next(c)
		}
	}
}

// InjectSubject runs after echo-jwt on the secured API group and moves the
// verified subject id from the parsed token into the request context.
// echo-jwt parses into golang-jwt v5 types, hence the version split with the
// issuing side.
func InjectSubject() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwtv5.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			subject, err := token.Claims.GetSubject()
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			id, err := uuid.Parse(subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			c.Set(userIDKey, id)
			return next(c)
		}
	}
}

func tokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(auth.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
