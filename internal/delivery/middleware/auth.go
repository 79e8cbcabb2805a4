package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"linkedpro/internal/infrastructure"
	"linkedpro/internal/session"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextKeySession = "session"
	ContextKeyTokenID = "token_id"
	ContextKeyUserID  = "user_id"
)

// Auth requires a bearer token whose session is still live in the registry.
// A valid but revoked token (logged out) is rejected like a bad one.
func Auth(jwtService *infrastructure.JWTService, sessions *session.Registry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := jwtService.ParseToken(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sess := sessions.Get(claims.TokenID)
			if sess == nil || sess.UserID() != claims.UserID {
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
			}

			c.Set(ContextKeySession, sess)
			c.Set(ContextKeyTokenID, claims.TokenID)
			c.Set(ContextKeyUserID, claims.UserID)
			return next(c)
		}
	}
}

// CurrentSession returns the session placed on the context by Auth.
func CurrentSession(c echo.Context) *session.Session {
	sess, _ := c.Get(ContextKeySession).(*session.Session)
	return sess
}

// CurrentUserID returns the authenticated user id, or 0 outside Auth.
func CurrentUserID(c echo.Context) int {
	id, _ := c.Get(ContextKeyUserID).(int)
	return id
}

// CurrentTokenID returns the token id (jti), or "" outside Auth.
func CurrentTokenID(c echo.Context) string {
	id, _ := c.Get(ContextKeyTokenID).(string)
	return id
}
