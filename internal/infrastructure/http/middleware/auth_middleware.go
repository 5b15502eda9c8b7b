package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/one-on-one-manager/errors"
	"github.com/johnquangdev/one-on-one-manager/pkg/jwt"
)

// Echo context keys set by EchoAuth
const (
	UserIDKey   = "user_id"
	UsernameKey = "username"
)

// EchoAuth returns an Echo middleware that validates the bearer access token
// and sets "user_id" (uint) and "username" into the Echo context
func EchoAuth(jwtManager *jwt.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return errors.ErrUnauthenticated()
			}

			claims, err := jwtManager.ValidateAccessToken(token)
			if err != nil {
				appErr := errors.ErrInvalidToken()
				appErr.Raw = err
				return appErr
			}

			c.Set(UserIDKey, claims.UserID)
			c.Set(UsernameKey, claims.Username)

			return next(c)
		}
	}
}

// UserID returns the authenticated user id set by EchoAuth
func UserID(c echo.Context) (uint, bool) {
	id, ok := c.Get(UserIDKey).(uint)
	return id, ok && id != 0
}

func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
