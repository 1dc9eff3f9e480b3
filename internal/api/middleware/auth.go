package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/approval-system/internal/core/session"
)

// Context keys set by Auth for downstream handlers.
const (
	ClaimsKey = "claims"
	TokenKey  = "token"
)

// RevocationChecker reports whether a token has been signed out.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// Auth resolves the bearer token through the session codec and injects the
// claims into the request context. It fails closed: missing, malformed,
// expired, signature-invalid, or revoked tokens all yield 401 with the same
// message.
func Auth(codec *session.Codec, revoked RevocationChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := codec.Resolve(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if revoked != nil {
				isRevoked, err := revoked.IsRevoked(c.Request().Context(), parts[1])
				if err != nil {
					return err
				}
				if isRevoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
			}

			c.Set(ClaimsKey, claims)
			c.Set(TokenKey, parts[1])

			return next(c)
		}
	}
}
