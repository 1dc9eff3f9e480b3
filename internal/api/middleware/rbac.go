package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/approval-system/internal/core/session"
)

// RBAC enforces role-based access control using the role frozen into the
// session claim. A request whose claim role is outside the allow-list is
// rejected with 403, distinct from the 401 the Auth middleware emits.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(ClaimsKey).(*session.Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if _, ok := allowed[claims.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
