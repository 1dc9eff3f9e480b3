package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/approval-system/internal/api/middleware"
	"github.com/orderdesk/approval-system/internal/core/ports"
	"github.com/orderdesk/approval-system/internal/core/session"
)

// ctxIdentity extracts the caller identity injected by the Auth middleware
// and performs a fast-fail check before any service call: a claim with an
// empty name or role is structurally valid but operationally unusable, so it
// is rejected with 401 rather than passed downstream.
func ctxIdentity(c echo.Context) (ports.Identity, error) {
	claims, ok := c.Get(middleware.ClaimsKey).(*session.Claims)
	if !ok {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	if claims.Name == "" || claims.Role == "" {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing identity")
	}

	return ports.Identity{
		AccountID: claims.AccountID,
		Name:      claims.Name,
		Role:      claims.Role,
	}, nil
}
