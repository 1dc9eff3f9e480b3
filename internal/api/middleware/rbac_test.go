package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/approval-system/internal/core/domain"
	"github.com/orderdesk/approval-system/internal/core/session"
)

func runRBAC(t *testing.T, claims *session.Claims, allowedRoles ...string) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		c.Set(ClaimsKey, claims)
	}

	handler := RBAC(allowedRoles...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(c)
}

func TestRBAC_AllowsListedRole(t *testing.T) {
	claims := &session.Claims{Role: domain.RoleManager}
	if err := runRBAC(t, claims, domain.RoleUser, domain.RoleManager); err != nil {
		t.Fatalf("expected listed role to pass, got %v", err)
	}
}

func TestRBAC_ForbidsUnlistedRole(t *testing.T) {
	claims := &session.Claims{Role: domain.RoleAccountant}
	err := runRBAC(t, claims, domain.RoleManager)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}

func TestRBAC_MissingClaims(t *testing.T) {
	err := runRBAC(t, nil, domain.RoleUser)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %v", err)
	}
}
