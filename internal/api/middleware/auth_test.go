package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/approval-system/internal/core/domain"
	"github.com/orderdesk/approval-system/internal/core/session"
)

type stubRevocation struct {
	revoked bool
	err     error
}

func (s *stubRevocation) IsRevoked(context.Context, string) (bool, error) {
	return s.revoked, s.err
}

func issueToken(t *testing.T, codec *session.Codec) string {
	t.Helper()
	token, err := codec.Issue(&domain.Account{
		ID:    "acc-1",
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  domain.RoleUser,
	}, time.Now().UTC())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func runAuth(t *testing.T, codec *session.Codec, revoked RevocationChecker, header string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(codec, revoked)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func TestAuth_ValidToken(t *testing.T) {
	codec := session.NewCodec("test-secret", time.Hour)
	token := issueToken(t, codec)

	c, err := runAuth(t, codec, &stubRevocation{}, "Bearer "+token)
	if err != nil {
		t.Fatalf("expected request to pass, got %v", err)
	}

	claims, ok := c.Get(ClaimsKey).(*session.Claims)
	if !ok {
		t.Fatalf("claims not set on context")
	}
	if claims.Name != "Alice" || claims.Role != domain.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if got, _ := c.Get(TokenKey).(string); got != token {
		t.Fatalf("raw token not set on context")
	}
}

func TestAuth_BearerSchemeIsCaseInsensitive(t *testing.T) {
	codec := session.NewCodec("test-secret", time.Hour)
	token := issueToken(t, codec)

	if _, err := runAuth(t, codec, nil, "bearer "+token); err != nil {
		t.Fatalf("expected lowercase scheme to pass, got %v", err)
	}
}

func TestAuth_Rejections(t *testing.T) {
	codec := session.NewCodec("test-secret", time.Hour)
	otherCodec := session.NewCodec("other-secret", time.Hour)
	expiredCodec := session.NewCodec("test-secret", time.Nanosecond)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"no scheme", issueToken(t, codec)},
		{"wrong scheme", "Basic " + issueToken(t, codec)},
		{"garbage token", "Bearer not-a-token"},
		{"wrong signature", "Bearer " + issueToken(t, otherCodec)},
		{"expired token", "Bearer " + issueToken(t, expiredCodec)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runAuth(t, codec, &stubRevocation{}, tc.header)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok || httpErr.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %v", err)
			}
		})
	}
}

func TestAuth_RevokedToken(t *testing.T) {
	codec := session.NewCodec("test-secret", time.Hour)
	token := issueToken(t, codec)

	_, err := runAuth(t, codec, &stubRevocation{revoked: true}, "Bearer "+token)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for revoked token, got %v", err)
	}
}

func TestAuth_NilRevocationCheckerSkipsLookup(t *testing.T) {
	codec := session.NewCodec("test-secret", time.Hour)
	token := issueToken(t, codec)

	if _, err := runAuth(t, codec, nil, "Bearer "+token); err != nil {
		t.Fatalf("expected request to pass without revocation store, got %v", err)
	}
}
