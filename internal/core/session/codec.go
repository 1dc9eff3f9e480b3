// Package session implements the signed session token that carries the
// authenticated identity between requests.
//
// The claim embedded in the token is the sole source of authorization truth:
// Resolve never re-reads the credential store, so a role changed directly in
// the store only takes effect at the next login. The staleness window is the
// token TTL (30 days by default).
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/orderdesk/approval-system/internal/core/domain"
)

// DefaultTTL is the session validity window applied when none is configured.
const DefaultTTL = 30 * 24 * time.Hour

// Claims is the identity payload carried by a session token.
type Claims struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens. It is stateless.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec returns a Codec signing with secret. A non-positive ttl falls back
// to DefaultTTL.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token for the given account, valid for the codec TTL.
func (c *Codec) Issue(account *domain.Account, now time.Time) (string, error) {
	claims := Claims{
		AccountID: account.ID,
		Name:      account.Name,
		Email:     account.Email,
		Role:      account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Resolve verifies a token and returns its claims. It fails closed: a
// malformed, expired, or signature-invalid token yields ErrInvalidCredentials
// and never a partially populated claim.
func (c *Codec) Resolve(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidCredentials
	}
	return claims, nil
}

// TTL returns the configured session validity window.
func (c *Codec) TTL() time.Duration { return c.ttl }
