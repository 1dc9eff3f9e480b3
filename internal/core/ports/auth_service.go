package ports

import (
	"context"

	"github.com/orderdesk/approval-system/internal/core/domain"
)

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Role     string
}

// AuthService implements registration and role-asserted login.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.Account, error)
	// Login verifies the (email, password, claimed role) triple and returns a
	// signed session token. Every failure mode returns
	// domain.ErrInvalidCredentials so callers cannot probe which part failed.
	Login(ctx context.Context, email, password, role string) (string, *domain.Account, error)
}
