package ports

import (
	"context"

	"github.com/orderdesk/approval-system/internal/core/domain"
)

// AccountRepository defines the persistence interface for account records.
type AccountRepository interface {
	// FindByEmail returns the account with the given normalized email,
	// including the password hash, or domain.ErrAccountNotFound.
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	// Create inserts a new account. Unique-index violations surface as
	// domain.ErrEmailExists, domain.ErrPhoneExists, or domain.ErrNameExists.
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}
