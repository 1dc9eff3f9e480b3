package ports

import (
	"context"

	"github.com/orderdesk/approval-system/internal/core/domain"
)

// Identity is the authenticated caller as carried by the session claim.
// Ownership checks use Name, not AccountID: orders record their creator by
// display name and names are unique at the store level.
type Identity struct {
	AccountID string
	Name      string
	Role      string
}

// CreateOrderInput carries the fields a submitter may set at creation. The
// owner is always the caller; any owner supplied in the request body is
// ignored upstream.
type CreateOrderInput struct {
	Name        string
	Description string
	Price       float64
	Quantity    int
}

// ListOrdersInput carries pagination. Values outside [1,∞) for Page and
// [1,100] for Limit are clamped by the service.
type ListOrdersInput struct {
	Page  int
	Limit int
}

// ListOrdersResult is one page of the caller's visible ledger.
type ListOrdersResult struct {
	Orders []*domain.Order
	Total  int64
	Page   int
	Limit  int
	Pages  int
}

// OrderService defines the use-case operations on the order ledger. Methods
// authenticate nothing themselves (callers pass the resolved Identity), but
// each enforces the role/ownership scope before touching the repository.
type OrderService interface {
	Create(ctx context.Context, caller Identity, in CreateOrderInput) (*domain.Order, error)
	List(ctx context.Context, caller Identity, in ListOrdersInput) (*ListOrdersResult, error)
	Get(ctx context.Context, caller Identity, orderID string) (*domain.Order, error)
	UpdateContent(ctx context.Context, caller Identity, orderID string, patch ContentPatch) (*domain.Order, error)
	UpdateStatus(ctx context.Context, caller Identity, orderID string, status string) (*domain.Order, error)
	Delete(ctx context.Context, caller Identity, orderID string) error
}
