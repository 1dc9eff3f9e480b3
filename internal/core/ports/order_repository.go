package ports

import (
	"context"
	"time"

	"github.com/orderdesk/approval-system/internal/core/domain"
)

// ListOrdersFilter is the read scope derived from a role plus pagination.
// Exactly one of Status or Username is set for the known roles.
type ListOrdersFilter struct {
	Status   domain.OrderStatus // non-empty = filter by status (manager, accountant)
	Username string             // non-empty = filter by owner (user)
	Page     int                // 1-based
	Limit    int                // rows per page, capped at 100 by the service
}

// Matches reports whether an order falls inside the filter's read scope.
func (f ListOrdersFilter) Matches(o *domain.Order) bool {
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.Username != "" && o.Username != f.Username {
		return false
	}
	return true
}

// ContentPatch is a partial content update. Nil fields are left untouched.
// Status and approval fields are deliberately absent: they are never settable
// through a content update.
type ContentPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Quantity    *int
}

// Empty reports whether the patch changes nothing.
func (p ContentPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil && p.Quantity == nil
}

// StatusPatch is a status transition. ApprovedBy/ApprovedAt are nil when the
// target status is pending, non-nil otherwise.
type StatusPatch struct {
	Status     domain.OrderStatus
	ApprovedBy *string
	ApprovedAt *time.Time
}

// OrderRepository defines persistence operations for the order ledger.
// Single-document updates and deletes are atomic at the storage layer;
// concurrent writers are resolved last-write-wins.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	// List returns a page of orders matching filter, newest first, plus the
	// total count of matching records.
	List(ctx context.Context, filter ListOrdersFilter) ([]*domain.Order, int64, error)
	UpdateContent(ctx context.Context, id string, patch ContentPatch, updatedAt time.Time) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, patch StatusPatch, updatedAt time.Time) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}
