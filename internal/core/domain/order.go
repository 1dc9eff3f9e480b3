package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the approval state of an order.
type OrderStatus string

const (
	StatusPending  OrderStatus = "pending"
	StatusApproved OrderStatus = "approved"
	StatusRejected OrderStatus = "rejected"
)

// ValidStatus reports whether s is one of the three known statuses.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidID     = errors.New("invalid order id")
	ErrInvalidStatus = errors.New("invalid status")
	ErrForbidden     = errors.New("access forbidden")
	ErrNotOwner      = errors.New("not your order")
	ErrInvalidRole   = errors.New("invalid role")
)

// Order is the core aggregate of the ledger. Username is the display name of
// the submitter who created the order and never changes afterwards; ownership
// checks compare it against the session claim's name. ApprovedBy/ApprovedAt
// are both null exactly when the status is pending.
type Order struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	Username    string      `json:"username" bson:"username"`
	Name        string      `json:"name" bson:"name"`
	Description string      `json:"description" bson:"description"`
	Price       float64     `json:"price" bson:"price"`
	Quantity    int         `json:"quantity" bson:"quantity"`
	Status      OrderStatus `json:"status" bson:"status"`
	ApprovedBy  *string     `json:"approved_by" bson:"approved_by"`
	ApprovedAt  *time.Time  `json:"approved_at" bson:"approved_at"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" bson:"updated_at"`
}
