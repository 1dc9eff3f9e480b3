package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

// createOrderRequest carries the fields a submitter may set. Username is
// accepted for compatibility with older clients and ignored: the owner is
// always the authenticated caller.
type createOrderRequest struct {
	Username    string   `json:"username"`
	Name        string   `json:"name"        validate:"required,min=3,max=50"`
	Description string   `json:"description" validate:"required,min=6,max=200"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	Quantity    *int     `json:"quantity"    validate:"required,gte=1"`
}

// updateOrderRequest is a partial content update. Status, approved_by, and
// approved_at are deliberately not bindable here: a payload carrying them is
// accepted but those fields never reach persistence.
type updateOrderRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,min=3,max=50"`
	Description *string  `json:"description" validate:"omitempty,min=6,max=200"`
	Price       *float64 `json:"price"       validate:"omitempty,gte=0"`
	Quantity    *int     `json:"quantity"    validate:"omitempty,gte=1"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// --- Response types ---
// Response-only types owned by the transport layer, intentionally separate
// from the domain types so the JSON contract is not coupled to internal
// changes.

type orderResponse struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Quantity    int        `json:"quantity"`
	Status      string     `json:"status"`
	ApprovedBy  *string    `json:"approved_by"`
	ApprovedAt  *time.Time `json:"approved_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type singleOrderResponse struct {
	Order orderResponse `json:"order"`
}

type paginationResponse struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

type listOrdersResponse struct {
	Orders     []orderResponse    `json:"orders"`
	Pagination paginationResponse `json:"pagination"`
}
