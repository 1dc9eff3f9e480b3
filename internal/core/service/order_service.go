package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/orderdesk/approval-system/internal/core/domain"
	"github.com/orderdesk/approval-system/internal/core/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// OrderService implements the order ledger use-cases. Every operation derives
// the caller's scope before touching the repository; nothing reaches storage
// without passing the role and ownership gates.
type OrderService struct {
	repo ports.OrderRepository
	log  zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, log zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, log: log}
}

// Create inserts a pending order owned by the caller. Only submitters may
// create; the owner name always comes from the session claim, never from the
// request.
func (s *OrderService) Create(ctx context.Context, caller ports.Identity, in ports.CreateOrderInput) (*domain.Order, error) {
	if err := canCreate(caller); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	description := strings.TrimSpace(in.Description)
	if name == "" || description == "" || in.Price < 0 || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	order := &domain.Order{
		Username:    caller.Name,
		Name:        name,
		Description: description,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Status:      domain.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		s.log.Error().Err(err).Str("username", caller.Name).Msg("failed to create order")
		return nil, err
	}

	s.log.Info().Str("order_id", order.ID).Str("username", caller.Name).Msg("order created")
	return order, nil
}

// List returns one page of the caller's visible ledger, newest first.
func (s *OrderService) List(ctx context.Context, caller ports.Identity, in ports.ListOrdersInput) (*ports.ListOrdersResult, error) {
	filter, err := scopeFor(caller)
	if err != nil {
		return nil, err
	}

	filter.Page = in.Page
	if filter.Page < 1 {
		filter.Page = 1
	}
	filter.Limit = in.Limit
	if filter.Limit < 1 {
		filter.Limit = 1
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}

	orders, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.Error().Err(err).Str("role", caller.Role).Msg("failed to list orders")
		return nil, err
	}

	pages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &ports.ListOrdersResult{
		Orders: orders,
		Total:  total,
		Page:   filter.Page,
		Limit:  filter.Limit,
		Pages:  pages,
	}, nil
}

// Get returns a single order when it falls inside the caller's read scope.
func (s *OrderService) Get(ctx context.Context, caller ports.Identity, orderID string) (*domain.Order, error) {
	filter, err := scopeFor(caller)
	if err != nil {
		return nil, err
	}

	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !filter.Matches(order) {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

// UpdateContent applies a partial content update to an order the caller owns.
// Status and approval fields cannot travel through this path: the patch type
// does not carry them, so anything supplied upstream is already gone.
func (s *OrderService) UpdateContent(ctx context.Context, caller ports.Identity, orderID string, patch ports.ContentPatch) (*domain.Order, error) {
	if caller.Role != domain.RoleUser {
		return nil, domain.ErrForbidden
	}
	if err := validateContentPatch(patch); err != nil {
		return nil, err
	}

	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := canMutateContent(caller, order); err != nil {
		return nil, err
	}

	if patch.Empty() {
		return order, nil
	}

	updated, err := s.repo.UpdateContent(ctx, orderID, patch, time.Now().UTC())
	if err != nil {
		s.log.Error().Err(err).Str("order_id", orderID).Msg("failed to update order")
		return nil, err
	}

	s.log.Info().Str("order_id", orderID).Str("username", caller.Name).Msg("order updated")
	return updated, nil
}

// UpdateStatus transitions an order's status. Moving into approved or
// rejected stamps the approver and timestamp; moving back to pending clears
// both so no stale attribution survives.
func (s *OrderService) UpdateStatus(ctx context.Context, caller ports.Identity, orderID string, status string) (*domain.Order, error) {
	if err := canMutateStatus(caller); err != nil {
		return nil, err
	}

	next := domain.OrderStatus(strings.ToLower(strings.TrimSpace(status)))
	if !domain.ValidStatus(next) {
		return nil, domain.ErrInvalidStatus
	}

	if _, err := s.repo.FindByID(ctx, orderID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	patch := ports.StatusPatch{Status: next}
	if next != domain.StatusPending {
		approver := caller.Name
		patch.ApprovedBy = &approver
		patch.ApprovedAt = &now
	}

	updated, err := s.repo.UpdateStatus(ctx, orderID, patch, now)
	if err != nil {
		s.log.Error().Err(err).Str("order_id", orderID).Msg("failed to update order status")
		return nil, err
	}

	s.log.Info().
		Str("order_id", orderID).
		Str("status", string(next)).
		Str("approver", caller.Name).
		Msg("order status updated")
	return updated, nil
}

// Delete removes an order the caller owns. A missing id reports not-found on
// the first and on every repeated call.
func (s *OrderService) Delete(ctx context.Context, caller ports.Identity, orderID string) error {
	if caller.Role != domain.RoleUser {
		return domain.ErrForbidden
	}

	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := canMutateContent(caller, order); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, orderID); err != nil {
		s.log.Error().Err(err).Str("order_id", orderID).Msg("failed to delete order")
		return err
	}

	s.log.Info().Str("order_id", orderID).Str("username", caller.Name).Msg("order deleted")
	return nil
}

func validateContentPatch(patch ports.ContentPatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return domain.ErrInvalidInput
	}
	if patch.Description != nil && strings.TrimSpace(*patch.Description) == "" {
		return domain.ErrInvalidInput
	}
	if patch.Price != nil && *patch.Price < 0 {
		return domain.ErrInvalidInput
	}
	if patch.Quantity != nil && *patch.Quantity < 1 {
		return domain.ErrInvalidInput
	}
	return nil
}
