package handler

import (
	"github.com/orderdesk/approval-system/internal/core/domain"
	"github.com/orderdesk/approval-system/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createOrderRequest) ports.CreateOrderInput {
	return ports.CreateOrderInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Quantity:    *req.Quantity,
	}
}

func toContentPatch(req updateOrderRequest) ports.ContentPatch {
	return ports.ContentPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
	}
}

// --- Domain → Response ---

func toOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		ID:          o.ID,
		Username:    o.Username,
		Name:        o.Name,
		Description: o.Description,
		Price:       o.Price,
		Quantity:    o.Quantity,
		Status:      string(o.Status),
		ApprovedBy:  o.ApprovedBy,
		ApprovedAt:  o.ApprovedAt,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func toListResponse(result *ports.ListOrdersResult) listOrdersResponse {
	orders := make([]orderResponse, 0, len(result.Orders))
	for _, o := range result.Orders {
		orders = append(orders, toOrderResponse(o))
	}
	return listOrdersResponse{
		Orders: orders,
		Pagination: paginationResponse{
			Total: result.Total,
			Page:  result.Page,
			Limit: result.Limit,
			Pages: result.Pages,
		},
	}
}
