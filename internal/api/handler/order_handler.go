package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/approval-system/internal/api/metrics"
	"github.com/orderdesk/approval-system/internal/core/domain"
	"github.com/orderdesk/approval-system/internal/core/ports"
)

// OrderHandler handles HTTP requests for order operations.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// List handles GET /v1/orders — one page of the caller's visible ledger.
//
// @Summary      List orders visible to the caller's role
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Page size (default 10, max 100)"
// @Success      200    {object}  listOrdersResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /v1/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page == 0 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit == 0 {
		limit = 10
	}

	result, err := h.service.List(c.Request().Context(), caller, ports.ListOrdersInput{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return orderError(c, err)
	}

	return c.JSON(http.StatusOK, toListResponse(result))
}

// Create handles POST /v1/orders — submitters only.
//
// @Summary      Create a new order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      201   {object}  singleOrderResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	order, err := h.service.Create(c.Request().Context(), caller, toCreateInput(req))
	if err != nil {
		return orderError(c, err)
	}

	metrics.OrdersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, singleOrderResponse{Order: toOrderResponse(order)})
}

// Get handles GET /v1/orders/:id.
//
// @Summary      Get a single order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Order id"
// @Success      200  {object}  singleOrderResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	order, err := h.service.Get(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return orderError(c, err)
	}

	return c.JSON(http.StatusOK, singleOrderResponse{Order: toOrderResponse(order)})
}

// Update handles PUT /v1/orders/:id — content update by the owning
// submitter. Status-related payload fields are dropped before persistence.
//
// @Summary      Update an order's content
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Order id"
// @Param        body  body      updateOrderRequest  true  "Fields to change"
// @Success      200   {object}  singleOrderResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/orders/{id} [put]
func (h *OrderHandler) Update(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	order, err := h.service.UpdateContent(c.Request().Context(), caller, c.Param("id"), toContentPatch(req))
	if err != nil {
		return orderError(c, err)
	}

	return c.JSON(http.StatusOK, singleOrderResponse{Order: toOrderResponse(order)})
}

// UpdateStatus handles PATCH /v1/orders/:id/status — approvers only.
//
// @Summary      Approve, reject, or reopen an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Order id"
// @Param        body  body      updateStatusRequest  true  "Target status"
// @Success      200   {object}  singleOrderResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	order, err := h.service.UpdateStatus(c.Request().Context(), caller, c.Param("id"), req.Status)
	if err != nil {
		return orderError(c, err)
	}

	metrics.OrderStatusTransitionsTotal.WithLabelValues(string(order.Status)).Inc()
	return c.JSON(http.StatusOK, singleOrderResponse{Order: toOrderResponse(order)})
}

// Delete handles DELETE /v1/orders/:id — the owning submitter only.
//
// @Summary      Delete an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Order id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return orderError(c, err)
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "order deleted"})
}

// orderError maps the ledger's domain errors onto HTTP responses. Anything
// unrecognised bubbles up to the central error handler as a generic 500.
func orderError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidID), errors.Is(err, domain.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrOrderNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "order not found"})
	case errors.Is(err, domain.ErrNotOwner):
		return c.JSON(http.StatusForbidden, errorResponse{Error: "forbidden: not your order"})
	case errors.Is(err, domain.ErrForbidden):
		return c.JSON(http.StatusForbidden, errorResponse{Error: "forbidden"})
	case errors.Is(err, domain.ErrInvalidRole):
		return c.JSON(http.StatusForbidden, errorResponse{Error: "invalid role"})
	case errors.Is(err, domain.ErrInvalidStatus):
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: "invalid status"})
	}
	return err
}
