package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/piksel-lt/orderdesk/internal/apperrors"
	portssvc "github.com/piksel-lt/orderdesk/internal/core/ports/services"
	"github.com/piksel-lt/orderdesk/internal/dto"
	"github.com/piksel-lt/orderdesk/internal/middleware"
)

// orderHandler handles HTTP requests related to orders.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

// newOrderHandler creates a new orderHandler.
func newOrderHandler(os portssvc.OrderSvcFacade) *orderHandler {
	return &orderHandler{
		orderService: os,
	}
}

// registerOrderRoutes registers routes related to orders.
func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := newOrderHandler(orderService)

	orders := rg.Group("/orders")
	{
		orders.GET("", h.listOrders)
		orders.GET("/:id", h.getOrderByID)
		orders.PATCH("/:id", h.updateOrder)
		orders.DELETE("/:id", h.deleteOrder)
		orders.GET("/:id/price-breakdown", h.getPriceBreakdown)
	}
}

// respondServiceError maps service errors onto HTTP statuses.
func respondServiceError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// listOrders godoc
// @Summary List orders
// @Description Retrieves a paginated list of orders, optionally filtered and sorted
// @Tags orders
// @Produce  json
// @Param   page query int false "Page number (1-based)" default(1)
// @Param   perPage query int false "Items per page" default(25)
// @Param   sort query string false "Sort field, `-` prefix for descending" default(-updated)
// @Param   filter query string false "Filter predicate, e.g. client~\"acme\" && approved=true"
// @Success 200 {object} dto.ListOrdersResponse
// @Failure 400 {object} map[string]string "Malformed filter or parameters"
// @Failure 500 {object} map[string]string "Failed to list orders"
// @Router /orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	var params dto.ListOrdersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list orders")
		return
	}

	c.JSON(http.StatusOK, dto.ToListOrdersResponse(page))
}

// getOrderByID godoc
// @Summary Get an order
// @Description Retrieves a single order by its ID
// @Tags orders
// @Produce  json
// @Param   id path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 500 {object} map[string]string "Failed to retrieve order"
// @Router /orders/{id} [get]
func (h *orderHandler) getOrderByID(c *gin.Context) {
	orderID := c.Param("id")

	order, err := h.orderService.GetOrderByID(c.Request.Context(), orderID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve order")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// updateOrder godoc
// @Summary Update an order
// @Description Applies a partial update to an order; omitted fields are left alone
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   id path string true "Order ID"
// @Param   order body dto.UpdateOrderRequest true "Fields to update"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 500 {object} map[string]string "Failed to update order"
// @Router /orders/{id} [patch]
func (h *orderHandler) updateOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("id")

	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), orderID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to update order")
		return
	}

	logger.Info("Order updated", slog.String("order_id", orderID))
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// deleteOrder godoc
// @Summary Delete an order
// @Description Removes an order permanently; its comments, reminders and attachment rows go with it
// @Tags orders
// @Produce  json
// @Param   id path string true "Order ID"
// @Success 204 "Order deleted"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 500 {object} map[string]string "Failed to delete order"
// @Router /orders/{id} [delete]
func (h *orderHandler) deleteOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("id")

	if err := h.orderService.DeleteOrder(c.Request.Context(), orderID); err != nil {
		respondServiceError(c, err, "Failed to delete order")
		return
	}

	logger.Info("Order deleted", slog.String("order_id", orderID))
	c.Status(http.StatusNoContent)
}

// getPriceBreakdown godoc
// @Summary Get an order's price breakdown
// @Description Prorates the final price over the calendar months of the broadcast range
// @Tags orders
// @Produce  json
// @Param   id path string true "Order ID"
// @Success 200 {object} dto.PriceBreakdownResponse
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 500 {object} map[string]string "Failed to compute breakdown"
// @Router /orders/{id}/price-breakdown [get]
func (h *orderHandler) getPriceBreakdown(c *gin.Context) {
	orderID := c.Param("id")

	order, shares, err := h.orderService.PriceBreakdown(c.Request.Context(), orderID)
	if err != nil {
		respondServiceError(c, err, "Failed to compute breakdown")
		return
	}

	c.JSON(http.StatusOK, dto.PriceBreakdownResponse{
		OrderID:    order.OrderID,
		From:       order.FromDate,
		To:         order.ToDate,
		FinalPrice: order.FinalPrice,
		Months:     shares,
	})
}
