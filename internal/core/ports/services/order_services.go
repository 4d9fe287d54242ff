package services

import (
	"context"

	"github.com/piksel-lt/orderdesk/internal/core/domain"
	"github.com/piksel-lt/orderdesk/internal/dto"
	"github.com/piksel-lt/orderdesk/internal/proration"
)

// OrderReaderSvc defines read operations for order data
type OrderReaderSvc interface {
	// ListOrders retrieves a paginated, filtered, sorted page of orders.
	ListOrders(ctx context.Context, params dto.ListOrdersParams) (*domain.OrderPage, error)

	// GetOrderByID retrieves a specific order by its unique identifier.
	GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error)
}

// OrderWriterSvc defines write operations for order data
type OrderWriterSvc interface {
	// UpdateOrder applies a partial update and returns the updated order.
	UpdateOrder(ctx context.Context, orderID string, req dto.UpdateOrderRequest) (*domain.Order, error)

	// DeleteOrder removes an order permanently.
	DeleteOrder(ctx context.Context, orderID string) error
}

// OrderCalculatorSvc defines calculation operations for order data
type OrderCalculatorSvc interface {
	// PriceBreakdown prorates the order's final price over the calendar
	// months its broadcast range touches.
	PriceBreakdown(ctx context.Context, orderID string) (*domain.Order, []proration.MonthShare, error)
}

// OrderSvcFacade combines all order-related service interfaces
// This is a facade for clients that need access to all operations
type OrderSvcFacade interface {
	OrderReaderSvc
	OrderWriterSvc
	OrderCalculatorSvc
}
