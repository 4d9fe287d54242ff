package repositories

import (
	"context"

	"github.com/piksel-lt/orderdesk/internal/core/domain"
)

// OrderReader defines read operations for order data
type OrderReader interface {
	// ListOrders retrieves a page of orders matching the query.
	ListOrders(ctx context.Context, query domain.OrderListQuery) (*domain.OrderPage, error)

	// FindOrderByID retrieves a specific order by its ID.
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)

	// ListOrdersInYear retrieves approved orders whose date range touches the given year.
	ListOrdersInYear(ctx context.Context, year int) ([]domain.Order, error)
}

// OrderWriter defines write operations for order data
type OrderWriter interface {
	// SaveOrder persists a new order.
	SaveOrder(ctx context.Context, order domain.Order) error

	// UpdateOrder updates an existing order's details.
	UpdateOrder(ctx context.Context, order domain.Order) error

	// DeleteOrder removes an order permanently.
	DeleteOrder(ctx context.Context, orderID string) error

	// CountOrders returns the total number of persisted orders.
	CountOrders(ctx context.Context) (int64, error)
}

// OrderRepositoryFacade combines all order-related repository interfaces
// This is a facade for clients that need access to all operations
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}
