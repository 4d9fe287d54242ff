package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/piksel-lt/orderdesk/internal/apperrors"
	"github.com/piksel-lt/orderdesk/internal/core/domain"
	portsrepo "github.com/piksel-lt/orderdesk/internal/core/ports/repositories"
	"github.com/piksel-lt/orderdesk/internal/filterexpr"
	"github.com/piksel-lt/orderdesk/internal/models"
)

type PgxOrderRepository struct {
	pool *pgxpool.Pool
}

// newPgxOrderRepository creates a new repository for order data.
func newPgxOrderRepository(pool *pgxpool.Pool) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{pool: pool}
}

// Ensure PgxOrderRepository implements portsrepo.OrderRepositoryFacade
var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

// sortColumns whitelists the sortable API field names and maps them to
// their columns. Anything else falls back to the default sort.
var sortColumns = map[string]string{
	"updated":     "updated_at",
	"created":     "created_at",
	"client":      "client",
	"agency":      "agency",
	"invoice_id":  "invoice_id",
	"from":        "from_date",
	"to":          "to_date",
	"final_price": "final_price",
}

const defaultOrderBy = "updated_at DESC"

// orderBy translates the API sort expression (`-` prefix for descending)
// into an ORDER BY clause restricted to the whitelist.
func orderBy(sort string) string {
	field := strings.TrimSpace(sort)
	dir := "ASC"
	if strings.HasPrefix(field, "-") {
		field = field[1:]
		dir = "DESC"
	}
	col, ok := sortColumns[field]
	if !ok {
		return defaultOrderBy
	}
	return col + " " + dir
}

const orderColumns = `order_id, client, agency, invoice_id, approved, viaduct, from_date, to_date, media_received, final_price, invoice_sent, created_at, updated_at`

// Helper to convert domain.Order to models.Order for DB storage
func toModelOrder(d domain.Order) models.Order {
	return models.Order{
		OrderID:       d.OrderID,
		Client:        d.Client,
		Agency:        d.Agency,
		InvoiceID:     d.InvoiceID,
		Approved:      d.Approved,
		Viaduct:       d.Viaduct,
		FromDate:      d.FromDate,
		ToDate:        d.ToDate,
		MediaReceived: d.MediaReceived,
		FinalPrice:    d.FinalPrice,
		InvoiceSent:   d.InvoiceSent,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// Helper to convert models.Order from DB to domain.Order
func toDomainOrder(m models.Order) domain.Order {
	return domain.Order{
		OrderID:       m.OrderID,
		Client:        m.Client,
		Agency:        m.Agency,
		InvoiceID:     m.InvoiceID,
		Approved:      m.Approved,
		Viaduct:       m.Viaduct,
		FromDate:      m.FromDate,
		ToDate:        m.ToDate,
		MediaReceived: m.MediaReceived,
		FinalPrice:    m.FinalPrice,
		InvoiceSent:   m.InvoiceSent,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func scanOrder(row pgx.Row) (models.Order, error) {
	var m models.Order
	err := row.Scan(
		&m.OrderID,
		&m.Client,
		&m.Agency,
		&m.InvoiceID,
		&m.Approved,
		&m.Viaduct,
		&m.FromDate,
		&m.ToDate,
		&m.MediaReceived,
		&m.FinalPrice,
		&m.InvoiceSent,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// ListOrders retrieves one page of orders matching the query. The filter
// predicate is translated to a parameterized WHERE clause; a malformed
// predicate surfaces as ErrValidation.
func (r *PgxOrderRepository) ListOrders(ctx context.Context, query domain.OrderListQuery) (*domain.OrderPage, error) {
	where, args, err := filterexpr.ToSQL(query.Filter, 0)
	if err != nil {
		return nil, err
	}

	countQuery := `SELECT COUNT(*) FROM orders`
	if where != "" {
		countQuery += ` WHERE ` + where
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	listQuery := `SELECT ` + orderColumns + ` FROM orders`
	if where != "" {
		listQuery += ` WHERE ` + where
	}
	listQuery += ` ORDER BY ` + orderBy(query.Sort)
	listQuery += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, query.PerPage, query.Offset())

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var items []domain.Order
	for rows.Next() {
		m, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		items = append(items, toDomainOrder(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating order rows: %w", err)
	}

	totalPages := 0
	if query.PerPage > 0 {
		totalPages = (total + query.PerPage - 1) / query.PerPage
	}

	return &domain.OrderPage{
		Items:      items,
		Page:       query.Page,
		PerPage:    query.PerPage,
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}

// FindOrderByID retrieves an order by its ID.
func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1;`

	m, err := scanOrder(r.pool.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order by ID %s: %w", orderID, err)
	}

	d := toDomainOrder(m)
	return &d, nil
}

// ListOrdersInYear retrieves approved orders whose [from,to] range touches
// the given year. Text comparison is correct for canonical dates; rows
// with unparseable legacy dates fall outside every year on purpose.
func (r *PgxOrderRepository) ListOrdersInYear(ctx context.Context, year int) ([]domain.Order, error) {
	yearStart := fmt.Sprintf("%04d-01-01", year)
	yearEnd := fmt.Sprintf("%04d-12-31", year)

	query := `SELECT ` + orderColumns + ` FROM orders
		WHERE approved = TRUE AND from_date <= $1 AND to_date >= $2
		ORDER BY from_date ASC;`

	rows, err := r.pool.Query(ctx, query, yearEnd, yearStart)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders for year %d: %w", year, err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		m, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, toDomainOrder(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating order rows: %w", err)
	}
	return orders, nil
}

// SaveOrder inserts a new order.
func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	m := toModelOrder(order)

	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.pool.Exec(ctx, query,
		m.OrderID,
		m.Client,
		m.Agency,
		m.InvoiceID,
		m.Approved,
		m.Viaduct,
		m.FromDate,
		m.ToDate,
		m.MediaReceived,
		m.FinalPrice,
		m.InvoiceSent,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: order with ID %s already exists", apperrors.ErrDuplicate, m.OrderID)
		}
		return fmt.Errorf("failed to save order %s: %w", m.OrderID, err)
	}
	return nil
}

// UpdateOrder persists the full state of an existing order.
func (r *PgxOrderRepository) UpdateOrder(ctx context.Context, order domain.Order) error {
	m := toModelOrder(order)

	query := `
		UPDATE orders
		SET client = $2, agency = $3, invoice_id = $4, approved = $5, viaduct = $6,
		    from_date = $7, to_date = $8, media_received = $9, final_price = $10,
		    invoice_sent = $11, updated_at = $12
		WHERE order_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.OrderID,
		m.Client,
		m.Agency,
		m.InvoiceID,
		m.Approved,
		m.Viaduct,
		m.FromDate,
		m.ToDate,
		m.MediaReceived,
		m.FinalPrice,
		m.InvoiceSent,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update order %s: %w", m.OrderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteOrder removes an order. Dependent comment/reminder/attachment rows
// go with it via FK cascade.
func (r *PgxOrderRepository) DeleteOrder(ctx context.Context, orderID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE order_id = $1;`, orderID)
	if err != nil {
		return fmt.Errorf("failed to delete order %s: %w", orderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountOrders returns the total number of persisted orders.
func (r *PgxOrderRepository) CountOrders(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}
