package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/piksel-lt/orderdesk/internal/core/domain"
	portsrepo "github.com/piksel-lt/orderdesk/internal/core/ports/repositories"
	portssvc "github.com/piksel-lt/orderdesk/internal/core/ports/services"
	"github.com/piksel-lt/orderdesk/internal/dateutil"
	"github.com/piksel-lt/orderdesk/internal/dto"
	"github.com/piksel-lt/orderdesk/internal/platform/cache"
	"github.com/piksel-lt/orderdesk/internal/proration"
)

const (
	defaultPerPage = 25
	maxPerPage     = 200
)

type orderService struct {
	BaseService
	orderRepo portsrepo.OrderRepositoryFacade
	cache     cache.Store
	cacheTTL  time.Duration
}

// NewOrderService creates the order service. The cache store is the
// read-through layer for single-order reads; pass the noop store to
// disable caching.
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade, cacheStore cache.Store, cacheTTL time.Duration) portssvc.OrderSvcFacade {
	return &orderService{orderRepo: orderRepo, cache: cacheStore, cacheTTL: cacheTTL}
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

func orderCacheKey(orderID string) string {
	return "orders:" + orderID
}

// ListOrders retrieves a page of orders. Page and perPage are clamped to
// sane bounds; the filter predicate is passed down for SQL translation.
func (s *orderService) ListOrders(ctx context.Context, params dto.ListOrdersParams) (*domain.OrderPage, error) {
	query := domain.OrderListQuery{
		Page:    params.Page,
		PerPage: params.PerPage,
		Sort:    params.Sort,
		Filter:  params.Filter,
	}
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PerPage <= 0 {
		query.PerPage = defaultPerPage
	}
	if query.PerPage > maxPerPage {
		query.PerPage = maxPerPage
	}

	page, err := s.orderRepo.ListOrders(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders in service: %w", err)
	}
	if page.Items == nil {
		page.Items = []domain.Order{}
	}
	return page, nil
}

// GetOrderByID retrieves an order, consulting the cache first.
func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	key := orderCacheKey(orderID)

	if data, err := s.cache.Get(ctx, key); err == nil {
		var cached domain.Order
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
		// Corrupt entry, drop it and fall through to the database.
		_ = s.cache.Delete(ctx, key)
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.LogError(ctx, err, "cache read failed", slog.String("order_id", orderID))
	}

	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(order); err == nil {
		if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
			s.LogError(ctx, err, "cache write failed", slog.String("order_id", orderID))
		}
	}
	return order, nil
}

// UpdateOrder applies a partial update. Date fields are normalized to
// the canonical format when they parse; the update bumps updated_at and
// invalidates the cache entry.
func (s *orderService) UpdateOrder(ctx context.Context, orderID string, req dto.UpdateOrderRequest) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if req.Client != nil {
		order.Client = *req.Client
	}
	if req.Agency != nil {
		order.Agency = *req.Agency
	}
	if req.InvoiceID != nil {
		order.InvoiceID = *req.InvoiceID
	}
	if req.Approved != nil {
		order.Approved = *req.Approved
	}
	if req.Viaduct != nil {
		order.Viaduct = *req.Viaduct
	}
	if req.From != nil {
		order.FromDate = dateutil.Normalize(*req.From)
	}
	if req.To != nil {
		order.ToDate = dateutil.Normalize(*req.To)
	}
	if req.MediaReceived != nil {
		order.MediaReceived = *req.MediaReceived
	}
	if req.FinalPrice != nil {
		order.FinalPrice = *req.FinalPrice
	}
	if req.InvoiceSent != nil {
		order.InvoiceSent = *req.InvoiceSent
	}
	order.UpdatedAt = time.Now()

	if err := s.orderRepo.UpdateOrder(ctx, *order); err != nil {
		return nil, fmt.Errorf("failed to update order in service: %w", err)
	}

	if err := s.cache.Delete(ctx, orderCacheKey(orderID)); err != nil {
		s.LogError(ctx, err, "cache invalidation failed", slog.String("order_id", orderID))
	}
	return order, nil
}

// DeleteOrder removes an order and invalidates its cache entry.
func (s *orderService) DeleteOrder(ctx context.Context, orderID string) error {
	if err := s.orderRepo.DeleteOrder(ctx, orderID); err != nil {
		return err
	}
	if err := s.cache.Delete(ctx, orderCacheKey(orderID)); err != nil {
		s.LogError(ctx, err, "cache invalidation failed", slog.String("order_id", orderID))
	}
	return nil
}

// PriceBreakdown prorates the order's final price over the months of its
// broadcast range. An empty breakdown means the range or price did not
// allow one.
func (s *orderService) PriceBreakdown(ctx context.Context, orderID string) (*domain.Order, []proration.MonthShare, error) {
	order, err := s.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	shares := proration.Calculate(order.FromDate, order.ToDate, order.FinalPrice)
	if shares == nil {
		shares = []proration.MonthShare{}
	}
	return order, shares, nil
}
