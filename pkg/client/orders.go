package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

const ordersPath = "/api/v1/orders"

// List fetches one page of orders. All params are optional; see ListParams.
func (c *Client) List(ctx context.Context, params ListParams) (*OrderPage, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.PerPage > 0 {
		query.Set("perPage", strconv.Itoa(params.PerPage))
	}
	if params.Sort != "" {
		query.Set("sort", params.Sort)
	}
	if params.Filter != "" {
		query.Set("filter", params.Filter)
	}

	var page OrderPage
	if err := c.doQueued(ctx, http.MethodGet, ordersPath, query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get fetches a single order by ID.
func (c *Client) Get(ctx context.Context, orderID string) (*Order, error) {
	var order Order
	if err := c.doQueued(ctx, http.MethodGet, ordersPath+"/"+orderID, nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Update applies a partial update and returns the updated order.
func (c *Client) Update(ctx context.Context, orderID string, patch OrderPatch) (*Order, error) {
	var order Order
	if err := c.doQueued(ctx, http.MethodPatch, ordersPath+"/"+orderID, nil, patch, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Delete removes an order. Its comments, reminders and attachment rows go
// with it.
func (c *Client) Delete(ctx context.Context, orderID string) error {
	return c.doQueued(ctx, http.MethodDelete, ordersPath+"/"+orderID, nil, nil, nil)
}

// Search runs a filter predicate against the first page of results, sorted
// by the server default. Use List for full control over paging and sorting.
func (c *Client) Search(ctx context.Context, filter string) (*OrderPage, error) {
	return c.List(ctx, ListParams{Filter: filter})
}

// PriceBreakdown fetches the per-month proration of an order's final price.
func (c *Client) PriceBreakdown(ctx context.Context, orderID string) (*PriceBreakdown, error) {
	var breakdown PriceBreakdown
	if err := c.doQueued(ctx, http.MethodGet, ordersPath+"/"+orderID+"/price-breakdown", nil, nil, &breakdown); err != nil {
		return nil, err
	}
	return &breakdown, nil
}

// Health checks that the server is up.
func (c *Client) Health(ctx context.Context) error {
	return c.doQueued(ctx, http.MethodGet, "/health", nil, nil, nil)
}
