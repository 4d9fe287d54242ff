package dto

import (
	"time"

	"github.com/piksel-lt/orderdesk/internal/core/domain"
	"github.com/piksel-lt/orderdesk/internal/dateutil"
)

// ListOrdersParams defines query parameters for listing orders.
// Sort accepts a whitelisted field name, with a `-` prefix for descending.
// Filter accepts a textual predicate, e.g. `client~"acme" && approved=true`.
type ListOrdersParams struct {
	Page    int    `form:"page,default=1"`
	PerPage int    `form:"perPage,default=25"`
	Sort    string `form:"sort,default=-updated"`
	Filter  string `form:"filter"`
}

// OrderResponse defines the data returned for an order.
// FromDate/ToDate are normalized for display; FromWeek/ToWeek carry the
// dashboard's legacy week labels ("W34"), empty when the date is unparseable.
type OrderResponse struct {
	ID            string    `json:"id"`
	Client        string    `json:"client"`
	Agency        string    `json:"agency"`
	InvoiceID     string    `json:"invoice_id"`
	Approved      bool      `json:"approved"`
	Viaduct       bool      `json:"viaduct"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	FromWeek      string    `json:"from_week"`
	ToWeek        string    `json:"to_week"`
	MediaReceived bool      `json:"media_received"`
	FinalPrice    float64   `json:"final_price"`
	InvoiceSent   bool      `json:"invoice_sent"`
	Created       time.Time `json:"created"`
	Updated       time.Time `json:"updated"`
}

// UpdateOrderRequest defines the data allowed for a partial order update.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateOrderRequest struct {
	Client        *string  `json:"client"`
	Agency        *string  `json:"agency"`
	InvoiceID     *string  `json:"invoice_id"`
	Approved      *bool    `json:"approved"`
	Viaduct       *bool    `json:"viaduct"`
	From          *string  `json:"from"`
	To            *string  `json:"to"`
	MediaReceived *bool    `json:"media_received"`
	FinalPrice    *float64 `json:"final_price"`
	InvoiceSent   *bool    `json:"invoice_sent"`
}

// ToOrderResponse converts a domain.Order to OrderResponse DTO
func ToOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:            o.OrderID,
		Client:        o.Client,
		Agency:        o.Agency,
		InvoiceID:     o.InvoiceID,
		Approved:      o.Approved,
		Viaduct:       o.Viaduct,
		From:          dateutil.Normalize(o.FromDate),
		To:            dateutil.Normalize(o.ToDate),
		FromWeek:      dateutil.WeekLabel(o.FromDate),
		ToWeek:        dateutil.WeekLabel(o.ToDate),
		MediaReceived: o.MediaReceived,
		FinalPrice:    o.FinalPrice,
		InvoiceSent:   o.InvoiceSent,
		Created:       o.CreatedAt,
		Updated:       o.UpdatedAt,
	}
}

// ListOrdersResponse defines the paginated order listing payload.
type ListOrdersResponse struct {
	Items      []OrderResponse `json:"items"`
	Page       int             `json:"page"`
	PerPage    int             `json:"perPage"`
	TotalItems int             `json:"totalItems"`
	TotalPages int             `json:"totalPages"`
}

// ToListOrdersResponse converts a domain.OrderPage to the listing DTO
func ToListOrdersResponse(page *domain.OrderPage) ListOrdersResponse {
	items := make([]OrderResponse, len(page.Items))
	for i := range page.Items {
		items[i] = ToOrderResponse(&page.Items[i])
	}
	return ListOrdersResponse{
		Items:      items,
		Page:       page.Page,
		PerPage:    page.PerPage,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	}
}
