package client

import "time"

// Order mirrors the order payload served by the API. From and To are
// canonical YYYY-MM-DD dates; FromWeek and ToWeek carry the dashboard's
// legacy week labels ("W34").
type Order struct {
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

// OrderPage is one page of an order listing.
type OrderPage struct {
	Items      []Order `json:"items"`
	Page       int     `json:"page"`
	PerPage    int     `json:"perPage"`
	TotalItems int     `json:"totalItems"`
	TotalPages int     `json:"totalPages"`
}

// ListParams selects, orders and pages an order listing. Zero values fall
// back to server defaults (page 1, 25 per page, newest-updated first).
type ListParams struct {
	Page    int
	PerPage int
	Sort    string
	Filter  string
}

// OrderPatch is a partial order update. Nil fields are left unchanged.
type OrderPatch struct {
	Client        *string  `json:"client,omitempty"`
	Agency        *string  `json:"agency,omitempty"`
	InvoiceID     *string  `json:"invoice_id,omitempty"`
	Approved      *bool    `json:"approved,omitempty"`
	Viaduct       *bool    `json:"viaduct,omitempty"`
	From          *string  `json:"from,omitempty"`
	To            *string  `json:"to,omitempty"`
	MediaReceived *bool    `json:"media_received,omitempty"`
	FinalPrice    *float64 `json:"final_price,omitempty"`
	InvoiceSent   *bool    `json:"invoice_sent,omitempty"`
}

// MonthShare is one month's slice of a prorated order price.
type MonthShare struct {
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	MonthName string  `json:"month_name"`
	DayCount  int     `json:"day_count"`
	Amount    float64 `json:"amount"`
}

// PriceBreakdown is the per-month proration of an order's final price.
type PriceBreakdown struct {
	OrderID    string       `json:"order_id"`
	From       string       `json:"from"`
	To         string       `json:"to"`
	FinalPrice float64      `json:"final_price"`
	Months     []MonthShare `json:"months"`
}

// Comment is a free-text note on an order.
type Comment struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Reminder is a dated follow-up on an order.
type Reminder struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     string    `json:"due_date"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// DueReminder is a reminder in the notification feed, joined with the
// client name of its order.
type DueReminder struct {
	Reminder
	Client string `json:"client"`
}

// ReminderPatch is a partial reminder update. Nil fields are left unchanged.
type ReminderPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	IsCompleted *bool   `json:"is_completed,omitempty"`
}

// Attachment is a stored file on an order.
type Attachment struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Filename  string    `json:"filename"`
	FileURL   string    `json:"file_url"`
	FileType  string    `json:"file_type"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}

// Setting is a stored key/value pair.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
