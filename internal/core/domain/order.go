package domain

import "time"

// OrderStatus is the four-valued approval vocabulary used by the
// dashboard. Only Approved/NotApproved are persisted today: the order
// record stores a plain boolean, so Reserved and Cancelled cannot be
// represented end-to-end without a schema change. They are kept in the
// vocabulary so filter and form code can name them explicitly instead of
// silently narrowing the type.
type OrderStatus string

const (
	StatusApproved    OrderStatus = "taip"
	StatusNotApproved OrderStatus = "ne"
	StatusReserved    OrderStatus = "rezervuota" // not persistable yet
	StatusCancelled   OrderStatus = "atšaukta"   // not persistable yet
)

// Order is a media booking: a client campaign broadcast over a date range.
//
// FromDate and ToDate are stored as the date-like strings the backend has
// accumulated over time; they are normalized to YYYY-MM-DD on write but
// reads must tolerate legacy shapes. FromDate <= ToDate is assumed, not
// enforced. FinalPrice carries no sign or magnitude constraint.
type Order struct {
	OrderID       string    `json:"id"`
	Client        string    `json:"client"`
	Agency        string    `json:"agency"`
	InvoiceID     string    `json:"invoice_id"`
	Approved      bool      `json:"approved"`
	Viaduct       bool      `json:"viaduct"`
	FromDate      string    `json:"from"`
	ToDate        string    `json:"to"`
	MediaReceived bool      `json:"media_received"`
	FinalPrice    float64   `json:"final_price"`
	InvoiceSent   bool      `json:"invoice_sent"`
	CreatedAt     time.Time `json:"created"`
	UpdatedAt     time.Time `json:"updated"`
}

// Status maps the persisted boolean onto the status vocabulary.
func (o Order) Status() OrderStatus {
	if o.Approved {
		return StatusApproved
	}
	return StatusNotApproved
}

// OrderPage is one page of a filtered order listing.
type OrderPage struct {
	Items      []Order
	Page       int
	PerPage    int
	TotalItems int
	TotalPages int
}
