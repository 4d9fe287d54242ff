package models

import "time"

// Order represents a media booking row.
// FromDate/ToDate are TEXT columns: canonical YYYY-MM-DD compares
// correctly as text, and legacy date shapes survive round trips.
type Order struct {
	OrderID       string    `db:"order_id"`
	Client        string    `db:"client"`
	Agency        string    `db:"agency"`
	InvoiceID     string    `db:"invoice_id"`
	Approved      bool      `db:"approved"`
	Viaduct       bool      `db:"viaduct"`
	FromDate      string    `db:"from_date"`
	ToDate        string    `db:"to_date"`
	MediaReceived bool      `db:"media_received"`
	FinalPrice    float64   `db:"final_price"`
	InvoiceSent   bool      `db:"invoice_sent"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}
