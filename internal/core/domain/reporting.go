package domain

import "github.com/shopspring/decimal"

// MonthRevenue is one row of the yearly revenue report: the prorated share
// of approved order prices falling into a single calendar month.
type MonthRevenue struct {
	Year       int             `json:"year"`
	Month      int             `json:"month"`
	MonthName  string          `json:"monthName"`
	Total      decimal.Decimal `json:"total"`
	OrderCount int             `json:"orderCount"`
}

// RevenueReport aggregates the twelve monthly rows for a year.
type RevenueReport struct {
	Year   int             `json:"year"`
	Months []MonthRevenue  `json:"months"`
	Total  decimal.Decimal `json:"total"`
}
