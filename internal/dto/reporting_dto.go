package dto

import (
	"github.com/piksel-lt/orderdesk/internal/core/domain"
	"github.com/piksel-lt/orderdesk/internal/dateutil"
	"github.com/piksel-lt/orderdesk/internal/proration"
	"github.com/shopspring/decimal"
)

// MonthRevenueResponse represents one month's row in the revenue report response
type MonthRevenueResponse struct {
	Year       int             `json:"year"`
	Month      int             `json:"month"`
	MonthName  string          `json:"monthName"`
	Total      decimal.Decimal `json:"total"`
	OrderCount int             `json:"orderCount"`
}

// RevenueReportResponse represents the yearly revenue report response
type RevenueReportResponse struct {
	Year   int                    `json:"year"`
	Months []MonthRevenueResponse `json:"months"`
	Total  decimal.Decimal        `json:"total"`
}

// ToRevenueReportResponse converts a domain.RevenueReport to its response DTO
func ToRevenueReportResponse(r *domain.RevenueReport) RevenueReportResponse {
	months := make([]MonthRevenueResponse, len(r.Months))
	for i, m := range r.Months {
		months[i] = MonthRevenueResponse{
			Year:       m.Year,
			Month:      m.Month,
			MonthName:  m.MonthName,
			Total:      m.Total,
			OrderCount: m.OrderCount,
		}
	}
	return RevenueReportResponse{Year: r.Year, Months: months, Total: r.Total}
}

// PriceBreakdownResponse represents the prorated price of an order
// spread over the calendar months its date range touches.
type PriceBreakdownResponse struct {
	OrderID    string                 `json:"order_id"`
	From       string                 `json:"from"`
	To         string                 `json:"to"`
	FinalPrice float64                `json:"final_price"`
	Months     []proration.MonthShare `json:"months"`
}

// CalendarWeekResponse mirrors dateutil.CalendarWeek for the API surface.
type CalendarWeekResponse struct {
	Week   int      `json:"week"`
	Monday string   `json:"monday"`
	Sunday string   `json:"sunday"`
	Days   []string `json:"days"`
}

// CalendarMonthResponse is one month of the yearly week-number calendar.
type CalendarMonthResponse struct {
	Month     int                    `json:"month"`
	MonthName string                 `json:"monthName"`
	Weeks     []CalendarWeekResponse `json:"weeks"`
}

// CalendarResponse is the full yearly week-number calendar.
type CalendarResponse struct {
	Year   int                     `json:"year"`
	Months []CalendarMonthResponse `json:"months"`
}

// ToCalendarResponse converts dateutil calendar months to the response DTO
func ToCalendarResponse(year int, months []dateutil.CalendarMonth) CalendarResponse {
	out := make([]CalendarMonthResponse, len(months))
	for i, m := range months {
		weeks := make([]CalendarWeekResponse, len(m.Weeks))
		for j, w := range m.Weeks {
			days := make([]string, len(w.Days))
			for k, d := range w.Days {
				days[k] = d.Format(dateutil.CanonicalLayout)
			}
			weeks[j] = CalendarWeekResponse{
				Week:   w.Week,
				Monday: w.Monday.Format(dateutil.CanonicalLayout),
				Sunday: w.Sunday.Format(dateutil.CanonicalLayout),
				Days:   days,
			}
		}
		out[i] = CalendarMonthResponse{Month: m.Month, MonthName: m.MonthName, Weeks: weeks}
	}
	return CalendarResponse{Year: year, Months: out}
}
