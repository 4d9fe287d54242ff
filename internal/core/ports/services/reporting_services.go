package services

import (
	"context"

	"github.com/piksel-lt/orderdesk/internal/core/domain"
	"github.com/piksel-lt/orderdesk/internal/dateutil"
)

// ReportingService defines operations for derived, read-only surfaces
type ReportingService interface {
	// MonthlyRevenue prorates approved order prices over the months of a
	// year and returns the per-month totals, rounded to cents.
	MonthlyRevenue(ctx context.Context, year int) (*domain.RevenueReport, error)

	// YearCalendar builds the week-number calendar for a year.
	YearCalendar(ctx context.Context, year int) ([]dateutil.CalendarMonth, error)
}
