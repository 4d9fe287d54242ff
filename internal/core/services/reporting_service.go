package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/piksel-lt/orderdesk/internal/apperrors"
	"github.com/piksel-lt/orderdesk/internal/core/domain"
	portsrepo "github.com/piksel-lt/orderdesk/internal/core/ports/repositories"
	portssvc "github.com/piksel-lt/orderdesk/internal/core/ports/services"
	"github.com/piksel-lt/orderdesk/internal/dateutil"
	"github.com/piksel-lt/orderdesk/internal/proration"
)

// Year bounds accepted by the reporting surfaces.
const (
	minReportYear = 1990
	maxReportYear = 2100
)

type reportingService struct {
	BaseService
	orderRepo portsrepo.OrderReader
}

// NewReportingService creates the reporting service.
func NewReportingService(orderRepo portsrepo.OrderReader) portssvc.ReportingService {
	return &reportingService{orderRepo: orderRepo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func validateYear(year int) error {
	if year < minReportYear || year > maxReportYear {
		return fmt.Errorf("%w: year %d out of range [%d, %d]", apperrors.ErrValidation, year, minReportYear, maxReportYear)
	}
	return nil
}

// MonthlyRevenue prorates the final price of every approved order touching
// the year over its broadcast months and sums the shares per month.
// Arithmetic runs on the prorated floats; presentation totals are rounded
// to cents.
func (s *reportingService) MonthlyRevenue(ctx context.Context, year int) (*domain.RevenueReport, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.ListOrdersInYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders for revenue report: %w", err)
	}

	var totals [12]decimal.Decimal
	var counts [12]int
	for _, order := range orders {
		for _, share := range proration.Calculate(order.FromDate, order.ToDate, order.FinalPrice) {
			if share.Year != year {
				continue
			}
			idx := share.Month - 1
			totals[idx] = totals[idx].Add(decimal.NewFromFloat(share.Amount))
			counts[idx]++
		}
	}

	report := &domain.RevenueReport{Year: year, Months: make([]domain.MonthRevenue, 0, 12)}
	grand := decimal.Zero
	for m := 1; m <= 12; m++ {
		total := totals[m-1].Round(2)
		grand = grand.Add(total)
		report.Months = append(report.Months, domain.MonthRevenue{
			Year:       year,
			Month:      m,
			MonthName:  dateutil.MonthName(m),
			Total:      total,
			OrderCount: counts[m-1],
		})
	}
	report.Total = grand
	return report, nil
}

// YearCalendar builds the week-number calendar for a year.
func (s *reportingService) YearCalendar(ctx context.Context, year int) ([]dateutil.CalendarMonth, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	return dateutil.YearCalendar(year), nil
}
