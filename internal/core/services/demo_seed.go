package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/piksel-lt/orderdesk/internal/core/domain"
	portsrepo "github.com/piksel-lt/orderdesk/internal/core/ports/repositories"
)

// demoOrders are the illustrative bookings inserted by SeedDemoOrders.
// Prices and date ranges are chosen so the proration and report surfaces
// have something to show on a fresh install.
func demoOrders() []domain.Order {
	updated := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}
	return []domain.Order{
		{
			OrderID:       uuid.NewString(),
			Client:        "Ansamblis LIETUVA",
			Agency:        "PUBLICIS GROUPE",
			InvoiceID:     "3481",
			Approved:      true,
			FromDate:      "2025-08-25",
			ToDate:        "2025-09-07",
			MediaReceived: true,
			FinalPrice:    1150.64,
			UpdatedAt:     updated("2025-08-22T13:37:44Z"),
		},
		{
			OrderID:       uuid.NewString(),
			Client:        "Perlas momentinės 08 25-08 31",
			Agency:        "Open",
			InvoiceID:     "3545",
			Approved:      true,
			FromDate:      "2025-08-25",
			ToDate:        "2025-08-31",
			MediaReceived: true,
			FinalPrice:    5618.25,
			UpdatedAt:     updated("2025-08-22T13:34:37Z"),
		},
		{
			OrderID:    uuid.NewString(),
			Client:     "CCC back to school",
			Agency:     "OMG",
			InvoiceID:  "3546",
			Viaduct:    true,
			FromDate:   "2025-09-08",
			ToDate:     "2025-09-14",
			FinalPrice: 282.33,
			UpdatedAt:  updated("2025-08-22T13:23:39Z"),
		},
		{
			OrderID:       uuid.NewString(),
			Client:        "Maxima",
			Agency:        "DDB",
			InvoiceID:     "3547",
			Approved:      true,
			FromDate:      "2025-09-01",
			ToDate:        "2025-09-15",
			MediaReceived: true,
			FinalPrice:    1250.00,
			InvoiceSent:   true,
			UpdatedAt:     updated("2025-08-22T14:00:00Z"),
		},
		{
			OrderID:    uuid.NewString(),
			Client:     "Lidl",
			Agency:     "McCann",
			InvoiceID:  "3548",
			Viaduct:    true,
			FromDate:   "2025-09-10",
			ToDate:     "2025-09-20",
			FinalPrice: 890.50,
			UpdatedAt:  updated("2025-08-22T14:30:00Z"),
		},
	}
}

// SeedDemoOrders inserts the illustrative dataset when the orders table is
// empty. It runs at startup behind the SEED_DEMO_DATA flag and never as a
// fallback for failed reads.
func SeedDemoOrders(ctx context.Context, orderRepo portsrepo.OrderRepositoryFacade, logger *slog.Logger) error {
	count, err := orderRepo.CountOrders(ctx)
	if err != nil {
		return fmt.Errorf("failed to count orders before seeding: %w", err)
	}
	if count > 0 {
		logger.Info("skipping demo seed, orders table is not empty", slog.Int64("count", count))
		return nil
	}

	orders := demoOrders()
	for i := range orders {
		if orders[i].CreatedAt.IsZero() {
			orders[i].CreatedAt = orders[i].UpdatedAt
		}
		if err := orderRepo.SaveOrder(ctx, orders[i]); err != nil {
			return fmt.Errorf("failed to seed demo order %q: %w", orders[i].Client, err)
		}
	}
	logger.Info("seeded demo orders", slog.Int("count", len(orders)))
	return nil
}
