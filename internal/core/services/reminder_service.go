package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/piksel-lt/orderdesk/internal/core/domain"
	portsrepo "github.com/piksel-lt/orderdesk/internal/core/ports/repositories"
	portssvc "github.com/piksel-lt/orderdesk/internal/core/ports/services"
	"github.com/piksel-lt/orderdesk/internal/dateutil"
	"github.com/piksel-lt/orderdesk/internal/dto"
)

// dueWindowDays is how far ahead the notification feed looks.
const dueWindowDays = 3

type reminderService struct {
	BaseService
	reminderRepo portsrepo.ReminderRepositoryFacade
	orderRepo    portsrepo.OrderReader
	now          func() time.Time
}

// NewReminderService creates the reminder service.
func NewReminderService(reminderRepo portsrepo.ReminderRepositoryFacade, orderRepo portsrepo.OrderReader) portssvc.ReminderSvc {
	return &reminderService{reminderRepo: reminderRepo, orderRepo: orderRepo, now: time.Now}
}

var _ portssvc.ReminderSvc = (*reminderService)(nil)

// ListReminders retrieves all reminders for an order, soonest due first.
func (s *reminderService) ListReminders(ctx context.Context, orderID string) ([]domain.Reminder, error) {
	reminders, err := s.reminderRepo.ListRemindersByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders in service: %w", err)
	}
	if reminders == nil {
		return []domain.Reminder{}, nil
	}
	return reminders, nil
}

// AddReminder creates a new reminder on an order. The order must exist
// and the due date is normalized to the canonical format.
func (s *reminderService) AddReminder(ctx context.Context, orderID string, req dto.CreateReminderRequest) (*domain.Reminder, error) {
	if _, err := s.orderRepo.FindOrderByID(ctx, orderID); err != nil {
		return nil, err
	}

	reminder := domain.Reminder{
		ReminderID:  uuid.NewString(),
		OrderID:     orderID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dateutil.Normalize(req.DueDate),
		IsCompleted: false,
		CreatedAt:   s.now(),
	}
	if err := s.reminderRepo.SaveReminder(ctx, reminder); err != nil {
		return nil, fmt.Errorf("failed to add reminder in service: %w", err)
	}
	return &reminder, nil
}

// UpdateReminder applies a partial update to a reminder.
func (s *reminderService) UpdateReminder(ctx context.Context, reminderID string, req dto.UpdateReminderRequest) (*domain.Reminder, error) {
	reminder, err := s.reminderRepo.FindReminderByID(ctx, reminderID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		reminder.Title = *req.Title
	}
	if req.Description != nil {
		reminder.Description = *req.Description
	}
	if req.DueDate != nil {
		reminder.DueDate = dateutil.Normalize(*req.DueDate)
	}
	if req.IsCompleted != nil {
		reminder.IsCompleted = *req.IsCompleted
	}

	if err := s.reminderRepo.UpdateReminder(ctx, *reminder); err != nil {
		return nil, fmt.Errorf("failed to update reminder in service: %w", err)
	}
	return reminder, nil
}

// DeleteReminder removes a reminder permanently.
func (s *reminderService) DeleteReminder(ctx context.Context, reminderID string) error {
	return s.reminderRepo.DeleteReminder(ctx, reminderID)
}

// DueReminders retrieves the notification feed: incomplete reminders due
// within the window, overdue included, soonest first.
func (s *reminderService) DueReminders(ctx context.Context) ([]domain.DueReminder, error) {
	horizon := s.now().AddDate(0, 0, dueWindowDays)
	due, err := s.reminderRepo.ListDueReminders(ctx, horizon)
	if err != nil {
		return nil, fmt.Errorf("failed to list due reminders in service: %w", err)
	}
	if due == nil {
		return []domain.DueReminder{}, nil
	}
	return due, nil
}
