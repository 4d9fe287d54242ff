package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/piksel-lt/orderdesk/internal/apperrors"
	"github.com/piksel-lt/orderdesk/internal/core/domain"
	portssvc "github.com/piksel-lt/orderdesk/internal/core/ports/services"
	"github.com/piksel-lt/orderdesk/internal/core/services"
	"github.com/piksel-lt/orderdesk/internal/dto"
)

// --- Mock ReminderRepository ---
type MockReminderRepository struct {
	mock.Mock
}

func (m *MockReminderRepository) ListRemindersByOrder(ctx context.Context, orderID string) ([]domain.Reminder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reminder), args.Error(1)
}

func (m *MockReminderRepository) FindReminderByID(ctx context.Context, reminderID string) (*domain.Reminder, error) {
	args := m.Called(ctx, reminderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reminder), args.Error(1)
}

func (m *MockReminderRepository) ListDueReminders(ctx context.Context, horizon time.Time) ([]domain.DueReminder, error) {
	args := m.Called(ctx, horizon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DueReminder), args.Error(1)
}

func (m *MockReminderRepository) SaveReminder(ctx context.Context, reminder domain.Reminder) error {
	args := m.Called(ctx, reminder)
	return args.Error(0)
}

func (m *MockReminderRepository) UpdateReminder(ctx context.Context, reminder domain.Reminder) error {
	args := m.Called(ctx, reminder)
	return args.Error(0)
}

func (m *MockReminderRepository) DeleteReminder(ctx context.Context, reminderID string) error {
	args := m.Called(ctx, reminderID)
	return args.Error(0)
}

// --- Test Suite ---
type ReminderServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockReminderRepository
	mockOrderRepo *MockOrderRepository
	service       portssvc.ReminderSvc
}

func (suite *ReminderServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReminderRepository)
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.service = services.NewReminderService(suite.mockRepo, suite.mockOrderRepo)
}

func (suite *ReminderServiceTestSuite) TestAddReminder_NormalizesDueDate() {
	ctx := context.Background()
	orderID := uuid.NewString()

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(&domain.Order{OrderID: orderID}, nil).Once()
	suite.mockRepo.On("SaveReminder", ctx, mock.MatchedBy(func(r domain.Reminder) bool {
		return r.OrderID == orderID && r.DueDate == "2025-09-05" && !r.IsCompleted && r.ReminderID != ""
	})).Return(nil).Once()

	reminder, err := suite.service.AddReminder(ctx, orderID, dto.CreateReminderRequest{
		Title:   "Send invoice",
		DueDate: "5/9/2025",
	})

	suite.Require().NoError(err)
	suite.Equal("2025-09-05", reminder.DueDate)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *ReminderServiceTestSuite) TestAddReminder_UnknownOrder() {
	ctx := context.Background()
	orderID := uuid.NewString()

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AddReminder(ctx, orderID, dto.CreateReminderRequest{Title: "x", DueDate: "2025-09-05"})

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveReminder", mock.Anything, mock.Anything)
}

func (suite *ReminderServiceTestSuite) TestUpdateReminder_PartialFields() {
	ctx := context.Background()
	reminderID := uuid.NewString()
	existing := &domain.Reminder{ReminderID: reminderID, Title: "Call agency", DueDate: "2025-09-05"}

	suite.mockRepo.On("FindReminderByID", ctx, reminderID).Return(existing, nil).Once()

	done := true
	suite.mockRepo.On("UpdateReminder", ctx, mock.MatchedBy(func(r domain.Reminder) bool {
		return r.Title == "Call agency" && r.DueDate == "2025-09-05" && r.IsCompleted
	})).Return(nil).Once()

	updated, err := suite.service.UpdateReminder(ctx, reminderID, dto.UpdateReminderRequest{IsCompleted: &done})

	suite.Require().NoError(err)
	suite.True(updated.IsCompleted)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReminderServiceTestSuite) TestDueReminders_ThreeDayHorizon() {
	ctx := context.Background()
	due := []domain.DueReminder{
		{Reminder: domain.Reminder{Title: "Overdue", DueDate: "2020-01-01"}, Client: "Maxima"},
	}

	suite.mockRepo.On("ListDueReminders", ctx, mock.MatchedBy(func(horizon time.Time) bool {
		expected := time.Now().AddDate(0, 0, 3)
		return horizon.Sub(expected).Abs() < time.Minute
	})).Return(due, nil).Once()

	got, err := suite.service.DueReminders(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.Equal("Maxima", got[0].Client)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReminderServiceTestSuite) TestDueReminders_EmptyIsNotNil() {
	ctx := context.Background()

	suite.mockRepo.On("ListDueReminders", ctx, mock.Anything).Return([]domain.DueReminder(nil), nil).Once()

	got, err := suite.service.DueReminders(ctx)

	suite.Require().NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
}

func TestReminderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReminderServiceTestSuite))
}
