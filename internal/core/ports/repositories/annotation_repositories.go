package repositories

import (
	"context"
	"time"

	"github.com/piksel-lt/orderdesk/internal/core/domain"
)

// CommentRepository defines operations for order comments
type CommentRepository interface {
	// ListCommentsByOrder retrieves all comments for an order, oldest first.
	ListCommentsByOrder(ctx context.Context, orderID string) ([]domain.Comment, error)

	// FindCommentByID retrieves a specific comment.
	FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error)

	// SaveComment persists a new comment.
	SaveComment(ctx context.Context, comment domain.Comment) error

	// UpdateCommentText replaces the text of an existing comment.
	UpdateCommentText(ctx context.Context, comment domain.Comment) error

	// DeleteComment removes a comment permanently.
	DeleteComment(ctx context.Context, commentID string) error
}

// ReminderReader defines read operations for reminders
type ReminderReader interface {
	// ListRemindersByOrder retrieves all reminders for an order, soonest due first.
	ListRemindersByOrder(ctx context.Context, orderID string) ([]domain.Reminder, error)

	// FindReminderByID retrieves a specific reminder.
	FindReminderByID(ctx context.Context, reminderID string) (*domain.Reminder, error)

	// ListDueReminders retrieves incomplete reminders due on or before the
	// horizon, including overdue ones, joined with their order's client name.
	ListDueReminders(ctx context.Context, horizon time.Time) ([]domain.DueReminder, error)
}

// ReminderWriter defines write operations for reminders
type ReminderWriter interface {
	// SaveReminder persists a new reminder.
	SaveReminder(ctx context.Context, reminder domain.Reminder) error

	// UpdateReminder updates an existing reminder.
	UpdateReminder(ctx context.Context, reminder domain.Reminder) error

	// DeleteReminder removes a reminder permanently.
	DeleteReminder(ctx context.Context, reminderID string) error
}

// ReminderRepositoryFacade combines all reminder-related repository interfaces
type ReminderRepositoryFacade interface {
	ReminderReader
	ReminderWriter
}

// AttachmentRepository defines operations for file attachment metadata
type AttachmentRepository interface {
	// ListAttachmentsByOrder retrieves all attachments for an order, newest first.
	ListAttachmentsByOrder(ctx context.Context, orderID string) ([]domain.FileAttachment, error)

	// FindAttachmentByID retrieves a specific attachment.
	FindAttachmentByID(ctx context.Context, fileID string) (*domain.FileAttachment, error)

	// SaveAttachment persists attachment metadata.
	SaveAttachment(ctx context.Context, attachment domain.FileAttachment) error

	// DeleteAttachment removes attachment metadata permanently.
	DeleteAttachment(ctx context.Context, fileID string) error
}

// SettingsRepository defines operations for the key/value settings store
type SettingsRepository interface {
	// FindSetting retrieves a setting by key.
	FindSetting(ctx context.Context, key string) (*domain.Setting, error)

	// UpsertSetting creates or replaces a setting.
	UpsertSetting(ctx context.Context, setting domain.Setting) error
}
