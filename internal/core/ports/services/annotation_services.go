package services

import (
	"context"
	"io"

	"github.com/piksel-lt/orderdesk/internal/core/domain"
	"github.com/piksel-lt/orderdesk/internal/dto"
)

// CommentSvc defines operations for order comments
type CommentSvc interface {
	// ListComments retrieves all comments for an order, oldest first.
	ListComments(ctx context.Context, orderID string) ([]domain.Comment, error)

	// AddComment creates a new comment on an order.
	AddComment(ctx context.Context, orderID string, req dto.CreateCommentRequest) (*domain.Comment, error)

	// UpdateComment replaces a comment's text.
	UpdateComment(ctx context.Context, commentID string, req dto.UpdateCommentRequest) (*domain.Comment, error)

	// DeleteComment removes a comment permanently.
	DeleteComment(ctx context.Context, commentID string) error
}

// ReminderSvc defines operations for order reminders
type ReminderSvc interface {
	// ListReminders retrieves all reminders for an order, soonest due first.
	ListReminders(ctx context.Context, orderID string) ([]domain.Reminder, error)

	// AddReminder creates a new reminder on an order.
	AddReminder(ctx context.Context, orderID string, req dto.CreateReminderRequest) (*domain.Reminder, error)

	// UpdateReminder applies a partial update to a reminder.
	UpdateReminder(ctx context.Context, reminderID string, req dto.UpdateReminderRequest) (*domain.Reminder, error)

	// DeleteReminder removes a reminder permanently.
	DeleteReminder(ctx context.Context, reminderID string) error

	// DueReminders retrieves incomplete reminders due within the
	// notification window, overdue ones included, soonest first.
	DueReminders(ctx context.Context) ([]domain.DueReminder, error)
}

// AttachmentSvc defines operations for order file attachments
type AttachmentSvc interface {
	// ListAttachments retrieves all attachments for an order, newest first.
	ListAttachments(ctx context.Context, orderID string) ([]domain.FileAttachment, error)

	// UploadAttachment stores the file bytes in object storage and
	// persists the metadata row.
	UploadAttachment(ctx context.Context, orderID string, filename string, contentType string, size int64, content io.Reader) (*domain.FileAttachment, error)

	// DeleteAttachment removes the stored object, then the metadata row.
	DeleteAttachment(ctx context.Context, fileID string) error
}

// SettingsSvc defines operations for the dashboard preference store
type SettingsSvc interface {
	// GetSetting retrieves a setting by key.
	GetSetting(ctx context.Context, key string) (*domain.Setting, error)

	// SaveSetting creates or replaces a setting value.
	SaveSetting(ctx context.Context, key string, value string) (*domain.Setting, error)
}
