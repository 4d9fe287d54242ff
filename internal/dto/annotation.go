package dto

import (
	"time"

	"github.com/piksel-lt/orderdesk/internal/core/domain"
)

// CreateCommentRequest defines the data needed to create a comment.
type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// UpdateCommentRequest defines the data allowed for updating a comment.
type UpdateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// CommentResponse defines the data returned for a comment.
type CommentResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCommentResponse converts a domain.Comment to CommentResponse DTO
func ToCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.CommentID,
		OrderID:   c.OrderID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToListCommentResponse converts a slice of domain.Comment to DTOs
func ToListCommentResponse(comments []domain.Comment) []CommentResponse {
	res := make([]CommentResponse, len(comments))
	for i := range comments {
		res[i] = ToCommentResponse(&comments[i])
	}
	return res
}

// CreateReminderRequest defines the data needed to create a reminder.
// DueDate accepts the same date shapes the order form does.
type CreateReminderRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DueDate     string `json:"due_date" binding:"required"`
}

// UpdateReminderRequest defines the data allowed for updating a reminder.
type UpdateReminderRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	IsCompleted *bool   `json:"is_completed"`
}

// ReminderResponse defines the data returned for a reminder.
type ReminderResponse struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     string    `json:"due_date"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// DueReminderResponse is a reminder row in the notification feed, carrying
// the client name of its order. Client is empty when the order is unknown.
type DueReminderResponse struct {
	ReminderResponse
	Client string `json:"client"`
}

// ToReminderResponse converts a domain.Reminder to ReminderResponse DTO
func ToReminderResponse(r *domain.Reminder) ReminderResponse {
	return ReminderResponse{
		ID:          r.ReminderID,
		OrderID:     r.OrderID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		IsCompleted: r.IsCompleted,
		CreatedAt:   r.CreatedAt,
	}
}

// ToListReminderResponse converts a slice of domain.Reminder to DTOs
func ToListReminderResponse(reminders []domain.Reminder) []ReminderResponse {
	res := make([]ReminderResponse, len(reminders))
	for i := range reminders {
		res[i] = ToReminderResponse(&reminders[i])
	}
	return res
}

// ToListDueReminderResponse converts the joined due-reminder rows to DTOs
func ToListDueReminderResponse(reminders []domain.DueReminder) []DueReminderResponse {
	res := make([]DueReminderResponse, len(reminders))
	for i := range reminders {
		res[i] = DueReminderResponse{
			ReminderResponse: ToReminderResponse(&reminders[i].Reminder),
			Client:           reminders[i].Client,
		}
	}
	return res
}

// AttachmentResponse defines the data returned for a file attachment.
type AttachmentResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Filename  string    `json:"filename"`
	FileURL   string    `json:"file_url"`
	FileType  string    `json:"file_type"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}

// ToAttachmentResponse converts a domain.FileAttachment to AttachmentResponse DTO
func ToAttachmentResponse(a *domain.FileAttachment) AttachmentResponse {
	return AttachmentResponse{
		ID:        a.FileID,
		OrderID:   a.OrderID,
		Filename:  a.Filename,
		FileURL:   a.FileURL,
		FileType:  a.FileType,
		SizeBytes: a.SizeBytes,
		CreatedAt: a.CreatedAt,
	}
}

// ToListAttachmentResponse converts a slice of domain.FileAttachment to DTOs
func ToListAttachmentResponse(attachments []domain.FileAttachment) []AttachmentResponse {
	res := make([]AttachmentResponse, len(attachments))
	for i := range attachments {
		res[i] = ToAttachmentResponse(&attachments[i])
	}
	return res
}

// SaveSettingRequest defines the payload for storing a setting value.
type SaveSettingRequest struct {
	Value string `json:"value" binding:"required"`
}

// SettingResponse defines the data returned for a setting.
type SettingResponse struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToSettingResponse converts a domain.Setting to SettingResponse DTO
func ToSettingResponse(s *domain.Setting) SettingResponse {
	return SettingResponse{Key: s.Key, Value: s.Value, UpdatedAt: s.UpdatedAt}
}
