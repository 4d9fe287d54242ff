package domain

import "time"

// Comment is a free-text note attached to a single order.
type Comment struct {
	CommentID string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Reminder is a dated follow-up attached to a single order.
type Reminder struct {
	ReminderID  string    `json:"id"`
	OrderID     string    `json:"order_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     string    `json:"due_date"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// DueReminder is a reminder surfaced by the notification feed, joined
// with the client name of its order. Client is best effort: it stays
// empty when the order lookup fails, and the feed still shows the row.
type DueReminder struct {
	Reminder
	Client string `json:"client"`
}

// FileAttachment is the metadata row for a stored file or printscreen.
// The bytes themselves live in object storage under StorageKey; FileURL
// is the public URL handed to browsers.
type FileAttachment struct {
	FileID     string    `json:"id"`
	OrderID    string    `json:"order_id"`
	Filename   string    `json:"filename"`
	StorageKey string    `json:"-"`
	FileURL    string    `json:"file_url"`
	FileType   string    `json:"file_type"`
	SizeBytes  int64     `json:"size_bytes"`
	CreatedAt  time.Time `json:"created_at"`
}

// Setting is one key/value pair of the dashboard preference store
// (e.g. key "dark_mode").
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
