package models

import "time"

// Comment represents a note row attached to an order.
type Comment struct {
	CommentID string    `db:"comment_id"`
	OrderID   string    `db:"order_id"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Reminder represents a follow-up row attached to an order.
// DueDate is a TEXT column holding a canonical YYYY-MM-DD date.
type Reminder struct {
	ReminderID  string    `db:"reminder_id"`
	OrderID     string    `db:"order_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	DueDate     string    `db:"due_date"`
	IsCompleted bool      `db:"is_completed"`
	CreatedAt   time.Time `db:"created_at"`
}

// FileAttachment represents the metadata row of a stored file.
type FileAttachment struct {
	FileID     string    `db:"file_id"`
	OrderID    string    `db:"order_id"`
	Filename   string    `db:"filename"`
	StorageKey string    `db:"storage_key"`
	FileURL    string    `db:"file_url"`
	FileType   string    `db:"file_type"`
	SizeBytes  int64     `db:"size_bytes"`
	CreatedAt  time.Time `db:"created_at"`
}

// Setting represents one key/value preference row.
type Setting struct {
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}
