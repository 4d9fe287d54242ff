package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
)

// Auxiliary operations bypass the executor and the retry policy: every
// failure is handed straight back to the caller.

// ListComments fetches all comments on an order, oldest first.
func (c *Client) ListComments(ctx context.Context, orderID string) ([]Comment, error) {
	var comments []Comment
	if err := c.do(ctx, http.MethodGet, ordersPath+"/"+orderID+"/comments", nil, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// AddComment creates a comment on an order.
func (c *Client) AddComment(ctx context.Context, orderID, text string) (*Comment, error) {
	body := map[string]string{"text": text}
	var comment Comment
	if err := c.do(ctx, http.MethodPost, ordersPath+"/"+orderID+"/comments", nil, body, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateComment replaces a comment's text.
func (c *Client) UpdateComment(ctx context.Context, commentID, text string) (*Comment, error) {
	body := map[string]string{"text": text}
	var comment Comment
	if err := c.do(ctx, http.MethodPatch, "/api/v1/comments/"+commentID, nil, body, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes a comment.
func (c *Client) DeleteComment(ctx context.Context, commentID string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/comments/"+commentID, nil, nil, nil)
}

// ListReminders fetches all reminders on an order, soonest due first.
func (c *Client) ListReminders(ctx context.Context, orderID string) ([]Reminder, error) {
	var reminders []Reminder
	if err := c.do(ctx, http.MethodGet, ordersPath+"/"+orderID+"/reminders", nil, nil, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

// AddReminder creates a reminder on an order. dueDate accepts the same date
// shapes the order form does.
func (c *Client) AddReminder(ctx context.Context, orderID, title, description, dueDate string) (*Reminder, error) {
	body := map[string]string{
		"title":       title,
		"description": description,
		"due_date":    dueDate,
	}
	var reminder Reminder
	if err := c.do(ctx, http.MethodPost, ordersPath+"/"+orderID+"/reminders", nil, body, &reminder); err != nil {
		return nil, err
	}
	return &reminder, nil
}

// UpdateReminder applies a partial update and returns the updated reminder.
func (c *Client) UpdateReminder(ctx context.Context, reminderID string, patch ReminderPatch) (*Reminder, error) {
	var reminder Reminder
	if err := c.do(ctx, http.MethodPatch, "/api/v1/reminders/"+reminderID, nil, patch, &reminder); err != nil {
		return nil, err
	}
	return &reminder, nil
}

// DeleteReminder removes a reminder.
func (c *Client) DeleteReminder(ctx context.Context, reminderID string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/reminders/"+reminderID, nil, nil, nil)
}

// DueReminders fetches incomplete reminders due within the server's
// notification window, overdue ones included.
func (c *Client) DueReminders(ctx context.Context) ([]DueReminder, error) {
	var reminders []DueReminder
	if err := c.do(ctx, http.MethodGet, "/api/v1/reminders/due", nil, nil, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

// ListFiles fetches all attachments on an order, newest first.
func (c *Client) ListFiles(ctx context.Context, orderID string) ([]Attachment, error) {
	var files []Attachment
	if err := c.do(ctx, http.MethodGet, ordersPath+"/"+orderID+"/files", nil, nil, &files); err != nil {
		return nil, err
	}
	return files, nil
}

// UploadFile attaches a file to an order. contentType may be empty, in
// which case the server falls back to application/octet-stream.
func (c *Client) UploadFile(ctx context.Context, orderID, filename, contentType string, content io.Reader) (*Attachment, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ordersPath+"/"+orderID+"/files", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var attachment Attachment
	if err := decodeResponse(resp, &attachment); err != nil {
		return nil, err
	}
	return &attachment, nil
}

// DeleteFile removes an attachment, object and metadata both.
func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/files/"+fileID, nil, nil, nil)
}

// GetSetting fetches a stored setting value.
func (c *Client) GetSetting(ctx context.Context, key string) (*Setting, error) {
	var setting Setting
	if err := c.do(ctx, http.MethodGet, "/api/v1/settings/"+url.PathEscape(key), nil, nil, &setting); err != nil {
		return nil, err
	}
	return &setting, nil
}

// SaveSetting stores a setting value, creating or overwriting it.
func (c *Client) SaveSetting(ctx context.Context, key, value string) (*Setting, error) {
	body := map[string]string{"value": value}
	var setting Setting
	if err := c.do(ctx, http.MethodPut, "/api/v1/settings/"+url.PathEscape(key), nil, body, &setting); err != nil {
		return nil, err
	}
	return &setting, nil
}
