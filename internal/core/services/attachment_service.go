package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/piksel-lt/orderdesk/internal/apperrors"
	"github.com/piksel-lt/orderdesk/internal/core/domain"
	portsrepo "github.com/piksel-lt/orderdesk/internal/core/ports/repositories"
	portssvc "github.com/piksel-lt/orderdesk/internal/core/ports/services"
	"github.com/piksel-lt/orderdesk/internal/platform/storage"
)

type attachmentService struct {
	BaseService
	attachmentRepo portsrepo.AttachmentRepository
	orderRepo      portsrepo.OrderReader
	store          storage.ObjectStore
	now            func() time.Time
}

// NewAttachmentService creates the attachment service. Uploads write the
// object first, then the metadata row; deletes remove the object before
// the row.
func NewAttachmentService(attachmentRepo portsrepo.AttachmentRepository, orderRepo portsrepo.OrderReader, store storage.ObjectStore) portssvc.AttachmentSvc {
	return &attachmentService{attachmentRepo: attachmentRepo, orderRepo: orderRepo, store: store, now: time.Now}
}

var _ portssvc.AttachmentSvc = (*attachmentService)(nil)

// storageKey builds the object key: `<orderID>/<unixMillis>_<filename>`.
func storageKey(orderID, filename string, at time.Time) string {
	name := strings.ReplaceAll(filename, "/", "_")
	return fmt.Sprintf("%s/%d_%s", orderID, at.UnixMilli(), name)
}

// ListAttachments retrieves all attachments for an order, newest first.
func (s *attachmentService) ListAttachments(ctx context.Context, orderID string) ([]domain.FileAttachment, error) {
	attachments, err := s.attachmentRepo.ListAttachmentsByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments in service: %w", err)
	}
	if attachments == nil {
		return []domain.FileAttachment{}, nil
	}
	return attachments, nil
}

// UploadAttachment stores the file bytes, then the metadata row. When the
// row insert fails the uploaded object is removed again, best effort.
func (s *attachmentService) UploadAttachment(ctx context.Context, orderID string, filename string, contentType string, size int64, content io.Reader) (*domain.FileAttachment, error) {
	if filename == "" {
		return nil, fmt.Errorf("%w: filename is required", apperrors.ErrValidation)
	}
	if _, err := s.orderRepo.FindOrderByID(ctx, orderID); err != nil {
		return nil, err
	}

	now := s.now()
	key := storageKey(orderID, filename, now)

	if err := s.store.Put(ctx, key, contentType, size, content); err != nil {
		return nil, fmt.Errorf("failed to store attachment object: %w", err)
	}

	attachment := domain.FileAttachment{
		FileID:     uuid.NewString(),
		OrderID:    orderID,
		Filename:   filename,
		StorageKey: key,
		FileURL:    s.store.PublicURL(key),
		FileType:   contentType,
		SizeBytes:  size,
		CreatedAt:  now,
	}
	if err := s.attachmentRepo.SaveAttachment(ctx, attachment); err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			s.LogError(ctx, delErr, "orphaned attachment object left behind", slog.String("key", key))
		}
		return nil, fmt.Errorf("failed to save attachment metadata: %w", err)
	}
	return &attachment, nil
}

// DeleteAttachment removes the stored object, then the metadata row.
func (s *attachmentService) DeleteAttachment(ctx context.Context, fileID string) error {
	attachment, err := s.attachmentRepo.FindAttachmentByID(ctx, fileID)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, attachment.StorageKey); err != nil {
		return fmt.Errorf("failed to delete attachment object: %w", err)
	}
	return s.attachmentRepo.DeleteAttachment(ctx, fileID)
}
