package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/piksel-lt/orderdesk/internal/apperrors"
	"github.com/piksel-lt/orderdesk/internal/core/domain"
	portsrepo "github.com/piksel-lt/orderdesk/internal/core/ports/repositories"
	"github.com/piksel-lt/orderdesk/internal/models"
)

type PgxAttachmentRepository struct {
	pool *pgxpool.Pool
}

// newPgxAttachmentRepository creates a new repository for attachment metadata.
func newPgxAttachmentRepository(pool *pgxpool.Pool) portsrepo.AttachmentRepository {
	return &PgxAttachmentRepository{pool: pool}
}

var _ portsrepo.AttachmentRepository = (*PgxAttachmentRepository)(nil)

const attachmentColumns = `file_id, order_id, filename, storage_key, file_url, file_type, size_bytes, created_at`

func toDomainAttachment(m models.FileAttachment) domain.FileAttachment {
	return domain.FileAttachment{
		FileID:     m.FileID,
		OrderID:    m.OrderID,
		Filename:   m.Filename,
		StorageKey: m.StorageKey,
		FileURL:    m.FileURL,
		FileType:   m.FileType,
		SizeBytes:  m.SizeBytes,
		CreatedAt:  m.CreatedAt,
	}
}

func scanAttachment(row pgx.Row) (models.FileAttachment, error) {
	var m models.FileAttachment
	err := row.Scan(
		&m.FileID,
		&m.OrderID,
		&m.Filename,
		&m.StorageKey,
		&m.FileURL,
		&m.FileType,
		&m.SizeBytes,
		&m.CreatedAt,
	)
	return m, err
}

// ListAttachmentsByOrder retrieves all attachments for an order, newest first.
func (r *PgxAttachmentRepository) ListAttachmentsByOrder(ctx context.Context, orderID string) ([]domain.FileAttachment, error) {
	query := `SELECT ` + attachmentColumns + ` FROM file_attachments WHERE order_id = $1 ORDER BY created_at DESC;`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attachments for order %s: %w", orderID, err)
	}
	defer rows.Close()

	var attachments []domain.FileAttachment
	for rows.Next() {
		m, err := scanAttachment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attachment row: %w", err)
		}
		attachments = append(attachments, toDomainAttachment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating attachment rows: %w", err)
	}
	return attachments, nil
}

// FindAttachmentByID retrieves an attachment by its ID.
func (r *PgxAttachmentRepository) FindAttachmentByID(ctx context.Context, fileID string) (*domain.FileAttachment, error) {
	query := `SELECT ` + attachmentColumns + ` FROM file_attachments WHERE file_id = $1;`

	m, err := scanAttachment(r.pool.QueryRow(ctx, query, fileID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find attachment by ID %s: %w", fileID, err)
	}
	d := toDomainAttachment(m)
	return &d, nil
}

// SaveAttachment inserts attachment metadata.
func (r *PgxAttachmentRepository) SaveAttachment(ctx context.Context, attachment domain.FileAttachment) error {
	query := `
		INSERT INTO file_attachments (` + attachmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		attachment.FileID,
		attachment.OrderID,
		attachment.Filename,
		attachment.StorageKey,
		attachment.FileURL,
		attachment.FileType,
		attachment.SizeBytes,
		attachment.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return fmt.Errorf("%w: attachment with ID %s already exists", apperrors.ErrDuplicate, attachment.FileID)
			case "23503":
				return fmt.Errorf("%w: order %s", apperrors.ErrNotFound, attachment.OrderID)
			}
		}
		return fmt.Errorf("failed to save attachment %s: %w", attachment.FileID, err)
	}
	return nil
}

// DeleteAttachment removes attachment metadata.
func (r *PgxAttachmentRepository) DeleteAttachment(ctx context.Context, fileID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM file_attachments WHERE file_id = $1;`, fileID)
	if err != nil {
		return fmt.Errorf("failed to delete attachment %s: %w", fileID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
