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

type PgxCommentRepository struct {
	pool *pgxpool.Pool
}

// newPgxCommentRepository creates a new repository for comment data.
func newPgxCommentRepository(pool *pgxpool.Pool) portsrepo.CommentRepository {
	return &PgxCommentRepository{pool: pool}
}

var _ portsrepo.CommentRepository = (*PgxCommentRepository)(nil)

func toDomainComment(m models.Comment) domain.Comment {
	return domain.Comment{
		CommentID: m.CommentID,
		OrderID:   m.OrderID,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ListCommentsByOrder retrieves all comments for an order, oldest first.
func (r *PgxCommentRepository) ListCommentsByOrder(ctx context.Context, orderID string) ([]domain.Comment, error) {
	query := `
		SELECT comment_id, order_id, text, created_at, updated_at
		FROM comments
		WHERE order_id = $1
		ORDER BY created_at ASC;
	`
	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments for order %s: %w", orderID, err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var m models.Comment
		if err := rows.Scan(&m.CommentID, &m.OrderID, &m.Text, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, toDomainComment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating comment rows: %w", err)
	}
	return comments, nil
}

// FindCommentByID retrieves a comment by its ID.
func (r *PgxCommentRepository) FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	query := `
		SELECT comment_id, order_id, text, created_at, updated_at
		FROM comments
		WHERE comment_id = $1;
	`
	var m models.Comment
	err := r.pool.QueryRow(ctx, query, commentID).Scan(&m.CommentID, &m.OrderID, &m.Text, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find comment by ID %s: %w", commentID, err)
	}
	d := toDomainComment(m)
	return &d, nil
}

// SaveComment inserts a new comment.
func (r *PgxCommentRepository) SaveComment(ctx context.Context, comment domain.Comment) error {
	query := `
		INSERT INTO comments (comment_id, order_id, text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.pool.Exec(ctx, query,
		comment.CommentID,
		comment.OrderID,
		comment.Text,
		comment.CreatedAt,
		comment.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return fmt.Errorf("%w: comment with ID %s already exists", apperrors.ErrDuplicate, comment.CommentID)
			case "23503":
				return fmt.Errorf("%w: order %s", apperrors.ErrNotFound, comment.OrderID)
			}
		}
		return fmt.Errorf("failed to save comment %s: %w", comment.CommentID, err)
	}
	return nil
}

// UpdateCommentText replaces the text of an existing comment.
func (r *PgxCommentRepository) UpdateCommentText(ctx context.Context, comment domain.Comment) error {
	query := `
		UPDATE comments SET text = $2, updated_at = $3 WHERE comment_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, comment.CommentID, comment.Text, comment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update comment %s: %w", comment.CommentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteComment removes a comment.
func (r *PgxCommentRepository) DeleteComment(ctx context.Context, commentID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE comment_id = $1;`, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete comment %s: %w", commentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
