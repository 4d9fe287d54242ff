package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/piksel-lt/orderdesk/internal/core/domain"
	portsrepo "github.com/piksel-lt/orderdesk/internal/core/ports/repositories"
	portssvc "github.com/piksel-lt/orderdesk/internal/core/ports/services"
	"github.com/piksel-lt/orderdesk/internal/dto"
)

type commentService struct {
	BaseService
	commentRepo portsrepo.CommentRepository
	orderRepo   portsrepo.OrderReader
}

// NewCommentService creates the comment service.
func NewCommentService(commentRepo portsrepo.CommentRepository, orderRepo portsrepo.OrderReader) portssvc.CommentSvc {
	return &commentService{commentRepo: commentRepo, orderRepo: orderRepo}
}

var _ portssvc.CommentSvc = (*commentService)(nil)

// ListComments retrieves all comments for an order, oldest first.
func (s *commentService) ListComments(ctx context.Context, orderID string) ([]domain.Comment, error) {
	comments, err := s.commentRepo.ListCommentsByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments in service: %w", err)
	}
	if comments == nil {
		return []domain.Comment{}, nil
	}
	return comments, nil
}

// AddComment creates a new comment on an order. The order must exist.
func (s *commentService) AddComment(ctx context.Context, orderID string, req dto.CreateCommentRequest) (*domain.Comment, error) {
	if _, err := s.orderRepo.FindOrderByID(ctx, orderID); err != nil {
		return nil, err
	}

	now := time.Now()
	comment := domain.Comment{
		CommentID: uuid.NewString(),
		OrderID:   orderID,
		Text:      req.Text,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.commentRepo.SaveComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to add comment in service: %w", err)
	}
	return &comment, nil
}

// UpdateComment replaces a comment's text.
func (s *commentService) UpdateComment(ctx context.Context, commentID string, req dto.UpdateCommentRequest) (*domain.Comment, error) {
	comment, err := s.commentRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	comment.Text = req.Text
	comment.UpdatedAt = time.Now()
	if err := s.commentRepo.UpdateCommentText(ctx, *comment); err != nil {
		return nil, fmt.Errorf("failed to update comment in service: %w", err)
	}
	return comment, nil
}

// DeleteComment removes a comment permanently.
func (s *commentService) DeleteComment(ctx context.Context, commentID string) error {
	return s.commentRepo.DeleteComment(ctx, commentID)
}
