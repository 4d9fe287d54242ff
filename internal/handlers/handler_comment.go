package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/piksel-lt/orderdesk/internal/core/ports/services"
	"github.com/piksel-lt/orderdesk/internal/dto"
	"github.com/piksel-lt/orderdesk/internal/middleware"
)

// commentHandler handles HTTP requests related to order comments.
type commentHandler struct {
	commentService portssvc.CommentSvc
}

func newCommentHandler(cs portssvc.CommentSvc) *commentHandler {
	return &commentHandler{commentService: cs}
}

// registerCommentRoutes registers comment routes nested under orders.
func registerCommentRoutes(rg *gin.RouterGroup, commentService portssvc.CommentSvc) {
	h := newCommentHandler(commentService)

	rg.GET("/orders/:id/comments", h.listComments)
	rg.POST("/orders/:id/comments", h.addComment)
	rg.PATCH("/comments/:commentID", h.updateComment)
	rg.DELETE("/comments/:commentID", h.deleteComment)
}

// listComments godoc
// @Summary List comments for an order
// @Tags comments
// @Produce  json
// @Param   id path string true "Order ID"
// @Success 200 {array} dto.CommentResponse
// @Failure 500 {object} map[string]string "Failed to list comments"
// @Router /orders/{id}/comments [get]
func (h *commentHandler) listComments(c *gin.Context) {
	comments, err := h.commentService.ListComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to list comments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCommentResponse(comments))
}

// addComment godoc
// @Summary Add a comment to an order
// @Tags comments
// @Accept  json
// @Produce  json
// @Param   id path string true "Order ID"
// @Param   comment body dto.CreateCommentRequest true "Comment text"
// @Success 201 {object} dto.CommentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 500 {object} map[string]string "Failed to add comment"
// @Router /orders/{id}/comments [post]
func (h *commentHandler) addComment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("id")

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddComment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	comment, err := h.commentService.AddComment(c.Request.Context(), orderID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to add comment")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}

// updateComment godoc
// @Summary Update a comment
// @Tags comments
// @Accept  json
// @Produce  json
// @Param   commentID path string true "Comment ID"
// @Param   comment body dto.UpdateCommentRequest true "New comment text"
// @Success 200 {object} dto.CommentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Comment not found"
// @Failure 500 {object} map[string]string "Failed to update comment"
// @Router /comments/{commentID} [patch]
func (h *commentHandler) updateComment(c *gin.Context) {
	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), c.Param("commentID"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update comment")
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

// deleteComment godoc
// @Summary Delete a comment
// @Tags comments
// @Produce  json
// @Param   commentID path string true "Comment ID"
// @Success 204 "Comment deleted"
// @Failure 404 {object} map[string]string "Comment not found"
// @Failure 500 {object} map[string]string "Failed to delete comment"
// @Router /comments/{commentID} [delete]
func (h *commentHandler) deleteComment(c *gin.Context) {
	if err := h.commentService.DeleteComment(c.Request.Context(), c.Param("commentID")); err != nil {
		respondServiceError(c, err, "Failed to delete comment")
		return
	}
	c.Status(http.StatusNoContent)
}
