package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/piksel-lt/orderdesk/internal/core/ports/services"
	"github.com/piksel-lt/orderdesk/internal/dto"
	"github.com/piksel-lt/orderdesk/internal/middleware"
)

// attachmentHandler handles HTTP requests related to order file attachments.
type attachmentHandler struct {
	attachmentService portssvc.AttachmentSvc
}

func newAttachmentHandler(as portssvc.AttachmentSvc) *attachmentHandler {
	return &attachmentHandler{attachmentService: as}
}

// registerAttachmentRoutes registers attachment routes nested under orders.
func registerAttachmentRoutes(rg *gin.RouterGroup, attachmentService portssvc.AttachmentSvc) {
	h := newAttachmentHandler(attachmentService)

	rg.GET("/orders/:id/files", h.listAttachments)
	rg.POST("/orders/:id/files", h.uploadAttachment)
	rg.DELETE("/files/:fileID", h.deleteAttachment)
}

// listAttachments godoc
// @Summary List file attachments for an order
// @Tags files
// @Produce  json
// @Param   id path string true "Order ID"
// @Success 200 {array} dto.AttachmentResponse
// @Failure 500 {object} map[string]string "Failed to list attachments"
// @Router /orders/{id}/files [get]
func (h *attachmentHandler) listAttachments(c *gin.Context) {
	attachments, err := h.attachmentService.ListAttachments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to list attachments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAttachmentResponse(attachments))
}

// uploadAttachment godoc
// @Summary Upload a file attachment to an order
// @Description Accepts a multipart form with a single `file` part
// @Tags files
// @Accept  multipart/form-data
// @Produce  json
// @Param   id path string true "Order ID"
// @Param   file formData file true "File to attach"
// @Success 201 {object} dto.AttachmentResponse
// @Failure 400 {object} map[string]string "Missing or invalid file part"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 500 {object} map[string]string "Failed to upload attachment"
// @Router /orders/{id}/files [post]
func (h *attachmentHandler) uploadAttachment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file part: " + err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	attachment, err := h.attachmentService.UploadAttachment(
		c.Request.Context(), orderID, fileHeader.Filename, contentType, fileHeader.Size, file)
	if err != nil {
		respondServiceError(c, err, "Failed to upload attachment")
		return
	}

	logger.Info("Attachment uploaded",
		slog.String("order_id", orderID),
		slog.String("filename", attachment.Filename),
		slog.Int64("size_bytes", attachment.SizeBytes),
	)
	c.JSON(http.StatusCreated, dto.ToAttachmentResponse(attachment))
}

// deleteAttachment godoc
// @Summary Delete a file attachment
// @Description Removes the stored object and its metadata row
// @Tags files
// @Produce  json
// @Param   fileID path string true "Attachment ID"
// @Success 204 "Attachment deleted"
// @Failure 404 {object} map[string]string "Attachment not found"
// @Failure 500 {object} map[string]string "Failed to delete attachment"
// @Router /files/{fileID} [delete]
func (h *attachmentHandler) deleteAttachment(c *gin.Context) {
	if err := h.attachmentService.DeleteAttachment(c.Request.Context(), c.Param("fileID")); err != nil {
		respondServiceError(c, err, "Failed to delete attachment")
		return
	}
	c.Status(http.StatusNoContent)
}
