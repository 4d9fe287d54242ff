package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/piksel-lt/orderdesk/internal/core/ports/services"
	"github.com/piksel-lt/orderdesk/internal/dto"
	"github.com/piksel-lt/orderdesk/internal/middleware"
)

// reminderHandler handles HTTP requests related to order reminders.
type reminderHandler struct {
	reminderService portssvc.ReminderSvc
}

func newReminderHandler(rs portssvc.ReminderSvc) *reminderHandler {
	return &reminderHandler{reminderService: rs}
}

// registerReminderRoutes registers reminder routes nested under orders,
// plus the flat notification feed.
func registerReminderRoutes(rg *gin.RouterGroup, reminderService portssvc.ReminderSvc) {
	h := newReminderHandler(reminderService)

	rg.GET("/orders/:id/reminders", h.listReminders)
	rg.POST("/orders/:id/reminders", h.addReminder)
	rg.PATCH("/reminders/:reminderID", h.updateReminder)
	rg.DELETE("/reminders/:reminderID", h.deleteReminder)
	rg.GET("/reminders/due", h.listDueReminders)
}

// listReminders godoc
// @Summary List reminders for an order
// @Tags reminders
// @Produce  json
// @Param   id path string true "Order ID"
// @Success 200 {array} dto.ReminderResponse
// @Failure 500 {object} map[string]string "Failed to list reminders"
// @Router /orders/{id}/reminders [get]
func (h *reminderHandler) listReminders(c *gin.Context) {
	reminders, err := h.reminderService.ListReminders(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to list reminders")
		return
	}
	c.JSON(http.StatusOK, dto.ToListReminderResponse(reminders))
}

// addReminder godoc
// @Summary Add a reminder to an order
// @Tags reminders
// @Accept  json
// @Produce  json
// @Param   id path string true "Order ID"
// @Param   reminder body dto.CreateReminderRequest true "Reminder details"
// @Success 201 {object} dto.ReminderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 500 {object} map[string]string "Failed to add reminder"
// @Router /orders/{id}/reminders [post]
func (h *reminderHandler) addReminder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("id")

	var req dto.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddReminder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	reminder, err := h.reminderService.AddReminder(c.Request.Context(), orderID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to add reminder")
		return
	}

	c.JSON(http.StatusCreated, dto.ToReminderResponse(reminder))
}

// updateReminder godoc
// @Summary Update a reminder
// @Tags reminders
// @Accept  json
// @Produce  json
// @Param   reminderID path string true "Reminder ID"
// @Param   reminder body dto.UpdateReminderRequest true "Fields to update"
// @Success 200 {object} dto.ReminderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Reminder not found"
// @Failure 500 {object} map[string]string "Failed to update reminder"
// @Router /reminders/{reminderID} [patch]
func (h *reminderHandler) updateReminder(c *gin.Context) {
	var req dto.UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	reminder, err := h.reminderService.UpdateReminder(c.Request.Context(), c.Param("reminderID"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update reminder")
		return
	}

	c.JSON(http.StatusOK, dto.ToReminderResponse(reminder))
}

// deleteReminder godoc
// @Summary Delete a reminder
// @Tags reminders
// @Produce  json
// @Param   reminderID path string true "Reminder ID"
// @Success 204 "Reminder deleted"
// @Failure 404 {object} map[string]string "Reminder not found"
// @Failure 500 {object} map[string]string "Failed to delete reminder"
// @Router /reminders/{reminderID} [delete]
func (h *reminderHandler) deleteReminder(c *gin.Context) {
	if err := h.reminderService.DeleteReminder(c.Request.Context(), c.Param("reminderID")); err != nil {
		respondServiceError(c, err, "Failed to delete reminder")
		return
	}
	c.Status(http.StatusNoContent)
}

// listDueReminders godoc
// @Summary List due reminders
// @Description The notification feed: incomplete reminders due within three days, overdue included
// @Tags reminders
// @Produce  json
// @Success 200 {array} dto.DueReminderResponse
// @Failure 500 {object} map[string]string "Failed to list due reminders"
// @Router /reminders/due [get]
func (h *reminderHandler) listDueReminders(c *gin.Context) {
	due, err := h.reminderService.DueReminders(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list due reminders")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDueReminderResponse(due))
}
