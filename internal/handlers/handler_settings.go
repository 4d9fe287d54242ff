package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/piksel-lt/orderdesk/internal/core/ports/services"
	"github.com/piksel-lt/orderdesk/internal/dto"
)

// settingsHandler handles HTTP requests related to the settings store.
type settingsHandler struct {
	settingsService portssvc.SettingsSvc
}

func newSettingsHandler(ss portssvc.SettingsSvc) *settingsHandler {
	return &settingsHandler{settingsService: ss}
}

// registerSettingsRoutes registers the key/value settings routes.
func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvc) {
	h := newSettingsHandler(settingsService)

	settings := rg.Group("/settings")
	{
		settings.GET("/:key", h.getSetting)
		settings.PUT("/:key", h.saveSetting)
	}
}

// getSetting godoc
// @Summary Get a setting
// @Tags settings
// @Produce  json
// @Param   key path string true "Setting key"
// @Success 200 {object} dto.SettingResponse
// @Failure 404 {object} map[string]string "Setting not found"
// @Failure 500 {object} map[string]string "Failed to retrieve setting"
// @Router /settings/{key} [get]
func (h *settingsHandler) getSetting(c *gin.Context) {
	setting, err := h.settingsService.GetSetting(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve setting")
		return
	}
	c.JSON(http.StatusOK, dto.ToSettingResponse(setting))
}

// saveSetting godoc
// @Summary Save a setting
// @Description Creates or replaces a setting value
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   key path string true "Setting key"
// @Param   setting body dto.SaveSettingRequest true "Setting value"
// @Success 200 {object} dto.SettingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to save setting"
// @Router /settings/{key} [put]
func (h *settingsHandler) saveSetting(c *gin.Context) {
	var req dto.SaveSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	setting, err := h.settingsService.SaveSetting(c.Request.Context(), c.Param("key"), req.Value)
	if err != nil {
		respondServiceError(c, err, "Failed to save setting")
		return
	}
	c.JSON(http.StatusOK, dto.ToSettingResponse(setting))
}
