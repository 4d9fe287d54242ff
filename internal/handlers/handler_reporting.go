package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/piksel-lt/orderdesk/internal/core/ports/services"
	"github.com/piksel-lt/orderdesk/internal/dto"
)

// reportingHandler handles the derived, read-only surfaces.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the report and calendar routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	rg.GET("/reports/revenue", h.getRevenueReport)
	rg.GET("/calendar/weeks", h.getYearCalendar)
}

// yearParam parses the mandatory `year` query parameter.
func yearParam(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'year' must be an integer"})
		return 0, false
	}
	return year, true
}

// getRevenueReport godoc
// @Summary Yearly revenue report
// @Description Per-month prorated totals over approved orders touching the year
// @Tags reports
// @Produce  json
// @Param   year query int true "Report year"
// @Success 200 {object} dto.RevenueReportResponse
// @Failure 400 {object} map[string]string "Invalid year"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /reports/revenue [get]
func (h *reportingHandler) getRevenueReport(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}

	report, err := h.reportingService.MonthlyRevenue(c.Request.Context(), year)
	if err != nil {
		respondServiceError(c, err, "Failed to build report")
		return
	}
	c.JSON(http.StatusOK, dto.ToRevenueReportResponse(report))
}

// getYearCalendar godoc
// @Summary Yearly week-number calendar
// @Description ISO week numbers for every month of the year, with Monday/Sunday bounds
// @Tags reports
// @Produce  json
// @Param   year query int true "Calendar year"
// @Success 200 {object} dto.CalendarResponse
// @Failure 400 {object} map[string]string "Invalid year"
// @Failure 500 {object} map[string]string "Failed to build calendar"
// @Router /calendar/weeks [get]
func (h *reportingHandler) getYearCalendar(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}

	months, err := h.reportingService.YearCalendar(c.Request.Context(), year)
	if err != nil {
		respondServiceError(c, err, "Failed to build calendar")
		return
	}
	c.JSON(http.StatusOK, dto.ToCalendarResponse(year, months))
}
