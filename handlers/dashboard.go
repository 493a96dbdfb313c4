package handlers

import (
	"net/http"

	"salonkit/services/dashboard"
	"salonkit/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler exposes the daily summary over HTTP.
type DashboardHandler struct {
	DashboardService dashboard.DashboardService
}

func NewDashboardHandler(svc dashboard.DashboardService) *DashboardHandler {
	return &DashboardHandler{DashboardService: svc}
}

// GetDashboardSummaryHandler handles GET /api/dashboard.
func (h *DashboardHandler) GetDashboardSummaryHandler(c *gin.Context) {
	logger := utils.GetLogger()
	summary, err := h.DashboardService.GetDashboardSummary()
	if err != nil {
		logger.Error("Failed to build dashboard summary", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetTodayBookingsHandler handles GET /api/dashboard/today.
func (h *DashboardHandler) GetTodayBookingsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	views, err := h.DashboardService.GetTodayBookings()
	if err != nil {
		logger.Error("Failed to list today's bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, views)
}
