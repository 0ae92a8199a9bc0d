package handlers

import (
	"net/http"
	"time"

	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/api/middleware"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/domain/dashboard"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler handles dashboard aggregation requests
type DashboardHandler struct {
	service dashboard.Service
	logger  *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler instance
func NewDashboardHandler(service dashboard.Service, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{service: service, logger: logger}
}

// GetStats returns the student's dashboard: key stats, the weekly
// activity chart and the latest activities. The reference date for
// snapshotting and windowing is the server's current day.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	stats, err := h.service.GetStats(c.Request.Context(), userID, time.Now())
	if err != nil {
		h.logger.Error("Failed to build dashboard stats",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": stats})
}
