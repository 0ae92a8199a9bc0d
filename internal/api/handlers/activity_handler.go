package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/api/dto"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/api/middleware"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/domain/activity"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ActivityHandler handles learning activity requests
type ActivityHandler struct {
	service activity.Service
	logger  *zap.Logger
}

// NewActivityHandler creates a new ActivityHandler instance
func NewActivityHandler(service activity.Service, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{service: service, logger: logger}
}

// LogActivity records a learning activity for the authenticated student
func (h *ActivityHandler) LogActivity(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.LogActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.service.LogActivity(c.Request.Context(), activity.LogActivityInput{
		UserID:       userID,
		ActivityType: req.ActivityType,
		Details:      req.Details,
	})
	if err != nil {
		if errors.Is(err, activity.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to log activity", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "activity logged"})
}

// GetRecentActivity lists the most recent activities, newest first
func (h *ActivityHandler) GetRecentActivity(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	activities, err := h.service.GetRecentActivity(c.Request.Context(), userID, limit)
	if err != nil {
		h.logger.Error("Failed to fetch recent activity", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": activities})
}
