package handlers

import (
	"errors"
	"net/http"

	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/api/dto"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/api/middleware"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/domain/activity"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/domain/quiz"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuizHandler handles quiz generation, scoring and history
type QuizHandler struct {
	service    quiz.Service
	activities activity.Service
	logger     *zap.Logger
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service quiz.Service, activities activity.Service, logger *zap.Logger) *QuizHandler {
	return &QuizHandler{service: service, activities: activities, logger: logger}
}

// GenerateQuiz produces a fresh multiple-choice quiz for a subject
func (h *QuizHandler) GenerateQuiz(c *gin.Context) {
	subject := c.Param("subject")

	questions, err := h.service.GenerateQuiz(c.Request.Context(), subject)
	if err != nil {
		if errors.Is(err, quiz.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Quiz generation failed",
			zap.String("subject", subject),
			zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to generate quiz"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": questions})
}

// SaveResult records a completed quiz and logs the activity
func (h *QuizHandler) SaveResult(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.SaveQuizResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.SaveResult(c.Request.Context(), quiz.SaveResultInput{
		UserID:         userID,
		Topic:          req.Topic,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
	})
	if err != nil {
		if errors.Is(err, quiz.ErrInvalidInput) || errors.Is(err, quiz.ErrInvalidScore) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to save quiz result", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	// Best-effort activity log, matching the material generation flow
	if err := h.activities.LogActivity(c.Request.Context(), activity.LogActivityInput{
		UserID:       userID,
		ActivityType: activity.TypeQuizCompleted,
		Details: map[string]interface{}{
			"topic": req.Topic,
			"score": req.Score,
			"total": req.TotalQuestions,
		},
	}); err != nil {
		h.logger.Warn("Failed to log quiz activity",
			zap.String("user_id", userID.String()),
			zap.Error(err))
	}

	c.JSON(http.StatusCreated, gin.H{"data": result})
}

// GetHistory lists the student's quiz results, newest first
func (h *QuizHandler) GetHistory(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	results, err := h.service.GetHistory(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to fetch quiz history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": results})
}
