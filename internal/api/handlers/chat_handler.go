package handlers

import (
	"errors"
	"net/http"

	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/api/dto"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/api/middleware"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/domain/chat"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler handles tutor chatbot requests
type ChatHandler struct {
	service chat.Service
	logger  *zap.Logger
}

// NewChatHandler creates a new ChatHandler instance
func NewChatHandler(service chat.Service, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{service: service, logger: logger}
}

// Chat generates a tutor reply and persists the exchange
func (h *ChatHandler) Chat(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.service.Reply(c.Request.Context(), userID, req.Message)
	if err != nil {
		if errors.Is(err, chat.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Chatbot reply failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to generate reply"})
		return
	}

	// The reply is returned even if persistence fails
	if _, err := h.service.SaveInteraction(c.Request.Context(), chat.SaveInteractionInput{
		UserID:      userID,
		UserMessage: req.Message,
		AIResponse:  reply,
	}); err != nil {
		h.logger.Warn("Failed to save chat interaction",
			zap.String("user_id", userID.String()),
			zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.ChatResponse{Reply: reply}})
}

// SaveInteraction persists one chatbot exchange submitted by the client
func (h *ChatHandler) SaveInteraction(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.SaveChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	interaction, err := h.service.SaveInteraction(c.Request.Context(), chat.SaveInteractionInput{
		UserID:      userID,
		UserMessage: req.UserMessage,
		AIResponse:  req.AIResponse,
	})
	if err != nil {
		if errors.Is(err, chat.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to save chat interaction", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": interaction})
}

// GetHistory lists the student's chat history, oldest first
func (h *ChatHandler) GetHistory(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	history, err := h.service.GetHistory(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to fetch chat history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": history})
}

// ClearHistory deletes the student's chat history
func (h *ChatHandler) ClearHistory(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.service.ClearHistory(c.Request.Context(), userID); err != nil {
		h.logger.Error("Failed to clear chat history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "chat history cleared"})
}
