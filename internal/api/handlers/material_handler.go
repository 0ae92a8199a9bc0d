package handlers

import (
	"errors"
	"net/http"

	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/api/dto"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/api/middleware"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/domain/course"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/domain/material"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MaterialHandler handles study material generation and course search
type MaterialHandler struct {
	materials material.Service
	courses   course.Service
	logger    *zap.Logger
}

// NewMaterialHandler creates a new MaterialHandler instance
func NewMaterialHandler(materials material.Service, courses course.Service, logger *zap.Logger) *MaterialHandler {
	return &MaterialHandler{materials: materials, courses: courses, logger: logger}
}

// GenerateMaterial produces notes, flashcards or a summary for a topic
func (h *MaterialHandler) GenerateMaterial(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.GenerateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, err := h.materials.Generate(c.Request.Context(), userID, req.Topic, req.MaterialType)
	if err != nil {
		if errors.Is(err, material.ErrInvalidMaterialType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Material generation failed",
			zap.String("topic", req.Topic),
			zap.String("type", req.MaterialType),
			zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to generate material"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": content})
}

// SearchCourses recommends online courses for a topic
func (h *MaterialHandler) SearchCourses(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	topic := c.Param("topic")

	courses, err := h.courses.Search(c.Request.Context(), userID, topic)
	if err != nil {
		if errors.Is(err, course.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Course search failed",
			zap.String("topic", topic),
			zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to search courses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": courses})
}
