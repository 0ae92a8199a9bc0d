package routes

import (
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/api/handlers"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

// LearningRoutes handles quiz generation, study material and course
// search routes
type LearningRoutes struct {
	quizHandler     *handlers.QuizHandler
	materialHandler *handlers.MaterialHandler
	jwtSecret       string
}

// NewLearningRoutes creates a new LearningRoutes instance
func NewLearningRoutes(quizHandler *handlers.QuizHandler, materialHandler *handlers.MaterialHandler, jwtSecret string) *LearningRoutes {
	return &LearningRoutes{
		quizHandler:     quizHandler,
		materialHandler: materialHandler,
		jwtSecret:       jwtSecret,
	}
}

// RegisterRoutes registers all learning-related routes
func (r *LearningRoutes) RegisterRoutes(router *gin.Engine) {
	authed := middleware.NewAuthMiddleware(r.jwtSecret)

	quiz := router.Group("/api/quiz")
	quiz.Use(authed)
	quiz.GET("/:subject", r.quizHandler.GenerateQuiz)

	material := router.Group("/api/material")
	material.Use(authed)
	material.POST("/generate", r.materialHandler.GenerateMaterial)

	courses := router.Group("/api/courses")
	courses.Use(authed)
	courses.GET("/:topic", r.materialHandler.SearchCourses)
}
