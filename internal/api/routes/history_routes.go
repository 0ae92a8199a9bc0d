package routes

import (
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/api/handlers"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

// HistoryRoutes handles the setup of chat and quiz history routes
type HistoryRoutes struct {
	chatHandler *handlers.ChatHandler
	quizHandler *handlers.QuizHandler
	jwtSecret   string
}

// NewHistoryRoutes creates a new HistoryRoutes instance
func NewHistoryRoutes(chatHandler *handlers.ChatHandler, quizHandler *handlers.QuizHandler, jwtSecret string) *HistoryRoutes {
	return &HistoryRoutes{
		chatHandler: chatHandler,
		quizHandler: quizHandler,
		jwtSecret:   jwtSecret,
	}
}

// RegisterRoutes registers all history-related routes
func (r *HistoryRoutes) RegisterRoutes(router *gin.Engine) {
	history := router.Group("/api/history")
	history.Use(middleware.NewAuthMiddleware(r.jwtSecret))

	history.GET("/chat", r.chatHandler.GetHistory)
	history.POST("/chat", r.chatHandler.SaveInteraction)
	history.DELETE("/chat", r.chatHandler.ClearHistory)

	history.GET("/quiz", r.quizHandler.GetHistory)
	history.POST("/quiz", r.quizHandler.SaveResult)
}
