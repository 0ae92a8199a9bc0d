package routes

import (
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/api/handlers"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

// NewsRoutes handles the setup of the education news proxy route
type NewsRoutes struct {
	handler   *handlers.NewsHandler
	jwtSecret string
}

// NewNewsRoutes creates a new NewsRoutes instance
func NewNewsRoutes(handler *handlers.NewsHandler, jwtSecret string) *NewsRoutes {
	return &NewsRoutes{handler: handler, jwtSecret: jwtSecret}
}

// RegisterRoutes registers the news route
func (r *NewsRoutes) RegisterRoutes(router *gin.Engine) {
	news := router.Group("/api/news")
	news.Use(middleware.NewAuthMiddleware(r.jwtSecret))

	news.GET("", r.handler.Search)
}
