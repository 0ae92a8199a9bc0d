package routes

import (
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/api/handlers"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

// ActivityRoutes handles the setup of activity-related routes
type ActivityRoutes struct {
	handler   *handlers.ActivityHandler
	jwtSecret string
}

// NewActivityRoutes creates a new ActivityRoutes instance
func NewActivityRoutes(handler *handlers.ActivityHandler, jwtSecret string) *ActivityRoutes {
	return &ActivityRoutes{handler: handler, jwtSecret: jwtSecret}
}

// RegisterRoutes registers all activity-related routes
func (r *ActivityRoutes) RegisterRoutes(router *gin.Engine) {
	activity := router.Group("/api/activity")
	activity.Use(middleware.NewAuthMiddleware(r.jwtSecret))

	activity.GET("", r.handler.GetRecentActivity)
	activity.POST("", r.handler.LogActivity)
}
