package routes

import (
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/api/handlers"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

// UserRoutes handles the setup of profile-related routes
type UserRoutes struct {
	handler   *handlers.UserHandler
	jwtSecret string
}

// NewUserRoutes creates a new UserRoutes instance
func NewUserRoutes(handler *handlers.UserHandler, jwtSecret string) *UserRoutes {
	return &UserRoutes{handler: handler, jwtSecret: jwtSecret}
}

// RegisterRoutes registers all profile-related routes
func (r *UserRoutes) RegisterRoutes(router *gin.Engine) {
	profile := router.Group("/api/profile")
	profile.Use(middleware.NewAuthMiddleware(r.jwtSecret))

	profile.GET("", r.handler.GetProfile)
	profile.PUT("", r.handler.UpdateProfile)
}
