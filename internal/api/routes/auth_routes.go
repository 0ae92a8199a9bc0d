package routes

import (
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/api/handlers"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/api/middleware"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/pkg/security/auth"
	"github.com/gin-gonic/gin"
)

// AuthRoutes handles the setup of auth-related routes
type AuthRoutes struct {
	handler     *handlers.AuthHandler
	chatHandler *handlers.ChatHandler
	jwtSecret   string
	limiter     auth.RateLimiter
}

// NewAuthRoutes creates a new AuthRoutes instance
func NewAuthRoutes(handler *handlers.AuthHandler, chatHandler *handlers.ChatHandler, jwtSecret string, limiter auth.RateLimiter) *AuthRoutes {
	return &AuthRoutes{
		handler:     handler,
		chatHandler: chatHandler,
		jwtSecret:   jwtSecret,
		limiter:     limiter,
	}
}

// RegisterRoutes registers all auth-related routes
func (r *AuthRoutes) RegisterRoutes(router *gin.Engine) {
	authGroup := router.Group("/api/auth")

	// Credential endpoints are rate limited per client IP
	public := authGroup.Group("")
	if r.limiter != nil {
		public.Use(middleware.RateLimitMiddleware(r.limiter))
	}
	public.POST("/register", r.handler.Register)
	public.POST("/login", r.handler.Login)

	// The chatbot proxy rides under the auth group for client compatibility
	protected := authGroup.Group("")
	protected.Use(middleware.NewAuthMiddleware(r.jwtSecret))
	protected.POST("/chat", r.chatHandler.Chat)
}
