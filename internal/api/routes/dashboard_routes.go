package routes

import (
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/api/handlers"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

// DashboardRoutes handles the setup of dashboard routes
type DashboardRoutes struct {
	handler   *handlers.DashboardHandler
	jwtSecret string
}

// NewDashboardRoutes creates a new DashboardRoutes instance
func NewDashboardRoutes(handler *handlers.DashboardHandler, jwtSecret string) *DashboardRoutes {
	return &DashboardRoutes{handler: handler, jwtSecret: jwtSecret}
}

// RegisterRoutes registers all dashboard routes
func (r *DashboardRoutes) RegisterRoutes(router *gin.Engine) {
	metrics := middleware.NewMetricsMiddleware()

	dashboard := router.Group("/api/dashboard")
	dashboard.Use(middleware.NewAuthMiddleware(r.jwtSecret))
	dashboard.Use(metrics.CollectMetrics())

	dashboard.GET("/stats", r.handler.GetStats)
}
