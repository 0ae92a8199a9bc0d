package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/ai"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/api/dto"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/api/handlers"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/api/routes"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/domain/activity"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/domain/chat"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/domain/course"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/domain/dashboard"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/domain/material"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/domain/quiz"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/domain/user"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/infrastructure/cache"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/infrastructure/persistence/postgres/connection"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/infrastructure/persistence/postgres/migrations"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/news"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/pkg/config"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/pkg/logger"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/pkg/security/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Chatbot generation settings used by the tutor proxy
const (
	chatTemperature     = 0.7
	chatMaxOutputTokens = 250
)

// RequestLoggerMiddleware logs all incoming HTTP requests
func RequestLoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		log.Info("Request completed",
			zap.String("path", path),
			zap.String("method", method),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("")
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	log := logger.NewLoggerWithLevel(cfg.Logging.Level)
	defer log.Sync()

	log.Info("Configuration loaded successfully")
	log.Info("Server mode: " + cfg.Server.Mode)

	// Set up Gin
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	gin.DefaultWriter = os.Stdout

	if err := dto.RegisterCustomValidators(); err != nil {
		log.Fatal("Failed to register request validators", zap.Error(err))
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggerMiddleware(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowMethods: cfg.CORS.AllowedMethods,
		AllowHeaders: append(cfg.CORS.AllowedHeaders,
			"Accept-Encoding",
			"Content-Type",
			"Authorization",
		),
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-RateLimit-Remaining",
			"X-RateLimit-Reset",
		},
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	// Connect to database
	db, err := connection.NewDatabase(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if err := migrations.AutoMigrate(db, log.Logger); err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Initialize Redis; the API degrades to uncached, unthrottled
	// operation when it is unavailable
	var redisClient *cache.RedisClient
	var rateLimiter auth.RateLimiter
	redisConfig := cache.NewConfigFromEnv(cfg)
	redisClient, err = cache.NewRedisClient(redisConfig)
	if err != nil {
		log.Warn("Redis unavailable, continuing without cache and rate limiting", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		rateLimiter = auth.NewRedisRateLimiter(redisClient.GetClient(), 1*time.Minute, 100)
	}

	// Initialize the Gemini client
	aiClient, err := ai.NewClient(cfg.AI, log.Logger)
	if err != nil {
		log.Fatal("Failed to initialize AI client", zap.Error(err))
	}
	chatResponder := aiClient.WithGenerationConfig(chatTemperature, chatMaxOutputTokens)

	// Initialize the news client
	var newsClient *news.Client
	newsClient, err = news.NewClient(cfg.News, log.Logger)
	if err != nil {
		log.Warn("News client disabled", zap.Error(err))
		newsClient = nil
	}

	// Initialize repositories
	userRepo := user.NewRepository(db)
	activityRepo := activity.NewRepository(db)
	quizRepo := quiz.NewRepository(db)
	chatRepo := chat.NewRepository(db)
	snapshotRepo := dashboard.NewSnapshotRepository(db)

	// Initialize services
	userService := user.NewService(userRepo)
	activityService := activity.NewService(activityRepo, log.Logger)
	quizService := quiz.NewService(quizRepo, aiClient, log.Logger)
	chatService := chat.NewService(chatRepo, chatResponder, log.Logger)
	materialService := material.NewService(aiClient, activityService, log.Logger)
	courseService := course.NewService(aiClient, activityService, log.Logger)
	dashboardService := dashboard.NewService(snapshotRepo, activityRepo, quizRepo, chatRepo, log.Logger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, cfg.Auth, log.Logger)
	userHandler := handlers.NewUserHandler(userService, log.Logger)
	activityHandler := handlers.NewActivityHandler(activityService, log.Logger)
	quizHandler := handlers.NewQuizHandler(quizService, activityService, log.Logger)
	chatHandler := handlers.NewChatHandler(chatService, log.Logger)
	materialHandler := handlers.NewMaterialHandler(materialService, courseService, log.Logger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, log.Logger)

	// Register routes
	routes.SetupHealthRoutes(router, db, redisClient)

	authRoutes := routes.NewAuthRoutes(authHandler, chatHandler, cfg.Auth.JWTSecret, rateLimiter)
	authRoutes.RegisterRoutes(router)

	userRoutes := routes.NewUserRoutes(userHandler, cfg.Auth.JWTSecret)
	userRoutes.RegisterRoutes(router)

	activityRoutes := routes.NewActivityRoutes(activityHandler, cfg.Auth.JWTSecret)
	activityRoutes.RegisterRoutes(router)

	historyRoutes := routes.NewHistoryRoutes(chatHandler, quizHandler, cfg.Auth.JWTSecret)
	historyRoutes.RegisterRoutes(router)

	learningRoutes := routes.NewLearningRoutes(quizHandler, materialHandler, cfg.Auth.JWTSecret)
	learningRoutes.RegisterRoutes(router)

	if newsClient != nil {
		newsHandler := handlers.NewNewsHandler(newsClient, redisClient, log.Logger)
		newsRoutes := routes.NewNewsRoutes(newsHandler, cfg.Auth.JWTSecret)
		newsRoutes.RegisterRoutes(router)
	}

	dashboardRoutes := routes.NewDashboardRoutes(dashboardHandler, cfg.Auth.JWTSecret)
	dashboardRoutes.RegisterRoutes(router)

	for _, route := range router.Routes() {
		log.Info("Route registered",
			zap.String("method", route.Method),
			zap.String("path", route.Path),
		)
	}

	// Start server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Info(fmt.Sprintf("Server starting on port %d", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited properly")
}
