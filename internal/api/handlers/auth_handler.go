package handlers

import (
	"errors"
	"net/http"

	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/api/dto"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/domain/user"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/pkg/config"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/pkg/security/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	service user.Service
	authCfg config.AuthConfig
	logger  *zap.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(service user.Service, authCfg config.AuthConfig, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{service: service, authCfg: authCfg, logger: logger}
}

// Register creates a new student account and returns a signed token
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := h.service.Register(c.Request.Context(), user.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, user.ErrEmailExists):
			statusCode = http.StatusConflict
		case errors.Is(err, user.ErrInvalidInput):
			statusCode = http.StatusBadRequest
		default:
			h.logger.Error("Registration failed", zap.Error(err))
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	token, err := auth.GenerateToken(u.ID, u.Email, h.authCfg.JWTSecret, h.authCfg.JWTIssuer, h.authCfg.JWTExpiryHours)
	if err != nil {
		h.logger.Error("Token generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": dto.AuthResponse{
		Token: token,
		User:  dto.UserToResponse(u),
	}})
}

// Login authenticates a student and returns a signed token
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := h.service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		h.logger.Error("Login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	token, err := auth.GenerateToken(u.ID, u.Email, h.authCfg.JWTSecret, h.authCfg.JWTIssuer, h.authCfg.JWTExpiryHours)
	if err != nil {
		h.logger.Error("Token generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.AuthResponse{
		Token: token,
		User:  dto.UserToResponse(u),
	}})
}
