package handlers

import (
	"net/http"
	"time"

	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/infrastructure/cache"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/news"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const newsCacheTTL = 10 * time.Minute

// NewsHandler proxies education news searches
type NewsHandler struct {
	client      *news.Client
	redisClient *cache.RedisClient
	logger      *zap.Logger
}

// NewNewsHandler creates a new NewsHandler instance
func NewNewsHandler(client *news.Client, redisClient *cache.RedisClient, logger *zap.Logger) *NewsHandler {
	return &NewsHandler{client: client, redisClient: redisClient, logger: logger}
}

// Search returns education news articles for an optional query,
// serving repeated queries from the cache.
func (h *NewsHandler) Search(c *gin.Context) {
	query := c.DefaultQuery("q", "education technology")

	var articles []news.Article

	fetch := func() (interface{}, error) {
		return h.client.Search(c.Request.Context(), query)
	}

	if h.redisClient != nil {
		err := h.redisClient.CacheJSON(c.Request.Context(), "news:"+query, newsCacheTTL, &articles, fetch)
		if err != nil {
			h.logger.Error("News search failed", zap.String("query", query), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch news"})
			return
		}
	} else {
		result, err := h.client.Search(c.Request.Context(), query)
		if err != nil {
			h.logger.Error("News search failed", zap.String("query", query), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch news"})
			return
		}
		articles = result
	}

	c.JSON(http.StatusOK, gin.H{"data": articles})
}
