package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/domain/activity"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/domain/dashboard"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockDashboardService struct {
	stats *dashboard.Stats
	err   error

	gotUserID uuid.UUID
	gotToday  time.Time
}

func (m *mockDashboardService) GetStats(ctx context.Context, userID uuid.UUID, today time.Time) (*dashboard.Stats, error) {
	m.gotUserID = userID
	m.gotToday = today
	return m.stats, m.err
}

// setUser simulates the auth middleware for handler tests
func setUser(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func newDashboardRouter(svc dashboard.Service, mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewDashboardHandler(svc, zap.NewNop())
	group := router.Group("/api/dashboard", mw...)
	group.GET("/stats", handler.GetStats)
	return router
}

func TestDashboardGetStats(t *testing.T) {
	userID := uuid.New()
	svc := &mockDashboardService{
		stats: &dashboard.Stats{
			KeyStats: dashboard.KeyStats{TotalQuizzes: 2, TotalMaterials: 1, AverageQuizScore: 80},
			ChartData: []dashboard.ChartPoint{
				{Date: "Mon"}, {Date: "Tue"}, {Date: "Wed"}, {Date: "Thu"},
				{Date: "Fri"}, {Date: "Sat"}, {Date: "Sun", Quiz: 2},
			},
			RecentActivities: []activity.Activity{},
		},
	}
	router := newDashboardRouter(svc, setUser(userID))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, svc.gotUserID)
	assert.WithinDuration(t, time.Now(), svc.gotToday, time.Minute)

	var body struct {
		Data struct {
			KeyStats         dashboard.KeyStats     `json:"keyStats"`
			ChartData        []dashboard.ChartPoint `json:"chartData"`
			RecentActivities []activity.Activity    `json:"recentActivities"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 80, body.Data.KeyStats.AverageQuizScore)
	assert.Len(t, body.Data.ChartData, 7)
	assert.NotNil(t, body.Data.RecentActivities)
}

func TestDashboardGetStatsUnauthenticated(t *testing.T) {
	router := newDashboardRouter(&mockDashboardService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDashboardGetStatsServiceFailure(t *testing.T) {
	svc := &mockDashboardService{err: errors.New("snapshot lookup failed")}
	router := newDashboardRouter(svc, setUser(uuid.New()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
