package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/domain/activity"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/domain/chat"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/domain/quiz"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mock stores

type mockSnapshots struct {
	stored    *Snapshot
	getErr    error
	inserts   []*Snapshot
	insertOK  bool
	insertErr error
}

func (m *mockSnapshots) Get(ctx context.Context, userID uuid.UUID, date string) (*Snapshot, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.stored == nil || m.stored.SnapshotDate != date {
		return nil, ErrSnapshotNotFound
	}
	return m.stored, nil
}

func (m *mockSnapshots) InsertIfAbsent(ctx context.Context, snapshot *Snapshot) (bool, error) {
	m.inserts = append(m.inserts, snapshot)
	if m.insertErr != nil {
		return false, m.insertErr
	}
	return m.insertOK, nil
}

type mockActivities struct {
	recent    []activity.Activity
	recentErr error
	window    []activity.Activity
	windowErr error
}

func (m *mockActivities) FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]activity.Activity, error) {
	if m.recentErr != nil {
		return nil, m.recentErr
	}
	if len(m.recent) > limit {
		return m.recent[:limit], nil
	}
	return m.recent, nil
}

func (m *mockActivities) FindSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]activity.Activity, error) {
	if m.windowErr != nil {
		return nil, m.windowErr
	}
	return m.window, nil
}

type mockQuizzes struct {
	window    []quiz.Result
	windowErr error
}

func (m *mockQuizzes) FindSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]quiz.Result, error) {
	if m.windowErr != nil {
		return nil, m.windowErr
	}
	return m.window, nil
}

type mockChats struct {
	window    []chat.Interaction
	windowErr error
}

func (m *mockChats) FindSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]chat.Interaction, error) {
	if m.windowErr != nil {
		return nil, m.windowErr
	}
	return m.window, nil
}

func newTestService(snapshots *mockSnapshots, activities *mockActivities, quizzes *mockQuizzes, chats *mockChats) Service {
	return NewService(snapshots, activities, quizzes, chats, zap.NewNop())
}

func materialActivity(userID uuid.UUID, ts time.Time) activity.Activity {
	return activity.Activity{
		ID:           uuid.New(),
		UserID:       userID,
		ActivityType: activity.TypeMaterialGenerated,
		Timestamp:    ts,
	}
}

// today is a Thursday so the chart runs Fri..Thu
var testToday = time.Date(2024, 3, 14, 15, 30, 0, 0, time.UTC)

func TestGetStatsComputesAggregates(t *testing.T) {
	userID := uuid.New()
	tuesday := time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC)
	wednesday := time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC)

	activities := &mockActivities{
		recent: []activity.Activity{materialActivity(userID, testToday)},
		window: []activity.Activity{
			materialActivity(userID, tuesday),
			materialActivity(userID, tuesday),
			materialActivity(userID, testToday),
			{ID: uuid.New(), UserID: userID, ActivityType: activity.TypeCourseSearch, Timestamp: tuesday},
		},
	}
	quizzes := &mockQuizzes{
		window: []quiz.Result{
			{ID: uuid.New(), UserID: userID, Topic: "algebra", Score: 7, TotalQuestions: 10, Timestamp: wednesday},
		},
	}
	snapshots := &mockSnapshots{insertOK: true}

	svc := newTestService(snapshots, activities, quizzes, &mockChats{})

	stats, err := svc.GetStats(context.Background(), userID, testToday)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.KeyStats.TotalQuizzes)
	assert.Equal(t, 3, stats.KeyStats.TotalMaterials)
	assert.Equal(t, 0, stats.KeyStats.TotalChats)
	assert.Equal(t, 70, stats.KeyStats.AverageQuizScore)

	require.Len(t, stats.ChartData, 7)
	assert.Equal(t, "Tue", stats.ChartData[4].Date)
	assert.Equal(t, 2, stats.ChartData[4].Material)
	assert.Equal(t, "Wed", stats.ChartData[5].Date)
	assert.Equal(t, 1, stats.ChartData[5].Quiz)
	assert.Equal(t, "Thu", stats.ChartData[6].Date)
	assert.Equal(t, 1, stats.ChartData[6].Material)

	// Course searches are not study material
	assert.Equal(t, 0, stats.ChartData[4].Quiz)

	require.Len(t, stats.RecentActivities, 1)
	require.Len(t, snapshots.inserts, 1)
	assert.Equal(t, "2024-03-14", snapshots.inserts[0].SnapshotDate)
}

func TestGetStatsServesSnapshotVerbatim(t *testing.T) {
	userID := uuid.New()

	keyStats, err := json.Marshal(KeyStats{TotalQuizzes: 9, TotalMaterials: 4, TotalChats: 2, AverageQuizScore: 55})
	require.NoError(t, err)
	chart := make([]ChartPoint, 7)
	for i := range chart {
		chart[i] = ChartPoint{Date: "Mon", Quiz: i}
	}
	chartData, err := json.Marshal(chart)
	require.NoError(t, err)

	snapshots := &mockSnapshots{
		stored: &Snapshot{
			UserID:          userID,
			SnapshotDate:    "2024-03-14",
			KeyStats:        keyStats,
			WeeklyChartData: chartData,
		},
	}
	// The raw stores would produce different numbers; a cache hit must
	// ignore them entirely.
	activities := &mockActivities{
		recent: []activity.Activity{materialActivity(userID, testToday)},
		window: []activity.Activity{materialActivity(userID, testToday)},
	}
	quizzes := &mockQuizzes{windowErr: errors.New("must not be queried")}
	chats := &mockChats{windowErr: errors.New("must not be queried")}

	svc := newTestService(snapshots, activities, quizzes, chats)

	stats, err := svc.GetStats(context.Background(), userID, testToday)
	require.NoError(t, err)

	assert.Equal(t, 9, stats.KeyStats.TotalQuizzes)
	assert.Equal(t, 55, stats.KeyStats.AverageQuizScore)
	assert.Equal(t, 6, stats.ChartData[6].Quiz)
	// Recent activities are live even on a cache hit
	require.Len(t, stats.RecentActivities, 1)
	assert.Empty(t, snapshots.inserts)
}

func TestGetStatsCacheHitIsIdempotent(t *testing.T) {
	userID := uuid.New()

	snapshots := &mockSnapshots{insertOK: true}
	activities := &mockActivities{
		window: []activity.Activity{materialActivity(userID, testToday)},
	}
	svc := newTestService(snapshots, activities, &mockQuizzes{}, &mockChats{})

	first, err := svc.GetStats(context.Background(), userID, testToday)
	require.NoError(t, err)
	require.Len(t, snapshots.inserts, 1)

	// Simulate the insert landing, then mutate the underlying data
	snapshots.stored = snapshots.inserts[0]
	activities.window = append(activities.window, materialActivity(userID, testToday))

	second, err := svc.GetStats(context.Background(), userID, testToday)
	require.NoError(t, err)

	assert.Equal(t, first.KeyStats, second.KeyStats)
	assert.Equal(t, first.ChartData, second.ChartData)
	assert.Len(t, snapshots.inserts, 1, "no second snapshot write for the same day")
}

func TestGetStatsAverageZeroWithoutQuizzes(t *testing.T) {
	userID := uuid.New()
	svc := newTestService(&mockSnapshots{insertOK: true}, &mockActivities{}, &mockQuizzes{}, &mockChats{})

	stats, err := svc.GetStats(context.Background(), userID, testToday)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.KeyStats.AverageQuizScore)
	assert.Equal(t, 0, stats.KeyStats.TotalQuizzes)
}

func TestGetStatsChartAlwaysSevenBuckets(t *testing.T) {
	userID := uuid.New()
	svc := newTestService(&mockSnapshots{insertOK: true}, &mockActivities{}, &mockQuizzes{}, &mockChats{})

	stats, err := svc.GetStats(context.Background(), userID, testToday)
	require.NoError(t, err)

	require.Len(t, stats.ChartData, 7)
	want := []string{"Fri", "Sat", "Sun", "Mon", "Tue", "Wed", "Thu"}
	for i, p := range stats.ChartData {
		assert.Equal(t, want[i], p.Date)
		assert.Zero(t, p.Chatbot)
		assert.Zero(t, p.Material)
		assert.Zero(t, p.Quiz)
	}
	assert.NotNil(t, stats.RecentActivities)
}

func TestGetStatsDropsRowsOutsideWindowDates(t *testing.T) {
	userID := uuid.New()
	// Same weekday as today but one week earlier; a weekday-keyed chart
	// would wrongly count it into today's bucket.
	lastThursday := time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC)

	activities := &mockActivities{
		window: []activity.Activity{materialActivity(userID, lastThursday)},
	}
	svc := newTestService(&mockSnapshots{insertOK: true}, activities, &mockQuizzes{}, &mockChats{})

	stats, err := svc.GetStats(context.Background(), userID, testToday)
	require.NoError(t, err)

	for _, p := range stats.ChartData {
		assert.Zero(t, p.Material)
	}
}

func TestGetStatsToleratesPartialFailure(t *testing.T) {
	userID := uuid.New()
	tuesday := time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC)

	activities := &mockActivities{
		window: []activity.Activity{materialActivity(userID, tuesday)},
	}
	quizzes := &mockQuizzes{windowErr: errors.New("connection reset")}
	snapshots := &mockSnapshots{insertOK: true}

	svc := newTestService(snapshots, activities, quizzes, &mockChats{})

	stats, err := svc.GetStats(context.Background(), userID, testToday)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.KeyStats.TotalQuizzes)
	assert.Equal(t, 0, stats.KeyStats.AverageQuizScore)
	assert.Equal(t, 1, stats.KeyStats.TotalMaterials)
	// The degraded result is still snapshotted
	require.Len(t, snapshots.inserts, 1)
}

func TestGetStatsSnapshotLookupFailureIsFatal(t *testing.T) {
	svc := newTestService(&mockSnapshots{getErr: errors.New("db down")}, &mockActivities{}, &mockQuizzes{}, &mockChats{})

	_, err := svc.GetStats(context.Background(), uuid.New(), testToday)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "snapshot lookup")
}

func TestGetStatsRecentActivityFailureIsFatal(t *testing.T) {
	activities := &mockActivities{recentErr: errors.New("db down")}
	svc := newTestService(&mockSnapshots{}, activities, &mockQuizzes{}, &mockChats{})

	_, err := svc.GetStats(context.Background(), uuid.New(), testToday)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recent activity")
}

func TestGetStatsSnapshotInsertFailureTolerated(t *testing.T) {
	userID := uuid.New()
	snapshots := &mockSnapshots{insertErr: errors.New("unique_violation")}
	svc := newTestService(snapshots, &mockActivities{}, &mockQuizzes{}, &mockChats{})

	stats, err := svc.GetStats(context.Background(), userID, testToday)
	require.NoError(t, err)
	require.NotNil(t, stats)
	require.Len(t, snapshots.inserts, 1)
}

func TestGetStatsRecomputesUndecodableSnapshot(t *testing.T) {
	userID := uuid.New()

	snapshots := &mockSnapshots{
		stored: &Snapshot{
			UserID:          userID,
			SnapshotDate:    "2024-03-14",
			KeyStats:        []byte(`{not json`),
			WeeklyChartData: []byte(`[]`),
		},
	}
	quizzes := &mockQuizzes{
		window: []quiz.Result{
			{ID: uuid.New(), UserID: userID, Topic: "biology", Score: 5, TotalQuestions: 10, Timestamp: testToday},
		},
	}
	svc := newTestService(snapshots, &mockActivities{}, quizzes, &mockChats{})

	stats, err := svc.GetStats(context.Background(), userID, testToday)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.KeyStats.TotalQuizzes)
	assert.Equal(t, 50, stats.KeyStats.AverageQuizScore)
	// The recompute attempts a best-effort re-insert that loses to the
	// existing row.
	require.Len(t, snapshots.inserts, 1)
}

func TestGetStatsAverageRoundsToNearestInt(t *testing.T) {
	userID := uuid.New()
	quizzes := &mockQuizzes{
		window: []quiz.Result{
			{ID: uuid.New(), UserID: userID, Topic: "a", Score: 1, TotalQuestions: 3, Timestamp: testToday},
			{ID: uuid.New(), UserID: userID, Topic: "b", Score: 1, TotalQuestions: 3, Timestamp: testToday},
		},
	}
	svc := newTestService(&mockSnapshots{insertOK: true}, &mockActivities{}, quizzes, &mockChats{})

	stats, err := svc.GetStats(context.Background(), userID, testToday)
	require.NoError(t, err)

	// 2 of 6 -> 33.33 rounds to 33
	assert.Equal(t, 33, stats.KeyStats.AverageQuizScore)
}
