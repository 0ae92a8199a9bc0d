package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/domain/activity"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/domain/chat"
	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/domain/quiz"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RecentActivityLimit is how many live activity rows accompany every response
const RecentActivityLimit = 5

// WindowDays is the trailing aggregation window
const WindowDays = 7

// ActivityStore is the slice of the activity repository the aggregator reads.
// Satisfied by activity.Repository.
type ActivityStore interface {
	FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]activity.Activity, error)
	FindSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]activity.Activity, error)
}

// QuizStore is satisfied by quiz.Repository.
type QuizStore interface {
	FindSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]quiz.Result, error)
}

// ChatStore is satisfied by chat.Repository.
type ChatStore interface {
	FindSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]chat.Interaction, error)
}

// Stats is the full dashboard payload for one user and reference day
type Stats struct {
	KeyStats         KeyStats            `json:"keyStats"`
	ChartData        []ChartPoint        `json:"chartData"`
	RecentActivities []activity.Activity `json:"recentActivities"`
}

// Service produces an idempotent-per-day view of a user's weekly activity.
// The reference day is an explicit parameter so behavior is reproducible
// under test; callers pass the request-arrival day.
type Service interface {
	GetStats(ctx context.Context, userID uuid.UUID, today time.Time) (*Stats, error)
}

type service struct {
	snapshots  SnapshotRepository
	activities ActivityStore
	quizzes    QuizStore
	chats      ChatStore
	logger     *zap.Logger
}

func NewService(
	snapshots SnapshotRepository,
	activities ActivityStore,
	quizzes QuizStore,
	chats ChatStore,
	logger *zap.Logger,
) Service {
	return &service{
		snapshots:  snapshots,
		activities: activities,
		quizzes:    quizzes,
		chats:      chats,
		logger:     logger,
	}
}

func (s *service) GetStats(ctx context.Context, userID uuid.UUID, today time.Time) (*Stats, error) {
	dateKey := today.Format(SnapshotDateLayout)

	// Snapshot lookup and the live recent-activity fetch gate everything
	// downstream; their failures surface to the caller.
	snapshot, err := s.snapshots.Get(ctx, userID, dateKey)
	if err != nil && !errors.Is(err, ErrSnapshotNotFound) {
		return nil, fmt.Errorf("snapshot lookup for %s: %w", dateKey, err)
	}

	recent, err := s.activities.FindRecent(ctx, userID, RecentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("fetching recent activity: %w", err)
	}
	if recent == nil {
		recent = []activity.Activity{}
	}

	if snapshot != nil {
		if stats, decodeErr := s.decodeSnapshot(snapshot, recent); decodeErr == nil {
			s.logger.Debug("Serving dashboard from snapshot",
				zap.String("user_id", userID.String()),
				zap.String("date", dateKey))
			return stats, nil
		} else {
			// A snapshot that no longer decodes is recomputed; the insert
			// below will lose against the existing row and be skipped.
			s.logger.Warn("Discarding undecodable snapshot",
				zap.String("user_id", userID.String()),
				zap.String("date", dateKey),
				zap.Error(decodeErr))
		}
	}

	stats := s.compute(ctx, userID, today)
	stats.RecentActivities = recent

	s.persistSnapshot(ctx, userID, dateKey, stats)

	return stats, nil
}

// compute aggregates the trailing window from the raw event logs. Each of
// the three windowed fetches degrades independently to an empty result so a
// transiently unavailable store only undercounts, never fails the request.
func (s *service) compute(ctx context.Context, userID uuid.UUID, today time.Time) *Stats {
	since := today.AddDate(0, 0, -WindowDays)

	var (
		activities   []activity.Activity
		quizResults  []quiz.Result
		interactions []chat.Interaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.activities.FindSince(gctx, userID, since)
		if err != nil {
			s.logger.Warn("Activity window query failed, degrading to empty", zap.Error(err))
			return nil
		}
		activities = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.quizzes.FindSince(gctx, userID, since)
		if err != nil {
			s.logger.Warn("Quiz window query failed, degrading to empty", zap.Error(err))
			return nil
		}
		quizResults = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.chats.FindSince(gctx, userID, since)
		if err != nil {
			s.logger.Warn("Chat window query failed, degrading to empty", zap.Error(err))
			return nil
		}
		interactions = rows
		return nil
	})
	// The closures never return errors; Wait only joins the fan-out.
	_ = g.Wait()

	chart := buildChart(today, activities, quizResults, interactions)

	keyStats := KeyStats{
		TotalQuizzes: len(quizResults),
		TotalChats:   len(interactions),
	}
	for _, a := range activities {
		if strings.HasPrefix(a.ActivityType, activity.MaterialTypePrefix) {
			keyStats.TotalMaterials++
		}
	}

	var totalScore, totalPossible int
	for _, q := range quizResults {
		totalScore += q.Score
		totalPossible += q.TotalQuestions
	}
	if totalPossible > 0 {
		keyStats.AverageQuizScore = int(math.Round(float64(totalScore) / float64(totalPossible) * 100))
	}

	return &Stats{
		KeyStats:  keyStats,
		ChartData: chart,
	}
}

// buildChart constructs exactly 7 buckets, one per calendar day ending at
// today. Buckets are keyed by full date internally; the weekday short name
// is only the rendered label. Rows outside the 7 dates are dropped.
func buildChart(today time.Time, activities []activity.Activity, quizResults []quiz.Result, interactions []chat.Interaction) []ChartPoint {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	points := make([]ChartPoint, WindowDays)
	index := make(map[string]*ChartPoint, WindowDays)
	for i := 0; i < WindowDays; i++ {
		d := day.AddDate(0, 0, i-WindowDays+1)
		points[i] = ChartPoint{Date: d.Format("Mon")}
		index[d.Format(SnapshotDateLayout)] = &points[i]
	}

	for _, a := range activities {
		if !strings.HasPrefix(a.ActivityType, activity.MaterialTypePrefix) {
			continue
		}
		if p, ok := index[a.Timestamp.Format(SnapshotDateLayout)]; ok {
			p.Material++
		}
	}
	for _, q := range quizResults {
		if p, ok := index[q.Timestamp.Format(SnapshotDateLayout)]; ok {
			p.Quiz++
		}
	}
	for _, c := range interactions {
		if p, ok := index[c.Timestamp.Format(SnapshotDateLayout)]; ok {
			p.Chatbot++
		}
	}

	return points
}

func (s *service) decodeSnapshot(snapshot *Snapshot, recent []activity.Activity) (*Stats, error) {
	var keyStats KeyStats
	if err := json.Unmarshal(snapshot.KeyStats, &keyStats); err != nil {
		return nil, fmt.Errorf("decoding key stats: %w", err)
	}
	var chart []ChartPoint
	if err := json.Unmarshal(snapshot.WeeklyChartData, &chart); err != nil {
		return nil, fmt.Errorf("decoding chart data: %w", err)
	}
	return &Stats{
		KeyStats:         keyStats,
		ChartData:        chart,
		RecentActivities: recent,
	}, nil
}

// persistSnapshot is best-effort: the computed values are returned to the
// caller whether or not the write lands, and a concurrent identical insert
// winning the race is not an error.
func (s *service) persistSnapshot(ctx context.Context, userID uuid.UUID, dateKey string, stats *Stats) {
	keyStats, err := json.Marshal(stats.KeyStats)
	if err != nil {
		s.logger.Error("Failed to encode key stats for snapshot", zap.Error(err))
		return
	}
	chartData, err := json.Marshal(stats.ChartData)
	if err != nil {
		s.logger.Error("Failed to encode chart data for snapshot", zap.Error(err))
		return
	}

	inserted, err := s.snapshots.InsertIfAbsent(ctx, &Snapshot{
		UserID:          userID,
		SnapshotDate:    dateKey,
		KeyStats:        keyStats,
		WeeklyChartData: chartData,
	})
	switch {
	case err != nil:
		s.logger.Warn("Snapshot insert failed",
			zap.String("user_id", userID.String()),
			zap.String("date", dateKey),
			zap.Error(err))
	case !inserted:
		s.logger.Debug("Snapshot already written by a concurrent request",
			zap.String("user_id", userID.String()),
			zap.String("date", dateKey))
	default:
		s.logger.Info("New dashboard snapshot saved",
			zap.String("user_id", userID.String()),
			zap.String("date", dateKey))
	}
}
