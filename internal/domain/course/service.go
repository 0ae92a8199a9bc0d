package course

import (
	"context"
	"errors"
	"fmt"

	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/domain/activity"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidInput = errors.New("invalid input")

// Course is one recommended course for a searched topic
type Course struct {
	Source      string `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// Generator produces structured JSON from a prompt. Satisfied by the
// Gemini client.
type Generator interface {
	GenerateJSON(ctx context.Context, prompt string, out interface{}) error
}

// Service interface
type Service interface {
	Search(ctx context.Context, userID uuid.UUID, topic string) ([]Course, error)
}

type service struct {
	generator  Generator
	activities activity.Service
	logger     *zap.Logger
}

func NewService(generator Generator, activities activity.Service, logger *zap.Logger) Service {
	return &service{generator: generator, activities: activities, logger: logger}
}

const coursePromptTemplate = `You are a course advisor. Recommend 6 high-quality online courses for the topic "%s". Respond ONLY with a valid JSON array of objects. Each object must have these exact keys: "source" (the platform offering the course), "title", "description", "url".`

func (s *service) Search(ctx context.Context, userID uuid.UUID, topic string) ([]Course, error) {
	if topic == "" {
		return nil, ErrInvalidInput
	}

	var courses []Course
	prompt := fmt.Sprintf(coursePromptTemplate, topic)
	if err := s.generator.GenerateJSON(ctx, prompt, &courses); err != nil {
		return nil, fmt.Errorf("searching courses: %w", err)
	}

	// Best-effort: a failed log must not fail the search
	if err := s.activities.LogActivity(ctx, activity.LogActivityInput{
		UserID:       userID,
		ActivityType: activity.TypeCourseSearch,
		Details:      map[string]interface{}{"topic": topic},
	}); err != nil {
		s.logger.Warn("Failed to log course search activity",
			zap.String("user_id", userID.String()),
			zap.Error(err))
	}

	return courses, nil
}
