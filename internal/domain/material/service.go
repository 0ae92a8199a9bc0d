package material

import (
	"context"
	"errors"
	"fmt"

	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/domain/activity"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidMaterialType = errors.New("invalid material type")

// Material types a student can request
const (
	TypeNotes      = "notes"
	TypeFlashcards = "flashcards"
	TypeSummary    = "summary"
)

// Flashcard is one generated front/back card
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// Generator produces content from a prompt. Satisfied by the Gemini client.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateJSON(ctx context.Context, prompt string, out interface{}) error
}

// Content is the generated study material. Text carries notes and
// summaries; Flashcards is set only for the flashcards type.
type Content struct {
	Text       string      `json:"text,omitempty"`
	Flashcards []Flashcard `json:"flashcards,omitempty"`
}

// Service interface
type Service interface {
	Generate(ctx context.Context, userID uuid.UUID, topic, materialType string) (*Content, error)
}

type service struct {
	generator  Generator
	activities activity.Service
	logger     *zap.Logger
}

func NewService(generator Generator, activities activity.Service, logger *zap.Logger) Service {
	return &service{generator: generator, activities: activities, logger: logger}
}

func (s *service) Generate(ctx context.Context, userID uuid.UUID, topic, materialType string) (*Content, error) {
	var content Content

	switch materialType {
	case TypeNotes:
		prompt := fmt.Sprintf(`You are an academic assistant. Generate a detailed, well-structured study guide on: "%s". Use markdown: # for title, ## for headings, - for lists, and **text** for emphasis.`, topic)
		text, err := s.generator.GenerateText(ctx, prompt)
		if err != nil {
			return nil, fmt.Errorf("generating notes: %w", err)
		}
		content.Text = text

	case TypeFlashcards:
		prompt := fmt.Sprintf(`You are a flashcard creator. For "%s", generate exactly 8 flashcards. Respond ONLY with a valid JSON array of objects. Each object must have "front" and "back" keys.`, topic)
		if err := s.generator.GenerateJSON(ctx, prompt, &content.Flashcards); err != nil {
			return nil, fmt.Errorf("generating flashcards: %w", err)
		}

	case TypeSummary:
		prompt := fmt.Sprintf(`You are a summarization expert. Provide a concise summary of key concepts for "%s". Use clean paragraphs.`, topic)
		text, err := s.generator.GenerateText(ctx, prompt)
		if err != nil {
			return nil, fmt.Errorf("generating summary: %w", err)
		}
		content.Text = text

	default:
		return nil, ErrInvalidMaterialType
	}

	// Best-effort: a failed log must not fail the generation
	if err := s.activities.LogActivity(ctx, activity.LogActivityInput{
		UserID:       userID,
		ActivityType: activity.TypeMaterialGenerated,
		Details:      map[string]interface{}{"topic": topic, "type": materialType},
	}); err != nil {
		s.logger.Warn("Failed to log material generation activity",
			zap.String("user_id", userID.String()),
			zap.Error(err))
	}

	return &content, nil
}
