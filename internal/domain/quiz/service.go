package quiz

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidScore = errors.New("score cannot exceed total questions")
)

// Generator produces structured JSON content from a prompt. Satisfied by
// the Gemini client in internal/ai.
type Generator interface {
	GenerateJSON(ctx context.Context, prompt string, out interface{}) error
}

type SaveResultInput struct {
	UserID         uuid.UUID `json:"user_id"`
	Topic          string    `json:"topic"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
}

// Service interface
type Service interface {
	GenerateQuiz(ctx context.Context, subject string) ([]Question, error)
	SaveResult(ctx context.Context, input SaveResultInput) (*Result, error)
	GetHistory(ctx context.Context, userID uuid.UUID) ([]Result, error)
}

type service struct {
	repo      Repository
	generator Generator
	logger    *zap.Logger
}

func NewService(repo Repository, generator Generator, logger *zap.Logger) Service {
	return &service{repo: repo, generator: generator, logger: logger}
}

const quizPromptTemplate = `You are a quiz generator. Create exactly 10 multiple-choice questions about "%s" for a high school student. Respond ONLY with a valid JSON array of objects. Each object must have these exact keys: "question", "options" (an array of 4 strings), and "correct_answer".`

func (s *service) GenerateQuiz(ctx context.Context, subject string) ([]Question, error) {
	if subject == "" {
		return nil, ErrInvalidInput
	}

	var questions []Question
	prompt := fmt.Sprintf(quizPromptTemplate, subject)
	if err := s.generator.GenerateJSON(ctx, prompt, &questions); err != nil {
		return nil, fmt.Errorf("generating quiz for %q: %w", subject, err)
	}

	// Shuffle the options so the correct answer is not always first
	for i := range questions {
		shuffleOptions(questions[i].Options)
	}

	s.logger.Info("Quiz generated",
		zap.String("subject", subject),
		zap.Int("questions", len(questions)))

	return questions, nil
}

func shuffleOptions(options []string) {
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
}

func (s *service) SaveResult(ctx context.Context, input SaveResultInput) (*Result, error) {
	if input.Topic == "" || input.TotalQuestions <= 0 || input.Score < 0 {
		return nil, ErrInvalidInput
	}
	if input.Score > input.TotalQuestions {
		return nil, ErrInvalidScore
	}

	result := &Result{
		ID:             uuid.New(),
		UserID:         input.UserID,
		Topic:          input.Topic,
		Score:          input.Score,
		TotalQuestions: input.TotalQuestions,
		Timestamp:      time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("saving quiz result: %w", err)
	}
	return result, nil
}

func (s *service) GetHistory(ctx context.Context, userID uuid.UUID) ([]Result, error) {
	return s.repo.FindByUserID(ctx, userID)
}
