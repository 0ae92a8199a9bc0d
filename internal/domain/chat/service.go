package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidInput = errors.New("user message and AI response are required")

// Responder generates a chatbot reply for a student message. Satisfied by
// the Gemini client in internal/ai.
type Responder interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type SaveInteractionInput struct {
	UserID      uuid.UUID `json:"user_id"`
	UserMessage string    `json:"user_message"`
	AIResponse  string    `json:"ai_response"`
}

// Service interface
type Service interface {
	Reply(ctx context.Context, userID uuid.UUID, message string) (string, error)
	SaveInteraction(ctx context.Context, input SaveInteractionInput) (*Interaction, error)
	GetHistory(ctx context.Context, userID uuid.UUID) ([]Interaction, error)
	ClearHistory(ctx context.Context, userID uuid.UUID) error
}

type service struct {
	repo      Repository
	responder Responder
	logger    *zap.Logger
}

func NewService(repo Repository, responder Responder, logger *zap.Logger) Service {
	return &service{repo: repo, responder: responder, logger: logger}
}

const tutorSystemPrompt = "You are a friendly and encouraging AI tutor for students. Keep your answers concise, helpful, and easy to understand. Your name is Sparky."

func (s *service) Reply(ctx context.Context, userID uuid.UUID, message string) (string, error) {
	if message == "" {
		return "", ErrInvalidInput
	}

	prompt := fmt.Sprintf("%s\n\nStudent question: %s", tutorSystemPrompt, message)
	reply, err := s.responder.GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("chatbot reply: %w", err)
	}

	return reply, nil
}

func (s *service) SaveInteraction(ctx context.Context, input SaveInteractionInput) (*Interaction, error) {
	if input.UserMessage == "" || input.AIResponse == "" {
		return nil, ErrInvalidInput
	}

	interaction := &Interaction{
		ID:          uuid.New(),
		UserID:      input.UserID,
		UserMessage: input.UserMessage,
		AIResponse:  input.AIResponse,
		Timestamp:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, interaction); err != nil {
		return nil, fmt.Errorf("saving chat interaction: %w", err)
	}
	return interaction, nil
}

func (s *service) GetHistory(ctx context.Context, userID uuid.UUID) ([]Interaction, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *service) ClearHistory(ctx context.Context, userID uuid.UUID) error {
	deleted, err := s.repo.DeleteByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("clearing chat history: %w", err)
	}
	s.logger.Info("Chat history cleared",
		zap.String("user_id", userID.String()),
		zap.Int64("rows", deleted))
	return nil
}
