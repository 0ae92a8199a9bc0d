package activity

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidInput = errors.New("invalid input")

type LogActivityInput struct {
	UserID       uuid.UUID              `json:"user_id"`
	ActivityType string                 `json:"activity_type"`
	Details      map[string]interface{} `json:"details,omitempty"`
}

// Service interface
type Service interface {
	LogActivity(ctx context.Context, input LogActivityInput) error
	GetRecentActivity(ctx context.Context, userID uuid.UUID, limit int) ([]Activity, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) LogActivity(ctx context.Context, input LogActivityInput) error {
	if input.ActivityType == "" {
		return ErrInvalidInput
	}

	details, err := json.Marshal(input.Details)
	if err != nil {
		details = []byte("{}")
	}

	a := &Activity{
		ID:           uuid.New(),
		UserID:       input.UserID,
		ActivityType: input.ActivityType,
		Details:      details,
		Timestamp:    time.Now().UTC(),
	}
	return s.repo.Create(ctx, a)
}

func (s *service) GetRecentActivity(ctx context.Context, userID uuid.UUID, limit int) ([]Activity, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.repo.FindRecent(ctx, userID, limit)
}
