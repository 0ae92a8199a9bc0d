package quiz

import (
	"context"
	"time"

	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/infrastructure/persistence/postgres/connection"
	"github.com/google/uuid"
)

// Repository defines the interface for quiz result persistence operations
type Repository interface {
	Create(ctx context.Context, result *Result) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]Result, error)
	FindSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]Result, error)
}

type repository struct {
	db *connection.Database
}

func NewRepository(db *connection.Database) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, result *Result) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r *repository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]Result, error) {
	var results []Result
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&results).Error
	return results, err
}

func (r *repository) FindSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]Result, error) {
	var results []Result
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND timestamp >= ?", userID, since).
		Find(&results).Error
	return results, err
}
