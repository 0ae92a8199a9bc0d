package activity

import (
	"context"
	"time"

	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/infrastructure/persistence/postgres/connection"
	"github.com/google/uuid"
)

// Repository defines the interface for activity persistence operations.
// Activities are append-only; there is no update or delete.
type Repository interface {
	Create(ctx context.Context, activity *Activity) error
	FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]Activity, error)
	FindSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]Activity, error)
}

type repository struct {
	db *connection.Database
}

func NewRepository(db *connection.Database) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, activity *Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *repository) FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]Activity, error) {
	var activities []Activity
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}

func (r *repository) FindSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]Activity, error) {
	var activities []Activity
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND timestamp >= ?", userID, since).
		Find(&activities).Error
	return activities, err
}
