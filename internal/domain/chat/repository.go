package chat

import (
	"context"
	"time"

	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/infrastructure/persistence/postgres/connection"
	"github.com/google/uuid"
)

// Repository defines the interface for chat interaction persistence operations
type Repository interface {
	Create(ctx context.Context, interaction *Interaction) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]Interaction, error)
	FindSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]Interaction, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

type repository struct {
	db *connection.Database
}

func NewRepository(db *connection.Database) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, interaction *Interaction) error {
	return r.db.WithContext(ctx).Create(interaction).Error
}

func (r *repository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]Interaction, error) {
	var history []Interaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp ASC").
		Find(&history).Error
	return history, err
}

func (r *repository) FindSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]Interaction, error) {
	var history []Interaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND timestamp >= ?", userID, since).
		Find(&history).Error
	return history, err
}

func (r *repository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&Interaction{})
	return result.RowsAffected, result.Error
}
