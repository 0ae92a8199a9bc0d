package dashboard

import (
	"context"
	"errors"

	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/infrastructure/persistence/postgres/connection"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrSnapshotNotFound = errors.New("dashboard snapshot not found")

// SnapshotRepository persists daily dashboard snapshots. InsertIfAbsent must
// be safe under concurrent duplicate inserts for the same (user, date) key.
type SnapshotRepository interface {
	Get(ctx context.Context, userID uuid.UUID, date string) (*Snapshot, error)
	// InsertIfAbsent writes the snapshot unless one already exists for the
	// (user, date) key. Returns false without error when a concurrent insert
	// won the race.
	InsertIfAbsent(ctx context.Context, snapshot *Snapshot) (bool, error)
}

type snapshotRepository struct {
	db *connection.Database
}

func NewSnapshotRepository(db *connection.Database) SnapshotRepository {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) Get(ctx context.Context, userID uuid.UUID, date string) (*Snapshot, error) {
	var snapshot Snapshot
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND snapshot_date = ?", userID, date).
		First(&snapshot)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSnapshotNotFound
		}
		return nil, result.Error
	}
	return &snapshot, nil
}

func (r *snapshotRepository) InsertIfAbsent(ctx context.Context, snapshot *Snapshot) (bool, error) {
	// ON CONFLICT DO NOTHING against the unique (user_id, snapshot_date)
	// index; the losing side of a duplicate-insert race sees zero rows.
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "snapshot_date"}},
			DoNothing: true,
		}).
		Create(snapshot)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
