package dashboard

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SnapshotDateLayout is the calendar-day cache key format
const SnapshotDateLayout = "2006-01-02"

// Snapshot is the memoized dashboard aggregate for one (user, day).
// Immutable once written; the unique index makes concurrent first-of-day
// requests race safely.
type Snapshot struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primary_key"`
	UserID          uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_snapshot_user_date,priority:1"`
	SnapshotDate    string         `json:"snapshot_date" gorm:"size:10;not null;uniqueIndex:idx_snapshot_user_date,priority:2"`
	KeyStats        datatypes.JSON `json:"key_stats" gorm:"type:jsonb;not null"`
	WeeklyChartData datatypes.JSON `json:"weekly_chart_data" gorm:"type:jsonb;not null"`
	CreatedAt       time.Time      `json:"created_at"`
}

// TableName specifies the table name for the Snapshot model
func (Snapshot) TableName() string {
	return "dashboard_snapshots"
}

func (s *Snapshot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// KeyStats are the headline counters for the trailing 7-day window
type KeyStats struct {
	TotalQuizzes     int `json:"totalQuizzes"`
	TotalMaterials   int `json:"totalMaterials"`
	TotalChats       int `json:"totalChats"`
	AverageQuizScore int `json:"averageQuizScore"`
}

// ChartPoint is one day of the weekly activity chart. Date carries the
// rendered weekday label ("Mon"); bucketing is done on the full calendar
// date internally so repeated weekday names can never collide.
type ChartPoint struct {
	Date     string `json:"date"`
	Chatbot  int    `json:"chatbot"`
	Material int    `json:"material"`
	Quiz     int    `json:"quiz"`
}
