package activity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Activity types recorded by the feature handlers.
const (
	TypeMaterialGenerated = "material_generated"
	TypeCourseSearch      = "course_search"
	TypeQuizCompleted     = "quiz_completed"
)

// MaterialTypePrefix matches every material-related activity type
// when computing dashboard statistics.
const MaterialTypePrefix = "material"

// Activity is an append-only record of a tracked user action
type Activity struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primary_key"`
	UserID       uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index:idx_activity_user_time,priority:1"`
	ActivityType string         `json:"activity_type" gorm:"size:100;not null"`
	Details      datatypes.JSON `json:"details" gorm:"type:jsonb"`
	Timestamp    time.Time      `json:"timestamp" gorm:"not null;index:idx_activity_user_time,priority:2"`
}

// TableName specifies the table name for the Activity model
func (Activity) TableName() string {
	return "user_activity"
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now().UTC()
	}
	return nil
}
