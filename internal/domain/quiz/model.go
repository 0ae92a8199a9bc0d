package quiz

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Result records one completed quiz attempt
type Result struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index:idx_quiz_user_time,priority:1"`
	Topic          string    `json:"topic" gorm:"size:255;not null"`
	Score          int       `json:"score" gorm:"not null"`
	TotalQuestions int       `json:"total_questions" gorm:"not null"`
	Timestamp      time.Time `json:"timestamp" gorm:"not null;index:idx_quiz_user_time,priority:2"`
}

// TableName specifies the table name for the Result model
func (Result) TableName() string {
	return "quiz_history"
}

func (r *Result) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Timestamp.IsZero() {
		r.Timestamp = time.Now().UTC()
	}
	return nil
}

// Question is a single generated multiple-choice question
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}
