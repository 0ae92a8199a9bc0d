package chat

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Interaction records one chatbot turn (user message + AI response)
type Interaction struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index:idx_chat_user_time,priority:1"`
	UserMessage string    `json:"user_message" gorm:"type:text;not null"`
	AIResponse  string    `json:"ai_response" gorm:"type:text;not null"`
	Timestamp   time.Time `json:"timestamp" gorm:"not null;index:idx_chat_user_time,priority:2"`
}

// TableName specifies the table name for the Interaction model
func (Interaction) TableName() string {
	return "chatbot_history"
}

func (i *Interaction) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.Timestamp.IsZero() {
		i.Timestamp = time.Now().UTC()
	}
	return nil
}
