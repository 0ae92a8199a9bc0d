package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered student
type User struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Username          string    `json:"username" gorm:"size:255;not null"`
	Email             string    `json:"email" gorm:"uniqueIndex:idx_user_email;not null"`
	PasswordHash      string    `json:"-" gorm:"not null"`
	Age               *int      `json:"age"`
	SchoolCollegeName string    `json:"school_college_name" gorm:"size:255"`
	EducationLevel    string    `json:"education_level" gorm:"size:100"`
	FieldOfStudy      string    `json:"field_of_study" gorm:"size:255"`
	Hobbies           string    `json:"hobbies" gorm:"type:text"`
	City              string    `json:"city" gorm:"size:255"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// BeforeCreate is called before inserting a new user record
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
