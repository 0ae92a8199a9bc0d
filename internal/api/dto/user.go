package dto

import (
	"time"

	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/internal/domain/user"
	"github.com/google/uuid"
)

// UserResponse represents the user data returned in API responses
type UserResponse struct {
	ID                uuid.UUID `json:"id"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	Age               *int      `json:"age,omitempty"`
	SchoolCollegeName string    `json:"school_college_name,omitempty"`
	EducationLevel    string    `json:"education_level,omitempty"`
	FieldOfStudy      string    `json:"field_of_study,omitempty"`
	Hobbies           string    `json:"hobbies,omitempty"`
	City              string    `json:"city,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// UpdateProfileRequest represents the request body for updating a
// student profile; absent fields are left unchanged
type UpdateProfileRequest struct {
	Username          *string `json:"username,omitempty"`
	Age               *int    `json:"age,omitempty" binding:"omitempty,gte=5,lte=120"`
	SchoolCollegeName *string `json:"school_college_name,omitempty"`
	EducationLevel    *string `json:"education_level,omitempty"`
	FieldOfStudy      *string `json:"field_of_study,omitempty"`
	Hobbies           *string `json:"hobbies,omitempty"`
	City              *string `json:"city,omitempty"`
}

// UserToResponse converts a domain user to its API representation
func UserToResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:                u.ID,
		Username:          u.Username,
		Email:             u.Email,
		Age:               u.Age,
		SchoolCollegeName: u.SchoolCollegeName,
		EducationLevel:    u.EducationLevel,
		FieldOfStudy:      u.FieldOfStudy,
		Hobbies:           u.Hobbies,
		City:              u.City,
		CreatedAt:         u.CreatedAt,
	}
}
