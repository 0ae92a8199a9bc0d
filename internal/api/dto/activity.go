package dto

// LogActivityRequest represents the request body for logging a
// learning activity
type LogActivityRequest struct {
	ActivityType string                 `json:"activity_type" binding:"required,activity_type"`
	Details      map[string]interface{} `json:"details,omitempty"`
}
