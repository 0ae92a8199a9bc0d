package dto

// SaveQuizResultRequest represents the request body for recording a
// completed quiz
type SaveQuizResultRequest struct {
	Topic          string `json:"topic" binding:"required"`
	Score          int    `json:"score" binding:"gte=0"`
	TotalQuestions int    `json:"total_questions" binding:"required,gt=0"`
}
