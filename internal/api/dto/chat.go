package dto

// ChatRequest represents a student message to the tutor chatbot
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse carries the chatbot reply
type ChatResponse struct {
	Reply string `json:"reply"`
}

// SaveChatRequest represents the request body for persisting one
// chatbot exchange
type SaveChatRequest struct {
	UserMessage string `json:"user_message" binding:"required"`
	AIResponse  string `json:"ai_response" binding:"required"`
}
