package dto

// GenerateMaterialRequest represents the request body for study
// material generation
type GenerateMaterialRequest struct {
	Topic        string `json:"topic" binding:"required"`
	MaterialType string `json:"material_type" binding:"required,oneof=notes flashcards summary"`
}
