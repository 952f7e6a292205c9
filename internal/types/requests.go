package types

import (
	"github.com/go-playground/validator/v10"
)

// ChatRequest represents the body of POST /chat.
type ChatRequest struct {
	Message string `json:"message" validate:"required,min=1"`
}

// Validate validates the ChatRequest using the validator.
func (r *ChatRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ChatResponse represents the routed reply for POST /chat.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// AnalysisResponse summarizes one résumé analysis for POST /resume.
type AnalysisResponse struct {
	AnalysisID     string          `json:"analysis_id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	LinkedIn       string          `json:"linkedin"`
	GitHub         string          `json:"github"`
	Profile        *SkillProfile   `json:"profile"`
	Recommendation *Recommendation `json:"recommendation"`
}
