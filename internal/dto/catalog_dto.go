package dto

import "ai-attendant-widget/pkg/store"

type CatalogResponse struct {
	Status string          `json:"status"` // loading | ready | failed
	Models []store.AIModel `json:"models"`
}

type CreateCustomAIRequest struct {
	Niche string `json:"niche" validate:"required,max=120"`
}

type CreateCustomAIResponse struct {
	Accepted bool           `json:"accepted"`
	Model    *store.AIModel `json:"model,omitempty"`
}
