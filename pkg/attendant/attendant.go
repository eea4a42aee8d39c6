package attendant

import (
	"context"

	"ai-attendant-widget/pkg/store"
)

// CatalogSource lists the attendants a visitor can pick from.
type CatalogSource interface {
	FetchCatalog(ctx context.Context) ([]store.AIModel, error)
}

// Responder returns the attendant's reply to a single visitor message.
type Responder interface {
	SendMessage(ctx context.Context, aiID, message string) (string, error)
}

// Creator provisions a niche attendant on demand.
type Creator interface {
	CreateCustomAI(ctx context.Context, niche string) (store.AIModel, error)
}

// PhoneExecutor asks the backend to run an attendant against a phone number.
type PhoneExecutor interface {
	ExecutePhone(ctx context.Context, aiID, phoneNumber string) (PhoneResult, error)
}

// Client bundles every collaborator the widget talks to.
type Client interface {
	CatalogSource
	Responder
	Creator
	PhoneExecutor
}

type PhoneResult struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	ExecutionID string `json:"executionId"`
}

// LeadSource supplies the CRM lead id attached to outgoing messages.
// ok=false means no lead is known and the request carries lead_id: null.
type LeadSource interface {
	LeadID() (id int64, ok bool)
}
