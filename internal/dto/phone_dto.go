package dto

import "ai-attendant-widget/pkg/store"

type SelectPhoneAIRequest struct {
	AIID string `json:"ai_id"`
}

type SetPhoneRequest struct {
	Phone string `json:"phone" validate:"max=32"`
}

type PhoneStateResponse struct {
	SelectedAI        string                      `json:"selected_ai"`
	Phone             string                      `json:"phone"`
	CooldownRemaining int                         `json:"cooldown_remaining"`
	CooldownDisplay   string                      `json:"cooldown_display"`
	Executing         bool                        `json:"executing"`
	CanExecute        bool                        `json:"can_execute"`
	LastExecution     *store.PhoneExecutionRecord `json:"last_execution,omitempty"`
}

type ExecutePhoneResponse struct {
	Accepted bool                        `json:"accepted"`
	Record   *store.PhoneExecutionRecord `json:"record,omitempty"`
	State    PhoneStateResponse          `json:"state"`
}
