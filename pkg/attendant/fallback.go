package attendant

import (
	"context"
	"fmt"
	"time"

	"ai-attendant-widget/internal/pkg/logger"
	"ai-attendant-widget/pkg/store"
)

const fallbackModule = "AttendantFallback"

const SimulatedPhoneMessage = "IA executada com sucesso para o número fornecido"

// Fallback answers with simulated data whenever the wrapped client fails, so
// the widget stays usable against a missing or broken backend.
type Fallback struct {
	next   Client
	delay  time.Duration
	ids    *store.IDGenerator
	logger logger.ILogger
}

var _ Client = &Fallback{}

func NewFallback(next Client, delay time.Duration, ids *store.IDGenerator, log logger.ILogger) *Fallback {
	if ids == nil {
		ids = store.NewIDGenerator()
	}
	return &Fallback{next: next, delay: delay, ids: ids, logger: log}
}

func (f *Fallback) FetchCatalog(ctx context.Context) ([]store.AIModel, error) {
	models, err := f.next.FetchCatalog(ctx)
	if err == nil && len(models) > 0 {
		return models, nil
	}
	f.degraded("FetchCatalog", err, nil)
	return DefaultCatalog(), nil
}

func (f *Fallback) SendMessage(ctx context.Context, aiID, message string) (string, error) {
	reply, err := f.next.SendMessage(ctx, aiID, message)
	if err == nil {
		return reply, nil
	}
	f.degraded("SendMessage", err, map[string]interface{}{"ai_id": aiID})
	if err := f.wait(ctx); err != nil {
		return "", err
	}
	return SimulatedReply(message), nil
}

func (f *Fallback) CreateCustomAI(ctx context.Context, niche string) (store.AIModel, error) {
	model, err := f.next.CreateCustomAI(ctx, niche)
	if err == nil {
		return model, nil
	}
	f.degraded("CreateCustomAI", err, map[string]interface{}{"niche": niche})
	if err := f.wait(ctx); err != nil {
		return store.AIModel{}, err
	}
	return CustomPlaceholder(f.ids, niche), nil
}

func (f *Fallback) ExecutePhone(ctx context.Context, aiID, phoneNumber string) (PhoneResult, error) {
	result, err := f.next.ExecutePhone(ctx, aiID, phoneNumber)
	if err == nil {
		return result, nil
	}
	f.degraded("ExecutePhone", err, map[string]interface{}{"ai_id": aiID})
	if err := f.wait(ctx); err != nil {
		return PhoneResult{}, err
	}
	return PhoneResult{
		Success:     true,
		Message:     SimulatedPhoneMessage,
		ExecutionID: f.ids.PrefixedID("exec"),
	}, nil
}

// SimulatedReply is the canned answer used when the responder is unreachable.
func SimulatedReply(message string) string {
	return fmt.Sprintf("Resposta simulada para a mensagem: \"%s\"", message)
}

// CustomPlaceholder builds the local stand-in for a niche attendant.
func CustomPlaceholder(ids *store.IDGenerator, niche string) store.AIModel {
	return store.AIModel{
		ID:          ids.PrefixedID("custom"),
		Name:        "IA " + niche,
		Description: fmt.Sprintf("Especialista em %s com conhecimento avançado do setor", niche),
		Status:      store.AIStatusOnline,
		Avatar:      "🎯",
		Specialties: []string{niche, "Consultoria", "Estratégia"},
		IsCustom:    true,
	}
}

func (f *Fallback) degraded(op string, err error, details map[string]interface{}) {
	if details == nil {
		details = map[string]interface{}{}
	}
	details["operation"] = op
	if err != nil {
		details["error"] = err.Error()
	}
	f.logger.Warn(fallbackModule, "Attendant API unavailable, serving simulated data", details)
}

func (f *Fallback) wait(ctx context.Context) error {
	if f.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(f.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
