package service

import (
	"context"

	"ai-attendant-widget/internal/dto"
	"ai-attendant-widget/internal/mapper"
	"ai-attendant-widget/internal/pkg/logger"
	"ai-attendant-widget/pkg/events"
	"ai-attendant-widget/pkg/phone"
)

type IPhoneService interface {
	State(ctx context.Context) dto.PhoneStateResponse
	// SelectAI accepts an empty id to clear the selection.
	SelectAI(ctx context.Context, aiID string) (dto.PhoneStateResponse, error)
	SetPhone(ctx context.Context, input string) (dto.PhoneStateResponse, bool)
	Execute(ctx context.Context) *dto.ExecutePhoneResponse
	Close()
}

type phoneService struct {
	guard   *phone.Guard
	catalog ICatalogService
	mapper  *mapper.WidgetMapper
	logger  logger.ILogger
}

func NewPhoneService(guard *phone.Guard, catalog ICatalogService, widgetMapper *mapper.WidgetMapper, log logger.ILogger) IPhoneService {
	return &phoneService{
		guard:   guard,
		catalog: catalog,
		mapper:  widgetMapper,
		logger:  log,
	}
}

// NewPhoneEventsObserver publishes every guard change, cooldown ticks included.
func NewPhoneEventsObserver(publisher IPublisherService, widgetMapper *mapper.WidgetMapper) func(phone.Snapshot) {
	return func(s phone.Snapshot) {
		publisher.Emit(context.Background(), events.PhoneStateChanged, map[string]interface{}{
			"state": widgetMapper.PhoneSnapshotToDTO(s),
		})
	}
}

func (s *phoneService) State(ctx context.Context) dto.PhoneStateResponse {
	return s.mapper.PhoneSnapshotToDTO(s.guard.Snapshot())
}

func (s *phoneService) SelectAI(ctx context.Context, aiID string) (dto.PhoneStateResponse, error) {
	if aiID != "" {
		if _, ok := s.catalog.Find(aiID); !ok {
			return s.State(ctx), ErrUnknownAI
		}
	}
	s.guard.SelectAI(aiID)
	return s.State(ctx), nil
}

func (s *phoneService) SetPhone(ctx context.Context, input string) (dto.PhoneStateResponse, bool) {
	accepted := s.guard.SetPhone(input)
	return s.State(ctx), accepted
}

func (s *phoneService) Execute(ctx context.Context) *dto.ExecutePhoneResponse {
	record, ok := s.guard.Execute(ctx)
	resp := &dto.ExecutePhoneResponse{Accepted: ok, State: s.State(ctx)}
	if ok {
		resp.Record = &record
	}
	return resp
}

func (s *phoneService) Close() {
	s.guard.Close()
}
