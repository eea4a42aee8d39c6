package service

import (
	"context"

	"ai-attendant-widget/internal/dto"
	"ai-attendant-widget/internal/pkg/logger"
	"ai-attendant-widget/pkg/events"
)

// LeadStore is satisfied by memory.LeadRepository.
type LeadStore interface {
	Save(leadID int64)
	LeadID() (int64, bool)
	Clear()
}

// ILeadService manages the CRM lead attached to outgoing messages.
type ILeadService interface {
	Get(ctx context.Context) *dto.LeadResponse
	Set(ctx context.Context, request *dto.SetLeadRequest) *dto.LeadResponse
	Clear(ctx context.Context) *dto.LeadResponse
}

type leadService struct {
	store     LeadStore
	publisher IPublisherService
	logger    logger.ILogger
}

func NewLeadService(store LeadStore, publisher IPublisherService, log logger.ILogger) ILeadService {
	return &leadService{store: store, publisher: publisher, logger: log}
}

func (s *leadService) Get(ctx context.Context) *dto.LeadResponse {
	if id, ok := s.store.LeadID(); ok {
		return &dto.LeadResponse{LeadId: &id}
	}
	return &dto.LeadResponse{}
}

func (s *leadService) Set(ctx context.Context, request *dto.SetLeadRequest) *dto.LeadResponse {
	s.store.Save(request.LeadId)
	s.logger.Info("LeadService", "Lead attached", map[string]interface{}{"lead_id": request.LeadId})
	s.publisher.Emit(ctx, events.LeadChanged, map[string]interface{}{"lead_id": request.LeadId})
	return s.Get(ctx)
}

func (s *leadService) Clear(ctx context.Context) *dto.LeadResponse {
	s.store.Clear()
	s.publisher.Emit(ctx, events.LeadChanged, map[string]interface{}{"lead_id": nil})
	return s.Get(ctx)
}
