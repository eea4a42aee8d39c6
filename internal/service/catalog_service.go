package service

import (
	"context"
	"strings"
	"sync"

	"ai-attendant-widget/internal/pkg/logger"
	"ai-attendant-widget/pkg/attendant"
	"ai-attendant-widget/pkg/events"
	"ai-attendant-widget/pkg/store"
)

type CatalogStatus string

const (
	CatalogIdle    CatalogStatus = "idle"
	CatalogLoading CatalogStatus = "loading"
	CatalogReady   CatalogStatus = "ready"
	CatalogFailed  CatalogStatus = "failed"
)

type ICatalogService interface {
	// Load fetches the catalog. On failure the fetched part stays empty and
	// nothing retries it.
	Load(ctx context.Context) error
	Models() []store.AIModel
	Find(aiID string) (store.AIModel, bool)
	Status() CatalogStatus
	// CreateCustomAI returns created=false when niche is blank.
	CreateCustomAI(ctx context.Context, niche string) (model store.AIModel, created bool, err error)
}

type catalogService struct {
	mu        sync.RWMutex
	fetched   []store.AIModel
	customs   []store.AIModel
	status    CatalogStatus
	source    attendant.CatalogSource
	creator   attendant.Creator
	ids       *store.IDGenerator
	publisher IPublisherService
	logger    logger.ILogger
}

func NewCatalogService(source attendant.CatalogSource, creator attendant.Creator, ids *store.IDGenerator, publisher IPublisherService, log logger.ILogger) ICatalogService {
	return &catalogService{
		status:    CatalogIdle,
		source:    source,
		creator:   creator,
		ids:       ids,
		publisher: publisher,
		logger:    log,
	}
}

func (s *catalogService) Load(ctx context.Context) error {
	s.mu.Lock()
	s.status = CatalogLoading
	s.mu.Unlock()

	models, err := s.source.FetchCatalog(ctx)

	s.mu.Lock()
	if err != nil {
		s.status = CatalogFailed
		s.mu.Unlock()
		s.logger.Error("CatalogService", "Failed to load attendant catalog", map[string]interface{}{"error": err.Error()})
		s.publisher.Emit(ctx, events.CatalogLoaded, map[string]interface{}{"status": string(CatalogFailed), "count": 0})
		return err
	}
	s.fetched = make([]store.AIModel, 0, len(models))
	for _, m := range models {
		s.fetched = append(s.fetched, m.Clone())
	}
	s.status = CatalogReady
	count := len(s.fetched) + len(s.customs)
	s.mu.Unlock()

	s.logger.Info("CatalogService", "Attendant catalog loaded", map[string]interface{}{"count": count})
	s.publisher.Emit(ctx, events.CatalogLoaded, map[string]interface{}{"status": string(CatalogReady), "count": count})
	return nil
}

func (s *catalogService) Models() []store.AIModel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.AIModel, 0, len(s.fetched)+len(s.customs))
	for _, m := range s.all() {
		out = append(out, m.Clone())
	}
	return out
}

func (s *catalogService) Find(aiID string) (store.AIModel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.all() {
		if m.ID == aiID {
			return m.Clone(), true
		}
	}
	return store.AIModel{}, false
}

func (s *catalogService) Status() CatalogStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *catalogService) CreateCustomAI(ctx context.Context, niche string) (store.AIModel, bool, error) {
	niche = strings.TrimSpace(niche)
	if niche == "" {
		return store.AIModel{}, false, nil
	}

	model, err := s.creator.CreateCustomAI(ctx, niche)
	if err != nil {
		if ctx.Err() != nil {
			return store.AIModel{}, false, err
		}
		s.logger.Warn("CatalogService", "Custom attendant creation failed, using local placeholder", map[string]interface{}{
			"niche": niche,
			"error": err.Error(),
		})
		model = attendant.CustomPlaceholder(s.ids, niche)
	}
	model.IsCustom = true

	s.mu.Lock()
	s.customs = append(s.customs, model.Clone())
	s.mu.Unlock()

	s.publisher.Emit(ctx, events.CatalogCustomCreated, map[string]interface{}{"model": model})
	return model, true, nil
}

// all lists fetched entries then customs in creation order. Caller holds mu.
func (s *catalogService) all() []store.AIModel {
	out := make([]store.AIModel, 0, len(s.fetched)+len(s.customs))
	out = append(out, s.fetched...)
	return append(out, s.customs...)
}
