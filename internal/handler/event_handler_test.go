package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"ai-attendant-widget/internal/pkg/logger"
	"ai-attendant-widget/internal/pkg/serverutils"
	internalWS "ai-attendant-widget/internal/websocket"
	"ai-attendant-widget/pkg/events"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturePublisher struct {
	mu    sync.Mutex
	types []string
}

func (p *capturePublisher) Publish(_ context.Context, evt events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.types = append(p.types, evt.EventType())
	return nil
}

func (p *capturePublisher) Emit(ctx context.Context, eventType string, data map[string]interface{}) {
	_ = p.Publish(ctx, events.BaseEvent{Type: eventType, Data: data})
}

func newApp(log logger.ILogger, pub *capturePublisher) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewEventHandler(pub, internalWS.NewHub(logger.NewNopLogger()), log).RegisterRoutes(app.Group("/api"))
	return app
}

func TestGetLogs(t *testing.T) {
	log := logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "widget.log"))
	log.Info("ChatService", "Conversation started", nil)
	log.Error("Interaction", "Dispatch failed", map[string]interface{}{"error": "boom"})
	_ = log.Sync()

	app := newApp(log, &capturePublisher{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/debug/logs?module=Interaction", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body serverutils.BaseResponse[[]logger.LogEntry]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Dispatch failed", body.Data[0].Message)
	assert.Equal(t, "ERROR", body.Data[0].Level)
}

func TestGetLogsRejectsBadLevel(t *testing.T) {
	app := newApp(logger.NewNopLogger(), &capturePublisher{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/debug/logs?level=LOUD", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTriggerEvent(t *testing.T) {
	pub := &capturePublisher{}
	app := newApp(logger.NewNopLogger(), pub)

	req := httptest.NewRequest(http.MethodPost, "/api/debug/events", bytes.NewBufferString(`{"type":"debug.ping","data":{"n":1}}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"debug.ping"}, pub.types)

	req = httptest.NewRequest(http.MethodPost, "/api/debug/events", bytes.NewBufferString(`{"data":{}}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServeWsRequiresUpgrade(t *testing.T) {
	app := newApp(logger.NewNopLogger(), &capturePublisher{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/ws", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}
