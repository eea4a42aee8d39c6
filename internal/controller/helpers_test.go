package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"ai-attendant-widget/internal/mapper"
	"ai-attendant-widget/internal/pkg/logger"
	"ai-attendant-widget/internal/pkg/serverutils"
	"ai-attendant-widget/internal/repository/memory"
	"ai-attendant-widget/internal/service"
	"ai-attendant-widget/pkg/attendant"
	"ai-attendant-widget/pkg/chat/interaction"
	"ai-attendant-widget/pkg/chat/session"
	"ai-attendant-widget/pkg/events"
	"ai-attendant-widget/pkg/phone"
	"ai-attendant-widget/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, events.Event) error          { return nil }
func (nopPublisher) Emit(context.Context, string, map[string]interface{}) {}

type fakeAttendant struct {
	reply string
}

func (f *fakeAttendant) FetchCatalog(context.Context) ([]store.AIModel, error) {
	return attendant.DefaultCatalog(), nil
}

func (f *fakeAttendant) SendMessage(context.Context, string, string) (string, error) {
	return f.reply, nil
}

func (f *fakeAttendant) CreateCustomAI(_ context.Context, niche string) (store.AIModel, error) {
	return store.AIModel{ID: "custom-1", Name: "Atendente " + niche, Status: store.AIStatusOnline}, nil
}

func (f *fakeAttendant) ExecutePhone(context.Context, string, string) (attendant.PhoneResult, error) {
	return attendant.PhoneResult{Success: true, Message: "ok", ExecutionID: "exec-1"}, nil
}

type testApp struct {
	app  *fiber.App
	ctrl *interaction.Controller
}

func newTestApp(t *testing.T) testApp {
	t.Helper()
	log := logger.NewNopLogger()
	pub := nopPublisher{}
	ids := store.NewIDGenerator()
	stub := &fakeAttendant{reply: "Claro!"}
	widgetMapper := mapper.NewWidgetMapper(nil)

	catalog := service.NewCatalogService(stub, stub, ids, pub, log)
	require.NoError(t, catalog.Load(context.Background()))

	sessions := session.NewManager(log, session.WithIDGenerator(ids))
	ctrl := interaction.NewController(sessions, memory.NewInteractionRepository(), stub, log, interaction.WithIDGenerator(ids))
	guard := phone.NewGuard(stub, log, phone.WithTick(time.Hour))
	phoneService := service.NewPhoneService(guard, catalog, widgetMapper, log)
	t.Cleanup(phoneService.Close)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewCatalogController(catalog).RegisterRoutes(api)
	NewChatController(service.NewChatService(sessions, ctrl, catalog, pub, widgetMapper, log)).RegisterRoutes(api)
	NewPhoneController(phoneService).RegisterRoutes(api)
	NewLeadController(service.NewLeadService(memory.NewLeadRepository(time.Hour), pub, log)).RegisterRoutes(api)

	return testApp{app: app, ctrl: ctrl}
}

// call sends body as JSON and decodes the BaseResponse envelope.
func (a testApp) call(t *testing.T, method, path string, body interface{}) (int, serverutils.BaseResponse[json.RawMessage]) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out serverutils.BaseResponse[json.RawMessage]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}
