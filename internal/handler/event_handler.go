package handler

import (
	"ai-attendant-widget/internal/dto"
	"ai-attendant-widget/internal/pkg/logger"
	"ai-attendant-widget/internal/pkg/serverutils"
	"ai-attendant-widget/internal/service"
	internalWS "ai-attendant-widget/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// EventHandler exposes the widget event stream and the debug surface.
type EventHandler struct {
	publisher service.IPublisherService
	hub       *internalWS.Hub
	logger    logger.ILogger
}

func NewEventHandler(publisher service.IPublisherService, hub *internalWS.Hub, log logger.ILogger) *EventHandler {
	return &EventHandler{
		publisher: publisher,
		hub:       hub,
		logger:    log,
	}
}

// ServeWs upgrades the request and streams every widget event to the socket.
func (h *EventHandler) ServeWs(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("EventHandler", "Starting WebSocket session", map[string]interface{}{"remote": conn.RemoteAddr().String()})
		internalWS.ServeWs(h.hub, conn)
		h.logger.Info("EventHandler", "WebSocket session ended", nil)
	})(c)
}

// GetLogs returns recent log lines, newest first.
func (h *EventHandler) GetLogs(c *fiber.Ctx) error {
	var query dto.LogQuery
	if err := c.QueryParser(&query); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := serverutils.ValidateRequest(query); err != nil {
		return err
	}

	entries, err := h.logger.GetLogs(logger.LogFilter{
		Level:  query.Level,
		Module: query.Module,
		Limit:  query.Limit,
		Offset: query.Offset,
	})
	if err != nil {
		return err
	}
	return c.JSON(serverutils.SuccessResponse("Success get logs", entries))
}

// TriggerEvent pushes an arbitrary event through the bus to every socket.
func (h *EventHandler) TriggerEvent(c *fiber.Ctx) error {
	var req dto.TriggerEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if req.Data == nil {
		req.Data = make(map[string]interface{})
	}

	h.publisher.Emit(c.UserContext(), req.Type, req.Data)
	return c.JSON(serverutils.SuccessResponse("Event published", dto.TriggerEventResponse{
		Type:    req.Type,
		Sockets: h.hub.Clients(),
	}))
}

func (h *EventHandler) RegisterRoutes(router fiber.Router) {
	debug := router.Group("/debug")
	debug.Get("/logs", h.GetLogs)
	debug.Post("/events", h.TriggerEvent)

	router.Get("/ws", h.ServeWs)
}
