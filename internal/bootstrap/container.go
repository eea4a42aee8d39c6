package bootstrap

import (
	"log"
	"time"

	"ai-attendant-widget/internal/config"
	"ai-attendant-widget/internal/controller"
	"ai-attendant-widget/internal/handler"
	"ai-attendant-widget/internal/mapper"
	"ai-attendant-widget/internal/pkg/logger"
	"ai-attendant-widget/internal/repository/memory"
	"ai-attendant-widget/internal/service"
	"ai-attendant-widget/internal/websocket"
	"ai-attendant-widget/pkg/attendant"
	"ai-attendant-widget/pkg/chat/interaction"
	"ai-attendant-widget/pkg/chat/session"
	pktNats "ai-attendant-widget/pkg/nats"
	"ai-attendant-widget/pkg/phone"
	"ai-attendant-widget/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	CatalogController controller.ICatalogController
	ChatController    controller.IChatController
	PhoneController   controller.IPhoneController
	LeadController    controller.ILeadController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	CatalogService  service.ICatalogService
	PhoneService    service.IPhoneService
	Interaction     *interaction.Controller

	// WebSockets & Events
	EventHandler *handler.EventHandler
	WebSocketHub *websocket.Hub
	NatsMirror   *pktNats.Publisher // nil when NATS_URL is unset

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	ids := store.NewIDGenerator()
	widgetMapper := mapper.NewWidgetMapper(time.Local)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 256, BlockPublishUntilSubscriberAck: true},
		watermillLogger,
	)
	publisherService := service.NewPublisherService(cfg.Events.Topic, pubSub, sysLogger)

	// 3. Attendant backend
	leadRepo := memory.NewLeadRepository(time.Duration(cfg.Lead.TTLMinutes) * time.Minute)
	client := attendant.NewClient(attendant.Options{
		BaseURL:      cfg.Attendant.BaseURL,
		Timeout:      time.Duration(cfg.Attendant.TimeoutSeconds) * time.Second,
		MockFallback: cfg.Attendant.MockFallback,
		MockDelay:    time.Duration(cfg.Attendant.MockDelayMs) * time.Millisecond,
	}, leadRepo, ids, sysLogger)

	// 4. Domain
	catalogService := service.NewCatalogService(client, client, ids, publisherService, sysLogger)

	sessions := session.NewManager(sysLogger, session.WithIDGenerator(ids))
	interactionCtrl := interaction.NewController(
		sessions,
		memory.NewInteractionRepository(),
		client,
		sysLogger,
		interaction.WithObserver(service.NewInteractionObserver(sessions, publisherService)),
		interaction.WithIDGenerator(ids),
	)

	guard := phone.NewGuard(
		client,
		sysLogger,
		phone.WithCooldown(time.Duration(cfg.Phone.CooldownSeconds)*time.Second),
		phone.WithObserver(service.NewPhoneEventsObserver(publisherService, widgetMapper)),
	)

	chatService := service.NewChatService(sessions, interactionCtrl, catalogService, publisherService, widgetMapper, sysLogger)
	phoneService := service.NewPhoneService(guard, catalogService, widgetMapper, sysLogger)
	leadService := service.NewLeadService(leadRepo, publisherService, sysLogger)

	// 5. WebSocket Hub
	wsLogger := logger.NewIsolatedLogger(cfg.App.WsLogFilePath)
	wsHub := websocket.NewHub(wsLogger)

	// Optional CRM mirror
	var sinks []service.EventSink
	var natsPub *pktNats.Publisher
	if cfg.Events.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.Events.NatsURL, cfg.Events.NatsSubjectPrefix)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			sinks = append(sinks, natsPub)
		}
	}
	consumerService := service.NewConsumerService(pubSub, cfg.Events.Topic, wsHub, sysLogger, sinks...)

	return &Container{
		CatalogController: controller.NewCatalogController(catalogService),
		ChatController:    controller.NewChatController(chatService),
		PhoneController:   controller.NewPhoneController(phoneService),
		LeadController:    controller.NewLeadController(leadService),

		ConsumerService: consumerService,
		CatalogService:  catalogService,
		PhoneService:    phoneService,
		Interaction:     interactionCtrl,

		EventHandler: handler.NewEventHandler(publisherService, wsHub, sysLogger),
		WebSocketHub: wsHub,
		NatsMirror:   natsPub,

		Logger: sysLogger,
	}
}
