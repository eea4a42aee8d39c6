package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Attendant AttendantConfig
	Phone     PhoneConfig
	Events    EventsConfig
	Lead      LeadConfig
	Tracing   TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	WsLogFilePath      string
	CorsAllowedOrigins string
}

type AttendantConfig struct {
	BaseURL        string
	TimeoutSeconds int  // 0 disables the HTTP client timeout
	MockFallback   bool // answer with simulated data when the API is unreachable
	MockDelayMs    int
}

type PhoneConfig struct {
	CooldownSeconds int
}

type EventsConfig struct {
	Topic             string
	NatsURL           string // empty disables the NATS mirror
	NatsSubjectPrefix string
}

type LeadConfig struct {
	TTLMinutes int // 0 keeps the lead until cleared
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/widget.log"),
			WsLogFilePath:      getEnv("WS_LOG_FILE_PATH", "logs/websocket.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Attendant: AttendantConfig{
			BaseURL:        getEnv("ATTENDANT_API_BASE_URL", "https://teste.aiatende.dev.br/api/openai-web"),
			TimeoutSeconds: getEnvAsInt("ATTENDANT_API_TIMEOUT_SECONDS", 120),
			MockFallback:   getEnvAsBool("ATTENDANT_MOCK_FALLBACK", true),
			MockDelayMs:    getEnvAsInt("ATTENDANT_MOCK_DELAY_MS", 0),
		},
		Phone: PhoneConfig{
			CooldownSeconds: getEnvAsInt("PHONE_COOLDOWN_SECONDS", 300),
		},
		Events: EventsConfig{
			Topic:             getEnv("WIDGET_EVENTS_TOPIC", "widget.events"),
			NatsURL:           getEnv("NATS_URL", ""),
			NatsSubjectPrefix: getEnv("NATS_SUBJECT_PREFIX", "widget"),
		},
		Lead: LeadConfig{
			TTLMinutes: getEnvAsInt("LEAD_TTL_MINUTES", 0),
		},
		Tracing: TracingConfig{
			Enabled:     getEnvAsBool("OTEL_ENABLED", false),
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "ai-attendant-widget"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := strings.TrimSpace(getEnv(key, ""))
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
