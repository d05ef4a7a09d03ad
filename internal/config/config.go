package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	BackendMemory   = "memory"
	BackendDynamoDB = "dynamodb"
	BackendRedis    = "redis"
)

// Config is the service configuration, read once from the environment.
//
// .env files are loaded by godotenv/autoload in cmd/api before Load runs.
type Config struct {
	Port          string
	LogLevel      string
	PublicBaseURL string

	LLM      LLMConfig
	Payments PaymentsConfig
	Storage  StorageConfig
	Redis    RedisConfig
}

type LLMConfig struct {
	// Provider is the vision model used by the assessment pipeline.
	Provider     string
	Model        string
	AnthropicKey string
	OpenAIKey    string
	GeminiKey    string
	XAIKey       string
}

type PaymentsConfig struct {
	Provider               string
	StripeSecretKey        string
	StripeWebhookSecret    string
	MercadoPagoAccessToken string
	ForceDemo              bool
	Currency               string
	FullReportPriceCents   int64
	EbayUpgradePriceCents  int64
}

type StorageConfig struct {
	Backend              string
	PaymentStatusBackend string
	AssessmentsTable     string
	PaymentStatusTable   string
	CalendarTable        string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func Load() Config {
	backend := strings.ToLower(getenvDefault("STORAGE_BACKEND", BackendMemory))
	return Config{
		Port:          getenvDefault("PORT", "8080"),
		LogLevel:      getenvDefault("LOG_LEVEL", "info"),
		PublicBaseURL: strings.TrimRight(getenvDefault("PUBLIC_BASE_URL", "http://localhost:3000"), "/"),
		LLM: LLMConfig{
			Provider:     strings.ToLower(getenvDefault("LLM_PROVIDER", "anthropic")),
			Model:        os.Getenv("LLM_MODEL"),
			AnthropicKey: os.Getenv("ANTHROPIC_API_KEY"),
			OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
			GeminiKey:    os.Getenv("GEMINI_API_KEY"),
			XAIKey:       os.Getenv("XAI_API_KEY"),
		},
		Payments: PaymentsConfig{
			Provider:               strings.ToLower(getenvDefault("PAYMENT_PROVIDER", "stripe")),
			StripeSecretKey:        os.Getenv("STRIPE_SECRET_KEY"),
			StripeWebhookSecret:    os.Getenv("STRIPE_WEBHOOK_SECRET"),
			MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
			ForceDemo:              isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")),
			Currency:               strings.ToLower(getenvDefault("PAYMENT_CURRENCY", "usd")),
			FullReportPriceCents:   getenvInt64("PRICE_FULL_REPORT_CENTS", 999),
			EbayUpgradePriceCents:  getenvInt64("PRICE_EBAY_UPGRADE_CENTS", 499),
		},
		Storage: StorageConfig{
			Backend:              backend,
			PaymentStatusBackend: strings.ToLower(getenvDefault("PAYMENT_STATUS_BACKEND", backend)),
			AssessmentsTable:     getenvDefault("ASSESSMENTS_TABLE", "assessments"),
			PaymentStatusTable:   getenvDefault("PAYMENT_STATUS_TABLE", "payment_status"),
			CalendarTable:        getenvDefault("CALENDAR_TABLE", "calendar_posts"),
		},
		Redis: RedisConfig{
			Host:     getenvDefault("REDIS_HOST", "localhost"),
			Port:     getenvDefault("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       int(getenvInt64("REDIS_DB", 0)),
		},
	}
}

// CheckoutCredential returns the secret of the selected payment provider.
// An empty value puts the payment gate in demo mode.
func (p PaymentsConfig) CheckoutCredential() string {
	if p.ForceDemo {
		return ""
	}
	switch p.Provider {
	case "mercadopago":
		return p.MercadoPagoAccessToken
	default:
		return p.StripeSecretKey
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt64(key string, def int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
