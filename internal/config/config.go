package config

import (
	"log"
	"time"

	"github.com/spf13/viper"

	"github.com/plantpass/pos-api/pkg/format"
)

type Config struct {
	App       AppConfig
	Gateway   GatewayConfig
	Order     OrderConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Session   SessionConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// GatewayConfig points at the remote backend that owns all authoritative
// data (products, discounts, transactions, auth).
type GatewayConfig struct {
	BaseURL string
	Timeout time.Duration
}

// OrderConfig holds checkout behavior knobs.
//
// OrderIDPrefixLength resolves the 3-vs-4 character ambiguity between
// deployments: ids render as PREFIX-REST with this prefix length.
type OrderConfig struct {
	OrderIDPrefixLength int
	RecentUnpaidLimit   int
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

// SessionConfig controls the in-memory draft store.
type SessionConfig struct {
	DraftTTL       time.Duration
	SweepInterval  time.Duration
	IdempotencyTTL time.Duration
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "plantpass-pos")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("GATEWAY_BASE_URL", "http://localhost:9000")
	viper.SetDefault("GATEWAY_TIMEOUT_SECONDS", 10)
	viper.SetDefault("ORDER_ID_PREFIX_LENGTH", format.DefaultOrderIDPrefixLength)
	viper.SetDefault("RECENT_UNPAID_LIMIT", 5)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("DRAFT_TTL_MINUTES", 120)
	viper.SetDefault("DRAFT_SWEEP_MINUTES", 5)
	viper.SetDefault("IDEMPOTENCY_TTL_HOURS", 24)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Gateway: GatewayConfig{
			BaseURL: viper.GetString("GATEWAY_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("GATEWAY_TIMEOUT_SECONDS")) * time.Second,
		},
		Order: OrderConfig{
			OrderIDPrefixLength: viper.GetInt("ORDER_ID_PREFIX_LENGTH"),
			RecentUnpaidLimit:   viper.GetInt("RECENT_UNPAID_LIMIT"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Session: SessionConfig{
			DraftTTL:       time.Duration(viper.GetInt("DRAFT_TTL_MINUTES")) * time.Minute,
			SweepInterval:  time.Duration(viper.GetInt("DRAFT_SWEEP_MINUTES")) * time.Minute,
			IdempotencyTTL: time.Duration(viper.GetInt("IDEMPOTENCY_TTL_HOURS")) * time.Hour,
		},
	}
}
