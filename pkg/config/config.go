package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/anonto42/bluo/backend/internal/models"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port        string
	Env         string
	LogLevel    string
	MetricsPort string
	ClientURL   string

	StripeSecretKey string
	StripePrices    map[models.SubscriptionTier]string

	AIRateLimit float64
	AIRateBurst int

	SeedData bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:            getEnv("PORT", "3001"),
		Env:             getEnv("ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		MetricsPort:     getEnv("METRICS_PORT", "9090"),
		ClientURL:       getEnv("CLIENT_URL", "http://localhost:5173"),
		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		StripePrices: map[models.SubscriptionTier]string{
			models.TierPro:     getEnv("STRIPE_PRICE_PRO_MONTHLY", ""),
			models.TierPremium: getEnv("STRIPE_PRICE_PREMIUM_MONTHLY", ""),
		},
		AIRateLimit: getEnvFloat("AI_RATE_LIMIT", 5),
		AIRateBurst: getEnvInt("AI_RATE_BURST", 10),
		SeedData:    getEnvBool("SEED_DATA", true),
	}
}

// MetricsEnabled reports whether the prometheus listener should start.
// METRICS_PORT=off disables it.
func (c *Config) MetricsEnabled() bool {
	return c.MetricsPort != "" && c.MetricsPort != "off"
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Warn().Str("key", key).Str("value", raw).Msg("Invalid integer, using default")
		return defaultValue
	}
	return v
}

func getEnvFloat(key string, defaultValue float64) float64 {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Warn().Str("key", key).Str("value", raw).Msg("Invalid number, using default")
		return defaultValue
	}
	return v
}

func getEnvBool(key string, defaultValue bool) bool {
	raw := strings.TrimSpace(getEnv(key, ""))
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Warn().Str("key", key).Str("value", raw).Msg("Invalid boolean, using default")
		return defaultValue
	}
	return v
}
