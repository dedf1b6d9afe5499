package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr             string
	AllowOrigins     string
	LogRequests      bool
	PromotionDefault string
}

// Load reads configuration from a .env file (if present) and
// environment variables, applying defaults when values are missing or
// invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent.
	_ = godotenv.Load()

	return Config{
		Addr:             envOr("ADDR", ":3000"),
		AllowOrigins:     envOr("ALLOW_ORIGINS", "http://localhost:5173"),
		LogRequests:      envBoolOr("LOG_REQUESTS", true),
		PromotionDefault: envOr("PROMOTION_DEFAULT", "queen"),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("invalid value for %s=%q, using default %t", key, v, def)
	}
	return def
}
