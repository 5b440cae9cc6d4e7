package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL    string
	GeminiAPIKey   string
	GeminiModel    string
	Port           string
	AllowedOrigins []string
}

// Origins the frontend dev servers run on. Override with CORS_ALLOWED_ORIGINS.
var defaultOrigins = []string{
	"http://localhost:5174",
	"http://localhost:5173",
	"http://127.0.0.1:5174",
	"http://127.0.0.1:5173",
	"http://localhost:8000",
	"http://127.0.0.1:8000",
}

// Load reads the process configuration once at startup. A .env file in the
// working directory is honored but optional. The Gemini key has no default
// and must come from the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:    getEnv("DATABASE_URL", "health.db"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: defaultOrigins,
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("GEMINI_API_KEY is not set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
