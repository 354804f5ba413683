// README: Config loader with env defaults for HTTP, data paths, Gemini, Redis, and Postgres.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	Auth struct {
		// APIKey guards the /v1 endpoints. Empty means auth is unconfigured
		// and guarded requests are rejected with 500.
		APIKey string
	}
	Gemini struct {
		Key         string
		Model       string
		Temperature float64
	}
	Data struct {
		IntentsPath          string
		ResponseTemplatePath string
	}
	Redis struct {
		// Addr enables the Redis catalog-source override. Empty disables it.
		Addr string
	}
	DB struct {
		// DSN enables oracle usage accounting. Empty disables it.
		DSN string
	}
	Log struct {
		Level string
	}
}

func Load() (Config, error) {
	// Best effort: a missing .env file is fine, env vars win either way.
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("CHATBOT_HTTP_ADDR", ":8000")
	cfg.Auth.APIKey = os.Getenv("CHATBOT_API_KEY")
	cfg.Gemini.Key = envOrError("GEMINI_API_KEY")
	cfg.Gemini.Model = envOrDefault("GEMINI_MODEL", "gemini-2.0-flash")
	cfg.Gemini.Temperature = envOrDefaultFloat("GEMINI_TEMPERATURE", 0)
	cfg.Data.IntentsPath = envOrDefault("CHATBOT_INTENTS_PATH", "data/intents.json")
	cfg.Data.ResponseTemplatePath = envOrDefault("CHATBOT_RESPONSE_TEMPLATE_PATH", "data/sample_response_format.json")
	cfg.Redis.Addr = os.Getenv("CHATBOT_REDIS_ADDR")
	cfg.DB.DSN = os.Getenv("CHATBOT_DB_DSN")
	cfg.Log.Level = envOrDefault("CHATBOT_LOG_LEVEL", "info")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrError(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	panic("environment variable " + key + " is required")
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}
