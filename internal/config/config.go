package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Bot      BotConfig
	Database DatabaseConfig
	Admin    AdminConfig
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	RedisURL           string
	NatsURL            string
	CorsAllowedOrigins string
}

type BotConfig struct {
	Token             string
	MaxDescriptionLen int
	SessionBackend    string // "memory" or "redis"
	SessionTTLMinutes int
	CacheDir          string
	ExportDir         string
}

type DatabaseConfig struct {
	Connection string
}

type AdminConfig struct {
	Email        string
	PasswordHash string // bcrypt hash of the dashboard password
	JWTSecret    string
}

type AIConfig struct {
	Provider      string // "openai" or "ollama"
	Model         string
	OpenAIBaseURL string
	OpenAIKey     string
	OllamaBaseURL string
	Temperature   float64
	MaxTokens     int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:        getEnv("APP_PORT", "3000"),
			Environment: getEnv("GO_ENV", "development"),
			LogFilePath: getEnv("LOG_FILE_PATH", "logs/readydoc.log"),
			RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379"),
			NatsURL:     getEnv("NATS_URL", "nats://localhost:4222"),

			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Bot: BotConfig{
			Token:             getEnv("BOT_TOKEN", ""),
			MaxDescriptionLen: getEnvAsInt("MAX_DESCRIPTION_LEN", 2000),
			SessionBackend:    getEnv("SESSION_BACKEND", "memory"),
			SessionTTLMinutes: getEnvAsInt("SESSION_TTL_MINUTES", 60),
			CacheDir:          getEnv("PROMPT_CACHE_DIR", "cache"),
			ExportDir:         getEnv("EXPORT_DIR", os.TempDir()),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Admin: AdminConfig{
			Email:        getEnv("ADMIN_EMAIL", ""),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			JWTSecret:    getEnv("JWT_SECRET", ""),
		},
		Ai: AIConfig{
			Provider:      getEnv("LLM_PROVIDER", "openai"),
			Model:         getEnv("LLM_MODEL", "gpt-4o-mini"),
			OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com"),
			OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			Temperature:   getEnvAsFloat("LLM_TEMPERATURE", 0.2),
			MaxTokens:     getEnvAsInt("LLM_MAX_TOKENS", 1800),
		},
	}
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

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
