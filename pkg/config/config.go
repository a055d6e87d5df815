package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	Env               string
	DatabaseURL       string
	RedisURL          string
	JWTSecret         string
	JWTIssuer         string
	JWTTTLMinutes     int
	ClaudeAPIKey      string
	ClaudeModel       string
	ClaudeMaxTokens   int
	LLMTimeoutSeconds int
	ReminderInterval  int // minutes between milestone reminder sweeps, 0 disables
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("ENV", "production"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisURL:          getEnv("REDIS_URL", "redis://localhost:6379/0"),
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:         getEnv("JWT_ISSUER", "careerpath-api"),
		JWTTTLMinutes:     getEnvInt("JWT_TTL_MINUTES", 60*24),
		ClaudeAPIKey:      os.Getenv("CLAUDE_API_KEY"),
		ClaudeModel:       getEnv("CLAUDE_MODEL", "claude-sonnet-4-20250514"),
		ClaudeMaxTokens:   getEnvInt("CLAUDE_MAX_TOKENS", 4096),
		LLMTimeoutSeconds: getEnvInt("LLM_TIMEOUT_SECONDS", 45),
		ReminderInterval:  getEnvInt("REMINDER_INTERVAL_MINUTES", 0),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
