package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	apperrors "brrr-bot/backend/pkg/errors"
)

// Config holds all application configuration
type Config struct {
	// App
	Port string
	Env  string

	// Storage
	SQLitePath string

	// AI
	OpenAIBaseURL string
	OpenAIAPIKey  string
	ModelID       string
	Temperature   float64
	MaxTokens     int

	// Discord
	DiscordBotToken string

	// GitHub
	GitHubToken string
	GitHubOwner string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		SQLitePath:      getEnv("SQLITE_PATH", "data/brrr.db"),
		OpenAIBaseURL:   getEnv("OPENAI_BASE_URL", ""),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		ModelID:         getEnv("MODEL_ID", "gpt-4o-mini"),
		Temperature:     getEnvFloat("MODEL_TEMPERATURE", 0.7),
		MaxTokens:       getEnvInt("MODEL_MAX_TOKENS", 1024),
		DiscordBotToken: getEnv("DISCORD_BOT_TOKEN", ""),
		GitHubToken:     getEnv("GITHUB_TOKEN", ""),
		GitHubOwner:     getEnv("GITHUB_OWNER", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set
func (c *Config) Validate() error {
	if c.SQLitePath == "" {
		return apperrors.NewConfigMissingRequired("SQLITE_PATH")
	}
	if c.ModelID == "" {
		return apperrors.NewConfigMissingRequired("MODEL_ID")
	}
	// API key, Discord token and GitHub token are optional here; their
	// absence disables the corresponding feature rather than the process.
	return nil
}

// ChatEnabled reports whether the conversational feature can start.
// Missing model credentials disable chat only; the rest of the system
// keeps running.
func (c *Config) ChatEnabled() bool {
	return c.OpenAIAPIKey != ""
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		var result float64
		if _, err := fmt.Sscanf(value, "%f", &result); err == nil {
			return result
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
