package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Data    DataConfig
	Search  SearchConfig
	Scoring ScoringConfig
	OpenAI  OpenAIConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
}

// DataConfig holds dataset and account storage locations
type DataConfig struct {
	PropertiesFile string
	AccountsDB     string
}

// SearchConfig holds search-related configuration
type SearchConfig struct {
	DefaultTopK int
	MaxTopK     int
}

// ScoringConfig holds the match-score weights and tuning constants.
// Weights are relative; the scorer normalizes by the total weight of the
// criteria that actually apply to a request.
type ScoringConfig struct {
	WeightLocation      float64
	WeightBudget        float64
	WeightFeatures      float64
	WeightEnvironment   float64
	WeightCapacity      float64
	OccupancyPerBedroom int
	ReasonThreshold     float64
}

// OpenAIConfig holds OpenAI-compatible API configuration
type OpenAIConfig struct {
	APIKey      string
	APIBase     string
	ChatModel   string
	Temperature float64
	TopP        float64
	MaxTokens   int
	Timeout     int
	Enabled     bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Data: DataConfig{
			PropertiesFile: getEnv("PROPERTIES_FILE", "data/properties.json"),
			AccountsDB:     getEnv("ACCOUNTS_DB", "data/accounts.db"),
		},
		Search: SearchConfig{
			DefaultTopK: getEnvAsInt("SEARCH_DEFAULT_TOP_K", 5),
			MaxTopK:     getEnvAsInt("SEARCH_MAX_TOP_K", 50),
		},
		Scoring: ScoringConfig{
			WeightLocation:      getEnvAsFloat("SCORE_WEIGHT_LOCATION", 0.25),
			WeightBudget:        getEnvAsFloat("SCORE_WEIGHT_BUDGET", 0.25),
			WeightFeatures:      getEnvAsFloat("SCORE_WEIGHT_FEATURES", 0.20),
			WeightEnvironment:   getEnvAsFloat("SCORE_WEIGHT_ENVIRONMENT", 0.15),
			WeightCapacity:      getEnvAsFloat("SCORE_WEIGHT_CAPACITY", 0.15),
			OccupancyPerBedroom: getEnvAsInt("SCORE_OCCUPANCY_PER_BEDROOM", 2),
			ReasonThreshold:     getEnvAsFloat("SCORE_REASON_THRESHOLD", 0.7),
		},
		OpenAI: OpenAIConfig{
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			APIBase:     getEnv("OPENAI_API_BASE", "https://openrouter.ai/api/v1"),
			ChatModel:   getEnv("OPENAI_CHAT_MODEL", "meta-llama/llama-3.3-70b-instruct:free"),
			Temperature: getEnvAsFloat("OPENAI_CHAT_TEMPERATURE", 0.3),
			TopP:        getEnvAsFloat("OPENAI_CHAT_TOP_P", 0.7),
			MaxTokens:   getEnvAsInt("OPENAI_CHAT_MAX_TOKENS", 500),
			Timeout:     getEnvAsInt("OPENAI_TIMEOUT", 30),
			Enabled:     getEnv("OPENAI_API_KEY", "") != "",
		},
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default %f", key, defaultValue)
		return defaultValue
	}
	return value
}
