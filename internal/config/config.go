// Package config centralises configuration parsing for the assistant gateway.
package config

import (
	"os"
	"strconv"
)

// Config captures runtime configuration values for the gateway.
type Config struct {
	AWSRegion     string
	ModelID       string
	UsersTable    string
	WorkoutsTable string
	MaxTokens     int     // Upper bound on generated tokens per model call.
	Temperature   float64 // Sampling temperature shared by both call shapes.
	LogLevel      string
}

// Load reads environment variables into Config, applying the legacy table
// names as defaults so warm environments keep working without extra wiring.
func Load() Config {
	return Config{
		AWSRegion:     getEnv("AWS_REGION", ""),
		ModelID:       getEnv("MODEL_ID", ""),
		UsersTable:    getEnv("USERS_TABLE", "lifting-tracker-users"),
		WorkoutsTable: getEnv("WORKOUTS_TABLE", "lifting-tracker-workouts"),
		MaxTokens:     getIntEnv("MAX_TOKENS", 1000),
		Temperature:   getFloatEnv("TEMPERATURE", 0.5),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
