// Package config loads runtime settings from the config file and environment.
package config

import (
	"os"
	"strings"
)

// Config holds application configuration loaded from environment and file.
// Priority: Env vars → config.toml → defaults
type Config struct {
	// ServerPort is the address to bind the server to (e.g., ":8080")
	ServerPort string

	// LogLevel is one of debug, info, warn, error
	LogLevel string

	// LogFormat is "text" or "json"
	LogFormat string

	// GroqBaseURL overrides the upstream API root
	GroqBaseURL string

	// GroqAPIKey is read from GROQ_API_KEY only. Empty is allowed at load
	// time; the relay reports it when a command arrives.
	GroqAPIKey string

	// CountPromptTokens enables prompt token estimates in debug logs
	CountPromptTokens bool
}

// Load reads configuration from the default file location and environment.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads configuration from the TOML file at path (missing is fine)
// and applies environment overrides.
func LoadFrom(path string) (*Config, error) {
	fileConfig, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:        getEnvOrFile("SERVER_PORT", fileConfig.ServerPort, ":8080"),
		LogLevel:          strings.ToLower(getEnvOrFile("LOG_LEVEL", fileConfig.LogLevel, "info")),
		LogFormat:         strings.ToLower(getEnvOrFile("LOG_FORMAT", fileConfig.LogFormat, "text")),
		GroqBaseURL:       getEnvOrFile("GROQ_BASE_URL", fileConfig.GroqBaseURL, ""),
		GroqAPIKey:        strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
		CountPromptTokens: getEnvBoolOrFile("COUNT_PROMPT_TOKENS", fileConfig.CountPromptTokens, false),
	}, nil
}

// getEnvOrFile returns env value, file value, or default (in priority order)
func getEnvOrFile(key, fileValue, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if fileValue != "" {
		return fileValue
	}
	return defaultValue
}

// getEnvBoolOrFile returns env bool, file bool, or default (in priority order)
func getEnvBoolOrFile(key string, fileValue *bool, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	if fileValue != nil {
		return *fileValue
	}
	return defaultValue
}
