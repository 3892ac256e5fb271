package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file structure.
// The API key is read from the environment only.
type FileConfig struct {
	ServerPort        string `toml:"server_port"`
	LogLevel          string `toml:"log_level"`
	LogFormat         string `toml:"log_format"`
	GroqBaseURL       string `toml:"groq_base_url"`
	CountPromptTokens *bool  `toml:"count_prompt_tokens"`
}

// ConfigPath returns the config file path: $FRIDAY_CONFIG or ~/.friday/config.toml.
func ConfigPath() string {
	if p := os.Getenv("FRIDAY_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(DataDir(), "config.toml")
}

// LoadFile loads configuration from the TOML file at path.
// Returns an empty FileConfig if the file doesn't exist.
func LoadFile(path string) (*FileConfig, error) {
	cfg := &FileConfig{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
