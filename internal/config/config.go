// Package config provides configuration loading and validation for the service.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds service configuration loaded from environment variables.
// Secrets (database credentials, API keys) are always supplied externally
// and never embedded in the binary.
type Config struct {
	// Port is the HTTP listen port.
	Port int

	// DatabaseURL is the PostgreSQL connection URL.
	DatabaseURL string

	// LLM settings
	LLMProvider string // "openai" (default) or "gemini"
	LLMModel    string // provider model name; empty uses the provider default
	LLMAPIKey   string
	LLMBaseURL  string // optional override for OpenAI-compatible endpoints

	// Notification settings. Empty NotifyEndpoint disables push notifications.
	NotifyEndpoint string
	NotifyAPIKey   string
	NotifyTopic    string
}

// FromEnv loads the service configuration from environment variables.
// DATABASE_URL and LLM_API_KEY are required; everything else has defaults.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:           8080,
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		LLMProvider:    os.Getenv("LLM_PROVIDER"),
		LLMModel:       os.Getenv("LLM_MODEL"),
		LLMAPIKey:      os.Getenv("LLM_API_KEY"),
		LLMBaseURL:     os.Getenv("LLM_BASE_URL"),
		NotifyEndpoint: os.Getenv("NOTIFY_ENDPOINT"),
		NotifyAPIKey:   os.Getenv("NOTIFY_API_KEY"),
		NotifyTopic:    os.Getenv("NOTIFY_TOPIC"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	if cfg.LLMProvider == "" {
		cfg.LLMProvider = "openai"
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// normalize validates the configuration.
func (c *Config) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.LLMAPIKey == "" {
		return fmt.Errorf("LLM_API_KEY is required but not set")
	}
	if c.NotifyEndpoint != "" && c.NotifyTopic == "" {
		return fmt.Errorf("NOTIFY_TOPIC is required when NOTIFY_ENDPOINT is set")
	}
	return nil
}
