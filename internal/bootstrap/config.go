// Package bootstrap wires configuration, logging, and the component graph
// for the HTTP server.
package bootstrap

import (
	"fmt"
	"log"

	"medcoder/internal/config"
	"medcoder/internal/logging"
)

// LoadConfig loads configuration. Uses defaults if the file doesn't exist.
func LoadConfig() (*config.Config, error) {
	configPath := config.GetConfigPath("config.yml")
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Warning: failed to load config file (%s): %v", configPath, err)
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// CreateLogger creates a logger instance from configuration.
func CreateLogger(cfg *config.Config) (logging.Logger, error) {
	logger, err := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return logger, nil
}
