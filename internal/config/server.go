package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            string
	LogLevel        string
	LogJSON         bool
	AllowedOrigins  []string
	MaxPathCells    int64
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// NewServerConfig loads configuration from environment variables
func NewServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{
		Port:           getEnv("PORT", "8000"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	var err error
	if cfg.LogJSON, err = strconv.ParseBool(getEnv("LOG_JSON", "true")); err != nil {
		return nil, fmt.Errorf("LOG_JSON: %w", err)
	}
	if cfg.MaxPathCells, err = strconv.ParseInt(getEnv("MAX_PATH_CELLS", "20000000"), 10, 64); err != nil {
		return nil, fmt.Errorf("MAX_PATH_CELLS: %w", err)
	}
	if cfg.ReadTimeout, err = time.ParseDuration(getEnv("READ_TIMEOUT", "10s")); err != nil {
		return nil, fmt.Errorf("READ_TIMEOUT: %w", err)
	}
	if cfg.WriteTimeout, err = time.ParseDuration(getEnv("WRITE_TIMEOUT", "60s")); err != nil {
		return nil, fmt.Errorf("WRITE_TIMEOUT: %w", err)
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "15s")); err != nil {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}

	if cfg.Port == "" {
		return nil, fmt.Errorf("PORT is required")
	}
	return cfg, nil
}

// Addr is the listen address for the configured port.
func (c *ServerConfig) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
