package config

import (
	"errors"
	"os"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	DataPath        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Debug enables development behavior: the page template is reparsed on
	// every request and logs default to readable text output.
	Debug bool
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	debug := os.Getenv("DEBUG") == "true"

	logFormat := envOrDefault("LOG_FORMAT", "json")
	if debug && os.Getenv("LOG_FORMAT") == "" {
		logFormat = "text"
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8124"),
		DataPath:        envOrDefault("DATA_PATH", "rf_data.csv"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       logFormat,
		ShutdownTimeout: shutdownTimeout,
		Debug:           debug,
	}

	if cfg.DataPath == "" {
		return nil, errors.New("DATA_PATH is required")
	}

	return cfg, nil
}

func parseShutdownTimeout() (time.Duration, error) {
	s := envOrDefault("SHUTDOWN_TIMEOUT", "10s")
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, errors.New("invalid SHUTDOWN_TIMEOUT")
	}
	return d, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
