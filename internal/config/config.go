package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mmynk/settleup/pkg/logging"
)

type Config struct {
	// HTTP Server
	Port            string
	ShutdownTimeout time.Duration
	CORSOrigin      string

	// Logging
	LogLevel  string
	LogFormat string

	// Aggregation
	AggregationWorkers int
	ParallelThreshold  int

	// Metrics
	MetricsEnabled bool
}

// Load reads the configuration from the environment. Values that are missing
// or fail to parse fall back to their defaults.
func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		CORSOrigin:      getEnv("CORS_ALLOWED_ORIGIN", "*"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", logging.FormatText),

		AggregationWorkers: getEnvInt("AGGREGATION_WORKERS", 4),
		ParallelThreshold:  getEnvInt("PARALLEL_THRESHOLD", 10000),

		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
	}
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, err.Error())
	}

	if c.LogFormat != logging.FormatText && c.LogFormat != logging.FormatJSON {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be one of [%s %s]", c.LogFormat, logging.FormatText, logging.FormatJSON))
	}

	if c.AggregationWorkers < 1 {
		errors = append(errors, fmt.Sprintf("invalid aggregation workers %d: must be at least 1", c.AggregationWorkers))
	} else if c.AggregationWorkers > 1024 {
		errors = append(errors, fmt.Sprintf("invalid aggregation workers %d: must be at most 1024", c.AggregationWorkers))
	}

	// 0 disables parallel aggregation
	if c.ParallelThreshold < 0 {
		errors = append(errors, fmt.Sprintf("invalid parallel threshold %d: must not be negative", c.ParallelThreshold))
	}

	if c.ShutdownTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid shutdown timeout %v: must be at least 1 second", c.ShutdownTimeout))
	}

	if c.CORSOrigin == "" {
		errors = append(errors, "CORS allowed origin cannot be empty")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
