package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds process configuration, sourced from MEMENTO_* env vars.
type Config struct {
	Environment string
	HTTPAddr    string

	// AssetDir is the directory holding the optional logo and font files.
	AssetDir string

	// DatabaseDSN is the sqlite DSN backing the render log.
	DatabaseDSN string

	// PhotoFetchTimeoutSeconds bounds the remote photo download.
	PhotoFetchTimeoutSeconds int

	Tracing TracingConfig
}

// TracingConfig configures the OTLP exporter.
type TracingConfig struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	SamplingRatio    float64
}

// Load reads configuration from the environment with local defaults.
func Load() Config {
	return Config{
		Environment:              getEnv("MEMENTO_ENV", "development"),
		HTTPAddr:                 getEnv("MEMENTO_HTTP_ADDR", ":8080"),
		AssetDir:                 getEnv("MEMENTO_ASSET_DIR", "public"),
		DatabaseDSN:              getEnv("MEMENTO_DB_DSN", "memento.db"),
		PhotoFetchTimeoutSeconds: getEnvInt("MEMENTO_PHOTO_FETCH_TIMEOUT_SECONDS", 10),
		Tracing: TracingConfig{
			Enabled:          getEnvBool("MEMENTO_TRACING_ENABLED", false),
			ExporterEndpoint: getEnv("MEMENTO_OTLP_ENDPOINT", ""),
			ExporterProtocol: getEnv("MEMENTO_OTLP_PROTOCOL", "grpc"),
			SamplingRatio:    getEnvFloat("MEMENTO_TRACE_SAMPLING_RATIO", 0.1),
		},
	}
}

// IsProduction reports whether the service runs in production mode.
func (c Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.Environment), "production")
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
