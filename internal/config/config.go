// Package config loads service configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the service.
type Config struct {
	Service       ServiceConfig
	Kafka         KafkaConfig
	Export        ExportConfig
	Observability ObservabilityConfig
}

// ServiceConfig holds core service settings.
type ServiceConfig struct {
	Principal  string
	HTTPPort   string
	ResultsDir string // empty disables result archiving
}

// KafkaConfig holds event publishing settings.
type KafkaConfig struct {
	Enabled        bool
	Brokers        []string
	TopicExtracted string
	TopicExported  string
}

// ExportConfig holds export engine settings.
type ExportConfig struct {
	CueSize int // words per subtitle cue
}

// ObservabilityConfig holds logging and metrics settings.
type ObservabilityConfig struct {
	LogLevel    string
	LogFormat   string
	MetricsPort string
}

// Load reads configuration from the environment, applying defaults for
// anything unset.
func Load() *Config {
	return &Config{
		Service: ServiceConfig{
			Principal:  envOrDefault("SERVICE_PRINCIPAL", "svc-transcript-export"),
			HTTPPort:   envOrDefault("HTTP_PORT", "8080"),
			ResultsDir: envOrDefault("RESULTS_DIR", "results"),
		},
		Kafka: KafkaConfig{
			Enabled:        envBool("KAFKA_ENABLED", false),
			Brokers:        envList("KAFKA_BROKERS"),
			TopicExtracted: envOrDefault("KAFKA_TOPIC_EXTRACTED", "transcript.extracted"),
			TopicExported:  envOrDefault("KAFKA_TOPIC_EXPORTED", "transcript.exported"),
		},
		Export: ExportConfig{
			CueSize: envInt("EXPORT_CUE_SIZE", 10),
		},
		Observability: ObservabilityConfig{
			LogLevel:    envOrDefault("LOG_LEVEL", "info"),
			LogFormat:   envOrDefault("LOG_FORMAT", "json"),
			MetricsPort: envOrDefault("METRICS_PORT", "9090"),
		},
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
