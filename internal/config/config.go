// Package config loads the process configuration from TRANSFERWATCH_*
// environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/gabapcia/transferwatch/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// prefix namespaces every environment variable read by Load.
const prefix = "TRANSFERWATCH"

// RPC configures access to the Ethereum node.
type RPC struct {
	HTTPURL  string        `envconfig:"HTTP_URL" default:"https://eth.llamarpc.com" validate:"required,httpurl"`
	WSURL    string        `envconfig:"WS_URL" default:"wss://eth.llamarpc.com" validate:"required,wsurl"`
	Timeout  time.Duration `envconfig:"TIMEOUT" default:"10s" validate:"gt=0"`
	RetryMax int           `envconfig:"RETRY_MAX" default:"2" validate:"gte=0"`
}

// Redis configures the optional Redis stream sink. It is enabled when Addr is set.
type Redis struct {
	Addr     string `envconfig:"ADDR" validate:"omitempty,hostname_port"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0" validate:"gte=0"`
	Stream   string `envconfig:"STREAM" default:"transferwatch:transfers" validate:"required"`
}

// Enabled reports whether the Redis sink should be built.
func (r Redis) Enabled() bool {
	return r.Addr != ""
}

// Kafka configures the optional Kafka sink. It is enabled when Brokers is set.
type Kafka struct {
	Brokers []string `envconfig:"BROKERS" validate:"dive,hostname_port"`
	Topic   string   `envconfig:"TOPIC" default:"transferwatch.transfers" validate:"required"`
}

// Enabled reports whether the Kafka sink should be built.
func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0
}

// Config is the complete process configuration.
type Config struct {
	RPC                   RPC    `envconfig:"RPC"`
	SnapshotRetryAttempts uint   `envconfig:"SNAPSHOT_RETRY_ATTEMPTS" default:"3" validate:"gte=1"`
	LogLevel              string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	TelemetryEnabled      bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	ServiceName           string `envconfig:"SERVICE_NAME" default:"transferwatch" validate:"required"`
	Redis                 Redis  `envconfig:"REDIS"`
	Kafka                 Kafka  `envconfig:"KAFKA"`
}

// Load reads and validates the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
