package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port         string `yaml:"port" env:"SERVER_PORT" validate:"required,numeric"`
		Mode         string `yaml:"mode" env:"SERVER_MODE" validate:"oneof=development production test"`
		MaxBodyBytes int64  `yaml:"max_body_bytes" env:"MAX_BODY_BYTES" validate:"gt=0"`
		ReadTimeout  string `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout string `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	} `yaml:"server"`

	// Webhooks may be left empty; the matching endpoint then answers 500.
	Webhooks struct {
		CheckinURL string `yaml:"checkin_url" env:"GOOGLE_SHEETS_WEBHOOK_URL" validate:"omitempty,url"`
		EoiURL     string `yaml:"eoi_url" env:"GOOGLE_SHEETS_EOI_WEBHOOK_URL" validate:"omitempty,url"`
		Timeout    string `yaml:"timeout" env:"WEBHOOK_TIMEOUT"`
	} `yaml:"webhooks"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`
		Format string `yaml:"format" env:"LOG_FORMAT" validate:"omitempty,oneof=json text"`
	} `yaml:"logging"`

	Tracing struct {
		Enabled     bool   `yaml:"enabled" env:"OTEL_ENABLED"`
		Endpoint    string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" validate:"omitempty,url"`
		ServiceName string `yaml:"service_name" env:"OTEL_SERVICE_NAME"`
	} `yaml:"tracing"`
}

var validate = validator.New()

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.MaxBodyBytes = 64 << 10
	config.Server.ReadTimeout = "10s"
	config.Server.WriteTimeout = "20s"

	config.Webhooks.Timeout = "10s"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Tracing.Enabled = true
	config.Tracing.ServiceName = "welcomehub-api"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if err := validate.Struct(config); err != nil {
		return err
	}

	for name, value := range map[string]string{
		"webhook timeout":      config.Webhooks.Timeout,
		"server read timeout":  config.Server.ReadTimeout,
		"server write timeout": config.Server.WriteTimeout,
	} {
		if value == "" {
			continue
		}
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	return nil
}

// CheckinConfigured reports whether check-in forwarding has a destination.
func (c *Config) CheckinConfigured() bool {
	return c.Webhooks.CheckinURL != ""
}

// EoiConfigured reports whether EOI forwarding has a destination.
func (c *Config) EoiConfigured() bool {
	return c.Webhooks.EoiURL != ""
}
