// Package config holds the tool configuration and its YAML loader.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dm/otelprobe/internal/client"
	"github.com/dm/otelprobe/internal/model"
)

// DefaultInterval is the wait between checks in continuous mode.
const DefaultInterval = 30 * time.Second

// Config is the full tool configuration. Durations accept Go syntax
// ("5s", "1m30s") in YAML.
type Config struct {
	Host        string        `yaml:"host"`
	HealthPort  int           `yaml:"health_port"`
	MetricsPort int           `yaml:"metrics_port"`
	ZPagesPort  int           `yaml:"zpages_port"`
	Timeout     time.Duration `yaml:"timeout"`
	Interval    time.Duration `yaml:"interval"`
	FailBelow   string        `yaml:"fail_below"`
	LogLevel    string        `yaml:"log_level"`
}

// Default returns the configuration used when no file and no flags are
// given: a collector on localhost with stock ports.
func Default() Config {
	return Config{
		Host:        client.DefaultHost,
		HealthPort:  client.DefaultHealthPort,
		MetricsPort: client.DefaultMetricsPort,
		ZPagesPort:  client.DefaultZPagesPort,
		Timeout:     client.DefaultTimeout,
		Interval:    DefaultInterval,
		FailBelow:   "degraded",
		LogLevel:    "info",
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host must not be empty")
	}
	for _, p := range []struct {
		name string
		port int
	}{
		{"health_port", c.HealthPort},
		{"metrics_port", c.MetricsPort},
		{"zpages_port", c.ZPagesPort},
	} {
		if p.port < 1 || p.port > 65535 {
			return fmt.Errorf("%s must be between 1 and 65535, got %d", p.name, p.port)
		}
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", c.Interval)
	}
	if _, err := model.ParseTier(c.FailBelow); err != nil {
		return fmt.Errorf("fail_below: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// ClientConfig maps the tool configuration onto the probe client.
func (c Config) ClientConfig() client.Config {
	return client.Config{
		Host:        c.Host,
		HealthPort:  c.HealthPort,
		MetricsPort: c.MetricsPort,
		ZPagesPort:  c.ZPagesPort,
		Timeout:     c.Timeout,
	}
}

// FailBelowTier parses the acceptance threshold. Call Validate first if
// the configuration came from user input.
func (c Config) FailBelowTier() (model.Tier, error) {
	return model.ParseTier(c.FailBelow)
}

// Level maps the configured log level onto slog.
func (c Config) Level() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", c.LogLevel)
	}
}
