package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles configuration loading with precedence ENV > File > Defaults.
type Loader struct {
	configPath string
	version    string
}

// NewLoader creates a new configuration loader.
func NewLoader(configPath, version string) *Loader {
	return &Loader{configPath: configPath, version: version}
}

// Load loads configuration in order: defaults, then file (if any), then
// environment overrides, and validates the result.
func (l *Loader) Load() (AppConfig, error) {
	cfg := Defaults()

	if l.configPath != "" {
		if err := l.mergeFile(&cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	l.mergeEnv(&cfg)
	cfg.Version = l.version

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func (l *Loader) mergeFile(cfg *AppConfig) error {
	data, err := os.ReadFile(l.configPath)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse %s: %w", l.configPath, err)
	}
	return nil
}

// mergeEnv overrides cfg with LEXHOOK_* environment variables.
func (l *Loader) mergeEnv(cfg *AppConfig) {
	cfg.ListenAddr = ParseString("LEXHOOK_LISTEN", cfg.ListenAddr)
	cfg.LogLevel = ParseString("LEXHOOK_LOG_LEVEL", cfg.LogLevel)
	cfg.LogService = ParseString("LEXHOOK_LOG_SERVICE", cfg.LogService)
	cfg.RateLimitRPM = ParseInt("LEXHOOK_RATE_LIMIT_RPM", cfg.RateLimitRPM)
	cfg.ReadTimeout = ParseDuration("LEXHOOK_READ_TIMEOUT", cfg.ReadTimeout)
	cfg.WriteTimeout = ParseDuration("LEXHOOK_WRITE_TIMEOUT", cfg.WriteTimeout)
	cfg.ShutdownTimeout = ParseDuration("LEXHOOK_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
}
