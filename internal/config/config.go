// Package config handles service configuration with precedence ENV > File > Defaults.
package config

import (
	"fmt"
	"strings"
	"time"
)

// AppConfig holds the runtime configuration of the dialog webhook daemon.
type AppConfig struct {
	// ListenAddr is the address the HTTP server binds to (host:port).
	ListenAddr string `yaml:"listen"`

	// LogLevel controls the global zerolog level ("debug", "info", ...).
	LogLevel string `yaml:"logLevel"`

	// LogService is the service name attached to every log entry.
	LogService string `yaml:"logService"`

	// RateLimitRPM is the per-IP request budget per minute on the dialog
	// endpoint. Zero disables rate limiting.
	RateLimitRPM int `yaml:"rateLimitRPM"`

	// Server timeouts.
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`

	// Version is injected at build time, never read from file or env.
	Version string `yaml:"-"`
}

// Defaults returns the built-in configuration baseline.
func Defaults() AppConfig {
	return AppConfig{
		ListenAddr:      ":8080",
		LogLevel:        "info",
		LogService:      "lexhook",
		RateLimitRPM:    600,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 15 * time.Second,
	}
}

// Validate rejects configurations the daemon cannot safely run with.
func (c AppConfig) Validate() error {
	if strings.TrimSpace(c.ListenAddr) == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	if c.RateLimitRPM < 0 {
		return fmt.Errorf("rate limit must be >= 0 (got %d)", c.RateLimitRPM)
	}
	if c.ReadTimeout <= 0 {
		return fmt.Errorf("read timeout must be positive (got %s)", c.ReadTimeout)
	}
	if c.WriteTimeout <= 0 {
		return fmt.Errorf("write timeout must be positive (got %s)", c.WriteTimeout)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive (got %s)", c.ShutdownTimeout)
	}
	return nil
}
