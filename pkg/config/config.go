package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	// EnvVarLogLevel is the environment variable name for setting the log level.
	EnvVarLogLevel = "LOG_LEVEL"

	// EnvVarMetricsPort is the environment variable name for the metrics server port.
	// Unset or 0 leaves the server off.
	EnvVarMetricsPort = "MENUNAV_METRICS_PORT"
)

// Config holds the runtime settings of a session.
type Config struct {
	// Version is reported in logs and in the served menu.
	Version string

	// LogLevel is one of debug, info, warn or error.
	LogLevel string

	// MetricsPort enables the metrics server when greater than zero.
	MetricsPort int
}

// MetricsEnabled reports whether the metrics server should run.
func (c Config) MetricsEnabled() bool {
	return c.MetricsPort > 0
}

// Load reads the configuration from the process environment.
func Load(version string) (Config, error) {
	return LoadFrom(version, os.Getenv)
}

// LoadFrom reads the configuration using getenv, which lets tests supply their own environment.
func LoadFrom(version string, getenv func(string) string) (Config, error) {
	cfg := Config{
		Version:  version,
		LogLevel: strings.TrimSpace(getenv(EnvVarLogLevel)),
	}

	if v := strings.TrimSpace(getenv(EnvVarMetricsPort)); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvVarMetricsPort, v, err)
		}
		if port < 0 || port > 65535 {
			return Config{}, fmt.Errorf("invalid %s %d: out of range", EnvVarMetricsPort, port)
		}
		cfg.MetricsPort = port
	}

	return cfg, nil
}
