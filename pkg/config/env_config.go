// pkg/config/env_config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// EnvironmentConfig contains host-process settings sourced from
// SPACEWARS_* environment variables. The game rules themselves live in
// GameConfig; this covers how the hosting process runs.
type EnvironmentConfig struct {
	UpdateRate            int           // simulation ticks per second for headless loops
	MaxMemoryMB           int64         // resource manager memory ceiling
	MaxGoroutines         int           // resource manager goroutine ceiling
	ShutdownTimeout       time.Duration // grace period for tracked goroutines on exit
	ResourceCheckInterval time.Duration // how often resource usage is sampled
}

// DefaultEnvironmentConfig returns the safe defaults used when the
// environment cannot be read.
func DefaultEnvironmentConfig() *EnvironmentConfig {
	return &EnvironmentConfig{
		UpdateRate:            60,
		MaxMemoryMB:           500,
		MaxGoroutines:         100,
		ShutdownTimeout:       30 * time.Second,
		ResourceCheckInterval: 10 * time.Second,
	}
}

// LoadConfigFromEnv builds an EnvironmentConfig from SPACEWARS_*
// variables, falling back to defaults for anything unset. Malformed
// values are errors rather than silent fallbacks.
func LoadConfigFromEnv() (*EnvironmentConfig, error) {
	cfg := DefaultEnvironmentConfig()

	var err error
	if cfg.UpdateRate, err = getEnvInt("SPACEWARS_UPDATE_RATE", cfg.UpdateRate); err != nil {
		return nil, err
	}
	if cfg.MaxMemoryMB, err = getEnvInt64("SPACEWARS_MAX_MEMORY_MB", cfg.MaxMemoryMB); err != nil {
		return nil, err
	}
	if cfg.MaxGoroutines, err = getEnvInt("SPACEWARS_MAX_GOROUTINES", cfg.MaxGoroutines); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getEnvDuration("SPACEWARS_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout); err != nil {
		return nil, err
	}
	if cfg.ResourceCheckInterval, err = getEnvDuration("SPACEWARS_RESOURCE_CHECK_INTERVAL", cfg.ResourceCheckInterval); err != nil {
		return nil, err
	}

	if cfg.UpdateRate <= 0 {
		return nil, fmt.Errorf("SPACEWARS_UPDATE_RATE must be positive, got %d", cfg.UpdateRate)
	}

	return cfg, nil
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}

func getEnvInt64(key string, fallback int64) (int64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}
