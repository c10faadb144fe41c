// pkg/config/env_config_test.go
package config

import (
	"os"
	"testing"
	"time"
)

var envVars = []string{
	"SPACEWARS_UPDATE_RATE",
	"SPACEWARS_MAX_MEMORY_MB",
	"SPACEWARS_MAX_GOROUTINES",
	"SPACEWARS_SHUTDOWN_TIMEOUT",
	"SPACEWARS_RESOURCE_CHECK_INTERVAL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envVars {
		original := os.Getenv(key)
		os.Unsetenv(key)
		key := key
		t.Cleanup(func() {
			if original != "" {
				os.Setenv(key, original)
			} else {
				os.Unsetenv(key)
			}
		})
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		clearEnv(t)

		config, err := LoadConfigFromEnv()
		if err != nil {
			t.Fatalf("LoadConfigFromEnv() failed: %v", err)
		}

		if config.UpdateRate != 60 {
			t.Errorf("Expected UpdateRate 60, got %d", config.UpdateRate)
		}
		if config.MaxMemoryMB != 500 {
			t.Errorf("Expected MaxMemoryMB 500, got %d", config.MaxMemoryMB)
		}
		if config.MaxGoroutines != 100 {
			t.Errorf("Expected MaxGoroutines 100, got %d", config.MaxGoroutines)
		}
		if config.ShutdownTimeout != 30*time.Second {
			t.Errorf("Expected ShutdownTimeout 30s, got %v", config.ShutdownTimeout)
		}
		if config.ResourceCheckInterval != 10*time.Second {
			t.Errorf("Expected ResourceCheckInterval 10s, got %v", config.ResourceCheckInterval)
		}
	})

	t.Run("EnvironmentOverrides", func(t *testing.T) {
		clearEnv(t)
		os.Setenv("SPACEWARS_UPDATE_RATE", "30")
		os.Setenv("SPACEWARS_MAX_MEMORY_MB", "1000")
		os.Setenv("SPACEWARS_MAX_GOROUTINES", "50")
		os.Setenv("SPACEWARS_SHUTDOWN_TIMEOUT", "45s")
		os.Setenv("SPACEWARS_RESOURCE_CHECK_INTERVAL", "5s")

		config, err := LoadConfigFromEnv()
		if err != nil {
			t.Fatalf("LoadConfigFromEnv() failed: %v", err)
		}

		if config.UpdateRate != 30 {
			t.Errorf("Expected UpdateRate 30, got %d", config.UpdateRate)
		}
		if config.MaxMemoryMB != 1000 {
			t.Errorf("Expected MaxMemoryMB 1000, got %d", config.MaxMemoryMB)
		}
		if config.MaxGoroutines != 50 {
			t.Errorf("Expected MaxGoroutines 50, got %d", config.MaxGoroutines)
		}
		if config.ShutdownTimeout != 45*time.Second {
			t.Errorf("Expected ShutdownTimeout 45s, got %v", config.ShutdownTimeout)
		}
		if config.ResourceCheckInterval != 5*time.Second {
			t.Errorf("Expected ResourceCheckInterval 5s, got %v", config.ResourceCheckInterval)
		}
	})

	t.Run("InvalidValues", func(t *testing.T) {
		tests := []struct {
			name  string
			key   string
			value string
		}{
			{name: "non_numeric_rate", key: "SPACEWARS_UPDATE_RATE", value: "fast"},
			{name: "zero_rate", key: "SPACEWARS_UPDATE_RATE", value: "0"},
			{name: "bad_duration", key: "SPACEWARS_SHUTDOWN_TIMEOUT", value: "30"},
			{name: "non_numeric_memory", key: "SPACEWARS_MAX_MEMORY_MB", value: "lots"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				clearEnv(t)
				os.Setenv(tt.key, tt.value)

				if _, err := LoadConfigFromEnv(); err == nil {
					t.Errorf("LoadConfigFromEnv() accepted %s=%q", tt.key, tt.value)
				}
			})
		}
	})
}
