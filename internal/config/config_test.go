package config

import (
	"os"
	"testing"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	os.Setenv("GEMINI_API_KEY", "test-key")
	defer os.Unsetenv("GEMINI_API_KEY")
	for _, key := range []string{"HOST", "PORT", "ENV", "GEMINI_MODEL"} {
		os.Unsetenv(key)
	}

	cfg := Load()

	if cfg.GeminiAPIKey != "test-key" {
		t.Errorf("Expected API key 'test-key', got %q", cfg.GeminiAPIKey)
	}
	if cfg.Port != "3001" {
		t.Errorf("Expected default port '3001', got %q", cfg.Port)
	}
	if cfg.Host != "127.0.0.1" {
		t.Errorf("Expected default host '127.0.0.1', got %q", cfg.Host)
	}
	if cfg.Addr() != "127.0.0.1:3001" {
		t.Errorf("Expected addr '127.0.0.1:3001', got %q", cfg.Addr())
	}
}

func TestLoadPanicsWithoutAPIKey(t *testing.T) {
	os.Unsetenv("GEMINI_API_KEY")

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected Load to panic when GEMINI_API_KEY is unset")
		}
	}()

	Load()
}
