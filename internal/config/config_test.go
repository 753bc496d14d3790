package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearEnvOverrides(t *testing.T) {
	t.Helper()
	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvModel, "")
	t.Setenv(EnvBaseURL, "")
	t.Setenv("OPENAI_API_KEY", "")
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(strings.TrimSpace(body)), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnvOverrides(t)
	// Point the config path at an existing file with no overrides so the
	// user-level config dir is never touched.
	path := writeConfig(t, `version: 1`)
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model != DefaultModel {
		t.Fatalf("model: got %q, want %q", cfg.Model, DefaultModel)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Fatalf("base_url: got %q, want %q", cfg.BaseURL, DefaultBaseURL)
	}
	if cfg.RequestTimeout != 5*time.Minute {
		t.Fatalf("request_timeout: got %s", cfg.RequestTimeout)
	}
}

func TestLoadParsesYAML(t *testing.T) {
	clearEnvOverrides(t)
	path := writeConfig(t, `
version: 1
model: gpt-4o-mini
base_url: https://api.openai.com/v1/
api_key_env: MY_KEY
temperature: 0.2
max_tokens: 512
request_timeout: 90s
`)
	t.Setenv("MY_KEY", "sk-test")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Fatalf("model: got %q", cfg.Model)
	}
	if cfg.BaseURL != "https://api.openai.com/v1" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.BaseURL)
	}
	if cfg.APIKey != "sk-test" {
		t.Fatalf("api key not resolved from MY_KEY")
	}
	if cfg.Temperature != 0.2 {
		t.Fatalf("temperature: got %v", cfg.Temperature)
	}
	if cfg.MaxTokens != 512 {
		t.Fatalf("max_tokens: got %d", cfg.MaxTokens)
	}
	if cfg.RequestTimeout != 90*time.Second {
		t.Fatalf("request_timeout: got %s", cfg.RequestTimeout)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnvOverrides(t)
	path := writeConfig(t, `
model: gpt-4o-mini
base_url: https://api.openai.com/v1
`)
	t.Setenv(EnvModel, "llama3.1:70b")
	t.Setenv(EnvBaseURL, "http://gpu-box:11434/v1")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model != "llama3.1:70b" {
		t.Fatalf("env model override ignored: %q", cfg.Model)
	}
	if cfg.BaseURL != "http://gpu-box:11434/v1" {
		t.Fatalf("env base_url override ignored: %q", cfg.BaseURL)
	}
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	clearEnvOverrides(t)
	path := writeConfig(t, `request_timeout: soon`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error for request_timeout")
	}
}

func TestLoadRejectsBadTemperature(t *testing.T) {
	clearEnvOverrides(t)
	path := writeConfig(t, `temperature: 9.5`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation error for temperature")
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	clearEnvOverrides(t)
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	if _, err := Load(missing); err == nil {
		t.Fatalf("expected error for explicit missing config file")
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	clearEnvOverrides(t)
	path := writeConfig(t, `model: [broken`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected YAML parse error")
	}
}
