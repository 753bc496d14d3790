// internal/config/config.go
//
// Runtime configuration for boardroom. One YAML file selects the
// text-generation backend; it is read once at startup and never reloaded.
// A .env file next to the working directory is honored so API keys don't
// have to live in the shell profile.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultModel targets a local Ollama install; any OpenAI-compatible
	// model name works when base_url points elsewhere.
	DefaultModel = "llama3.1:8b"

	// DefaultBaseURL is Ollama's OpenAI-compatible endpoint.
	DefaultBaseURL = "http://localhost:11434/v1"

	defaultAPIKeyEnv = "OPENAI_API_KEY"
	defaultTimeout   = 5 * time.Minute

	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "BOARDROOM_CONFIG"
	// EnvModel overrides the configured model.
	EnvModel = "BOARDROOM_MODEL"
	// EnvBaseURL overrides the configured endpoint.
	EnvBaseURL = "BOARDROOM_BASE_URL"
)

const defaultConfigYAML = `# boardroom configuration
version: 1

# Any OpenAI-compatible chat-completions backend works. The defaults target
# a local Ollama install; point base_url at https://api.openai.com/v1 and
# set api_key_env to use OpenAI instead.
model: llama3.1:8b
base_url: http://localhost:11434/v1
api_key_env: OPENAI_API_KEY

# Sampling and limits passed through to the backend.
temperature: 0.7
max_tokens: 2048

# Wall-clock budget for a whole grilling session.
request_timeout: 5m
`

// fileConfig models the on-disk YAML.
type fileConfig struct {
	Version        int      `yaml:"version"`
	Model          string   `yaml:"model"`
	BaseURL        string   `yaml:"base_url"`
	APIKeyEnv      string   `yaml:"api_key_env"`
	Temperature    *float32 `yaml:"temperature"`
	MaxTokens      int      `yaml:"max_tokens"`
	RequestTimeout string   `yaml:"request_timeout"`
	LogPath        string   `yaml:"log_path"`
}

// Config holds the resolved runtime configuration.
type Config struct {
	Model          string
	BaseURL        string
	APIKey         string
	Temperature    float32
	MaxTokens      int
	RequestTimeout time.Duration
	LogPath        string
}

// Load resolves configuration in layers: built-in defaults, then the YAML
// file (explicit path, $BOARDROOM_CONFIG, or the user config dir), then
// environment overrides. A missing file is not an error; when the default
// location is used, a commented starter file is written there.
func Load(path string) (*Config, error) {
	// Values from a .env file never override the live environment.
	_ = godotenv.Load()

	cfg := &Config{
		Model:          DefaultModel,
		BaseURL:        DefaultBaseURL,
		Temperature:    0.7,
		MaxTokens:      2048,
		RequestTimeout: defaultTimeout,
	}

	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = strings.TrimSpace(os.Getenv(EnvConfigPath))
	}
	if path == "" {
		dir, err := configDir()
		if err == nil {
			path = filepath.Join(dir, "config.yaml")
			if err := ensureDefaultConfig(path); err != nil {
				return nil, err
			}
		}
	}

	apiKeyEnv := defaultAPIKeyEnv
	if path != "" {
		parsed, found, err := readFile(path)
		if err != nil {
			return nil, err
		}
		if !found && explicit {
			return nil, fmt.Errorf("config: %s does not exist", path)
		}
		if found {
			if err := cfg.apply(parsed); err != nil {
				return nil, err
			}
			if env := strings.TrimSpace(parsed.APIKeyEnv); env != "" {
				apiKeyEnv = env
			}
		}
	}

	if model := strings.TrimSpace(os.Getenv(EnvModel)); model != "" {
		cfg.Model = model
	}
	if base := strings.TrimSpace(os.Getenv(EnvBaseURL)); base != "" {
		cfg.BaseURL = base
	}
	cfg.APIKey = os.Getenv(apiKeyEnv)

	if cfg.LogPath == "" {
		if dir, err := configDir(); err == nil {
			cfg.LogPath = filepath.Join(dir, "logs", "boardroom.log")
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) apply(parsed fileConfig) error {
	if model := strings.TrimSpace(parsed.Model); model != "" {
		c.Model = model
	}
	if base := strings.TrimSpace(parsed.BaseURL); base != "" {
		c.BaseURL = strings.TrimRight(base, "/")
	}
	if parsed.Temperature != nil {
		c.Temperature = *parsed.Temperature
	}
	if parsed.MaxTokens > 0 {
		c.MaxTokens = parsed.MaxTokens
	}
	if raw := strings.TrimSpace(parsed.RequestTimeout); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("config: parse request_timeout %q: %w", raw, err)
		}
		c.RequestTimeout = d
	}
	if logPath := strings.TrimSpace(parsed.LogPath); logPath != "" {
		c.LogPath = logPath
	}
	return nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("config: model is required")
	}
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("config: base_url is required")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("config: temperature %.2f out of range [0, 2]", c.Temperature)
	}
	if c.MaxTokens < 0 {
		return fmt.Errorf("config: max_tokens must be >= 0")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("config: request_timeout must be positive")
	}
	return nil
}

func readFile(path string) (fileConfig, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fileConfig{}, false, nil
		}
		return fileConfig{}, false, fmt.Errorf("config: read %s: %w", path, err)
	}
	var parsed fileConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fileConfig{}, false, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return parsed, true, nil
}

func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "boardroom"), nil
}

func ensureDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: ensure config dir: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
