package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Pipeline struct {
		DataDir  string `yaml:"data_dir"`
		Output   string `yaml:"output"`
		DebugDir string `yaml:"debug_dir"`
		UseAI    bool   `yaml:"use_ai"`
		Workers  int    `yaml:"workers"`
	} `yaml:"pipeline"`
	GigaChat struct {
		APIKey             string `yaml:"api_key"`
		Scope              string `yaml:"scope"`
		InsecureSkipVerify bool   `yaml:"insecure_skip_verify"`
		TimeoutSeconds     int    `yaml:"timeout_seconds"`
	} `yaml:"gigachat"`
	Logger struct {
		Level string `yaml:"level"`
	} `yaml:"logger"`
}

// Load reads config from an optional YAML file and .env, then applies
// environment variable overrides and defaults.
func Load(path string) (*Config, error) {
	// .env is optional; plain environment variables work the same.
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.Pipeline.DataDir = v
	}
	if v := os.Getenv("OUTPUT_PATH"); v != "" {
		cfg.Pipeline.Output = v
	}
	if v := os.Getenv("DEBUG_DIR"); v != "" {
		cfg.Pipeline.DebugDir = v
	}
	if v := os.Getenv("USE_AI"); v != "" {
		cfg.Pipeline.UseAI = v == "true"
	}
	if v := os.Getenv("GIGACHAT_API_KEY"); v != "" {
		cfg.GigaChat.APIKey = v
	}
	if v := os.Getenv("GIGACHAT_SCOPE"); v != "" {
		cfg.GigaChat.Scope = v
	}
	if v := os.Getenv("GIGACHAT_INSECURE_SKIP_VERIFY"); v != "" {
		cfg.GigaChat.InsecureSkipVerify = v == "true"
	}
	if v := os.Getenv("GIGACHAT_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			cfg.GigaChat.TimeoutSeconds = secs
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logger.Level = v
	}

	// Defaults
	if cfg.Pipeline.Output == "" {
		cfg.Pipeline.Output = "results.csv"
	}
	if cfg.Pipeline.DebugDir == "" {
		cfg.Pipeline.DebugDir = "debug"
	}
	if cfg.Pipeline.Workers <= 0 {
		cfg.Pipeline.Workers = 4
	}
	if cfg.GigaChat.Scope == "" {
		cfg.GigaChat.Scope = "GIGACHAT_API_PERS"
	}
	if cfg.GigaChat.TimeoutSeconds <= 0 {
		cfg.GigaChat.TimeoutSeconds = 15
	}
	if cfg.Logger.Level == "" {
		cfg.Logger.Level = "info"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Pipeline.DataDir == "" {
		return fmt.Errorf("pipeline.data_dir is required")
	}
	if c.Pipeline.UseAI && c.GigaChat.APIKey == "" {
		return fmt.Errorf("gigachat.api_key is required when use_ai is enabled")
	}
	return nil
}
