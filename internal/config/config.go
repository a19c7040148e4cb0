// Package config loads application settings from an optional YAML file,
// .env files and TUTORLY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/tutorly/internal/heuristics"
	"github.com/abhisek/tutorly/internal/llm"
	"github.com/abhisek/tutorly/internal/tutor"
)

// Session backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config is the application configuration.
type Config struct {
	// DataDir holds one <subject>.json file per subject.
	DataDir string `yaml:"data_dir"`

	// SessionBackend selects where learner records live: "file" or "sqlite".
	SessionBackend string `yaml:"session_backend"`

	// SessionsDir is used by the file backend.
	SessionsDir string `yaml:"sessions_dir"`

	// DBPath is the SQLite database. Empty resolves to the XDG default.
	DBPath string `yaml:"db_path"`

	// User is the default learner id for CLI and TUI commands.
	User string `yaml:"user"`

	HTTPAddr string `yaml:"http_addr"`

	// Seed fixes exercise selection. Zero picks a random seed.
	Seed uint64 `yaml:"seed"`

	// Watch reloads subject files when they change on disk.
	Watch bool `yaml:"watch"`

	LLM     LLMConfig        `yaml:"llm"`
	Texts   heuristics.Texts `yaml:"texts"`
	Prompts tutor.Prompts    `yaml:"prompts"`
	Logging LoggingConfig    `yaml:"logging"`
}

// LLMConfig holds the completion settings that may come from the file.
// API keys are read from the environment only.
type LLMConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	Template string `yaml:"template"`
	Timeout  string `yaml:"timeout"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // used by the TUI, which owns the terminal
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		DataDir:        "data",
		SessionBackend: BackendFile,
		SessionsDir:    ".sessions",
		User:           "default",
		HTTPAddr:       ":8080",
		LLM: LLMConfig{
			Provider: llm.ProviderDummy,
			Timeout:  "30s",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadDotEnv loads the given .env files, or ./.env when none are given.
// Missing files are ignored; variables already set are not overridden.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. An empty path or a missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("TUTORLY_DATA"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("TUTORLY_SESSION_BACKEND"); v != "" {
		c.SessionBackend = v
	}
	if v := os.Getenv("TUTORLY_SESSIONS"); v != "" {
		c.SessionsDir = v
	}
	if v := os.Getenv("TUTORLY_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("TUTORLY_USER"); v != "" {
		c.User = v
	}
	if v := os.Getenv("TUTORLY_HTTP_ADDR"); v != "" {
		c.HTTPAddr = v
	}
	if v := os.Getenv("TUTORLY_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = seed
		}
	}
	if v := os.Getenv("TUTORLY_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.SessionBackend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("unknown session backend %q (want %s or %s)", c.SessionBackend, BackendFile, BackendSQLite)
	}
	if c.LLM.Timeout != "" {
		if _, err := time.ParseDuration(c.LLM.Timeout); err != nil {
			return fmt.Errorf("invalid llm timeout %q: %w", c.LLM.Timeout, err)
		}
	}
	return nil
}

// LLMProviderConfig merges the file settings into the completion provider
// configuration. TUTORLY_* variables win over the file.
func (c *Config) LLMProviderConfig() llm.Config {
	cfg := llm.DefaultConfig()

	if c.LLM.Provider != "" {
		cfg.Provider = c.LLM.Provider
	}
	cfg.Template = c.LLM.Template
	if d, err := time.ParseDuration(c.LLM.Timeout); err == nil {
		cfg.Timeout = d
	}
	if c.LLM.Model != "" {
		switch cfg.Normalized() {
		case llm.ProviderAnthropic:
			cfg.Anthropic.Model = c.LLM.Model
		case llm.ProviderOpenAI:
			cfg.OpenAI.Model = c.LLM.Model
		case llm.ProviderGemini:
			cfg.Gemini.Model = c.LLM.Model
		case llm.ProviderOpenRouter:
			cfg.OpenRouter.Model = c.LLM.Model
		}
	}

	cfg.ApplyEnv()
	return cfg
}

// TutorConfig returns orchestrator settings with file overrides applied.
func (c *Config) TutorConfig() tutor.Config {
	cfg := tutor.DefaultConfig()
	cfg.Texts = c.Texts.Merge(cfg.Texts)
	cfg.Prompts = c.Prompts.Merge(cfg.Prompts)
	return cfg
}
