// Package config loads studykit settings from an optional YAML file, a
// local .env file and STUDYKIT_* environment variables, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/smarted/studykit/internal/llm"
	"github.com/smarted/studykit/internal/progress"
	"github.com/smarted/studykit/internal/retrieval"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "STUDYKIT"

type Config struct {
	// DBPath is empty when the store should pick its default location.
	DBPath    string
	Log       LogConfig
	LLM       llm.Config
	Retrieval retrieval.Config
	Progress  ProgressConfig
	Focus     FocusConfig
}

type LogConfig struct {
	Level  string
	Format string
}

type ProgressConfig struct {
	TrendWindow int
}

type FocusConfig struct {
	WorkMinutes  int
	BreakMinutes int
}

// DefaultPath returns $XDG_CONFIG_HOME/studykit/config.yaml.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "studykit", "config.yaml")
}

// Load reads configuration. An explicit path must exist; the default path
// is optional.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			switch {
			case explicit:
				return nil, fmt.Errorf("read config %s: %w", path, err)
			case errors.As(err, &notFound), errors.Is(err, os.ErrNotExist):
			default:
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	cfg := &Config{
		DBPath: v.GetString("db"),
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Retrieval: retrieval.Config{
			MaxContextLength: v.GetInt("retrieval.max_context_length"),
			MaxChunks:        v.GetInt("retrieval.max_chunks"),
		},
		Progress: ProgressConfig{
			TrendWindow: v.GetInt("progress.trend_window"),
		},
		Focus: FocusConfig{
			WorkMinutes:  v.GetInt("focus.work_minutes"),
			BreakMinutes: v.GetInt("focus.break_minutes"),
		},
	}
	cfg.LLM = loadLLM(v)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadLLM(v *viper.Viper) llm.Config {
	c := llm.DefaultConfig()

	c.Gemini.APIKey = v.GetString("gemini.api_key")
	c.Gemini.Model = v.GetString("gemini.model")
	c.OpenAI.APIKey = v.GetString("openai.api_key")
	c.OpenAI.Model = v.GetString("openai.model")
	c.OpenAI.BaseURL = v.GetString("openai.base_url")
	c.Anthropic.APIKey = v.GetString("anthropic.api_key")
	c.Anthropic.Model = v.GetString("anthropic.model")
	c.OpenRouter.APIKey = v.GetString("openrouter.api_key")
	c.OpenRouter.Model = v.GetString("openrouter.model")
	c.OpenRouter.BaseURL = v.GetString("openrouter.base_url")

	c.Retry.MaxAttempts = v.GetInt("retry.max_attempts")
	c.Retry.InitialWait = v.GetDuration("retry.initial_wait")
	c.Retry.MaxWait = v.GetDuration("retry.max_wait")
	c.Retry.Multiplier = v.GetFloat64("retry.multiplier")
	c.Timeout = v.GetDuration("llm_timeout")

	// Vendor env vars fill any key the config left empty, whichever
	// provider is selected.
	found := llm.DiscoverKeys()
	c.Gemini.APIKey = orDefault(c.Gemini.APIKey, found.Gemini.APIKey)
	c.OpenAI.APIKey = orDefault(c.OpenAI.APIKey, found.OpenAI.APIKey)
	c.Anthropic.APIKey = orDefault(c.Anthropic.APIKey, found.Anthropic.APIKey)
	c.OpenRouter.APIKey = orDefault(c.OpenRouter.APIKey, found.OpenRouter.APIKey)

	if p := v.GetString("llm_provider"); p != "" {
		c.Provider = p
	} else if p := c.KeyedProvider(); p != "" {
		c.Provider = p
	}
	return c
}

func setDefaults(v *viper.Viper) {
	d := llm.DefaultConfig()

	v.SetDefault("db", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")

	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", d.Gemini.Model)
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.model", d.OpenAI.Model)
	v.SetDefault("openai.base_url", "")
	v.SetDefault("anthropic.api_key", "")
	v.SetDefault("anthropic.model", d.Anthropic.Model)
	v.SetDefault("openrouter.api_key", "")
	v.SetDefault("openrouter.model", d.OpenRouter.Model)
	v.SetDefault("openrouter.base_url", "")

	v.SetDefault("retry.max_attempts", d.Retry.MaxAttempts)
	v.SetDefault("retry.initial_wait", d.Retry.InitialWait)
	v.SetDefault("retry.max_wait", d.Retry.MaxWait)
	v.SetDefault("retry.multiplier", d.Retry.Multiplier)
	v.SetDefault("llm_timeout", d.Timeout)

	r := retrieval.DefaultConfig()
	v.SetDefault("retrieval.max_context_length", r.MaxContextLength)
	v.SetDefault("retrieval.max_chunks", r.MaxChunks)

	v.SetDefault("progress.trend_window", progress.DefaultTrendWindow)
	v.SetDefault("focus.work_minutes", 25)
	v.SetDefault("focus.break_minutes", 5)
}

// Validate checks settings that do not depend on the chosen command. LLM
// credentials are checked lazily by the commands that need a model.
func (c *Config) Validate() error {
	if err := c.Retrieval.Validate(); err != nil {
		return err
	}
	if c.Progress.TrendWindow <= 0 {
		return fmt.Errorf("progress.trend_window must be positive, got %d", c.Progress.TrendWindow)
	}
	if c.Focus.WorkMinutes <= 0 || c.Focus.BreakMinutes <= 0 {
		return fmt.Errorf("focus durations must be positive, got work=%d break=%d",
			c.Focus.WorkMinutes, c.Focus.BreakMinutes)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	return nil
}

func orDefault(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
