// internal/config/config.go
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github-roaster/internal/model"
)

// Config holds all configuration for the application.
type Config struct {
	LogLevel             string        `mapstructure:"LOG_LEVEL"`
	HTTPAddr             string        `mapstructure:"HTTP_ADDR"`
	OpenAIAPIKey         string        `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL        string        `mapstructure:"OPENAI_BASE_URL"`
	OpenAIModel          string        `mapstructure:"OPENAI_MODEL"`
	OpenAITimeout        time.Duration `mapstructure:"OPENAI_TIMEOUT"`
	GithubAPIURL         string        `mapstructure:"GITHUB_API_URL"`
	GithubTimeout        time.Duration `mapstructure:"GITHUB_TIMEOUT"`
	RecentActivityCutoff string        `mapstructure:"RECENT_ACTIVITY_CUTOFF"`
	GenericRepoNames     []string      `mapstructure:"GENERIC_REPO_NAMES"`
	MinimalRepoSizeKB    int           `mapstructure:"MINIMAL_REPO_SIZE_KB"`
	DefaultTemperature   float64       `mapstructure:"DEFAULT_TEMPERATURE"`
	RateLimitRPS         float64       `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst       int           `mapstructure:"RATE_LIMIT_BURST"`
}

var defaults = map[string]any{
	"LOG_LEVEL":              "info",
	"HTTP_ADDR":              ":8080",
	"OPENAI_API_KEY":         "",
	"OPENAI_BASE_URL":        "https://api.openai.com/v1",
	"OPENAI_MODEL":           "gpt-3.5-turbo",
	"OPENAI_TIMEOUT":         "60s",
	"GITHUB_API_URL":         "https://api.github.com/",
	"GITHUB_TIMEOUT":         "15s",
	"RECENT_ACTIVITY_CUTOFF": "2024-01-01",
	"GENERIC_REPO_NAMES":     []string{"test", "hello-world", "my-project", "untitled", "new-project", "temp"},
	"MINIMAL_REPO_SIZE_KB":   10,
	"DEFAULT_TEMPERATURE":    0.8,
	"RATE_LIMIT_RPS":         1.0,
	"RATE_LIMIT_BURST":       5,
}

// LoadConfig reads configuration from file and/or environment variables.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Every key gets a default so that AutomaticEnv values are picked up by Unmarshal.
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// Load from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // Ignore error if file not found

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.GenericRepoNames = normalizeNames(cfg.GenericRepoNames)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.OpenAIAPIKey == "" {
		return errors.New("OPENAI_API_KEY is a required configuration field")
	}
	if _, err := time.Parse(time.DateOnly, c.RecentActivityCutoff); err != nil {
		return errors.New("RECENT_ACTIVITY_CUTOFF must be a date in YYYY-MM-DD format (e.g. 2024-01-01)")
	}
	if !model.ValidTemperature(c.DefaultTemperature) {
		return errors.New("DEFAULT_TEMPERATURE must be between 0.1 and 1.0")
	}
	if c.MinimalRepoSizeKB <= 0 {
		return errors.New("MINIMAL_REPO_SIZE_KB must be a positive number of kilobytes")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if c.GithubAPIURL != "" && !strings.HasSuffix(c.GithubAPIURL, "/") {
		c.GithubAPIURL += "/"
	}
	return nil
}

// normalizeNames lowercases and trims the denylist, dropping blank entries.
func normalizeNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}
