package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("applies defaults when only the api key is set", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-test")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
		assert.Equal(t, ":8080", cfg.HTTPAddr)
		assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAIModel)
		assert.Equal(t, 15*time.Second, cfg.GithubTimeout)
		assert.Equal(t, "2024-01-01", cfg.RecentActivityCutoff)
		assert.Equal(t, []string{"test", "hello-world", "my-project", "untitled", "new-project", "temp"}, cfg.GenericRepoNames)
		assert.Equal(t, 10, cfg.MinimalRepoSizeKB)
		assert.InDelta(t, 0.8, cfg.DefaultTemperature, 1e-9)
		assert.Equal(t, "https://api.github.com/", cfg.GithubAPIURL)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-test")
		t.Setenv("RECENT_ACTIVITY_CUTOFF", "2025-06-01")
		t.Setenv("GENERIC_REPO_NAMES", "Demo, scratch")
		t.Setenv("MINIMAL_REPO_SIZE_KB", "32")
		t.Setenv("GITHUB_API_URL", "http://localhost:9000")
		t.Setenv("GITHUB_TIMEOUT", "3s")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "2025-06-01", cfg.RecentActivityCutoff)
		assert.Equal(t, []string{"demo", "scratch"}, cfg.GenericRepoNames)
		assert.Equal(t, 32, cfg.MinimalRepoSizeKB)
		assert.Equal(t, "http://localhost:9000/", cfg.GithubAPIURL)
		assert.Equal(t, 3*time.Second, cfg.GithubTimeout)
	})

	t.Run("missing api key is rejected", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")

		_, err := LoadConfig()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	})

	t.Run("malformed cutoff is rejected", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-test")
		t.Setenv("RECENT_ACTIVITY_CUTOFF", "last year")

		_, err := LoadConfig()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "RECENT_ACTIVITY_CUTOFF")
	})

	t.Run("default temperature outside range is rejected", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-test")
		for _, value := range []string{"1.5", "NaN"} {
			t.Setenv("DEFAULT_TEMPERATURE", value)

			_, err := LoadConfig()

			require.Error(t, err, value)
		}
	})
}
