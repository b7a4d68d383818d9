package fetcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, 10, cfg.Parallelism)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxBodySize)
	assert.Equal(t, 5, cfg.MaxRedirects)
	assert.True(t, cfg.DenyPrivateIPs)

	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *ArticleFetchConfig)
	}{
		{"zero timeout", func(c *ArticleFetchConfig) { c.Timeout = 0 }},
		{"zero parallelism", func(c *ArticleFetchConfig) { c.Parallelism = 0 }},
		{"excessive parallelism", func(c *ArticleFetchConfig) { c.Parallelism = 100 }},
		{"tiny body size", func(c *ArticleFetchConfig) { c.MaxBodySize = 10 }},
		{"huge body size", func(c *ArticleFetchConfig) { c.MaxBodySize = 1 << 40 }},
		{"negative redirects", func(c *ArticleFetchConfig) { c.MaxRedirects = -1 }},
		{"excessive redirects", func(c *ArticleFetchConfig) { c.MaxRedirects = 20 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("ARTICLE_FETCH_ENABLED", "false")
	t.Setenv("ARTICLE_FETCH_TIMEOUT", "5s")
	t.Setenv("ARTICLE_FETCH_PARALLELISM", "3")
	t.Setenv("ARTICLE_FETCH_MAX_REDIRECTS", "2")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)

	assert.False(t, cfg.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.Parallelism)
	assert.Equal(t, 2, cfg.MaxRedirects)
}

func TestLoadConfigFromEnv_Malformed(t *testing.T) {
	t.Setenv("ARTICLE_FETCH_TIMEOUT", "pronto")

	_, err := LoadConfigFromEnv()
	require.Error(t, err)
}

func TestLoadConfigFromEnv_InvalidAfterOverride(t *testing.T) {
	t.Setenv("ARTICLE_FETCH_PARALLELISM", "500")

	_, err := LoadConfigFromEnv()
	require.Error(t, err, "out-of-range values fail validation")
}
