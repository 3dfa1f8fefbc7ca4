package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"currency-console/internal/fixer"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("FIXER_KEY", " secret ")
		t.Setenv("FIXER_URL", "")
		t.Setenv("HTTP_TIMEOUT", "")
		t.Setenv("DATABASE_URL", "")
		t.Setenv("LOG_LEVEL", "")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "secret", cfg.FixerKey)
		assert.Equal(t, fixer.DefaultBaseURL, cfg.FixerURL)
		assert.Equal(t, 20*time.Second, cfg.HTTPTimeout)
		assert.Empty(t, cfg.DatabaseURL)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("FIXER_KEY", "secret")
		t.Setenv("FIXER_URL", "http://localhost:9000/api")
		t.Setenv("HTTP_TIMEOUT", "3s")
		t.Setenv("DATABASE_URL", "postgres://localhost/currency")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("NO_COLOR", "1")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9000/api", cfg.FixerURL)
		assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, "postgres://localhost/currency", cfg.DatabaseURL)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.True(t, cfg.NoColor)
	})

	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "missing key", env: map[string]string{"FIXER_KEY": ""}, want: "FIXER_KEY is empty"},
		{name: "bad timeout", env: map[string]string{"FIXER_KEY": "k", "HTTP_TIMEOUT": "soon"}, want: "HTTP_TIMEOUT"},
		{name: "negative timeout", env: map[string]string{"FIXER_KEY": "k", "HTTP_TIMEOUT": "-1s"}, want: "HTTP_TIMEOUT"},
		{name: "bad level", env: map[string]string{"FIXER_KEY": "k", "LOG_LEVEL": "loud"}, want: "LOG_LEVEL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HTTP_TIMEOUT", "")
			t.Setenv("LOG_LEVEL", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
