package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/setclassname/internal/config"
	"github.com/vango-dev/setclassname/pkg/classname"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ENVIRONMENT", "CLASSNAME_PREFIX", "CLASSNAME_DEBUG",
		"RECIPES_PATH", "WATCH_RECIPES", "PREFS_SECRET",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.True(t, cfg.WatchRecipes)
	assert.Len(t, cfg.PrefsSecret, 64)
	assert.Equal(t, classname.Config{}, cfg.Resolver())
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("CLASSNAME_PREFIX", "tw-")
	t.Setenv("CLASSNAME_DEBUG", "true")
	t.Setenv("WATCH_RECIPES", "false")
	t.Setenv("PREFS_SECRET", strings.Repeat("s", 64))

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.False(t, cfg.WatchRecipes)
	assert.Equal(t, classname.Config{Prefix: "tw-", Debug: true}, cfg.Resolver())
}

func TestLoadValidatesSecret(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		secret      string
	}{
		{"production requires secret", "production", ""},
		{"short secret", "development", "too-short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("ENVIRONMENT", tt.environment)
			t.Setenv("PREFS_SECRET", tt.secret)

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
