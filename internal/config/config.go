package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/vango-dev/setclassname/pkg/classname"
)

// Config holds all configuration for the playground server.
type Config struct {
	// Server
	Port        string
	Environment string // development, staging, production

	// Resolver defaults
	Prefix string
	Debug  bool

	// Recipes
	RecipesPath  string
	WatchRecipes bool

	// Preferences cookie
	PrefsSecret string
	PrefsMaxAge time.Duration
}

// Load reads configuration from environment variables.
// In development, it will also load from a .env file if present.
func Load() (*Config, error) {
	// Load .env file in development (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		Prefix: os.Getenv("CLASSNAME_PREFIX"),
		Debug:  getBool("CLASSNAME_DEBUG", false),

		RecipesPath:  os.Getenv("RECIPES_PATH"),
		WatchRecipes: getBool("WATCH_RECIPES", true),

		PrefsSecret: os.Getenv("PREFS_SECRET"),
		PrefsMaxAge: 30 * 24 * time.Hour,
	}

	if cfg.PrefsSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("PREFS_SECRET is required in production")
		}
		secret, err := randomSecret()
		if err != nil {
			return nil, fmt.Errorf("generate prefs secret: %w", err)
		}
		cfg.PrefsSecret = secret
	}

	// 32 bytes hash key + 32 bytes block key
	if len(cfg.PrefsSecret) < 64 {
		return nil, fmt.Errorf("PREFS_SECRET must be at least 64 characters, got %d", len(cfg.PrefsSecret))
	}

	return cfg, nil
}

// Resolver returns the default resolver configuration.
func (c *Config) Resolver() classname.Config {
	return classname.Config{Prefix: c.Prefix, Debug: c.Debug}
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv returns the value of an environment variable or a fallback default.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
