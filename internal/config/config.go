package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Reddit credentials (script-type app, password grant)
	RedditClientID     string
	RedditClientSecret string
	RedditUsername     string
	RedditPassword     string
	RedditUserAgent    string

	// Web UI
	ListenAddr string

	// HTTP transport
	HTTPTimeout time.Duration

	// Logging
	LogLevel string
}

// redditVars are the environment variables required before any Reddit
// call can be made. None of them has a default.
var redditVars = []string{
	"REDDIT_CLIENT_ID",
	"REDDIT_CLIENT_SECRET",
	"REDDIT_USERNAME",
	"REDDIT_PASSWORD",
	"REDDIT_USER_AGENT",
}

// Load reads configuration from environment variables.
// It automatically loads .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		RedditClientID:     os.Getenv("REDDIT_CLIENT_ID"),
		RedditClientSecret: os.Getenv("REDDIT_CLIENT_SECRET"),
		RedditUsername:     os.Getenv("REDDIT_USERNAME"),
		RedditPassword:     os.Getenv("REDDIT_PASSWORD"),
		RedditUserAgent:    os.Getenv("REDDIT_USER_AGENT"),
		ListenAddr:         getEnv("LISTEN_ADDR", ":8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}

	var err error
	cfg.HTTPTimeout, err = time.ParseDuration(getEnv("HTTP_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}

	return cfg, nil
}

// ValidateForReddit checks that every Reddit credential is present.
// All missing variables are reported in a single error, not just the
// first one found.
func (c *Config) ValidateForReddit() error {
	values := map[string]string{
		"REDDIT_CLIENT_ID":     c.RedditClientID,
		"REDDIT_CLIENT_SECRET": c.RedditClientSecret,
		"REDDIT_USERNAME":      c.RedditUsername,
		"REDDIT_PASSWORD":      c.RedditPassword,
		"REDDIT_USER_AGENT":    c.RedditUserAgent,
	}

	var missing []string
	for _, name := range redditVars {
		if values[name] == "" {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateForServe checks all configuration needed for the web UI.
func (c *Config) ValidateForServe() error {
	if err := c.ValidateForReddit(); err != nil {
		return err
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("LISTEN_ADDR is required")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
