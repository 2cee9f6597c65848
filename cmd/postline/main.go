package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abdulachik/postline/internal/config"
	"github.com/abdulachik/postline/internal/manager"
	"github.com/abdulachik/postline/internal/reddit"
)

var rootCmd = &cobra.Command{
	Use:   "postline",
	Short: "Manage social media posts from the command line",
	Long: `Postline manages posts on Reddit: create, read, update, and
delete them from the command line, or through the form-based web UI
started with 'postline serve'.`,
}

func init() {
	// Load .env file if present
	_ = godotenv.Load()

	// Set up logging
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// newManager wires the Reddit client behind the post manager. Missing
// credentials are a fatal configuration error before any command runs.
func newManager() (*manager.Manager, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if err := cfg.ValidateForReddit(); err != nil {
		return nil, nil, fmt.Errorf("validate config: %w", err)
	}

	client := reddit.New(reddit.Config{
		ClientID:     cfg.RedditClientID,
		ClientSecret: cfg.RedditClientSecret,
		Username:     cfg.RedditUsername,
		Password:     cfg.RedditPassword,
		UserAgent:    cfg.RedditUserAgent,
		Timeout:      cfg.HTTPTimeout,
	})

	return manager.New(client, slog.Default()), cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
