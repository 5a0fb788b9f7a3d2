package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Abdelrhman-tamer/CareerK-AI/internal/config"
	"github.com/Abdelrhman-tamer/CareerK-AI/internal/llm"
	"github.com/Abdelrhman-tamer/CareerK-AI/internal/matching"
	"github.com/Abdelrhman-tamer/CareerK-AI/internal/server"
	"github.com/Abdelrhman-tamer/CareerK-AI/internal/skills"
)

var (
	servePort       int
	serveConfigPath string
	serveVocabPath  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes a recommendation endpoint ranking job and service postings for a developer profile.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to a JSON config file")
	serveCmd.Flags().StringVar(&serveVocabPath, "vocab", "", "Path to the skills vocabulary JSON file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if serveVocabPath != "" {
		cfg.VocabularyPath = serveVocabPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	matcher, err := loadMatcher(cfg.VocabularyPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	logger := log.New(os.Stderr, "[matchd] ", log.LstdFlags)
	engine := matching.NewEngine(client, client, matcher, cfg.MatchingOptions(), logger)

	srv := server.New(server.Config{Port: cfg.Port}, engine, logger)

	// Shut down cleanly on SIGINT/SIGTERM.
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Printf("received %s, shutting down", sig)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		return nil
	}
}

// resolveConfig loads the config file when --config is set, otherwise
// returns an empty config that relies on flags and environment.
func resolveConfig(path string) (*config.Config, error) {
	if path == "" {
		return &config.Config{}, nil
	}
	return config.LoadConfig(path)
}

// loadMatcher builds the skill matcher from a vocabulary file. Without a
// vocabulary the matcher only sees the developer's declared skills.
func loadMatcher(path string) (*skills.Matcher, error) {
	if path == "" {
		return skills.NewMatcher(nil), nil
	}
	vocab, err := skills.LoadVocabulary(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load vocabulary: %w", err)
	}
	return skills.NewMatcher(vocab), nil
}
