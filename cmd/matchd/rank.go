package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Abdelrhman-tamer/CareerK-AI/internal/llm"
	"github.com/Abdelrhman-tamer/CareerK-AI/internal/matching"
	"github.com/Abdelrhman-tamer/CareerK-AI/internal/store"
	"github.com/Abdelrhman-tamer/CareerK-AI/internal/types"
)

var (
	rankDeveloperID string
	rankDatabaseURL string
	rankConfigPath  string
	rankVocabPath   string
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank open postings for a developer",
	Long:  `Fetch a developer profile and all open job and service postings from the database, score them, and print ranked recommendations as JSON.`,
	RunE:  runRank,
}

func init() {
	rankCmd.Flags().StringVar(&rankDeveloperID, "developer", "", "Developer UUID (required)")
	rankCmd.Flags().StringVar(&rankDatabaseURL, "database-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL)")
	rankCmd.Flags().StringVar(&rankConfigPath, "config", "", "Path to a JSON config file")
	rankCmd.Flags().StringVar(&rankVocabPath, "vocab", "", "Path to the skills vocabulary JSON file")
	_ = rankCmd.MarkFlagRequired("developer")
	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	developerID, err := uuid.Parse(rankDeveloperID)
	if err != nil {
		return fmt.Errorf("invalid developer ID %q: %w", rankDeveloperID, err)
	}

	cfg, err := resolveConfig(rankConfigPath)
	if err != nil {
		return err
	}
	if rankVocabPath != "" {
		cfg.VocabularyPath = rankVocabPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	databaseURL := rankDatabaseURL
	if databaseURL == "" {
		databaseURL = cfg.DatabaseURL
	}
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
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

	db, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	client, err := llm.NewClient(ctx, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	developer, err := db.GetDeveloperProfile(ctx, developerID)
	if err != nil {
		return fmt.Errorf("failed to load developer: %w", err)
	}

	jobs, err := db.ListOpenJobPostings(ctx)
	if err != nil {
		return fmt.Errorf("failed to load job postings: %w", err)
	}

	services, err := db.ListOpenServicePostings(ctx)
	if err != nil {
		return fmt.Errorf("failed to load service postings: %w", err)
	}

	logger := log.New(os.Stderr, "[matchd] ", log.LstdFlags)
	engine := matching.NewEngine(client, client, matcher, cfg.MatchingOptions(), logger)

	resp, err := engine.ScoreAndRank(ctx, &types.RecommendationRequest{
		Developer:    developer,
		JobPosts:     jobs,
		ServicePosts: services,
	})
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
