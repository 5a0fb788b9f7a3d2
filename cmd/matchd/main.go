// Package main provides the entry point for the CareerK matching daemon.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "matchd",
	Short:   "CareerK candidate-to-opportunity matching engine",
	Long:    "matchd ranks job and service postings against developer profiles by blending semantic similarity, keyword overlap, skill intersection, and experience fit, with optional pairwise reranking.",
	Version: "0.1.0",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
