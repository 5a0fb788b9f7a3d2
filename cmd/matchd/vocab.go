package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Abdelrhman-tamer/CareerK-AI/internal/skills"
)

var (
	vocabInput  string
	vocabOutput string
	vocabColumn string
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Convert a skills CSV dataset to a vocabulary JSON file",
	Long:  `Read skill names from a CSV column, drop entries that normalize to noise (digits, symbols, single letters), and write the deduplicated sorted vocabulary as a JSON array.`,
	RunE:  runVocab,
}

func init() {
	vocabCmd.Flags().StringVar(&vocabInput, "input", "", "Input CSV file (required)")
	vocabCmd.Flags().StringVar(&vocabOutput, "output", "", "Output JSON file (required)")
	vocabCmd.Flags().StringVar(&vocabColumn, "column", "title", "CSV column holding the skill name")
	_ = vocabCmd.MarkFlagRequired("input")
	_ = vocabCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(vocabCmd)
}

func runVocab(_ *cobra.Command, _ []string) error {
	f, err := os.Open(vocabInput)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read CSV header: %w", err)
	}

	col := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), vocabColumn) {
			col = i
			break
		}
	}
	if col == -1 {
		return fmt.Errorf("column %q not found in CSV header", vocabColumn)
	}

	var raw []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read CSV record: %w", err)
		}
		if col >= len(record) {
			continue
		}
		raw = append(raw, record[col])
	}

	vocab := skills.BuildVocabulary(raw)

	data, err := json.MarshalIndent(vocab, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode vocabulary: %w", err)
	}
	if err := os.WriteFile(vocabOutput, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Printf("Wrote %d skills to %s (from %d raw entries)\n", len(vocab), vocabOutput, len(raw))
	return nil
}
