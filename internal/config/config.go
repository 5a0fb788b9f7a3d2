// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Abdelrhman-tamer/CareerK-AI/internal/matching"
)

// Config is the service configuration, loadable from a JSON file. All fields
// are optional; missing values use defaults or must be provided via CLI
// flags or environment.
type Config struct {
	// Behavior
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key
	DatabaseURL    string `json:"database_url,omitempty"`    // PostgreSQL connection URL
	VocabularyPath string `json:"vocabulary_path,omitempty"` // Path to the skills JSON dataset
	Port           int    `json:"port,omitempty"`            // HTTP listen port

	// Ranking
	Preset        string            `json:"preset,omitempty"` // "two-stage" (default) or "simple"
	Cutoff        *float64          `json:"cutoff,omitempty"` // overrides the preset's minimum score
	RerankEnabled *bool             `json:"rerank,omitempty"` // overrides the preset's rerank toggle
	RerankTopN    int               `json:"rerank_top_n,omitempty"`
	Weights       *matching.Weights `json:"weights,omitempty"` // overrides both posting types
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Preset != "" && c.Preset != "simple" && c.Preset != "two-stage" {
		return fmt.Errorf("config error: unknown preset %q", c.Preset)
	}
	if c.Cutoff != nil && (*c.Cutoff < 0 || *c.Cutoff > 1) {
		return fmt.Errorf("config error: 'cutoff' must be in [0, 1]")
	}
	if c.RerankTopN < 0 {
		return fmt.Errorf("config error: 'rerank_top_n' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range")
	}
	if c.VocabularyPath != "" {
		if _, err := os.Stat(c.VocabularyPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: vocabulary file not found: %s", c.VocabularyPath)
		}
	}
	return nil
}

// MatchingOptions resolves the configured preset and applies overrides.
func (c *Config) MatchingOptions() matching.Options {
	opts := matching.Preset(c.Preset)
	if c.Cutoff != nil {
		opts.Cutoff = c.Cutoff
	}
	if c.RerankEnabled != nil {
		opts.RerankEnabled = *c.RerankEnabled
	}
	if c.RerankTopN > 0 {
		opts.RerankTopN = c.RerankTopN
	}
	if c.Weights != nil {
		opts.JobWeights = *c.Weights
		opts.ServiceWeights = *c.Weights
	}
	return opts
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. CLI flags always win over both.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.VocabularyPath == "" {
		result.VocabularyPath = defaults.VocabularyPath
	}
	if result.Preset == "" {
		result.Preset = defaults.Preset
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.RerankTopN == 0 {
		result.RerankTopN = defaults.RerankTopN
	}
	if result.Cutoff == nil {
		result.Cutoff = defaults.Cutoff
	}
	if result.RerankEnabled == nil {
		result.RerankEnabled = defaults.RerankEnabled
	}
	if result.Weights == nil {
		result.Weights = defaults.Weights
	}

	return result
}
