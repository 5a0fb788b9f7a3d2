package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdelrhman-tamer/CareerK-AI/internal/matching"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `{
		"api_key": "test-key",
		"preset": "simple",
		"cutoff": 0.4,
		"rerank": false,
		"port": 8080
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "simple", cfg.Preset)
	require.NotNil(t, cfg.Cutoff)
	assert.Equal(t, 0.4, *cfg.Cutoff)
	require.NotNil(t, cfg.RerankEnabled)
	assert.False(t, *cfg.RerankEnabled)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	bad := 1.5
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty config", Config{}, false},
		{"known preset", Config{Preset: "two-stage"}, false},
		{"unknown preset", Config{Preset: "fancy"}, true},
		{"cutoff out of range", Config{Cutoff: &bad}, true},
		{"negative top n", Config{RerankTopN: -1}, true},
		{"port out of range", Config{Port: 99999}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMatchingOptions_PresetAndOverrides(t *testing.T) {
	cutoff := 0.25
	cfg := Config{
		Preset:     "two-stage",
		Cutoff:     &cutoff,
		RerankTopN: 5,
		Weights:    &matching.Weights{Semantic: 0.6, Lexical: 0.2, Skill: 0.2},
	}

	opts := cfg.MatchingOptions()
	require.NotNil(t, opts.Cutoff)
	assert.Equal(t, 0.25, *opts.Cutoff)
	assert.Equal(t, 5, opts.RerankTopN)
	assert.Equal(t, 0.6, opts.JobWeights.Semantic)
	assert.Equal(t, opts.JobWeights, opts.ServiceWeights)
	assert.True(t, opts.RerankEnabled)
}

func TestMatchingOptions_SimplePresetDefaults(t *testing.T) {
	cfg := Config{Preset: "simple"}
	opts := cfg.MatchingOptions()

	assert.False(t, opts.RerankEnabled)
	require.NotNil(t, opts.Cutoff)
	assert.Equal(t, 0.4, *opts.Cutoff)
	assert.Equal(t, 0.65, opts.JobWeights.Semantic)
	assert.Equal(t, 0.5, opts.ServiceWeights.Skill)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{APIKey: "default-key", Port: 8080, Preset: "two-stage"}
	cfg := Config{APIKey: "explicit-key"}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, "explicit-key", merged.APIKey)
	assert.Equal(t, 8080, merged.Port)
	assert.Equal(t, "two-stage", merged.Preset)
}
