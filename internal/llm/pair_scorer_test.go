package llm

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain JSON",
			input:    `[0.8, 0.4]`,
			expected: `[0.8, 0.4]`,
		},
		{
			name:     "json fenced block",
			input:    "```json\n[0.8, 0.4]\n```",
			expected: `[0.8, 0.4]`,
		},
		{
			name:     "bare fenced block",
			input:    "```\n[0.8, 0.4]\n```",
			expected: `[0.8, 0.4]`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n[1.0]\n  ",
			expected: `[1.0]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanJSONBlock(tt.input))
		})
	}
}

func TestFormatPairs(t *testing.T) {
	got := formatPairs([]Pair{
		{Query: "go developer", Document: "backend role"},
		{Query: "go developer", Document: "data role"},
	})

	assert.Contains(t, got, "Pair 1:")
	assert.Contains(t, got, "Pair 2:")
	assert.Contains(t, got, "CANDIDATE: go developer")
	assert.Contains(t, got, "POSTING: data role")
	assert.Less(t, strings.Index(got, "backend role"), strings.Index(got, "data role"))
}

func TestProviderError_Unwrap(t *testing.T) {
	cause := errors.New("quota exceeded")
	err := &ProviderError{Op: "score_pairs", Cause: cause}

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "score_pairs")
	assert.Contains(t, err.Error(), "quota exceeded")
}
