package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseExperience(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectedMin int
		expectedMax int
	}{
		{
			name:        "plus form",
			input:       "5+ years experience required",
			expectedMin: 5,
			expectedMax: 5,
		},
		{
			name:        "at least form",
			input:       "At least 3 years in backend development",
			expectedMin: 3,
			expectedMax: 3,
		},
		{
			name:        "more than form",
			input:       "more than 7 years working with Java",
			expectedMin: 7,
			expectedMax: 7,
		},
		{
			name:        "minimum of form",
			input:       "a minimum of 2 years is expected",
			expectedMin: 2,
			expectedMax: 2,
		},
		{
			name:        "range form",
			input:       "3-5 years",
			expectedMin: 3,
			expectedMax: 5,
		},
		{
			name:        "range form reversed bounds",
			input:       "5-3 years",
			expectedMin: 3,
			expectedMax: 5,
		},
		{
			name:        "bare years form",
			input:       "4 years of professional experience",
			expectedMin: 4,
			expectedMax: 4,
		},
		{
			name:        "entry level",
			input:       "entry level position",
			expectedMin: 0,
			expectedMax: 0,
		},
		{
			name:        "entry-level hyphenated",
			input:       "Entry-Level opening for new grads",
			expectedMin: 0,
			expectedMax: 0,
		},
		{
			name:        "fresher",
			input:       "freshers welcome",
			expectedMin: 0,
			expectedMax: 0,
		},
		{
			name:        "no requirement stated",
			input:       "great team culture",
			expectedMin: 0,
			expectedMax: 0,
		},
		{
			name:        "empty text",
			input:       "",
			expectedMin: 0,
			expectedMax: 0,
		},
		{
			name:        "plus form wins over bare form",
			input:       "10+ years leading teams of 4 engineers",
			expectedMin: 10,
			expectedMax: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max := ParseExperience(tt.input)
			assert.Equal(t, tt.expectedMin, min)
			assert.Equal(t, tt.expectedMax, max)
		})
	}
}
