package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitTFIDF_IdenticalTexts(t *testing.T) {
	v := fitTFIDF([]string{"python sql docker", "python sql docker"})
	assert.InDelta(t, 1.0, v.similarity(0, 1), 1e-9)
}

func TestFitTFIDF_DisjointTexts(t *testing.T) {
	v := fitTFIDF([]string{"python sql", "rust embedded"})
	assert.InDelta(t, 0.0, v.similarity(0, 1), 1e-9)
}

func TestFitTFIDF_PartialOverlapOrdering(t *testing.T) {
	v := fitTFIDF([]string{
		"python sql docker",
		"python sql aws",
		"java spring hibernate",
	})

	near := v.similarity(0, 1)
	far := v.similarity(0, 2)
	assert.Greater(t, near, far)
	assert.Greater(t, near, 0.0)
	assert.Equal(t, 0.0, far)
}

func TestFitTFIDF_EmptyText(t *testing.T) {
	v := fitTFIDF([]string{"", "python"})
	assert.Equal(t, 0.0, v.similarity(0, 1))
}

func TestCosine32(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float64
	}{
		{"parallel", []float32{1, 0}, []float32{2, 0}, 1.0},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0.0},
		{"negative clamped to zero", []float32{1, 0}, []float32{-1, 0}, 0.0},
		{"zero vector", []float32{0, 0}, []float32{1, 0}, 0.0},
		{"length mismatch", []float32{1, 0}, []float32{1}, 0.0},
		{"empty", nil, nil, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, cosine32(tt.a, tt.b), 1e-9)
		})
	}
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 0.9333, round4(0.93333333))
	assert.Equal(t, 0.67, round2(2.0/3.0))
}
