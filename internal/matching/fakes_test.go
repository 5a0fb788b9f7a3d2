package matching

import (
	"context"
	"hash/fnv"
	"math"
	"sync"

	"github.com/Abdelrhman-tamer/CareerK-AI/internal/llm"
)

// fakeEmbedder is a deterministic test double for llm.Embedder. When
// EmbedBatchFunc is unset it derives a unit vector from each text's hash, so
// identical texts always embed identically. Safe for the concurrent calls
// ScoreAndRank makes for the two posting types.
type fakeEmbedder struct {
	EmbedBatchFunc func(ctx context.Context, texts []string) ([][]float32, error)

	mu        sync.Mutex
	calls     int
	lastTexts []string
}

func (f *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	f.mu.Lock()
	f.calls++
	f.lastTexts = texts
	f.mu.Unlock()

	if f.EmbedBatchFunc != nil {
		return f.EmbedBatchFunc(ctx, texts)
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = hashVector(t, 16)
	}
	return out, nil
}

// fakePairScorer is a test double for llm.PairScorer.
type fakePairScorer struct {
	ScorePairsFunc func(ctx context.Context, pairs []llm.Pair) ([]float64, error)

	mu        sync.Mutex
	calls     int
	lastPairs []llm.Pair
}

func (f *fakePairScorer) ScorePairs(ctx context.Context, pairs []llm.Pair) ([]float64, error) {
	f.mu.Lock()
	f.calls++
	f.lastPairs = pairs
	f.mu.Unlock()

	if f.ScorePairsFunc != nil {
		return f.ScorePairsFunc(ctx, pairs)
	}
	scores := make([]float64, len(pairs))
	for i := range pairs {
		scores[i] = 0.5
	}
	return scores, nil
}

// hashVector produces a deterministic unit vector from text.
func hashVector(text string, dim int) []float32 {
	h := fnv.New32a()
	h.Write([]byte(text))
	seed := h.Sum32()

	vec := make([]float32, dim)
	var sum float64
	for i := range vec {
		seed = seed*1664525 + 1013904223
		vec[i] = float32(seed%1000) / 1000.0
		sum += float64(vec[i]) * float64(vec[i])
	}
	if sum > 0 {
		norm := float32(math.Sqrt(sum))
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}
