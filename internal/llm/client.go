// Package llm provides the model-backed capabilities the matching engine
// depends on: batched text embedding and pairwise relevance scoring.
package llm

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Embedder produces dense vector embeddings for texts. Implementations must
// be safe for concurrent use and must return one vector per input text,
// index-aligned with the input.
type Embedder interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// PairScorer scores (query, document) pairs for relevance. Implementations
// must be safe for concurrent use and must return one score per pair,
// index-aligned with the input. Scores are expected in [0, 1].
type PairScorer interface {
	ScorePairs(ctx context.Context, pairs []Pair) ([]float64, error)
}

// Pair is one (query, document) input to a PairScorer.
type Pair struct {
	Query    string
	Document string
}

// Default model names for the Gemini provider.
const (
	DefaultEmbeddingModel = "text-embedding-004"
	DefaultJudgeModel     = "gemini-2.0-flash-lite"
)

// Client bundles both capabilities behind one Gemini connection. Construct
// one at process start and inject it where an Embedder or PairScorer is
// needed.
type Client struct {
	client         *genai.Client
	embeddingModel string
	judgeModel     string
}

// NewClient creates a Gemini-backed client.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		client:         client,
		embeddingModel: DefaultEmbeddingModel,
		judgeModel:     DefaultJudgeModel,
	}, nil
}

// Close releases resources held by the client.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
