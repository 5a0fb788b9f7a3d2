package llm

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
)

// EmbedBatch embeds all texts in a single batched API call. The returned
// vectors are index-aligned with the input.
func (c *Client) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	em := c.client.EmbeddingModel(c.embeddingModel)
	batch := em.NewBatch()
	for _, t := range texts {
		batch = batch.AddContent(genai.Text(t))
	}

	resp, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, &ProviderError{Op: "embed", Cause: err}
	}

	if len(resp.Embeddings) != len(texts) {
		return nil, &ProviderError{
			Op:    "embed",
			Cause: fmt.Errorf("got %d embeddings for %d texts", len(resp.Embeddings), len(texts)),
		}
	}

	vectors := make([][]float32, len(resp.Embeddings))
	for i, e := range resp.Embeddings {
		if e == nil || len(e.Values) == 0 {
			return nil, &ProviderError{
				Op:    "embed",
				Cause: fmt.Errorf("empty embedding at index %d", i),
			}
		}
		vectors[i] = e.Values
	}
	return vectors, nil
}
