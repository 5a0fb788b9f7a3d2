package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
)

const pairJudgePrompt = `You are a relevance judge for a job marketplace.
For each numbered pair below, rate how relevant the POSTING is to the
CANDIDATE on a scale from 0.0 (unrelated) to 1.0 (excellent fit).

Respond with a JSON array of numbers, one per pair, in order.
Example for three pairs: [0.82, 0.4, 0.11]

%s`

// ScorePairs scores all pairs in a single model call and returns one score
// per pair, index-aligned and clamped to [0, 1].
func (c *Client) ScorePairs(ctx context.Context, pairs []Pair) ([]float64, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	model := c.client.GenerativeModel(c.judgeModel)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(pairJudgePrompt, formatPairs(pairs))))
	if err != nil {
		return nil, &ProviderError{Op: "score_pairs", Cause: err}
	}

	raw, err := extractText(resp)
	if err != nil {
		return nil, &ProviderError{Op: "score_pairs", Cause: err}
	}

	var scores []float64
	if err := json.Unmarshal([]byte(cleanJSONBlock(raw)), &scores); err != nil {
		return nil, &ProviderError{
			Op:    "score_pairs",
			Cause: fmt.Errorf("failed to parse judge response: %w (content: %s)", err, raw),
		}
	}

	if len(scores) != len(pairs) {
		return nil, &ProviderError{
			Op:    "score_pairs",
			Cause: fmt.Errorf("got %d scores for %d pairs", len(scores), len(pairs)),
		}
	}

	for i, s := range scores {
		if s < 0 {
			scores[i] = 0
		}
		if s > 1 {
			scores[i] = 1
		}
	}
	return scores, nil
}

func formatPairs(pairs []Pair) string {
	var b strings.Builder
	for i, p := range pairs {
		fmt.Fprintf(&b, "Pair %d:\nCANDIDATE: %s\nPOSTING: %s\n\n", i+1, p.Query, p.Document)
	}
	return b.String()
}

// extractText pulls the text parts out of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
