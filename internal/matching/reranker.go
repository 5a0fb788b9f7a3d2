package matching

import (
	"context"
	"fmt"
	"sort"

	"github.com/Abdelrhman-tamer/CareerK-AI/internal/llm"
	"github.com/Abdelrhman-tamer/CareerK-AI/internal/types"
)

// rerank runs stage two: the top-N results from the initial ranking are
// rescored with one batched pairwise call and re-sorted within that subset.
// Results below the top N keep their initial score and relative order.
func (e *Engine) rerank(ctx context.Context, pc profileContext, docs []document, initial []types.ScoredResult) ([]types.ScoredResult, error) {
	topN := e.opts.RerankTopN
	if topN <= 0 || len(initial) == 0 || e.pairs == nil {
		return initial, nil
	}
	if topN > len(initial) {
		topN = len(initial)
	}

	byID := make(map[string]string, len(docs))
	for _, d := range docs {
		byID[d.id] = d.text
	}

	pairs := make([]llm.Pair, 0, topN)
	for _, r := range initial[:topN] {
		pairs = append(pairs, llm.Pair{Query: pc.text, Document: byID[r.ID]})
	}

	pairScores, err := e.pairs.ScorePairs(ctx, pairs)
	if err != nil {
		return nil, fmt.Errorf("reranking top %d: %w", topN, err)
	}

	blend := e.opts.RerankBlend
	rescored := make([]types.ScoredResult, topN)
	for i, r := range initial[:topN] {
		r.FinalScore = round4(blend.Original*r.FinalScore + blend.Pairwise*pairScores[i])
		rescored[i] = r
	}

	sort.SliceStable(rescored, func(i, j int) bool {
		return rescored[i].FinalScore > rescored[j].FinalScore
	})

	return append(rescored, initial[topN:]...), nil
}
