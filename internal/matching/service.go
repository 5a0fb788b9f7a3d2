package matching

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Abdelrhman-tamer/CareerK-AI/internal/types"
)

// ScoreAndRank ranks both posting lists against the developer profile and
// returns them in descending score order. Malformed postings (missing title
// or description) are skipped and logged; they never abort the batch. The
// job and service pipelines run in parallel, each with one batched embedding
// call.
func (e *Engine) ScoreAndRank(ctx context.Context, req *types.RecommendationRequest) (*types.RecommendationResponse, error) {
	pc, err := e.buildProfileContext(req.Developer)
	if err != nil {
		return nil, err
	}

	jobDocs := make([]document, 0, len(req.JobPosts))
	for _, job := range req.JobPosts {
		doc, ok := newDocument(job.ID, job.Title, job.JobDescription, job.Skills, e.opts.Document, true)
		if !ok {
			e.logger.Printf("skipping malformed job posting %s: missing title or description", job.ID)
			continue
		}
		jobDocs = append(jobDocs, doc)
	}

	serviceDocs := make([]document, 0, len(req.ServicePosts))
	for _, svc := range req.ServicePosts {
		doc, ok := newDocument(svc.ID, svc.Title, svc.Description, svc.RequiredSkills, e.opts.Document, false)
		if !ok {
			e.logger.Printf("skipping malformed service posting %s: missing title or description", svc.ID)
			continue
		}
		serviceDocs = append(serviceDocs, doc)
	}

	var jobResults, serviceResults []types.ScoredResult
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		jobResults, err = e.rankAndRerank(gctx, pc, jobDocs, e.opts.JobWeights, true)
		if err != nil {
			return fmt.Errorf("ranking jobs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		serviceResults, err = e.rankAndRerank(gctx, pc, serviceDocs, e.opts.ServiceWeights, false)
		if err != nil {
			return fmt.Errorf("ranking services: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &types.RecommendationResponse{
		JobRecommendations:     jobResults,
		ServiceRecommendations: serviceResults,
	}, nil
}

func (e *Engine) rankAndRerank(ctx context.Context, pc profileContext, docs []document, w Weights, withExperience bool) ([]types.ScoredResult, error) {
	results, err := e.rank(ctx, pc, docs, w, withExperience)
	if err != nil {
		return nil, err
	}
	if !e.opts.RerankEnabled || len(results) == 0 {
		return results, nil
	}
	return e.rerank(ctx, pc, docs, results)
}
