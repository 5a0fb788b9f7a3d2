package matching

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/Abdelrhman-tamer/CareerK-AI/internal/llm"
	"github.com/Abdelrhman-tamer/CareerK-AI/internal/skills"
	"github.com/Abdelrhman-tamer/CareerK-AI/internal/text"
	"github.com/Abdelrhman-tamer/CareerK-AI/internal/types"
)

// Engine scores and ranks postings against a developer profile. It holds no
// request-scoped state; one Engine serves concurrent requests as long as its
// providers do.
type Engine struct {
	embedder llm.Embedder
	pairs    llm.PairScorer
	matcher  *skills.Matcher
	opts     Options
	logger   *log.Logger
}

// NewEngine constructs an Engine with injected providers. pairs may be nil
// when reranking is disabled.
func NewEngine(embedder llm.Embedder, pairs llm.PairScorer, matcher *skills.Matcher, opts Options, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{
		embedder: embedder,
		pairs:    pairs,
		matcher:  matcher,
		opts:     opts,
		logger:   logger,
	}
}

// profileContext is the per-request precomputed view of the developer.
type profileContext struct {
	text   string
	norm   string
	tokens map[string]struct{}
	skills map[string]struct{}
	years  int
}

// buildProfileContext assembles the profile text and skill set. Declared
// skills and skills extracted from the profile text are merged, normalized.
func (e *Engine) buildProfileContext(dev types.DeveloperProfile) (profileContext, error) {
	profileText := BuildProfileText(dev)
	if strings.TrimSpace(profileText) == "" {
		return profileContext{}, ErrEmptyProfile
	}

	pc := profileContext{
		text:   profileText,
		norm:   text.Normalize(profileText),
		tokens: make(map[string]struct{}),
		skills: make(map[string]struct{}),
		years:  dev.YearsOfExperience,
	}
	for _, tok := range strings.Fields(pc.norm) {
		pc.tokens[tok] = struct{}{}
	}
	for _, s := range dev.Skills {
		if norm := text.Normalize(s); norm != "" {
			pc.skills[norm] = struct{}{}
		}
	}
	if e.matcher != nil {
		for _, s := range e.matcher.Extract(profileText) {
			pc.skills[s] = struct{}{}
		}
	}
	return pc, nil
}

// rank runs stage one over a single posting type: one batched embedding
// call, per-posting composite scoring, cutoff filtering, and a stable
// descending sort.
func (e *Engine) rank(ctx context.Context, pc profileContext, docs []document, w Weights, withExperience bool) ([]types.ScoredResult, error) {
	if len(docs) == 0 {
		return []types.ScoredResult{}, nil
	}

	// One batch for the profile plus every posting of this type, index
	// aligned: vectors[0] is the profile.
	texts := make([]string, 0, len(docs)+1)
	texts = append(texts, pc.text)
	for _, d := range docs {
		texts = append(texts, d.text)
	}

	var vectors [][]float32
	if w.Semantic > 0 {
		var err error
		vectors, err = e.embedder.EmbedBatch(ctx, texts)
		if err != nil {
			return nil, fmt.Errorf("embedding postings: %w", err)
		}
	}

	var lexical tfidfVectors
	if w.Lexical > 0 && e.opts.Lexical != LexicalContainment {
		normTexts := make([]string, 0, len(docs)+1)
		normTexts = append(normTexts, pc.norm)
		for _, d := range docs {
			normTexts = append(normTexts, d.normText)
		}
		lexical = fitTFIDF(normTexts)
	}

	results := make([]types.ScoredResult, 0, len(docs))
	for i, doc := range docs {
		var semantic float64
		if vectors != nil {
			semantic = cosine32(vectors[0], vectors[i+1])
		}

		var lex float64
		if w.Lexical > 0 {
			switch e.opts.Lexical {
			case LexicalContainment:
				lex = tokenContainment(pc.tokens, doc.normText)
			default:
				lex = lexical.similarity(0, i+1)
			}
		}

		skill := skillOverlap(pc, doc.requiredSkills)

		var experience float64
		if withExperience {
			experience = experienceFit(pc.years, doc.minExperience)
		}

		final := round4(w.Semantic*semantic + w.Lexical*lex + w.Skill*skill + w.Experience*experience)
		if e.opts.Cutoff != nil && final < *e.opts.Cutoff {
			continue
		}

		results = append(results, types.ScoredResult{
			ID:              doc.id,
			FinalScore:      final,
			SimilarityScore: round4(semantic),
			ExperienceScore: round4(experience),
			SkillScore:      round4(skill),
		})
	}

	// Stable sort keeps input order for exact ties.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FinalScore > results[j].FinalScore
	})
	return results, nil
}

// skillOverlap is the fraction of a posting's required skills present in the
// profile skill set. A required skill also counts as matched when every one
// of its tokens appears in the profile text. Postings with no required
// skills score 0; an empty requirement list is never a full match.
func skillOverlap(pc profileContext, required []string) float64 {
	if len(required) == 0 {
		return 0
	}

	matched := 0
	for _, skill := range required {
		if _, ok := pc.skills[skill]; ok {
			matched++
			continue
		}
		if allTokensPresent(pc.tokens, skill) {
			matched++
		}
	}
	return float64(matched) / float64(len(required))
}

func allTokensPresent(tokens map[string]struct{}, phrase string) bool {
	fields := strings.Fields(phrase)
	if len(fields) == 0 {
		return false
	}
	for _, tok := range fields {
		if _, ok := tokens[tok]; !ok {
			return false
		}
	}
	return true
}

// tokenContainment scores the fraction of distinct posting tokens present in
// the profile token set.
func tokenContainment(profileTokens map[string]struct{}, normText string) float64 {
	distinct := make(map[string]struct{})
	for _, tok := range strings.Fields(normText) {
		distinct[tok] = struct{}{}
	}
	if len(distinct) == 0 {
		return 0
	}
	contained := 0
	for tok := range distinct {
		if _, ok := profileTokens[tok]; ok {
			contained++
		}
	}
	return float64(contained) / float64(len(distinct))
}

// experienceFit gives full credit when the posting states no minimum or the
// developer meets it, and proportional partial credit otherwise.
func experienceFit(devYears, jobMin int) float64 {
	if jobMin == 0 {
		return 1.0
	}
	if devYears >= jobMin {
		return 1.0
	}
	return round2(float64(devYears) / float64(jobMin))
}
