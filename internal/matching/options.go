package matching

// Weights are the per-signal coefficients of the composite score. A zero
// weight disables its component.
type Weights struct {
	Semantic   float64 `json:"semantic"`
	Lexical    float64 `json:"lexical"`
	Skill      float64 `json:"skill"`
	Experience float64 `json:"experience"`
}

// Blend controls how a pairwise reranking score is folded back into the
// original composite score.
type Blend struct {
	Original float64 `json:"original"`
	Pairwise float64 `json:"pairwise"`
}

// LexicalMode selects how the lexical component is computed.
type LexicalMode string

const (
	// LexicalTFIDF fits TF-IDF vectors jointly over the profile and all
	// posting texts and uses their cosine similarity.
	LexicalTFIDF LexicalMode = "tfidf"
	// LexicalContainment scores the fraction of distinct posting tokens
	// present in the profile token set.
	LexicalContainment LexicalMode = "containment"
)

// Options configures one scoring pass. Exactly one weighting scheme applies
// per posting type; reranking applies to both when enabled.
type Options struct {
	JobWeights     Weights
	ServiceWeights Weights
	// Cutoff drops results with a final score strictly below it. Nil
	// disables filtering; the boundary value itself is retained.
	Cutoff        *float64
	Lexical       LexicalMode
	Document      DocumentWeights
	RerankEnabled bool
	RerankTopN    int
	RerankBlend   Blend
}

// TwoStageOptions is the retrieve-then-rerank configuration: semantic 0.7,
// lexical 0.3, a 0.2 skill bonus, no cutoff, and a 0.7/0.3 rerank blend over
// the top 10.
func TwoStageOptions() Options {
	w := Weights{Semantic: 0.7, Lexical: 0.3, Skill: 0.2}
	return Options{
		JobWeights:     w,
		ServiceWeights: w,
		Lexical:        LexicalTFIDF,
		Document:       DefaultDocumentWeights(),
		RerankEnabled:  true,
		RerankTopN:     10,
		RerankBlend:    Blend{Original: 0.7, Pairwise: 0.3},
	}
}

// SimpleOptions is the single-stage configuration: jobs weigh similarity
// 0.65, experience 0.15, skills 0.2; services split 0.5/0.5 between
// similarity and skills. Results below 0.4 are dropped and no reranking
// runs.
func SimpleOptions() Options {
	cutoff := 0.4
	return Options{
		JobWeights:     Weights{Semantic: 0.65, Experience: 0.15, Skill: 0.2},
		ServiceWeights: Weights{Semantic: 0.5, Skill: 0.5},
		Cutoff:         &cutoff,
		Lexical:        LexicalContainment,
		Document:       DefaultDocumentWeights(),
	}
}

// Preset returns the named options preset, defaulting to two-stage.
func Preset(name string) Options {
	if name == "simple" {
		return SimpleOptions()
	}
	return TwoStageOptions()
}
