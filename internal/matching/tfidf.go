package matching

import (
	"math"
	"strings"
)

// tfidfVectors holds l2-normalized TF-IDF vectors for a document set fit
// jointly over one shared vocabulary. Because vectors are unit length,
// cosine similarity reduces to a dot product.
type tfidfVectors [][]float64

// fitTFIDF builds TF-IDF vectors for the given pre-normalized texts.
// IDF is smoothed: idf(t) = ln((1+n)/(1+df(t))) + 1.
func fitTFIDF(texts []string) tfidfVectors {
	vocab := make(map[string]int)
	counts := make([]map[string]int, len(texts))
	df := make(map[string]int)

	for i, t := range texts {
		counts[i] = make(map[string]int)
		for _, tok := range strings.Fields(t) {
			counts[i][tok]++
		}
		for tok := range counts[i] {
			df[tok]++
			if _, ok := vocab[tok]; !ok {
				vocab[tok] = len(vocab)
			}
		}
	}

	n := float64(len(texts))
	idf := make([]float64, len(vocab))
	for tok, idx := range vocab {
		idf[idx] = math.Log((1+n)/(1+float64(df[tok]))) + 1
	}

	vectors := make(tfidfVectors, len(texts))
	for i, c := range counts {
		vec := make([]float64, len(vocab))
		var norm float64
		for tok, count := range c {
			idx := vocab[tok]
			vec[idx] = float64(count) * idf[idx]
			norm += vec[idx] * vec[idx]
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for j := range vec {
				vec[j] /= norm
			}
		}
		vectors[i] = vec
	}
	return vectors
}

// similarity returns the cosine similarity between vectors i and j,
// clamped to [0, 1].
func (v tfidfVectors) similarity(i, j int) float64 {
	var dot float64
	for k := range v[i] {
		dot += v[i][k] * v[j][k]
	}
	return clamp01(dot)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// cosine32 computes cosine similarity between two embedding vectors,
// clamped to [0, 1]. Mismatched or zero-length vectors score 0.
func cosine32(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return clamp01(dot / (math.Sqrt(na) * math.Sqrt(nb)))
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
