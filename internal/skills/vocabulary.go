// Package skills provides dictionary-driven skill extraction. The vocabulary
// is loaded once at process start from a static JSON dataset and shared
// read-only across all scoring calls.
package skills

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"

	"github.com/Abdelrhman-tamer/CareerK-AI/internal/text"
)

var (
	singleLetterRe = regexp.MustCompile(`^[a-z]$`)
	hasLetterRe    = regexp.MustCompile(`[a-z]`)
	symbolsOnlyRe  = regexp.MustCompile(`^[^a-z0-9\s]+$`)
	digitsOnlyRe   = regexp.MustCompile(`^[0-9]+$`)
)

// Vocabulary is an immutable set of normalized known-skill strings.
type Vocabulary []string

// IsValidEntry reports whether a raw term survives vocabulary construction.
// Entries shorter than 2 characters, purely numeric, purely symbolic, or a
// single letter are noise from the source dataset and are rejected.
func IsValidEntry(raw string) bool {
	s := text.Normalize(raw)
	switch {
	case len(s) < 2:
		return false
	case digitsOnlyRe.MatchString(s):
		return false
	case symbolsOnlyRe.MatchString(s):
		return false
	case !hasLetterRe.MatchString(s):
		return false
	case singleLetterRe.MatchString(s):
		return false
	}
	return true
}

// BuildVocabulary normalizes, filters, and deduplicates raw terms into a
// sorted vocabulary.
func BuildVocabulary(raw []string) Vocabulary {
	seen := make(map[string]struct{}, len(raw))
	for _, entry := range raw {
		if !IsValidEntry(entry) {
			continue
		}
		seen[text.Normalize(entry)] = struct{}{}
	}

	vocab := make(Vocabulary, 0, len(seen))
	for s := range seen {
		vocab = append(vocab, s)
	}
	sort.Strings(vocab)
	return vocab
}

// LoadVocabulary reads a JSON array of skill strings from path and builds
// the filtered vocabulary.
func LoadVocabulary(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary JSON: %w", err)
	}

	return BuildVocabulary(raw), nil
}
