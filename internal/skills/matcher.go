package skills

import (
	"strings"

	"github.com/Abdelrhman-tamer/CareerK-AI/internal/text"
)

// Matcher extracts known skills from free text by exact phrase matching over
// normalized tokens. Build one at startup and share it; it is read-only and
// safe for concurrent use.
type Matcher struct {
	phrases   map[string]struct{}
	maxTokens int
}

// NewMatcher builds a matcher from a vocabulary.
func NewMatcher(vocab Vocabulary) *Matcher {
	m := &Matcher{phrases: make(map[string]struct{}, len(vocab))}
	for _, phrase := range vocab {
		m.phrases[phrase] = struct{}{}
		if n := len(strings.Fields(phrase)); n > m.maxTokens {
			m.maxTokens = n
		}
	}
	return m
}

// Extract returns the distinct vocabulary phrases found in the text. Matching
// is greedy: at each token position the longest vocabulary phrase wins and
// the scan resumes past it. Matches of 2 characters or fewer are discarded.
func (m *Matcher) Extract(s string) []string {
	if m.maxTokens == 0 {
		return nil
	}

	tokens := strings.Fields(text.Normalize(s))
	found := make(map[string]struct{})
	ordered := make([]string, 0)

	for i := 0; i < len(tokens); {
		matched := 0
		limit := m.maxTokens
		if rest := len(tokens) - i; rest < limit {
			limit = rest
		}
		for n := limit; n >= 1; n-- {
			phrase := strings.Join(tokens[i:i+n], " ")
			if _, ok := m.phrases[phrase]; !ok {
				continue
			}
			if len(phrase) > 2 {
				if _, dup := found[phrase]; !dup {
					found[phrase] = struct{}{}
					ordered = append(ordered, phrase)
				}
			}
			matched = n
			break
		}
		if matched > 0 {
			i += matched
		} else {
			i++
		}
	}

	return ordered
}

// ExtractSet is Extract with set semantics, for callers that only intersect.
func (m *Matcher) ExtractSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, skill := range m.Extract(s) {
		set[skill] = struct{}{}
	}
	return set
}
