package text

import (
	"regexp"
	"strconv"
)

// experiencePatterns are tried in priority order; the first match wins.
// Specific phrasings ("5+ years", "at least 5 years") must be checked before
// the bare "5 years" form, and the entry-level markers come last.
var experiencePatterns = []struct {
	re     *regexp.Regexp
	groups int
}{
	{regexp.MustCompile(`(\d+)\s*\+\s*years?`), 1},
	{regexp.MustCompile(`at\s*least\s*(\d+)\s*years?`), 1},
	{regexp.MustCompile(`more\s*than\s*(\d+)\s*years?`), 1},
	{regexp.MustCompile(`minimum\s*of\s*(\d+)\s*years?`), 1},
	{regexp.MustCompile(`(\d+)\s*-\s*(\d+)\s*years?`), 2},
	{regexp.MustCompile(`(\d+)\s*years?`), 1},
	{regexp.MustCompile(`fresher|trainee|entry[- ]level`), 0},
}

// ParseExperience extracts the minimum and maximum years of experience
// required by a posting description. Returns (0, 0) when the text states no
// requirement; callers must treat that as "no experience floor", which is
// indistinguishable from an explicit zero.
func ParseExperience(s string) (min, max int) {
	lowered := toLower(s)

	for _, p := range experiencePatterns {
		m := p.re.FindStringSubmatch(lowered)
		if m == nil {
			continue
		}
		switch p.groups {
		case 0:
			return 0, 0
		case 2:
			a, _ := strconv.Atoi(m[1])
			b, _ := strconv.Atoi(m[2])
			if a > b {
				a, b = b, a
			}
			return a, b
		default:
			n, _ := strconv.Atoi(m[1])
			return n, n
		}
	}

	return 0, 0
}

func toLower(s string) string {
	// Normalization is not wanted here: "entry-level" must keep its hyphen
	// for the pattern to see it.
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
