// Package matching implements the scoring-and-ranking pipeline: document
// construction, multi-signal score composition, threshold filtering, stable
// sorting, and the two-stage retrieve-then-rerank flow.
package matching

import (
	"fmt"
	"strings"

	"github.com/Abdelrhman-tamer/CareerK-AI/internal/text"
	"github.com/Abdelrhman-tamer/CareerK-AI/internal/types"
)

// DocumentWeights controls repetition-based lexical weighting when building
// posting text. Repeating the title and skills biases TF-IDF and keyword
// scoring toward those tokens without per-field weighted cosine math.
type DocumentWeights struct {
	Title       int
	Description int
	Skills      int
}

// DefaultDocumentWeights mirrors the production weighting: title x2,
// description x1, each skill x3.
func DefaultDocumentWeights() DocumentWeights {
	return DocumentWeights{Title: 2, Description: 1, Skills: 3}
}

// BuildProfileText assembles the text representation of a developer profile.
// A pre-supplied consolidated CV is used verbatim; otherwise the fields are
// concatenated in a fixed order, omitting absent ones entirely.
func BuildProfileText(dev types.DeveloperProfile) string {
	if dev.CVText != "" {
		return dev.CVText
	}

	var parts []string
	if dev.BriefBio != "" {
		parts = append(parts, dev.BriefBio)
	}
	if len(dev.Skills) > 0 {
		parts = append(parts, "Skills: "+strings.Join(dev.Skills, ", "))
	}
	if dev.YearsOfExperience > 0 {
		parts = append(parts, fmt.Sprintf("%d years of experience", dev.YearsOfExperience))
	}
	if dev.PreviousJob != "" {
		parts = append(parts, "Previously worked as: "+dev.PreviousJob)
	}
	if dev.TrackLevel != "" {
		parts = append(parts, "Level: "+dev.TrackLevel)
	}
	return strings.Join(parts, " ")
}

// document is the internal scoring representation of one posting.
type document struct {
	id             string
	text           string // repetition-weighted, for embedding and lexical scoring
	normText       string
	requiredSkills []string // normalized
	minExperience  int      // parsed from the description; jobs only
}

// buildPostingText concatenates title, description, and skills with
// repetition weighting.
func buildPostingText(title, description string, skillList []string, w DocumentWeights) string {
	parts := make([]string, 0, w.Title+w.Description+len(skillList)*w.Skills)
	for i := 0; i < w.Title; i++ {
		parts = append(parts, title)
	}
	for i := 0; i < w.Description; i++ {
		parts = append(parts, description)
	}
	for _, skill := range skillList {
		for i := 0; i < w.Skills; i++ {
			parts = append(parts, skill)
		}
	}
	return strings.Join(parts, " ")
}

// newDocument validates and builds the scoring document for a posting.
// Returns false when the posting is malformed (missing title or description)
// and must be skipped.
func newDocument(id, title, description string, skillList []string, w DocumentWeights, parseExperience bool) (document, bool) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return document{}, false
	}

	doc := document{
		id:   id,
		text: buildPostingText(title, description, skillList, w),
	}
	doc.normText = text.Normalize(doc.text)

	for _, skill := range skillList {
		if norm := text.Normalize(skill); norm != "" {
			doc.requiredSkills = append(doc.requiredSkills, norm)
		}
	}

	if parseExperience {
		doc.minExperience, _ = text.ParseExperience(description)
	}
	return doc, true
}
