package glossary

import (
	"strings"
)

// StaticGlossary is a financial-terms glossary backed by a fixed
// in-memory table, normalized to lower-case keys at construction so
// lookups are case-insensitive.
type StaticGlossary struct {
	terms map[string]string
}

// NewStaticGlossary creates a StaticGlossary from the given
// term→explanation table.
func NewStaticGlossary(terms map[string]string) *StaticGlossary {
	normalized := make(map[string]string, len(terms))
	for term, explanation := range terms {
		normalized[strings.ToLower(strings.TrimSpace(term))] = explanation
	}
	return &StaticGlossary{terms: normalized}
}

// Explain returns the explanation for a term, or ok=false when the term
// is unknown.
func (g *StaticGlossary) Explain(term string) (string, bool) {
	explanation, ok := g.terms[strings.ToLower(strings.TrimSpace(term))]
	return explanation, ok
}
