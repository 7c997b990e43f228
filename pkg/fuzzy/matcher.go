// Package fuzzy provides fuzzy matching functionality for character name lookups
package fuzzy

import (
	"github.com/hbollon/go-edlib"

	"twd-lookup/pkg/models"
)

// Matcher picks the closest character among several partial-name matches
type Matcher struct{}

// NewMatcher creates a new fuzzy matcher
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Distance returns the Levenshtein edit distance between two names
func (m *Matcher) Distance(a, b string) int {
	return edlib.LevenshteinDistance(a, b)
}

// Best returns the candidate whose name is closest to query.
// Ties keep the earliest candidate. The second return value is false when candidates is empty.
func (m *Matcher) Best(query string, candidates []models.CharacterResult) (models.CharacterResult, bool) {
	if len(candidates) == 0 {
		return models.CharacterResult{}, false
	}

	best := 0
	bestDistance := m.Distance(query, candidates[0].Name)

	for i := 1; i < len(candidates); i++ {
		d := m.Distance(query, candidates[i].Name)
		if d < bestDistance {
			best = i
			bestDistance = d
		}
	}

	return candidates[best], true
}
