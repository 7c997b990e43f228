// Package episode converts episode identifiers into absolute episode ordinals
package episode

import (
	"fmt"
	"regexp"
	"strconv"

	"twd-lookup/pkg/models"
)

// identifierPattern matches S<season>x<episode>, e.g. S3x12 or s10x1. Only the S is case-insensitive.
var identifierPattern = regexp.MustCompile(`^[sS]([0-9]{1,2})x([0-9]{1,3})$`)

// DefaultSeasonEpisodes holds the number of aired episodes of each season, season 1 first
var DefaultSeasonEpisodes = []int{6, 13, 16, 16, 16, 16, 16, 16, 16, 16, 16}

// SeasonTable is an immutable per-season episode count table
type SeasonTable struct {
	counts []int
}

// NewSeasonTable creates a table from per-season episode counts, season 1 first
func NewSeasonTable(counts []int) (SeasonTable, error) {
	if len(counts) == 0 {
		return SeasonTable{}, fmt.Errorf("season table cannot be empty")
	}
	for i, c := range counts {
		if c <= 0 {
			return SeasonTable{}, fmt.Errorf("season %d has invalid episode count %d", i+1, c)
		}
	}

	return SeasonTable{counts: append([]int(nil), counts...)}, nil
}

// Seasons returns the number of seasons covered by the table
func (t SeasonTable) Seasons() int {
	return len(t.counts)
}

// Episodes returns the episode count of season, or 0 if the season is not in the table
func (t SeasonTable) Episodes(season int) int {
	if season < 1 || season > len(t.counts) {
		return 0
	}
	return t.counts[season-1]
}

// Ordinal returns the absolute episode number of an in-season episode: the counts of
// all earlier seasons plus inSeason. An in-season number past the season's count is
// not rejected and lands in a later season (S1x10 is ordinal 10).
// The second return value is false when the season lies outside the table.
func (t SeasonTable) Ordinal(season, inSeason int) (int, bool) {
	if season < 1 || season > len(t.counts) || inSeason < 1 {
		return 0, false
	}

	ordinal := inSeason
	for _, c := range t.counts[:season-1] {
		ordinal += c
	}

	return ordinal, true
}

// Resolver turns user supplied episode identifiers into store filters
type Resolver struct {
	table SeasonTable
}

// NewResolver creates a resolver backed by the given season table
func NewResolver(table SeasonTable) *Resolver {
	return &Resolver{table: table}
}

// Resolve maps an identifier to an episode filter. Identifiers of the form S<season>x<episode>
// resolve to an absolute ordinal, anything else is treated as an episode title.
// The second return value is false when a structured identifier falls outside the season table.
func (r *Resolver) Resolve(id string) (models.EpisodeFilter, bool) {
	m := identifierPattern.FindStringSubmatch(id)
	if m == nil {
		return models.EpisodeFilter{Title: id}, true
	}

	// Both groups are short digit runs, so Atoi cannot fail
	season, _ := strconv.Atoi(m[1])
	inSeason, _ := strconv.Atoi(m[2])

	ordinal, ok := r.table.Ordinal(season, inSeason)
	if !ok {
		return models.EpisodeFilter{}, false
	}

	return models.EpisodeFilter{Number: ordinal}, true
}
