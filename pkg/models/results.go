package models

// EpisodeCharacter is a character name paired with the episode a query joined it to
type EpisodeCharacter struct {
	Name    string
	Episode Episode
}

// SeasonGroup lists the characters attached to one in-season episode
type SeasonGroup struct {
	N          int      `json:"n"`
	Characters []string `json:"characters"`
}

// SeasonResult is the structured answer to a season query
type SeasonResult struct {
	FirstAppearances []SeasonGroup `json:"first_appearances"`
	Deaths           []SeasonGroup `json:"deaths"`
}

// EpisodeRef identifies the episode an episode query resolved to
type EpisodeRef struct {
	Title   string `json:"title"`
	Season  int    `json:"season"`
	Episode int    `json:"episode"`
}

// EpisodeResult is the structured answer to an episode query.
// Episode is nil when no episode matched.
type EpisodeResult struct {
	Episode          *EpisodeRef `json:"episode"`
	FirstAppearances []string    `json:"first_appearances"`
	Deaths           []string    `json:"deaths"`
}

// Found reports whether the query resolved to an episode
func (r EpisodeResult) Found() bool {
	return r.Episode != nil
}

// EpisodeFilter selects a single episode either by absolute ordinal or by title
type EpisodeFilter struct {
	Number int
	Title  string
}

// ByNumber reports whether the filter matches on the absolute ordinal
func (f EpisodeFilter) ByNumber() bool {
	return f.Number > 0
}
