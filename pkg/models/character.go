// Package models defines the data structures used throughout the application
package models

// CharacterStatus represents whether a character is still alive in the series
type CharacterStatus string

const (
	StatusAlive CharacterStatus = "Alive"
	StatusDead  CharacterStatus = "Dead"
)

// NameMatch selects how a character name query is compared against stored names
type NameMatch int

const (
	MatchPrefix NameMatch = iota
	MatchSubstring
)

// Episode represents a row of the Episodes table
type Episode struct {
	Number      int    `json:"episode_number" db:"EpisodeNumber"` // Absolute ordinal across all seasons
	Season      int    `json:"season" db:"Season"`
	InSeason    int    `json:"episode_in_season" db:"EpisodeInSeason"`
	ReleaseDate string `json:"release_date" db:"ReleaseDate"`
	Title       string `json:"title" db:"EpisodeTitle"`
}

// Character represents a row of the Character table with its first appearance resolved
type Character struct {
	ID              int64    `json:"id" db:"Id"`
	Name            string   `json:"name" db:"Name"`
	Actor           string   `json:"actor" db:"Actor"`
	FirstAppearance *Episode `json:"first_appearance,omitempty"`
	Death           *Episode `json:"death,omitempty"`
}

// CharacterResult is the structured answer to a character query
type CharacterResult struct {
	Name  string `json:"name"`
	Actor string `json:"actor"`

	FirstNumber  int    `json:"fs_numep"`
	FirstSeason  int    `json:"fs_season"`
	FirstEpisode int    `json:"fs_episode"`
	FirstRelease string `json:"fs_release"`
	FirstTitle   string `json:"fs_eptitle"`
	DeathNumber  int    `json:"d_numep"`
	DeathSeason  int    `json:"d_season"`
	DeathEpisode int    `json:"d_episode"`
	DeathRelease string `json:"d_release"`
	DeathTitle   string `json:"d_eptitle"`

	Lifespan int             `json:"lifespan"`
	Status   CharacterStatus `json:"status"`
}

// NewCharacterResult flattens a character and its episodes into a result record.
// Missing episodes leave the corresponding fields zero. Lifespan is left to the caller.
func NewCharacterResult(c *Character) CharacterResult {
	res := CharacterResult{
		Name:   c.Name,
		Actor:  c.Actor,
		Status: StatusAlive,
	}

	if ep := c.FirstAppearance; ep != nil {
		res.FirstNumber = ep.Number
		res.FirstSeason = ep.Season
		res.FirstEpisode = ep.InSeason
		res.FirstRelease = ep.ReleaseDate
		res.FirstTitle = ep.Title
	}

	if ep := c.Death; ep != nil {
		res.DeathNumber = ep.Number
		res.DeathSeason = ep.Season
		res.DeathEpisode = ep.InSeason
		res.DeathRelease = ep.ReleaseDate
		res.DeathTitle = ep.Title
		res.Status = StatusDead
	}

	return res
}

// IsDead reports whether the character has a recorded death episode
func (r CharacterResult) IsDead() bool {
	return r.Status == StatusDead
}
