// Package query validates trivia requests and builds structured results from the store
package query

import (
	"errors"
	"regexp"
)

var (
	// ErrEmptyQuery is returned when none of character, season or episode was requested
	ErrEmptyQuery = errors.New("no character, season or episode requested")
	// ErrInvalidCharacterName is returned when the character name contains disallowed symbols
	ErrInvalidCharacterName = errors.New("invalid character name")
	// ErrNoMatch is returned when no character name matches the query. It is not a failure.
	ErrNoMatch = errors.New("no matching character")
)

// characterNamePattern accepts letters, spaces and the symbols ' . -
var characterNamePattern = regexp.MustCompile(`^[a-zA-Z '.\-]+$`)

// OutputMode selects how a result is rendered
type OutputMode int

const (
	ModeText OutputMode = iota
	ModeJSON
	ModeHTML
)

// String returns the flag name of the mode
func (m OutputMode) String() string {
	switch m {
	case ModeJSON:
		return "json"
	case ModeHTML:
		return "html"
	default:
		return "text"
	}
}

// Kind identifies which query builder serves a request
type Kind int

const (
	KindNone Kind = iota
	KindCharacter
	KindSeason
	KindEpisode
)

// String returns the name of the builder kind
func (k Kind) String() string {
	switch k {
	case KindCharacter:
		return "character"
	case KindSeason:
		return "season"
	case KindEpisode:
		return "episode"
	default:
		return "none"
	}
}

// Request is a single trivia query. Nil fields were not supplied.
type Request struct {
	Character *string
	Season    *int
	Episode   *string
	Mode      OutputMode
}

// Validate checks the request before any store access
func (r Request) Validate() error {
	if r.Character == nil && r.Season == nil && r.Episode == nil {
		return ErrEmptyQuery
	}

	if r.Character != nil && !characterNamePattern.MatchString(*r.Character) {
		return ErrInvalidCharacterName
	}

	return nil
}

// Kind returns the builder that serves the request. Character takes precedence over
// season, and season over episode.
func (r Request) Kind() Kind {
	switch {
	case r.Character != nil:
		return KindCharacter
	case r.Season != nil:
		return KindSeason
	case r.Episode != nil:
		return KindEpisode
	default:
		return KindNone
	}
}

// IsInputError reports whether err is a user input error that must be reported as an empty result
func IsInputError(err error) bool {
	return errors.Is(err, ErrEmptyQuery) || errors.Is(err, ErrInvalidCharacterName)
}
