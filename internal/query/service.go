package query

import (
	"context"
	"fmt"
	"log/slog"

	"twd-lookup/internal/episode"
	"twd-lookup/pkg/fuzzy"
	"twd-lookup/pkg/models"
)

// Service builds character, season and episode results from a Store
type Service struct {
	store         Store
	resolver      *episode.Resolver
	matcher       *fuzzy.Matcher
	airedEpisodes int
	logger        *slog.Logger
}

// NewService creates a query service. airedEpisodes is the number of episodes aired so far
// and bounds the lifespan of characters who are still alive.
func NewService(store Store, resolver *episode.Resolver, airedEpisodes int) *Service {
	return &Service{
		store:         store,
		resolver:      resolver,
		matcher:       fuzzy.NewMatcher(),
		airedEpisodes: airedEpisodes,
		logger:        slog.Default(),
	}
}

// Characters returns a result for every character whose name starts with name, falling back
// to characters whose name contains it. ErrNoMatch is returned when neither finds anything.
func (s *Service) Characters(ctx context.Context, name string) ([]models.CharacterResult, error) {
	characters, err := s.store.FindCharacters(ctx, name, models.MatchPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to find characters by prefix: %w", err)
	}

	if len(characters) == 0 {
		s.logger.Debug("No prefix match, trying substring", "character", name)
		characters, err = s.store.FindCharacters(ctx, name, models.MatchSubstring)
		if err != nil {
			return nil, fmt.Errorf("failed to find characters by substring: %w", err)
		}
	}

	if len(characters) == 0 {
		return nil, ErrNoMatch
	}

	results := make([]models.CharacterResult, 0, len(characters))
	for _, c := range characters {
		death, err := s.store.DeathEpisode(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get death episode of character %d: %w", c.ID, err)
		}
		c.Death = death

		res := models.NewCharacterResult(c)
		res.Lifespan = Lifespan(c.FirstAppearance, c.Death, s.airedEpisodes)
		results = append(results, res)
	}

	s.logger.Debug("Character candidates", "character", name, "count", len(results))
	return results, nil
}

// Character returns the single candidate closest to name
func (s *Service) Character(ctx context.Context, name string) (models.CharacterResult, error) {
	candidates, err := s.Characters(ctx, name)
	if err != nil {
		return models.CharacterResult{}, err
	}

	best, ok := s.matcher.Best(name, candidates)
	if !ok {
		return models.CharacterResult{}, ErrNoMatch
	}

	return best, nil
}

// Season returns the characters introduced and killed in each episode of season
func (s *Service) Season(ctx context.Context, season int) (models.SeasonResult, error) {
	firsts, err := s.store.SeasonFirstAppearances(ctx, season)
	if err != nil {
		return models.SeasonResult{}, fmt.Errorf("failed to get first appearances of season %d: %w", season, err)
	}

	deaths, err := s.store.SeasonDeaths(ctx, season)
	if err != nil {
		return models.SeasonResult{}, fmt.Errorf("failed to get deaths of season %d: %w", season, err)
	}

	return models.SeasonResult{
		FirstAppearances: GroupByEpisode(firsts),
		Deaths:           GroupByEpisode(deaths),
	}, nil
}

// Episode returns the characters introduced and killed in the episode identified by id.
// An unknown episode yields a result whose Episode is nil.
func (s *Service) Episode(ctx context.Context, id string) (models.EpisodeResult, error) {
	res := models.EpisodeResult{
		FirstAppearances: []string{},
		Deaths:           []string{},
	}

	filter, ok := s.resolver.Resolve(id)
	if !ok {
		s.logger.Debug("Episode identifier outside season table", "episode", id)
		return res, nil
	}

	firsts, err := s.store.EpisodeFirstAppearances(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get first appearances of episode %q: %w", id, err)
	}

	deaths, err := s.store.EpisodeDeaths(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get deaths of episode %q: %w", id, err)
	}

	switch {
	case len(firsts) > 0:
		res.Episode = episodeRef(firsts[0].Episode)
	case len(deaths) > 0:
		res.Episode = episodeRef(deaths[0].Episode)
	}

	for _, row := range firsts {
		res.FirstAppearances = append(res.FirstAppearances, row.Name)
	}
	for _, row := range deaths {
		res.Deaths = append(res.Deaths, row.Name)
	}

	return res, nil
}

func episodeRef(ep models.Episode) *models.EpisodeRef {
	return &models.EpisodeRef{
		Title:   ep.Title,
		Season:  ep.Season,
		Episode: ep.InSeason,
	}
}

// Lifespan counts the episodes, inclusive, from a character's first appearance to its death,
// or to the latest aired episode when it is still alive. An unknown first appearance yields 0.
// The first-appearance episode is counted, so a first appearance in 10 with 177 aired gives 168.
func Lifespan(first, death *models.Episode, airedEpisodes int) int {
	if first == nil {
		return 0
	}
	if death != nil {
		return death.Number - first.Number + 1
	}
	return airedEpisodes - first.Number + 1
}

// GroupByEpisode collects rows sorted by in-season episode into one group per episode.
// A group closes when the episode number increases.
func GroupByEpisode(rows []models.EpisodeCharacter) []models.SeasonGroup {
	groups := []models.SeasonGroup{}

	for _, row := range rows {
		n := row.Episode.InSeason
		if len(groups) > 0 && groups[len(groups)-1].N == n {
			last := &groups[len(groups)-1]
			last.Characters = append(last.Characters, row.Name)
			continue
		}
		groups = append(groups, models.SeasonGroup{N: n, Characters: []string{row.Name}})
	}

	return groups
}
