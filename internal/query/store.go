package query

import (
	"context"

	"twd-lookup/pkg/models"
)

// Store defines the read-only lookups the query builders need
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type Store interface {
	// Character lookups
	FindCharacters(ctx context.Context, name string, match models.NameMatch) ([]*models.Character, error)
	DeathEpisode(ctx context.Context, characterID int64) (*models.Episode, error)

	// Season lookups, ordered by in-season episode number
	SeasonFirstAppearances(ctx context.Context, season int) ([]models.EpisodeCharacter, error)
	SeasonDeaths(ctx context.Context, season int) ([]models.EpisodeCharacter, error)

	// Episode lookups
	EpisodeFirstAppearances(ctx context.Context, filter models.EpisodeFilter) ([]models.EpisodeCharacter, error)
	EpisodeDeaths(ctx context.Context, filter models.EpisodeFilter) ([]models.EpisodeCharacter, error)
}
