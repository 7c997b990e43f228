package query

import (
	"context"
	"errors"
	"testing"

	"twd-lookup/internal/episode"
	"twd-lookup/internal/query/mocks"
	"twd-lookup/pkg/models"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAiredEpisodes = 177

func newTestService(t *testing.T) (*Service, *mocks.MockStore) {
	t.Helper()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)

	table, err := episode.NewSeasonTable(episode.DefaultSeasonEpisodes)
	require.NoError(t, err)

	return NewService(store, episode.NewResolver(table), testAiredEpisodes), store
}

func ep(number, season, inSeason int, title string) *models.Episode {
	return &models.Episode{
		Number:      number,
		Season:      season,
		InSeason:    inSeason,
		ReleaseDate: "2010-10-31",
		Title:       title,
	}
}

func row(name string, season, inSeason int, title string) models.EpisodeCharacter {
	return models.EpisodeCharacter{
		Name:    name,
		Episode: models.Episode{Season: season, InSeason: inSeason, Title: title},
	}
}

func TestLifespan(t *testing.T) {
	tests := []struct {
		name  string
		first *models.Episode
		death *models.Episode
		want  int
	}{
		{"dead", ep(10, 2, 4, ""), ep(20, 2, 14, ""), 11},
		{"dies in first episode", ep(5, 1, 5, ""), ep(5, 1, 5, ""), 1},
		// inclusive: the first-appearance episode counts, 177 aired from 10 is 168
		{"alive", ep(10, 2, 4, ""), nil, 168},
		{"alive since pilot", ep(1, 1, 1, ""), nil, testAiredEpisodes},
		{"unknown first appearance", nil, nil, 0},
		{"unknown first appearance but dead", nil, ep(20, 2, 14, ""), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Lifespan(tt.first, tt.death, testAiredEpisodes))
		})
	}
}

func TestGroupByEpisode(t *testing.T) {
	tests := []struct {
		name string
		rows []models.EpisodeCharacter
		want []models.SeasonGroup
	}{
		{
			name: "no rows",
			rows: nil,
			want: []models.SeasonGroup{},
		},
		{
			name: "two episodes",
			rows: []models.EpisodeCharacter{
				row("A", 1, 2, ""),
				row("B", 1, 2, ""),
				row("C", 1, 3, ""),
			},
			want: []models.SeasonGroup{
				{N: 2, Characters: []string{"A", "B"}},
				{N: 3, Characters: []string{"C"}},
			},
		},
		{
			name: "single row",
			rows: []models.EpisodeCharacter{row("Shane", 2, 10, "")},
			want: []models.SeasonGroup{{N: 10, Characters: []string{"Shane"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GroupByEpisode(tt.rows))
		})
	}
}

func TestService_CharactersPrefixMatch(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	store.EXPECT().
		FindCharacters(gomock.Any(), "Rick", models.MatchPrefix).
		Return([]*models.Character{
			{ID: 1, Name: "Rick Grimes", Actor: "Andrew Lincoln", FirstAppearance: ep(1, 1, 1, "Days Gone Bye")},
		}, nil)
	store.EXPECT().DeathEpisode(gomock.Any(), int64(1)).Return(nil, nil)

	results, err := svc.Characters(ctx, "Rick")
	require.NoError(t, err)
	require.Len(t, results, 1)

	got := results[0]
	require.Equal(t, "Rick Grimes", got.Name)
	require.Equal(t, "Andrew Lincoln", got.Actor)
	require.Equal(t, 1, got.FirstNumber)
	require.Equal(t, "Days Gone Bye", got.FirstTitle)
	require.Equal(t, models.StatusAlive, got.Status)
	require.Zero(t, got.DeathNumber)
	require.Empty(t, got.DeathTitle)
	require.Equal(t, testAiredEpisodes, got.Lifespan)
}

func TestService_CharactersSubstringFallback(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	gomock.InOrder(
		store.EXPECT().FindCharacters(gomock.Any(), "ick", models.MatchPrefix).Return(nil, nil),
		store.EXPECT().FindCharacters(gomock.Any(), "ick", models.MatchSubstring).
			Return([]*models.Character{
				{ID: 1, Name: "Rick Grimes", FirstAppearance: ep(1, 1, 1, "Days Gone Bye")},
			}, nil),
	)
	store.EXPECT().DeathEpisode(gomock.Any(), int64(1)).Return(nil, nil)

	results, err := svc.Characters(ctx, "ick")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "Rick Grimes", results[0].Name)
}

func TestService_CharactersNoMatch(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	store.EXPECT().FindCharacters(gomock.Any(), "Zed", models.MatchPrefix).Return(nil, nil)
	store.EXPECT().FindCharacters(gomock.Any(), "Zed", models.MatchSubstring).Return([]*models.Character{}, nil)

	results, err := svc.Characters(ctx, "Zed")
	require.ErrorIs(t, err, ErrNoMatch)
	require.Nil(t, results)
}

func TestService_CharactersDead(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	store.EXPECT().
		FindCharacters(gomock.Any(), "Shane", models.MatchPrefix).
		Return([]*models.Character{
			{ID: 7, Name: "Shane Walsh", Actor: "Jon Bernthal", FirstAppearance: ep(1, 1, 1, "Days Gone Bye")},
		}, nil)
	store.EXPECT().DeathEpisode(gomock.Any(), int64(7)).Return(ep(19, 2, 12, "Better Angels"), nil)

	results, err := svc.Characters(ctx, "Shane")
	require.NoError(t, err)
	require.Len(t, results, 1)

	got := results[0]
	require.Equal(t, models.StatusDead, got.Status)
	require.Equal(t, 19, got.DeathNumber)
	require.Equal(t, 2, got.DeathSeason)
	require.Equal(t, 12, got.DeathEpisode)
	require.Equal(t, "Better Angels", got.DeathTitle)
	require.Equal(t, 19, got.Lifespan)
}

func TestService_CharactersUnknownFirstAppearance(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	store.EXPECT().
		FindCharacters(gomock.Any(), "Ghost", models.MatchPrefix).
		Return([]*models.Character{{ID: 3, Name: "Ghost"}}, nil)
	store.EXPECT().DeathEpisode(gomock.Any(), int64(3)).Return(nil, nil)

	results, err := svc.Characters(ctx, "Ghost")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Zero(t, results[0].Lifespan)
	require.Zero(t, results[0].FirstSeason)
	require.Empty(t, results[0].FirstRelease)
}

func TestService_CharactersStoreError(t *testing.T) {
	storeErr := errors.New("disk I/O error")

	t.Run("find fails", func(t *testing.T) {
		svc, store := newTestService(t)
		store.EXPECT().FindCharacters(gomock.Any(), "Rick", models.MatchPrefix).Return(nil, storeErr)

		_, err := svc.Characters(context.Background(), "Rick")
		require.ErrorIs(t, err, storeErr)
	})

	t.Run("death lookup fails", func(t *testing.T) {
		svc, store := newTestService(t)
		store.EXPECT().
			FindCharacters(gomock.Any(), "Rick", models.MatchPrefix).
			Return([]*models.Character{{ID: 1, Name: "Rick Grimes"}}, nil)
		store.EXPECT().DeathEpisode(gomock.Any(), int64(1)).Return(nil, storeErr)

		_, err := svc.Characters(context.Background(), "Rick")
		require.ErrorIs(t, err, storeErr)
		require.False(t, errors.Is(err, ErrNoMatch))
	})
}

func TestService_CharacterPicksClosest(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	store.EXPECT().
		FindCharacters(gomock.Any(), "Carl", models.MatchPrefix).
		Return([]*models.Character{
			{ID: 2, Name: "Carl Grimes", FirstAppearance: ep(1, 1, 1, "Days Gone Bye")},
			{ID: 9, Name: "Carla", FirstAppearance: ep(40, 3, 15, "This Sorrowful Life")},
		}, nil)
	store.EXPECT().DeathEpisode(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	got, err := svc.Character(ctx, "Carl")
	require.NoError(t, err)
	require.Equal(t, "Carla", got.Name)
}

func TestService_CharacterNoMatch(t *testing.T) {
	svc, store := newTestService(t)

	store.EXPECT().FindCharacters(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	_, err := svc.Character(context.Background(), "Nobody")
	require.ErrorIs(t, err, ErrNoMatch)
}

func TestService_Season(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	store.EXPECT().SeasonFirstAppearances(gomock.Any(), 2).Return([]models.EpisodeCharacter{
		row("A", 2, 2, ""),
		row("B", 2, 2, ""),
		row("C", 2, 3, ""),
	}, nil)
	store.EXPECT().SeasonDeaths(gomock.Any(), 2).Return([]models.EpisodeCharacter{
		row("Otis", 2, 10, ""),
	}, nil)

	res, err := svc.Season(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, []models.SeasonGroup{
		{N: 2, Characters: []string{"A", "B"}},
		{N: 3, Characters: []string{"C"}},
	}, res.FirstAppearances)
	require.Equal(t, []models.SeasonGroup{
		{N: 10, Characters: []string{"Otis"}},
	}, res.Deaths)
}

func TestService_SeasonEmpty(t *testing.T) {
	for _, season := range []int{0, 42, -1} {
		svc, store := newTestService(t)

		store.EXPECT().SeasonFirstAppearances(gomock.Any(), season).Return(nil, nil)
		store.EXPECT().SeasonDeaths(gomock.Any(), season).Return(nil, nil)

		res, err := svc.Season(context.Background(), season)
		require.NoError(t, err)
		require.NotNil(t, res.FirstAppearances)
		require.NotNil(t, res.Deaths)
		require.Empty(t, res.FirstAppearances)
		require.Empty(t, res.Deaths)
	}
}

func TestService_SeasonStoreError(t *testing.T) {
	svc, store := newTestService(t)
	storeErr := errors.New("database is locked")

	store.EXPECT().SeasonFirstAppearances(gomock.Any(), 1).Return(nil, nil)
	store.EXPECT().SeasonDeaths(gomock.Any(), 1).Return(nil, storeErr)

	_, err := svc.Season(context.Background(), 1)
	require.ErrorIs(t, err, storeErr)
}

func TestService_EpisodeByNumber(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	filter := models.EpisodeFilter{Number: 7}
	store.EXPECT().EpisodeFirstAppearances(gomock.Any(), filter).Return([]models.EpisodeCharacter{
		row("Hershel Greene", 2, 1, "What Lies Ahead"),
		row("Maggie Greene", 2, 1, "What Lies Ahead"),
	}, nil)
	store.EXPECT().EpisodeDeaths(gomock.Any(), filter).Return(nil, nil)

	res, err := svc.Episode(ctx, "S2x1")
	require.NoError(t, err)
	require.True(t, res.Found())
	require.Equal(t, &models.EpisodeRef{Title: "What Lies Ahead", Season: 2, Episode: 1}, res.Episode)
	require.Equal(t, []string{"Hershel Greene", "Maggie Greene"}, res.FirstAppearances)
	require.Empty(t, res.Deaths)
	require.NotNil(t, res.Deaths)
}

func TestService_EpisodeByTitle(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	filter := models.EpisodeFilter{Title: "better angels"}
	store.EXPECT().EpisodeFirstAppearances(gomock.Any(), filter).Return(nil, nil)
	store.EXPECT().EpisodeDeaths(gomock.Any(), filter).Return([]models.EpisodeCharacter{
		row("Shane Walsh", 2, 12, "Better Angels"),
	}, nil)

	res, err := svc.Episode(ctx, "better angels")
	require.NoError(t, err)
	require.True(t, res.Found())
	require.Equal(t, "Better Angels", res.Episode.Title)
	require.Empty(t, res.FirstAppearances)
	require.Equal(t, []string{"Shane Walsh"}, res.Deaths)
}

func TestService_EpisodeNotFound(t *testing.T) {
	t.Run("no rows", func(t *testing.T) {
		svc, store := newTestService(t)
		store.EXPECT().EpisodeFirstAppearances(gomock.Any(), gomock.Any()).Return(nil, nil)
		store.EXPECT().EpisodeDeaths(gomock.Any(), gomock.Any()).Return(nil, nil)

		res, err := svc.Episode(context.Background(), "Not An Episode")
		require.NoError(t, err)
		require.False(t, res.Found())
	})

	t.Run("outside season table skips the store", func(t *testing.T) {
		svc, _ := newTestService(t)

		res, err := svc.Episode(context.Background(), "S99x1")
		require.NoError(t, err)
		require.False(t, res.Found())
		require.Empty(t, res.FirstAppearances)
		require.Empty(t, res.Deaths)
	})
}

func TestService_EpisodeStoreError(t *testing.T) {
	svc, store := newTestService(t)
	storeErr := errors.New("no such table: Episodes")

	store.EXPECT().EpisodeFirstAppearances(gomock.Any(), gomock.Any()).Return(nil, storeErr)

	_, err := svc.Episode(context.Background(), "S1x1")
	require.ErrorIs(t, err, storeErr)
}
