// Package database provides read-only SQLite lookups over the character and episode tables
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"twd-lookup/pkg/models"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite database connection
type DB struct {
	conn *sql.DB
}

// New opens an existing database file for reading
func New(dbPath string) (*DB, error) {
	if dbPath != ":memory:" {
		// Opening a missing file would silently create an empty database
		if _, err := os.Stat(dbPath); err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps the query_only pragma in effect for every statement
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	if _, err := conn.Exec(`PRAGMA query_only = ON`); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

const characterColumns = `
	SELECT ch.Id, ch.Name, ch.Actor,
		   ep.EpisodeNumber, ep.Season, ep.EpisodeInSeason, ep.ReleaseDate, ep.EpisodeTitle
	FROM Character AS ch
	LEFT JOIN Episodes AS ep ON ch.FirstAppearance = ep.EpisodeNumber
`

// FindCharacters returns characters whose name starts with or contains name, in table order,
// with their first appearance episode attached
func (db *DB) FindCharacters(ctx context.Context, name string, match models.NameMatch) ([]*models.Character, error) {
	pattern := escapeLike(name) + "%"
	if match == models.MatchSubstring {
		pattern = "%" + pattern
	}

	query := characterColumns + `WHERE ch.Name LIKE ? ESCAPE '\' ORDER BY ch.Id`

	rows, err := db.conn.QueryContext(ctx, query, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to find characters: %w", err)
	}
	defer rows.Close()

	var characters []*models.Character
	for rows.Next() {
		var (
			c     models.Character
			actor sql.NullString
			first nullEpisode
		)
		err := rows.Scan(
			&c.ID, &c.Name, &actor,
			&first.Number, &first.Season, &first.InSeason, &first.ReleaseDate, &first.Title,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan character: %w", err)
		}
		c.Actor = actor.String
		c.FirstAppearance = first.episode()
		characters = append(characters, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read characters: %w", err)
	}

	return characters, nil
}

// DeathEpisode returns the episode in which the character dies, or nil if it is alive
func (db *DB) DeathEpisode(ctx context.Context, characterID int64) (*models.Episode, error) {
	query := `
	SELECT ep.EpisodeNumber, ep.Season, ep.EpisodeInSeason, ep.ReleaseDate, ep.EpisodeTitle
	FROM Character AS ch
	INNER JOIN Episodes AS ep ON ch.Death = ep.EpisodeNumber
	WHERE ch.Id = ?
	`

	var death nullEpisode
	err := db.conn.QueryRowContext(ctx, query, characterID).Scan(
		&death.Number, &death.Season, &death.InSeason, &death.ReleaseDate, &death.Title,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get death episode: %w", err)
	}

	return death.episode(), nil
}

// SeasonFirstAppearances returns the characters introduced in season, ordered by episode
func (db *DB) SeasonFirstAppearances(ctx context.Context, season int) ([]models.EpisodeCharacter, error) {
	return db.episodeCharacters(ctx, "ch.FirstAppearance", "ep.Season = ?", "ep.EpisodeInSeason, ch.Id", season)
}

// SeasonDeaths returns the characters who die in season, ordered by episode
func (db *DB) SeasonDeaths(ctx context.Context, season int) ([]models.EpisodeCharacter, error) {
	return db.episodeCharacters(ctx, "ch.Death", "ep.Season = ?", "ep.EpisodeInSeason, ch.Id", season)
}

// EpisodeFirstAppearances returns the characters introduced in the filtered episode, ordered by character
func (db *DB) EpisodeFirstAppearances(ctx context.Context, filter models.EpisodeFilter) ([]models.EpisodeCharacter, error) {
	where, arg := episodePredicate(filter)
	return db.episodeCharacters(ctx, "ch.FirstAppearance", where, "ch.Id", arg)
}

// EpisodeDeaths returns the characters who die in the filtered episode
func (db *DB) EpisodeDeaths(ctx context.Context, filter models.EpisodeFilter) ([]models.EpisodeCharacter, error) {
	where, arg := episodePredicate(filter)
	return db.episodeCharacters(ctx, "ch.Death", where, "ep.EpisodeInSeason, ch.Id", arg)
}

// episodePredicate picks a fixed WHERE clause for the filter; the value is always bound
func episodePredicate(filter models.EpisodeFilter) (string, any) {
	if filter.ByNumber() {
		return "ep.EpisodeNumber = ?", filter.Number
	}
	return "ep.EpisodeTitle = ? COLLATE NOCASE", filter.Title
}

// episodeCharacters joins characters to episodes through joinColumn. The column, predicate and
// ordering are package constants, never user input.
func (db *DB) episodeCharacters(ctx context.Context, joinColumn, where, orderBy string, arg any) ([]models.EpisodeCharacter, error) {
	query := `
	SELECT ch.Name, ep.EpisodeNumber, ep.Season, ep.EpisodeInSeason, ep.ReleaseDate, ep.EpisodeTitle
	FROM Character AS ch
	INNER JOIN Episodes AS ep ON ` + joinColumn + ` = ep.EpisodeNumber
	WHERE ` + where + `
	ORDER BY ` + orderBy

	rows, err := db.conn.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query episode characters: %w", err)
	}
	defer rows.Close()

	var result []models.EpisodeCharacter
	for rows.Next() {
		var (
			ec          models.EpisodeCharacter
			releaseDate sql.NullString
			title       sql.NullString
		)
		err := rows.Scan(
			&ec.Name, &ec.Episode.Number, &ec.Episode.Season, &ec.Episode.InSeason,
			&releaseDate, &title,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan episode character: %w", err)
		}
		ec.Episode.ReleaseDate = releaseDate.String
		ec.Episode.Title = title.String
		result = append(result, ec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read episode characters: %w", err)
	}

	return result, nil
}

// nullEpisode scans the columns of an optionally joined episode
type nullEpisode struct {
	Number      sql.NullInt64
	Season      sql.NullInt64
	InSeason    sql.NullInt64
	ReleaseDate sql.NullString
	Title       sql.NullString
}

func (n nullEpisode) episode() *models.Episode {
	if !n.Number.Valid {
		return nil
	}
	return &models.Episode{
		Number:      int(n.Number.Int64),
		Season:      int(n.Season.Int64),
		InSeason:    int(n.InSeason.Int64),
		ReleaseDate: n.ReleaseDate.String,
		Title:       n.Title.String,
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in s match literally
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
