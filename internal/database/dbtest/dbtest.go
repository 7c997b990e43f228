// Package dbtest builds small fixture databases with the production schema for tests
package dbtest

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// Schema matches the layout of the published character database
const Schema = `
CREATE TABLE Episodes (
	EpisodeNumber INTEGER PRIMARY KEY,
	Season INTEGER NOT NULL,
	EpisodeInSeason INTEGER NOT NULL,
	ReleaseDate TEXT,
	EpisodeTitle TEXT
);

CREATE TABLE Character (
	Id INTEGER PRIMARY KEY,
	Name TEXT NOT NULL,
	Actor TEXT,
	FirstAppearance INTEGER REFERENCES Episodes(EpisodeNumber),
	Death INTEGER REFERENCES Episodes(EpisodeNumber)
);
`

// Seed covers seasons one and two
const Seed = `
INSERT INTO Episodes (EpisodeNumber, Season, EpisodeInSeason, ReleaseDate, EpisodeTitle) VALUES
	(1, 1, 1, '2010-10-31', 'Days Gone Bye'),
	(2, 1, 2, '2010-11-07', 'Guts'),
	(3, 1, 3, '2010-11-14', 'Tell It to the Frogs'),
	(4, 1, 4, '2010-11-21', 'Vatos'),
	(5, 1, 5, '2010-11-28', 'Wildfire'),
	(6, 1, 6, '2010-12-05', 'TS-19'),
	(7, 2, 1, '2011-10-16', 'What Lies Ahead'),
	(8, 2, 2, '2011-10-23', 'Bloodletting'),
	(9, 2, 3, '2011-10-30', 'Save the Last One'),
	(10, 2, 4, '2011-11-06', 'Cherokee Rose'),
	(11, 2, 5, '2011-11-13', 'Chupacabra'),
	(12, 2, 6, '2011-11-20', 'Secrets'),
	(13, 2, 7, '2011-11-27', 'Pretty Much Dead Already'),
	(14, 2, 8, '2012-02-12', 'Nebraska'),
	(15, 2, 9, '2012-02-19', 'Triggerfinger'),
	(16, 2, 10, '2012-02-26', '18 Miles Out'),
	(17, 2, 11, '2012-03-04', 'Judge, Jury, Executioner'),
	(18, 2, 12, '2012-03-11', 'Better Angels'),
	(19, 2, 13, '2012-03-18', 'Beside the Dying Fire');

INSERT INTO Character (Id, Name, Actor, FirstAppearance, Death) VALUES
	(1, 'Rick Grimes', 'Andrew Lincoln', 1, NULL),
	(2, 'Shane Walsh', 'Jon Bernthal', 1, 18),
	(3, 'Glenn Rhee', 'Steven Yeun', 2, NULL),
	(4, 'Andrea', 'Laurie Holden', 2, NULL),
	(5, 'Amy', 'Emma Bell', 2, 4),
	(6, 'Merle Dixon', 'Michael Rooker', 2, NULL),
	(7, 'Daryl Dixon', 'Norman Reedus', 3, NULL),
	(8, 'Jim', 'Andrew Rothenberg', 3, 5),
	(9, 'Edwin Jenner', 'Noah Emmerich', 6, 6),
	(10, 'Hershel Greene', 'Scott Wilson', 8, NULL),
	(11, 'Otis', 'Pruitt Taylor Vince', 7, 9),
	(12, 'Dale Horvath', 'Jeffrey DeMunn', 3, 17),
	(13, 'Sophia Peletier', 'Madison Lintz', 3, 13),
	(14, 'Morgan Jones', 'Lennie James', 1, NULL),
	(15, 'Duane Jones', 'Adrian Kali Turner', 1, NULL),
	(16, 'Wayne Dunlap', NULL, NULL, NULL);
`

// Create writes a seeded database file into a temporary directory and returns its path
func Create(tb testing.TB) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "twd.db")

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		tb.Fatalf("failed to create fixture database: %v", err)
	}
	defer conn.Close()

	for _, stmt := range []string{Schema, Seed} {
		if _, err := conn.Exec(stmt); err != nil {
			tb.Fatalf("failed to seed fixture database: %v", err)
		}
	}

	return path
}
