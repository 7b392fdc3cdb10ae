package database

import (
	"fmt"
	"log/slog"
)

func (db *DB) RunMigrations() error {
	slog.Info("Running database migrations...")

	migrations := []string{
		createStatesTable,
		createGenresTable,
		createVenuesTable,
		createArtistsTable,
		createShowsTable,
		createVenueGenreTable,
		createArtistGenreTable,
		createShowsIndexes,
	}

	for i, migration := range migrations {
		slog.Info("Running migration", "step", i+1)
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	slog.Info("All migrations completed successfully")
	return nil
}

const createStatesTable = `
CREATE TABLE IF NOT EXISTS states (
    id SERIAL PRIMARY KEY,
    code VARCHAR(2) UNIQUE NOT NULL
);`

const createGenresTable = `
CREATE TABLE IF NOT EXISTS genres (
    id SERIAL PRIMARY KEY,
    name VARCHAR(50) UNIQUE NOT NULL
);`

const createVenuesTable = `
CREATE TABLE IF NOT EXISTS venues (
    id SERIAL PRIMARY KEY,
    name VARCHAR(120) NOT NULL,
    city VARCHAR(120) NOT NULL,
    state_id INTEGER NOT NULL REFERENCES states(id),
    address VARCHAR(120) NOT NULL,
    phone VARCHAR(20),
    image_link VARCHAR(500),
    facebook_link VARCHAR(120),
    website_link VARCHAR(120),
    seeking_talent BOOLEAN NOT NULL DEFAULT FALSE,
    seeking_description TEXT
);`

const createArtistsTable = `
CREATE TABLE IF NOT EXISTS artists (
    id SERIAL PRIMARY KEY,
    name VARCHAR(120) NOT NULL,
    city VARCHAR(120) NOT NULL,
    state_id INTEGER NOT NULL REFERENCES states(id),
    phone VARCHAR(20),
    image_link VARCHAR(500),
    facebook_link VARCHAR(120),
    website_link VARCHAR(120),
    seeking_venue BOOLEAN NOT NULL DEFAULT FALSE,
    seeking_description TEXT
);`

const createShowsTable = `
CREATE TABLE IF NOT EXISTS shows (
    id SERIAL PRIMARY KEY,
    artist_id INTEGER NOT NULL REFERENCES artists(id),
    venue_id INTEGER NOT NULL REFERENCES venues(id),
    start_time TIMESTAMP NOT NULL
);`

const createVenueGenreTable = `
CREATE TABLE IF NOT EXISTS venue_genre (
    venue_id INTEGER NOT NULL REFERENCES venues(id),
    genre_id INTEGER NOT NULL REFERENCES genres(id),
    PRIMARY KEY (venue_id, genre_id)
);`

const createArtistGenreTable = `
CREATE TABLE IF NOT EXISTS artist_genre (
    artist_id INTEGER NOT NULL REFERENCES artists(id),
    genre_id INTEGER NOT NULL REFERENCES genres(id),
    PRIMARY KEY (artist_id, genre_id)
);`

const createShowsIndexes = `
CREATE INDEX IF NOT EXISTS shows_venue_id_idx ON shows (venue_id);
CREATE INDEX IF NOT EXISTS shows_artist_id_idx ON shows (artist_id);
CREATE INDEX IF NOT EXISTS shows_start_time_idx ON shows (start_time);`
