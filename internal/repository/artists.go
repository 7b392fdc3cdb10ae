package repository

import (
	"context"
	"database/sql"

	"github.com/SodiqovS/Fyyur/internal/apperrors"
	"github.com/SodiqovS/Fyyur/internal/database"
	"github.com/SodiqovS/Fyyur/internal/models"
)

type ArtistRepository struct {
	db *database.DB
}

func NewArtistRepository(db *database.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

// Create inserts the artist and its genre links in one transaction. The
// artist comes back with ID, StateCode and Genres populated.
func (r *ArtistRepository) Create(ctx context.Context, artist *models.Artist, genreIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := scanStateCode(ctx, tx, artist.StateID, &artist.StateCode); err != nil {
		return err
	}

	query := `
		INSERT INTO artists (name, city, state_id, phone, image_link,
		                     facebook_link, website_link, seeking_venue, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	err = tx.QueryRowContext(ctx, query,
		artist.Name,
		artist.City,
		artist.StateID,
		artist.Phone,
		artist.ImageLink,
		artist.FacebookLink,
		artist.WebsiteLink,
		artist.SeekingVenue,
		artist.SeekingDescription,
	).Scan(&artist.ID)
	if err != nil {
		return err
	}

	genres, err := replaceGenreLinks(ctx, tx, "artist_genre", "artist_id", artist.ID, genreIDs)
	if err != nil {
		return err
	}
	artist.Genres = genres

	return tx.Commit()
}

// Update overwrites the scalar fields and replaces the genre link set
// atomically. A missing id fails with NotFound before anything is written.
func (r *ArtistRepository) Update(ctx context.Context, artist *models.Artist, genreIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := scanStateCode(ctx, tx, artist.StateID, &artist.StateCode); err != nil {
		return err
	}

	query := `
		UPDATE artists
		SET name = $1, city = $2, state_id = $3, phone = $4, image_link = $5,
		    facebook_link = $6, website_link = $7, seeking_venue = $8,
		    seeking_description = $9
		WHERE id = $10`

	res, err := tx.ExecContext(ctx, query,
		artist.Name,
		artist.City,
		artist.StateID,
		artist.Phone,
		artist.ImageLink,
		artist.FacebookLink,
		artist.WebsiteLink,
		artist.SeekingVenue,
		artist.SeekingDescription,
		artist.ID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return apperrors.NewNotFound("artist", artist.ID)
	}

	genres, err := replaceGenreLinks(ctx, tx, "artist_genre", "artist_id", artist.ID, genreIDs)
	if err != nil {
		return err
	}
	artist.Genres = genres

	return tx.Commit()
}

// GetByID fetches one artist with its state code and genre set.
func (r *ArtistRepository) GetByID(ctx context.Context, id int64) (*models.Artist, error) {
	artist := &models.Artist{}
	query := `
		SELECT a.id, a.name, a.city, a.state_id, s.code, a.phone,
		       a.image_link, a.facebook_link, a.website_link,
		       a.seeking_venue, a.seeking_description
		FROM artists a
		JOIN states s ON s.id = a.state_id
		WHERE a.id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&artist.ID,
		&artist.Name,
		&artist.City,
		&artist.StateID,
		&artist.StateCode,
		&artist.Phone,
		&artist.ImageLink,
		&artist.FacebookLink,
		&artist.WebsiteLink,
		&artist.SeekingVenue,
		&artist.SeekingDescription,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFound("artist", id)
	}
	if err != nil {
		return nil, err
	}

	genres, err := loadGenreLinks(ctx, r.db, "artist_genre", "artist_id", id)
	if err != nil {
		return nil, err
	}
	artist.Genres = genres

	return artist, nil
}

// ListAll returns every artist ordered by id.
func (r *ArtistRepository) ListAll(ctx context.Context) ([]models.ArtistSummary, error) {
	query := `SELECT id, name FROM artists ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanArtistSummaries(rows)
}

// ListRecent returns the newest artists, descending id as insertion order.
func (r *ArtistRepository) ListRecent(ctx context.Context, limit int) ([]models.ArtistSummary, error) {
	query := `SELECT id, name FROM artists ORDER BY id DESC LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanArtistSummaries(rows)
}

// SearchByName matches the term as a case-insensitive substring, ordered by
// name. An empty term matches every artist.
func (r *ArtistRepository) SearchByName(ctx context.Context, term string) ([]models.ArtistSummary, error) {
	query := `
		SELECT id, name FROM artists
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanArtistSummaries(rows)
}

func scanArtistSummaries(rows *sql.Rows) ([]models.ArtistSummary, error) {
	artists := []models.ArtistSummary{}
	for rows.Next() {
		var artist models.ArtistSummary
		if err := rows.Scan(&artist.ID, &artist.Name); err != nil {
			return nil, err
		}
		artists = append(artists, artist)
	}
	return artists, rows.Err()
}
