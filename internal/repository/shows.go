package repository

import (
	"context"

	"github.com/SodiqovS/Fyyur/internal/apperrors"
	"github.com/SodiqovS/Fyyur/internal/database"
	"github.com/SodiqovS/Fyyur/internal/models"
)

type ShowRepository struct {
	db *database.DB
}

func NewShowRepository(db *database.DB) *ShowRepository {
	return &ShowRepository{db: db}
}

// Create inserts a show after verifying both references inside the same
// transaction. A dangling artist or venue id fails with NotFound and leaves
// the shows table unchanged.
func (r *ShowRepository) Create(ctx context.Context, show *models.Show) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM artists WHERE id = $1)`, show.ArtistID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return apperrors.NewNotFound("artist", show.ArtistID)
	}

	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM venues WHERE id = $1)`, show.VenueID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return apperrors.NewNotFound("venue", show.VenueID)
	}

	query := `
		INSERT INTO shows (artist_id, venue_id, start_time)
		VALUES ($1, $2, $3)
		RETURNING id`

	if err := tx.QueryRowContext(ctx, query,
		show.ArtistID,
		show.VenueID,
		show.StartTime,
	).Scan(&show.ID); err != nil {
		return err
	}

	return tx.Commit()
}

// ListAll returns every show ordered by start time, enriched with the venue
// name and the artist name and image link.
func (r *ShowRepository) ListAll(ctx context.Context) ([]models.ShowListItem, error) {
	query := `
		SELECT sh.venue_id, v.name, sh.artist_id, a.name, a.image_link, sh.start_time
		FROM shows sh
		JOIN venues v ON v.id = sh.venue_id
		JOIN artists a ON a.id = sh.artist_id
		ORDER BY sh.start_time ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shows := []models.ShowListItem{}
	for rows.Next() {
		var show models.ShowListItem
		err := rows.Scan(
			&show.VenueID,
			&show.VenueName,
			&show.ArtistID,
			&show.ArtistName,
			&show.ArtistImageLink,
			&show.StartTime,
		)
		if err != nil {
			return nil, err
		}
		shows = append(shows, show)
	}

	return shows, rows.Err()
}

// ListForVenue returns the venue's shows joined to their artists.
func (r *ShowRepository) ListForVenue(ctx context.Context, venueID int64) ([]models.VenueShow, error) {
	query := `
		SELECT sh.artist_id, a.name, a.image_link, sh.start_time
		FROM shows sh
		JOIN artists a ON a.id = sh.artist_id
		WHERE sh.venue_id = $1
		ORDER BY sh.start_time ASC`

	rows, err := r.db.QueryContext(ctx, query, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shows := []models.VenueShow{}
	for rows.Next() {
		var show models.VenueShow
		if err := rows.Scan(&show.ArtistID, &show.ArtistName, &show.ArtistImageLink, &show.StartTime); err != nil {
			return nil, err
		}
		shows = append(shows, show)
	}

	return shows, rows.Err()
}

// ListForArtist returns the artist's shows joined to their venues.
func (r *ShowRepository) ListForArtist(ctx context.Context, artistID int64) ([]models.ArtistShow, error) {
	query := `
		SELECT sh.venue_id, v.name, v.image_link, sh.start_time
		FROM shows sh
		JOIN venues v ON v.id = sh.venue_id
		WHERE sh.artist_id = $1
		ORDER BY sh.start_time ASC`

	rows, err := r.db.QueryContext(ctx, query, artistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shows := []models.ArtistShow{}
	for rows.Next() {
		var show models.ArtistShow
		if err := rows.Scan(&show.VenueID, &show.VenueName, &show.VenueImageLink, &show.StartTime); err != nil {
			return nil, err
		}
		shows = append(shows, show)
	}

	return shows, rows.Err()
}
