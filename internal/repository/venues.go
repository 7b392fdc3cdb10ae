package repository

import (
	"context"
	"database/sql"

	"github.com/SodiqovS/Fyyur/internal/apperrors"
	"github.com/SodiqovS/Fyyur/internal/database"
	"github.com/SodiqovS/Fyyur/internal/models"
)

type VenueRepository struct {
	db *database.DB
}

func NewVenueRepository(db *database.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

// Create inserts the venue and its genre links in one transaction. The venue
// comes back with ID, StateCode and Genres populated.
func (r *VenueRepository) Create(ctx context.Context, venue *models.Venue, genreIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := scanStateCode(ctx, tx, venue.StateID, &venue.StateCode); err != nil {
		return err
	}

	query := `
		INSERT INTO venues (name, city, state_id, address, phone, image_link,
		                    facebook_link, website_link, seeking_talent, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	err = tx.QueryRowContext(ctx, query,
		venue.Name,
		venue.City,
		venue.StateID,
		venue.Address,
		venue.Phone,
		venue.ImageLink,
		venue.FacebookLink,
		venue.WebsiteLink,
		venue.SeekingTalent,
		venue.SeekingDescription,
	).Scan(&venue.ID)
	if err != nil {
		return err
	}

	genres, err := replaceGenreLinks(ctx, tx, "venue_genre", "venue_id", venue.ID, genreIDs)
	if err != nil {
		return err
	}
	venue.Genres = genres

	return tx.Commit()
}

// Update overwrites the scalar fields and replaces the genre link set
// atomically. A missing id fails with NotFound before anything is written.
func (r *VenueRepository) Update(ctx context.Context, venue *models.Venue, genreIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := scanStateCode(ctx, tx, venue.StateID, &venue.StateCode); err != nil {
		return err
	}

	query := `
		UPDATE venues
		SET name = $1, city = $2, state_id = $3, address = $4, phone = $5,
		    image_link = $6, facebook_link = $7, website_link = $8,
		    seeking_talent = $9, seeking_description = $10
		WHERE id = $11`

	res, err := tx.ExecContext(ctx, query,
		venue.Name,
		venue.City,
		venue.StateID,
		venue.Address,
		venue.Phone,
		venue.ImageLink,
		venue.FacebookLink,
		venue.WebsiteLink,
		venue.SeekingTalent,
		venue.SeekingDescription,
		venue.ID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return apperrors.NewNotFound("venue", venue.ID)
	}

	genres, err := replaceGenreLinks(ctx, tx, "venue_genre", "venue_id", venue.ID, genreIDs)
	if err != nil {
		return err
	}
	venue.Genres = genres

	return tx.Commit()
}

// Delete removes the venue's shows, its genre links and the venue row as one
// atomic unit. Genre rows are shared reference data and stay untouched.
func (r *VenueRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM venue_genre WHERE venue_id = $1`, id); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return apperrors.NewNotFound("venue", id)
	}

	return tx.Commit()
}

// GetByID fetches one venue with its state code and genre set.
func (r *VenueRepository) GetByID(ctx context.Context, id int64) (*models.Venue, error) {
	venue := &models.Venue{}
	query := `
		SELECT v.id, v.name, v.city, v.state_id, s.code, v.address, v.phone,
		       v.image_link, v.facebook_link, v.website_link,
		       v.seeking_talent, v.seeking_description
		FROM venues v
		JOIN states s ON s.id = v.state_id
		WHERE v.id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&venue.ID,
		&venue.Name,
		&venue.City,
		&venue.StateID,
		&venue.StateCode,
		&venue.Address,
		&venue.Phone,
		&venue.ImageLink,
		&venue.FacebookLink,
		&venue.WebsiteLink,
		&venue.SeekingTalent,
		&venue.SeekingDescription,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFound("venue", id)
	}
	if err != nil {
		return nil, err
	}

	genres, err := loadGenreLinks(ctx, r.db, "venue_genre", "venue_id", id)
	if err != nil {
		return nil, err
	}
	venue.Genres = genres

	return venue, nil
}

// ListRecent returns the newest venues, descending id as insertion order.
func (r *VenueRepository) ListRecent(ctx context.Context, limit int) ([]models.VenueSummary, error) {
	query := `SELECT id, name FROM venues ORDER BY id DESC LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanVenueSummaries(rows)
}

// SearchByName matches the term as a case-insensitive substring, ordered by
// name. An empty term matches every venue.
func (r *VenueRepository) SearchByName(ctx context.Context, term string) ([]models.VenueSummary, error) {
	query := `
		SELECT id, name FROM venues
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanVenueSummaries(rows)
}

// ListAreas groups all venues by distinct (city, state) pairs. Every venue
// lands in exactly one group; ordering is city, state code, then id.
func (r *VenueRepository) ListAreas(ctx context.Context) ([]models.VenueArea, error) {
	query := `
		SELECT v.city, s.code, v.id, v.name
		FROM venues v
		JOIN states s ON s.id = v.state_id
		ORDER BY v.city ASC, s.code ASC, v.id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	areas := []models.VenueArea{}
	for rows.Next() {
		var city, code string
		var venue models.VenueSummary
		if err := rows.Scan(&city, &code, &venue.ID, &venue.Name); err != nil {
			return nil, err
		}

		if n := len(areas); n > 0 && areas[n-1].City == city && areas[n-1].State == code {
			areas[n-1].Venues = append(areas[n-1].Venues, venue)
			continue
		}
		areas = append(areas, models.VenueArea{
			City:   city,
			State:  code,
			Venues: []models.VenueSummary{venue},
		})
	}

	return areas, rows.Err()
}

func scanVenueSummaries(rows *sql.Rows) ([]models.VenueSummary, error) {
	venues := []models.VenueSummary{}
	for rows.Next() {
		var venue models.VenueSummary
		if err := rows.Scan(&venue.ID, &venue.Name); err != nil {
			return nil, err
		}
		venues = append(venues, venue)
	}
	return venues, rows.Err()
}

// scanStateCode resolves a state id to its code, NotFound when absent.
func scanStateCode(ctx context.Context, tx *sql.Tx, stateID int64, code *string) error {
	err := tx.QueryRowContext(ctx, `SELECT code FROM states WHERE id = $1`, stateID).Scan(code)
	if err == sql.ErrNoRows {
		return apperrors.NewNotFound("state", stateID)
	}
	return err
}
