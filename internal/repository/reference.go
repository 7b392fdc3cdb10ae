package repository

import (
	"context"

	"github.com/SodiqovS/Fyyur/internal/database"
	"github.com/SodiqovS/Fyyur/internal/models"
)

// ReferenceRepository owns the seeded states and genres tables.
type ReferenceRepository struct {
	db *database.DB
}

func NewReferenceRepository(db *database.DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

// ListStates returns all states ordered by code.
func (r *ReferenceRepository) ListStates(ctx context.Context) ([]models.State, error) {
	query := `SELECT id, code FROM states ORDER BY code ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	states := []models.State{}
	for rows.Next() {
		var state models.State
		if err := rows.Scan(&state.ID, &state.Code); err != nil {
			return nil, err
		}
		states = append(states, state)
	}

	return states, rows.Err()
}

// ListGenres returns all genres ordered by name.
func (r *ReferenceRepository) ListGenres(ctx context.Context) ([]models.Genre, error) {
	query := `SELECT id, name FROM genres ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	genres := []models.Genre{}
	for rows.Next() {
		var genre models.Genre
		if err := rows.Scan(&genre.ID, &genre.Name); err != nil {
			return nil, err
		}
		genres = append(genres, genre)
	}

	return genres, rows.Err()
}

// SeedStates inserts the state codes only when the table is empty. The count
// check and the inserts share one transaction, so running it on every boot
// never duplicates rows.
func (r *ReferenceRepository) SeedStates(ctx context.Context, codes []string) error {
	return r.seed(ctx, `SELECT COUNT(*) FROM states`, `INSERT INTO states (code) VALUES ($1)`, codes)
}

// SeedGenres inserts the genre names only when the table is empty.
func (r *ReferenceRepository) SeedGenres(ctx context.Context, names []string) error {
	return r.seed(ctx, `SELECT COUNT(*) FROM genres`, `INSERT INTO genres (name) VALUES ($1)`, names)
}

func (r *ReferenceRepository) seed(ctx context.Context, countQuery, insertQuery string, values []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return tx.Commit()
	}

	for _, value := range values {
		if _, err := tx.ExecContext(ctx, insertQuery, value); err != nil {
			return err
		}
	}

	return tx.Commit()
}
