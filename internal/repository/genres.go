package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/SodiqovS/Fyyur/internal/apperrors"
	"github.com/SodiqovS/Fyyur/internal/models"
)

// dedupeIDs collapses a submitted id list into a set, preserving first-seen
// order. Link tables hold one row per (owner, genre) pair.
func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// resolveGenres loads the genres for the given ids inside tx. Any id that does
// not exist fails the whole operation with a NotFoundError.
func resolveGenres(ctx context.Context, tx *sql.Tx, ids []int64) ([]models.Genre, error) {
	if len(ids) == 0 {
		return []models.Genre{}, nil
	}

	query := `SELECT id, name FROM genres WHERE id = ANY($1) ORDER BY name ASC`
	rows, err := tx.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	found := make(map[int64]struct{}, len(ids))
	var genres []models.Genre
	for rows.Next() {
		var genre models.Genre
		if err := rows.Scan(&genre.ID, &genre.Name); err != nil {
			return nil, err
		}
		found[genre.ID] = struct{}{}
		genres = append(genres, genre)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return nil, apperrors.NewNotFound("genre", id)
		}
	}

	return genres, nil
}

// replaceGenreLinks swaps the full link-row set for one owner inside tx:
// old rows go, rows for exactly the requested ids come in. Genre rows
// themselves are shared reference data and are never touched.
func replaceGenreLinks(ctx context.Context, tx *sql.Tx, table, ownerColumn string, ownerID int64, genreIDs []int64) ([]models.Genre, error) {
	ids := dedupeIDs(genreIDs)

	genres, err := resolveGenres(ctx, tx, ids)
	if err != nil {
		return nil, err
	}

	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table, ownerColumn)
	if _, err := tx.ExecContext(ctx, deleteQuery, ownerID); err != nil {
		return nil, err
	}

	insertQuery := fmt.Sprintf(`INSERT INTO %s (%s, genre_id) VALUES ($1, $2)`, table, ownerColumn)
	for _, id := range ids {
		if _, err := tx.ExecContext(ctx, insertQuery, ownerID, id); err != nil {
			return nil, err
		}
	}

	return genres, nil
}

// loadGenreLinks reads the current genre set for one owner, name ascending.
func loadGenreLinks(ctx context.Context, db queryer, table, ownerColumn string, ownerID int64) ([]models.Genre, error) {
	query := fmt.Sprintf(`
		SELECT g.id, g.name
		FROM genres g
		JOIN %s l ON l.genre_id = g.id
		WHERE l.%s = $1
		ORDER BY g.name ASC`, table, ownerColumn)

	rows, err := db.QueryContext(ctx, query, ownerID)
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

// queryer is satisfied by both *database.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}
