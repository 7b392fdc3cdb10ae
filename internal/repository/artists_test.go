package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SodiqovS/Fyyur/internal/apperrors"
	"github.com/SodiqovS/Fyyur/internal/models"
)

func TestArtistUpdateReplacesGenreSet(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewArtistRepository(db)

	// Existing set {1,2} becomes {2,3}: old links dropped wholesale, the new
	// set inserted, all inside the same transaction as the scalar update.
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT code FROM states WHERE id = $1`)).
		WithArgs(int64(6)).
		WillReturnRows(sqlmock.NewRows([]string{"code"}).AddRow("WA"))
	mock.ExpectExec(`UPDATE artists`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM genres WHERE id = ANY($1)`)).
		WithArgs(pq.Array([]int64{2, 3})).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(int64(2), "Blues").
			AddRow(int64(3), "Classical"))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM artist_genre WHERE artist_id = $1`)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO artist_genre (artist_id, genre_id) VALUES ($1, $2)`)).
		WithArgs(int64(5), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO artist_genre (artist_id, genre_id) VALUES ($1, $2)`)).
		WithArgs(int64(5), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	artist := &models.Artist{ID: 5, Name: "Matt Quevedo", City: "Seattle", StateID: 6}
	err := repo.Update(context.Background(), artist, []int64{2, 3})

	require.NoError(t, err)
	assert.Equal(t, []models.Genre{{ID: 2, Name: "Blues"}, {ID: 3, Name: "Classical"}}, artist.Genres)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArtistUpdateMissingIDReturnsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewArtistRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT code FROM states WHERE id = $1`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"code"}).AddRow("AL"))
	mock.ExpectExec(`UPDATE artists`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	artist := &models.Artist{ID: 77, Name: "Nobody", City: "Mobile", StateID: 1}
	err := repo.Update(context.Background(), artist, []int64{1})

	assert.True(t, apperrors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArtistGetByIDLoadsGenres(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewArtistRepository(db)

	mock.ExpectQuery(`SELECT a.id, a.name`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "name", "city", "state_id", "code", "phone", "image_link",
				"facebook_link", "website_link", "seeking_venue", "seeking_description"}).
			AddRow(int64(4), "Guns N Petals", "San Francisco", int64(5), "CA", "326-123-5000",
				"", "", "", true, "Looking for shows to perform"))
	mock.ExpectQuery(`JOIN artist_genre`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(17), "Rock n Roll"))

	artist, err := repo.GetByID(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, "Guns N Petals", artist.Name)
	assert.Equal(t, "CA", artist.StateCode)
	assert.True(t, artist.SeekingVenue)
	assert.Equal(t, []models.Genre{{ID: 17, Name: "Rock n Roll"}}, artist.Genres)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArtistListRecentOrdersByIDDescending(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewArtistRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM artists ORDER BY id DESC LIMIT $1`)).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(int64(6), "The Wild Sax Band").
			AddRow(int64(5), "Matt Quevedo"))

	artists, err := repo.ListRecent(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, []models.ArtistSummary{
		{ID: 6, Name: "The Wild Sax Band"},
		{ID: 5, Name: "Matt Quevedo"},
	}, artists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
