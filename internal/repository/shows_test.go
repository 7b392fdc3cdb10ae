package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SodiqovS/Fyyur/internal/apperrors"
	"github.com/SodiqovS/Fyyur/internal/models"
)

func TestShowCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewShowRepository(db)

	start := time.Date(2026, 9, 21, 21, 30, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM artists WHERE id = $1)`)).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM venues WHERE id = $1)`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(`INSERT INTO shows`).
		WithArgs(int64(4), int64(1), start).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
	mock.ExpectCommit()

	show := &models.Show{ArtistID: 4, VenueID: 1, StartTime: start}
	err := repo.Create(context.Background(), show)

	require.NoError(t, err)
	assert.Equal(t, int64(11), show.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowCreateUnknownArtistLeavesTableUnchanged(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewShowRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM artists WHERE id = $1)`)).
		WithArgs(int64(999)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	show := &models.Show{ArtistID: 999, VenueID: 1, StartTime: time.Now()}
	err := repo.Create(context.Background(), show)

	assert.True(t, apperrors.IsNotFound(err))
	// No INSERT was ever issued; the expectation set above is exhaustive.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowCreateUnknownVenueLeavesTableUnchanged(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewShowRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM artists WHERE id = $1)`)).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM venues WHERE id = $1)`)).
		WithArgs(int64(999)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	show := &models.Show{ArtistID: 4, VenueID: 999, StartTime: time.Now()}
	err := repo.Create(context.Background(), show)

	assert.True(t, apperrors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowListAllOrderedByStartTime(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewShowRepository(db)

	early := time.Date(2026, 5, 21, 21, 30, 0, 0, time.UTC)
	late := time.Date(2026, 6, 15, 23, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM shows sh`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"venue_id", "venue_name", "artist_id", "artist_name", "artist_image_link", "start_time"}).
			AddRow(int64(1), "The Musical Hop", int64(4), "Guns N Petals", "https://example.com/gnp.jpg", early).
			AddRow(int64(3), "Park Square Live Music & Coffee", int64(5), "Matt Quevedo", "", late))

	shows, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, shows, 2)
	assert.Equal(t, "The Musical Hop", shows[0].VenueName)
	assert.Equal(t, early, shows[0].StartTime)
	assert.Equal(t, "Matt Quevedo", shows[1].ArtistName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowListForVenue(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewShowRepository(db)

	start := time.Date(2026, 4, 1, 20, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`WHERE sh.venue_id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"artist_id", "name", "image_link", "start_time"}).
			AddRow(int64(4), "Guns N Petals", "https://example.com/gnp.jpg", start))

	shows, err := repo.ListForVenue(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, []models.VenueShow{{
		ArtistID:        4,
		ArtistName:      "Guns N Petals",
		ArtistImageLink: "https://example.com/gnp.jpg",
		StartTime:       start,
	}}, shows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
