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
	"github.com/SodiqovS/Fyyur/internal/database"
	"github.com/SodiqovS/Fyyur/internal/models"
)

func newMockDB(t *testing.T) (*database.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &database.DB{DB: db}, mock
}

func TestVenueCreateLinksRequestedGenres(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVenueRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT code FROM states WHERE id = $1`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"code"}).AddRow("CA"))
	mock.ExpectQuery(`INSERT INTO venues`).
		WithArgs("The Dueling Pianos Bar", "San Francisco", int64(1), "335 Delancey Street",
			"914-003-1132", "", "", "", false, "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM genres WHERE id = ANY($1)`)).
		WithArgs(pq.Array([]int64{2, 5})).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(int64(2), "Classical").
			AddRow(int64(5), "R&B"))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM venue_genre WHERE venue_id = $1`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO venue_genre (venue_id, genre_id) VALUES ($1, $2)`)).
		WithArgs(int64(7), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO venue_genre (venue_id, genre_id) VALUES ($1, $2)`)).
		WithArgs(int64(7), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	venue := &models.Venue{
		Name:    "The Dueling Pianos Bar",
		City:    "San Francisco",
		StateID: 1,
		Address: "335 Delancey Street",
		Phone:   "914-003-1132",
	}
	// Duplicate genre id collapses to one link row.
	err := repo.Create(context.Background(), venue, []int64{2, 5, 2})

	require.NoError(t, err)
	assert.Equal(t, int64(7), venue.ID)
	assert.Equal(t, "CA", venue.StateCode)
	assert.Len(t, venue.Genres, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueCreateUnknownGenreRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVenueRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT code FROM states WHERE id = $1`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"code"}).AddRow("NY"))
	mock.ExpectQuery(`INSERT INTO venues`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM genres WHERE id = ANY($1)`)).
		WithArgs(pq.Array([]int64{99})).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
	mock.ExpectRollback()

	venue := &models.Venue{Name: "Park Square", City: "New York", StateID: 1, Address: "5th Ave"}
	err := repo.Create(context.Background(), venue, []int64{99})

	assert.True(t, apperrors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueUpdateMissingIDReturnsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVenueRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT code FROM states WHERE id = $1`)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"code"}).AddRow("AK"))
	mock.ExpectExec(`UPDATE venues`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	venue := &models.Venue{ID: 42, Name: "Gone", City: "Juneau", StateID: 2, Address: "1 Dock St"}
	err := repo.Update(context.Background(), venue, []int64{1})

	assert.True(t, apperrors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueDeleteCascadesShowsAndLinksOnly(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVenueRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM shows WHERE venue_id = $1`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM venue_genre WHERE venue_id = $1`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM venues WHERE id = $1`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), 7)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueDeleteMissingIDReturnsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVenueRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM shows WHERE venue_id = $1`)).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM venue_genre WHERE venue_id = $1`)).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM venues WHERE id = $1`)).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 404)

	assert.True(t, apperrors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueSearchByName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVenueRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE name ILIKE '%' || $1 || '%'`)).
		WithArgs("music").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(int64(2), "The Musical Hop").
			AddRow(int64(9), "Tiny Music Hall"))

	venues, err := repo.SearchByName(context.Background(), "music")

	require.NoError(t, err)
	assert.Equal(t, []models.VenueSummary{
		{ID: 2, Name: "The Musical Hop"},
		{ID: 9, Name: "Tiny Music Hall"},
	}, venues)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueListAreasGroupsByCityAndState(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVenueRepository(db)

	mock.ExpectQuery(`SELECT v.city, s.code, v.id, v.name`).
		WillReturnRows(sqlmock.NewRows([]string{"city", "code", "id", "name"}).
			AddRow("New York", "NY", int64(3), "Park Square Live Music & Coffee").
			AddRow("San Francisco", "CA", int64(1), "The Musical Hop").
			AddRow("San Francisco", "CA", int64(2), "The Dueling Pianos Bar"))

	areas, err := repo.ListAreas(context.Background())

	require.NoError(t, err)
	require.Len(t, areas, 2)
	assert.Equal(t, "New York", areas[0].City)
	assert.Equal(t, "NY", areas[0].State)
	assert.Len(t, areas[0].Venues, 1)
	assert.Equal(t, "San Francisco", areas[1].City)
	assert.Len(t, areas[1].Venues, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVenueRepository(db)

	mock.ExpectQuery(`SELECT v.id, v.name`).
		WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	venue, err := repo.GetByID(context.Background(), 12)

	assert.Nil(t, venue)
	assert.True(t, apperrors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
