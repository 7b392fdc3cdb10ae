package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SodiqovS/Fyyur/internal/models"
)

func TestSeedStatesInsertsWhenEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReferenceRepository(db)

	codes := []string{"AL", "AK", "AZ"}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM states`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	for _, code := range codes {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO states (code) VALUES ($1)`)).
			WithArgs(code).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	err := repo.SeedStates(context.Background(), codes)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedStatesSkipsWhenPopulated(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReferenceRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM states`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(51))
	mock.ExpectCommit()

	err := repo.SeedStates(context.Background(), []string{"AL", "AK"})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedGenresSkipsWhenPopulated(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReferenceRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM genres`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(19))
	mock.ExpectCommit()

	err := repo.SeedGenres(context.Background(), []string{"Jazz"})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListGenres(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReferenceRepository(db)

	mock.ExpectQuery(`SELECT id, name FROM genres ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(int64(3), "Classical").
			AddRow(int64(11), "Jazz"))

	genres, err := repo.ListGenres(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.Genre{
		{ID: 3, Name: "Classical"},
		{ID: 11, Name: "Jazz"},
	}, genres)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListStates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReferenceRepository(db)

	mock.ExpectQuery(`SELECT id, code FROM states ORDER BY code ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "code"}).
			AddRow(int64(2), "AK").
			AddRow(int64(1), "AL"))

	states, err := repo.ListStates(context.Background())

	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, "AK", states[0].Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
