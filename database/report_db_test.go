package database

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadcountByLocation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"location_id", "name", "headcount"}).
		AddRow(int64(2), "Hanoi", int64(7)).
		AddRow(nil, "", int64(3))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT p.location_id, COALESCE(l.name, ''), COUNT(p.id) AS headcount FROM people p LEFT JOIN locations l ON l.id = p.location_id WHERE p.status = ?")).
		WithArgs(true).
		WillReturnRows(rows)

	result, err := HeadcountByLocation(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, result, 2)

	require.NotNil(t, result[0].LocationID)
	assert.Equal(t, uint(2), *result[0].LocationID)
	assert.Equal(t, "Hanoi", result[0].LocationName)
	assert.Equal(t, int64(7), result[0].Headcount)
	assert.Nil(t, result[1].LocationID)
	assert.Equal(t, int64(3), result[1].Headcount)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHeadcountByLocation_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("disk I/O error"))

	_, err = HeadcountByLocation(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk I/O error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsageByCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "persons"}).
		AddRow(int64(1), "Backend", int64(4)).
		AddRow(int64(3), "Mobile", int64(0))

	mock.ExpectQuery(regexp.QuoteMeta("FROM categories c LEFT JOIN category_persons cp ON cp.category_id = c.id AND cp.status = ?")).
		WithArgs(true, true, true).
		WillReturnRows(rows)

	result, err := UsageByCategory(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, []CategoryUsage{
		{CategoryID: 1, CategoryName: "Backend", Persons: 4},
		{CategoryID: 3, CategoryName: "Mobile", Persons: 0},
	}, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}
