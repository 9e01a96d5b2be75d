package ratings

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/recipeplanner/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

const upsertQ = `(?s)INSERT\s+INTO\s+ratings.*ON\s+CONFLICT\s+\(recipe_id,\s*user_id\)\s+DO\s+UPDATE`

func TestUpsert(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	review := "great"
	now := time.Now()
	mock.ExpectQuery(upsertQ).
		WithArgs(int64(7), "u1", 5, sql.NullString{String: "great", Valid: true}).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "created_at", "username"}).AddRow("u1", now, "cook"))
	mock.ExpectQuery(upsertQ).
		WithArgs(int64(7), "u1", 3, sql.NullString{}).
		WillReturnError(errors.New("db down"))

	got, err := repo.Upsert(context.Background(), &models.Rating{RecipeID: 7, UserID: "u1", Score: 5, Review: &review})
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID, "a rating is identified by its author")
	assert.Equal(t, "cook", got.UserName)

	_, err = repo.Upsert(context.Background(), &models.Rating{RecipeID: 7, UserID: "u1", Score: 3})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByRecipe(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)FROM\s+ratings\s+r\s+JOIN\s+users\s+u.*ORDER\s+BY\s+r\.created_at\s+DESC`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"recipe_id", "user_id", "username", "score", "review", "created_at"}).
			AddRow(int64(7), "u2", "ann", 4, nil, time.Now()).
			AddRow(int64(7), "u1", "cook", 5, "yum", time.Now().Add(-time.Hour)))

	got, err := repo.ListByRecipe(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "u2", got[0].ID)
	assert.Nil(t, got[0].Review)
	require.NotNil(t, got[1].Review)
	assert.Equal(t, "yum", *got[1].Review)
	assert.Equal(t, 5, got[1].Score)
}

func TestAverage(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	q := `(?s)SELECT\s+COALESCE\(AVG\(score\),\s*0\)::float8,\s*COUNT\(\*\)\s+FROM\s+ratings`
	mock.ExpectQuery(q).WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"avg", "count"}).AddRow(4.5, 2))
	mock.ExpectQuery(q).WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"avg", "count"}).AddRow(0.0, 0))

	avg, err := repo.Average(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, models.AverageRating{Average: 4.5, Count: 2}, avg)

	avg, err = repo.Average(context.Background(), 8)
	require.NoError(t, err)
	assert.Zero(t, avg)
}
