package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/moodscript/internal/error_values"
	"github.com/limbo/moodscript/internal/repository"
	"github.com/limbo/moodscript/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	userID       = uuid.New()
	entryColumns = []string{"id", "user_id", "title", "content", "mood", "mood_score", "mood_image_url", "collection_id", "created_at", "updated_at"}
	selectEntry  = `SELECT e.id, e.user_id, e.title, e.content, e.mood, e.mood_score, e.mood_image_url, e.collection_id, e.created_at, e.updated_at`
)

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func testEntry() entity.Entry {
	collectionID := uuid.New()
	now := time.Now()
	return entity.Entry{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        "first day",
		Content:      "went for a walk",
		Mood:         "calm",
		MoodScore:    intPtr(7),
		MoodImageURL: strPtr("https://cdn.example.com/calm.jpg"),
		CollectionID: &collectionID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func entryRow(e entity.Entry) []any {
	return []any{e.ID, e.UserID, e.Title, e.Content, e.Mood, e.MoodScore, e.MoodImageURL, e.CollectionID, e.CreatedAt, e.UpdatedAt}
}

func TestCreateEntry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewEntriesRepo(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO entries (user_id, title, content, mood, mood_score, mood_image_url, collection_id) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at;`)
	e := testEntry()
	args := []any{e.UserID, e.Title, e.Content, e.Mood, e.MoodScore, e.MoodImageURL, e.CollectionID}

	t.Run("successfully created", func(t *testing.T) {
		in := e
		in.ID = uuid.UUID{}
		mock.ExpectQuery(query).
			WithArgs(args...).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(e.ID, e.CreatedAt, e.UpdatedAt))
		err := repo.Create(ctx, &in)
		assert.NoError(t, err)
		assert.Equal(t, e, in)
	})
	testCases := []struct {
		Desc  string
		Err   error
		Check func(t *testing.T, err error)
	}{
		{
			Desc: "unknown collection",
			Err:  &pgconn.PgError{Code: "23503", ConstraintName: "entries_collection_id_fkey"},
			Check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, errorvalues.ErrCollectionNotFound)
			},
		},
		{
			Desc: "unknown owner",
			Err:  &pgconn.PgError{Code: "23503", ConstraintName: "entries_user_id_fkey"},
			Check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
			},
		},
		{
			Desc: "db error",
			Err:  errors.New("db error"),
			Check: func(t *testing.T, err error) {
				assert.EqualError(t, err, "creating entry db error: db error")
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			in := e
			mock.ExpectQuery(query).WithArgs(args...).WillReturnError(tc.Err)
			tc.Check(t, repo.Create(ctx, &in))
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEntryByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewEntriesRepo(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(selectEntry + ` FROM entries e WHERE e.id = $1;`)
	e := testEntry()
	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(e.ID).WillReturnRows(pgxmock.NewRows(entryColumns).AddRow(entryRow(e)...))
		result, err := repo.GetByID(ctx, e.ID)
		assert.NoError(t, err)
		assert.Equal(t, e, *result)
	})
	t.Run("entry without score, image and collection", func(t *testing.T) {
		bare := e
		bare.MoodScore = nil
		bare.MoodImageURL = nil
		bare.CollectionID = nil
		mock.ExpectQuery(query).WithArgs(e.ID).WillReturnRows(pgxmock.NewRows(entryColumns).AddRow(entryRow(bare)...))
		result, err := repo.GetByID(ctx, e.ID)
		assert.NoError(t, err)
		assert.Nil(t, result.MoodScore)
		assert.Nil(t, result.CollectionID)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(e.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, e.ID)
		assert.ErrorIs(t, err, errorvalues.ErrEntryNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(e.ID).WillReturnError(errors.New("db error"))
		_, err := repo.GetByID(ctx, e.ID)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrEntryNotFound)
	})
}

func TestListEntries(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewEntriesRepo(mock)
	ctx := context.Background()
	e := testEntry()
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	columns := append(append([]string{}, entryColumns...), "name")
	row := append(entryRow(e), strPtr("Mornings"))

	testCases := []struct {
		Desc   string
		Filter repository.EntryFilter
		Query  string
		Args   []any
	}{
		{
			Desc:   "no filters",
			Filter: repository.EntryFilter{Limit: 5},
			Query:  `WHERE e.user_id = $1 ORDER BY e.created_at DESC LIMIT $2 OFFSET $3;`,
			Args:   []any{userID, 5, 0},
		},
		{
			Desc:   "unorganized wins over collection id",
			Filter: repository.EntryFilter{Unorganized: true, CollectionID: e.CollectionID, Limit: 5, Offset: 10},
			Query:  `WHERE e.user_id = $1 AND e.collection_id IS NULL ORDER BY e.created_at DESC LIMIT $2 OFFSET $3;`,
			Args:   []any{userID, 5, 10},
		},
		{
			Desc: "all filters ascending",
			Filter: repository.EntryFilter{
				CollectionID: e.CollectionID,
				Mood:         "calm",
				Search:       "50%_off",
				StartDate:    &from,
				EndDate:      &to,
				OrderAsc:     true,
				Limit:        10,
				Offset:       20,
			},
			Query: `WHERE e.user_id = $1 AND e.collection_id = $2 AND e.mood = $3 AND (e.title ILIKE $4 OR e.content ILIKE $4) AND e.created_at >= $5 AND e.created_at <= $6 ORDER BY e.created_at ASC LIMIT $7 OFFSET $8;`,
			Args:  []any{userID, *e.CollectionID, "calm", `%50\%\_off%`, from, to, 10, 20},
		},
		{
			Desc:   "no pagination",
			Filter: repository.EntryFilter{Mood: "sad"},
			Query:  `WHERE e.user_id = $1 AND e.mood = $2 ORDER BY e.created_at DESC;`,
			Args:   []any{userID, "sad"},
		},
	}
	prefix := regexp.QuoteMeta(selectEntry + `, c.name FROM entries e LEFT JOIN collections c ON c.id = e.collection_id `)
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			mock.ExpectQuery(prefix + regexp.QuoteMeta(tc.Query)).
				WithArgs(tc.Args...).
				WillReturnRows(pgxmock.NewRows(columns).AddRow(row...))
			result, err := repo.List(ctx, userID, tc.Filter)
			require.NoError(t, err)
			require.Len(t, result, 1)
			assert.Equal(t, e, result[0].Entry)
			assert.Equal(t, "Mornings", *result[0].CollectionName)
		})
	}
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(prefix + regexp.QuoteMeta(`WHERE e.user_id = $1 ORDER BY e.created_at DESC;`)).
			WithArgs(userID).
			WillReturnError(errors.New("db error"))
		_, err := repo.List(ctx, userID, repository.EntryFilter{})
		assert.EqualError(t, err, "listing entries error: db error")
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountEntries(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewEntriesRepo(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT COUNT(*) FROM entries e WHERE e.user_id = $1 AND e.mood = $2;`)
	t.Run("counted", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID, "happy").WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(12))
		count, err := repo.Count(ctx, userID, repository.EntryFilter{Mood: "happy", Limit: 5, Offset: 5})
		assert.NoError(t, err)
		assert.Equal(t, 12, count)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID, "happy").WillReturnError(errors.New("db error"))
		_, err := repo.Count(ctx, userID, repository.EntryFilter{Mood: "happy"})
		assert.Error(t, err)
	})
}

func TestListEntriesSince(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewEntriesRepo(mock)
	ctx := context.Background()
	since := time.Now().AddDate(0, 0, -7)
	query := regexp.QuoteMeta(selectEntry + ` FROM entries e WHERE e.user_id = $1 AND e.created_at >= $2 ORDER BY e.created_at ASC;`)
	first, second := testEntry(), testEntry()
	second.MoodScore = nil
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID, since).
			WillReturnRows(pgxmock.NewRows(entryColumns).AddRow(entryRow(first)...).AddRow(entryRow(second)...))
		result, err := repo.ListSince(ctx, userID, since)
		assert.NoError(t, err)
		assert.Equal(t, []entity.Entry{first, second}, result)
	})
	t.Run("empty", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID, since).WillReturnRows(pgxmock.NewRows(entryColumns))
		result, err := repo.ListSince(ctx, userID, since)
		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID, since).WillReturnError(errors.New("db error"))
		_, err := repo.ListSince(ctx, userID, since)
		assert.Error(t, err)
	})
}

func TestUpdateEntry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewEntriesRepo(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`UPDATE entries SET title = $1, content = $2, mood = $3, mood_score = $4, mood_image_url = $5, collection_id = $6, updated_at = NOW() WHERE id = $7 RETURNING updated_at;`)
	e := testEntry()
	args := []any{e.Title, e.Content, e.Mood, e.MoodScore, e.MoodImageURL, e.CollectionID, e.ID}
	t.Run("updated", func(t *testing.T) {
		updatedAt := e.UpdatedAt.Add(time.Minute)
		mock.ExpectQuery(query).WithArgs(args...).WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(updatedAt))
		in := e
		err := repo.Update(ctx, &in)
		assert.NoError(t, err)
		assert.Equal(t, updatedAt, in.UpdatedAt)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(args...).WillReturnError(pgx.ErrNoRows)
		in := e
		assert.ErrorIs(t, repo.Update(ctx, &in), errorvalues.ErrEntryNotFound)
	})
	t.Run("unknown collection", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "entries_collection_id_fkey"})
		in := e
		assert.ErrorIs(t, repo.Update(ctx, &in), errorvalues.ErrCollectionNotFound)
	})
}

func TestDeleteEntry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewEntriesRepo(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`DELETE FROM entries WHERE id = $1;`)
	id := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "deleted",
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrEntryNotFound,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("deleting entry error: db error"),
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(id).WillReturnError(errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := repo.Delete(ctx, id)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
