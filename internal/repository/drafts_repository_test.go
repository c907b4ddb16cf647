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

func TestGetDraft(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewDraftsRepo(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT id, title, content, mood, created_at, updated_at FROM drafts WHERE user_id = $1;`)
	now := time.Now()
	draft := entity.Draft{ID: uuid.New(), UserID: userID, Title: "half", Content: "written", Mood: "tired", CreatedAt: now, UpdatedAt: now}
	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).WillReturnRows(
			pgxmock.NewRows([]string{"id", "title", "content", "mood", "created_at", "updated_at"}).
				AddRow(draft.ID, draft.Title, draft.Content, draft.Mood, draft.CreatedAt, draft.UpdatedAt))
		result, err := repo.GetByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, draft, *result)
	})
	t.Run("no draft", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).WillReturnError(pgx.ErrNoRows)
		result, err := repo.GetByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserID(ctx, userID)
		assert.Error(t, err)
	})
}

func TestUpsertDraft(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewDraftsRepo(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO drafts (user_id, title, content, mood) VALUES ($1, $2, $3, $4) ON CONFLICT (user_id) DO UPDATE SET title = EXCLUDED.title, content = EXCLUDED.content, mood = EXCLUDED.mood, updated_at = NOW() RETURNING id, created_at, updated_at;`)
	id := uuid.New()
	now := time.Now()
	t.Run("saved", func(t *testing.T) {
		draft := entity.Draft{UserID: userID, Title: "t", Content: "c", Mood: "calm"}
		mock.ExpectQuery(query).WithArgs(userID, "t", "c", "calm").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id, now, now))
		err := repo.Upsert(ctx, &draft)
		assert.NoError(t, err)
		assert.Equal(t, id, draft.ID)
		assert.Equal(t, now, draft.UpdatedAt)
	})
	t.Run("owner missing", func(t *testing.T) {
		draft := entity.Draft{UserID: userID, Title: "t", Content: "c", Mood: "calm"}
		mock.ExpectQuery(query).WithArgs(userID, "t", "c", "calm").WillReturnError(&pgconn.PgError{Code: "23503"})
		assert.ErrorIs(t, repo.Upsert(ctx, &draft), errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		draft := entity.Draft{UserID: userID, Title: "t", Content: "c", Mood: "calm"}
		mock.ExpectQuery(query).WithArgs(userID, "t", "c", "calm").WillReturnError(errors.New("db error"))
		assert.EqualError(t, repo.Upsert(ctx, &draft), "saving draft error: db error")
	})
}

func TestDeleteDraft(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewDraftsRepo(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`DELETE FROM drafts WHERE user_id = $1;`)
	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(userID).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, repo.DeleteByUserID(ctx, userID))
	})
	t.Run("nothing to delete", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(userID).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.NoError(t, repo.DeleteByUserID(ctx, userID))
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(userID).WillReturnError(errors.New("db error"))
		assert.Error(t, repo.DeleteByUserID(ctx, userID))
	})
}
