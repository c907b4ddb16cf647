package service_test

import (
	"context"
	"testing"

	errorvalues "github.com/limbo/moodscript/internal/error_values"
	"github.com/limbo/moodscript/internal/service"
	"github.com/limbo/moodscript/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDraft(t *testing.T) {
	draft := &entity.Draft{UserID: userID, Title: "half", Content: "done"}
	mock := &draftsRepoMock{state: stateSuccess, draft: draft}
	s := service.NewDraftsService(mock)
	ctx := context.Background()
	t.Run("found", func(t *testing.T) {
		d, err := s.GetDraft(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, draft, d)
	})
	t.Run("none", func(t *testing.T) {
		mock.state = stateNotFound
		d, err := s.GetDraft(ctx, userID)
		assert.NoError(t, err)
		assert.Nil(t, d)
	})
	t.Run("db error", func(t *testing.T) {
		mock.state = stateDBError
		_, err := s.GetDraft(ctx, userID)
		assert.Error(t, err)
	})
}

func TestSaveDraft(t *testing.T) {
	mock := &draftsRepoMock{state: stateSuccess}
	s := service.NewDraftsService(mock)
	ctx := context.Background()
	t.Run("normalizes mood", func(t *testing.T) {
		d, err := s.SaveDraft(ctx, userID, service.SaveDraftRequest{Title: "t", Content: "c", Mood: " Calm"})
		require.NoError(t, err)
		assert.Equal(t, "calm", d.Mood)
		assert.Equal(t, userID, d.UserID)
		assert.Same(t, d, mock.draft)
	})
	t.Run("empty draft", func(t *testing.T) {
		d, err := s.SaveDraft(ctx, userID, service.SaveDraftRequest{})
		require.NoError(t, err)
		assert.Empty(t, d.Mood)
	})
	t.Run("unknown mood kept as given", func(t *testing.T) {
		d, err := s.SaveDraft(ctx, userID, service.SaveDraftRequest{Title: "t", Mood: "Bored"})
		require.NoError(t, err)
		assert.Equal(t, "Bored", d.Mood)
		assert.Same(t, d, mock.draft)
	})
	t.Run("owner not found", func(t *testing.T) {
		mock.state = stateUserNotFound
		_, err := s.SaveDraft(ctx, userID, service.SaveDraftRequest{Title: "t"})
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.state = stateDBError
		_, err := s.SaveDraft(ctx, userID, service.SaveDraftRequest{Title: "t"})
		assert.Error(t, err)
	})
}
