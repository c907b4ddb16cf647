package service_test

import (
	"context"
	"strings"
	"testing"

	errorvalues "github.com/limbo/moodscript/internal/error_values"
	"github.com/limbo/moodscript/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCollection(t *testing.T) {
	mock := &collectionsRepoMock{state: stateSuccess}
	s := service.NewCollectionsService(mock)
	ctx := context.Background()
	req := service.CreateCollectionRequest{
		Name:        "  " + testCollection.Name + " ",
		Description: testCollection.Description,
	}
	t.Run("success", func(t *testing.T) {
		c, err := s.CreateCollection(ctx, userID, req)
		require.NoError(t, err)
		assert.Equal(t, testCollection, *c)
	})
	t.Run("empty name", func(t *testing.T) {
		_, err := s.CreateCollection(ctx, userID, service.CreateCollectionRequest{Name: "   "})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("name too long", func(t *testing.T) {
		_, err := s.CreateCollection(ctx, userID, service.CreateCollectionRequest{Name: strings.Repeat("a", 101)})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("duplicate", func(t *testing.T) {
		mock.state = stateExists
		_, err := s.CreateCollection(ctx, userID, req)
		assert.ErrorIs(t, err, errorvalues.ErrCollectionExists)
	})
	t.Run("owner not found", func(t *testing.T) {
		mock.state = stateUserNotFound
		_, err := s.CreateCollection(ctx, userID, req)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.state = stateDBError
		_, err := s.CreateCollection(ctx, userID, req)
		assert.Error(t, err)
	})
}

func TestGetCollections(t *testing.T) {
	mock := &collectionsRepoMock{state: stateSuccess}
	s := service.NewCollectionsService(mock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		list, err := s.GetCollections(ctx, userID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, testCollection, *list[0])
	})
	t.Run("db error", func(t *testing.T) {
		mock.state = stateDBError
		_, err := s.GetCollections(ctx, userID)
		assert.Error(t, err)
	})
}

func TestGetCollection(t *testing.T) {
	mock := &collectionsRepoMock{state: stateSuccess}
	s := service.NewCollectionsService(mock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		c, err := s.GetCollection(ctx, userID, collectionID)
		require.NoError(t, err)
		assert.Equal(t, testCollection, *c)
	})
	t.Run("wrong owner", func(t *testing.T) {
		mock.state = stateWrongOwner
		_, err := s.GetCollection(ctx, userID, collectionID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("not found", func(t *testing.T) {
		mock.state = stateNotFound
		_, err := s.GetCollection(ctx, userID, collectionID)
		assert.ErrorIs(t, err, errorvalues.ErrCollectionNotFound)
	})
}

func TestDeleteCollection(t *testing.T) {
	mock := &collectionsRepoMock{state: stateSuccess}
	s := service.NewCollectionsService(mock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		assert.NoError(t, s.DeleteCollection(ctx, userID, collectionID))
	})
	t.Run("wrong owner", func(t *testing.T) {
		mock.state = stateWrongOwner
		assert.ErrorIs(t, s.DeleteCollection(ctx, userID, collectionID), errorvalues.ErrWrongOwner)
	})
	t.Run("not found", func(t *testing.T) {
		mock.state = stateNotFound
		assert.ErrorIs(t, s.DeleteCollection(ctx, userID, collectionID), errorvalues.ErrCollectionNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.state = stateDBError
		assert.Error(t, s.DeleteCollection(ctx, userID, collectionID))
	})
}
