package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/moodscript/internal/error_values"
	"github.com/limbo/moodscript/internal/repository"
	"github.com/limbo/moodscript/pkg/entity"
)

type CollectionsService struct {
	repo repository.CollectionsRepositoryI
}

func NewCollectionsService(collectionsRepo repository.CollectionsRepositoryI) *CollectionsService {
	if collectionsRepo == nil {
		log.Fatal("provided nil collectionsRepo")
	}
	return &CollectionsService{
		repo: collectionsRepo,
	}
}

func (cs *CollectionsService) GetCollections(ctx context.Context, uid uuid.UUID) ([]*entity.Collection, error) {
	collections, err := cs.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("collections repository error: " + err.Error())
	}
	return collections, nil
}

func (cs *CollectionsService) GetCollection(ctx context.Context, uid, collectionID uuid.UUID) (*entity.Collection, error) {
	c, err := cs.repo.GetByID(ctx, collectionID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCollectionNotFound) {
			return nil, err
		}
		return nil, errors.New("collections repository error: " + err.Error())
	}
	if c.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return c, nil
}

func (cs *CollectionsService) CreateCollection(ctx context.Context, uid uuid.UUID, req CreateCollectionRequest) (*entity.Collection, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	c := entity.Collection{
		UserID:      uid,
		Name:        req.Name,
		Description: req.Description,
	}
	err := cs.repo.Create(ctx, &c)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrCollectionExists), errors.Is(err, errorvalues.ErrUserNotFound):
			return nil, err
		}
		return nil, errors.New("collections repository error: " + err.Error())
	}
	return &c, nil
}

func (cs *CollectionsService) DeleteCollection(ctx context.Context, uid, collectionID uuid.UUID) error {
	if _, err := cs.GetCollection(ctx, uid, collectionID); err != nil {
		return err
	}
	err := cs.repo.Delete(ctx, collectionID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCollectionNotFound) {
			return err
		}
		return errors.New("collections repository error: " + err.Error())
	}
	return nil
}
