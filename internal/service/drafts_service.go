package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/moodscript/internal/error_values"
	"github.com/limbo/moodscript/internal/repository"
	"github.com/limbo/moodscript/pkg/entity"
	"github.com/limbo/moodscript/pkg/moods"
)

type DraftsService struct {
	repo repository.DraftsRepositoryI
}

func NewDraftsService(draftsRepo repository.DraftsRepositoryI) *DraftsService {
	if draftsRepo == nil {
		log.Fatal("provided nil draftsRepo")
	}
	return &DraftsService{
		repo: draftsRepo,
	}
}

func (ds *DraftsService) GetDraft(ctx context.Context, uid uuid.UUID) (*entity.Draft, error) {
	draft, err := ds.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("drafts repository error: " + err.Error())
	}
	return draft, nil
}

// SaveDraft overwrites the user's only draft. A half-filled form may carry
// any mood; known ones are stored by id, the rest as given.
func (ds *DraftsService) SaveDraft(ctx context.Context, uid uuid.UUID, req SaveDraftRequest) (*entity.Draft, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if mood, ok := moods.Lookup(req.Mood); ok {
		req.Mood = mood.ID
	}
	draft := entity.Draft{
		UserID:  uid,
		Title:   req.Title,
		Content: req.Content,
		Mood:    req.Mood,
	}
	err := ds.repo.Upsert(ctx, &draft)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("drafts repository error: " + err.Error())
	}
	return &draft, nil
}
