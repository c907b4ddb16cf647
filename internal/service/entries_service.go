package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/moodscript/internal/error_values"
	"github.com/limbo/moodscript/internal/repository"
	"github.com/limbo/moodscript/pkg/entity"
	"github.com/limbo/moodscript/pkg/moods"
)

const (
	DefaultEntriesLimit = 5
	MaxEntriesLimit     = 50
	// keeps (page-1)*limit far from int overflow
	MaxEntriesPage = 100000
)

type EntriesService struct {
	entries     repository.EntriesRepositoryI
	collections repository.CollectionsRepositoryI
	drafts      repository.DraftsRepositoryI
	images      ImageSearcher
}

// NewEntriesService builds the service. images may be nil, then entries get no illustration.
func NewEntriesService(
	entriesRepo repository.EntriesRepositoryI,
	collectionsRepo repository.CollectionsRepositoryI,
	draftsRepo repository.DraftsRepositoryI,
	images ImageSearcher,
) *EntriesService {
	if entriesRepo == nil || collectionsRepo == nil || draftsRepo == nil {
		log.Fatal("provided nil repository to entries service")
	}
	return &EntriesService{
		entries:     entriesRepo,
		collections: collectionsRepo,
		drafts:      draftsRepo,
		images:      images,
	}
}

func (es *EntriesService) CreateEntry(ctx context.Context, uid uuid.UUID, req CreateEntryRequest) (*entity.Entry, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	mood, ok := moods.Lookup(req.Mood)
	if !ok {
		return nil, errorvalues.ErrInvalidMood
	}
	if req.CollectionID != nil {
		if err := es.checkCollection(ctx, uid, *req.CollectionID); err != nil {
			return nil, err
		}
	}
	score := mood.Score
	entry := entity.Entry{
		UserID:       uid,
		Title:        req.Title,
		Content:      req.Content,
		Mood:         mood.ID,
		MoodScore:    &score,
		MoodImageURL: es.searchImage(ctx, req.MoodQuery, mood),
		CollectionID: req.CollectionID,
	}
	err := es.entries.Create(ctx, &entry)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrCollectionNotFound), errors.Is(err, errorvalues.ErrUserNotFound):
			return nil, err
		}
		return nil, errors.New("entries repository error: " + err.Error())
	}
	// Entry is already stored, a leftover draft is not worth failing the request
	if err = es.drafts.DeleteByUserID(ctx, uid); err != nil {
		slog.Warn("deleting draft after publishing entry failed",
			slog.String("uid", uid.String()),
			slog.String("error", err.Error()),
		)
	}
	return &entry, nil
}

func (es *EntriesService) GetEntries(ctx context.Context, uid uuid.UUID, query EntriesQuery) (*EntriesPage, error) {
	if query.Limit < 1 || query.Limit > MaxEntriesLimit {
		query.Limit = DefaultEntriesLimit
	}
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Page > MaxEntriesPage {
		query.Page = MaxEntriesPage
	}
	if mood, ok := moods.Lookup(query.Mood); ok {
		query.Mood = mood.ID
	}
	filter := repository.EntryFilter{
		CollectionID: query.CollectionID,
		Unorganized:  query.Unorganized,
		Mood:         query.Mood,
		Search:       query.Search,
		StartDate:    query.StartDate,
		EndDate:      query.EndDate,
		OrderAsc:     query.OrderAsc,
		Limit:        query.Limit,
		Offset:       (query.Page - 1) * query.Limit,
	}
	total, err := es.entries.Count(ctx, uid, filter)
	if err != nil {
		return nil, errors.New("entries repository error: " + err.Error())
	}
	views, err := es.entries.List(ctx, uid, filter)
	if err != nil {
		return nil, errors.New("entries repository error: " + err.Error())
	}
	for _, v := range views {
		withMoodData(v)
	}
	pages := (total + query.Limit - 1) / query.Limit
	return &EntriesPage{
		Entries: views,
		Pagination: entity.Pagination{
			Total:   total,
			Pages:   pages,
			Current: query.Page,
			HasMore: query.Page < pages,
		},
	}, nil
}

func (es *EntriesService) GetEntry(ctx context.Context, uid, entryID uuid.UUID) (*entity.EntryView, error) {
	entry, err := es.ownedEntry(ctx, uid, entryID)
	if err != nil {
		return nil, err
	}
	view := &entity.EntryView{Entry: *entry}
	withMoodData(view)
	if entry.CollectionID != nil {
		c, err := es.collections.GetByID(ctx, *entry.CollectionID)
		switch {
		case err == nil:
			view.CollectionName = &c.Name
		case !errors.Is(err, errorvalues.ErrCollectionNotFound):
			return nil, errors.New("collections repository error: " + err.Error())
		}
	}
	return view, nil
}

// UpdateEntry looks for a new illustration only when the mood changes.
func (es *EntriesService) UpdateEntry(ctx context.Context, uid, entryID uuid.UUID, req UpdateEntryRequest) (*entity.Entry, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	mood, ok := moods.Lookup(req.Mood)
	if !ok {
		return nil, errorvalues.ErrInvalidMood
	}
	entry, err := es.ownedEntry(ctx, uid, entryID)
	if err != nil {
		return nil, err
	}
	if req.CollectionID != nil {
		if err := es.checkCollection(ctx, uid, *req.CollectionID); err != nil {
			return nil, err
		}
	}
	if entry.Mood != mood.ID {
		score := mood.Score
		entry.MoodScore = &score
		entry.MoodImageURL = es.searchImage(ctx, req.MoodQuery, mood)
	}
	entry.Title = req.Title
	entry.Content = req.Content
	entry.Mood = mood.ID
	entry.CollectionID = req.CollectionID
	err = es.entries.Update(ctx, entry)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrEntryNotFound), errors.Is(err, errorvalues.ErrCollectionNotFound):
			return nil, err
		}
		return nil, errors.New("entries repository error: " + err.Error())
	}
	return entry, nil
}

func (es *EntriesService) DeleteEntry(ctx context.Context, uid, entryID uuid.UUID) (*entity.Entry, error) {
	entry, err := es.ownedEntry(ctx, uid, entryID)
	if err != nil {
		return nil, err
	}
	err = es.entries.Delete(ctx, entryID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return nil, err
		}
		return nil, errors.New("entries repository error: " + err.Error())
	}
	return entry, nil
}

func (es *EntriesService) ownedEntry(ctx context.Context, uid, entryID uuid.UUID) (*entity.Entry, error) {
	entry, err := es.entries.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return nil, err
		}
		return nil, errors.New("entries repository error: " + err.Error())
	}
	if entry.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return entry, nil
}

// checkCollection reports another user's collection as missing.
func (es *EntriesService) checkCollection(ctx context.Context, uid, collectionID uuid.UUID) error {
	c, err := es.collections.GetByID(ctx, collectionID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCollectionNotFound) {
			return err
		}
		return errors.New("collections repository error: " + err.Error())
	}
	if c.UserID != uid {
		return errorvalues.ErrCollectionNotFound
	}
	return nil
}

func (es *EntriesService) searchImage(ctx context.Context, query string, mood entity.Mood) *string {
	if es.images == nil {
		return nil
	}
	if query == "" {
		query = mood.ImageQuery
	}
	return es.images.SearchImage(ctx, query)
}

func withMoodData(v *entity.EntryView) {
	if mood, ok := moods.Lookup(v.Mood); ok {
		v.MoodData = &mood
	}
}
