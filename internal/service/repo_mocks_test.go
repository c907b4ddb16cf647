package service_test

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/moodscript/internal/error_values"
	"github.com/limbo/moodscript/internal/repository"
	"github.com/limbo/moodscript/internal/service"
	"github.com/limbo/moodscript/pkg/entity"
)

type mockState int

const (
	stateSuccess mockState = iota
	stateDBError
	stateNotFound
	stateWrongOwner
	stateExists
	stateUserNotFound
)

// Variables for tests
var (
	userID       = uuid.New()
	entryID      = uuid.New()
	collectionID = uuid.New()
	moodScore    = 9
	testEntry    = entity.Entry{
		ID:        entryID,
		UserID:    userID,
		Title:     "test_entry",
		Content:   "test_content",
		Mood:      "happy",
		MoodScore: &moodScore,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	testCollection = entity.Collection{
		ID:          collectionID,
		UserID:      userID,
		Name:        "test_collection",
		Description: "test_description",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
)

type usersRepoMock struct {
	state mockState
	user  entity.User
}

func (m *usersRepoMock) Create(ctx context.Context, user *entity.User) error {
	switch m.state {
	case stateExists:
		return errorvalues.ErrUserExists
	case stateDBError:
		return errors.New("db error")
	}
	m.user = *user
	m.user.ID = userID
	return nil
}

func (m *usersRepoMock) FindByName(ctx context.Context, name string) (*entity.User, error) {
	switch m.state {
	case stateNotFound, stateUserNotFound:
		return nil, errorvalues.ErrUserNotFound
	case stateDBError:
		return nil, errors.New("db error")
	}
	u := m.user
	return &u, nil
}

func (m *usersRepoMock) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	switch m.state {
	case stateNotFound, stateUserNotFound:
		return nil, errorvalues.ErrUserNotFound
	case stateDBError:
		return nil, errors.New("db error")
	}
	u := m.user
	u.ID = uid
	return &u, nil
}

func (m *usersRepoMock) Update(ctx context.Context, user *entity.User) error {
	if m.state == stateDBError {
		return errors.New("db error")
	}
	return nil
}

func (m *usersRepoMock) Delete(ctx context.Context, uid uuid.UUID) error {
	if m.state == stateDBError {
		return errors.New("db error")
	}
	return nil
}

type entriesRepoMock struct {
	state      mockState
	list       []*entity.EntryView
	since      []entity.Entry
	total      int
	created    *entity.Entry
	updated    *entity.Entry
	lastFilter repository.EntryFilter
	lastSince  time.Time
}

func (m *entriesRepoMock) Create(ctx context.Context, entry *entity.Entry) error {
	switch m.state {
	case stateDBError:
		return errors.New("db error")
	case stateUserNotFound:
		return errorvalues.ErrUserNotFound
	}
	entry.ID = entryID
	entry.CreatedAt = testEntry.CreatedAt
	entry.UpdatedAt = testEntry.UpdatedAt
	m.created = entry
	return nil
}

func (m *entriesRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error) {
	switch m.state {
	case stateNotFound:
		return nil, errorvalues.ErrEntryNotFound
	case stateDBError:
		return nil, errors.New("db error")
	case stateWrongOwner:
		e := testEntry
		e.UserID = uuid.New()
		return &e, nil
	}
	e := testEntry
	return &e, nil
}

func (m *entriesRepoMock) List(ctx context.Context, uid uuid.UUID, filter repository.EntryFilter) ([]*entity.EntryView, error) {
	m.lastFilter = filter
	if m.state == stateDBError {
		return nil, errors.New("db error")
	}
	return m.list, nil
}

func (m *entriesRepoMock) Count(ctx context.Context, uid uuid.UUID, filter repository.EntryFilter) (int, error) {
	if m.state == stateDBError {
		return 0, errors.New("db error")
	}
	return m.total, nil
}

func (m *entriesRepoMock) ListSince(ctx context.Context, uid uuid.UUID, since time.Time) ([]entity.Entry, error) {
	m.lastSince = since
	if m.state == stateDBError {
		return nil, errors.New("db error")
	}
	return m.since, nil
}

func (m *entriesRepoMock) Update(ctx context.Context, entry *entity.Entry) error {
	if m.state == stateDBError {
		return errors.New("db error")
	}
	m.updated = entry
	return nil
}

func (m *entriesRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	switch m.state {
	case stateDBError:
		return errors.New("db error")
	case stateNotFound:
		return errorvalues.ErrEntryNotFound
	}
	return nil
}

type collectionsRepoMock struct {
	state mockState
}

func (m *collectionsRepoMock) Create(ctx context.Context, collection *entity.Collection) error {
	switch m.state {
	case stateDBError:
		return errors.New("db error")
	case stateExists:
		return errorvalues.ErrCollectionExists
	case stateUserNotFound:
		return errorvalues.ErrUserNotFound
	}
	collection.ID = collectionID
	collection.CreatedAt = testCollection.CreatedAt
	collection.UpdatedAt = testCollection.UpdatedAt
	return nil
}

func (m *collectionsRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.Collection, error) {
	switch m.state {
	case stateNotFound:
		return nil, errorvalues.ErrCollectionNotFound
	case stateDBError:
		return nil, errors.New("db error")
	case stateWrongOwner:
		c := testCollection
		c.UserID = uuid.New()
		return &c, nil
	}
	c := testCollection
	return &c, nil
}

func (m *collectionsRepoMock) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Collection, error) {
	if m.state == stateDBError {
		return nil, errors.New("db error")
	}
	c := testCollection
	return []*entity.Collection{&c}, nil
}

func (m *collectionsRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	switch m.state {
	case stateDBError:
		return errors.New("db error")
	case stateNotFound:
		return errorvalues.ErrCollectionNotFound
	}
	return nil
}

type draftsRepoMock struct {
	state   mockState
	draft   *entity.Draft
	deleted int
}

func (m *draftsRepoMock) GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Draft, error) {
	switch m.state {
	case stateDBError:
		return nil, errors.New("db error")
	case stateNotFound:
		return nil, nil
	}
	return m.draft, nil
}

func (m *draftsRepoMock) Upsert(ctx context.Context, draft *entity.Draft) error {
	switch m.state {
	case stateDBError:
		return errors.New("db error")
	case stateUserNotFound:
		return errorvalues.ErrUserNotFound
	}
	draft.ID = uuid.New()
	m.draft = draft
	return nil
}

func (m *draftsRepoMock) DeleteByUserID(ctx context.Context, uid uuid.UUID) error {
	m.deleted++
	if m.state == stateDBError {
		return errors.New("db error")
	}
	return nil
}

type imageSearcherMock struct {
	url     *string
	queries []string
}

func (m *imageSearcherMock) SearchImage(ctx context.Context, query string) *string {
	m.queries = append(m.queries, query)
	return m.url
}

type quoteSourceMock struct {
	quote  string
	author string
	err    error
}

func (m *quoteSourceMock) RandomQuote(ctx context.Context) (string, string, error) {
	return m.quote, m.author, m.err
}

var (
	_ repository.UsersRepositoryI       = (*usersRepoMock)(nil)
	_ repository.EntriesRepositoryI     = (*entriesRepoMock)(nil)
	_ repository.CollectionsRepositoryI = (*collectionsRepoMock)(nil)
	_ repository.DraftsRepositoryI      = (*draftsRepoMock)(nil)
	_ service.ImageSearcher             = (*imageSearcherMock)(nil)
	_ service.QuoteSource               = (*quoteSourceMock)(nil)
)
