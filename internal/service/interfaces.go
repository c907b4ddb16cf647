package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/moodscript/internal/analytics"
	"github.com/limbo/moodscript/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Email    string `validate:"omitempty,email,max=255"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateEntryRequest struct {
	Title   string `validate:"required,max=200"`
	Content string `validate:"required,max=20000"`
	Mood    string `validate:"required,max=32"`
	// Image search phrase. Mood's own query is used when empty
	MoodQuery    string `validate:"max=100"`
	CollectionID *uuid.UUID
}

type UpdateEntryRequest struct {
	Title        string `validate:"required,max=200"`
	Content      string `validate:"required,max=20000"`
	Mood         string `validate:"required,max=32"`
	MoodQuery    string `validate:"max=100"`
	CollectionID *uuid.UUID
}

// EntriesQuery describes one page of a user's entries.
type EntriesQuery struct {
	CollectionID *uuid.UUID
	Unorganized  bool
	Mood         string
	Search       string
	StartDate    *time.Time
	EndDate      *time.Time
	OrderAsc     bool
	Page         int
	Limit        int
}

type EntriesPage struct {
	Entries    []*entity.EntryView `json:"entries"`
	Pagination entity.Pagination   `json:"pagination"`
}

type CreateCollectionRequest struct {
	Name        string `validate:"required,min=1,max=100"`
	Description string `validate:"max=500"`
}

type SaveDraftRequest struct {
	Title   string `validate:"max=200"`
	Content string `validate:"max=20000"`
	Mood    string `validate:"max=32"`
}

type AnalyticsResult struct {
	Timeline []entity.AnalyticsPoint `json:"timeline"`
	Stats    entity.OverallStats     `json:"stats"`
	Trend    string                  `json:"trend"`
	Entries  []entity.Entry          `json:"entries"`
}

// ImageSearcher finds an illustration for a mood. Nil means nothing was found.
type ImageSearcher interface {
	SearchImage(ctx context.Context, query string) *string
}

type QuoteSource interface {
	RandomQuote(ctx context.Context) (quote, author string, err error)
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type EntriesServiceI interface {
	// Stores new entry with mood score and illustration, then drops user's draft
	CreateEntry(ctx context.Context, uid uuid.UUID, req CreateEntryRequest) (*entity.Entry, error)
	GetEntries(ctx context.Context, uid uuid.UUID, query EntriesQuery) (*EntriesPage, error)
	GetEntry(ctx context.Context, uid, entryID uuid.UUID) (*entity.EntryView, error)
	UpdateEntry(ctx context.Context, uid, entryID uuid.UUID, req UpdateEntryRequest) (*entity.Entry, error)
	// Returns the deleted entry
	DeleteEntry(ctx context.Context, uid, entryID uuid.UUID) (*entity.Entry, error)
}

type CollectionsServiceI interface {
	GetCollections(ctx context.Context, uid uuid.UUID) ([]*entity.Collection, error)
	GetCollection(ctx context.Context, uid, collectionID uuid.UUID) (*entity.Collection, error)
	CreateCollection(ctx context.Context, uid uuid.UUID, req CreateCollectionRequest) (*entity.Collection, error)
	// Deletes collection together with its entries
	DeleteCollection(ctx context.Context, uid, collectionID uuid.UUID) error
}

type DraftsServiceI interface {
	// Nil draft without error when user has none
	GetDraft(ctx context.Context, uid uuid.UUID) (*entity.Draft, error)
	SaveDraft(ctx context.Context, uid uuid.UUID, req SaveDraftRequest) (*entity.Draft, error)
}

type AnalyticsServiceI interface {
	GetAnalytics(ctx context.Context, uid uuid.UUID, period analytics.Period) (*AnalyticsResult, error)
}

type PromptServiceI interface {
	// Never fails. Falls back to a fixed prompt
	DailyPrompt(ctx context.Context) string
}
