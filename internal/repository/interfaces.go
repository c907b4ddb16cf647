package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/moodscript/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user together with entries, collections and draft
	Delete(ctx context.Context, uid uuid.UUID) error
}

type EntriesRepositoryI interface {
	// Inserts entry and fills its ID, CreatedAt, UpdatedAt
	Create(ctx context.Context, entry *entity.Entry) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error)
	// Lists user's entries matching filter, with collection names
	List(ctx context.Context, uid uuid.UUID, filter EntryFilter) ([]*entity.EntryView, error)
	// Counts user's entries matching filter (pagination is ignored)
	Count(ctx context.Context, uid uuid.UUID, filter EntryFilter) (int, error)
	// Entries created at or after since, oldest first. Used for analytics
	ListSince(ctx context.Context, uid uuid.UUID, since time.Time) ([]entity.Entry, error)
	Update(ctx context.Context, entry *entity.Entry) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CollectionsRepositoryI interface {
	// Inserts collection and fills its ID, CreatedAt, UpdatedAt
	Create(ctx context.Context, collection *entity.Collection) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Collection, error)
	// Lists user's collections, newest first
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Collection, error)
	// Deletes collection. Its entries are removed by the FK cascade
	Delete(ctx context.Context, id uuid.UUID) error
}

type DraftsRepositoryI interface {
	// Returns nil, nil when user has no draft
	GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Draft, error)
	// Creates or overwrites the user's single draft
	Upsert(ctx context.Context, draft *entity.Draft) error
	DeleteByUserID(ctx context.Context, uid uuid.UUID) error
}

// EntryFilter narrows entry listings. Zero value means all of the user's entries, newest first.
type EntryFilter struct {
	CollectionID *uuid.UUID
	// Only entries without collection. Takes precedence over CollectionID
	Unorganized bool
	Mood        string
	// Case-insensitive substring of title or content
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
	OrderAsc  bool
	Limit     int
	Offset    int
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
