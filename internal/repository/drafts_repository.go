package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/moodscript/internal/error_values"
	"github.com/limbo/moodscript/pkg/entity"
)

type DraftsRepository struct {
	conn PgConnection
}

func NewDraftsRepo(conn PgConnection) *DraftsRepository {
	return &DraftsRepository{
		conn: conn,
	}
}

func (dr *DraftsRepository) GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Draft, error) {
	d := entity.Draft{UserID: uid}
	row := dr.conn.QueryRow(ctx, `SELECT id, title, content, mood, created_at, updated_at FROM drafts WHERE user_id = $1;`, uid)
	if err := row.Scan(&d.ID, &d.Title, &d.Content, &d.Mood, &d.CreatedAt, &d.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting draft error: " + err.Error())
	}
	return &d, nil
}

func (dr *DraftsRepository) Upsert(ctx context.Context, draft *entity.Draft) error {
	row := dr.conn.QueryRow(ctx, `INSERT INTO drafts (user_id, title, content, mood) VALUES ($1, $2, $3, $4) ON CONFLICT (user_id) DO UPDATE SET title = EXCLUDED.title, content = EXCLUDED.content, mood = EXCLUDED.mood, updated_at = NOW() RETURNING id, created_at, updated_at;`,
		draft.UserID,
		draft.Title,
		draft.Content,
		draft.Mood,
	)
	if err := row.Scan(&draft.ID, &draft.CreatedAt, &draft.UpdatedAt); err != nil {
		if code, _ := pgErrorCode(err); code == codeForeignKeyViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("saving draft error: " + err.Error())
	}
	return nil
}

// DeleteByUserID is a no-op when the user has no draft.
func (dr *DraftsRepository) DeleteByUserID(ctx context.Context, uid uuid.UUID) error {
	_, err := dr.conn.Exec(ctx, `DELETE FROM drafts WHERE user_id = $1;`, uid)
	if err != nil {
		return errors.New("deleting draft error: " + err.Error())
	}
	return nil
}
