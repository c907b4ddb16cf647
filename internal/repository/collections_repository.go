package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/moodscript/internal/error_values"
	"github.com/limbo/moodscript/pkg/entity"
)

type CollectionsRepository struct {
	conn PgConnection
}

func NewCollectionsRepo(conn PgConnection) *CollectionsRepository {
	return &CollectionsRepository{
		conn: conn,
	}
}

func (cr *CollectionsRepository) Create(ctx context.Context, collection *entity.Collection) error {
	row := cr.conn.QueryRow(ctx, `INSERT INTO collections (user_id, name, description) VALUES ($1, $2, $3) RETURNING id, created_at, updated_at;`,
		collection.UserID,
		collection.Name,
		collection.Description,
	)
	if err := row.Scan(&collection.ID, &collection.CreatedAt, &collection.UpdatedAt); err != nil {
		switch code, _ := pgErrorCode(err); code {
		// Unique violation
		case codeUniqueViolation:
			return errorvalues.ErrCollectionExists
		// FK violation
		case codeForeignKeyViolation:
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating collection db error: " + err.Error())
	}
	return nil
}

func (cr *CollectionsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Collection, error) {
	c := entity.Collection{ID: id}
	row := cr.conn.QueryRow(ctx, `SELECT user_id, name, description, created_at, updated_at FROM collections WHERE id = $1;`, id)
	if err := row.Scan(&c.UserID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrCollectionNotFound
		}
		return nil, errors.New("getting collection by id error: " + err.Error())
	}
	return &c, nil
}

func (cr *CollectionsRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Collection, error) {
	rows, err := cr.conn.Query(ctx, `SELECT id, user_id, name, description, created_at, updated_at FROM collections WHERE user_id = $1 ORDER BY created_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("getting collections by uid error: " + err.Error())
	}
	defer rows.Close()
	collections := make([]*entity.Collection, 0)
	for rows.Next() {
		c := entity.Collection{}
		err = rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling collection error: " + err.Error())
		}
		collections = append(collections, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning collections: " + err.Error())
	}
	return collections, nil
}

func (cr *CollectionsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := cr.conn.Exec(ctx, `DELETE FROM collections WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting collection: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrCollectionNotFound
	}
	return nil
}
