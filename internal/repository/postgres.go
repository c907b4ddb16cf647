package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/moodscript/pkg/cleanup"
)

// Postgres error codes the repositories translate into error values.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// NewPool opens the process-wide connection pool and registers its shutdown.
// Every repository shares the returned pool.
func NewPool(ctx context.Context, cfg DBConfig) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnString())
	if err != nil {
		return nil, errors.New("creating pgxpool error: " + err.Error())
	}
	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		return nil, errors.New("pinging pgxpool error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool, nil
}

func pgErrorCode(err error) (code string, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}
