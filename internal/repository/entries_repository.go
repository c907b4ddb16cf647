package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/moodscript/internal/error_values"
	"github.com/limbo/moodscript/pkg/entity"
)

const (
	entryColumns            = `e.id, e.user_id, e.title, e.content, e.mood, e.mood_score, e.mood_image_url, e.collection_id, e.created_at, e.updated_at`
	entriesCollectionFKName = "entries_collection_id_fkey"
)

type EntriesRepository struct {
	conn PgConnection
}

func NewEntriesRepo(conn PgConnection) *EntriesRepository {
	return &EntriesRepository{
		conn: conn,
	}
}

func (er *EntriesRepository) Create(ctx context.Context, entry *entity.Entry) error {
	row := er.conn.QueryRow(ctx, `INSERT INTO entries (user_id, title, content, mood, mood_score, mood_image_url, collection_id) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at;`,
		entry.UserID,
		entry.Title,
		entry.Content,
		entry.Mood,
		entry.MoodScore,
		entry.MoodImageURL,
		entry.CollectionID,
	)
	if err := row.Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt); err != nil {
		return translateEntryFKError(err, "creating entry db error: ")
	}
	return nil
}

func (er *EntriesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error) {
	row := er.conn.QueryRow(ctx, `SELECT `+entryColumns+` FROM entries e WHERE e.id = $1;`, id)
	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrEntryNotFound
		}
		return nil, errors.New("getting entry by id error: " + err.Error())
	}
	return entry, nil
}

func (er *EntriesRepository) List(ctx context.Context, uid uuid.UUID, filter EntryFilter) ([]*entity.EntryView, error) {
	where, args := buildEntryWhere(uid, filter)
	order := "DESC"
	if filter.OrderAsc {
		order = "ASC"
	}
	query := `SELECT ` + entryColumns + `, c.name FROM entries e LEFT JOIN collections c ON c.id = e.collection_id WHERE ` + where +
		` ORDER BY e.created_at ` + order
	if filter.Limit > 0 {
		args = append(args, filter.Limit, filter.Offset)
		query += ` LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))
	}
	query += ";"

	rows, err := er.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("listing entries error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.EntryView, 0)
	for rows.Next() {
		v := entity.EntryView{}
		err = rows.Scan(
			&v.ID, &v.UserID, &v.Title, &v.Content, &v.Mood, &v.MoodScore,
			&v.MoodImageURL, &v.CollectionID, &v.CreatedAt, &v.UpdatedAt, &v.CollectionName,
		)
		if err != nil {
			return nil, errors.New("unmarshalling entry error: " + err.Error())
		}
		result = append(result, &v)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning entries: " + err.Error())
	}
	return result, nil
}

func (er *EntriesRepository) Count(ctx context.Context, uid uuid.UUID, filter EntryFilter) (int, error) {
	where, args := buildEntryWhere(uid, filter)
	var count int
	row := er.conn.QueryRow(ctx, `SELECT COUNT(*) FROM entries e WHERE `+where+`;`, args...)
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("counting entries error: " + err.Error())
	}
	return count, nil
}

func (er *EntriesRepository) ListSince(ctx context.Context, uid uuid.UUID, since time.Time) ([]entity.Entry, error) {
	rows, err := er.conn.Query(ctx, `SELECT `+entryColumns+` FROM entries e WHERE e.user_id = $1 AND e.created_at >= $2 ORDER BY e.created_at ASC;`, uid, since)
	if err != nil {
		return nil, errors.New("getting entries for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Entry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, errors.New("entry row parsing error: " + err.Error())
		}
		result = append(result, *entry)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected entry rows error: " + err.Error())
	}
	return result, nil
}

func (er *EntriesRepository) Update(ctx context.Context, entry *entity.Entry) error {
	row := er.conn.QueryRow(ctx, `UPDATE entries SET title = $1, content = $2, mood = $3, mood_score = $4, mood_image_url = $5, collection_id = $6, updated_at = NOW() WHERE id = $7 RETURNING updated_at;`,
		entry.Title,
		entry.Content,
		entry.Mood,
		entry.MoodScore,
		entry.MoodImageURL,
		entry.CollectionID,
		entry.ID,
	)
	if err := row.Scan(&entry.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrEntryNotFound
		}
		return translateEntryFKError(err, "updating entry error: ")
	}
	return nil
}

func (er *EntriesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := er.conn.Exec(ctx, `DELETE FROM entries WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting entry error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrEntryNotFound
	}
	return nil
}

func scanEntry(row pgx.Row) (*entity.Entry, error) {
	var e entity.Entry
	err := row.Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &e.Mood, &e.MoodScore,
		&e.MoodImageURL, &e.CollectionID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func translateEntryFKError(err error, prefix string) error {
	code, constraint := pgErrorCode(err)
	if code == codeForeignKeyViolation {
		if constraint == entriesCollectionFKName {
			return errorvalues.ErrCollectionNotFound
		}
		return errorvalues.ErrUserNotFound
	}
	return errors.New(prefix + err.Error())
}

// buildEntryWhere renders filter as a WHERE clause over alias e. $1 is always the owner.
func buildEntryWhere(uid uuid.UUID, f EntryFilter) (string, []any) {
	conds := []string{"e.user_id = $1"}
	args := []any{uid}
	next := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	switch {
	case f.Unorganized:
		conds = append(conds, "e.collection_id IS NULL")
	case f.CollectionID != nil:
		conds = append(conds, "e.collection_id = "+next(*f.CollectionID))
	}
	if f.Mood != "" {
		conds = append(conds, "e.mood = "+next(f.Mood))
	}
	if f.Search != "" {
		p := next("%" + escapeLike(f.Search) + "%")
		conds = append(conds, "(e.title ILIKE "+p+" OR e.content ILIKE "+p+")")
	}
	if f.StartDate != nil {
		conds = append(conds, "e.created_at >= "+next(*f.StartDate))
	}
	if f.EndDate != nil {
		conds = append(conds, "e.created_at <= "+next(*f.EndDate))
	}
	return strings.Join(conds, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
