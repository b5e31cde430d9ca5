// Package word implements the Word repository using PostgreSQL.
// Fixed queries are raw SQL; queries with variable shape use squirrel.
package word

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/wordkeep/internal/adapter/postgres"
	"github.com/heartmarshall/wordkeep/internal/domain"
)

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new word repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{
	"id", "term", "normalized_term", "base_lang", "notes", "tags", "created_at", "updated_at",
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const wordColumnsSQL = `id, term, normalized_term, base_lang, notes, tags, created_at, updated_at`

const insertSQL = `
INSERT INTO words (term, normalized_term, base_lang, notes, tags)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + wordColumnsSQL

const getByIDSQL = `SELECT ` + wordColumnsSQL + ` FROM words WHERE id = $1`

const getByNormalizedSQL = `SELECT ` + wordColumnsSQL + ` FROM words WHERE normalized_term = $1`

const existsSQL = `SELECT EXISTS(SELECT 1 FROM words WHERE id = $1)`

const touchSQL = `UPDATE words SET updated_at = $2 WHERE id = $1`

const newIDsSQL = `
SELECT w.id
FROM words w
WHERE NOT EXISTS (SELECT 1 FROM schedule_state s WHERE s.word_id = w.id)
ORDER BY w.created_at ASC, w.id ASC
LIMIT $1`

const randomTermsSQL = `
SELECT term FROM words
WHERE id <> $1
ORDER BY random()
LIMIT $2`

const listUnenrichedSQL = `
SELECT w.id
FROM words w
WHERE NOT EXISTS (SELECT 1 FROM senses s WHERE s.word_id = w.id)
ORDER BY w.created_at ASC, w.id ASC
LIMIT $1`

const deleteSQL = `DELETE FROM words WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a word by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id)
	w, err := scanWord(row)
	if err != nil {
		return nil, postgres.MapError(err, "word", id)
	}
	return w, nil
}

// GetByNormalized returns the word owning the normalized key.
func (r *Repo) GetByNormalized(ctx context.Context, key string) (*domain.Word, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByNormalizedSQL, key)
	w, err := scanWord(row)
	if err != nil {
		return nil, postgres.MapError(err, "word", key)
	}
	return w, nil
}

// Exists reports whether a word with id exists.
func (r *Repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var ok bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, existsSQL, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("word exists: %w", err)
	}
	return ok, nil
}

// GetByIDs returns the words with the given ids in input order. Unknown ids
// are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Word, error) {
	if len(ids) == 0 {
		return []domain.Word{}, nil
	}

	query, args, err := postgres.Builder.
		Select(columns...).
		From("words").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get words by ids: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get words by ids: %w", err)
	}
	found, err := collectWords(rows)
	if err != nil {
		return nil, fmt.Errorf("get words by ids: %w", err)
	}

	byID := make(map[uuid.UUID]domain.Word, len(found))
	for _, w := range found {
		byID[w.ID] = w
	}
	out := make([]domain.Word, 0, len(found))
	for _, id := range ids {
		if w, ok := byID[id]; ok {
			out = append(out, w)
		}
	}
	return out, nil
}

// ListRecent returns words ordered by most recently updated first.
// A limit of zero means no limit.
func (r *Repo) ListRecent(ctx context.Context, limit, offset int) ([]domain.Word, error) {
	b := postgres.Builder.
		Select(columns...).
		From("words").
		OrderBy("updated_at DESC", "id ASC")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	if offset > 0 {
		b = b.Offset(uint64(offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list words: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	words, err := collectWords(rows)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return words, nil
}

// NewIDs returns ids of never-reviewed words, oldest first.
func (r *Repo) NewIDs(ctx context.Context, limit int) ([]uuid.UUID, error) {
	if limit <= 0 {
		return []uuid.UUID{}, nil
	}
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, newIDsSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("get new word ids: %w", err)
	}
	return collectIDs(rows)
}

// ListUnenriched returns ids of words that have no senses yet, oldest first.
func (r *Repo) ListUnenriched(ctx context.Context, limit int) ([]uuid.UUID, error) {
	if limit <= 0 {
		return []uuid.UUID{}, nil
	}
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listUnenrichedSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("list unenriched words: %w", err)
	}
	return collectIDs(rows)
}

// RandomTerms samples up to n terms of words other than excludeID.
func (r *Repo) RandomTerms(ctx context.Context, excludeID uuid.UUID, n int) ([]string, error) {
	if n <= 0 {
		return []string{}, nil
	}
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, randomTermsSQL, excludeID, n)
	if err != nil {
		return nil, fmt.Errorf("random terms: %w", err)
	}
	terms, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("random terms: %w", err)
	}
	return terms, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a word. A collision on the normalized key returns an error
// wrapping domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	tags := w.Tags
	if tags == nil {
		tags = []string{}
	}
	baseLang := w.BaseLang
	if baseLang == "" {
		baseLang = domain.DefaultBaseLang
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, insertSQL,
		w.Term, w.NormalizedTerm, baseLang, w.Notes, tags,
	)
	created, err := scanWord(row)
	if err != nil {
		return nil, postgres.MapError(err, "word", w.NormalizedTerm)
	}
	return created, nil
}

// Touch bumps updated_at of the word.
func (r *Repo) Touch(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, touchSQL, id, at)
	if err != nil {
		return postgres.MapError(err, "word", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes the word row only. Dependents must be deleted first.
// It reports whether a row was removed.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return false, postgres.MapError(err, "word", id)
	}
	return tag.RowsAffected() > 0, nil
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

func scanWord(row pgx.Row) (*domain.Word, error) {
	var w domain.Word
	err := row.Scan(&w.ID, &w.Term, &w.NormalizedTerm, &w.BaseLang, &w.Notes, &w.Tags, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if w.Tags == nil {
		w.Tags = []string{}
	}
	return &w, nil
}

func collectWords(rows pgx.Rows) ([]domain.Word, error) {
	defer rows.Close()

	words := make([]domain.Word, 0)
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		words = append(words, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate words: %w", err)
	}
	return words, nil
}

func collectIDs(rows pgx.Rows) ([]uuid.UUID, error) {
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("collect ids: %w", err)
	}
	return ids, nil
}
