// Package translation implements the Translation repository using PostgreSQL.
package translation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/wordkeep/internal/adapter/postgres"
	"github.com/heartmarshall/wordkeep/internal/domain"
)

// Repo provides translation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new translation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const translationColumnsSQL = `id, word_id, language_code, text, updated_at`

const getSQL = `
SELECT ` + translationColumnsSQL + `
FROM translations
WHERE word_id = $1 AND language_code = $2`

const listByWordSQL = `
SELECT ` + translationColumnsSQL + `
FROM translations
WHERE word_id = $1
ORDER BY language_code`

const deleteByWordSQL = `DELETE FROM translations WHERE word_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns the translation of wordID into lang.
func (r *Repo) Get(ctx context.Context, wordID uuid.UUID, lang string) (*domain.Translation, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getSQL, wordID, lang)
	tr, err := scanTranslation(row)
	if err != nil {
		return nil, postgres.MapError(err, "translation of word", fmt.Sprintf("%s/%s", wordID, lang))
	}
	return tr, nil
}

// ListByWord returns every translation of the word ordered by language.
func (r *Repo) ListByWord(ctx context.Context, wordID uuid.UUID) ([]domain.Translation, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listByWordSQL, wordID)
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Translation, 0)
	for rows.Next() {
		tr, err := scanTranslation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan translation: %w", err)
		}
		out = append(out, *tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate translations: %w", err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert stores the translation, overwriting any existing text for the
// same (word, language) pair.
func (r *Repo) Upsert(ctx context.Context, wordID uuid.UUID, lang, text string) (*domain.Translation, error) {
	query, args, err := postgres.Builder.
		Insert("translations").
		Columns("word_id", "language_code", "text").
		Values(wordID, lang, text).
		Suffix("ON CONFLICT (word_id, language_code) DO UPDATE SET text = EXCLUDED.text, updated_at = now()").
		Suffix("RETURNING " + translationColumnsSQL).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert translation: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...)
	tr, err := scanTranslation(row)
	if err != nil {
		return nil, postgres.MapError(err, "translation of word", wordID)
	}
	return tr, nil
}

// DeleteByWord removes every translation of the word.
func (r *Repo) DeleteByWord(ctx context.Context, wordID uuid.UUID) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteByWordSQL, wordID)
	if err != nil {
		return 0, fmt.Errorf("delete translations of word %s: %w", wordID, err)
	}
	return tag.RowsAffected(), nil
}

func scanTranslation(row pgx.Row) (*domain.Translation, error) {
	var tr domain.Translation
	if err := row.Scan(&tr.ID, &tr.WordID, &tr.LanguageCode, &tr.Text, &tr.UpdatedAt); err != nil {
		return nil, err
	}
	return &tr, nil
}
