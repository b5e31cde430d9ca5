// Package sense implements the Sense repository using PostgreSQL.
package sense

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/wordkeep/internal/adapter/postgres"
	"github.com/heartmarshall/wordkeep/internal/domain"
)

// Repo provides sense persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new sense repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{
	"id", "word_id", "part_of_speech", "definition", "ipa",
	"examples", "synonyms", "antonyms", "audio_urls", "position",
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const countByWordSQL = `SELECT count(*) FROM senses WHERE word_id = $1`

const randomDefinitionsSQL = `
SELECT definition FROM senses
WHERE word_id <> $1
ORDER BY random()
LIMIT $2`

const deleteByWordSQL = `DELETE FROM senses WHERE word_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// CountByWord returns how many senses the word has.
func (r *Repo) CountByWord(ctx context.Context, wordID uuid.UUID) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countByWordSQL, wordID).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "senses of word", wordID)
	}
	return n, nil
}

// ListByWord returns the senses of a word ordered by position.
func (r *Repo) ListByWord(ctx context.Context, wordID uuid.UUID) ([]domain.Sense, error) {
	return r.list(ctx, sq.Expr("word_id = ?", wordID))
}

// ListByWords returns the senses of several words grouped by word id.
func (r *Repo) ListByWords(ctx context.Context, wordIDs []uuid.UUID) (map[uuid.UUID][]domain.Sense, error) {
	out := make(map[uuid.UUID][]domain.Sense, len(wordIDs))
	if len(wordIDs) == 0 {
		return out, nil
	}
	senses, err := r.list(ctx, sq.Eq{"word_id": wordIDs})
	if err != nil {
		return nil, err
	}
	for _, s := range senses {
		out[s.WordID] = append(out[s.WordID], s)
	}
	return out, nil
}

// RandomDefinitions samples up to n definitions belonging to words other
// than excludeWordID.
func (r *Repo) RandomDefinitions(ctx context.Context, excludeWordID uuid.UUID, n int) ([]string, error) {
	if n <= 0 {
		return []string{}, nil
	}
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, randomDefinitionsSQL, excludeWordID, n)
	if err != nil {
		return nil, fmt.Errorf("random definitions: %w", err)
	}
	defs, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("random definitions: %w", err)
	}
	return defs, nil
}

func (r *Repo) list(ctx context.Context, where sq.Sqlizer) ([]domain.Sense, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From("senses").
		Where(where).
		OrderBy("word_id", "position", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list senses: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list senses: %w", err)
	}
	defer rows.Close()

	senses := make([]domain.Sense, 0)
	for rows.Next() {
		var s domain.Sense
		if err := rows.Scan(
			&s.ID, &s.WordID, &s.PartOfSpeech, &s.Definition, &s.IPA,
			&s.Examples, &s.Synonyms, &s.Antonyms, &s.AudioURLs, &s.Position,
		); err != nil {
			return nil, fmt.Errorf("scan sense: %w", err)
		}
		senses = append(senses, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate senses: %w", err)
	}
	return senses, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateBatch inserts all senses of one word in a single statement and
// returns them with ids assigned. Positions follow slice order.
func (r *Repo) CreateBatch(ctx context.Context, wordID uuid.UUID, senses []domain.Sense) ([]domain.Sense, error) {
	if len(senses) == 0 {
		return []domain.Sense{}, nil
	}

	b := postgres.Builder.
		Insert("senses").
		Columns("word_id", "part_of_speech", "definition", "ipa", "examples", "synonyms", "antonyms", "audio_urls", "position")
	for i, s := range senses {
		b = b.Values(wordID, s.PartOfSpeech, s.Definition, s.IPA,
			nonNil(s.Examples), nonNil(s.Synonyms), nonNil(s.Antonyms), nonNil(s.AudioURLs), i)
	}
	query, args, err := b.Suffix("RETURNING id, position").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert senses: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "senses of word", wordID)
	}
	defer rows.Close()

	out := make([]domain.Sense, len(senses))
	inserted := 0
	for rows.Next() {
		var (
			id  uuid.UUID
			pos int
		)
		if err := rows.Scan(&id, &pos); err != nil {
			return nil, fmt.Errorf("scan inserted sense: %w", err)
		}
		if pos < 0 || pos >= len(senses) {
			return nil, fmt.Errorf("insert senses: unexpected position %d", pos)
		}
		s := senses[pos]
		s.ID = id
		s.WordID = wordID
		s.Position = pos
		out[pos] = s
		inserted++
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "senses of word", wordID)
	}
	if inserted != len(senses) {
		return nil, fmt.Errorf("insert senses: got %d rows for %d senses", inserted, len(senses))
	}
	return out, nil
}

// DeleteByWord removes every sense of the word.
func (r *Repo) DeleteByWord(ctx context.Context, wordID uuid.UUID) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteByWordSQL, wordID)
	if err != nil {
		return 0, fmt.Errorf("delete senses of word %s: %w", wordID, err)
	}
	return tag.RowsAffected(), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
