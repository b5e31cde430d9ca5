// Package quizresult implements the append-only quiz result log.
package quizresult

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/wordkeep/internal/adapter/postgres"
	"github.com/heartmarshall/wordkeep/internal/domain"
)

// Repo provides quiz_results persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new quiz result repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const insertSQL = `
INSERT INTO quiz_results (word_id, mode, correct, time_ms)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`

const listByWordSQL = `
SELECT id, word_id, mode, correct, time_ms, created_at
FROM quiz_results
WHERE word_id = $1
ORDER BY created_at DESC, id
LIMIT $2`

const deleteByWordSQL = `DELETE FROM quiz_results WHERE word_id = $1`

// Create appends a quiz result and fills in its id and timestamp.
func (r *Repo) Create(ctx context.Context, res *domain.QuizResult) error {
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, insertSQL,
		res.WordID, string(res.Mode), res.Correct, res.TimeMs,
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		return postgres.MapError(err, "quiz result of word", res.WordID)
	}
	return nil
}

// ListByWord returns the most recent results for a word, newest first.
func (r *Repo) ListByWord(ctx context.Context, wordID uuid.UUID, limit int) ([]domain.QuizResult, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listByWordSQL, wordID, limit)
	if err != nil {
		return nil, fmt.Errorf("list quiz results: %w", err)
	}
	defer rows.Close()

	out := make([]domain.QuizResult, 0)
	for rows.Next() {
		var (
			res  domain.QuizResult
			mode string
		)
		if err := rows.Scan(&res.ID, &res.WordID, &mode, &res.Correct, &res.TimeMs, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan quiz result: %w", err)
		}
		res.Mode = domain.QuizMode(mode)
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quiz results: %w", err)
	}
	return out, nil
}

// DeleteByWord removes every quiz result of the word.
func (r *Repo) DeleteByWord(ctx context.Context, wordID uuid.UUID) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteByWordSQL, wordID)
	if err != nil {
		return 0, fmt.Errorf("delete quiz results of word %s: %w", wordID, err)
	}
	return tag.RowsAffected(), nil
}
