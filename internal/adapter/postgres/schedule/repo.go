// Package schedule implements persistence of per-word SM-2 scheduling state.
package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/wordkeep/internal/adapter/postgres"
	"github.com/heartmarshall/wordkeep/internal/domain"
)

// Repo provides schedule_state persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new schedule repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const getSQL = `
SELECT word_id, easiness, interval_days, repetitions, due_date, lapses, history
FROM schedule_state
WHERE word_id = $1`

const upsertSQL = `
INSERT INTO schedule_state (word_id, easiness, interval_days, repetitions, due_date, lapses, history, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now())
ON CONFLICT (word_id) DO UPDATE SET
    easiness      = EXCLUDED.easiness,
    interval_days = EXCLUDED.interval_days,
    repetitions   = EXCLUDED.repetitions,
    due_date      = EXCLUDED.due_date,
    lapses        = EXCLUDED.lapses,
    history       = EXCLUDED.history,
    updated_at    = now()`

const dueIDsSQL = `
SELECT word_id
FROM schedule_state
WHERE due_date <= $1
ORDER BY due_date ASC, word_id ASC
LIMIT $2`

const countDueSQL = `SELECT count(*) FROM schedule_state WHERE due_date <= $1`

const deleteByWordSQL = `DELETE FROM schedule_state WHERE word_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns the schedule state of a word. A never-reviewed word yields an
// error wrapping domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, wordID uuid.UUID) (*domain.ScheduleState, error) {
	var (
		st      domain.ScheduleState
		history []int16
	)
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getSQL, wordID).Scan(
		&st.WordID, &st.Easiness, &st.IntervalDays, &st.Repetitions, &st.DueDate, &st.Lapses, &history,
	)
	if err != nil {
		return nil, postgres.MapError(err, "schedule of word", wordID)
	}
	st.DueDate = domain.DateOf(st.DueDate)
	st.History = fromHistory(history)
	return &st, nil
}

// DueIDs returns ids of words due on or before today, earliest due first.
func (r *Repo) DueIDs(ctx context.Context, today time.Time, limit int) ([]uuid.UUID, error) {
	if limit <= 0 {
		return []uuid.UUID{}, nil
	}
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, dueIDsSQL, domain.DateOf(today), limit)
	if err != nil {
		return nil, fmt.Errorf("get due word ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("get due word ids: %w", err)
	}
	return ids, nil
}

// CountDue returns how many words are due on or before today.
func (r *Repo) CountDue(ctx context.Context, today time.Time) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countDueSQL, domain.DateOf(today)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count due: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert creates or replaces the schedule state of st.WordID.
func (r *Repo) Upsert(ctx context.Context, st domain.ScheduleState) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, upsertSQL,
		st.WordID, st.Easiness, st.IntervalDays, st.Repetitions,
		domain.DateOf(st.DueDate), st.Lapses, toHistory(st.History),
	)
	if err != nil {
		return postgres.MapError(err, "schedule of word", st.WordID)
	}
	return nil
}

// DeleteByWord removes the schedule state of the word.
func (r *Repo) DeleteByWord(ctx context.Context, wordID uuid.UUID) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteByWordSQL, wordID)
	if err != nil {
		return 0, fmt.Errorf("delete schedule of word %s: %w", wordID, err)
	}
	return tag.RowsAffected(), nil
}

func toHistory(h []int) []int16 {
	out := make([]int16, len(h))
	for i, q := range h {
		out[i] = int16(q)
	}
	return out
}

func fromHistory(h []int16) []int {
	out := make([]int, len(h))
	for i, q := range h {
		out[i] = int(q)
	}
	return out
}
