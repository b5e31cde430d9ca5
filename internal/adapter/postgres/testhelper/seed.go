package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wordkeep/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// Truncate empties every table. Integration tests that depend on global
// ordering (due lists, random sampling) call it first and must not run in
// parallel with each other.
func Truncate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`TRUNCATE quiz_results, schedule_state, translations, senses, words`)
	if err != nil {
		t.Fatalf("testhelper: truncate: %v", err)
	}
}

// SeedWord inserts a word whose term and normalized key are unique.
func SeedWord(t *testing.T, pool *pgxpool.Pool) domain.Word {
	t.Helper()
	return SeedWordAt(t, pool, time.Now().UTC().Truncate(time.Microsecond))
}

// SeedWordAt inserts a word with the given creation time.
func SeedWordAt(t *testing.T, pool *pgxpool.Pool, createdAt time.Time) domain.Word {
	t.Helper()

	term := "word" + uniqueSuffix()
	w := domain.Word{
		ID:             uuid.New(),
		Term:           term,
		NormalizedTerm: term,
		BaseLang:       domain.DefaultBaseLang,
		Tags:           []string{},
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO words (id, term, normalized_term, base_lang, tags, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		w.ID, w.Term, w.NormalizedTerm, w.BaseLang, w.Tags, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed word: %v", err)
	}
	return w
}

// SeedSense inserts a sense with the given definition for wordID.
func SeedSense(t *testing.T, pool *pgxpool.Pool, wordID uuid.UUID, definition string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO senses (word_id, definition, examples) VALUES ($1, $2, $3) RETURNING id`,
		wordID, definition, []string{"an example with " + definition},
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: seed sense: %v", err)
	}
	return id
}

// SeedSchedule inserts a schedule row due on dueDate.
func SeedSchedule(t *testing.T, pool *pgxpool.Pool, wordID uuid.UUID, dueDate time.Time) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO schedule_state (word_id, easiness, interval_days, repetitions, due_date, lapses, history)
		 VALUES ($1, 2.5, 1, 1, $2, 0, '{5}')`,
		wordID, domain.DateOf(dueDate),
	)
	if err != nil {
		t.Fatalf("testhelper: seed schedule: %v", err)
	}
}

// SeedTranslation inserts a translation of wordID into lang.
func SeedTranslation(t *testing.T, pool *pgxpool.Pool, wordID uuid.UUID, lang, text string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO translations (word_id, language_code, text) VALUES ($1, $2, $3)`,
		wordID, lang, text,
	)
	if err != nil {
		t.Fatalf("testhelper: seed translation: %v", err)
	}
}

// SeedQuizResult inserts one quiz result for wordID.
func SeedQuizResult(t *testing.T, pool *pgxpool.Pool, wordID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO quiz_results (word_id, mode, correct, time_ms) VALUES ($1, 'MCQ', true, 1200)`,
		wordID,
	)
	if err != nil {
		t.Fatalf("testhelper: seed quiz result: %v", err)
	}
}

// CountRows returns the number of rows in table referencing wordID.
func CountRows(t *testing.T, pool *pgxpool.Pool, table string, wordID uuid.UUID) int {
	t.Helper()

	column := "word_id"
	if table == "words" {
		column = "id"
	}
	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM `+table+` WHERE `+column+` = $1`, wordID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: count %s: %v", table, err)
	}
	return n
}
