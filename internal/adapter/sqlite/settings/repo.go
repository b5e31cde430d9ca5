// Package settings persists user preferences as key/value rows in SQLite.
package settings

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const upsertSQL = `
INSERT INTO settings (key, value, updated_at)
VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

type row struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

// Repo stores settings in the settings table.
type Repo struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repo {
	return &Repo{db: db}
}

// Load returns every stored key. Missing keys are simply absent.
func (r *Repo) Load(ctx context.Context) (map[string]string, error) {
	var rows []row
	if err := r.db.SelectContext(ctx, &rows, `SELECT key, value FROM settings`); err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	out := make(map[string]string, len(rows))
	for _, rw := range rows {
		out[rw.Key] = rw.Value
	}
	return out, nil
}

// Save upserts values atomically.
func (r *Repo) Save(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin settings tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for k, v := range values {
		if _, err := tx.ExecContext(ctx, upsertSQL, k, v); err != nil {
			return fmt.Errorf("save setting %s: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit settings: %w", err)
	}
	return nil
}
