package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// DeleteWord removes a word and everything it owns in one transaction:
// quiz results, schedule state, senses and translations, then the word.
// It reports whether the word existed. Watchers of the word are closed.
func (s *Service) DeleteWord(ctx context.Context, id uuid.UUID) (bool, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	var removed bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.results.DeleteByWord(txCtx, id); err != nil {
			return fmt.Errorf("delete quiz results: %w", err)
		}
		if _, err := s.schedules.DeleteByWord(txCtx, id); err != nil {
			return fmt.Errorf("delete schedule: %w", err)
		}
		if _, err := s.senses.DeleteByWord(txCtx, id); err != nil {
			return fmt.Errorf("delete senses: %w", err)
		}
		if _, err := s.translations.DeleteByWord(txCtx, id); err != nil {
			return fmt.Errorf("delete translations: %w", err)
		}

		ok, err := s.words.Delete(txCtx, id)
		if err != nil {
			return fmt.Errorf("delete word: %w", err)
		}
		removed = ok
		return nil
	})
	if err != nil {
		return false, err
	}

	if removed {
		s.log.InfoContext(ctx, "word deleted", slog.String("word_id", id.String()))
	}
	s.watchers.Close(id)
	return removed, nil
}
