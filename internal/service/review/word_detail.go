package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordkeep/internal/domain"
)

// GetWordDetail returns a word with its senses, translations and schedule.
func (s *Service) GetWordDetail(ctx context.Context, id uuid.UUID) (*domain.WordDetail, error) {
	word, err := s.words.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get word: %w", err)
	}
	senses, err := s.senses.ListByWord(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list senses: %w", err)
	}
	translations, err := s.translations.ListByWord(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}

	st, err := s.schedules.Get(ctx, id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		st = nil
	case err != nil:
		return nil, fmt.Errorf("get schedule: %w", err)
	}

	return &domain.WordDetail{
		Word:         *word,
		Senses:       senses,
		Translations: translations,
		Schedule:     st,
	}, nil
}

// ListWords returns words, most recently updated first.
func (s *Service) ListWords(ctx context.Context, limit, offset int) ([]domain.Word, error) {
	if limit <= 0 || limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	words, err := s.words.ListRecent(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return words, nil
}

// WatchWord streams the detail of a word: the current value first, then a
// new value after every enrichment or review of it. Slow readers see only
// the latest detail. The channel is closed when ctx is done or the word is
// deleted.
func (s *Service) WatchWord(ctx context.Context, id uuid.UUID) (<-chan domain.WordDetail, error) {
	detail, err := s.GetWordDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.watchers.Subscribe(ctx, id, *detail), nil
}

// notify publishes the fresh detail of id to its watchers, if there are any.
func (s *Service) notify(ctx context.Context, id uuid.UUID) {
	if !s.watchers.Watched(id) {
		return
	}
	detail, err := s.GetWordDetail(context.WithoutCancel(ctx), id)
	if err != nil {
		s.log.WarnContext(ctx, "load detail for watchers",
			slog.String("word_id", id.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	s.watchers.Publish(id, *detail)
}
