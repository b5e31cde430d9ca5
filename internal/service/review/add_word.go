package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordkeep/internal/domain"
)

// AddWordResult is the outcome of AddWord. When Duplicate is set, ID is the
// id of the word that already owns the normalized key.
type AddWordResult struct {
	ID        uuid.UUID
	Duplicate bool
}

// CheckDuplicate returns the word whose normalized key matches term, or nil
// if the term is free.
func (s *Service) CheckDuplicate(ctx context.Context, term string) (*domain.Word, error) {
	key := domain.NormalizeForKey(term)
	if key == "" {
		return nil, nil
	}
	w, err := s.words.GetByNormalized(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find by normalized key: %w", err)
	}
	return w, nil
}

// AddWord stores a new word unless one with the same normalized key exists.
// A duplicate is reported through the result, not as an error.
func (s *Service) AddWord(ctx context.Context, input AddWordInput) (AddWordResult, error) {
	if err := input.Validate(); err != nil {
		return AddWordResult{}, err
	}

	term := strings.TrimSpace(input.Term)
	key := domain.NormalizeForKey(term)

	existing, err := s.CheckDuplicate(ctx, term)
	if err != nil {
		return AddWordResult{}, err
	}
	if existing != nil {
		return AddWordResult{ID: existing.ID, Duplicate: true}, nil
	}

	baseLang := strings.ToLower(strings.TrimSpace(input.BaseLang))
	if baseLang == "" {
		baseLang = domain.DefaultBaseLang
	}

	created, err := s.words.Create(ctx, &domain.Word{
		Term:           term,
		NormalizedTerm: key,
		BaseLang:       baseLang,
		Notes:          cleanNotes(input.Notes),
		Tags:           cleanTags(input.Tags),
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		// Lost a race with a concurrent insert of the same key.
		winner, lookupErr := s.words.GetByNormalized(ctx, key)
		if lookupErr != nil {
			return AddWordResult{}, fmt.Errorf("find duplicate: %w", &domain.ConflictError{NormalizedTerm: key})
		}
		return AddWordResult{ID: winner.ID, Duplicate: true}, nil
	}
	if err != nil {
		return AddWordResult{}, fmt.Errorf("create word: %w", err)
	}

	s.log.InfoContext(ctx, "word added",
		slog.String("word_id", created.ID.String()),
		slog.String("normalized_term", key),
	)
	return AddWordResult{ID: created.ID}, nil
}
