package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/wordkeep/internal/domain"
	"github.com/heartmarshall/wordkeep/internal/provider"
)

// errAlreadyEnriched aborts the sense transaction when another caller won.
var errAlreadyEnriched = errors.New("senses already present")

// EnsureEnriched fills in missing senses and the translation into
// targetLang. Each step runs only when its data is missing and is best
// effort: dictionary, translation and storage failures are logged and
// skipped. The only error returned is the lookup of the word itself.
// It reports whether anything was stored.
func (s *Service) EnsureEnriched(ctx context.Context, wordID uuid.UUID, targetLang string) (bool, error) {
	word, err := s.words.GetByID(ctx, wordID)
	if err != nil {
		return false, fmt.Errorf("get word: %w", err)
	}

	changed := s.enrichSenses(ctx, word)

	if ctx.Err() == nil && s.enrichTranslation(ctx, word, targetLang) {
		changed = true
	}

	if changed {
		if err := s.words.Touch(context.WithoutCancel(ctx), wordID, s.now()); err != nil {
			s.log.WarnContext(ctx, "touch enriched word",
				slog.String("word_id", wordID.String()),
				slog.String("error", err.Error()),
			)
		}
		s.notify(ctx, wordID)
	}
	return changed, nil
}

func (s *Service) enrichSenses(ctx context.Context, word *domain.Word) bool {
	n, err := s.senses.CountByWord(ctx, word.ID)
	if err != nil {
		s.warnStorage(ctx, word.ID, "count senses", err)
		return false
	}
	if n > 0 {
		return false
	}

	// Network call stays outside any transaction.
	res, err := s.dict.Lookup(ctx, word.Term, word.BaseLang)
	if err != nil {
		s.warnEnrichment(ctx, &domain.EnrichmentError{Stage: domain.EnrichmentStageLookup, WordID: word.ID, Err: err})
		return false
	}
	senses := sensesFromLookup(res)
	if len(senses) == 0 {
		return false
	}
	if ctx.Err() != nil {
		return false
	}

	unlock := s.locks.Lock(word.ID)
	defer unlock()

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		n, err := s.senses.CountByWord(txCtx, word.ID)
		if err != nil {
			return fmt.Errorf("count senses: %w", err)
		}
		if n > 0 {
			return errAlreadyEnriched
		}
		if _, err := s.senses.CreateBatch(txCtx, word.ID, senses); err != nil {
			return fmt.Errorf("create senses: %w", err)
		}
		return nil
	})
	if errors.Is(err, errAlreadyEnriched) {
		return false
	}
	if err != nil {
		s.warnStorage(ctx, word.ID, "store senses", err)
		return false
	}

	s.log.InfoContext(ctx, "senses stored",
		slog.String("word_id", word.ID.String()),
		slog.Int("count", len(senses)),
	)
	return true
}

func (s *Service) enrichTranslation(ctx context.Context, word *domain.Word, targetLang string) bool {
	lang := strings.ToLower(strings.TrimSpace(targetLang))
	if lang == "" {
		return false
	}

	_, err := s.translations.Get(ctx, word.ID, lang)
	switch {
	case err == nil:
		return false
	case !errors.Is(err, domain.ErrNotFound):
		s.warnStorage(ctx, word.ID, "get translation", err)
		return false
	}

	text, err := s.translator.Translate(ctx, word.Term, lang, word.BaseLang)
	if err != nil {
		s.warnEnrichment(ctx, &domain.EnrichmentError{Stage: domain.EnrichmentStageTranslate, WordID: word.ID, Err: err})
		return false
	}
	text = strings.TrimSpace(text)
	if text == "" || ctx.Err() != nil {
		return false
	}

	if _, err := s.translations.Upsert(ctx, word.ID, lang, text); err != nil {
		s.warnStorage(ctx, word.ID, "store translation", err)
		return false
	}
	return true
}

// EnrichMany runs EnsureEnriched over ids with at most concurrency calls in
// flight and returns how many words changed. Unknown ids are skipped.
func (s *Service) EnrichMany(ctx context.Context, ids []uuid.UUID, targetLang string, concurrency int) (int, error) {
	if concurrency <= 0 {
		concurrency = 1
	}

	var changed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, id := range ids {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			ok, err := s.EnsureEnriched(gctx, id, targetLang)
			if errors.Is(err, domain.ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			if ok {
				changed.Add(1)
			}
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	s.log.InfoContext(ctx, "batch enrichment finished",
		slog.Int("requested", len(ids)),
		slog.Int64("changed", changed.Load()),
	)
	return int(changed.Load()), err
}

// EnrichPending enriches up to limit words that have no senses yet.
func (s *Service) EnrichPending(ctx context.Context, limit int, targetLang string, concurrency int) (int, error) {
	ids, err := s.words.ListUnenriched(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("list unenriched: %w", err)
	}
	return s.EnrichMany(ctx, ids, targetLang, concurrency)
}

// sensesFromLookup maps a dictionary result to senses. A sense without its
// own transcription inherits the entry-level one.
func sensesFromLookup(res *provider.LookupResult) []domain.Sense {
	if res == nil {
		return nil
	}
	out := make([]domain.Sense, 0, len(res.Senses))
	for _, r := range res.Senses {
		if strings.TrimSpace(r.Definition) == "" {
			continue
		}
		ipa := r.IPA
		if ipa == nil {
			ipa = res.IPA
		}
		out = append(out, domain.Sense{
			PartOfSpeech: r.PartOfSpeech,
			Definition:   r.Definition,
			IPA:          ipa,
			Examples:     r.Examples,
			Synonyms:     r.Synonyms,
			Antonyms:     r.Antonyms,
			AudioURLs:    r.AudioURLs,
		})
	}
	return out
}

func (s *Service) warnEnrichment(ctx context.Context, err *domain.EnrichmentError) {
	s.log.WarnContext(ctx, "enrichment step failed",
		slog.String("word_id", err.WordID.String()),
		slog.String("stage", string(err.Stage)),
		slog.String("error", err.Error()),
	)
}

func (s *Service) warnStorage(ctx context.Context, wordID uuid.UUID, op string, err error) {
	s.log.WarnContext(ctx, "enrichment storage failed",
		slog.String("word_id", wordID.String()),
		slog.String("op", op),
		slog.String("error", err.Error()),
	)
}
