package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wordkeep/internal/domain"
	"github.com/heartmarshall/wordkeep/internal/service/review/srs"
)

// RecordReview applies one graded answer to the word's schedule and appends
// a quiz result, atomically. Reviews of the same word are serialized.
func (s *Service) RecordReview(ctx context.Context, input RecordReviewInput) (*domain.ScheduleState, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	today := s.today(input.Today)

	unlock := s.locks.Lock(input.WordID)
	defer unlock()

	var res srs.Result
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		exists, err := s.words.Exists(txCtx, input.WordID)
		if err != nil {
			return fmt.Errorf("check word: %w", err)
		}
		if !exists {
			return fmt.Errorf("word %s: %w", input.WordID, domain.ErrNotFound)
		}

		current, err := s.schedules.Get(txCtx, input.WordID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get schedule: %w", err)
		}

		res = srs.Review(today, current, input.Grade)
		res.Next.WordID = input.WordID

		if err := s.schedules.Upsert(txCtx, res.Next); err != nil {
			return fmt.Errorf("save schedule: %w", err)
		}
		if err := s.results.Create(txCtx, &domain.QuizResult{
			WordID:  input.WordID,
			Mode:    input.Mode,
			Correct: input.Correct,
			TimeMs:  input.TimeMs,
		}); err != nil {
			return fmt.Errorf("save quiz result: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "review recorded",
		slog.String("word_id", input.WordID.String()),
		slog.String("mode", input.Mode.String()),
		slog.Int("grade", srs.ClampQuality(input.Grade)),
		slog.Bool("lapsed", res.Lapsed),
		slog.Int("interval_days", res.Next.IntervalDays),
		slog.Time("due_date", res.Next.DueDate),
	)

	s.notify(ctx, input.WordID)

	next := res.Next
	return &next, nil
}
