package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordkeep/internal/domain"
	"github.com/heartmarshall/wordkeep/internal/service/quiz"
	"github.com/heartmarshall/wordkeep/internal/service/review/srs"
)

// ErrSessionFinished is returned when answering a session with no
// questions left.
var ErrSessionFinished = fmt.Errorf("session finished: %w", domain.ErrConflict)

// Session is an in-memory review run over one day's queue. It is safe for
// concurrent use; answers are applied one at a time.
type Session struct {
	ID        uuid.UUID
	Day       time.Time
	StartedAt time.Time

	mu           sync.Mutex
	questions    []quiz.Question
	index        int
	correctCount int
	elapsedMs    int64
}

// SessionSummary is a snapshot of session progress.
type SessionSummary struct {
	ID           uuid.UUID
	Total        int
	Index        int
	CorrectCount int
	ElapsedMs    int64
	Finished     bool
}

// AnswerResult describes a graded answer and what comes next.
type AnswerResult struct {
	Correct     bool
	CorrectText string
	Grade       int
	// Schedule is nil when the word was deleted while the session ran.
	Schedule *domain.ScheduleState
	Next     *quiz.Question
	Summary  SessionSummary
}

// Questions returns a copy of all questions of the session.
func (s *Session) Questions() []quiz.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]quiz.Question(nil), s.questions...)
}

// Current returns the question awaiting an answer.
func (s *Session) Current() (quiz.Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current()
}

// Summary returns the current progress.
func (s *Session) Summary() SessionSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary()
}

func (s *Session) current() (quiz.Question, bool) {
	if s.index >= len(s.questions) {
		return quiz.Question{}, false
	}
	return s.questions[s.index], true
}

func (s *Session) summary() SessionSummary {
	return SessionSummary{
		ID:           s.ID,
		Total:        len(s.questions),
		Index:        s.index,
		CorrectCount: s.correctCount,
		ElapsedMs:    s.elapsedMs,
		Finished:     s.index >= len(s.questions),
	}
}

// StartSession builds today's queue using the current daily goal and quiz
// modes and turns it into questions.
func (s *Service) StartSession(ctx context.Context, today time.Time) (*Session, error) {
	day := s.today(today)
	cfg := s.settings.Current()

	ids, err := s.GenerateDailyQueue(ctx, cfg.DailyGoal, day)
	if err != nil {
		return nil, fmt.Errorf("generate queue: %w", err)
	}

	modes := cfg.QuizModes
	if len(modes) == 0 {
		modes = domain.AllQuizModes
	}
	questions, err := s.questions.Build(ctx, ids, modes)
	if err != nil {
		return nil, fmt.Errorf("build questions: %w", err)
	}

	sess := &Session{
		ID:        uuid.New(),
		Day:       day,
		StartedAt: s.now(),
		questions: questions,
	}

	s.log.InfoContext(ctx, "review session started",
		slog.String("session_id", sess.ID.String()),
		slog.Int("queued", len(ids)),
		slog.Int("questions", len(questions)),
	)
	return sess, nil
}

// SubmitAnswer grades the answer to the current question, records the
// review and advances the session. A word deleted mid-session still
// advances the session but records nothing.
func (s *Service) SubmitAnswer(ctx context.Context, sess *Session, input SubmitAnswerInput) (*AnswerResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	q, ok := sess.current()
	if !ok {
		return nil, ErrSessionFinished
	}

	var correct bool
	if input.Choice != nil {
		correct = quiz.GradeChoice(q, *input.Choice)
	} else {
		correct = quiz.Grade(q, input.Answer)
	}
	grade := srs.GradeFor(correct)

	st, err := s.RecordReview(ctx, RecordReviewInput{
		WordID:  q.WordID,
		Mode:    q.Mode,
		Correct: correct,
		TimeMs:  input.TimeMs,
		Grade:   grade,
		Today:   s.today(input.Today),
	})
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.log.WarnContext(ctx, "answered word no longer exists",
			slog.String("session_id", sess.ID.String()),
			slog.String("word_id", q.WordID.String()),
		)
		st = nil
	case err != nil:
		return nil, fmt.Errorf("record review: %w", err)
	}

	sess.index++
	sess.elapsedMs += input.TimeMs
	if correct {
		sess.correctCount++
	}

	res := &AnswerResult{
		Correct:     correct,
		CorrectText: q.CorrectText,
		Grade:       grade,
		Schedule:    st,
		Summary:     sess.summary(),
	}
	if next, ok := sess.current(); ok {
		res.Next = &next
	}
	return res, nil
}
