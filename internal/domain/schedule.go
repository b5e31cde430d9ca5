package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// ScheduleState is the SM-2 scheduling state of a word. It exists only after
// the first review. Easiness never drops below 1.3.
type ScheduleState struct {
	WordID       uuid.UUID
	Easiness     float64
	IntervalDays int
	Repetitions  int
	DueDate      time.Time
	Lapses       int
	// History holds every quality grade (0-5) in review order.
	History []int
}

// Clone returns a deep copy of s.
func (s ScheduleState) Clone() ScheduleState {
	s.History = slices.Clone(s.History)
	return s
}

// IsDue reports whether the state is eligible for review on day.
func (s *ScheduleState) IsDue(day time.Time) bool {
	return !s.DueDate.After(DateOf(day))
}

// QuizResult is an append-only record of one answered question.
type QuizResult struct {
	ID        uuid.UUID
	WordID    uuid.UUID
	Mode      QuizMode
	Correct   bool
	TimeMs    int64
	CreatedAt time.Time
}

// DateOf truncates t to a civil date at UTC midnight. The calendar day of t
// is taken in t's own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the civil date days after day.
func AddDays(day time.Time, days int) time.Time {
	return DateOf(day).AddDate(0, 0, days)
}
