// Package srs implements the SM-2 spaced-repetition scheduler.
// Everything here is pure: no DB, no context, no logger.
package srs

import (
	"math"
	"slices"
	"time"

	"github.com/heartmarshall/wordkeep/internal/domain"
)

const (
	DefaultEasiness = 2.5
	MinEasiness     = 1.3

	MinQuality = 0
	MaxQuality = 5
	// PassingGrade is the lowest quality that counts as a successful recall.
	PassingGrade = 3

	// GradeCorrect and GradeIncorrect are the fixed grades fed to Review
	// for quiz answers.
	GradeCorrect   = 5
	GradeIncorrect = 2

	// MaxIntervalDays caps the interval at roughly a century.
	MaxIntervalDays = 36500
)

// Result is the outcome of a single review.
type Result struct {
	Next domain.ScheduleState
	// Lapsed is true when the quality was below PassingGrade.
	Lapsed bool
	// Graduated is true once the word has two or more consecutive successes.
	Graduated bool
}

// DefaultState is the state of a word that has never been reviewed.
func DefaultState(today time.Time) domain.ScheduleState {
	return domain.ScheduleState{
		Easiness:     DefaultEasiness,
		IntervalDays: 0,
		Repetitions:  0,
		DueDate:      domain.DateOf(today),
		Lapses:       0,
		History:      []int{},
	}
}

// Review computes the next scheduling state after a recall graded quality.
// A nil current means the word has never been reviewed. current is not
// modified. Intervals of the third and later successes are rounded half
// away from zero and capped at MaxIntervalDays.
func Review(today time.Time, current *domain.ScheduleState, quality int) Result {
	q := ClampQuality(quality)
	day := domain.DateOf(today)

	var next domain.ScheduleState
	if current != nil {
		next = current.Clone()
	} else {
		next = DefaultState(day)
	}
	next.History = append(slices.Clip(next.History), q)
	next.Easiness = NextEasiness(next.Easiness, q)

	if q < PassingGrade {
		next.Repetitions = 0
		next.IntervalDays = 1
		next.DueDate = domain.AddDays(day, 1)
		next.Lapses++
		return Result{Next: next, Lapsed: true}
	}

	prevInterval := next.IntervalDays
	next.Repetitions++
	switch next.Repetitions {
	case 1:
		next.IntervalDays = 1
	case 2:
		next.IntervalDays = 6
	default:
		grown := math.Min(math.Round(float64(prevInterval)*next.Easiness), MaxIntervalDays)
		next.IntervalDays = max(1, int(grown))
	}
	next.DueDate = domain.AddDays(day, next.IntervalDays)

	return Result{Next: next, Graduated: next.Repetitions >= 2}
}

// NextEasiness applies the SM-2 easiness update, floored at MinEasiness.
func NextEasiness(e float64, q int) float64 {
	qf := float64(q)
	return math.Max(MinEasiness, e-0.8+0.28*qf-0.02*qf*qf)
}

// ClampQuality limits q to [MinQuality, MaxQuality].
func ClampQuality(q int) int {
	return min(max(q, MinQuality), MaxQuality)
}

// GradeFor maps a quiz answer to the quality fed to Review.
func GradeFor(correct bool) int {
	if correct {
		return GradeCorrect
	}
	return GradeIncorrect
}
