// Package reminder decides when to nudge the user to review and fires the
// nudge once a day at the configured hour.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordkeep/internal/domain"
)

// QueueGenerator builds the daily review queue.
type QueueGenerator interface {
	GenerateDailyQueue(ctx context.Context, targetSize int, today time.Time) ([]uuid.UUID, error)
}

// Notifier delivers a reminder to the user.
type Notifier interface {
	Notify(ctx context.Context, d Decision) error
}

// Decision is the outcome of a reminder check.
type Decision struct {
	Notify  bool
	Count   int
	Message string
}

// Check builds today's queue and decides whether a reminder is due. It has
// no side effects beyond the queue read, so repeated calls agree.
func Check(ctx context.Context, queue QueueGenerator, goal int, today time.Time) (Decision, error) {
	ids, err := queue.GenerateDailyQueue(ctx, goal, today)
	if err != nil {
		return Decision{}, fmt.Errorf("reminder.Check: %w", err)
	}

	n := len(ids)
	if n == 0 {
		return Decision{}, nil
	}
	return Decision{
		Notify:  true,
		Count:   n,
		Message: fmt.Sprintf("You have %d words to review today", n),
	}, nil
}

// NextRun returns the next hour:00 strictly after now, in now's location.
func NextRun(now time.Time, hour int) time.Time {
	hour = domain.ClampNotifyHour(hour)
	y, m, d := now.Date()
	next := time.Date(y, m, d, hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = time.Date(y, m, d+1, hour, 0, 0, 0, now.Location())
	}
	return next
}

// LogNotifier writes reminders to the log. It is the default delivery
// channel for a headless install.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{log: logger.With("notifier", "log")}
}

func (n *LogNotifier) Notify(ctx context.Context, d Decision) error {
	n.log.InfoContext(ctx, d.Message, slog.Int("count", d.Count))
	return nil
}
