package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/heartmarshall/wordkeep/internal/domain"
)

// JobTag identifies the daily reminder job in the cron scheduler.
const JobTag = "daily-reminder"

type settingsSource interface {
	Current() domain.Settings
	Subscribe(ctx context.Context) <-chan domain.Settings
}

// Scheduler runs the reminder check every day at the user's notify hour and
// follows changes to that hour.
type Scheduler struct {
	log      *slog.Logger
	cron     *gocron.Scheduler
	queue    QueueGenerator
	settings settingsSource
	notifier Notifier
	now      func() time.Time

	mu   sync.Mutex
	hour int
	job  *gocron.Job
}

// NewScheduler creates a Scheduler firing in loc. A nil loc means time.Local.
func NewScheduler(
	logger *slog.Logger,
	queue QueueGenerator,
	settings settingsSource,
	notifier Notifier,
	loc *time.Location,
) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	cron := gocron.NewScheduler(loc)
	cron.SingletonModeAll()

	return &Scheduler{
		log:      logger.With("service", "reminder"),
		cron:     cron,
		queue:    queue,
		settings: settings,
		notifier: notifier,
		now:      func() time.Time { return time.Now().In(loc) },
		hour:     -1,
	}
}

// Start registers the daily job and starts the cron loop. The scheduler
// stops when ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	if err := s.reschedule(ctx, s.settings.Current().NotifyHour); err != nil {
		return err
	}
	s.cron.StartAsync()

	updates := s.settings.Subscribe(ctx)
	go func() {
		defer s.cron.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case st, ok := <-updates:
				if !ok {
					return
				}
				if err := s.reschedule(ctx, st.NotifyHour); err != nil {
					s.log.ErrorContext(ctx, "reschedule reminder", slog.String("error", err.Error()))
				}
			}
		}
	}()

	return nil
}

// NextRun reports when the job fires next. Zero before Start.
func (s *Scheduler) NextRun() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.job == nil {
		return time.Time{}
	}
	return s.job.NextRun()
}

// RunOnce performs a single reminder check now and notifies if needed.
func (s *Scheduler) RunOnce(ctx context.Context) (Decision, error) {
	goal := s.settings.Current().DailyGoal

	d, err := Check(ctx, s.queue, goal, s.now())
	if err != nil {
		return Decision{}, err
	}
	if !d.Notify {
		s.log.DebugContext(ctx, "nothing to review")
		return d, nil
	}

	if err := s.notifier.Notify(ctx, d); err != nil {
		return d, fmt.Errorf("reminder.RunOnce: notify: %w", err)
	}
	return d, nil
}

// reschedule replaces the daily job when the hour changed.
func (s *Scheduler) reschedule(ctx context.Context, hour int) error {
	hour = domain.ClampNotifyHour(hour)

	s.mu.Lock()
	defer s.mu.Unlock()

	if hour == s.hour && s.job != nil {
		return nil
	}

	if s.job != nil {
		if err := s.cron.RemoveByTag(JobTag); err != nil {
			return fmt.Errorf("remove reminder job: %w", err)
		}
		s.job = nil
	}

	job, err := s.cron.Every(1).Day().At(fmt.Sprintf("%02d:00", hour)).Tag(JobTag).Do(s.tick, ctx)
	if err != nil {
		return fmt.Errorf("register reminder job: %w", err)
	}
	s.job = job
	s.hour = hour

	s.log.InfoContext(ctx, "reminder scheduled",
		slog.Int("hour", hour),
		slog.Time("next_run", NextRun(s.now(), hour)),
	)
	return nil
}

func (s *Scheduler) tick(ctx context.Context) {
	d, err := s.RunOnce(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "reminder run failed", slog.String("error", err.Error()))
	} else if d.Notify {
		s.log.InfoContext(ctx, "reminder sent", slog.Int("count", d.Count))
	}

	s.mu.Lock()
	hour := s.hour
	s.mu.Unlock()
	s.log.DebugContext(ctx, "next reminder", slog.Time("next_run", NextRun(s.now(), hour)))
}
