// Package settings owns the user's review preferences and pushes every
// change to subscribers.
package settings

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/heartmarshall/wordkeep/internal/domain"
	"github.com/heartmarshall/wordkeep/pkg/broadcast"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type settingsRepo interface {
	Load(ctx context.Context) (map[string]string, error)
	Save(ctx context.Context, values map[string]string) error
}

// Persisted keys.
const (
	keyTranslationLang = "translation_lang"
	keyDailyGoal       = "daily_goal"
	keyQuizModes       = "quiz_modes"
	keyNotifyHour      = "notify_hour"
)

// Store holds the current settings in memory and writes changes through to
// the repo. All methods are safe for concurrent use.
type Store struct {
	log   *slog.Logger
	repo  settingsRepo
	topic *broadcast.Topic[domain.Settings]

	mu      sync.Mutex
	current domain.Settings
}

// Open loads persisted settings, falling back to defaults for missing or
// unreadable values.
func Open(ctx context.Context, repo settingsRepo, logger *slog.Logger) (*Store, error) {
	s := &Store{
		log:   logger.With("service", "settings"),
		repo:  repo,
		topic: broadcast.NewTopic[domain.Settings](),
	}

	stored, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("settings.Open: %w", err)
	}
	s.current = s.decode(ctx, stored)

	return s, nil
}

// Current returns a snapshot of the settings.
func (s *Store) Current() domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Subscribe returns a channel that yields the current settings at once and
// then the latest value after each change. It closes when ctx is done or
// the store is closed.
func (s *Store) Subscribe(ctx context.Context) <-chan domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.topic.Subscribe(ctx, s.current.Clone())
}

// Close ends all subscriptions.
func (s *Store) Close() {
	s.topic.Close()
}

// SetTranslationLang sets the language translations are fetched in.
func (s *Store) SetTranslationLang(ctx context.Context, lang string) (domain.Settings, error) {
	return s.Update(ctx, UpdateSettingsInput{TranslationLang: &lang})
}

// SetDailyGoal sets the daily queue size, clamped to [1,200].
func (s *Store) SetDailyGoal(ctx context.Context, goal int) (domain.Settings, error) {
	return s.Update(ctx, UpdateSettingsInput{DailyGoal: &goal})
}

// SetNotifyHour sets the reminder hour, clamped to [0,23].
func (s *Store) SetNotifyHour(ctx context.Context, hour int) (domain.Settings, error) {
	return s.Update(ctx, UpdateSettingsInput{NotifyHour: &hour})
}

// SetQuizModes replaces the enabled quiz modes.
func (s *Store) SetQuizModes(ctx context.Context, modes []domain.QuizMode) (domain.Settings, error) {
	return s.Update(ctx, UpdateSettingsInput{QuizModes: modes})
}

// ToggleMode enables or disables a single quiz mode. Disabling the last
// enabled mode is rejected.
func (s *Store) ToggleMode(ctx context.Context, mode domain.QuizMode, enabled bool) (domain.Settings, error) {
	if !mode.IsValid() {
		return domain.Settings{}, domain.NewValidationError("mode", "unknown quiz mode")
	}

	return s.apply(ctx, func(cur domain.Settings) (domain.Settings, error) {
		next := make([]domain.QuizMode, 0, len(cur.QuizModes)+1)
		for _, m := range cur.QuizModes {
			if m != mode {
				next = append(next, m)
			}
		}
		if enabled {
			next = append(next, mode)
		}
		cur.QuizModes = domain.CanonicalQuizModes(next)
		if len(cur.QuizModes) == 0 {
			return domain.Settings{}, domain.NewValidationError("quiz_modes", "at least one mode must stay enabled")
		}
		return cur, nil
	})
}

// Update applies a partial update. Nil fields are left unchanged.
func (s *Store) Update(ctx context.Context, input UpdateSettingsInput) (domain.Settings, error) {
	if err := input.Validate(); err != nil {
		return domain.Settings{}, err
	}

	return s.apply(ctx, func(cur domain.Settings) (domain.Settings, error) {
		if input.TranslationLang != nil {
			cur.TranslationLang = normalizeLang(*input.TranslationLang)
		}
		if input.DailyGoal != nil {
			cur.DailyGoal = domain.ClampDailyGoal(*input.DailyGoal)
		}
		if input.NotifyHour != nil {
			cur.NotifyHour = domain.ClampNotifyHour(*input.NotifyHour)
		}
		if input.QuizModes != nil {
			cur.QuizModes = domain.CanonicalQuizModes(input.QuizModes)
		}
		return cur, nil
	})
}

// apply computes the next settings from the current ones, persists the
// changed keys and publishes the result. State is untouched on error.
func (s *Store) apply(ctx context.Context, fn func(domain.Settings) (domain.Settings, error)) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.current.Clone())
	if err != nil {
		return domain.Settings{}, err
	}

	if next.Equal(s.current) {
		return next, nil
	}

	if err := s.repo.Save(ctx, diff(s.current, next)); err != nil {
		return domain.Settings{}, fmt.Errorf("settings.Update: %w", err)
	}

	s.current = next
	s.topic.Publish(next.Clone())

	s.log.InfoContext(ctx, "settings updated",
		slog.String("translation_lang", next.TranslationLang),
		slog.Int("daily_goal", next.DailyGoal),
		slog.String("quiz_modes", encodeModes(next.QuizModes)),
		slog.Int("notify_hour", next.NotifyHour),
	)

	return next.Clone(), nil
}

// decode builds Settings from stored values. Bad values are logged and
// replaced with defaults.
func (s *Store) decode(ctx context.Context, stored map[string]string) domain.Settings {
	out := domain.DefaultSettings()

	if v, ok := stored[keyTranslationLang]; ok {
		if lang := normalizeLang(v); lang != "" {
			out.TranslationLang = lang
		} else {
			s.warnStored(ctx, keyTranslationLang, v)
		}
	}

	if v, ok := stored[keyDailyGoal]; ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			out.DailyGoal = domain.ClampDailyGoal(n)
		} else {
			s.warnStored(ctx, keyDailyGoal, v)
		}
	}

	if v, ok := stored[keyNotifyHour]; ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			out.NotifyHour = domain.ClampNotifyHour(n)
		} else {
			s.warnStored(ctx, keyNotifyHour, v)
		}
	}

	if v, ok := stored[keyQuizModes]; ok {
		if modes := decodeModes(v); len(modes) > 0 {
			out.QuizModes = modes
		} else {
			s.warnStored(ctx, keyQuizModes, v)
		}
	}

	return out
}

func (s *Store) warnStored(ctx context.Context, key, value string) {
	s.log.WarnContext(ctx, "ignoring stored setting",
		slog.String("key", key),
		slog.String("value", value),
	)
}

// diff returns the encoded keys whose values differ between a and b.
func diff(a, b domain.Settings) map[string]string {
	out := make(map[string]string, 4)
	if a.TranslationLang != b.TranslationLang {
		out[keyTranslationLang] = b.TranslationLang
	}
	if a.DailyGoal != b.DailyGoal {
		out[keyDailyGoal] = strconv.Itoa(b.DailyGoal)
	}
	if a.NotifyHour != b.NotifyHour {
		out[keyNotifyHour] = strconv.Itoa(b.NotifyHour)
	}
	if encodeModes(a.QuizModes) != encodeModes(b.QuizModes) {
		out[keyQuizModes] = encodeModes(b.QuizModes)
	}
	return out
}

func normalizeLang(lang string) string {
	return strings.ToLower(strings.TrimSpace(lang))
}

func encodeModes(modes []domain.QuizMode) string {
	parts := make([]string, len(modes))
	for i, m := range modes {
		parts[i] = m.String()
	}
	return strings.Join(parts, ",")
}

func decodeModes(v string) []domain.QuizMode {
	var modes []domain.QuizMode
	for _, part := range strings.Split(v, ",") {
		if m, ok := domain.ParseQuizMode(part); ok {
			modes = append(modes, m)
		}
	}
	return domain.CanonicalQuizModes(modes)
}
