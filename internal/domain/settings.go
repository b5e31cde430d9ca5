package domain

import "slices"

// Settings bounds and defaults.
const (
	DefaultTranslationLang = "en"
	DefaultDailyGoal       = 20
	MinDailyGoal           = 1
	MaxDailyGoal           = 200
	DefaultNotifyHour      = 19
	MinNotifyHour          = 0
	MaxNotifyHour          = 23
)

// Settings holds the user's review preferences.
type Settings struct {
	TranslationLang string
	DailyGoal       int
	QuizModes       []QuizMode
	NotifyHour      int
}

// DefaultSettings returns Settings with every field at its default.
func DefaultSettings() Settings {
	return Settings{
		TranslationLang: DefaultTranslationLang,
		DailyGoal:       DefaultDailyGoal,
		QuizModes:       slices.Clone(AllQuizModes),
		NotifyHour:      DefaultNotifyHour,
	}
}

// Clone returns a deep copy of s.
func (s Settings) Clone() Settings {
	s.QuizModes = slices.Clone(s.QuizModes)
	return s
}

// Equal reports whether s and o hold the same values.
func (s Settings) Equal(o Settings) bool {
	return s.TranslationLang == o.TranslationLang &&
		s.DailyGoal == o.DailyGoal &&
		s.NotifyHour == o.NotifyHour &&
		slices.Equal(s.QuizModes, o.QuizModes)
}

// ClampDailyGoal limits goal to [MinDailyGoal, MaxDailyGoal].
func ClampDailyGoal(goal int) int {
	return min(max(goal, MinDailyGoal), MaxDailyGoal)
}

// ClampNotifyHour limits hour to [MinNotifyHour, MaxNotifyHour].
func ClampNotifyHour(hour int) int {
	return min(max(hour, MinNotifyHour), MaxNotifyHour)
}

// CanonicalQuizModes drops invalid and repeated modes and returns the rest
// in AllQuizModes order.
func CanonicalQuizModes(modes []QuizMode) []QuizMode {
	out := make([]QuizMode, 0, len(AllQuizModes))
	for _, m := range AllQuizModes {
		if slices.Contains(modes, m) {
			out = append(out, m)
		}
	}
	return out
}
