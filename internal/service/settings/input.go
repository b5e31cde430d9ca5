package settings

import (
	"strings"

	"github.com/heartmarshall/wordkeep/internal/domain"
)

const maxLangLen = 10

// UpdateSettingsInput holds a partial settings update.
// All fields are optional (nil = don't change). Out-of-range numbers are
// clamped rather than rejected.
type UpdateSettingsInput struct {
	TranslationLang *string
	DailyGoal       *int
	NotifyHour      *int
	QuizModes       []domain.QuizMode
}

// Validate validates the update settings input.
func (i UpdateSettingsInput) Validate() error {
	var errs []domain.FieldError

	if i.TranslationLang != nil {
		lang := strings.TrimSpace(*i.TranslationLang)
		switch {
		case lang == "":
			errs = append(errs, domain.FieldError{Field: "translation_lang", Message: "required"})
		case len(lang) > maxLangLen:
			errs = append(errs, domain.FieldError{Field: "translation_lang", Message: "too long"})
		}
	}

	if i.QuizModes != nil {
		for _, m := range i.QuizModes {
			if !m.IsValid() {
				errs = append(errs, domain.FieldError{Field: "quiz_modes", Message: "unknown quiz mode " + m.String()})
			}
		}
		if len(domain.CanonicalQuizModes(i.QuizModes)) == 0 {
			errs = append(errs, domain.FieldError{Field: "quiz_modes", Message: "at least one mode must stay enabled"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
