package review

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordkeep/internal/domain"
)

// Upper bounds on user-supplied text.
const (
	MaxTermLength  = 200
	MaxNotesLength = 2000
	MaxTags        = 20
	MaxTagLength   = 50
	MaxPageSize    = 200
)

// AddWordInput holds the parameters for adding a word.
type AddWordInput struct {
	Term     string
	Notes    *string
	Tags     []string
	BaseLang string
}

// Validate checks all fields and collects all errors.
func (i *AddWordInput) Validate() error {
	var errs []domain.FieldError

	term := strings.TrimSpace(i.Term)
	if term == "" {
		errs = append(errs, domain.FieldError{Field: "term", Message: "required"})
	} else if domain.NormalizeForKey(term) == "" {
		errs = append(errs, domain.FieldError{Field: "term", Message: "must contain a letter or digit"})
	}
	if len([]rune(term)) > MaxTermLength {
		errs = append(errs, domain.FieldError{Field: "term", Message: "too long"})
	}
	if i.Notes != nil && len([]rune(*i.Notes)) > MaxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}
	if len(i.Tags) > MaxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "too many tags"})
	}
	for _, t := range i.Tags {
		if len([]rune(strings.TrimSpace(t))) > MaxTagLength {
			errs = append(errs, domain.FieldError{Field: "tags", Message: "tag too long"})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RecordReviewInput holds one graded answer.
type RecordReviewInput struct {
	WordID  uuid.UUID
	Mode    domain.QuizMode
	Correct bool
	TimeMs  int64
	// Grade is the SM-2 quality; values outside 0-5 are clamped.
	Grade int
	// Today defaults to the current date when zero.
	Today time.Time
}

// Validate checks all fields and collects all errors.
func (i *RecordReviewInput) Validate() error {
	var errs []domain.FieldError

	if i.WordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "word_id", Message: "required"})
	}
	if !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be MCQ, TYPE, or CLOZE"})
	}
	if i.TimeMs < 0 {
		errs = append(errs, domain.FieldError{Field: "time_ms", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SubmitAnswerInput is an answer to the current question of a session.
// Choice, when set, selects an option by index and takes precedence over
// Answer.
type SubmitAnswerInput struct {
	Answer string
	Choice *int
	TimeMs int64
	// Today is the day the answer is recorded on. Zero means the current
	// date, not the day the session started.
	Today time.Time
}

// Validate checks all fields and collects all errors.
func (i *SubmitAnswerInput) Validate() error {
	if i.TimeMs < 0 {
		return domain.NewValidationError("time_ms", "must be non-negative")
	}
	return nil
}

// cleanTags trims tags, drops blanks and repeats, and keeps the first
// spelling of each.
func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := domain.NormalizeText(t)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}

func cleanNotes(notes *string) *string {
	if notes == nil || strings.TrimSpace(*notes) == "" {
		return nil
	}
	n := strings.TrimSpace(*notes)
	return &n
}
