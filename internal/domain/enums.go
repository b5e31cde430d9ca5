package domain

import "strings"

// QuizMode is the kind of question asked about a word.
type QuizMode string

const (
	QuizModeMCQ   QuizMode = "MCQ"
	QuizModeType  QuizMode = "TYPE"
	QuizModeCloze QuizMode = "CLOZE"
)

// AllQuizModes lists every mode in canonical order.
var AllQuizModes = []QuizMode{QuizModeMCQ, QuizModeType, QuizModeCloze}

func (m QuizMode) String() string { return string(m) }

func (m QuizMode) IsValid() bool {
	switch m {
	case QuizModeMCQ, QuizModeType, QuizModeCloze:
		return true
	}
	return false
}

// ParseQuizMode parses a mode name case-insensitively.
func ParseQuizMode(s string) (QuizMode, bool) {
	m := QuizMode(strings.ToUpper(strings.TrimSpace(s)))
	return m, m.IsValid()
}
