package quiz

import (
	"strings"

	"github.com/heartmarshall/wordkeep/internal/domain"
)

// Grade reports whether a textual answer is correct. Multiple-choice answers
// must equal the correct option; typed answers are compared trimmed and
// case-insensitively.
func Grade(q Question, answer string) bool {
	if q.Mode == domain.QuizModeMCQ {
		return answer == q.CorrectText
	}
	return normalizeAnswer(answer) == normalizeAnswer(q.CorrectText)
}

// GradeChoice reports whether choosing option idx answers q correctly.
// Out of range indexes are wrong.
func GradeChoice(q Question, idx int) bool {
	if idx < 0 || idx >= len(q.Options) {
		return false
	}
	if q.Mode == domain.QuizModeMCQ {
		return idx == q.CorrectIndex
	}
	return Grade(q, q.Options[idx])
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
