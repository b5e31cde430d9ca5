package domain

import (
	"testing"
	"time"
)

func TestQuizMode_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode QuizMode
		want bool
	}{
		{QuizModeMCQ, true},
		{QuizModeType, true},
		{QuizModeCloze, true},
		{QuizMode("ESSAY"), false},
		{QuizMode(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			t.Parallel()
			if got := tt.mode.IsValid(); got != tt.want {
				t.Errorf("QuizMode(%q).IsValid() = %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestParseQuizMode(t *testing.T) {
	t.Parallel()

	if m, ok := ParseQuizMode(" cloze "); !ok || m != QuizModeCloze {
		t.Errorf("ParseQuizMode(cloze) = %q, %v", m, ok)
	}
	if _, ok := ParseQuizMode("essay"); ok {
		t.Error("ParseQuizMode(essay) should fail")
	}
}

func TestCanonicalQuizModes(t *testing.T) {
	t.Parallel()

	got := CanonicalQuizModes([]QuizMode{QuizModeCloze, "BOGUS", QuizModeMCQ, QuizModeCloze})
	want := []QuizMode{QuizModeMCQ, QuizModeCloze}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestClampSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"goal below", ClampDailyGoal(0), 1},
		{"goal above", ClampDailyGoal(500), 200},
		{"goal inside", ClampDailyGoal(35), 35},
		{"hour below", ClampNotifyHour(-3), 0},
		{"hour above", ClampNotifyHour(24), 23},
		{"hour inside", ClampNotifyHour(7), 7},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestDateOf(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+9", 9*3600)
	in := time.Date(2026, 3, 14, 23, 30, 0, 0, loc)
	got := DateOf(in)
	want := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DateOf = %v, want %v", got, want)
	}
	if next := AddDays(in, 1); !next.Equal(want.AddDate(0, 0, 1)) {
		t.Errorf("AddDays = %v", next)
	}
}
