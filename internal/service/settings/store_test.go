package settings

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"maps"
	"slices"
	"testing"
	"time"

	"github.com/heartmarshall/wordkeep/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openStore(t *testing.T, repo *settingsRepoMock) *Store {
	t.Helper()
	s, err := Open(context.Background(), repo, testLogger())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func ptr[T any](v T) *T { return &v }

func TestOpen_Defaults(t *testing.T) {
	t.Parallel()

	s := openStore(t, &settingsRepoMock{})
	if got := s.Current(); !got.Equal(domain.DefaultSettings()) {
		t.Errorf("Current() = %+v, want defaults", got)
	}
}

func TestOpen_DecodesStoredValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stored map[string]string
		want   domain.Settings
	}{
		{
			name: "all valid",
			stored: map[string]string{
				keyTranslationLang: " DE ",
				keyDailyGoal:       "35",
				keyQuizModes:       "cloze,MCQ",
				keyNotifyHour:      "7",
			},
			want: domain.Settings{
				TranslationLang: "de",
				DailyGoal:       35,
				QuizModes:       []domain.QuizMode{domain.QuizModeMCQ, domain.QuizModeCloze},
				NotifyHour:      7,
			},
		},
		{
			name:   "out of range is clamped",
			stored: map[string]string{keyDailyGoal: "999", keyNotifyHour: "-3"},
			want: domain.Settings{
				TranslationLang: domain.DefaultTranslationLang,
				DailyGoal:       domain.MaxDailyGoal,
				QuizModes:       domain.AllQuizModes,
				NotifyHour:      0,
			},
		},
		{
			name: "garbage falls back to defaults",
			stored: map[string]string{
				keyTranslationLang: "  ",
				keyDailyGoal:       "lots",
				keyQuizModes:       "ESSAY",
				keyNotifyHour:      "noon",
			},
			want: domain.DefaultSettings(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := openStore(t, &settingsRepoMock{
				LoadFunc: func(context.Context) (map[string]string, error) { return tt.stored, nil },
			})
			if got := s.Current(); !got.Equal(tt.want) {
				t.Errorf("Current() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOpen_LoadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk gone")
	_, err := Open(context.Background(), &settingsRepoMock{
		LoadFunc: func(context.Context) (map[string]string, error) { return nil, boom },
	}, testLogger())
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestStore_Setters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := &settingsRepoMock{}
	s := openStore(t, repo)

	if got, err := s.SetDailyGoal(ctx, 0); err != nil || got.DailyGoal != domain.MinDailyGoal {
		t.Errorf("SetDailyGoal(0) = %d, %v; want %d", got.DailyGoal, err, domain.MinDailyGoal)
	}
	if got, err := s.SetDailyGoal(ctx, 500); err != nil || got.DailyGoal != domain.MaxDailyGoal {
		t.Errorf("SetDailyGoal(500) = %d, %v; want %d", got.DailyGoal, err, domain.MaxDailyGoal)
	}
	if got, err := s.SetNotifyHour(ctx, 24); err != nil || got.NotifyHour != domain.MaxNotifyHour {
		t.Errorf("SetNotifyHour(24) = %d, %v; want %d", got.NotifyHour, err, domain.MaxNotifyHour)
	}
	if got, err := s.SetTranslationLang(ctx, "  FR "); err != nil || got.TranslationLang != "fr" {
		t.Errorf("SetTranslationLang = %q, %v; want fr", got.TranslationLang, err)
	}
	if _, err := s.SetTranslationLang(ctx, "   "); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("blank lang: err = %v, want validation", err)
	}

	got, err := s.SetQuizModes(ctx, []domain.QuizMode{domain.QuizModeCloze, domain.QuizModeType, domain.QuizModeCloze})
	if err != nil {
		t.Fatalf("SetQuizModes: %v", err)
	}
	if want := []domain.QuizMode{domain.QuizModeType, domain.QuizModeCloze}; !slices.Equal(got.QuizModes, want) {
		t.Errorf("QuizModes = %v, want %v", got.QuizModes, want)
	}

	saves := repo.SaveCalls()
	if len(saves) != 5 {
		t.Fatalf("Save calls = %d, want 5", len(saves))
	}
	if want := map[string]string{keyQuizModes: "TYPE,CLOZE"}; !maps.Equal(saves[4].Values, want) {
		t.Errorf("last save = %v, want only the changed key %v", saves[4].Values, want)
	}
}

func TestStore_NoChangeSkipsSave(t *testing.T) {
	t.Parallel()

	repo := &settingsRepoMock{}
	s := openStore(t, repo)

	if _, err := s.SetDailyGoal(context.Background(), domain.DefaultDailyGoal); err != nil {
		t.Fatalf("SetDailyGoal: %v", err)
	}
	if n := len(repo.SaveCalls()); n != 0 {
		t.Errorf("Save calls = %d, want 0", n)
	}
}

func TestStore_ToggleMode(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openStore(t, &settingsRepoMock{})

	if _, err := s.ToggleMode(ctx, domain.QuizModeMCQ, false); err != nil {
		t.Fatalf("disable MCQ: %v", err)
	}
	if _, err := s.ToggleMode(ctx, domain.QuizModeType, false); err != nil {
		t.Fatalf("disable TYPE: %v", err)
	}

	_, err := s.ToggleMode(ctx, domain.QuizModeCloze, false)
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("disabling last mode: err = %v, want ValidationError", err)
	}
	if got := s.Current().QuizModes; !slices.Equal(got, []domain.QuizMode{domain.QuizModeCloze}) {
		t.Errorf("modes after rejected toggle = %v, want [CLOZE]", got)
	}

	got, err := s.ToggleMode(ctx, domain.QuizModeMCQ, true)
	if err != nil {
		t.Fatalf("enable MCQ: %v", err)
	}
	if want := []domain.QuizMode{domain.QuizModeMCQ, domain.QuizModeCloze}; !slices.Equal(got.QuizModes, want) {
		t.Errorf("modes = %v, want %v", got.QuizModes, want)
	}

	if _, err := s.ToggleMode(ctx, domain.QuizMode("ESSAY"), true); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("unknown mode: err = %v, want validation", err)
	}
}

func TestStore_Update(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   UpdateSettingsInput
		want    func(domain.Settings) domain.Settings
		wantErr bool
	}{
		{
			name:  "partial",
			input: UpdateSettingsInput{DailyGoal: ptr(50)},
			want:  func(s domain.Settings) domain.Settings { s.DailyGoal = 50; return s },
		},
		{
			name: "all fields",
			input: UpdateSettingsInput{
				TranslationLang: ptr("ES"),
				DailyGoal:       ptr(10),
				NotifyHour:      ptr(6),
				QuizModes:       []domain.QuizMode{domain.QuizModeType},
			},
			want: func(domain.Settings) domain.Settings {
				return domain.Settings{TranslationLang: "es", DailyGoal: 10, NotifyHour: 6, QuizModes: []domain.QuizMode{domain.QuizModeType}}
			},
		},
		{name: "empty modes", input: UpdateSettingsInput{QuizModes: []domain.QuizMode{}}, wantErr: true},
		{name: "unknown mode", input: UpdateSettingsInput{QuizModes: []domain.QuizMode{"ESSAY"}}, wantErr: true},
		{name: "long lang", input: UpdateSettingsInput{TranslationLang: ptr("abcdefghijk")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := openStore(t, &settingsRepoMock{})
			got, err := s.Update(context.Background(), tt.input)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Fatalf("err = %v, want validation", err)
				}
				if !s.Current().Equal(domain.DefaultSettings()) {
					t.Errorf("state changed after rejected update: %+v", s.Current())
				}
				return
			}
			if err != nil {
				t.Fatalf("Update: %v", err)
			}
			if want := tt.want(domain.DefaultSettings()); !got.Equal(want) {
				t.Errorf("Update() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestStore_SaveErrorKeepsState(t *testing.T) {
	t.Parallel()

	boom := errors.New("read-only")
	s := openStore(t, &settingsRepoMock{
		SaveFunc: func(context.Context, map[string]string) error { return boom },
	})

	if _, err := s.SetNotifyHour(context.Background(), 8); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if got := s.Current().NotifyHour; got != domain.DefaultNotifyHour {
		t.Errorf("NotifyHour = %d, want unchanged %d", got, domain.DefaultNotifyHour)
	}
}

func TestStore_Subscribe(t *testing.T) {
	t.Parallel()

	s := openStore(t, &settingsRepoMock{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := s.Subscribe(ctx)
	first := recv(t, ch)
	if !first.Equal(domain.DefaultSettings()) {
		t.Fatalf("initial = %+v, want defaults", first)
	}

	// Two quick changes: a slow subscriber only sees the latest.
	if _, err := s.SetNotifyHour(ctx, 8); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SetNotifyHour(ctx, 9); err != nil {
		t.Fatal(err)
	}
	if got := recv(t, ch); got.NotifyHour != 9 {
		t.Errorf("NotifyHour = %d, want 9", got.NotifyHour)
	}

	cancel()
	select {
	case _, ok := <-ch:
		if ok {
			t.Error("expected channel to close after cancel")
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func recv(t *testing.T, ch <-chan domain.Settings) domain.Settings {
	t.Helper()
	select {
	case v, ok := <-ch:
		if !ok {
			t.Fatal("channel closed")
		}
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for settings")
	}
	return domain.Settings{}
}
