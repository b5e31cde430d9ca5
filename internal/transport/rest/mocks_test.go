package rest

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordkeep/internal/domain"
	"github.com/heartmarshall/wordkeep/internal/service/review"
	"github.com/heartmarshall/wordkeep/internal/service/settings"
)

type wordServiceMock struct {
	AddWordFunc        func(ctx context.Context, input review.AddWordInput) (review.AddWordResult, error)
	CheckDuplicateFunc func(ctx context.Context, term string) (*domain.Word, error)
	ListWordsFunc      func(ctx context.Context, limit, offset int) ([]domain.Word, error)
	GetWordDetailFunc  func(ctx context.Context, id uuid.UUID) (*domain.WordDetail, error)
	WatchWordFunc      func(ctx context.Context, id uuid.UUID) (<-chan domain.WordDetail, error)
	DeleteWordFunc     func(ctx context.Context, id uuid.UUID) (bool, error)
	EnsureEnrichedFunc func(ctx context.Context, wordID uuid.UUID, targetLang string) (bool, error)
}

func (m *wordServiceMock) AddWord(ctx context.Context, input review.AddWordInput) (review.AddWordResult, error) {
	return m.AddWordFunc(ctx, input)
}

func (m *wordServiceMock) CheckDuplicate(ctx context.Context, term string) (*domain.Word, error) {
	return m.CheckDuplicateFunc(ctx, term)
}

func (m *wordServiceMock) ListWords(ctx context.Context, limit, offset int) ([]domain.Word, error) {
	return m.ListWordsFunc(ctx, limit, offset)
}

func (m *wordServiceMock) GetWordDetail(ctx context.Context, id uuid.UUID) (*domain.WordDetail, error) {
	return m.GetWordDetailFunc(ctx, id)
}

func (m *wordServiceMock) WatchWord(ctx context.Context, id uuid.UUID) (<-chan domain.WordDetail, error) {
	return m.WatchWordFunc(ctx, id)
}

func (m *wordServiceMock) DeleteWord(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.DeleteWordFunc(ctx, id)
}

func (m *wordServiceMock) EnsureEnriched(ctx context.Context, wordID uuid.UUID, targetLang string) (bool, error) {
	return m.EnsureEnrichedFunc(ctx, wordID, targetLang)
}

type reviewServiceMock struct {
	GenerateDailyQueueFunc func(ctx context.Context, targetSize int, today time.Time) ([]uuid.UUID, error)
	StartSessionFunc       func(ctx context.Context, today time.Time) (*review.Session, error)
	SubmitAnswerFunc       func(ctx context.Context, sess *review.Session, input review.SubmitAnswerInput) (*review.AnswerResult, error)
	RecordReviewFunc       func(ctx context.Context, input review.RecordReviewInput) (*domain.ScheduleState, error)
}

func (m *reviewServiceMock) GenerateDailyQueue(ctx context.Context, targetSize int, today time.Time) ([]uuid.UUID, error) {
	return m.GenerateDailyQueueFunc(ctx, targetSize, today)
}

func (m *reviewServiceMock) StartSession(ctx context.Context, today time.Time) (*review.Session, error) {
	return m.StartSessionFunc(ctx, today)
}

func (m *reviewServiceMock) SubmitAnswer(ctx context.Context, sess *review.Session, input review.SubmitAnswerInput) (*review.AnswerResult, error) {
	return m.SubmitAnswerFunc(ctx, sess, input)
}

func (m *reviewServiceMock) RecordReview(ctx context.Context, input review.RecordReviewInput) (*domain.ScheduleState, error) {
	return m.RecordReviewFunc(ctx, input)
}

type settingsServiceMock struct {
	current    domain.Settings
	UpdateFunc func(ctx context.Context, input settings.UpdateSettingsInput) (domain.Settings, error)
}

func (m *settingsServiceMock) Current() domain.Settings { return m.current }

func (m *settingsServiceMock) Update(ctx context.Context, input settings.UpdateSettingsInput) (domain.Settings, error) {
	return m.UpdateFunc(ctx, input)
}
