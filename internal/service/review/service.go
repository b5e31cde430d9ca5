// Package review orchestrates the word lifecycle: adding, enriching,
// queueing, reviewing and deleting words.
package review

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordkeep/internal/domain"
	"github.com/heartmarshall/wordkeep/internal/provider"
	"github.com/heartmarshall/wordkeep/internal/service/quiz"
	"github.com/heartmarshall/wordkeep/pkg/broadcast"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	GetByNormalized(ctx context.Context, key string) (*domain.Word, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	ListRecent(ctx context.Context, limit, offset int) ([]domain.Word, error)
	NewIDs(ctx context.Context, limit int) ([]uuid.UUID, error)
	ListUnenriched(ctx context.Context, limit int) ([]uuid.UUID, error)
	Create(ctx context.Context, w *domain.Word) (*domain.Word, error)
	Touch(ctx context.Context, id uuid.UUID, at time.Time) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type senseRepo interface {
	CountByWord(ctx context.Context, wordID uuid.UUID) (int, error)
	ListByWord(ctx context.Context, wordID uuid.UUID) ([]domain.Sense, error)
	CreateBatch(ctx context.Context, wordID uuid.UUID, senses []domain.Sense) ([]domain.Sense, error)
	DeleteByWord(ctx context.Context, wordID uuid.UUID) (int64, error)
}

type translationRepo interface {
	Get(ctx context.Context, wordID uuid.UUID, lang string) (*domain.Translation, error)
	ListByWord(ctx context.Context, wordID uuid.UUID) ([]domain.Translation, error)
	Upsert(ctx context.Context, wordID uuid.UUID, lang, text string) (*domain.Translation, error)
	DeleteByWord(ctx context.Context, wordID uuid.UUID) (int64, error)
}

type scheduleRepo interface {
	Get(ctx context.Context, wordID uuid.UUID) (*domain.ScheduleState, error)
	DueIDs(ctx context.Context, today time.Time, limit int) ([]uuid.UUID, error)
	Upsert(ctx context.Context, st domain.ScheduleState) error
	DeleteByWord(ctx context.Context, wordID uuid.UUID) (int64, error)
}

type quizResultRepo interface {
	Create(ctx context.Context, res *domain.QuizResult) error
	DeleteByWord(ctx context.Context, wordID uuid.UUID) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type dictionaryProvider interface {
	Lookup(ctx context.Context, term, lang string) (*provider.LookupResult, error)
}

type translationProvider interface {
	Translate(ctx context.Context, text, target, source string) (string, error)
}

type settingsReader interface {
	Current() domain.Settings
}

type questionBuilder interface {
	Build(ctx context.Context, ids []uuid.UUID, modes []domain.QuizMode) ([]quiz.Question, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the review business logic.
type Service struct {
	words        wordRepo
	senses       senseRepo
	translations translationRepo
	translator   translationProvider
	schedules    scheduleRepo
	results      quizResultRepo
	tx           txManager
	dict         dictionaryProvider
	settings     settingsReader
	questions    questionBuilder
	now          func() time.Time
	log          *slog.Logger

	locks    *keyLock
	watchers *broadcast.Hub[uuid.UUID, domain.WordDetail]
}

// NewService creates a new review service. A nil clock means time.Now.
func NewService(
	log *slog.Logger,
	words wordRepo,
	senses senseRepo,
	translations translationRepo,
	schedules scheduleRepo,
	results quizResultRepo,
	tx txManager,
	dict dictionaryProvider,
	translator translationProvider,
	settings settingsReader,
	questions questionBuilder,
	clock func() time.Time,
) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{
		words:        words,
		senses:       senses,
		translations: translations,
		translator:   translator,
		schedules:    schedules,
		results:      results,
		tx:           tx,
		dict:         dict,
		settings:     settings,
		questions:    questions,
		now:          clock,
		log:          log.With("service", "review"),
		locks:        newKeyLock(),
		watchers:     broadcast.NewHub[uuid.UUID, domain.WordDetail](),
	}
}

// today returns day, or the current date when day is zero.
func (s *Service) today(day time.Time) time.Time {
	if day.IsZero() {
		return domain.DateOf(s.now())
	}
	return domain.DateOf(day)
}
