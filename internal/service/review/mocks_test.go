package review

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordkeep/internal/domain"
	"github.com/heartmarshall/wordkeep/internal/provider"
	"github.com/heartmarshall/wordkeep/internal/service/quiz"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	GetByNormalizedFunc func(ctx context.Context, key string) (*domain.Word, error)
	ExistsFunc          func(ctx context.Context, id uuid.UUID) (bool, error)
	ListRecentFunc      func(ctx context.Context, limit int, offset int) ([]domain.Word, error)
	NewIDsFunc          func(ctx context.Context, limit int) ([]uuid.UUID, error)
	ListUnenrichedFunc  func(ctx context.Context, limit int) ([]uuid.UUID, error)
	CreateFunc          func(ctx context.Context, w *domain.Word) (*domain.Word, error)
	TouchFunc           func(ctx context.Context, id uuid.UUID, at time.Time) error
	DeleteFunc          func(ctx context.Context, id uuid.UUID) (bool, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		GetByNormalized []struct {
			Key string
		}
		Exists []struct {
			ID uuid.UUID
		}
		ListRecent []struct {
			Limit  int
			Offset int
		}
		NewIDs []struct {
			Limit int
		}
		ListUnenriched []struct {
			Limit int
		}
		Create []struct {
			W *domain.Word
		}
		Touch []struct {
			ID uuid.UUID
			At time.Time
		}
		Delete []struct {
			ID uuid.UUID
		}
	}
	lockGetByID         sync.RWMutex
	lockGetByNormalized sync.RWMutex
	lockExists          sync.RWMutex
	lockListRecent      sync.RWMutex
	lockNewIDs          sync.RWMutex
	lockListUnenriched  sync.RWMutex
	lockCreate          sync.RWMutex
	lockTouch           sync.RWMutex
	lockDelete          sync.RWMutex
}

func (mock *wordRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	if mock.GetByIDFunc == nil {
		panic("wordRepoMock.GetByIDFunc: method is nil but wordRepo.GetByID was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *wordRepoMock) GetByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *wordRepoMock) GetByNormalized(ctx context.Context, key string) (*domain.Word, error) {
	if mock.GetByNormalizedFunc == nil {
		panic("wordRepoMock.GetByNormalizedFunc: method is nil but wordRepo.GetByNormalized was just called")
	}
	callInfo := struct {
		Key string
	}{Key: key}
	mock.lockGetByNormalized.Lock()
	mock.calls.GetByNormalized = append(mock.calls.GetByNormalized, callInfo)
	mock.lockGetByNormalized.Unlock()
	return mock.GetByNormalizedFunc(ctx, key)
}

func (mock *wordRepoMock) GetByNormalizedCalls() []struct {
	Key string
} {
	mock.lockGetByNormalized.RLock()
	calls := mock.calls.GetByNormalized
	mock.lockGetByNormalized.RUnlock()
	return calls
}

func (mock *wordRepoMock) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("wordRepoMock.ExistsFunc: method is nil but wordRepo.Exists was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, id)
}

func (mock *wordRepoMock) ExistsCalls() []struct {
	ID uuid.UUID
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *wordRepoMock) ListRecent(ctx context.Context, limit int, offset int) ([]domain.Word, error) {
	if mock.ListRecentFunc == nil {
		panic("wordRepoMock.ListRecentFunc: method is nil but wordRepo.ListRecent was just called")
	}
	callInfo := struct {
		Limit  int
		Offset int
	}{Limit: limit, Offset: offset}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, callInfo)
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, limit, offset)
}

func (mock *wordRepoMock) ListRecentCalls() []struct {
	Limit  int
	Offset int
} {
	mock.lockListRecent.RLock()
	calls := mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}

func (mock *wordRepoMock) NewIDs(ctx context.Context, limit int) ([]uuid.UUID, error) {
	if mock.NewIDsFunc == nil {
		panic("wordRepoMock.NewIDsFunc: method is nil but wordRepo.NewIDs was just called")
	}
	callInfo := struct {
		Limit int
	}{Limit: limit}
	mock.lockNewIDs.Lock()
	mock.calls.NewIDs = append(mock.calls.NewIDs, callInfo)
	mock.lockNewIDs.Unlock()
	return mock.NewIDsFunc(ctx, limit)
}

func (mock *wordRepoMock) NewIDsCalls() []struct {
	Limit int
} {
	mock.lockNewIDs.RLock()
	calls := mock.calls.NewIDs
	mock.lockNewIDs.RUnlock()
	return calls
}

func (mock *wordRepoMock) ListUnenriched(ctx context.Context, limit int) ([]uuid.UUID, error) {
	if mock.ListUnenrichedFunc == nil {
		panic("wordRepoMock.ListUnenrichedFunc: method is nil but wordRepo.ListUnenriched was just called")
	}
	callInfo := struct {
		Limit int
	}{Limit: limit}
	mock.lockListUnenriched.Lock()
	mock.calls.ListUnenriched = append(mock.calls.ListUnenriched, callInfo)
	mock.lockListUnenriched.Unlock()
	return mock.ListUnenrichedFunc(ctx, limit)
}

func (mock *wordRepoMock) ListUnenrichedCalls() []struct {
	Limit int
} {
	mock.lockListUnenriched.RLock()
	calls := mock.calls.ListUnenriched
	mock.lockListUnenriched.RUnlock()
	return calls
}

func (mock *wordRepoMock) Create(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	if mock.CreateFunc == nil {
		panic("wordRepoMock.CreateFunc: method is nil but wordRepo.Create was just called")
	}
	callInfo := struct {
		W *domain.Word
	}{W: w}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, w)
}

func (mock *wordRepoMock) CreateCalls() []struct {
	W *domain.Word
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *wordRepoMock) Touch(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.TouchFunc == nil {
		panic("wordRepoMock.TouchFunc: method is nil but wordRepo.Touch was just called")
	}
	callInfo := struct {
		ID uuid.UUID
		At time.Time
	}{ID: id, At: at}
	mock.lockTouch.Lock()
	mock.calls.Touch = append(mock.calls.Touch, callInfo)
	mock.lockTouch.Unlock()
	return mock.TouchFunc(ctx, id, at)
}

func (mock *wordRepoMock) TouchCalls() []struct {
	ID uuid.UUID
	At time.Time
} {
	mock.lockTouch.RLock()
	calls := mock.calls.Touch
	mock.lockTouch.RUnlock()
	return calls
}

func (mock *wordRepoMock) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("wordRepoMock.DeleteFunc: method is nil but wordRepo.Delete was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *wordRepoMock) DeleteCalls() []struct {
	ID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ senseRepo = &senseRepoMock{}

type senseRepoMock struct {
	CountByWordFunc  func(ctx context.Context, wordID uuid.UUID) (int, error)
	ListByWordFunc   func(ctx context.Context, wordID uuid.UUID) ([]domain.Sense, error)
	CreateBatchFunc  func(ctx context.Context, wordID uuid.UUID, senses []domain.Sense) ([]domain.Sense, error)
	DeleteByWordFunc func(ctx context.Context, wordID uuid.UUID) (int64, error)

	calls struct {
		CountByWord []struct {
			WordID uuid.UUID
		}
		ListByWord []struct {
			WordID uuid.UUID
		}
		CreateBatch []struct {
			WordID uuid.UUID
			Senses []domain.Sense
		}
		DeleteByWord []struct {
			WordID uuid.UUID
		}
	}
	lockCountByWord  sync.RWMutex
	lockListByWord   sync.RWMutex
	lockCreateBatch  sync.RWMutex
	lockDeleteByWord sync.RWMutex
}

func (mock *senseRepoMock) CountByWord(ctx context.Context, wordID uuid.UUID) (int, error) {
	if mock.CountByWordFunc == nil {
		panic("senseRepoMock.CountByWordFunc: method is nil but senseRepo.CountByWord was just called")
	}
	callInfo := struct {
		WordID uuid.UUID
	}{WordID: wordID}
	mock.lockCountByWord.Lock()
	mock.calls.CountByWord = append(mock.calls.CountByWord, callInfo)
	mock.lockCountByWord.Unlock()
	return mock.CountByWordFunc(ctx, wordID)
}

func (mock *senseRepoMock) CountByWordCalls() []struct {
	WordID uuid.UUID
} {
	mock.lockCountByWord.RLock()
	calls := mock.calls.CountByWord
	mock.lockCountByWord.RUnlock()
	return calls
}

func (mock *senseRepoMock) ListByWord(ctx context.Context, wordID uuid.UUID) ([]domain.Sense, error) {
	if mock.ListByWordFunc == nil {
		panic("senseRepoMock.ListByWordFunc: method is nil but senseRepo.ListByWord was just called")
	}
	callInfo := struct {
		WordID uuid.UUID
	}{WordID: wordID}
	mock.lockListByWord.Lock()
	mock.calls.ListByWord = append(mock.calls.ListByWord, callInfo)
	mock.lockListByWord.Unlock()
	return mock.ListByWordFunc(ctx, wordID)
}

func (mock *senseRepoMock) ListByWordCalls() []struct {
	WordID uuid.UUID
} {
	mock.lockListByWord.RLock()
	calls := mock.calls.ListByWord
	mock.lockListByWord.RUnlock()
	return calls
}

func (mock *senseRepoMock) CreateBatch(ctx context.Context, wordID uuid.UUID, senses []domain.Sense) ([]domain.Sense, error) {
	if mock.CreateBatchFunc == nil {
		panic("senseRepoMock.CreateBatchFunc: method is nil but senseRepo.CreateBatch was just called")
	}
	callInfo := struct {
		WordID uuid.UUID
		Senses []domain.Sense
	}{WordID: wordID, Senses: senses}
	mock.lockCreateBatch.Lock()
	mock.calls.CreateBatch = append(mock.calls.CreateBatch, callInfo)
	mock.lockCreateBatch.Unlock()
	return mock.CreateBatchFunc(ctx, wordID, senses)
}

func (mock *senseRepoMock) CreateBatchCalls() []struct {
	WordID uuid.UUID
	Senses []domain.Sense
} {
	mock.lockCreateBatch.RLock()
	calls := mock.calls.CreateBatch
	mock.lockCreateBatch.RUnlock()
	return calls
}

func (mock *senseRepoMock) DeleteByWord(ctx context.Context, wordID uuid.UUID) (int64, error) {
	if mock.DeleteByWordFunc == nil {
		panic("senseRepoMock.DeleteByWordFunc: method is nil but senseRepo.DeleteByWord was just called")
	}
	callInfo := struct {
		WordID uuid.UUID
	}{WordID: wordID}
	mock.lockDeleteByWord.Lock()
	mock.calls.DeleteByWord = append(mock.calls.DeleteByWord, callInfo)
	mock.lockDeleteByWord.Unlock()
	return mock.DeleteByWordFunc(ctx, wordID)
}

func (mock *senseRepoMock) DeleteByWordCalls() []struct {
	WordID uuid.UUID
} {
	mock.lockDeleteByWord.RLock()
	calls := mock.calls.DeleteByWord
	mock.lockDeleteByWord.RUnlock()
	return calls
}

var _ translationRepo = &translationRepoMock{}

type translationRepoMock struct {
	GetFunc          func(ctx context.Context, wordID uuid.UUID, lang string) (*domain.Translation, error)
	ListByWordFunc   func(ctx context.Context, wordID uuid.UUID) ([]domain.Translation, error)
	UpsertFunc       func(ctx context.Context, wordID uuid.UUID, lang string, text string) (*domain.Translation, error)
	DeleteByWordFunc func(ctx context.Context, wordID uuid.UUID) (int64, error)

	calls struct {
		Get []struct {
			WordID uuid.UUID
			Lang   string
		}
		ListByWord []struct {
			WordID uuid.UUID
		}
		Upsert []struct {
			WordID uuid.UUID
			Lang   string
			Text   string
		}
		DeleteByWord []struct {
			WordID uuid.UUID
		}
	}
	lockGet          sync.RWMutex
	lockListByWord   sync.RWMutex
	lockUpsert       sync.RWMutex
	lockDeleteByWord sync.RWMutex
}

func (mock *translationRepoMock) Get(ctx context.Context, wordID uuid.UUID, lang string) (*domain.Translation, error) {
	if mock.GetFunc == nil {
		panic("translationRepoMock.GetFunc: method is nil but translationRepo.Get was just called")
	}
	callInfo := struct {
		WordID uuid.UUID
		Lang   string
	}{WordID: wordID, Lang: lang}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, wordID, lang)
}

func (mock *translationRepoMock) GetCalls() []struct {
	WordID uuid.UUID
	Lang   string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *translationRepoMock) ListByWord(ctx context.Context, wordID uuid.UUID) ([]domain.Translation, error) {
	if mock.ListByWordFunc == nil {
		panic("translationRepoMock.ListByWordFunc: method is nil but translationRepo.ListByWord was just called")
	}
	callInfo := struct {
		WordID uuid.UUID
	}{WordID: wordID}
	mock.lockListByWord.Lock()
	mock.calls.ListByWord = append(mock.calls.ListByWord, callInfo)
	mock.lockListByWord.Unlock()
	return mock.ListByWordFunc(ctx, wordID)
}

func (mock *translationRepoMock) ListByWordCalls() []struct {
	WordID uuid.UUID
} {
	mock.lockListByWord.RLock()
	calls := mock.calls.ListByWord
	mock.lockListByWord.RUnlock()
	return calls
}

func (mock *translationRepoMock) Upsert(ctx context.Context, wordID uuid.UUID, lang string, text string) (*domain.Translation, error) {
	if mock.UpsertFunc == nil {
		panic("translationRepoMock.UpsertFunc: method is nil but translationRepo.Upsert was just called")
	}
	callInfo := struct {
		WordID uuid.UUID
		Lang   string
		Text   string
	}{WordID: wordID, Lang: lang, Text: text}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, wordID, lang, text)
}

func (mock *translationRepoMock) UpsertCalls() []struct {
	WordID uuid.UUID
	Lang   string
	Text   string
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *translationRepoMock) DeleteByWord(ctx context.Context, wordID uuid.UUID) (int64, error) {
	if mock.DeleteByWordFunc == nil {
		panic("translationRepoMock.DeleteByWordFunc: method is nil but translationRepo.DeleteByWord was just called")
	}
	callInfo := struct {
		WordID uuid.UUID
	}{WordID: wordID}
	mock.lockDeleteByWord.Lock()
	mock.calls.DeleteByWord = append(mock.calls.DeleteByWord, callInfo)
	mock.lockDeleteByWord.Unlock()
	return mock.DeleteByWordFunc(ctx, wordID)
}

func (mock *translationRepoMock) DeleteByWordCalls() []struct {
	WordID uuid.UUID
} {
	mock.lockDeleteByWord.RLock()
	calls := mock.calls.DeleteByWord
	mock.lockDeleteByWord.RUnlock()
	return calls
}

var _ scheduleRepo = &scheduleRepoMock{}

type scheduleRepoMock struct {
	GetFunc          func(ctx context.Context, wordID uuid.UUID) (*domain.ScheduleState, error)
	DueIDsFunc       func(ctx context.Context, today time.Time, limit int) ([]uuid.UUID, error)
	UpsertFunc       func(ctx context.Context, st domain.ScheduleState) error
	DeleteByWordFunc func(ctx context.Context, wordID uuid.UUID) (int64, error)

	calls struct {
		Get []struct {
			WordID uuid.UUID
		}
		DueIDs []struct {
			Today time.Time
			Limit int
		}
		Upsert []struct {
			St domain.ScheduleState
		}
		DeleteByWord []struct {
			WordID uuid.UUID
		}
	}
	lockGet          sync.RWMutex
	lockDueIDs       sync.RWMutex
	lockUpsert       sync.RWMutex
	lockDeleteByWord sync.RWMutex
}

func (mock *scheduleRepoMock) Get(ctx context.Context, wordID uuid.UUID) (*domain.ScheduleState, error) {
	if mock.GetFunc == nil {
		panic("scheduleRepoMock.GetFunc: method is nil but scheduleRepo.Get was just called")
	}
	callInfo := struct {
		WordID uuid.UUID
	}{WordID: wordID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, wordID)
}

func (mock *scheduleRepoMock) GetCalls() []struct {
	WordID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *scheduleRepoMock) DueIDs(ctx context.Context, today time.Time, limit int) ([]uuid.UUID, error) {
	if mock.DueIDsFunc == nil {
		panic("scheduleRepoMock.DueIDsFunc: method is nil but scheduleRepo.DueIDs was just called")
	}
	callInfo := struct {
		Today time.Time
		Limit int
	}{Today: today, Limit: limit}
	mock.lockDueIDs.Lock()
	mock.calls.DueIDs = append(mock.calls.DueIDs, callInfo)
	mock.lockDueIDs.Unlock()
	return mock.DueIDsFunc(ctx, today, limit)
}

func (mock *scheduleRepoMock) DueIDsCalls() []struct {
	Today time.Time
	Limit int
} {
	mock.lockDueIDs.RLock()
	calls := mock.calls.DueIDs
	mock.lockDueIDs.RUnlock()
	return calls
}

func (mock *scheduleRepoMock) Upsert(ctx context.Context, st domain.ScheduleState) error {
	if mock.UpsertFunc == nil {
		panic("scheduleRepoMock.UpsertFunc: method is nil but scheduleRepo.Upsert was just called")
	}
	callInfo := struct {
		St domain.ScheduleState
	}{St: st}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, st)
}

func (mock *scheduleRepoMock) UpsertCalls() []struct {
	St domain.ScheduleState
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *scheduleRepoMock) DeleteByWord(ctx context.Context, wordID uuid.UUID) (int64, error) {
	if mock.DeleteByWordFunc == nil {
		panic("scheduleRepoMock.DeleteByWordFunc: method is nil but scheduleRepo.DeleteByWord was just called")
	}
	callInfo := struct {
		WordID uuid.UUID
	}{WordID: wordID}
	mock.lockDeleteByWord.Lock()
	mock.calls.DeleteByWord = append(mock.calls.DeleteByWord, callInfo)
	mock.lockDeleteByWord.Unlock()
	return mock.DeleteByWordFunc(ctx, wordID)
}

func (mock *scheduleRepoMock) DeleteByWordCalls() []struct {
	WordID uuid.UUID
} {
	mock.lockDeleteByWord.RLock()
	calls := mock.calls.DeleteByWord
	mock.lockDeleteByWord.RUnlock()
	return calls
}

var _ quizResultRepo = &quizResultRepoMock{}

type quizResultRepoMock struct {
	CreateFunc       func(ctx context.Context, res *domain.QuizResult) error
	DeleteByWordFunc func(ctx context.Context, wordID uuid.UUID) (int64, error)

	calls struct {
		Create []struct {
			Res *domain.QuizResult
		}
		DeleteByWord []struct {
			WordID uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockDeleteByWord sync.RWMutex
}

func (mock *quizResultRepoMock) Create(ctx context.Context, res *domain.QuizResult) error {
	if mock.CreateFunc == nil {
		panic("quizResultRepoMock.CreateFunc: method is nil but quizResultRepo.Create was just called")
	}
	callInfo := struct {
		Res *domain.QuizResult
	}{Res: res}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, res)
}

func (mock *quizResultRepoMock) CreateCalls() []struct {
	Res *domain.QuizResult
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *quizResultRepoMock) DeleteByWord(ctx context.Context, wordID uuid.UUID) (int64, error) {
	if mock.DeleteByWordFunc == nil {
		panic("quizResultRepoMock.DeleteByWordFunc: method is nil but quizResultRepo.DeleteByWord was just called")
	}
	callInfo := struct {
		WordID uuid.UUID
	}{WordID: wordID}
	mock.lockDeleteByWord.Lock()
	mock.calls.DeleteByWord = append(mock.calls.DeleteByWord, callInfo)
	mock.lockDeleteByWord.Unlock()
	return mock.DeleteByWordFunc(ctx, wordID)
}

func (mock *quizResultRepoMock) DeleteByWordCalls() []struct {
	WordID uuid.UUID
} {
	mock.lockDeleteByWord.RLock()
	calls := mock.calls.DeleteByWord
	mock.lockDeleteByWord.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Fn func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Fn func(ctx context.Context) error
	}{Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Fn func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

var _ dictionaryProvider = &dictionaryProviderMock{}

type dictionaryProviderMock struct {
	LookupFunc func(ctx context.Context, term string, lang string) (*provider.LookupResult, error)

	calls struct {
		Lookup []struct {
			Term string
			Lang string
		}
	}
	lockLookup sync.RWMutex
}

func (mock *dictionaryProviderMock) Lookup(ctx context.Context, term string, lang string) (*provider.LookupResult, error) {
	if mock.LookupFunc == nil {
		panic("dictionaryProviderMock.LookupFunc: method is nil but dictionaryProvider.Lookup was just called")
	}
	callInfo := struct {
		Term string
		Lang string
	}{Term: term, Lang: lang}
	mock.lockLookup.Lock()
	mock.calls.Lookup = append(mock.calls.Lookup, callInfo)
	mock.lockLookup.Unlock()
	return mock.LookupFunc(ctx, term, lang)
}

func (mock *dictionaryProviderMock) LookupCalls() []struct {
	Term string
	Lang string
} {
	mock.lockLookup.RLock()
	calls := mock.calls.Lookup
	mock.lockLookup.RUnlock()
	return calls
}

var _ translationProvider = &translationProviderMock{}

type translationProviderMock struct {
	TranslateFunc func(ctx context.Context, text string, target string, source string) (string, error)

	calls struct {
		Translate []struct {
			Text   string
			Target string
			Source string
		}
	}
	lockTranslate sync.RWMutex
}

func (mock *translationProviderMock) Translate(ctx context.Context, text string, target string, source string) (string, error) {
	if mock.TranslateFunc == nil {
		panic("translationProviderMock.TranslateFunc: method is nil but translationProvider.Translate was just called")
	}
	callInfo := struct {
		Text   string
		Target string
		Source string
	}{Text: text, Target: target, Source: source}
	mock.lockTranslate.Lock()
	mock.calls.Translate = append(mock.calls.Translate, callInfo)
	mock.lockTranslate.Unlock()
	return mock.TranslateFunc(ctx, text, target, source)
}

func (mock *translationProviderMock) TranslateCalls() []struct {
	Text   string
	Target string
	Source string
} {
	mock.lockTranslate.RLock()
	calls := mock.calls.Translate
	mock.lockTranslate.RUnlock()
	return calls
}

var _ settingsReader = &settingsReaderMock{}

type settingsReaderMock struct {
	CurrentFunc func() domain.Settings

	calls struct {
		Current []struct{}
	}
	lockCurrent sync.RWMutex
}

func (mock *settingsReaderMock) Current() domain.Settings {
	if mock.CurrentFunc == nil {
		panic("settingsReaderMock.CurrentFunc: method is nil but settingsReader.Current was just called")
	}
	callInfo := struct{}{}
	mock.lockCurrent.Lock()
	mock.calls.Current = append(mock.calls.Current, callInfo)
	mock.lockCurrent.Unlock()
	return mock.CurrentFunc()
}

func (mock *settingsReaderMock) CurrentCalls() []struct{} {
	mock.lockCurrent.RLock()
	calls := mock.calls.Current
	mock.lockCurrent.RUnlock()
	return calls
}

var _ questionBuilder = &questionBuilderMock{}

type questionBuilderMock struct {
	BuildFunc func(ctx context.Context, ids []uuid.UUID, modes []domain.QuizMode) ([]quiz.Question, error)

	calls struct {
		Build []struct {
			Ids   []uuid.UUID
			Modes []domain.QuizMode
		}
	}
	lockBuild sync.RWMutex
}

func (mock *questionBuilderMock) Build(ctx context.Context, ids []uuid.UUID, modes []domain.QuizMode) ([]quiz.Question, error) {
	if mock.BuildFunc == nil {
		panic("questionBuilderMock.BuildFunc: method is nil but questionBuilder.Build was just called")
	}
	callInfo := struct {
		Ids   []uuid.UUID
		Modes []domain.QuizMode
	}{Ids: ids, Modes: modes}
	mock.lockBuild.Lock()
	mock.calls.Build = append(mock.calls.Build, callInfo)
	mock.lockBuild.Unlock()
	return mock.BuildFunc(ctx, ids, modes)
}

func (mock *questionBuilderMock) BuildCalls() []struct {
	Ids   []uuid.UUID
	Modes []domain.QuizMode
} {
	mock.lockBuild.RLock()
	calls := mock.calls.Build
	mock.lockBuild.RUnlock()
	return calls
}
