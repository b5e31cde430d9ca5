package quiz

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordkeep/internal/domain"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	GetByIDsFunc    func(ctx context.Context, ids []uuid.UUID) ([]domain.Word, error)
	RandomTermsFunc func(ctx context.Context, excludeID uuid.UUID, n int) ([]string, error)

	mu    sync.Mutex
	calls struct {
		GetByIDs    [][]uuid.UUID
		RandomTerms []uuid.UUID
	}
}

func (m *wordRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Word, error) {
	if m.GetByIDsFunc == nil {
		panic("wordRepoMock.GetByIDsFunc: method is nil but wordRepo.GetByIDs was just called")
	}
	m.mu.Lock()
	m.calls.GetByIDs = append(m.calls.GetByIDs, ids)
	m.mu.Unlock()
	return m.GetByIDsFunc(ctx, ids)
}

func (m *wordRepoMock) GetByIDsCalls() [][]uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByIDs
}

func (m *wordRepoMock) RandomTerms(ctx context.Context, excludeID uuid.UUID, n int) ([]string, error) {
	m.mu.Lock()
	m.calls.RandomTerms = append(m.calls.RandomTerms, excludeID)
	m.mu.Unlock()
	if m.RandomTermsFunc == nil {
		return []string{}, nil
	}
	return m.RandomTermsFunc(ctx, excludeID, n)
}

var _ senseRepo = &senseRepoMock{}

type senseRepoMock struct {
	ListByWordsFunc       func(ctx context.Context, wordIDs []uuid.UUID) (map[uuid.UUID][]domain.Sense, error)
	RandomDefinitionsFunc func(ctx context.Context, excludeWordID uuid.UUID, n int) ([]string, error)

	mu    sync.Mutex
	calls struct {
		RandomDefinitions []struct {
			ExcludeWordID uuid.UUID
			N             int
		}
	}
}

func (m *senseRepoMock) ListByWords(ctx context.Context, wordIDs []uuid.UUID) (map[uuid.UUID][]domain.Sense, error) {
	if m.ListByWordsFunc == nil {
		panic("senseRepoMock.ListByWordsFunc: method is nil but senseRepo.ListByWords was just called")
	}
	return m.ListByWordsFunc(ctx, wordIDs)
}

func (m *senseRepoMock) RandomDefinitions(ctx context.Context, excludeWordID uuid.UUID, n int) ([]string, error) {
	m.mu.Lock()
	m.calls.RandomDefinitions = append(m.calls.RandomDefinitions, struct {
		ExcludeWordID uuid.UUID
		N             int
	}{excludeWordID, n})
	m.mu.Unlock()
	if m.RandomDefinitionsFunc == nil {
		return []string{}, nil
	}
	return m.RandomDefinitionsFunc(ctx, excludeWordID, n)
}

func (m *senseRepoMock) RandomDefinitionsCalls() []struct {
	ExcludeWordID uuid.UUID
	N             int
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.RandomDefinitions
}
