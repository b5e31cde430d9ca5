package settings

import (
	"context"
	"sync"
)

// settingsRepoMock is a mock implementation of settingsRepo.
type settingsRepoMock struct {
	LoadFunc func(ctx context.Context) (map[string]string, error)
	SaveFunc func(ctx context.Context, values map[string]string) error

	calls struct {
		Save []struct {
			Ctx    context.Context
			Values map[string]string
		}
	}
	lockSave sync.RWMutex
}

func (m *settingsRepoMock) Load(ctx context.Context) (map[string]string, error) {
	if m.LoadFunc == nil {
		return map[string]string{}, nil
	}
	return m.LoadFunc(ctx)
}

func (m *settingsRepoMock) Save(ctx context.Context, values map[string]string) error {
	m.lockSave.Lock()
	m.calls.Save = append(m.calls.Save, struct {
		Ctx    context.Context
		Values map[string]string
	}{Ctx: ctx, Values: values})
	m.lockSave.Unlock()
	if m.SaveFunc == nil {
		return nil
	}
	return m.SaveFunc(ctx, values)
}

// SaveCalls gets all the calls that were made to Save.
func (m *settingsRepoMock) SaveCalls() []struct {
	Ctx    context.Context
	Values map[string]string
} {
	m.lockSave.RLock()
	defer m.lockSave.RUnlock()
	return m.calls.Save
}
