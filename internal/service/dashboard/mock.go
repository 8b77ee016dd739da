package dashboard

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/janisto/matrimony-api/internal/model"
)

// MockStore implements Store in memory for unit tests.
type MockStore struct {
	mu        sync.RWMutex
	overviews map[string]model.DashboardOverview
	now       func() time.Time

	GetErr    error
	SaveErr   error
	DeleteErr error

	saves int
}

// NewMockStore creates an empty mock store.
func NewMockStore() *MockStore {
	return &MockStore{
		overviews: make(map[string]model.DashboardOverview),
		now:       time.Now,
	}
}

func (m *MockStore) Get(_ context.Context, userID string) (*model.DashboardOverview, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.GetErr != nil {
		return nil, m.GetErr
	}
	o, ok := m.overviews[userID]
	if !ok {
		return nil, ErrNotFound
	}
	o.SectionCompletion = maps.Clone(o.SectionCompletion)
	return &o, nil
}

func (m *MockStore) Save(_ context.Context, userID string, overview model.DashboardOverview) (*model.DashboardOverview, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SaveErr != nil {
		return nil, m.SaveErr
	}
	overview.SectionCompletion = maps.Clone(overview.SectionCompletion)
	overview.UpdatedAt = m.now().UTC()
	m.overviews[userID] = overview
	m.saves++

	out := overview
	out.SectionCompletion = maps.Clone(overview.SectionCompletion)
	return &out, nil
}

func (m *MockStore) Delete(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.overviews, userID)
	return nil
}

// Put seeds an overview without stamping it.
func (m *MockStore) Put(userID string, overview model.DashboardOverview) {
	m.mu.Lock()
	defer m.mu.Unlock()
	overview.SectionCompletion = maps.Clone(overview.SectionCompletion)
	m.overviews[userID] = overview
}

// Saves returns how many overview writes succeeded.
func (m *MockStore) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}

// Compile-time interface check
var _ Store = (*MockStore)(nil)
