package profile

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/janisto/matrimony-api/internal/model"
)

// MockStore implements Store in memory for unit tests.
type MockStore struct {
	mu      sync.RWMutex
	public  map[string]model.PublicProfile
	private map[string]model.PrivateProfile
	now     func() time.Time

	// Injected failures, returned by the matching operation when set.
	GetErr           error
	UpsertPublicErr  error
	UpsertPrivateErr error

	writes int
}

// NewMockStore creates an empty mock store.
func NewMockStore() *MockStore {
	return &MockStore{
		public:  make(map[string]model.PublicProfile),
		private: make(map[string]model.PrivateProfile),
		now:     time.Now,
	}
}

func (m *MockStore) GetPublic(_ context.Context, userID string) (*model.PublicProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.GetErr != nil {
		return nil, m.GetErr
	}
	p, ok := m.public[userID]
	if !ok {
		return nil, ErrNotFound
	}
	p.GalleryURLs = slices.Clone(p.GalleryURLs)
	return &p, nil
}

func (m *MockStore) GetPrivate(_ context.Context, userID string) (*model.PrivateProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.GetErr != nil {
		return nil, m.GetErr
	}
	p, ok := m.private[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (m *MockStore) UpsertPublic(_ context.Context, userID string, update PublicUpdate) (*model.PublicProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.UpsertPublicErr != nil {
		return nil, m.UpsertPublicErr
	}
	current, exists := m.public[userID]
	merged, changed := mergePublic(current, update)
	if !exists || changed {
		merged.UserID = userID
		merged.UpdatedAt = m.now().UTC()
		m.public[userID] = merged
		m.writes++
	}
	merged.GalleryURLs = slices.Clone(merged.GalleryURLs)
	return &merged, nil
}

func (m *MockStore) UpsertPrivate(_ context.Context, userID string, update PrivateUpdate) (*model.PrivateProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.UpsertPrivateErr != nil {
		return nil, m.UpsertPrivateErr
	}
	current, exists := m.private[userID]
	merged, changed := mergePrivate(current, update)
	if !exists || changed {
		merged.UserID = userID
		merged.UpdatedAt = m.now().UTC()
		m.private[userID] = merged
		m.writes++
	}
	return &merged, nil
}

// Writes returns how many record writes reached the store.
func (m *MockStore) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}

// Compile-time interface check
var _ Store = (*MockStore)(nil)
