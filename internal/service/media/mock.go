package media

import (
	"context"
	"errors"
	"sync"
)

// ErrMockUpload is returned for keys matched by MockStore.FailKeys.
var ErrMockUpload = errors.New("mock upload failure")

// Object is an upload captured by MockStore.
type Object struct {
	Data        []byte
	ContentType string
}

// MockStore implements Store in memory for unit tests.
type MockStore struct {
	mu      sync.RWMutex
	objects map[string]Object
	order   []string

	// Err, when set, fails every upload.
	Err error
	// FailKeys fails uploads whose key satisfies the predicate.
	FailKeys func(key string) bool
}

// NewMockStore creates an empty mock store.
func NewMockStore() *MockStore {
	return &MockStore{objects: make(map[string]Object)}
}

// Upload records the object and returns a mock:// URL.
func (m *MockStore) Upload(_ context.Context, key string, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyObject
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}
	if m.FailKeys != nil && m.FailKeys(key) {
		return "", ErrMockUpload
	}
	m.objects[key] = Object{Data: append([]byte(nil), data...), ContentType: contentType}
	m.order = append(m.order, key)
	return MockURL(key), nil
}

// MockURL is the URL MockStore returns for key.
func MockURL(key string) string {
	return "mock://media/" + key
}

// Get returns a stored object.
func (m *MockStore) Get(key string) (Object, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, ok := m.objects[key]
	return o, ok
}

// Keys returns uploaded keys in upload order.
func (m *MockStore) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.order...)
}

// Len returns the number of stored objects.
func (m *MockStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}

var _ Store = (*MockStore)(nil)
