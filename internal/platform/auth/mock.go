package auth

import (
	"context"
)

// MockVerifier fakes token verification for tests.
//
// When Tokens is set each bearer token maps to its own identity and unknown
// tokens are rejected. Otherwise every token resolves to User.
type MockVerifier struct {
	User   *Identity
	Tokens map[string]*Identity
	Error  error
}

func (m *MockVerifier) Verify(_ context.Context, token string) (*Identity, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	if m.Tokens == nil {
		return m.User, nil
	}
	if id, ok := m.Tokens[token]; ok {
		return id, nil
	}
	return nil, ErrInvalidToken
}

// TestUser returns the identity handler tests authenticate as.
func TestUser() *Identity {
	return &Identity{UID: "test-user-123", Email: "test@example.com", EmailVerified: true}
}

var _ Verifier = (*MockVerifier)(nil)
