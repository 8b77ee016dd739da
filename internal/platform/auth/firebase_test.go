package auth

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"standard", "Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"lower case scheme", "bearer token123", "token123", nil},
		{"surrounding spaces", "  Bearer   token123  ", "token123", nil},
		{"empty", "", "", ErrNoToken},
		{"scheme only", "Bearer", "", ErrInvalidToken},
		{"scheme and space", "Bearer ", "", ErrInvalidToken},
		{"basic auth", "Basic dXNlcjpwYXNz", "", ErrInvalidToken},
		{"two tokens", "Bearer a b", "", ErrInvalidToken},
		{"no scheme", "abc.def.ghi", "", ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Fatalf("expected token %q, got %q", tt.want, got)
			}
		})
	}
}

func TestIdentityFromClaims(t *testing.T) {
	tests := []struct {
		name   string
		claims map[string]any
		want   *Identity
	}{
		{
			name:   "verified email",
			claims: map[string]any{"email": "asha@example.com", "email_verified": true},
			want:   &Identity{UID: "uid-1", Email: "asha@example.com", EmailVerified: true},
		},
		{
			name:   "phone sign-in has no email",
			claims: map[string]any{"phone_number": "+919812345678"},
			want:   &Identity{UID: "uid-1"},
		},
		{
			name:   "wrong claim types ignored",
			claims: map[string]any{"email": 42, "email_verified": "true"},
			want:   &Identity{UID: "uid-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, identityFromClaims("uid-1", tt.claims)); diff != "" {
				t.Fatalf("identity mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSeedEmail(t *testing.T) {
	tests := []struct {
		name string
		id   *Identity
		want string
	}{
		{"verified", &Identity{Email: "asha@example.com", EmailVerified: true}, "asha@example.com"},
		{"unverified", &Identity{Email: "asha@example.com"}, ""},
		{"no email", &Identity{EmailVerified: true}, ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.SeedEmail(); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestClassifyFirebaseErrorDefaultsToInvalid(t *testing.T) {
	if err := classifyFirebaseError(errors.New("malformed jwt")); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestMockVerifier(t *testing.T) {
	asha := &Identity{UID: "asha"}
	ravi := &Identity{UID: "ravi"}
	boom := errors.New("boom")

	tests := []struct {
		name     string
		verifier *MockVerifier
		token    string
		want     *Identity
		wantErr  error
	}{
		{"single user", &MockVerifier{User: asha}, "anything", asha, nil},
		{"token map", &MockVerifier{Tokens: map[string]*Identity{"t-asha": asha, "t-ravi": ravi}}, "t-ravi", ravi, nil},
		{"unknown token", &MockVerifier{Tokens: map[string]*Identity{"t-asha": asha}}, "t-x", nil, ErrInvalidToken},
		{"error wins", &MockVerifier{User: asha, Error: boom}, "anything", nil, boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.verifier.Verify(t.Context(), tt.token)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}
