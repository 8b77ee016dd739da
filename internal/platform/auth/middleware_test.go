package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
)

type whoamiOutput struct {
	Body struct {
		UserID string `json:"userId"`
	}
}

func newTestRouter(verifier Verifier) *chi.Mux {
	router := chi.NewRouter()
	api := humachi.New(router, huma.DefaultConfig("Test", "1.0.0"))
	api.UseMiddleware(NewAuthMiddleware(api, verifier))

	handler := func(ctx context.Context, _ *struct{}) (*whoamiOutput, error) {
		out := &whoamiOutput{}
		if id := IdentityFromContext(ctx); id != nil {
			out.Body.UserID = id.UID
		}
		return out, nil
	}
	huma.Register(api, huma.Operation{
		OperationID: "public",
		Method:      http.MethodGet,
		Path:        "/public",
	}, handler)
	huma.Register(api, huma.Operation{
		OperationID: "whoami",
		Method:      http.MethodGet,
		Path:        "/whoami",
		Security:    []map[string][]string{{"bearerAuth": {}}},
	}, handler)
	return router
}

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		header     string
		verifier   *MockVerifier
		wantStatus int
		wantUser   string
		wantHeader map[string]string
	}{
		{
			name:       "unsecured operation skips verification",
			path:       "/public",
			verifier:   &MockVerifier{Error: ErrInvalidToken},
			wantStatus: http.StatusOK,
		},
		{
			name:       "valid token",
			path:       "/whoami",
			header:     "Bearer valid",
			verifier:   &MockVerifier{User: TestUser()},
			wantStatus: http.StatusOK,
			wantUser:   "test-user-123",
		},
		{
			name:       "missing header",
			path:       "/whoami",
			verifier:   &MockVerifier{User: TestUser()},
			wantStatus: http.StatusUnauthorized,
			wantHeader: map[string]string{"WWW-Authenticate": "Bearer"},
		},
		{
			name:       "basic auth",
			path:       "/whoami",
			header:     "Basic dXNlcjpwYXNz",
			verifier:   &MockVerifier{User: TestUser()},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			path:       "/whoami",
			header:     "Bearer old",
			verifier:   &MockVerifier{Error: ErrTokenExpired},
			wantStatus: http.StatusUnauthorized,
			wantHeader: map[string]string{"WWW-Authenticate": `Bearer error="invalid_token"`},
		},
		{
			name:       "revoked token",
			path:       "/whoami",
			header:     "Bearer revoked",
			verifier:   &MockVerifier{Error: ErrTokenRevoked},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "disabled user",
			path:       "/whoami",
			header:     "Bearer disabled",
			verifier:   &MockVerifier{Error: ErrUserDisabled},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "certificate fetch failure",
			path:       "/whoami",
			header:     "Bearer valid",
			verifier:   &MockVerifier{Error: ErrCertificateFetch},
			wantStatus: http.StatusServiceUnavailable,
			wantHeader: map[string]string{"Retry-After": "30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			newTestRouter(tt.verifier).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			for k, v := range tt.wantHeader {
				if got := rec.Header().Get(k); got != v {
					t.Fatalf("expected %s %q, got %q", k, v, got)
				}
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			var body struct {
				UserID string `json:"userId"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.UserID != tt.wantUser {
				t.Fatalf("expected user %q, got %q", tt.wantUser, body.UserID)
			}
		})
	}
}

func TestReasonFor(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrTokenExpired, "token_expired"},
		{ErrTokenRevoked, "token_revoked"},
		{ErrUserDisabled, "user_disabled"},
		{ErrCertificateFetch, "certificate_fetch_failed"},
		{ErrInvalidToken, "invalid_token"},
		{errors.Join(errors.New("wrapped"), ErrTokenExpired), "token_expired"},
		{errors.New("other"), "unknown"},
	}

	for _, tt := range tests {
		if got := reasonFor(tt.err); got != tt.want {
			t.Fatalf("reasonFor(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestIdentityFromContextWithoutAuth(t *testing.T) {
	if id := IdentityFromContext(context.Background()); id != nil {
		t.Fatalf("expected nil identity, got %+v", id)
	}
}
