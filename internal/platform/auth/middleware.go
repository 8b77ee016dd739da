package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/matrimony-api/internal/platform/logging"
)

type identityContextKey struct{}

// NewAuthMiddleware verifies the bearer token of every operation that
// declares a Security requirement and leaves the others alone. On success
// the Identity is stored in the context and the request logger is tagged
// with the user ID.
func NewAuthMiddleware(api huma.API, verifier Verifier) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if len(ctx.Operation().Security) == 0 {
			next(ctx)
			return
		}

		token, err := ExtractBearerToken(ctx.Header("Authorization"))
		if err != nil {
			applog.LogWarn(ctx.Context(), "auth failed", zap.String("reason", "no_token"))
			ctx.SetHeader("WWW-Authenticate", "Bearer")
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "missing or invalid authorization header")
			return
		}

		id, err := verifier.Verify(ctx.Context(), token)
		if err != nil {
			applog.LogWarn(ctx.Context(), "auth failed", zap.String("reason", reasonFor(err)))
			if errors.Is(err, ErrCertificateFetch) {
				ctx.SetHeader("Retry-After", "30")
				_ = huma.WriteErr(api, ctx, http.StatusServiceUnavailable,
					"authentication service temporarily unavailable")
				return
			}
			ctx.SetHeader("WWW-Authenticate", `Bearer error="invalid_token"`)
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		ctx = huma.WithContext(ctx, applog.WithUser(ctx.Context(), id.UID))
		next(huma.WithValue(ctx, identityContextKey{}, id))
	}
}

var reasons = map[error]string{
	ErrTokenExpired:     "token_expired",
	ErrTokenRevoked:     "token_revoked",
	ErrUserDisabled:     "user_disabled",
	ErrCertificateFetch: "certificate_fetch_failed",
	ErrInvalidToken:     "invalid_token",
}

// reasonFor returns a log-safe category for a verification error.
func reasonFor(err error) string {
	for target, reason := range reasons {
		if errors.Is(err, target) {
			return reason
		}
	}
	return "unknown"
}

// IdentityFromContext returns the verified caller, or nil on unsecured operations.
func IdentityFromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(identityContextKey{}).(*Identity)
	return id
}
