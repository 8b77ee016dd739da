// Package auth verifies Firebase ID tokens and exposes the caller to handlers.
package auth

import (
	"context"
	"errors"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
)

// Identity is the caller as asserted by a verified ID token. UID keys every
// profile record.
type Identity struct {
	UID           string
	Email         string
	EmailVerified bool
}

// SeedEmail is the address a first save may copy into privateData.email.
// Unverified addresses are not trusted as contact details.
func (id *Identity) SeedEmail() string {
	if id == nil || !id.EmailVerified {
		return ""
	}
	return id.Email
}

var (
	ErrNoToken      = errors.New("missing authorization header")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenRevoked = errors.New("token revoked")
	ErrUserDisabled = errors.New("user disabled")
	// ErrCertificateFetch means Google's signing keys could not be fetched. It maps to 503, not 401.
	ErrCertificateFetch = errors.New("failed to fetch certificates")
)

// Verifier validates tokens and returns user information.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// FirebaseVerifier implements Verifier using the Firebase Admin SDK.
type FirebaseVerifier struct {
	client *fbauth.Client
}

func NewFirebaseVerifier(client *fbauth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

// Order matters: a revoked token for a disabled user reports as disabled.
var firebaseErrors = []struct {
	match func(error) bool
	err   error
}{
	{fbauth.IsCertificateFetchFailed, ErrCertificateFetch},
	{fbauth.IsUserDisabled, ErrUserDisabled},
	{fbauth.IsIDTokenRevoked, ErrTokenRevoked},
	{fbauth.IsIDTokenExpired, ErrTokenExpired},
}

// Verify validates a Firebase ID token and checks for revocation.
func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	token, err := v.client.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		return nil, classifyFirebaseError(err)
	}
	return identityFromClaims(token.UID, token.Claims), nil
}

func classifyFirebaseError(err error) error {
	for _, e := range firebaseErrors {
		if e.match(err) {
			return e.err
		}
	}
	return ErrInvalidToken
}

func identityFromClaims(uid string, claims map[string]any) *Identity {
	email, _ := claims["email"].(string)
	verified, _ := claims["email_verified"].(bool)
	return &Identity{UID: uid, Email: email, EmailVerified: verified}
}

// ExtractBearerToken returns the token of an "Authorization: Bearer <token>" header.
func ExtractBearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrNoToken
	}
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "bearer") || token == "" || strings.ContainsAny(token, " \t") {
		return "", ErrInvalidToken
	}
	return token, nil
}

var _ Verifier = (*FirebaseVerifier)(nil)
