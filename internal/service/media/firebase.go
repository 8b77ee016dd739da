package media

import (
	"context"
	"fmt"
	"net/url"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

const (
	defaultFirebaseBaseURL = "https://firebasestorage.googleapis.com"
	downloadTokenMetadata  = "firebaseStorageDownloadTokens"
)

// FirebaseStore writes to a Firebase Storage (GCS) bucket and returns
// token-based download URLs like the Firebase client SDKs do.
type FirebaseStore struct {
	bucket  *storage.BucketHandle
	name    string
	baseURL string
	token   func() string
}

// FirebaseOption customizes a FirebaseStore.
type FirebaseOption func(*FirebaseStore)

// WithDownloadBaseURL points download URLs at another host, e.g. the Storage emulator.
func WithDownloadBaseURL(base string) FirebaseOption {
	return func(s *FirebaseStore) { s.baseURL = base }
}

// NewFirebaseStore wraps a bucket handle. name must be the bucket's name.
func NewFirebaseStore(bucket *storage.BucketHandle, name string, opts ...FirebaseOption) *FirebaseStore {
	s := &FirebaseStore{
		bucket:  bucket,
		name:    name,
		baseURL: defaultFirebaseBaseURL,
		token:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Upload writes data under key with a fresh download token.
func (s *FirebaseStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyObject
	}

	token := s.token()
	w := s.bucket.Object(key).NewWriter(ctx)
	w.ContentType = contentType
	w.Metadata = map[string]string{downloadTokenMetadata: token}

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", key, err)
	}
	return s.downloadURL(key, token), nil
}

func (s *FirebaseStore) downloadURL(key, token string) string {
	return fmt.Sprintf("%s/v0/b/%s/o/%s?alt=media&token=%s",
		s.baseURL, s.name, url.PathEscape(key), url.QueryEscape(token))
}

var _ Store = (*FirebaseStore)(nil)
