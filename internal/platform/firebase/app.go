package firebase

import (
	"context"
	"errors"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/storage"
	"google.golang.org/api/option"
)

// ErrNoStorageBucket is returned by Bucket when no bucket was configured.
var ErrNoStorageBucket = errors.New("firebase storage bucket not configured")

// Config holds Firebase configuration.
type Config struct {
	ProjectID                    string
	GoogleApplicationCredentials string // Path to service account JSON (optional)
	StorageBucket                string // e.g. "my-project.appspot.com"; empty disables Storage
}

// Clients holds initialized Firebase clients. Storage is nil unless a bucket was configured.
type Clients struct {
	Auth      *auth.Client
	Firestore *firestore.Client
	Storage   *storage.Client
}

// InitializeClients sets up Firebase and returns clients directly.
func InitializeClients(ctx context.Context, cfg Config) (*Clients, error) {
	var opts []option.ClientOption
	if cfg.GoogleApplicationCredentials != "" {
		creds, err := os.ReadFile(cfg.GoogleApplicationCredentials)
		if err != nil {
			return nil, fmt.Errorf("read credentials: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(creds))
	}

	config := &firebase.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.StorageBucket,
	}
	fbApp, err := firebase.NewApp(ctx, config, opts...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	ac, err := fbApp.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init auth client: %w", err)
	}

	fc, err := fbApp.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firestore client: %w", err)
	}

	clients := &Clients{
		Auth:      ac,
		Firestore: fc,
	}
	if cfg.StorageBucket != "" {
		sc, err := fbApp.Storage(ctx)
		if err != nil {
			_ = fc.Close()
			return nil, fmt.Errorf("init storage client: %w", err)
		}
		clients.Storage = sc
	}
	return clients, nil
}

// Bucket returns the configured default Storage bucket.
func (c *Clients) Bucket() (*gcs.BucketHandle, error) {
	if c.Storage == nil {
		return nil, ErrNoStorageBucket
	}
	return c.Storage.DefaultBucket()
}

// Close closes the Firestore client.
func (c *Clients) Close() error {
	if c.Firestore != nil {
		return c.Firestore.Close()
	}
	return nil
}
