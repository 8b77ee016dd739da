// Package app assembles the stores and services shared by the HTTP server and
// the operator CLI from a resolved configuration.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/janisto/matrimony-api/internal/platform/auth"
	"github.com/janisto/matrimony-api/internal/platform/config"
	"github.com/janisto/matrimony-api/internal/platform/firebase"
	applog "github.com/janisto/matrimony-api/internal/platform/logging"
	"github.com/janisto/matrimony-api/internal/service/dashboard"
	"github.com/janisto/matrimony-api/internal/service/media"
	"github.com/janisto/matrimony-api/internal/service/profile"
)

// App holds the wired services. Close releases the Firebase clients.
type App struct {
	Verifier  auth.Verifier
	Profiles  *profile.Manager
	Dashboard *dashboard.Reader

	clients *firebase.Clients
}

// New initializes Firebase and wires the record, overview and blob stores.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	clients, err := firebase.InitializeClients(ctx, firebase.Config{
		ProjectID:                    cfg.Firebase.ProjectID,
		GoogleApplicationCredentials: cfg.Firebase.CredentialsFile,
		StorageBucket:                cfg.Firebase.StorageBucket,
	})
	if err != nil {
		return nil, fmt.Errorf("initialize firebase: %w", err)
	}

	blobs, err := NewBlobStore(ctx, cfg, clients)
	if err != nil {
		_ = clients.Close()
		return nil, err
	}

	a := Wire(cfg, profile.NewFirestoreStore(clients.Firestore), dashboard.NewFirestoreStore(clients.Firestore), blobs)
	a.Verifier = auth.NewFirebaseVerifier(clients.Auth)
	a.clients = clients
	return a, nil
}

// Wire builds the services over the given stores.
func Wire(cfg config.Config, records profile.Store, overviews dashboard.Store, blobs media.Store) *App {
	mgr := profile.NewManager(records, overviews, blobs, profile.WithWriteTimeout(cfg.Server.SaveTimeout))
	return &App{
		Profiles:  mgr,
		Dashboard: dashboard.NewReader(overviews, mgr),
	}
}

// NewBlobStore returns the image store selected by BLOB_BACKEND.
func NewBlobStore(ctx context.Context, cfg config.Config, clients *firebase.Clients) (media.Store, error) {
	switch cfg.Blob.Backend {
	case config.BlobFirebase:
		if clients == nil {
			return nil, firebase.ErrNoStorageBucket
		}
		bucket, err := clients.Bucket()
		if err != nil {
			return nil, fmt.Errorf("open storage bucket: %w", err)
		}
		return media.NewFirebaseStore(bucket, cfg.Firebase.StorageBucket), nil
	case config.BlobMinIO:
		m := cfg.Blob.MinIO
		mcfg := media.MinIOConfig{
			Endpoint:  m.Endpoint,
			AccessKey: m.AccessKey,
			SecretKey: m.SecretKey,
			Bucket:    m.Bucket,
			Region:    m.Region,
			UseSSL:    m.UseSSL,
			PublicURL: m.PublicURL,
		}
		client, err := media.NewMinIOClient(mcfg)
		if err != nil {
			return nil, fmt.Errorf("connect minio: %w", err)
		}
		store := media.NewMinIOStore(client, mcfg)
		if err := store.EnsureBucket(ctx, m.Region); err != nil {
			return nil, fmt.Errorf("ensure minio bucket: %w", err)
		}
		return store, nil
	case config.BlobMemory:
		applog.LogWarn(ctx, "using in-memory image store; uploads are lost on restart")
		return media.NewMockStore(), nil
	default:
		return nil, fmt.Errorf("unknown blob backend %q", cfg.Blob.Backend)
	}
}

// Close releases the Firebase clients.
func (a *App) Close() error {
	if a.clients == nil {
		return nil
	}
	if err := a.clients.Close(); err != nil {
		applog.Logger().Warn("failed to close firebase clients", zap.Error(err))
		return err
	}
	return nil
}
