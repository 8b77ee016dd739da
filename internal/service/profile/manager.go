package profile

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/janisto/matrimony-api/internal/completeness"
	"github.com/janisto/matrimony-api/internal/model"
	applog "github.com/janisto/matrimony-api/internal/platform/logging"
	"github.com/janisto/matrimony-api/internal/service/dashboard"
	"github.com/janisto/matrimony-api/internal/service/media"
)

// categorizeError converts errors to audit-safe categories.
func categorizeError(err error) string {
	var (
		validation *ValidationError
		upload     *UploadError
		store      *StoreError
	)
	switch {
	case errors.Is(err, ErrInvalidUser):
		return "invalid_user"
	case errors.As(err, &validation):
		return "validation_failed"
	case errors.As(err, &upload):
		return "upload_failed"
	case errors.As(err, &store):
		return "store_failed"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "internal_error"
	}
}

// Manager orchestrates profile saves: uploads, record writes and the overview refresh.
type Manager struct {
	records      Store
	overviews    dashboard.Store
	blobs        media.Store
	now          func() time.Time
	writeTimeout time.Duration
}

// Option customizes a Manager.
type Option func(*Manager)

// WithClock replaces time.Now for upload keys and birthDate validation.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithWriteTimeout bounds the store writes of a save. They are detached from
// the caller's cancellation, so this is their only deadline.
func WithWriteTimeout(d time.Duration) Option {
	return func(m *Manager) { m.writeTimeout = d }
}

// NewManager wires the record store, the overview store and the blob store.
func NewManager(records Store, overviews dashboard.Store, blobs media.Store, opts ...Option) *Manager {
	m := &Manager{
		records:   records,
		overviews: overviews,
		blobs:     blobs,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get returns both records. A record that does not exist yet comes back empty.
func (m *Manager) Get(ctx context.Context, userID string) (*Profile, error) {
	if userID == "" {
		return nil, ErrInvalidUser
	}

	var p Profile
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		pub, err := m.records.GetPublic(gctx, userID)
		switch {
		case errors.Is(err, ErrNotFound):
			return nil
		case err != nil:
			return &StoreError{Step: StepReadPublic, Err: err}
		}
		p.Public = *pub
		return nil
	})
	g.Go(func() error {
		priv, err := m.records.GetPrivate(gctx, userID)
		switch {
		case errors.Is(err, ErrNotFound):
			return nil
		case err != nil:
			return &StoreError{Step: StepReadPrivate, Err: err}
		}
		p.Private = *priv
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Save validates the edit, uploads new images, merges both records and
// rewrites the dashboard overview from the merged records.
//
// Once uploads succeed the writes run to completion even if ctx is canceled.
// Writes that succeeded before a failing one are not rolled back; when only
// the overview write fails the cached overview is deleted so readers compute it from the records.
func (m *Manager) Save(ctx context.Context, userID string, in SaveInput) error {
	err := m.save(ctx, userID, in)
	if err != nil {
		applog.LogAuditEvent(ctx, applog.AuditEvent{
			Action: applog.ActionProfileSave, UserID: userID,
			Result: applog.ResultFailure, Reason: categorizeError(err),
		})
		return err
	}
	applog.LogAuditEvent(ctx, applog.AuditEvent{
		Action: applog.ActionProfileSave, UserID: userID, Result: applog.ResultSuccess,
	})
	return nil
}

func (m *Manager) save(ctx context.Context, userID string, in SaveInput) error {
	if userID == "" {
		return ErrInvalidUser
	}
	if err := Validate(in, m.now()); err != nil {
		return err
	}

	photoURL, galleryURLs, err := m.upload(ctx, userID, in)
	if err != nil {
		return err
	}

	pub := in.Public
	pub.PhotoURL, pub.GalleryURLs = photoURL, galleryURLs

	priv := in.Private
	if priv.Email == nil && in.FallbackEmail != "" {
		stored, err := m.records.GetPrivate(ctx, userID)
		switch {
		case errors.Is(err, ErrNotFound):
			priv.Email = &in.FallbackEmail
		case err != nil:
			return &StoreError{Step: StepReadPrivate, Err: err}
		case stored.Email == "":
			priv.Email = &in.FallbackEmail
		}
	}

	wctx := context.WithoutCancel(ctx)
	if m.writeTimeout > 0 {
		var cancel context.CancelFunc
		wctx, cancel = context.WithTimeout(wctx, m.writeTimeout)
		defer cancel()
	}

	pubRec, err := m.records.UpsertPublic(wctx, userID, pub)
	if err != nil {
		return &StoreError{Step: StepWritePublic, Err: err}
	}
	privRec, err := m.records.UpsertPrivate(wctx, userID, priv)
	if err != nil {
		return &StoreError{Step: StepWritePrivate, Err: err}
	}

	o := completeness.Compute(pubRec, privRec)
	if m.overviewCurrent(wctx, userID, o, pubRec.UpdatedAt, privRec.UpdatedAt) {
		return nil
	}
	if _, err := m.overviews.Save(wctx, userID, o); err != nil {
		m.invalidate(wctx, userID)
		return &StoreError{Step: StepWriteOverview, Err: err}
	}
	return nil
}

// overviewCurrent reports whether the cached overview already holds want and
// was written no earlier than the records it summarizes. A read failure
// reports false so the overview is rewritten.
func (m *Manager) overviewCurrent(ctx context.Context, userID string, want model.DashboardOverview, recordTimes ...time.Time) bool {
	cached, err := m.overviews.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, dashboard.ErrNotFound) {
			applog.LogWarn(ctx, "failed to read cached overview", zap.String("userId", userID), zap.Error(err))
		}
		return false
	}
	if cached.ProfileCompleteness != want.ProfileCompleteness || !maps.Equal(cached.SectionCompletion, want.SectionCompletion) {
		return false
	}
	for _, t := range recordTimes {
		if t.After(cached.UpdatedAt) {
			return false
		}
	}
	return true
}

// invalidate drops a cached overview that no longer matches the records.
func (m *Manager) invalidate(ctx context.Context, userID string) {
	if err := m.overviews.Delete(ctx, userID); err != nil {
		applog.LogError(ctx, "failed to invalidate dashboard overview", err, zap.String("userId", userID))
	}
}

// upload stores the new images concurrently. It returns the photoURL to set
// (nil keeps the stored one) and the rebuilt gallery (nil keeps the stored list).
func (m *Manager) upload(ctx context.Context, userID string, in SaveInput) (*string, []string, error) {
	at := m.now()
	g, gctx := errgroup.WithContext(ctx)

	var photoURL *string
	if img := in.MainImage; img != nil {
		if img.IsNew() {
			url := new(string)
			photoURL = url
			g.Go(func() error {
				key := media.Key(userID, media.ProfileImages, at, 0)
				u, err := m.blobs.Upload(gctx, key, img.Data, contentType(*img))
				if err != nil {
					return &UploadError{Field: "mainImage", Err: err}
				}
				*url = u
				return nil
			})
		} else {
			u := img.URL
			photoURL = &u
		}
	}

	var gallery []string
	if in.Gallery != nil {
		gallery = make([]string, len(in.Gallery))
		for i, img := range in.Gallery {
			if !img.IsNew() {
				gallery[i] = img.URL
				continue
			}
			g.Go(func() error {
				key := media.Key(userID, media.GalleryImages, at, i)
				u, err := m.blobs.Upload(gctx, key, img.Data, contentType(img))
				if err != nil {
					return &UploadError{Field: fmt.Sprintf("galleryImages[%d]", i), Err: err}
				}
				gallery[i] = u
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return photoURL, gallery, nil
}

// Evaluate computes a fresh completeness report from the stored records.
func (m *Manager) Evaluate(ctx context.Context, userID string) (*completeness.Report, error) {
	p, err := m.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	r := completeness.Evaluate(&p.Public, &p.Private)
	return &r, nil
}

// ComputeOverview derives the overview from the stored records without caching it.
// UpdatedAt is the newer of the two record timestamps.
func (m *Manager) ComputeOverview(ctx context.Context, userID string) (*model.DashboardOverview, error) {
	p, err := m.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	o := completeness.Compute(&p.Public, &p.Private)
	o.UpdatedAt = p.Public.UpdatedAt
	if p.Private.UpdatedAt.After(o.UpdatedAt) {
		o.UpdatedAt = p.Private.UpdatedAt
	}
	return &o, nil
}

// RecomputeOverview rebuilds the overview from the stored records and overwrites the cache.
func (m *Manager) RecomputeOverview(ctx context.Context, userID string) (*model.DashboardOverview, error) {
	p, err := m.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	o, err := m.overviews.Save(ctx, userID, completeness.Compute(&p.Public, &p.Private))
	if err != nil {
		return nil, &StoreError{Step: StepWriteOverview, Err: err}
	}
	return o, nil
}

// Compile-time interface checks
var (
	_ Service              = (*Manager)(nil)
	_ dashboard.Recomputer = (*Manager)(nil)
)
