package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/janisto/matrimony-api/internal/completeness"
	"github.com/janisto/matrimony-api/internal/model"
)

// Service errors
var (
	ErrNotFound    = errors.New("profile not found")
	ErrInvalidUser = errors.New("user id is required")
)

// FieldIssue describes one rejected input field.
type FieldIssue struct {
	Field   string
	Message string
}

// ValidationError reports malformed input. It is returned before any upload or store write.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, is := range e.Issues {
		parts[i] = is.Field + ": " + is.Message
	}
	return "invalid profile: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, msg string) {
	e.Issues = append(e.Issues, FieldIssue{Field: field, Message: msg})
}

// UploadError wraps a failed image upload. Nothing has been written when it is returned.
type UploadError struct {
	Field string
	Err   error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload %s: %v", e.Field, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// StoreError wraps a failed document read or write. Steps completed before it are not rolled back.
type StoreError struct {
	Step string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Step, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// StoreStep names the failed step.
func (e *StoreError) StoreStep() string { return e.Step }

// Save steps named by StoreError.
const (
	StepReadPublic    = "read public record"
	StepReadPrivate   = "read private record"
	StepWritePublic   = "write public record"
	StepWritePrivate  = "write private record"
	StepWriteOverview = "write dashboard overview"
)

// Profile is the record pair of one user. Absent records are returned as zero values.
type Profile struct {
	Public  model.PublicProfile
	Private model.PrivateProfile
}

// PublicUpdate carries the public fields of a save. Nil fields keep the stored value.
// Save derives PhotoURL and GalleryURLs from the SaveInput images and ignores caller values;
// stores apply them like any other field.
type PublicUpdate struct {
	Name          *string
	Gender        *string
	BirthDate     *string
	Religion      *string
	MotherTongue  *string
	MaritalStatus *string
	Education     *string
	Occupation    *string
	Location      *string
	About         *string
	PhotoURL      *string
	GalleryURLs   []string // nil keeps the stored list
}

// PrivateUpdate carries the private fields of a save. Nil fields keep the stored value.
type PrivateUpdate struct {
	Email              *string
	Phone              *string
	Height             *string
	Caste              *string
	Income             *string
	Hobbies            *string
	FamilyDetails      *string
	PartnerPreferences *string
}

// Image is either new bytes to upload or an already uploaded URL, never both.
type Image struct {
	Data        []byte
	ContentType string
	URL         string
}

// IsNew reports whether the image carries bytes to upload.
func (i Image) IsNew() bool { return len(i.Data) > 0 }

// SaveInput is one profile edit.
type SaveInput struct {
	Public  PublicUpdate
	Private PrivateUpdate

	// MainImage replaces photoURL when set: uploaded when new, taken as-is when a URL.
	MainImage *Image
	// Gallery is the full ordered gallery. Nil keeps the stored list; empty clears it.
	Gallery []Image

	// FallbackEmail fills privateData.email when none is supplied or stored.
	FallbackEmail string
}

// Store persists the two profile records.
//
// Implementations must:
//   - merge: only non-nil update fields change
//   - normalize: trim strings, lowercase email
//   - create the record on first upsert and stamp userId and updatedAt
//   - leave the record and its updatedAt untouched when the merge changes nothing
type Store interface {
	GetPublic(ctx context.Context, userID string) (*model.PublicProfile, error)
	GetPrivate(ctx context.Context, userID string) (*model.PrivateProfile, error)
	UpsertPublic(ctx context.Context, userID string, update PublicUpdate) (*model.PublicProfile, error)
	UpsertPrivate(ctx context.Context, userID string, update PrivateUpdate) (*model.PrivateProfile, error)
}

// Service defines profile operations.
type Service interface {
	Get(ctx context.Context, userID string) (*Profile, error)
	Save(ctx context.Context, userID string, in SaveInput) error
	Evaluate(ctx context.Context, userID string) (*completeness.Report, error)
	RecomputeOverview(ctx context.Context, userID string) (*model.DashboardOverview, error)
}
