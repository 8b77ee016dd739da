package profile

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/janisto/matrimony-api/internal/model"
)

const (
	profilesCollection = "profiles"
	publicCollection   = "publicData"
	privateCollection  = "privateData"
	mainDoc            = "main"
)

// publicDoc maps to profiles/{uid}/publicData/main.
type publicDoc struct {
	UserID        string    `firestore:"userId"`
	Name          string    `firestore:"name"`
	Gender        string    `firestore:"gender"`
	BirthDate     string    `firestore:"birthDate"`
	Religion      string    `firestore:"religion"`
	MotherTongue  string    `firestore:"motherTongue"`
	MaritalStatus string    `firestore:"maritalStatus"`
	Education     string    `firestore:"education"`
	Occupation    string    `firestore:"occupation"`
	Location      string    `firestore:"location"`
	About         string    `firestore:"about"`
	PhotoURL      string    `firestore:"photoURL"`
	GalleryURLs   []string  `firestore:"galleryURLs"`
	UpdatedAt     time.Time `firestore:"updatedAt"`
}

// privateDoc maps to profiles/{uid}/privateData/main.
type privateDoc struct {
	UserID             string    `firestore:"userId"`
	Email              string    `firestore:"email"`
	Phone              string    `firestore:"phone"`
	Height             string    `firestore:"height"`
	Caste              string    `firestore:"caste"`
	Income             string    `firestore:"income"`
	Hobbies            string    `firestore:"hobbies"`
	FamilyDetails      string    `firestore:"familyDetails"`
	PartnerPreferences string    `firestore:"partnerPreferences"`
	UpdatedAt          time.Time `firestore:"updatedAt"`
}

func (d publicDoc) model() model.PublicProfile {
	return model.PublicProfile(d)
}

func (d privateDoc) model() model.PrivateProfile {
	return model.PrivateProfile(d)
}

// FirestoreStore implements Store using Firestore transactions.
type FirestoreStore struct {
	client *firestore.Client
	now    func() time.Time
}

// NewFirestoreStore creates a new Firestore-backed record store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client, now: time.Now}
}

func (s *FirestoreStore) publicRef(userID string) *firestore.DocumentRef {
	return s.client.Collection(profilesCollection).Doc(userID).Collection(publicCollection).Doc(mainDoc)
}

func (s *FirestoreStore) privateRef(userID string) *firestore.DocumentRef {
	return s.client.Collection(profilesCollection).Doc(userID).Collection(privateCollection).Doc(mainDoc)
}

// GetPublic returns the public record or ErrNotFound.
func (s *FirestoreStore) GetPublic(ctx context.Context, userID string) (*model.PublicProfile, error) {
	var d publicDoc
	if err := getDoc(ctx, s.publicRef(userID), &d); err != nil {
		return nil, err
	}
	p := d.model()
	return &p, nil
}

// GetPrivate returns the private record or ErrNotFound.
func (s *FirestoreStore) GetPrivate(ctx context.Context, userID string) (*model.PrivateProfile, error) {
	var d privateDoc
	if err := getDoc(ctx, s.privateRef(userID), &d); err != nil {
		return nil, err
	}
	p := d.model()
	return &p, nil
}

func getDoc(ctx context.Context, ref *firestore.DocumentRef, dst any) error {
	doc, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return err
	}
	return doc.DataTo(dst)
}

// UpsertPublic merges update into the public record inside a transaction.
func (s *FirestoreStore) UpsertPublic(ctx context.Context, userID string, update PublicUpdate) (*model.PublicProfile, error) {
	ref := s.publicRef(userID)
	var result model.PublicProfile

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var current publicDoc
		exists, err := txGet(tx, ref, &current)
		if err != nil {
			return err
		}

		merged, changed := mergePublic(current.model(), update)
		if exists && !changed {
			result = merged
			return nil
		}
		merged.UserID = userID
		merged.UpdatedAt = s.now().UTC().Truncate(time.Microsecond)

		if err := tx.Set(ref, publicDoc(merged)); err != nil {
			return err
		}
		result = merged
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpsertPrivate merges update into the private record inside a transaction.
func (s *FirestoreStore) UpsertPrivate(ctx context.Context, userID string, update PrivateUpdate) (*model.PrivateProfile, error) {
	ref := s.privateRef(userID)
	var result model.PrivateProfile

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var current privateDoc
		exists, err := txGet(tx, ref, &current)
		if err != nil {
			return err
		}

		merged, changed := mergePrivate(current.model(), update)
		if exists && !changed {
			result = merged
			return nil
		}
		merged.UserID = userID
		merged.UpdatedAt = s.now().UTC().Truncate(time.Microsecond)

		if err := tx.Set(ref, privateDoc(merged)); err != nil {
			return err
		}
		result = merged
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// txGet loads ref into dst. A missing document is not an error.
func txGet(tx *firestore.Transaction, ref *firestore.DocumentRef, dst any) (bool, error) {
	doc, err := tx.Get(ref)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, err
	}
	if err := doc.DataTo(dst); err != nil {
		return false, err
	}
	return true, nil
}

// Compile-time interface check
var _ Store = (*FirestoreStore)(nil)
