package dashboard

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/janisto/matrimony-api/internal/model"
)

const overviewCollection = "dashboard-overview"

// overviewDoc maps to dashboard-overview/{uid}.
type overviewDoc struct {
	ProfileCompleteness int            `firestore:"profileCompleteness"`
	SectionCompletion   map[string]int `firestore:"sectionCompletion"`
	UpdatedAt           time.Time      `firestore:"updatedAt"`
}

func toDoc(o model.DashboardOverview) overviewDoc {
	sections := make(map[string]int, len(o.SectionCompletion))
	for k, v := range o.SectionCompletion {
		sections[string(k)] = v
	}
	return overviewDoc{
		ProfileCompleteness: o.ProfileCompleteness,
		SectionCompletion:   sections,
		UpdatedAt:           o.UpdatedAt,
	}
}

func (d overviewDoc) model() model.DashboardOverview {
	sections := make(map[model.Section]int, len(d.SectionCompletion))
	for k, v := range d.SectionCompletion {
		sections[model.Section(k)] = v
	}
	return model.DashboardOverview{
		ProfileCompleteness: d.ProfileCompleteness,
		SectionCompletion:   sections,
		UpdatedAt:           d.UpdatedAt,
	}
}

// FirestoreStore implements Store on the dashboard-overview collection.
type FirestoreStore struct {
	client *firestore.Client
	now    func() time.Time
}

// NewFirestoreStore creates a new Firestore-backed overview store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client, now: time.Now}
}

func (s *FirestoreStore) ref(userID string) *firestore.DocumentRef {
	return s.client.Collection(overviewCollection).Doc(userID)
}

// Get reads the cached overview.
func (s *FirestoreStore) Get(ctx context.Context, userID string) (*model.DashboardOverview, error) {
	doc, err := s.ref(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var d overviewDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, err
	}
	o := d.model()
	return &o, nil
}

// Save replaces the whole document; it never merges with a prior overview.
func (s *FirestoreStore) Save(ctx context.Context, userID string, overview model.DashboardOverview) (*model.DashboardOverview, error) {
	overview.UpdatedAt = s.now().UTC().Truncate(time.Microsecond)
	d := toDoc(overview)
	if _, err := s.ref(userID).Set(ctx, d); err != nil {
		return nil, err
	}
	o := d.model()
	return &o, nil
}

// Delete removes the cached overview.
func (s *FirestoreStore) Delete(ctx context.Context, userID string) error {
	_, err := s.ref(userID).Delete(ctx)
	return err
}

// Compile-time interface check
var _ Store = (*FirestoreStore)(nil)
