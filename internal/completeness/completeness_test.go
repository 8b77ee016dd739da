package completeness

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/janisto/matrimony-api/internal/model"
)

func fullPublic() *model.PublicProfile {
	return &model.PublicProfile{
		Name:          "Asha",
		Gender:        model.GenderFemale,
		BirthDate:     "1995-01-01",
		Religion:      "Hindu",
		MotherTongue:  "Marathi",
		MaritalStatus: model.MaritalNeverMarried,
		Education:     "MBA",
		Occupation:    "Manager",
		Location:      "Pune",
		About:         "Likes trekking",
		PhotoURL:      "https://cdn.example.com/p.jpg",
		GalleryURLs:   []string{"https://cdn.example.com/g1.jpg"},
	}
}

func fullPrivate() *model.PrivateProfile {
	return &model.PrivateProfile{
		Email:              "asha@example.com",
		Phone:              "9999999999",
		Height:             "165",
		Hobbies:            "Reading",
		FamilyDetails:      "Two siblings",
		PartnerPreferences: "Pune based",
	}
}

func TestSectionProgress(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   int
	}{
		{"empty list", nil, 0},
		{"all absent", []string{"", "", ""}, 0},
		{"all present", []string{"a", "b"}, 100},
		{"one of two", []string{"a", ""}, 50},
		{"one of three rounds down", []string{"a", "", ""}, 33},
		{"two of three rounds up", []string{"a", "b", ""}, 67},
		{"whitespace counts as present", []string{" ", ""}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SectionProgress(tt.values...); got != tt.want {
				t.Fatalf("SectionProgress(%q) = %d, want %d", tt.values, got, tt.want)
			}
		})
	}
}

func TestWeightsSumToHundred(t *testing.T) {
	total := 0
	for _, s := range Sections() {
		total += s.Weight
	}
	if total != 100 {
		t.Fatalf("expected weights to sum to 100, got %d", total)
	}
	if n := len(Sections()); n != 6 {
		t.Fatalf("expected 6 sections, got %d", n)
	}
}

func TestSectionWeights(t *testing.T) {
	want := map[model.Section]int{
		model.SectionBasicInfo:   20,
		model.SectionContactInfo: 15,
		model.SectionEducation:   15,
		model.SectionAbout:       15,
		model.SectionPreferences: 20,
		model.SectionGallery:     15,
	}
	got := make(map[model.Section]int)
	for _, s := range Sections() {
		got[s.Key] = s.Weight
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("weights mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeNilRecords(t *testing.T) {
	got := Compute(nil, nil)

	if got.ProfileCompleteness != 0 {
		t.Errorf("expected overall 0, got %d", got.ProfileCompleteness)
	}
	if len(got.SectionCompletion) != 6 {
		t.Fatalf("expected 6 sections, got %d", len(got.SectionCompletion))
	}
	for key, pct := range got.SectionCompletion {
		if pct != 0 {
			t.Errorf("expected %s to be 0, got %d", key, pct)
		}
	}
}

func TestComputeExampleScenario(t *testing.T) {
	pub := &model.PublicProfile{
		Name:        "Asha",
		Gender:      model.GenderFemale,
		BirthDate:   "1995-01-01",
		Education:   "MBA",
		Occupation:  "Manager",
		Location:    "Pune",
		GalleryURLs: []string{},
	}
	priv := &model.PrivateProfile{Phone: "9999999999"}

	got := Compute(pub, priv)

	want := map[model.Section]int{
		model.SectionBasicInfo:   100,
		model.SectionContactInfo: 100,
		model.SectionEducation:   100,
		model.SectionAbout:       0,
		model.SectionPreferences: 0,
		model.SectionGallery:     0,
	}
	if diff := cmp.Diff(want, got.SectionCompletion); diff != "" {
		t.Fatalf("section completion mismatch (-want +got):\n%s", diff)
	}
	if got.ProfileCompleteness != 50 {
		t.Fatalf("expected overall 50, got %d", got.ProfileCompleteness)
	}
}

func TestComputeFullProfile(t *testing.T) {
	got := Compute(fullPublic(), fullPrivate())
	if got.ProfileCompleteness != 100 {
		t.Fatalf("expected 100, got %d", got.ProfileCompleteness)
	}
	for key, pct := range got.SectionCompletion {
		if pct != 100 {
			t.Errorf("expected %s to be 100, got %d", key, pct)
		}
	}
}

func TestComputeGalleryUsesFirstElementOnly(t *testing.T) {
	pub := &model.PublicProfile{GalleryURLs: []string{"", "https://cdn.example.com/2.jpg"}}
	got := Compute(pub, nil)
	if got.SectionCompletion[model.SectionGallery] != 0 {
		t.Fatalf("expected gallery 0 when first element is empty, got %d", got.SectionCompletion[model.SectionGallery])
	}

	pub.PhotoURL = "https://cdn.example.com/p.jpg"
	pub.GalleryURLs = []string{"https://cdn.example.com/1.jpg"}
	got = Compute(pub, nil)
	if got.SectionCompletion[model.SectionGallery] != 100 {
		t.Fatalf("expected gallery 100, got %d", got.SectionCompletion[model.SectionGallery])
	}
}

func TestComputeIgnoresUnscoredFields(t *testing.T) {
	pub := &model.PublicProfile{Religion: "x", MotherTongue: "y", MaritalStatus: model.MaritalDivorced}
	priv := &model.PrivateProfile{Email: "a@b.c", Height: "170", Caste: "z", Income: "10"}
	if got := Compute(pub, priv).ProfileCompleteness; got != 0 {
		t.Fatalf("expected unscored fields to leave completeness at 0, got %d", got)
	}
}

// setters fill exactly one scored field each, in table order.
var setters = []struct {
	name string
	set  func(*model.PublicProfile, *model.PrivateProfile)
}{
	{"name", func(p *model.PublicProfile, _ *model.PrivateProfile) { p.Name = "A" }},
	{"gender", func(p *model.PublicProfile, _ *model.PrivateProfile) { p.Gender = model.GenderOther }},
	{"birthDate", func(p *model.PublicProfile, _ *model.PrivateProfile) { p.BirthDate = "1990-05-05" }},
	{"phone", func(_ *model.PublicProfile, q *model.PrivateProfile) { q.Phone = "9999999999" }},
	{"location", func(p *model.PublicProfile, _ *model.PrivateProfile) { p.Location = "Pune" }},
	{"education", func(p *model.PublicProfile, _ *model.PrivateProfile) { p.Education = "BE" }},
	{"occupation", func(p *model.PublicProfile, _ *model.PrivateProfile) { p.Occupation = "Engineer" }},
	{"about", func(p *model.PublicProfile, _ *model.PrivateProfile) { p.About = "hi" }},
	{"hobbies", func(_ *model.PublicProfile, q *model.PrivateProfile) { q.Hobbies = "chess" }},
	{"familyDetails", func(_ *model.PublicProfile, q *model.PrivateProfile) { q.FamilyDetails = "nuclear" }},
	{"partnerPreferences", func(_ *model.PublicProfile, q *model.PrivateProfile) { q.PartnerPreferences = "any" }},
	{"photoURL", func(p *model.PublicProfile, _ *model.PrivateProfile) { p.PhotoURL = "https://x/p" }},
	{"galleryURLs", func(p *model.PublicProfile, _ *model.PrivateProfile) { p.GalleryURLs = []string{"https://x/g"} }},
}

func TestComputeMonotonic(t *testing.T) {
	// Every subset of scored fields, built by walking a bitmask; adding any
	// absent field must never lower a section or the overall score.
	n := len(setters)
	for mask := 0; mask < 1<<n; mask++ {
		pub, priv := &model.PublicProfile{}, &model.PrivateProfile{}
		for i := range n {
			if mask&(1<<i) != 0 {
				setters[i].set(pub, priv)
			}
		}
		before := Compute(pub, priv)

		for i := range n {
			if mask&(1<<i) != 0 {
				continue
			}
			nextPub := *pub
			nextPub.GalleryURLs = append([]string(nil), pub.GalleryURLs...)
			nextPriv := *priv
			setters[i].set(&nextPub, &nextPriv)
			after := Compute(&nextPub, &nextPriv)

			if after.ProfileCompleteness < before.ProfileCompleteness {
				t.Fatalf("mask %b + %s: overall decreased %d -> %d",
					mask, setters[i].name, before.ProfileCompleteness, after.ProfileCompleteness)
			}
			if after.ProfileCompleteness > 100 || after.ProfileCompleteness < 0 {
				t.Fatalf("overall out of bounds: %d", after.ProfileCompleteness)
			}
			for key, pct := range after.SectionCompletion {
				if pct < before.SectionCompletion[key] {
					t.Fatalf("mask %b + %s: section %s decreased %d -> %d",
						mask, setters[i].name, key, before.SectionCompletion[key], pct)
				}
				if pct < 0 || pct > 100 {
					t.Fatalf("section %s out of bounds: %d", key, pct)
				}
			}
		}
	}
}

func TestComputeDeterministic(t *testing.T) {
	a := Compute(fullPublic(), &model.PrivateProfile{Phone: "1"})
	b := Compute(fullPublic(), &model.PrivateProfile{Phone: "1"})
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("expected identical results (-a +b):\n%s", diff)
	}
}

func TestMissing(t *testing.T) {
	pub := &model.PublicProfile{Name: "Asha", Location: "Pune", PhotoURL: "https://x/p"}
	priv := &model.PrivateProfile{Hobbies: "music"}

	got := Missing(pub, priv)
	want := map[model.Section][]string{
		model.SectionBasicInfo:   {"gender", "birthDate"},
		model.SectionContactInfo: {"phone"},
		model.SectionEducation:   {"education", "occupation"},
		model.SectionAbout:       {"about", "familyDetails"},
		model.SectionPreferences: {"partnerPreferences"},
		model.SectionGallery:     {"galleryURLs"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("missing mismatch (-want +got):\n%s", diff)
	}

	if got := Missing(fullPublic(), fullPrivate()); len(got) != 0 {
		t.Fatalf("expected nothing missing, got %v", got)
	}
}

func TestEvaluate(t *testing.T) {
	r := Evaluate(nil, nil)
	if r.Overview.ProfileCompleteness != 0 {
		t.Fatalf("expected 0, got %d", r.Overview.ProfileCompleteness)
	}
	if len(r.Missing) != 6 {
		t.Fatalf("expected all 6 sections missing fields, got %d", len(r.Missing))
	}
}

func TestSectionsReturnsCopy(t *testing.T) {
	table := Sections()
	table[0].Weight = 90
	table[1] = SectionSpec{Key: "contactInfo"}

	if got := Sections()[0].Weight; got != 20 {
		t.Fatalf("expected basicInfo weight 20 after mutating a copy, got %d", got)
	}
	full := Compute(fullPublic(), fullPrivate())
	if full.ProfileCompleteness != 100 || full.SectionCompletion[model.SectionContactInfo] != 100 {
		t.Fatalf("expected scoring unaffected by caller mutation, got %+v", full)
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		percent int
		want    Band
	}{
		{0, BandDanger},
		{49, BandDanger},
		{50, BandWarning},
		{79, BandWarning},
		{80, BandSuccess},
		{100, BandSuccess},
	}
	for _, tt := range tests {
		if got := BandFor(tt.percent); got != tt.want {
			t.Errorf("BandFor(%d) = %s, want %s", tt.percent, got, tt.want)
		}
	}
}
