// Package completeness scores how much of a profile has been filled in.
//
// The section table below is the single source of the section field lists and
// weights. Callers read a cached [model.DashboardOverview] or call [Compute];
// they never carry their own copy of the weighting.
package completeness

import (
	"math"
	"slices"

	"github.com/janisto/matrimony-api/internal/model"
)

// Field is a named profile value checked for presence.
type Field struct {
	Name  string
	Value string
}

// SectionSpec describes one scored section.
type SectionSpec struct {
	Key    model.Section
	Weight int
	fields func(pub *model.PublicProfile, priv *model.PrivateProfile) []Field
}

// sections is the ordered scoring table. Weights sum to 100.
var sections = []SectionSpec{
	{
		Key:    model.SectionBasicInfo,
		Weight: 20,
		fields: func(p *model.PublicProfile, _ *model.PrivateProfile) []Field {
			return []Field{{"name", p.Name}, {"gender", p.Gender}, {"birthDate", p.BirthDate}}
		},
	},
	{
		Key:    model.SectionContactInfo,
		Weight: 15,
		fields: func(p *model.PublicProfile, q *model.PrivateProfile) []Field {
			return []Field{{"phone", q.Phone}, {"location", p.Location}}
		},
	},
	{
		Key:    model.SectionEducation,
		Weight: 15,
		fields: func(p *model.PublicProfile, _ *model.PrivateProfile) []Field {
			return []Field{{"education", p.Education}, {"occupation", p.Occupation}}
		},
	},
	{
		Key:    model.SectionAbout,
		Weight: 15,
		fields: func(p *model.PublicProfile, q *model.PrivateProfile) []Field {
			return []Field{{"about", p.About}, {"hobbies", q.Hobbies}, {"familyDetails", q.FamilyDetails}}
		},
	},
	{
		Key:    model.SectionPreferences,
		Weight: 20,
		fields: func(_ *model.PublicProfile, q *model.PrivateProfile) []Field {
			return []Field{{"partnerPreferences", q.PartnerPreferences}}
		},
	},
	{
		Key:    model.SectionGallery,
		Weight: 15,
		fields: func(p *model.PublicProfile, _ *model.PrivateProfile) []Field {
			var first string
			if len(p.GalleryURLs) > 0 {
				first = p.GalleryURLs[0]
			}
			return []Field{{"photoURL", p.PhotoURL}, {"galleryURLs", first}}
		},
	},
}

// Sections returns a copy of the scoring table in display order.
func Sections() []SectionSpec {
	return slices.Clone(sections)
}

// SectionProgress returns round(100 * present / total) where a value is present when non-empty.
// An empty list scores 0.
func SectionProgress(values ...string) int {
	if len(values) == 0 {
		return 0
	}
	present := 0
	for _, v := range values {
		if v != "" {
			present++
		}
	}
	return int(math.Round(100 * float64(present) / float64(len(values))))
}

// Compute derives the dashboard overview from the two records. Nil records count as all fields absent.
// UpdatedAt is left zero; the overview store stamps it.
func Compute(pub *model.PublicProfile, priv *model.PrivateProfile) model.DashboardOverview {
	pub, priv = orEmpty(pub, priv)

	pcts := make(map[model.Section]int, len(sections))
	weighted, weights := 0, 0
	for _, s := range sections {
		fields := s.fields(pub, priv)
		values := make([]string, len(fields))
		for i, f := range fields {
			values[i] = f.Value
		}
		pct := SectionProgress(values...)
		pcts[s.Key] = pct
		weighted += pct * s.Weight
		weights += s.Weight
	}

	overall := 0
	if weights > 0 {
		overall = int(math.Round(float64(weighted) / float64(weights)))
	}
	return model.DashboardOverview{
		ProfileCompleteness: overall,
		SectionCompletion:   pcts,
	}
}

// Missing lists, per section, the names of absent fields in table order.
// Sections with nothing missing are omitted.
func Missing(pub *model.PublicProfile, priv *model.PrivateProfile) map[model.Section][]string {
	pub, priv = orEmpty(pub, priv)

	missing := make(map[model.Section][]string)
	for _, s := range sections {
		for _, f := range s.fields(pub, priv) {
			if f.Value == "" {
				missing[s.Key] = append(missing[s.Key], f.Name)
			}
		}
	}
	return missing
}

// Report bundles a freshly computed overview with the fields still missing.
type Report struct {
	Overview model.DashboardOverview
	Missing  map[model.Section][]string
}

// Evaluate computes a Report from the two records.
func Evaluate(pub *model.PublicProfile, priv *model.PrivateProfile) Report {
	return Report{
		Overview: Compute(pub, priv),
		Missing:  Missing(pub, priv),
	}
}

func orEmpty(pub *model.PublicProfile, priv *model.PrivateProfile) (*model.PublicProfile, *model.PrivateProfile) {
	if pub == nil {
		pub = &model.PublicProfile{}
	}
	if priv == nil {
		priv = &model.PrivateProfile{}
	}
	return pub, priv
}
