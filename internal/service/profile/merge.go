package profile

import (
	"reflect"
	"slices"
	"strings"

	"github.com/janisto/matrimony-api/internal/model"
)

func setTrimmed(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// mergePublic applies u onto p and reports whether anything changed.
func mergePublic(p model.PublicProfile, u PublicUpdate) (model.PublicProfile, bool) {
	before := p
	before.GalleryURLs = slices.Clone(p.GalleryURLs)

	setTrimmed(&p.Name, u.Name)
	setTrimmed(&p.Gender, u.Gender)
	setTrimmed(&p.BirthDate, u.BirthDate)
	setTrimmed(&p.Religion, u.Religion)
	setTrimmed(&p.MotherTongue, u.MotherTongue)
	setTrimmed(&p.MaritalStatus, u.MaritalStatus)
	setTrimmed(&p.Education, u.Education)
	setTrimmed(&p.Occupation, u.Occupation)
	setTrimmed(&p.Location, u.Location)
	setTrimmed(&p.About, u.About)
	setTrimmed(&p.PhotoURL, u.PhotoURL)
	if u.GalleryURLs != nil {
		urls := make([]string, len(u.GalleryURLs))
		for i, s := range u.GalleryURLs {
			urls[i] = strings.TrimSpace(s)
		}
		p.GalleryURLs = urls
	}

	return p, !samePublic(before, p)
}

// mergePrivate applies u onto p and reports whether anything changed.
func mergePrivate(p model.PrivateProfile, u PrivateUpdate) (model.PrivateProfile, bool) {
	before := p

	if u.Email != nil {
		p.Email = normalizeEmail(*u.Email)
	}
	setTrimmed(&p.Phone, u.Phone)
	setTrimmed(&p.Height, u.Height)
	setTrimmed(&p.Caste, u.Caste)
	setTrimmed(&p.Income, u.Income)
	setTrimmed(&p.Hobbies, u.Hobbies)
	setTrimmed(&p.FamilyDetails, u.FamilyDetails)
	setTrimmed(&p.PartnerPreferences, u.PartnerPreferences)

	return p, before != p
}

// samePublic treats a nil and an empty gallery as equal.
func samePublic(a, b model.PublicProfile) bool {
	if !slices.Equal(a.GalleryURLs, b.GalleryURLs) {
		return false
	}
	a.GalleryURLs, b.GalleryURLs = nil, nil
	return reflect.DeepEqual(a, b)
}
