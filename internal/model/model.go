// Package model holds the profile records and the derived dashboard overview
// shared by the stores, the completeness calculator and the HTTP layer.
package model

import "time"

// Section identifies one of the fixed completeness groupings.
type Section string

const (
	SectionBasicInfo   Section = "basicInfo"
	SectionContactInfo Section = "contactInfo"
	SectionEducation   Section = "education"
	SectionAbout       Section = "about"
	SectionPreferences Section = "preferences"
	SectionGallery     Section = "gallery"
)

// Gender values accepted on the public record.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Marital status values accepted on the public record.
const (
	MaritalNeverMarried    = "neverMarried"
	MaritalDivorced        = "divorced"
	MaritalWidowed         = "widowed"
	MaritalAwaitingDivorce = "awaitingDivorce"
)

// PublicProfile is visible to every viewer.
type PublicProfile struct {
	UserID        string
	Name          string
	Gender        string
	BirthDate     string // YYYY-MM-DD
	Religion      string
	MotherTongue  string
	MaritalStatus string
	Education     string
	Occupation    string
	Location      string
	About         string
	PhotoURL      string
	GalleryURLs   []string
	UpdatedAt     time.Time
}

// PrivateProfile is visible to authorized viewers only.
type PrivateProfile struct {
	UserID             string
	Email              string
	Phone              string
	Height             string // centimeters, decimal string
	Caste              string
	Income             string
	Hobbies            string
	FamilyDetails      string
	PartnerPreferences string
	UpdatedAt          time.Time
}

// DashboardOverview is the cached completeness summary written on every profile save.
type DashboardOverview struct {
	ProfileCompleteness int
	SectionCompletion   map[Section]int
	UpdatedAt           time.Time
}
