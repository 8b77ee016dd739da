package profile

import (
	"github.com/janisto/matrimony-api/internal/platform/timeutil"
)

// Profile is the caller's pair of records.
type Profile struct {
	PublicData  PublicData  `json:"publicData"`
	PrivateData PrivateData `json:"privateData"`
}

// PublicData represents the public record.
type PublicData struct {
	Name          string         `json:"name"          doc:"Full name"        example:"Asha Patil"`
	Gender        string         `json:"gender"        doc:"Gender"           example:"female"`
	BirthDate     string         `json:"birthDate"     doc:"Birth date"       example:"1995-04-12"`
	Religion      string         `json:"religion"      doc:"Religion"         example:"Hindu"`
	MotherTongue  string         `json:"motherTongue"  doc:"Mother tongue"    example:"Marathi"`
	MaritalStatus string         `json:"maritalStatus" doc:"Marital status"   example:"neverMarried"`
	Education     string         `json:"education"     doc:"Education"        example:"B.E. Computer Engineering"`
	Occupation    string         `json:"occupation"    doc:"Occupation"       example:"Software Engineer"`
	Location      string         `json:"location"      doc:"City or region"   example:"Pune"`
	About         string         `json:"about"         doc:"Self description" example:"Enjoys trekking in the Sahyadris."`
	PhotoURL      string         `json:"photoURL"      doc:"Profile photo URL"`
	GalleryURLs   []string       `json:"galleryURLs"   doc:"Gallery image URLs in display order"`
	UpdatedAt     *timeutil.Time `json:"updatedAt,omitempty" doc:"Last update timestamp; absent before the first save" example:"2024-01-15T10:30:00.000Z"`
}

// PrivateData represents the private record.
type PrivateData struct {
	Email              string         `json:"email"              doc:"Contact email"          example:"asha@example.com"`
	Phone              string         `json:"phone"              doc:"Phone"                  example:"+919812345678"`
	Height             string         `json:"height"             doc:"Height in centimeters"  example:"162"`
	Caste              string         `json:"caste"              doc:"Caste"                  example:"Maratha"`
	Income             string         `json:"income"             doc:"Annual income"          example:"12 LPA"`
	Hobbies            string         `json:"hobbies"            doc:"Hobbies"                example:"Reading, trekking"`
	FamilyDetails      string         `json:"familyDetails"      doc:"Family details"`
	PartnerPreferences string         `json:"partnerPreferences" doc:"Partner preferences"`
	UpdatedAt          *timeutil.Time `json:"updatedAt,omitempty" doc:"Last update timestamp; absent before the first save" example:"2024-01-15T10:30:00.000Z"`
}

// Completeness is a freshly computed completeness report.
type Completeness struct {
	ProfileCompleteness int                 `json:"profileCompleteness" doc:"Weighted completeness percentage" example:"65" minimum:"0" maximum:"100"`
	Band                string              `json:"band"                doc:"Progress band" enum:"success,warning,danger" example:"warning"`
	Sections            []SectionCompletion `json:"sections"            doc:"Per-section breakdown in display order"`
}

// SectionCompletion is the state of one section.
type SectionCompletion struct {
	Key     string   `json:"key"     doc:"Section key"                   example:"basicInfo"`
	Weight  int      `json:"weight"  doc:"Share of the overall score"    example:"20"`
	Percent int      `json:"percent" doc:"Percentage of fields present"  example:"67" minimum:"0" maximum:"100"`
	Band    string   `json:"band"    doc:"Progress band" enum:"success,warning,danger" example:"warning"`
	Missing []string `json:"missing" doc:"Names of fields still empty"`
}
