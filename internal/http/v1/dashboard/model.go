package dashboard

import (
	"github.com/janisto/matrimony-api/internal/platform/timeutil"
)

// Overview is the localized dashboard overview.
type Overview struct {
	Language            string         `json:"language"            doc:"Language of the labels" enum:"en,mr" example:"en"`
	CompletenessLabel   string         `json:"completenessLabel"   doc:"Heading of the overall percentage" example:"Profile Completeness"`
	ProfileCompleteness int            `json:"profileCompleteness" doc:"Weighted completeness percentage" minimum:"0" maximum:"100" example:"65"`
	Band                string         `json:"band"                doc:"Progress band" enum:"success,warning,danger" example:"warning"`
	Title               string         `json:"title"               doc:"Heading of the section breakdown" example:"Section Completion"`
	Sections            []Section      `json:"sections"            doc:"Per-section completion in display order"`
	UpdatedAt           *timeutil.Time `json:"updatedAt,omitempty" doc:"Last overview write, or last record update when not cached; absent before the first save" example:"2024-01-15T10:30:00.000Z"`
}

// Section is one row of the section breakdown.
type Section struct {
	Key     string `json:"key"     doc:"Section key"                  example:"basicInfo"`
	Label   string `json:"label"   doc:"Localized section label"      example:"Basic Info"`
	Percent int    `json:"percent" doc:"Percentage of fields present" minimum:"0" maximum:"100" example:"67"`
	Weight  int    `json:"weight"  doc:"Share of the overall score"   example:"20"`
	Band    string `json:"band"    doc:"Progress band" enum:"success,warning,danger" example:"warning"`
}
