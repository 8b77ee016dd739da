// Package i18n resolves the display language of a request and holds the
// dashboard label tables. A Language is an explicit value threaded through
// callers; there is no process-wide current language.
package i18n

import (
	"golang.org/x/text/language"

	"github.com/janisto/matrimony-api/internal/model"
)

// Language is a supported display language.
type Language string

const (
	English Language = "en"
	Marathi Language = "mr"
)

// Default is used when nothing in the request matches a supported language.
const Default = English

// Supported lists the languages in matcher preference order.
var Supported = []Language{English, Marathi}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.MustParse("mr"),
})

// Parse picks a language from an explicit choice (e.g. ?lang=) and an
// Accept-Language header value. The explicit value wins when it is supported.
func Parse(explicit, acceptLanguage string) Language {
	if l, ok := lookup(explicit); ok {
		return l
	}
	if acceptLanguage == "" {
		return Default
	}
	_, idx := language.MatchStrings(matcher, acceptLanguage)
	if idx < 0 || idx >= len(Supported) {
		return Default
	}
	return Supported[idx]
}

func lookup(s string) (Language, bool) {
	if s == "" {
		return "", false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	for _, l := range Supported {
		if base.String() == string(l) {
			return l, true
		}
	}
	return "", false
}

// Tag returns the BCP 47 tag for l.
func (l Language) Tag() language.Tag {
	return language.Make(string(l))
}

type labels struct {
	sections     map[model.Section]string
	title        string
	completeness string
}

var tables = map[Language]labels{
	English: {
		sections: map[model.Section]string{
			model.SectionBasicInfo:   "Basic Info",
			model.SectionContactInfo: "Contact Info",
			model.SectionEducation:   "Education & Career",
			model.SectionAbout:       "About Me",
			model.SectionPreferences: "Partner Preferences",
			model.SectionGallery:     "Gallery",
		},
		title:        "Section Completion",
		completeness: "Profile Completeness",
	},
	Marathi: {
		sections: map[model.Section]string{
			model.SectionBasicInfo:   "मूलभूत माहिती",
			model.SectionContactInfo: "संपर्क माहिती",
			model.SectionEducation:   "शिक्षण आणि कारकीर्द",
			model.SectionAbout:       "माझ्याबद्दल",
			model.SectionPreferences: "जोडीदार प्राधान्ये",
			model.SectionGallery:     "गॅलरी",
		},
		title:        "विभाग पूर्णता",
		completeness: "प्रोफाइल पूर्णता",
	},
}

func table(l Language) labels {
	if t, ok := tables[l]; ok {
		return t
	}
	return tables[Default]
}

// SectionLabel returns the display label for a section. Unknown sections
// fall back to their key.
func SectionLabel(l Language, s model.Section) string {
	if label, ok := table(l).sections[s]; ok {
		return label
	}
	return string(s)
}

// Title returns the heading of the section breakdown.
func Title(l Language) string {
	return table(l).title
}

// CompletenessLabel returns the heading of the overall percentage.
func CompletenessLabel(l Language) string {
	return table(l).completeness
}
