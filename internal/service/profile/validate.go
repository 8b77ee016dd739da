package profile

import (
	"fmt"
	"math"
	"net/http"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/janisto/matrimony-api/internal/model"
)

const (
	dateLayout   = "2006-01-02"
	maxNameLen   = 100
	maxTextLen   = 2000
	maxGallery   = 12
	imageMIMEPfx = "image/"
)

var phoneRe = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

var (
	genders = []string{model.GenderMale, model.GenderFemale, model.GenderOther}
	marital = []string{
		model.MaritalNeverMarried,
		model.MaritalDivorced,
		model.MaritalWidowed,
		model.MaritalAwaitingDivorce,
	}
)

// Validate checks a save request. now bounds birthDate; only its calendar date is used.
// It returns nil or a *ValidationError listing every rejected field.
func Validate(in SaveInput, now time.Time) error {
	v := &ValidationError{}

	pub := in.Public
	required(v, "publicData.name", pub.Name)
	maxLen(v, "publicData.name", pub.Name, maxNameLen)
	required(v, "publicData.gender", pub.Gender)
	oneOf(v, "publicData.gender", pub.Gender, genders)
	required(v, "publicData.birthDate", pub.BirthDate)
	birthDate(v, "publicData.birthDate", pub.BirthDate, now)
	oneOf(v, "publicData.maritalStatus", pub.MaritalStatus, marital)
	maxLen(v, "publicData.about", pub.About, maxTextLen)

	priv := in.Private
	if s := trimmed(priv.Email); s != "" {
		if addr, err := mail.ParseAddress(s); err != nil || addr.Address != s {
			v.add("privateData.email", "must be a valid email address")
		}
	}
	if s := trimmed(priv.Phone); s != "" && !phoneRe.MatchString(s) {
		v.add("privateData.phone", "must be 10 to 15 digits with an optional leading +")
	}
	if s := trimmed(priv.Height); s != "" {
		h, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
			v.add("privateData.height", "must be a positive number of centimeters")
		}
	}
	maxLen(v, "privateData.hobbies", priv.Hobbies, maxTextLen)
	maxLen(v, "privateData.familyDetails", priv.FamilyDetails, maxTextLen)
	maxLen(v, "privateData.partnerPreferences", priv.PartnerPreferences, maxTextLen)

	if in.MainImage != nil {
		image(v, "mainImage", *in.MainImage)
	}
	if len(in.Gallery) > maxGallery {
		v.add("galleryImages", fmt.Sprintf("must contain at most %d images", maxGallery))
	}
	for i, img := range in.Gallery {
		image(v, fmt.Sprintf("galleryImages[%d]", i), img)
	}

	if len(v.Issues) > 0 {
		return v
	}
	return nil
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// required rejects a supplied but blank value. Omitted fields keep the stored value.
func required(v *ValidationError, field string, s *string) {
	if s != nil && strings.TrimSpace(*s) == "" {
		v.add(field, "is required")
	}
}

func maxLen(v *ValidationError, field string, s *string, n int) {
	if s != nil && len([]rune(strings.TrimSpace(*s))) > n {
		v.add(field, fmt.Sprintf("must be at most %d characters", n))
	}
}

func oneOf(v *ValidationError, field string, s *string, allowed []string) {
	val := trimmed(s)
	if val == "" {
		return
	}
	for _, a := range allowed {
		if val == a {
			return
		}
	}
	v.add(field, "must be one of "+strings.Join(allowed, ", "))
}

func birthDate(v *ValidationError, field string, s *string, now time.Time) {
	val := trimmed(s)
	if val == "" {
		return
	}
	d, err := time.Parse(dateLayout, val)
	if err != nil {
		v.add(field, "must be a date in YYYY-MM-DD format")
		return
	}
	today, _ := time.Parse(dateLayout, now.UTC().Format(dateLayout))
	if d.After(today) {
		v.add(field, "cannot be in the future")
	}
}

func image(v *ValidationError, field string, img Image) {
	hasURL := strings.TrimSpace(img.URL) != ""
	switch {
	case img.IsNew() && hasURL:
		v.add(field, "must carry either image data or an existing url, not both")
	case !img.IsNew() && !hasURL:
		v.add(field, "must carry image data or an existing url")
	case img.IsNew():
		if !strings.HasPrefix(contentType(img), imageMIMEPfx) {
			v.add(field, "must be an image")
		}
	}
}

// contentType returns the declared type, sniffing the bytes when none is declared.
func contentType(img Image) string {
	if ct := strings.TrimSpace(img.ContentType); ct != "" {
		return ct
	}
	return http.DetectContentType(img.Data)
}
