package profile

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/matrimony-api/internal/completeness"
	"github.com/janisto/matrimony-api/internal/platform/auth"
	"github.com/janisto/matrimony-api/internal/platform/timeutil"
	profilesvc "github.com/janisto/matrimony-api/internal/service/profile"
)

// Register registers profile endpoints.
func Register(api huma.API, svc profilesvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/profile",
		Summary:     "Get current user's profile",
		Description: "Returns the public and private records of the authenticated user. Records not saved yet are empty.",
		Tags:        []string{"Profile"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *ProfileGetInput) (*ProfileGetOutput, error) {
		id := auth.IdentityFromContext(ctx)

		p, err := svc.Get(ctx, id.UID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileGetOutput{Body: toHTTPProfile(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "save-profile",
		Method:      http.MethodPut,
		Path:        "/profile",
		Summary:     "Save current user's profile",
		Description: "Uploads new images, merges the supplied fields into both records and refreshes the dashboard overview. " +
			"Omitted fields keep their stored value.",
		Tags:          []string{"Profile"},
		DefaultStatus: http.StatusNoContent,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *ProfileSaveInput) (*struct{}, error) {
		id := auth.IdentityFromContext(ctx)

		if err := svc.Save(ctx, id.UID, toSaveInput(input.Body, id.SeedEmail())); err != nil {
			return nil, mapServiceError(err)
		}
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-profile-completeness",
		Method:      http.MethodGet,
		Path:        "/profile/completeness",
		Summary:     "Get profile completeness",
		Description: "Computes completeness from the stored records, listing the fields still missing in each section.",
		Tags:        []string{"Profile"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *ProfileCompletenessInput) (*ProfileCompletenessOutput, error) {
		id := auth.IdentityFromContext(ctx)

		report, err := svc.Evaluate(ctx, id.UID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileCompletenessOutput{Body: toHTTPCompleteness(report)}, nil
	})
}

func mapServiceError(err error) error {
	var (
		validation *profilesvc.ValidationError
		upload     *profilesvc.UploadError
	)
	switch {
	case errors.As(err, &validation):
		details := make([]error, 0, len(validation.Issues))
		for _, is := range validation.Issues {
			details = append(details, &huma.ErrorDetail{
				Location: "body." + is.Field,
				Message:  is.Message,
			})
		}
		return huma.Error422UnprocessableEntity("validation failed", details...)
	case errors.As(err, &upload):
		return huma.Error502BadGateway("image upload failed", &huma.ErrorDetail{
			Location: "body." + upload.Field,
			Message:  "upload failed",
		})
	case errors.Is(err, profilesvc.ErrInvalidUser):
		return huma.Error401Unauthorized("missing user identity")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}

func toSaveInput(body ProfileSaveBody, email string) profilesvc.SaveInput {
	pub, priv := body.PublicData, body.PrivateData
	in := profilesvc.SaveInput{
		Public: profilesvc.PublicUpdate{
			Name:          pub.Name,
			Gender:        pub.Gender,
			BirthDate:     pub.BirthDate,
			Religion:      pub.Religion,
			MotherTongue:  pub.MotherTongue,
			MaritalStatus: pub.MaritalStatus,
			Education:     pub.Education,
			Occupation:    pub.Occupation,
			Location:      pub.Location,
			About:         pub.About,
		},
		Private: profilesvc.PrivateUpdate{
			Email:              priv.Email,
			Phone:              priv.Phone,
			Height:             priv.Height,
			Caste:              priv.Caste,
			Income:             priv.Income,
			Hobbies:            priv.Hobbies,
			FamilyDetails:      priv.FamilyDetails,
			PartnerPreferences: priv.PartnerPreferences,
		},
		FallbackEmail: email,
	}
	if body.MainImage != nil {
		img := toImage(*body.MainImage)
		in.MainImage = &img
	}
	if body.GalleryImages != nil {
		in.Gallery = make([]profilesvc.Image, len(body.GalleryImages))
		for i, g := range body.GalleryImages {
			in.Gallery[i] = toImage(g)
		}
	}
	return in
}

func toImage(i ImageInput) profilesvc.Image {
	return profilesvc.Image{Data: i.Data, ContentType: i.ContentType, URL: i.URL}
}

func toHTTPProfile(p *profilesvc.Profile) Profile {
	gallery := p.Public.GalleryURLs
	if gallery == nil {
		gallery = []string{}
	}
	return Profile{
		PublicData: PublicData{
			Name:          p.Public.Name,
			Gender:        p.Public.Gender,
			BirthDate:     p.Public.BirthDate,
			Religion:      p.Public.Religion,
			MotherTongue:  p.Public.MotherTongue,
			MaritalStatus: p.Public.MaritalStatus,
			Education:     p.Public.Education,
			Occupation:    p.Public.Occupation,
			Location:      p.Public.Location,
			About:         p.Public.About,
			PhotoURL:      p.Public.PhotoURL,
			GalleryURLs:   gallery,
			UpdatedAt:     timeutil.NewOptional(p.Public.UpdatedAt),
		},
		PrivateData: PrivateData{
			Email:              p.Private.Email,
			Phone:              p.Private.Phone,
			Height:             p.Private.Height,
			Caste:              p.Private.Caste,
			Income:             p.Private.Income,
			Hobbies:            p.Private.Hobbies,
			FamilyDetails:      p.Private.FamilyDetails,
			PartnerPreferences: p.Private.PartnerPreferences,
			UpdatedAt:          timeutil.NewOptional(p.Private.UpdatedAt),
		},
	}
}

func toHTTPCompleteness(r *completeness.Report) Completeness {
	table := completeness.Sections()
	sections := make([]SectionCompletion, 0, len(table))
	for _, s := range table {
		pct := r.Overview.SectionCompletion[s.Key]
		missing := r.Missing[s.Key]
		if missing == nil {
			missing = []string{}
		}
		sections = append(sections, SectionCompletion{
			Key:     string(s.Key),
			Weight:  s.Weight,
			Percent: pct,
			Band:    string(completeness.BandFor(pct)),
			Missing: missing,
		})
	}
	return Completeness{
		ProfileCompleteness: r.Overview.ProfileCompleteness,
		Band:                string(completeness.BandFor(r.Overview.ProfileCompleteness)),
		Sections:            sections,
	}
}
