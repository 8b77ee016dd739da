package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/matrimony-api/internal/completeness"
	"github.com/janisto/matrimony-api/internal/i18n"
	"github.com/janisto/matrimony-api/internal/model"
	"github.com/janisto/matrimony-api/internal/platform/auth"
	applog "github.com/janisto/matrimony-api/internal/platform/logging"
	"github.com/janisto/matrimony-api/internal/platform/timeutil"
	dashboardsvc "github.com/janisto/matrimony-api/internal/service/dashboard"
)

// Register registers dashboard endpoints.
func Register(api huma.API, svc dashboardsvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard-overview",
		Method:      http.MethodGet,
		Path:        "/dashboard/overview",
		Summary:     "Get dashboard overview",
		Description: "Returns the cached profile completeness overview with localized section labels. " +
			"An overview that is not cached is computed from the profile records and not stored.",
		Tags: []string{"Dashboard"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *OverviewGetInput) (*OverviewOutput, error) {
		id := auth.IdentityFromContext(ctx)

		o, err := svc.Overview(ctx, id.UID)
		if err != nil {
			applog.LogError(ctx, "failed to read dashboard overview", err)
			return nil, huma.Error500InternalServerError("internal error")
		}
		return toOutput(o, i18n.Parse(input.Lang, input.AcceptLanguage)), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "refresh-dashboard-overview",
		Method:      http.MethodPost,
		Path:        "/dashboard/overview/refresh",
		Summary:     "Recompute dashboard overview",
		Description: "Recomputes the overview from the profile records and overwrites the cached copy.",
		Tags:        []string{"Dashboard"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *OverviewRefreshInput) (*OverviewOutput, error) {
		id := auth.IdentityFromContext(ctx)

		o, err := svc.Refresh(ctx, id.UID)
		if err != nil {
			applog.LogError(ctx, "failed to refresh dashboard overview", err)
			return nil, huma.Error500InternalServerError("internal error")
		}
		return toOutput(o, i18n.Parse(input.Lang, input.AcceptLanguage)), nil
	})
}

func toOutput(o *model.DashboardOverview, lang i18n.Language) *OverviewOutput {
	table := completeness.Sections()
	sections := make([]Section, 0, len(table))
	for _, s := range table {
		pct := o.SectionCompletion[s.Key]
		sections = append(sections, Section{
			Key:     string(s.Key),
			Label:   i18n.SectionLabel(lang, s.Key),
			Percent: pct,
			Weight:  s.Weight,
			Band:    string(completeness.BandFor(pct)),
		})
	}
	return &OverviewOutput{
		ContentLanguage: string(lang),
		Body: Overview{
			Language:            string(lang),
			CompletenessLabel:   i18n.CompletenessLabel(lang),
			ProfileCompleteness: o.ProfileCompleteness,
			Band:                string(completeness.BandFor(o.ProfileCompleteness)),
			Title:               i18n.Title(lang),
			Sections:            sections,
			UpdatedAt:           timeutil.NewOptional(o.UpdatedAt),
		},
	}
}
