package dashboard

// OverviewGetInput for GET /dashboard/overview
type OverviewGetInput struct {
	Lang           string `query:"lang"             doc:"Display language; overrides Accept-Language" example:"mr"`
	AcceptLanguage string `header:"Accept-Language" doc:"Preferred display languages"`
}

// OverviewRefreshInput for POST /dashboard/overview/refresh
type OverviewRefreshInput struct {
	Lang           string `query:"lang"             doc:"Display language; overrides Accept-Language" example:"en"`
	AcceptLanguage string `header:"Accept-Language" doc:"Preferred display languages"`
}
