package dashboard

// OverviewOutput for GET /dashboard/overview and POST /dashboard/overview/refresh
type OverviewOutput struct {
	ContentLanguage string `header:"Content-Language" doc:"Language of the labels"`
	Body            Overview
}
