package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/matrimony-api/internal/http/v1/dashboard"
	"github.com/janisto/matrimony-api/internal/http/v1/profile"
	"github.com/janisto/matrimony-api/internal/platform/auth"
	dashboardsvc "github.com/janisto/matrimony-api/internal/service/dashboard"
	profilesvc "github.com/janisto/matrimony-api/internal/service/profile"
)

// Prefix is the path prefix of every versioned operation.
const Prefix = "/v1"

// Register wires all HTTP routes into the provided API router under Prefix.
func Register(
	api huma.API,
	verifier auth.Verifier,
	profileService profilesvc.Service,
	dashboardService dashboardsvc.Service,
) {
	v1 := huma.NewGroup(api, Prefix)
	// The middleware skips operations without Security.
	v1.UseMiddleware(auth.NewAuthMiddleware(api, verifier))

	profile.Register(v1, profileService)
	dashboard.Register(v1, dashboardService)
}
