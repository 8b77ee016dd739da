package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS admits browser calls from origins, or from any origin when origins is
// empty. Requests authenticate with a bearer token, never cookies, so
// credentials stay disabled.
//
// Browsers send Accept-Language to pick overview labels and X-Request-Id or
// traceparent for correlation.
func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{
			"Accept",
			"Accept-Language",
			"Authorization",
			"Content-Type",
			"X-Request-Id",
			"traceparent",
		},
		ExposedHeaders:   []string{"Content-Language", "Link", "X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}
