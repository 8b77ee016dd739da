package middleware

import "net/http"

// Vary returns middleware that lists the negotiation headers in Vary:
//   - Accept: JSON or CBOR response format
//   - Accept-Language: overview section labels (en, mr)
//
// The CORS middleware adds Origin separately.
func Vary() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Accept")
			w.Header().Add("Vary", "Accept-Language")
			next.ServeHTTP(w, r)
		})
	}
}
