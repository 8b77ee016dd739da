// Package health serves the liveness probe outside the versioned API.
package health

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/janisto/matrimony-api/internal/platform/timeutil"
)

// Response is the payload for the health endpoint.
type Response struct {
	Status  string        `json:"status"`
	Version string        `json:"version"`
	Started timeutil.Time `json:"started"`
}

// NewHandler returns the health check handler for a process built as version and started at started.
func NewHandler(version string, started time.Time) http.HandlerFunc {
	body := Response{Status: "healthy", Version: version, Started: timeutil.NewTime(started)}
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(body)
	}
}
