package infra

import (
	"net/http"
	"time"

	"github.com/mandalnilabja/friday/internal/types"
	"github.com/mandalnilabja/friday/internal/version"
)

// RootStatus returns JSON status and version information at /.
func (h *Handlers) RootStatus(w http.ResponseWriter, r *http.Request) {
	types.WriteJSON(w, http.StatusOK, map[string]any{
		"name":    "friday",
		"version": version.Version,
		"status":  "running",
		"api":     "/api/friday",
	})
}

// HealthCheck handler returns the application health status.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	types.WriteJSON(w, http.StatusOK, map[string]any{
		"status":         "active",
		"app":            "friday",
		"uptime_seconds": int64(time.Since(h.StartTime).Seconds()),
	})
}
