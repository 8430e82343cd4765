package server

import (
	"net/http"

	jobruntime "fwadmin/internal/jobs/runtime"
	"fwadmin/internal/support"
)

func getStatus(w http.ResponseWriter, r *http.Request) {
	payload := map[string]any{"status": "ok"}

	// Instance count is best effort; a single-node deployment without redis
	// simply reports itself.
	if client, err := support.GetRedisClient(); err == nil {
		if count, err := jobruntime.CountActiveInstances(r.Context(), client); err == nil && count > 0 {
			payload["active_instances"] = count
		}
	}

	writeJSON(w, http.StatusOK, payload)
}
