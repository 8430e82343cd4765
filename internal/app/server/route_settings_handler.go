package server

import (
	"encoding/json"
	"net/http"

	"fwadmin/internal/auth"
	"fwadmin/internal/config"
	"fwadmin/internal/registry"
)

// Settings are moderator territory: they control the group names and host
// lifetime the whole instance runs on.
func requireModerator(w http.ResponseWriter, r *http.Request) bool {
	caller := auth.CallerFromRequest(r)
	if !caller.Authenticated() {
		writeError(w, registry.ErrUnauthenticated.Error(), http.StatusUnauthorized)
		return false
	}
	if !caller.HasGroup(config.GetConfig().Registry.ModeratorsGroup) {
		writeError(w, registry.ReasonNotModerator, http.StatusForbidden)
		return false
	}
	return true
}

func getSettings(w http.ResponseWriter, r *http.Request) {
	if !requireModerator(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, config.GetConfig())
}

func updateSettings(w http.ResponseWriter, r *http.Request) {
	if !requireModerator(w, r) {
		return
	}

	var payload config.Config
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if err := config.SetConfig(payload); err != nil {
		writeError(w, "Failed to save settings", http.StatusInternalServerError)
		return
	}

	// Echo the stored form so the client sees applied defaults.
	writeJSON(w, http.StatusOK, config.GetConfig())
}
