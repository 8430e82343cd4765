package server

import (
	"encoding/json"
	"net/http"

	"fwadmin/internal/api/dto"
	"fwadmin/internal/auth"
)

func createRule(w http.ResponseWriter, r *http.Request) {
	caller := auth.CallerFromRequest(r)

	hostID, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var payload dto.NewRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		writeError(w, "Name, protocol and a port between 1 and 65535 are required", http.StatusBadRequest)
		return
	}

	rule, err := registryService.CreateRule(caller, hostID, payload.Name, payload.Permit, payload.IPProtocol, payload.Port)
	if err != nil {
		writeRegistryError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.RuleInfoFrom(rule))
}

func deleteRule(w http.ResponseWriter, r *http.Request) {
	caller := auth.CallerFromRequest(r)

	ruleID, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := registryService.DeleteRule(caller, ruleID); err != nil {
		writeRegistryError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
