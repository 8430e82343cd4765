package server

import (
	"encoding/json"
	"net/http"
	"time"

	"fwadmin/internal/api/dto"
	"fwadmin/internal/auth"
)

func listHosts(w http.ResponseWriter, r *http.Request) {
	caller := auth.CallerFromRequest(r)

	hosts, err := registryService.ListHosts(caller)
	if err != nil {
		writeRegistryError(w, err)
		return
	}

	now := time.Now().UTC()
	infos := make([]dto.HostInfo, 0, len(hosts))
	for _, host := range hosts {
		infos = append(infos, dto.HostInfoFrom(host, now))
	}
	writeJSON(w, http.StatusOK, infos)
}

func createHost(w http.ResponseWriter, r *http.Request) {
	caller := auth.CallerFromRequest(r)

	var payload dto.NewHostRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		writeError(w, "Name and a valid IPv4 address are required", http.StatusBadRequest)
		return
	}

	host, err := registryService.CreateHost(caller, payload.Name, payload.IP)
	if err != nil {
		writeRegistryError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.HostInfoFrom(host, time.Now().UTC()))
}

func getHost(w http.ResponseWriter, r *http.Request) {
	caller := auth.CallerFromRequest(r)

	hostID, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	host, rules, err := registryService.Host(caller, hostID)
	if err != nil {
		writeRegistryError(w, err)
		return
	}

	detail := dto.HostDetail{
		HostInfo: dto.HostInfoFrom(host, time.Now().UTC()),
		Rules:    make([]dto.RuleInfo, 0, len(rules)),
	}
	for _, rule := range rules {
		detail.Rules = append(detail.Rules, dto.RuleInfoFrom(rule))
	}
	writeJSON(w, http.StatusOK, detail)
}

func editHost(w http.ResponseWriter, r *http.Request) {
	caller := auth.CallerFromRequest(r)

	hostID, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var payload dto.EditHostRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		writeError(w, "Name is required", http.StatusBadRequest)
		return
	}

	// payload.IP is deliberately dropped here; the IP cannot be edited.
	host, err := registryService.EditHost(caller, hostID, payload.Name)
	if err != nil {
		writeRegistryError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.HostInfoFrom(host, time.Now().UTC()))
}

func renewHost(w http.ResponseWriter, r *http.Request) {
	caller := auth.CallerFromRequest(r)

	hostID, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	host, err := registryService.RenewHost(caller, hostID)
	if err != nil {
		writeRegistryError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.HostInfoFrom(host, time.Now().UTC()))
}

func deleteHost(w http.ResponseWriter, r *http.Request) {
	caller := auth.CallerFromRequest(r)

	hostID, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := registryService.DeleteHost(caller, hostID); err != nil {
		writeRegistryError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
