package server

import (
	"net/http"
	"time"

	"fwadmin/internal/api/dto"
	"fwadmin/internal/auth"
)

func listUnapproved(w http.ResponseWriter, r *http.Request) {
	caller := auth.CallerFromRequest(r)

	hosts, err := registryService.ListUnapproved(caller)
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

func approveHost(w http.ResponseWriter, r *http.Request) {
	caller := auth.CallerFromRequest(r)

	hostID, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	host, err := registryService.ApproveHost(caller, hostID)
	if err != nil {
		writeRegistryError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.HostInfoFrom(host, time.Now().UTC()))
}
