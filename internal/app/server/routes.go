package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"fwadmin/internal/auth"
	"fwadmin/internal/registry"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
)

var (
	registryService *registry.Service
	validate        = validator.New()
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeRegistryError maps the registry's error kinds onto HTTP statuses. The
// registry never decides presentation, this is the single place that
// translation happens.
func writeRegistryError(w http.ResponseWriter, err error) {
	writeError(w, err.Error(), statusForError(err))
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, registry.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, registry.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, registry.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, registry.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, registry.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func pathID(r *http.Request) (uint, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func OpenRoutes(port int, svc *registry.Service) error {
	registryService = svc

	router := http.NewServeMux()
	router.HandleFunc("GET /status", getStatus)
	router.HandleFunc("POST /register", registerUser)
	router.HandleFunc("POST /login", loginUser)
	router.Handle("GET /checkLogin", auth.RequireAuth(http.HandlerFunc(checkLogin)))
	router.HandleFunc("POST /changePassword", changePassword)

	router.HandleFunc("GET /hosts", listHosts)
	router.HandleFunc("POST /hosts", createHost)
	router.HandleFunc("GET /hosts/{id}", getHost)
	router.HandleFunc("POST /hosts/{id}", editHost)
	router.HandleFunc("POST /hosts/{id}/renew", renewHost)
	router.HandleFunc("DELETE /hosts/{id}", deleteHost)

	router.HandleFunc("POST /hosts/{id}/rules", createRule)
	router.HandleFunc("DELETE /rules/{id}", deleteRule)

	router.HandleFunc("GET /moderation/unapproved", listUnapproved)
	router.HandleFunc("POST /moderation/hosts/{id}/approve", approveHost)

	router.HandleFunc("GET /settings", getSettings)
	router.HandleFunc("POST /settings", updateSettings)

	log.Debug("Routes opened")

	server := http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: enableCORS(router),
	}

	log.Infof("Starting API server on port %d", port)
	return server.ListenAndServe()
}
