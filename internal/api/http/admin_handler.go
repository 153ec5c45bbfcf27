package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"shiftline-backend/internal/jobs"
	"shiftline-backend/internal/logger"
	"shiftline-backend/internal/repository"
	"shiftline-backend/internal/security"
	"shiftline-backend/internal/service"
)

// AdminHandler exposes the ops surface: health, manual accrual runs, and
// balance lookups.
type AdminHandler struct {
	jobRunner  *jobs.JobRunner
	accrualSvc service.AccrualService
	tokens     security.TokenManager
}

func NewAdminHandler(jobRunner *jobs.JobRunner, accrualSvc service.AccrualService, tokens security.TokenManager) *AdminHandler {
	return &AdminHandler{
		jobRunner:  jobRunner,
		accrualSvc: accrualSvc,
		tokens:     tokens,
	}
}

// Router builds the admin API router. Everything under /admin requires a
// valid ops bearer token; the health check does not.
func (h *AdminHandler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", h.handleHealth).Methods(http.MethodGet)

	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(h.authMiddleware)
	admin.HandleFunc("/jobs/process-pto", h.handleProcessPTO).Methods(http.MethodPost)
	admin.HandleFunc("/orgs/{orgID}/users/{userID}/balance", h.handleGetBalance).Methods(http.MethodGet)

	return r
}

func (h *AdminHandler) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		if _, err := h.tokens.ValidateToken(token); err != nil {
			writeError(w, http.StatusUnauthorized, "invalid bearer token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *AdminHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *AdminHandler) handleProcessPTO(w http.ResponseWriter, r *http.Request) {
	logger.Info("Manual PTO accrual run triggered via admin API")
	summary := h.jobRunner.RunPTOAccrual(r.Context())
	writeJSON(w, http.StatusOK, summary)
}

func (h *AdminHandler) handleGetBalance(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orgID, userID := vars["orgID"], vars["userID"]

	balance, err := h.accrualSvc.GetBalance(r.Context(), orgID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "balance not found")
		return
	}
	if err != nil {
		logger.Error("Failed to fetch balance", "org_id", orgID, "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch balance")
		return
	}
	writeJSON(w, http.StatusOK, balance)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
