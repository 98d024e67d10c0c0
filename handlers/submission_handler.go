// Package handlers maps the HTTP surface onto the submission service:
// the two form endpoints, the health check and error translation.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/samenwerkt-wbd/members-backend/models"
	"github.com/samenwerkt-wbd/members-backend/services"
	"github.com/samenwerkt-wbd/members-backend/storage"
	"github.com/samenwerkt-wbd/members-backend/utils"
)

// SubmissionHandler handles the two form submission endpoints.
type SubmissionHandler struct {
	service *services.SubmissionService
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(service *services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// SubmitMembership handles POST /api/submit
func (h *SubmissionHandler) SubmitMembership(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.RespondWithJSON(w, http.StatusMethodNotAllowed, models.ErrorResponse{
			Success: false,
			Message: "Method not allowed",
		})
		return
	}

	var req models.MembershipSubmission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: models.MsgValidationFailed,
			Errors:  []string{"Ongeldige formulierdata."},
		})
		return
	}

	result, err := h.service.SubmitMembership(&req)
	if err != nil {
		respondSubmissionError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, result)
}

// SubmitCafeRegistration handles POST /api/cafe
func (h *SubmissionHandler) SubmitCafeRegistration(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.RespondWithJSON(w, http.StatusMethodNotAllowed, models.ErrorResponse{
			Success: false,
			Message: "Method not allowed",
		})
		return
	}

	var req models.CafeSubmission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: models.MsgValidationFailed,
			Errors:  []string{"Ongeldige formulierdata."},
		})
		return
	}

	result, err := h.service.SubmitCafeRegistration(&req)
	if err != nil {
		respondSubmissionError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, result)
}

// respondSubmissionError translates service errors to HTTP responses.
// Validation problems are client errors listing every violation; storage
// problems are server errors; anything else is a generic server error
// whose detail is logged, never exposed.
func respondSubmissionError(w http.ResponseWriter, err error) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		utils.RespondWithJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: models.MsgValidationFailed,
			Errors:  validationErr.Violations,
		})
		return
	}

	var storageErr *storage.StorageError
	if errors.As(err, &storageErr) {
		slog.Error("Submission storage failed", "error", err)
		utils.RespondWithJSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: models.MsgStorageFailed,
		})
		return
	}

	slog.Error("Submission failed unexpectedly", "error", err)
	utils.RespondWithJSON(w, http.StatusInternalServerError, models.ErrorResponse{
		Success: false,
		Message: models.MsgUnexpectedError,
	})
}

// HealthHandler reports process status, the storage backend and the mail
// transport on GET /api/health.
func HealthHandler(database, email string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithJSON(w, http.StatusOK, models.HealthResponse{
			Status:    "OK",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Database:  database,
			Email:     email,
		})
	}
}
