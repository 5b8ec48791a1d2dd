package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/medilinkx/benefits-backend/internal/application/services"
)

// PreferredLocationHandler handles the preferred city list endpoints
type PreferredLocationHandler struct {
	service *services.PreferredLocationService
}

// NewPreferredLocationHandler creates a new preferred location handler
func NewPreferredLocationHandler(service *services.PreferredLocationService) *PreferredLocationHandler {
	return &PreferredLocationHandler{service: service}
}

// ListLocations handles GET /api/preferred-locations?health_id=...
func (h *PreferredLocationHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	healthIDID := strings.TrimSpace(r.URL.Query().Get("health_id"))
	if healthIDID == "" {
		respondWithError(w, http.StatusBadRequest, "health_id parameter is required")
		return
	}

	locations, err := h.service.List(r.Context(), healthIDID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list preferred locations")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"locations": locations,
		"count":     len(locations),
	})
}

// addLocationRequest is the POST /api/preferred-locations body
type addLocationRequest struct {
	Location string `json:"location"`
}

// AddLocation handles POST /api/preferred-locations?health_id=...
func (h *PreferredLocationHandler) AddLocation(w http.ResponseWriter, r *http.Request) {
	healthIDID := strings.TrimSpace(r.URL.Query().Get("health_id"))
	if healthIDID == "" {
		respondWithError(w, http.StatusBadRequest, "health_id parameter is required")
		return
	}

	var req addLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	locations, err := h.service.Add(r.Context(), healthIDID, req.Location)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"locations": locations,
		"count":     len(locations),
	})
}

// RemoveLocation handles DELETE /api/preferred-locations?health_id=...&location=...
func (h *PreferredLocationHandler) RemoveLocation(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	healthIDID := strings.TrimSpace(query.Get("health_id"))
	location := strings.TrimSpace(query.Get("location"))
	if healthIDID == "" || location == "" {
		respondWithError(w, http.StatusBadRequest, "health_id and location parameters are required")
		return
	}

	locations, err := h.service.Remove(r.Context(), healthIDID, location)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"locations": locations,
		"count":     len(locations),
	})
}
