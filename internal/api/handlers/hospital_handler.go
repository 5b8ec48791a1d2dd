package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/medilinkx/benefits-backend/internal/application/services"
	"github.com/medilinkx/benefits-backend/internal/domain/entities"
	"github.com/medilinkx/benefits-backend/internal/domain/repositories"
	apperrors "github.com/medilinkx/benefits-backend/pkg/errors"
)

// HospitalHandler handles hospital catalog and ranking HTTP requests
type HospitalHandler struct {
	service *services.HospitalService
}

// NewHospitalHandler creates a new hospital handler
func NewHospitalHandler(service *services.HospitalService) *HospitalHandler {
	return &HospitalHandler{service: service}
}

// createHospitalRequest is the POST /api/hospitals body
type createHospitalRequest struct {
	Name              string                `json:"name"`
	Location          string                `json:"location"`
	City              string                `json:"city"`
	State             string                `json:"state"`
	Coordinates       *entities.Coordinates `json:"coordinates"`
	Specializations   []string              `json:"specializations"`
	Rating            float64               `json:"rating"`
	AvailableServices []string              `json:"available_services"`
	Phone             string                `json:"phone"`
	Email             string                `json:"email"`
	Website           string                `json:"website"`
}

// CreateHospital handles POST /api/hospitals
func (h *HospitalHandler) CreateHospital(w http.ResponseWriter, r *http.Request) {
	var req createHospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.City = strings.TrimSpace(req.City)
	if req.Name == "" || req.City == "" {
		respondWithError(w, http.StatusBadRequest, "name and city are required")
		return
	}

	now := time.Now()
	hospital := &entities.Hospital{
		ID:                uuid.New().String(),
		Name:              req.Name,
		Location:          req.Location,
		City:              req.City,
		State:             req.State,
		Coordinates:       req.Coordinates,
		Specializations:   req.Specializations,
		Rating:            req.Rating,
		AvailableServices: req.AvailableServices,
		Phone:             req.Phone,
		Email:             req.Email,
		Website:           req.Website,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := h.service.Create(r.Context(), hospital); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, hospital)
}

// GetHospital handles GET /api/hospitals/{id}
func (h *HospitalHandler) GetHospital(w http.ResponseWriter, r *http.Request) {
	hospitalID := r.PathValue("id")
	if hospitalID == "" {
		respondWithError(w, http.StatusBadRequest, "hospital ID is required")
		return
	}

	hospital, err := h.service.GetByID(r.Context(), hospitalID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, hospital)
}

// ListHospitals handles GET /api/hospitals
func (h *HospitalHandler) ListHospitals(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repositories.HospitalFilter{
		City:           query.Get("city"),
		State:          query.Get("state"),
		Specialization: query.Get("specialization"),
		Limit:          parseIntParam(query.Get("limit"), 30),
		Offset:         parseIntParam(query.Get("offset"), 0),
	}

	hospitals, err := h.service.List(r.Context(), filter)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list hospitals")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"hospitals": hospitals,
		"count":     len(hospitals),
	})
}

// SearchHospitals handles GET /api/hospitals/search
func (h *HospitalHandler) SearchHospitals(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := repositories.SearchParams{
		Query:    strings.TrimSpace(query.Get("q")),
		RadiusKm: parseFloatParam(query.Get("radius_km"), 0),
		Limit:    parseIntParam(query.Get("limit"), 20),
		Offset:   parseIntParam(query.Get("offset"), 0),
	}
	params.Latitude = parseFloatParam(query.Get("lat"), 0)
	params.Longitude = parseFloatParam(query.Get("lng"), 0)

	hospitals, err := h.service.Search(r.Context(), params)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to search hospitals")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"hospitals": hospitals,
		"count":     len(hospitals),
	})
}

// rankHospitalsRequest is the POST /api/hospitals/rank body
type rankHospitalsRequest struct {
	Location  entities.Coordinates `json:"location"`
	Mode      string               `json:"mode"`
	Preferred []string             `json:"preferred"`
	RadiusKm  float64              `json:"radius_km"`
}

// RankHospitals handles POST /api/hospitals/rank
func (h *HospitalHandler) RankHospitals(w http.ResponseWriter, r *http.Request) {
	var req rankHospitalsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	mode := services.FilterMode(strings.ToLower(strings.TrimSpace(req.Mode)))
	switch mode {
	case services.FilterModeAll, services.FilterModeNearby, services.FilterModePreferred:
	case "":
		mode = services.FilterModeAll
	default:
		respondWithError(w, http.StatusBadRequest, "mode must be one of all, nearby, preferred")
		return
	}

	ranked := h.service.Rank(r.Context(), services.RankRequest{
		Location:           req.Location,
		Mode:               mode,
		PreferredLocations: req.Preferred,
		RadiusKm:           req.RadiusKm,
	})

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"hospitals": ranked,
		"count":     len(ranked),
	})
}

// Helper functions
func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithServiceError maps application errors to HTTP responses,
// hiding internal details behind a generic message
func respondWithServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		status := appErr.HTTPStatus()
		if status >= http.StatusInternalServerError {
			respondWithError(w, status, "internal server error")
			return
		}
		respondWithError(w, status, appErr.Message)
		return
	}
	respondWithError(w, http.StatusInternalServerError, "internal server error")
}

func parseIntParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func parseFloatParam(raw string, fallback float64) float64 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
