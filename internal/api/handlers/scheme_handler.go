package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/medilinkx/benefits-backend/internal/application/services"
	"github.com/medilinkx/benefits-backend/internal/domain/entities"
	"github.com/medilinkx/benefits-backend/internal/domain/repositories"
)

// SchemeHandler handles scheme catalog, scoring and recommendation requests
type SchemeHandler struct {
	schemeRepo      repositories.SchemeRepository
	eligibility     *services.EligibilityService
	recommendations *services.RecommendationService
}

// NewSchemeHandler creates a new scheme handler
func NewSchemeHandler(
	schemeRepo repositories.SchemeRepository,
	eligibility *services.EligibilityService,
	recommendations *services.RecommendationService,
) *SchemeHandler {
	return &SchemeHandler{
		schemeRepo:      schemeRepo,
		eligibility:     eligibility,
		recommendations: recommendations,
	}
}

// ListSchemes handles GET /api/schemes
func (h *SchemeHandler) ListSchemes(w http.ResponseWriter, r *http.Request) {
	schemes, err := h.schemeRepo.List(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list schemes")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"schemes": schemes,
		"count":   len(schemes),
	})
}

// GetScheme handles GET /api/schemes/{id}
func (h *SchemeHandler) GetScheme(w http.ResponseWriter, r *http.Request) {
	schemeID := r.PathValue("id")
	if schemeID == "" {
		respondWithError(w, http.StatusBadRequest, "scheme ID is required")
		return
	}

	scheme, err := h.schemeRepo.GetByID(r.Context(), schemeID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, scheme)
}

// scoreSchemesRequest is the POST /api/schemes/score body
type scoreSchemesRequest struct {
	Age               int    `json:"age"`
	MedicalConditions string `json:"medical_conditions"`
	Strategy          string `json:"strategy"`
}

// ScoreSchemes handles POST /api/schemes/score. The optional strategy
// field overrides the configured scorer for this request only.
func (h *SchemeHandler) ScoreSchemes(w http.ResponseWriter, r *http.Request) {
	var req scoreSchemesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Age < 0 {
		respondWithError(w, http.StatusBadRequest, "age must not be negative")
		return
	}

	schemes, err := h.schemeRepo.List(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load scheme catalog")
		return
	}

	var strategy services.ScoringStrategy
	if strings.TrimSpace(req.Strategy) != "" {
		strategy = services.StrategyByName(req.Strategy)
	}

	scored := h.eligibility.ScoreSchemes(entities.PatientProfile{
		Age:               req.Age,
		MedicalConditions: req.MedicalConditions,
	}, schemes, strategy)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"schemes": scored,
	})
}

// recommendRequest is the POST /api/recommendations body
type recommendRequest struct {
	HealthID          string `json:"health_id"`
	Age               int    `json:"age"`
	MedicalConditions string `json:"medical_conditions"`
}

// Recommend handles POST /api/recommendations
func (h *SchemeHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Age < 0 {
		respondWithError(w, http.StatusBadRequest, "age must not be negative")
		return
	}

	scored, err := h.recommendations.Recommend(r.Context(), services.RecommendRequest{
		HealthIDID:        req.HealthID,
		Age:               req.Age,
		MedicalConditions: req.MedicalConditions,
	})
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to compute recommendations")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"recommendations": scored,
		"count":           len(scored),
	})
}

// LatestRecommendation handles GET /api/recommendations?health_id=...
func (h *SchemeHandler) LatestRecommendation(w http.ResponseWriter, r *http.Request) {
	healthIDID := strings.TrimSpace(r.URL.Query().Get("health_id"))
	if healthIDID == "" {
		respondWithError(w, http.StatusBadRequest, "health_id parameter is required")
		return
	}

	recommendation, err := h.recommendations.Latest(r.Context(), healthIDID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, recommendation)
}
