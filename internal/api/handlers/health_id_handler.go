package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/medilinkx/benefits-backend/internal/domain/entities"
	"github.com/medilinkx/benefits-backend/internal/domain/repositories"
)

// HealthIDHandler handles health identity HTTP requests
type HealthIDHandler struct {
	healthIDRepo repositories.HealthIDRepository
}

// NewHealthIDHandler creates a new health identity handler
func NewHealthIDHandler(healthIDRepo repositories.HealthIDRepository) *HealthIDHandler {
	return &HealthIDHandler{healthIDRepo: healthIDRepo}
}

// createHealthIDRequest is the POST /api/health-ids body
type createHealthIDRequest struct {
	PatientName       string `json:"patient_name"`
	DateOfBirth       string `json:"date_of_birth"`
	NationalID        string `json:"national_id"`
	BloodGroup        string `json:"blood_group"`
	Gender            string `json:"gender"`
	MedicalConditions string `json:"medical_conditions"`
	EmergencyContact  string `json:"emergency_contact"`
}

// CreateHealthID handles POST /api/health-ids
func (h *HealthIDHandler) CreateHealthID(w http.ResponseWriter, r *http.Request) {
	var req createHealthIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.PatientName = strings.TrimSpace(req.PatientName)
	req.NationalID = strings.TrimSpace(req.NationalID)
	if req.PatientName == "" || req.NationalID == "" {
		respondWithError(w, http.StatusBadRequest, "patient_name and national_id are required")
		return
	}

	dateOfBirth, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "date_of_birth must be in YYYY-MM-DD format")
		return
	}

	healthID := &entities.HealthID{
		ID:                uuid.New().String(),
		PatientName:       req.PatientName,
		DateOfBirth:       dateOfBirth,
		NationalID:        req.NationalID,
		BloodGroup:        req.BloodGroup,
		Gender:            req.Gender,
		MedicalConditions: req.MedicalConditions,
		EmergencyContact:  req.EmergencyContact,
		CreatedAt:         time.Now(),
	}

	if err := h.healthIDRepo.Create(r.Context(), healthID); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, healthID)
}

// GetHealthID handles GET /api/health-ids/{id}
func (h *HealthIDHandler) GetHealthID(w http.ResponseWriter, r *http.Request) {
	healthIDID := r.PathValue("id")
	if healthIDID == "" {
		respondWithError(w, http.StatusBadRequest, "health ID is required")
		return
	}

	healthID, err := h.healthIDRepo.GetByID(r.Context(), healthIDID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, healthID)
}

// LookupHealthID handles GET /api/health-ids?national_id=...
func (h *HealthIDHandler) LookupHealthID(w http.ResponseWriter, r *http.Request) {
	nationalID := strings.TrimSpace(r.URL.Query().Get("national_id"))
	if nationalID == "" {
		respondWithError(w, http.StatusBadRequest, "national_id parameter is required")
		return
	}

	healthID, err := h.healthIDRepo.GetByNationalID(r.Context(), nationalID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, healthID)
}
