package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/medilinkx/benefits-backend/internal/application/services"
)

// VoucherHandler handles voucher HTTP requests
type VoucherHandler struct {
	service *services.VoucherService
}

// NewVoucherHandler creates a new voucher handler
func NewVoucherHandler(service *services.VoucherService) *VoucherHandler {
	return &VoucherHandler{service: service}
}

// createVoucherRequest is the POST /api/vouchers body
type createVoucherRequest struct {
	HealthID   string    `json:"health_id"`
	SchemeID   string    `json:"scheme_id"`
	Amount     float64   `json:"amount"`
	ValidUntil time.Time `json:"valid_until"`
}

// CreateVoucher handles POST /api/vouchers
func (h *VoucherHandler) CreateVoucher(w http.ResponseWriter, r *http.Request) {
	var req createVoucherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.HealthID) == "" || strings.TrimSpace(req.SchemeID) == "" {
		respondWithError(w, http.StatusBadRequest, "health_id and scheme_id are required")
		return
	}

	voucher, err := h.service.CreateFromScheme(r.Context(), req.HealthID, req.SchemeID, req.Amount, req.ValidUntil)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, voucher)
}

// ListVouchers handles GET /api/vouchers?health_id=...
func (h *VoucherHandler) ListVouchers(w http.ResponseWriter, r *http.Request) {
	healthIDID := strings.TrimSpace(r.URL.Query().Get("health_id"))
	if healthIDID == "" {
		respondWithError(w, http.StatusBadRequest, "health_id parameter is required")
		return
	}

	vouchers, err := h.service.ListActive(r.Context(), healthIDID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list vouchers")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"vouchers": vouchers,
		"count":    len(vouchers),
	})
}

// GetVoucher handles GET /api/vouchers/{id}
func (h *VoucherHandler) GetVoucher(w http.ResponseWriter, r *http.Request) {
	voucherID := r.PathValue("id")
	if voucherID == "" {
		respondWithError(w, http.StatusBadRequest, "voucher ID is required")
		return
	}

	voucher, err := h.service.GetByID(r.Context(), voucherID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, voucher)
}
