package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/medilinkx/benefits-backend/internal/application/services"
)

// TransactionHandler handles voucher redemption HTTP requests
type TransactionHandler struct {
	service *services.TransactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(service *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// redeemRequest is the POST /api/transactions body
type redeemRequest struct {
	VoucherID    string  `json:"voucher_id"`
	HealthID     string  `json:"health_id"`
	HospitalName string  `json:"hospital_name"`
	Amount       float64 `json:"amount"`
}

// Redeem handles POST /api/transactions
func (h *TransactionHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	var req redeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.VoucherID) == "" || strings.TrimSpace(req.HealthID) == "" {
		respondWithError(w, http.StatusBadRequest, "voucher_id and health_id are required")
		return
	}
	if req.Amount <= 0 {
		respondWithError(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	transaction, err := h.service.Redeem(r.Context(), services.RedeemRequest{
		VoucherID:    req.VoucherID,
		HealthIDID:   req.HealthID,
		HospitalName: req.HospitalName,
		Amount:       req.Amount,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, transaction)
}

// ListTransactions handles GET /api/transactions?health_id=...&limit=...
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	healthIDID := strings.TrimSpace(query.Get("health_id"))
	if healthIDID == "" {
		respondWithError(w, http.StatusBadRequest, "health_id parameter is required")
		return
	}

	transactions, err := h.service.List(r.Context(), healthIDID, parseIntParam(query.Get("limit"), 10))
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list transactions")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"transactions": transactions,
		"count":        len(transactions),
	})
}

// CountTransactions handles GET /api/transactions/count?health_id=...
func (h *TransactionHandler) CountTransactions(w http.ResponseWriter, r *http.Request) {
	healthIDID := strings.TrimSpace(r.URL.Query().Get("health_id"))
	if healthIDID == "" {
		respondWithError(w, http.StatusBadRequest, "health_id parameter is required")
		return
	}

	count, err := h.service.Count(r.Context(), healthIDID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to count transactions")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"count": count,
	})
}

// GetReceipt handles GET /api/transactions/{id}/receipt
func (h *TransactionHandler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	transactionID := r.PathValue("id")
	if transactionID == "" {
		respondWithError(w, http.StatusBadRequest, "transaction ID is required")
		return
	}

	receipt, err := h.service.Receipt(r.Context(), transactionID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, receipt)
}
