package handlers

import (
	"net/http"
	"strings"

	"github.com/medilinkx/benefits-backend/internal/domain/repositories"
)

// WalletHandler handles wallet HTTP requests
type WalletHandler struct {
	walletRepo repositories.WalletRepository
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletRepo repositories.WalletRepository) *WalletHandler {
	return &WalletHandler{walletRepo: walletRepo}
}

// GetWallet handles GET /api/wallet?health_id=...
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	healthIDID := strings.TrimSpace(r.URL.Query().Get("health_id"))
	if healthIDID == "" {
		respondWithError(w, http.StatusBadRequest, "health_id parameter is required")
		return
	}

	wallet, err := h.walletRepo.GetByHealthID(r.Context(), healthIDID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, wallet)
}

// GetBalance handles GET /api/wallet/balance?health_id=...
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	healthIDID := strings.TrimSpace(r.URL.Query().Get("health_id"))
	if healthIDID == "" {
		respondWithError(w, http.StatusBadRequest, "health_id parameter is required")
		return
	}

	wallet, err := h.walletRepo.GetByHealthID(r.Context(), healthIDID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"balance":  wallet.Balance,
		"currency": wallet.Currency,
	})
}
