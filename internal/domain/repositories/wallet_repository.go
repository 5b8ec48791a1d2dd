package repositories

import (
	"context"

	"github.com/medilinkx/benefits-backend/internal/domain/entities"
)

// WalletRepository defines the interface for wallet bookkeeping
type WalletRepository interface {
	// Create creates a new wallet
	Create(ctx context.Context, wallet *entities.Wallet) error

	// GetByHealthID retrieves the wallet attached to a health identity
	GetByHealthID(ctx context.Context, healthIDID string) (*entities.Wallet, error)

	// UpdateBalance sets the wallet balance
	UpdateBalance(ctx context.Context, id string, balance float64) error
}
