package repositories

import (
	"context"

	"github.com/medilinkx/benefits-backend/internal/domain/entities"
)

// TransactionRepository defines the interface for redemption records
type TransactionRepository interface {
	// Create creates a new transaction
	Create(ctx context.Context, transaction *entities.Transaction) error

	// GetByID retrieves a transaction by ID
	GetByID(ctx context.Context, id string) (*entities.Transaction, error)

	// ListByHealthID retrieves recent transactions, newest first
	ListByHealthID(ctx context.Context, healthIDID string, limit int) ([]*entities.Transaction, error)

	// CountByHealthID counts a health identity's transactions
	CountByHealthID(ctx context.Context, healthIDID string) (int, error)
}
