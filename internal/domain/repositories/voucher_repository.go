package repositories

import (
	"context"

	"github.com/medilinkx/benefits-backend/internal/domain/entities"
)

// VoucherRepository defines the interface for voucher records
type VoucherRepository interface {
	// Create creates a new voucher
	Create(ctx context.Context, voucher *entities.Voucher) error

	// GetByID retrieves a voucher by ID
	GetByID(ctx context.Context, id string) (*entities.Voucher, error)

	// ListByHealthID retrieves vouchers for a health identity, optionally
	// restricted to one status
	ListByHealthID(ctx context.Context, healthIDID string, status entities.VoucherStatus) ([]*entities.Voucher, error)

	// UpdateStatus transitions a voucher's status
	UpdateStatus(ctx context.Context, id string, status entities.VoucherStatus) error
}
