package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/medilinkx/benefits-backend/internal/domain/entities"
	"github.com/medilinkx/benefits-backend/internal/domain/repositories"
	"github.com/medilinkx/benefits-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/medilinkx/benefits-backend/pkg/errors"
)

// WalletAdapter implements WalletRepository
type WalletAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewWalletAdapter creates a new wallet adapter
func NewWalletAdapter(client *postgres.Client) repositories.WalletRepository {
	return &WalletAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new wallet
func (a *WalletAdapter) Create(ctx context.Context, wallet *entities.Wallet) error {
	record := goqu.Record{
		"id":           wallet.ID,
		"health_id_id": wallet.HealthIDID,
		"address":      wallet.Address,
		"name":         wallet.Name,
		"balance":      wallet.Balance,
		"currency":     wallet.Currency,
		"is_active":    wallet.IsActive,
		"created_at":   wallet.CreatedAt,
		"updated_at":   wallet.UpdatedAt,
	}

	query, args, err := a.db.Insert("wallets").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	_, err = a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create wallet", err)
	}

	return nil
}

// GetByHealthID retrieves the wallet attached to a health identity
func (a *WalletAdapter) GetByHealthID(ctx context.Context, healthIDID string) (*entities.Wallet, error) {
	query, args, err := a.db.Select(
		"id", "health_id_id", "address", "name", "balance",
		"currency", "is_active", "created_at", "updated_at",
	).From("wallets").
		Where(goqu.Ex{"health_id_id": healthIDID, "is_active": true}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	wallet := &entities.Wallet{}
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&wallet.ID,
		&wallet.HealthIDID,
		&wallet.Address,
		&wallet.Name,
		&wallet.Balance,
		&wallet.Currency,
		&wallet.IsActive,
		&wallet.CreatedAt,
		&wallet.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("wallet for health id %s not found", healthIDID))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get wallet", err)
	}

	return wallet, nil
}

// UpdateBalance sets the wallet balance
func (a *WalletAdapter) UpdateBalance(ctx context.Context, id string, balance float64) error {
	query, args, err := a.db.Update("wallets").
		Set(goqu.Record{
			"balance":    balance,
			"updated_at": time.Now(),
		}).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update wallet balance", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("wallet with id %s not found", id))
	}

	return nil
}
