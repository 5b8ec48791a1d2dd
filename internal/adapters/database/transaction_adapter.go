package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/medilinkx/benefits-backend/internal/domain/entities"
	"github.com/medilinkx/benefits-backend/internal/domain/repositories"
	"github.com/medilinkx/benefits-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/medilinkx/benefits-backend/pkg/errors"
)

var transactionColumns = []interface{}{
	"id", "voucher_id", "health_id_id", "hospital_name",
	"amount", "status", "reference", "created_at",
}

// TransactionAdapter implements TransactionRepository
type TransactionAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewTransactionAdapter creates a new transaction adapter
func NewTransactionAdapter(client *postgres.Client) repositories.TransactionRepository {
	return &TransactionAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new transaction
func (a *TransactionAdapter) Create(ctx context.Context, transaction *entities.Transaction) error {
	record := goqu.Record{
		"id":            transaction.ID,
		"voucher_id":    transaction.VoucherID,
		"health_id_id":  transaction.HealthIDID,
		"hospital_name": sql.NullString{String: transaction.HospitalName, Valid: transaction.HospitalName != ""},
		"amount":        transaction.Amount,
		"status":        string(transaction.Status),
		"reference":     transaction.Reference,
		"created_at":    transaction.CreatedAt,
	}

	query, args, err := a.db.Insert("transactions").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	_, err = a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create transaction", err)
	}

	return nil
}

// GetByID retrieves a transaction by ID
func (a *TransactionAdapter) GetByID(ctx context.Context, id string) (*entities.Transaction, error) {
	query, args, err := a.db.Select(transactionColumns...).
		From("transactions").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	transaction, err := scanTransaction(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get transaction", err)
	}

	return transaction, nil
}

// ListByHealthID retrieves recent transactions, newest first
func (a *TransactionAdapter) ListByHealthID(ctx context.Context, healthIDID string, limit int) ([]*entities.Transaction, error) {
	ds := a.db.Select(transactionColumns...).
		From("transactions").
		Where(goqu.Ex{"health_id_id": healthIDID}).
		Order(goqu.I("created_at").Desc())

	if limit > 0 {
		ds = ds.Limit(uint(limit))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list transactions", err)
	}
	defer rows.Close()

	transactions := []*entities.Transaction{}
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan transaction", err)
		}
		transactions = append(transactions, transaction)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating transactions", err)
	}

	return transactions, nil
}

// CountByHealthID counts a health identity's transactions
func (a *TransactionAdapter) CountByHealthID(ctx context.Context, healthIDID string) (int, error) {
	query, args, err := a.db.Select(goqu.COUNT("*")).
		From("transactions").
		Where(goqu.Ex{"health_id_id": healthIDID}).
		ToSQL()
	if err != nil {
		return 0, apperrors.NewInternalError("failed to build count query", err)
	}

	var count int
	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, apperrors.NewInternalError("failed to count transactions", err)
	}

	return count, nil
}

func scanTransaction(row rowScanner) (*entities.Transaction, error) {
	transaction := &entities.Transaction{}
	var hospitalName sql.NullString
	var status string

	err := row.Scan(
		&transaction.ID,
		&transaction.VoucherID,
		&transaction.HealthIDID,
		&hospitalName,
		&transaction.Amount,
		&status,
		&transaction.Reference,
		&transaction.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	transaction.HospitalName = hospitalName.String
	transaction.Status = entities.TransactionStatus(status)
	return transaction, nil
}
