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

var voucherColumns = []interface{}{
	"id", "health_id_id", "scheme_id", "amount", "status",
	"valid_until", "created_at",
}

// VoucherAdapter implements VoucherRepository
type VoucherAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewVoucherAdapter creates a new voucher adapter
func NewVoucherAdapter(client *postgres.Client) repositories.VoucherRepository {
	return &VoucherAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new voucher
func (a *VoucherAdapter) Create(ctx context.Context, voucher *entities.Voucher) error {
	record := goqu.Record{
		"id":           voucher.ID,
		"health_id_id": voucher.HealthIDID,
		"scheme_id":    voucher.SchemeID,
		"amount":       voucher.Amount,
		"status":       string(voucher.Status),
		"valid_until":  voucher.ValidUntil,
		"created_at":   voucher.CreatedAt,
	}

	query, args, err := a.db.Insert("vouchers").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	_, err = a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create voucher", err)
	}

	return nil
}

// GetByID retrieves a voucher by ID
func (a *VoucherAdapter) GetByID(ctx context.Context, id string) (*entities.Voucher, error) {
	query, args, err := a.db.Select(voucherColumns...).
		From("vouchers").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	voucher, err := scanVoucher(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("voucher with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get voucher", err)
	}

	return voucher, nil
}

// ListByHealthID retrieves vouchers for a health identity, optionally
// restricted to one status
func (a *VoucherAdapter) ListByHealthID(ctx context.Context, healthIDID string, status entities.VoucherStatus) ([]*entities.Voucher, error) {
	ds := a.db.Select(voucherColumns...).
		From("vouchers").
		Where(goqu.Ex{"health_id_id": healthIDID})

	if status != "" {
		ds = ds.Where(goqu.Ex{"status": string(status)})
	}

	query, args, err := ds.Order(goqu.I("created_at").Desc()).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list vouchers", err)
	}
	defer rows.Close()

	vouchers := []*entities.Voucher{}
	for rows.Next() {
		voucher, err := scanVoucher(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan voucher", err)
		}
		vouchers = append(vouchers, voucher)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating vouchers", err)
	}

	return vouchers, nil
}

// UpdateStatus transitions a voucher's status
func (a *VoucherAdapter) UpdateStatus(ctx context.Context, id string, status entities.VoucherStatus) error {
	query, args, err := a.db.Update("vouchers").
		Set(goqu.Record{"status": string(status)}).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update voucher status", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("voucher with id %s not found", id))
	}

	return nil
}

func scanVoucher(row rowScanner) (*entities.Voucher, error) {
	voucher := &entities.Voucher{}
	var status string

	err := row.Scan(
		&voucher.ID,
		&voucher.HealthIDID,
		&voucher.SchemeID,
		&voucher.Amount,
		&status,
		&voucher.ValidUntil,
		&voucher.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	voucher.Status = entities.VoucherStatus(status)
	return voucher, nil
}
