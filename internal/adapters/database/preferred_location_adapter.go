package database

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/medilinkx/benefits-backend/internal/domain/repositories"
	"github.com/medilinkx/benefits-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/medilinkx/benefits-backend/pkg/errors"
)

// PreferredLocationAdapter implements PreferredLocationRepository. The
// list is replaced wholesale on save; position preserves insertion order.
type PreferredLocationAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewPreferredLocationAdapter creates a new preferred location adapter
func NewPreferredLocationAdapter(client *postgres.Client) repositories.PreferredLocationRepository {
	return &PreferredLocationAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Get returns the ordered preferred city names for a health identity
func (a *PreferredLocationAdapter) Get(ctx context.Context, healthIDID string) ([]string, error) {
	query, args, err := a.db.Select("city").
		From("preferred_locations").
		Where(goqu.Ex{"health_id_id": healthIDID}).
		Order(goqu.I("position").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list preferred locations", err)
	}
	defer rows.Close()

	locations := []string{}
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, apperrors.NewInternalError("failed to scan preferred location", err)
		}
		locations = append(locations, city)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating preferred locations", err)
	}

	return locations, nil
}

// Save replaces the stored list
func (a *PreferredLocationAdapter) Save(ctx context.Context, healthIDID string, locations []string) error {
	tx, err := a.client.BeginTx(ctx)
	if err != nil {
		return apperrors.NewInternalError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	query, args, err := a.db.Delete("preferred_locations").
		Where(goqu.Ex{"health_id_id": healthIDID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to clear preferred locations", err)
	}

	for position, city := range locations {
		record := goqu.Record{
			"health_id_id": healthIDID,
			"city":         city,
			"position":     position,
		}

		query, args, err := a.db.Insert("preferred_locations").Rows(record).ToSQL()
		if err != nil {
			return apperrors.NewInternalError("failed to build insert query", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return apperrors.NewInternalError("failed to save preferred location", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternalError("failed to commit preferred locations", err)
	}

	return nil
}
