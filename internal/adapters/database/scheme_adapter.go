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

var schemeColumns = []interface{}{
	"id", "name", "description", "coverage", "processing_time",
	"network_hospitals", "match_percentage", "category",
	"created_at", "updated_at",
}

// SchemeAdapter implements SchemeRepository
type SchemeAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewSchemeAdapter creates a new scheme adapter
func NewSchemeAdapter(client *postgres.Client) repositories.SchemeRepository {
	return &SchemeAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new scheme
func (a *SchemeAdapter) Create(ctx context.Context, scheme *entities.Scheme) error {
	record := goqu.Record{
		"id":                scheme.ID,
		"name":              scheme.Name,
		"description":       sql.NullString{String: scheme.Description, Valid: scheme.Description != ""},
		"coverage":          scheme.Coverage,
		"processing_time":   scheme.ProcessingTime,
		"network_hospitals": scheme.NetworkHospitals,
		"match_percentage":  scheme.MatchPercentage,
		"category":          string(scheme.Category),
		"created_at":        scheme.CreatedAt,
		"updated_at":        scheme.UpdatedAt,
	}

	query, args, err := a.db.Insert("schemes").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	_, err = a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create scheme", err)
	}

	return nil
}

// GetByID retrieves a scheme by ID
func (a *SchemeAdapter) GetByID(ctx context.Context, id string) (*entities.Scheme, error) {
	query, args, err := a.db.Select(schemeColumns...).
		From("schemes").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	scheme, err := scanScheme(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("scheme with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get scheme", err)
	}

	return scheme, nil
}

// List retrieves the scheme catalog in stable insertion order
func (a *SchemeAdapter) List(ctx context.Context) ([]*entities.Scheme, error) {
	query, args, err := a.db.Select(schemeColumns...).
		From("schemes").
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list schemes", err)
	}
	defer rows.Close()

	schemes := []*entities.Scheme{}
	for rows.Next() {
		scheme, err := scanScheme(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan scheme", err)
		}
		schemes = append(schemes, scheme)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating schemes", err)
	}

	return schemes, nil
}

func scanScheme(row rowScanner) (*entities.Scheme, error) {
	scheme := &entities.Scheme{}
	var description sql.NullString
	var category string

	err := row.Scan(
		&scheme.ID,
		&scheme.Name,
		&description,
		&scheme.Coverage,
		&scheme.ProcessingTime,
		&scheme.NetworkHospitals,
		&scheme.MatchPercentage,
		&category,
		&scheme.CreatedAt,
		&scheme.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	scheme.Description = description.String
	scheme.Category = entities.SchemeCategory(category)

	return scheme, nil
}
