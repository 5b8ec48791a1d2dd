package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
	"github.com/medilinkx/benefits-backend/internal/domain/entities"
	"github.com/medilinkx/benefits-backend/internal/domain/repositories"
	"github.com/medilinkx/benefits-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/medilinkx/benefits-backend/pkg/errors"
)

var hospitalColumns = []interface{}{
	"id", "name", "location", "city", "state",
	"latitude", "longitude", "specializations", "rating",
	"available_services", "phone", "email", "website",
	"is_active", "created_at", "updated_at",
}

// HospitalAdapter implements the HospitalRepository interface
type HospitalAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewHospitalAdapter creates a new hospital adapter
func NewHospitalAdapter(client *postgres.Client) repositories.HospitalRepository {
	return &HospitalAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new hospital
func (a *HospitalAdapter) Create(ctx context.Context, hospital *entities.Hospital) error {
	query, args, err := a.db.Insert("hospitals").Rows(a.toRecord(hospital)).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	_, err = a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create hospital", err)
	}

	return nil
}

// GetByID retrieves a hospital by ID
func (a *HospitalAdapter) GetByID(ctx context.Context, id string) (*entities.Hospital, error) {
	query, args, err := a.db.Select(hospitalColumns...).
		From("hospitals").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	hospital, err := scanHospital(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("hospital with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get hospital", err)
	}

	return hospital, nil
}

// Update updates a hospital
func (a *HospitalAdapter) Update(ctx context.Context, hospital *entities.Hospital) error {
	hospital.UpdatedAt = time.Now()

	record := a.toRecord(hospital)
	delete(record, "id")
	delete(record, "created_at")

	query, args, err := a.db.Update("hospitals").
		Set(record).
		Where(goqu.Ex{"id": hospital.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update hospital", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("hospital with id %s not found", hospital.ID))
	}

	return nil
}

// Delete deletes a hospital (soft delete)
func (a *HospitalAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Update("hospitals").
		Set(goqu.Record{
			"is_active":  false,
			"updated_at": time.Now(),
		}).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete hospital", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("hospital with id %s not found", id))
	}

	return nil
}

// List retrieves hospitals with filters
func (a *HospitalAdapter) List(ctx context.Context, filter repositories.HospitalFilter) ([]*entities.Hospital, error) {
	ds := a.db.Select(hospitalColumns...).From("hospitals")

	if filter.City != "" {
		ds = ds.Where(goqu.L("LOWER(city)").Eq(goqu.L("LOWER(?)", filter.City)))
	}
	if filter.State != "" {
		ds = ds.Where(goqu.L("LOWER(state)").Eq(goqu.L("LOWER(?)", filter.State)))
	}
	if filter.Specialization != "" {
		ds = ds.Where(goqu.L("? = ANY(specializations)", filter.Specialization))
	}
	if filter.IsActive != nil {
		ds = ds.Where(goqu.Ex{"is_active": *filter.IsActive})
	}

	ds = ds.Order(goqu.I("name").Asc())

	if filter.Limit > 0 {
		ds = ds.Limit(uint(filter.Limit))
	}
	if filter.Offset > 0 {
		ds = ds.Offset(uint(filter.Offset))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list hospitals", err)
	}
	defer rows.Close()

	hospitals := []*entities.Hospital{}
	for rows.Next() {
		hospital, err := scanHospital(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan hospital", err)
		}
		hospitals = append(hospitals, hospital)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating hospitals", err)
	}

	return hospitals, nil
}

func (a *HospitalAdapter) toRecord(hospital *entities.Hospital) goqu.Record {
	var latitude, longitude sql.NullFloat64
	if hospital.Coordinates != nil {
		latitude = sql.NullFloat64{Float64: hospital.Coordinates.Latitude, Valid: true}
		longitude = sql.NullFloat64{Float64: hospital.Coordinates.Longitude, Valid: true}
	}

	return goqu.Record{
		"id":                 hospital.ID,
		"name":               hospital.Name,
		"location":           hospital.Location,
		"city":               hospital.City,
		"state":              sql.NullString{String: hospital.State, Valid: hospital.State != ""},
		"latitude":           latitude,
		"longitude":          longitude,
		"specializations":    pq.Array(hospital.Specializations),
		"rating":             hospital.Rating,
		"available_services": pq.Array(hospital.AvailableServices),
		"phone":              sql.NullString{String: hospital.Phone, Valid: hospital.Phone != ""},
		"email":              sql.NullString{String: hospital.Email, Valid: hospital.Email != ""},
		"website":            sql.NullString{String: hospital.Website, Valid: hospital.Website != ""},
		"is_active":          hospital.IsActive,
		"created_at":         hospital.CreatedAt,
		"updated_at":         hospital.UpdatedAt,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHospital(row rowScanner) (*entities.Hospital, error) {
	hospital := &entities.Hospital{}
	var state, phone, email, website sql.NullString
	var latitude, longitude sql.NullFloat64
	var specializations, availableServices pq.StringArray

	err := row.Scan(
		&hospital.ID,
		&hospital.Name,
		&hospital.Location,
		&hospital.City,
		&state,
		&latitude,
		&longitude,
		&specializations,
		&hospital.Rating,
		&availableServices,
		&phone,
		&email,
		&website,
		&hospital.IsActive,
		&hospital.CreatedAt,
		&hospital.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	hospital.State = state.String
	hospital.Phone = phone.String
	hospital.Email = email.String
	hospital.Website = website.String
	hospital.Specializations = specializations
	hospital.AvailableServices = availableServices

	if latitude.Valid && longitude.Valid {
		hospital.Coordinates = &entities.Coordinates{
			Latitude:  latitude.Float64,
			Longitude: longitude.Float64,
		}
	}

	return hospital, nil
}
