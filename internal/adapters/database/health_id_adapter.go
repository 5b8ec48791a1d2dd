package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
	"github.com/medilinkx/benefits-backend/internal/domain/entities"
	"github.com/medilinkx/benefits-backend/internal/domain/repositories"
	"github.com/medilinkx/benefits-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/medilinkx/benefits-backend/pkg/errors"
)

var healthIDColumns = []interface{}{
	"id", "patient_name", "date_of_birth", "national_id",
	"blood_group", "gender", "medical_conditions", "emergency_contact",
	"created_at",
}

// HealthIDAdapter implements HealthIDRepository
type HealthIDAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewHealthIDAdapter creates a new health identity adapter
func NewHealthIDAdapter(client *postgres.Client) repositories.HealthIDRepository {
	return &HealthIDAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new health identity record
func (a *HealthIDAdapter) Create(ctx context.Context, healthID *entities.HealthID) error {
	record := goqu.Record{
		"id":                 healthID.ID,
		"patient_name":       healthID.PatientName,
		"date_of_birth":      healthID.DateOfBirth,
		"national_id":        healthID.NationalID,
		"blood_group":        sql.NullString{String: healthID.BloodGroup, Valid: healthID.BloodGroup != ""},
		"gender":             sql.NullString{String: healthID.Gender, Valid: healthID.Gender != ""},
		"medical_conditions": sql.NullString{String: healthID.MedicalConditions, Valid: healthID.MedicalConditions != ""},
		"emergency_contact":  sql.NullString{String: healthID.EmergencyContact, Valid: healthID.EmergencyContact != ""},
		"created_at":         healthID.CreatedAt,
	}

	query, args, err := a.db.Insert("health_ids").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	_, err = a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return apperrors.NewConflictError("health id already exists for this national id")
		}
		return apperrors.NewInternalError("failed to create health id", err)
	}

	return nil
}

// GetByID retrieves a record by ID
func (a *HealthIDAdapter) GetByID(ctx context.Context, id string) (*entities.HealthID, error) {
	return a.getByField(ctx, "id", id)
}

// GetByNationalID retrieves a record by the national id string
func (a *HealthIDAdapter) GetByNationalID(ctx context.Context, nationalID string) (*entities.HealthID, error) {
	return a.getByField(ctx, "national_id", nationalID)
}

func (a *HealthIDAdapter) getByField(ctx context.Context, field, value string) (*entities.HealthID, error) {
	query, args, err := a.db.Select(healthIDColumns...).
		From("health_ids").
		Where(goqu.Ex{field: value}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	healthID := &entities.HealthID{}
	var bloodGroup, gender, conditions, emergencyContact sql.NullString

	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&healthID.ID,
		&healthID.PatientName,
		&healthID.DateOfBirth,
		&healthID.NationalID,
		&bloodGroup,
		&gender,
		&conditions,
		&emergencyContact,
		&healthID.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("health id with %s %s not found", field, value))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get health id", err)
	}

	healthID.BloodGroup = bloodGroup.String
	healthID.Gender = gender.String
	healthID.MedicalConditions = conditions.String
	healthID.EmergencyContact = emergencyContact.String

	return healthID, nil
}

// Update updates a record
func (a *HealthIDAdapter) Update(ctx context.Context, healthID *entities.HealthID) error {
	record := goqu.Record{
		"patient_name":       healthID.PatientName,
		"date_of_birth":      healthID.DateOfBirth,
		"blood_group":        sql.NullString{String: healthID.BloodGroup, Valid: healthID.BloodGroup != ""},
		"gender":             sql.NullString{String: healthID.Gender, Valid: healthID.Gender != ""},
		"medical_conditions": sql.NullString{String: healthID.MedicalConditions, Valid: healthID.MedicalConditions != ""},
		"emergency_contact":  sql.NullString{String: healthID.EmergencyContact, Valid: healthID.EmergencyContact != ""},
	}

	query, args, err := a.db.Update("health_ids").
		Set(record).
		Where(goqu.Ex{"id": healthID.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update health id", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("health id with id %s not found", healthID.ID))
	}

	return nil
}
