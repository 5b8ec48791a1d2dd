package repositories

import (
	"context"

	"github.com/medilinkx/benefits-backend/internal/domain/entities"
)

// HealthIDRepository defines the interface for health identity records
type HealthIDRepository interface {
	// Create creates a new health identity record
	Create(ctx context.Context, healthID *entities.HealthID) error

	// GetByID retrieves a record by ID
	GetByID(ctx context.Context, id string) (*entities.HealthID, error)

	// GetByNationalID retrieves a record by the opaque national id string
	GetByNationalID(ctx context.Context, nationalID string) (*entities.HealthID, error)

	// Update updates a record
	Update(ctx context.Context, healthID *entities.HealthID) error
}

// PreferredLocationRepository stores a health identity's ordered city list
type PreferredLocationRepository interface {
	// Get returns the ordered preferred city names for a health identity
	Get(ctx context.Context, healthIDID string) ([]string, error)

	// Save replaces the stored list
	Save(ctx context.Context, healthIDID string, locations []string) error
}
