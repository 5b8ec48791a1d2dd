package repositories

import (
	"context"

	"github.com/medilinkx/benefits-backend/internal/domain/entities"
)

// HospitalRepository defines the interface for hospital catalog operations
type HospitalRepository interface {
	// Create creates a new hospital
	Create(ctx context.Context, hospital *entities.Hospital) error

	// GetByID retrieves a hospital by ID
	GetByID(ctx context.Context, id string) (*entities.Hospital, error)

	// Update updates a hospital
	Update(ctx context.Context, hospital *entities.Hospital) error

	// Delete deletes a hospital
	Delete(ctx context.Context, id string) error

	// List retrieves hospitals with filters
	List(ctx context.Context, filter HospitalFilter) ([]*entities.Hospital, error)
}

// HospitalSearchRepository defines the interface for hospital search
// operations (e.g. Typesense)
type HospitalSearchRepository interface {
	// Search searches hospitals
	Search(ctx context.Context, params SearchParams) ([]*entities.Hospital, error)

	// Index indexes a hospital
	Index(ctx context.Context, hospital *entities.Hospital) error

	// Delete removes a hospital from the index
	Delete(ctx context.Context, id string) error
}

// HospitalFilter defines filters for listing hospitals
type HospitalFilter struct {
	City           string
	State          string
	Specialization string
	IsActive       *bool
	Limit          int
	Offset         int
}

// SearchParams defines parameters for hospital search
type SearchParams struct {
	Query     string
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Limit     int
	Offset    int
}
