package repositories

import (
	"context"

	"github.com/medilinkx/benefits-backend/internal/domain/entities"
)

// SchemeRepository defines the interface for the scheme catalog
type SchemeRepository interface {
	// Create creates a new scheme
	Create(ctx context.Context, scheme *entities.Scheme) error

	// GetByID retrieves a scheme by ID
	GetByID(ctx context.Context, id string) (*entities.Scheme, error)

	// List retrieves all active schemes in catalog order
	List(ctx context.Context) ([]*entities.Scheme, error)
}
