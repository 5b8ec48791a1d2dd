package repositories

import (
	"context"

	"github.com/medilinkx/benefits-backend/internal/domain/entities"
)

// RecommendationRepository defines the interface for stored scorer runs
type RecommendationRepository interface {
	// Create persists a recommendation with its scheme matches
	Create(ctx context.Context, recommendation *entities.Recommendation) error

	// GetLatestByHealthID retrieves the most recent recommendation
	GetLatestByHealthID(ctx context.Context, healthIDID string) (*entities.Recommendation, error)
}
