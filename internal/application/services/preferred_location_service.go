package services

import (
	"context"
	"strings"

	"github.com/medilinkx/benefits-backend/internal/domain/repositories"
	apperrors "github.com/medilinkx/benefits-backend/pkg/errors"
)

// PreferredLocationService manages a health identity's ordered city list.
// Entries are deduplicated by normalized lowercase form; the matching
// predicate it exposes is the same one the geo-ranking filter uses.
type PreferredLocationService struct {
	repo repositories.PreferredLocationRepository
}

// NewPreferredLocationService creates a new preferred location service
func NewPreferredLocationService(repo repositories.PreferredLocationRepository) *PreferredLocationService {
	return &PreferredLocationService{repo: repo}
}

// List returns the stored preferred city names in insertion order
func (s *PreferredLocationService) List(ctx context.Context, healthIDID string) ([]string, error) {
	return s.repo.Get(ctx, healthIDID)
}

// Add appends a city, rejecting case-insensitive duplicates
func (s *PreferredLocationService) Add(ctx context.Context, healthIDID, location string) ([]string, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, apperrors.NewValidationError("location is required")
	}

	locations, err := s.repo.Get(ctx, healthIDID)
	if err != nil {
		return nil, err
	}

	for _, existing := range locations {
		if normalizeLocation(existing) == normalizeLocation(location) {
			return nil, apperrors.NewConflictError("location already in preferred list")
		}
	}

	locations = append(locations, location)
	if err := s.repo.Save(ctx, healthIDID, locations); err != nil {
		return nil, err
	}
	return locations, nil
}

// Remove deletes a city by case-insensitive match
func (s *PreferredLocationService) Remove(ctx context.Context, healthIDID, location string) ([]string, error) {
	locations, err := s.repo.Get(ctx, healthIDID)
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(locations))
	removed := false
	for _, existing := range locations {
		if !removed && normalizeLocation(existing) == normalizeLocation(location) {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}

	if !removed {
		return nil, apperrors.NewNotFoundError("location not in preferred list")
	}

	if err := s.repo.Save(ctx, healthIDID, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Matches reports whether a hospital city matches any of the given
// preferred locations, with the exact predicate used by filtering
func (s *PreferredLocationService) Matches(city string, preferred []string) bool {
	return matchesPreferred(city, preferred)
}
