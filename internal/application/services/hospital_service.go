package services

import (
	"context"
	"log"

	"github.com/medilinkx/benefits-backend/internal/domain/entities"
	"github.com/medilinkx/benefits-backend/internal/domain/repositories"
)

// RankRequest carries the inputs for the ranked hospital view
type RankRequest struct {
	Location           entities.Coordinates
	Mode               FilterMode
	PreferredLocations []string
	RadiusKm           float64
}

// HospitalService handles catalog reads and the ranked hospital view
type HospitalService struct {
	repo       repositories.HospitalRepository
	searchRepo repositories.HospitalSearchRepository
	georank    *GeoRankService
}

// NewHospitalService creates a new hospital service
func NewHospitalService(repo repositories.HospitalRepository, searchRepo repositories.HospitalSearchRepository, georank *GeoRankService) *HospitalService {
	return &HospitalService{
		repo:       repo,
		searchRepo: searchRepo,
		georank:    georank,
	}
}

// Create persists a new hospital and pushes it into the search index
func (s *HospitalService) Create(ctx context.Context, hospital *entities.Hospital) error {
	if err := s.repo.Create(ctx, hospital); err != nil {
		return err
	}
	s.Index(ctx, hospital)
	return nil
}

// GetByID retrieves a hospital by ID
func (s *HospitalService) GetByID(ctx context.Context, id string) (*entities.Hospital, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves hospitals with filters
func (s *HospitalService) List(ctx context.Context, filter repositories.HospitalFilter) ([]*entities.Hospital, error) {
	return s.repo.List(ctx, filter)
}

// Search searches hospitals using the search engine if available, falling
// back to a filtered catalog list
func (s *HospitalService) Search(ctx context.Context, params repositories.SearchParams) ([]*entities.Hospital, error) {
	if s.searchRepo != nil {
		hospitals, err := s.searchRepo.Search(ctx, params)
		if err == nil {
			return hospitals, nil
		}
		log.Printf("Warning: search engine unavailable, falling back to catalog: %v", err)
	}

	active := true
	return s.repo.List(ctx, repositories.HospitalFilter{
		City:     params.Query,
		IsActive: &active,
		Limit:    params.Limit,
		Offset:   params.Offset,
	})
}

// Rank returns the distance-sorted, filtered hospital view for a user.
// A catalog read failure degrades to an empty list so callers can fall
// back to cached data instead of failing the whole screen.
func (s *HospitalService) Rank(ctx context.Context, req RankRequest) []entities.RankedHospital {
	active := true
	hospitals, err := s.repo.List(ctx, repositories.HospitalFilter{IsActive: &active})
	if err != nil {
		log.Printf("Warning: hospital catalog unavailable, ranking empty set: %v", err)
		hospitals = nil
	}

	return s.georank.Rank(hospitals, req.Location, req.Mode, req.PreferredLocations, req.RadiusKm)
}

// Index pushes a hospital into the search index, logging failures rather
// than surfacing them (eventual consistency)
func (s *HospitalService) Index(ctx context.Context, hospital *entities.Hospital) {
	if s.searchRepo == nil {
		return
	}
	if err := s.searchRepo.Index(ctx, hospital); err != nil {
		log.Printf("Warning: failed to index hospital %s: %v", hospital.ID, err)
	}
}
