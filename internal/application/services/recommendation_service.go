package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/medilinkx/benefits-backend/internal/domain/entities"
	"github.com/medilinkx/benefits-backend/internal/domain/repositories"
)

// RecommendRequest carries the recommendation inputs. HealthIDID is
// optional; when it resolves to a stored identity the run is persisted and
// missing profile fields are filled from the record.
type RecommendRequest struct {
	HealthIDID        string
	Age               int
	MedicalConditions string
}

// RecommendationService runs the configured scorer over the scheme catalog
// and persists the result for the patient's history
type RecommendationService struct {
	schemeRepo         repositories.SchemeRepository
	healthIDRepo       repositories.HealthIDRepository
	recommendationRepo repositories.RecommendationRepository
	eligibility        *EligibilityService
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(
	schemeRepo repositories.SchemeRepository,
	healthIDRepo repositories.HealthIDRepository,
	recommendationRepo repositories.RecommendationRepository,
	eligibility *EligibilityService,
) *RecommendationService {
	return &RecommendationService{
		schemeRepo:         schemeRepo,
		healthIDRepo:       healthIDRepo,
		recommendationRepo: recommendationRepo,
		eligibility:        eligibility,
	}
}

// Recommend scores the catalog for the request profile and returns the top
// matches. An empty catalog yields an empty list, not an error.
func (s *RecommendationService) Recommend(ctx context.Context, req RecommendRequest) ([]entities.ScoredScheme, error) {
	profile := entities.PatientProfile{
		Age:               req.Age,
		MedicalConditions: req.MedicalConditions,
	}

	healthID := s.resolveHealthID(ctx, req.HealthIDID)
	if healthID != nil {
		if profile.Age == 0 {
			profile.Age = healthID.Age(time.Now())
		}
		if profile.MedicalConditions == "" {
			profile.MedicalConditions = healthID.MedicalConditions
		}
	}

	schemes, err := s.schemeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	scored := s.eligibility.Recommend(profile, schemes)

	// Persist only when the health id resolves; scoring itself never
	// depends on storage succeeding.
	if healthID != nil && s.recommendationRepo != nil {
		if err := s.store(ctx, healthID.ID, profile, scored); err != nil {
			log.Printf("Warning: failed to store recommendation for %s: %v", healthID.ID, err)
		}
	}

	return scored, nil
}

// Latest returns the most recent stored recommendation for a health identity
func (s *RecommendationService) Latest(ctx context.Context, healthIDID string) (*entities.Recommendation, error) {
	return s.recommendationRepo.GetLatestByHealthID(ctx, healthIDID)
}

func (s *RecommendationService) resolveHealthID(ctx context.Context, id string) *entities.HealthID {
	if id == "" || s.healthIDRepo == nil {
		return nil
	}
	healthID, err := s.healthIDRepo.GetByID(ctx, id)
	if err != nil {
		return nil
	}
	return healthID
}

func (s *RecommendationService) store(ctx context.Context, healthIDID string, profile entities.PatientProfile, scored []entities.ScoredScheme) error {
	matches := make([]entities.SchemeMatch, 0, len(scored))
	for _, sc := range scored {
		matches = append(matches, entities.SchemeMatch{
			SchemeID:        sc.ID,
			MatchPercentage: sc.MatchPercentage,
			Reasoning:       sc.Reasoning,
		})
	}

	eligibilityScore := 70
	if len(scored) > 0 {
		eligibilityScore = scored[0].MatchPercentage
	}

	return s.recommendationRepo.Create(ctx, &entities.Recommendation{
		ID:               uuid.New().String(),
		HealthIDID:       healthIDID,
		Strategy:         s.eligibility.Strategy().Name(),
		Matches:          matches,
		EligibilityScore: eligibilityScore,
		RiskLevel:        DeriveRiskLevel(profile.MedicalConditions),
		CreatedAt:        time.Now(),
	})
}
