package services

import (
	"sort"

	"github.com/medilinkx/benefits-backend/internal/domain/entities"
)

// TopRecommendations is how many schemes the recommendation path returns
const TopRecommendations = 5

// EligibilityService scores the scheme catalog for a patient profile. It
// is a pure computation over (profile, catalog); an empty catalog scores
// to an empty list.
type EligibilityService struct {
	strategy ScoringStrategy
}

// NewEligibilityService creates an eligibility service with the given
// default strategy
func NewEligibilityService(strategy ScoringStrategy) *EligibilityService {
	return &EligibilityService{strategy: strategy}
}

// Strategy returns the configured default strategy
func (s *EligibilityService) Strategy() ScoringStrategy {
	return s.strategy
}

// ScoreSchemes scores every scheme with the given strategy, preserving
// catalog order. Percentages are clamped to [0,100]. Risk is not attached
// on this path.
func (s *EligibilityService) ScoreSchemes(profile entities.PatientProfile, schemes []*entities.Scheme, strategy ScoringStrategy) []entities.ScoredScheme {
	if strategy == nil {
		strategy = s.strategy
	}

	scored := make([]entities.ScoredScheme, 0, len(schemes))
	for _, scheme := range schemes {
		match, reasoning := strategy.Score(profile, scheme)
		scored = append(scored, entities.ScoredScheme{
			Scheme:          *scheme,
			MatchPercentage: clampPercentage(match),
			Reasoning:       reasoning,
		})
	}
	return scored
}

// Recommend scores the catalog with the configured strategy, attaches the
// risk classification, and returns the top schemes sorted descending by
// match percentage (catalog order on ties).
func (s *EligibilityService) Recommend(profile entities.PatientProfile, schemes []*entities.Scheme) []entities.ScoredScheme {
	scored := s.ScoreSchemes(profile, schemes, s.strategy)

	risk := DeriveRiskLevel(profile.MedicalConditions)
	for i := range scored {
		scored[i].RiskLevel = risk
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchPercentage > scored[j].MatchPercentage
	})

	if len(scored) > TopRecommendations {
		scored = scored[:TopRecommendations]
	}
	return scored
}
