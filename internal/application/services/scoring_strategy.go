package services

import (
	"strings"

	"github.com/medilinkx/benefits-backend/internal/domain/entities"
)

// ScoringStrategy assigns a scheme a match percentage for a patient.
// The two implementations reproduce the two formulas the product shipped
// with; they give different absolute numbers for the same input, so which
// one runs is an explicit configuration choice, never a merge.
type ScoringStrategy interface {
	// Name identifies the strategy in config and stored recommendations
	Name() string

	// Score returns the match percentage (unclamped) and an optional
	// reasoning string for one scheme
	Score(profile entities.PatientProfile, scheme *entities.Scheme) (int, string)
}

// StrategyByName resolves a strategy name from config or a request.
// Unknown names fall back to the additive strategy, which is what the
// original recommendations endpoint ran.
func StrategyByName(name string) ScoringStrategy {
	if strings.EqualFold(name, "override") {
		return OverrideScoringStrategy{}
	}
	return AdditiveScoringStrategy{}
}

// OverrideScoringStrategy is the category-override formula: each category
// has a fixed matched/unmatched percentage that replaces the catalog base.
type OverrideScoringStrategy struct{}

func (OverrideScoringStrategy) Name() string { return "override" }

func (OverrideScoringStrategy) Score(profile entities.PatientProfile, scheme *entities.Scheme) (int, string) {
	conditions := strings.ToLower(profile.MedicalConditions)

	switch scheme.Category {
	case entities.SchemeCategoryDiabetesCare:
		if strings.Contains(conditions, "diabetes") {
			return 95, ""
		}
		return 60, ""

	case entities.SchemeCategoryEmergencyCare:
		if containsAny(conditions, "emergency", "heart", "asthma") {
			return 92, ""
		}
		return 70, ""

	case entities.SchemeCategoryFamilyCare:
		if profile.Age > 30 {
			return 85, ""
		}
		return 65, ""

	case entities.SchemeCategoryGeneralHealth:
		if profile.Age > 50 {
			return 90, ""
		}
		trimmed := strings.TrimSpace(conditions)
		if trimmed == "none" || trimmed == "general health" {
			return 87, ""
		}
	}

	return scheme.MatchPercentage, ""
}

// AdditiveScoringStrategy is the server-side formula: base 70 with fixed
// condition-category overrides, an age bonus for general health, and an
// incrementally built reasoning string.
type AdditiveScoringStrategy struct{}

func (AdditiveScoringStrategy) Name() string { return "additive" }

func (AdditiveScoringStrategy) Score(profile entities.PatientProfile, scheme *entities.Scheme) (int, string) {
	match := 70
	reasoning := "General health coverage suitable for most users."

	conditions := strings.ToLower(profile.MedicalConditions)
	if conditions != "" {
		switch {
		case scheme.Category == entities.SchemeCategoryDiabetesCare && strings.Contains(conditions, "diabetes"):
			match = 95
			reasoning = "Perfect match for diabetes management based on your medical conditions."
		case scheme.Category == entities.SchemeCategoryEmergencyCare && containsAny(conditions, "heart", "asthma"):
			match = 90
			reasoning = "High priority coverage recommended due to your medical conditions."
		case scheme.Category == entities.SchemeCategoryFamilyCare && profile.Age > 30:
			match = 85
			reasoning = "Family care package ideal for your age group and family planning needs."
		}
	}

	if profile.Age > 50 && scheme.Category == entities.SchemeCategoryGeneralHealth {
		match += 10
		reasoning += " Enhanced coverage recommended for your age group."
	}

	return match, reasoning
}

// DeriveRiskLevel classifies the patient's risk from the free-text
// conditions. Only the server-side recommendation path attaches this.
func DeriveRiskLevel(medicalConditions string) entities.RiskLevel {
	conditions := strings.ToLower(medicalConditions)
	switch {
	case containsAny(conditions, "heart", "emergency"):
		return entities.RiskLevelHigh
	case strings.Contains(conditions, "diabetes"):
		return entities.RiskLevelMedium
	default:
		return entities.RiskLevelLow
	}
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func clampPercentage(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
