package entities

import "time"

// SchemeMatch is one scheme's scored entry inside a stored recommendation
type SchemeMatch struct {
	SchemeID        string `json:"scheme_id" db:"scheme_id"`
	MatchPercentage int    `json:"match_percentage" db:"match_percentage"`
	Reasoning       string `json:"reasoning" db:"reasoning"`
}

// Recommendation is a persisted scorer run for a health identity
type Recommendation struct {
	ID               string        `json:"id" db:"id"`
	HealthIDID       string        `json:"health_id_id" db:"health_id_id"`
	Strategy         string        `json:"strategy" db:"strategy"`
	Matches          []SchemeMatch `json:"recommendations" db:"-"`
	EligibilityScore int           `json:"eligibility_score" db:"eligibility_score"`
	RiskLevel        RiskLevel     `json:"risk_level" db:"risk_level"`
	CreatedAt        time.Time     `json:"created_at" db:"created_at"`
}
