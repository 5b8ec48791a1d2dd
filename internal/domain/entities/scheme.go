package entities

import "time"

// SchemeCategory is the closed category tag of a health scheme
type SchemeCategory string

const (
	SchemeCategoryDiabetesCare  SchemeCategory = "diabetes-care"
	SchemeCategoryGeneralHealth SchemeCategory = "general-health"
	SchemeCategoryFamilyCare    SchemeCategory = "family-care"
	SchemeCategoryEmergencyCare SchemeCategory = "emergency-care"
)

// Scheme represents a health benefit scheme in the static catalog
type Scheme struct {
	ID               string         `json:"id" db:"id"`
	Name             string         `json:"name" db:"name"`
	Description      string         `json:"description" db:"description"`
	Coverage         float64        `json:"coverage" db:"coverage"`
	ProcessingTime   string         `json:"processing_time" db:"processing_time"`
	NetworkHospitals int            `json:"network_hospitals" db:"network_hospitals"`
	MatchPercentage  int            `json:"match_percentage" db:"match_percentage"`
	Category         SchemeCategory `json:"type" db:"category"`
	CreatedAt        time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at" db:"updated_at"`
}

// RiskLevel classifies a patient's risk from their condition text
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// ScoredScheme is a Scheme annotated with a per-patient match percentage.
// RiskLevel is only set on the server-side recommendation path; Reasoning
// is only filled by the additive strategy.
type ScoredScheme struct {
	Scheme
	MatchPercentage int       `json:"match_percentage"`
	Reasoning       string    `json:"reasoning,omitempty"`
	RiskLevel       RiskLevel `json:"risk_level,omitempty"`
}

// PatientProfile is the scorer input: age in whole years and the free-text
// medical conditions string (comma or phrase separated, unstructured)
type PatientProfile struct {
	Age               int    `json:"age"`
	MedicalConditions string `json:"medical_conditions"`
}
