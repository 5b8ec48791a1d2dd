package entities

import (
	"time"
)

// Hospital represents a network hospital in the catalog
type Hospital struct {
	ID                string       `json:"id" db:"id"`
	Name              string       `json:"name" db:"name"`
	Location          string       `json:"location" db:"location"`
	City              string       `json:"city" db:"city"`
	State             string       `json:"state,omitempty" db:"state"`
	Coordinates       *Coordinates `json:"coordinates,omitempty" db:"-"`
	Specializations   []string     `json:"specializations" db:"-"`
	Rating            float64      `json:"rating" db:"rating"`
	AvailableServices []string     `json:"available_services" db:"-"`
	Phone             string       `json:"phone,omitempty" db:"phone"`
	Email             string       `json:"email,omitempty" db:"email"`
	Website           string       `json:"website,omitempty" db:"website"`
	IsActive          bool         `json:"is_active" db:"is_active"`
	CreatedAt         time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at" db:"updated_at"`
}

// Coordinates represents geographical coordinates (WGS84 degrees)
type Coordinates struct {
	Latitude  float64 `json:"lat" db:"latitude"`
	Longitude float64 `json:"lng" db:"longitude"`
}

// RankedHospital is a Hospital annotated with distance and preference
// information relative to a user location. Derived per request, never
// persisted.
type RankedHospital struct {
	Hospital
	// DistanceKm is nil for hospitals without coordinates; those sort last.
	DistanceKm *float64 `json:"distance_km"`
	// Distance is DistanceKm formatted to one decimal, e.g. "3.2 km".
	Distance    string `json:"distance,omitempty"`
	IsPreferred bool   `json:"is_preferred"`
}

// UserLocation is a per-request user position with an optional
// human-readable address
type UserLocation struct {
	Coordinates Coordinates `json:"coordinates"`
	Address     string      `json:"address,omitempty"`
}
