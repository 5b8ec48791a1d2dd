package services

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/medilinkx/benefits-backend/internal/domain/entities"
)

// FilterMode selects how the ranked hospital list is narrowed
type FilterMode string

const (
	FilterModeAll       FilterMode = "all"
	FilterModeNearby    FilterMode = "nearby"
	FilterModePreferred FilterMode = "preferred"
)

// DefaultNearbyRadiusKm is the policy radius for the "nearby" filter
const DefaultNearbyRadiusKm = 10.0

// GeoRankService turns the flat hospital catalog into an ordered, filtered
// view relative to a user location. All methods are pure; malformed
// coordinates flow through the arithmetic rather than erroring, and
// hospitals without coordinates sort last with a nil distance.
type GeoRankService struct {
	nearbyRadiusKm float64
}

// NewGeoRankService creates a new geo-ranking service. A non-positive
// radius falls back to DefaultNearbyRadiusKm.
func NewGeoRankService(nearbyRadiusKm float64) *GeoRankService {
	if nearbyRadiusKm <= 0 {
		nearbyRadiusKm = DefaultNearbyRadiusKm
	}
	return &GeoRankService{nearbyRadiusKm: nearbyRadiusKm}
}

// ComputeDistance returns the great-circle distance between two points in
// kilometers via the Haversine formula. Inputs are unconstrained degrees.
func (s *GeoRankService) ComputeDistance(a, b entities.Coordinates) float64 {
	const earthRadiusKm = 6371.0

	dLat := degreesToRadians(b.Latitude - a.Latitude)
	dLng := degreesToRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(a.Latitude))*math.Cos(degreesToRadians(b.Latitude))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// Annotate computes per-hospital distance and preference tags relative to
// the user location and returns the list sorted ascending by distance.
// Hospitals without coordinates get a nil distance and sort last; ties keep
// catalog order.
func (s *GeoRankService) Annotate(hospitals []*entities.Hospital, user entities.Coordinates, preferred []string) []entities.RankedHospital {
	ranked := make([]entities.RankedHospital, 0, len(hospitals))
	for _, h := range hospitals {
		entry := entities.RankedHospital{
			Hospital:    *h,
			IsPreferred: s.IsPreferred(h, preferred),
		}
		if h.Coordinates != nil {
			d := s.ComputeDistance(user, *h.Coordinates)
			entry.DistanceKm = &d
			entry.Distance = fmt.Sprintf("%.1f km", d)
		}
		ranked = append(ranked, entry)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		di, dj := ranked[i].DistanceKm, ranked[j].DistanceKm
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return *di < *dj
	})

	return ranked
}

// Filter narrows an annotated list according to the mode. radiusKm only
// applies to the nearby mode; a non-positive value uses the service radius.
// Preferred mode with an empty preferred set deliberately returns an empty
// list rather than everything.
func (s *GeoRankService) Filter(ranked []entities.RankedHospital, mode FilterMode, preferred []string, radiusKm float64) []entities.RankedHospital {
	switch mode {
	case FilterModeNearby:
		if radiusKm <= 0 {
			radiusKm = s.nearbyRadiusKm
		}
		filtered := make([]entities.RankedHospital, 0, len(ranked))
		for _, r := range ranked {
			if r.DistanceKm != nil && *r.DistanceKm <= radiusKm {
				filtered = append(filtered, r)
			}
		}
		return filtered

	case FilterModePreferred:
		filtered := make([]entities.RankedHospital, 0, len(ranked))
		for _, r := range ranked {
			if matchesPreferred(r.City, preferred) {
				filtered = append(filtered, r)
			}
		}
		return filtered

	default:
		return ranked
	}
}

// Rank annotates and filters in one call
func (s *GeoRankService) Rank(hospitals []*entities.Hospital, user entities.Coordinates, mode FilterMode, preferred []string, radiusKm float64) []entities.RankedHospital {
	return s.Filter(s.Annotate(hospitals, user, preferred), mode, preferred, radiusKm)
}

// IsPreferred reports whether the hospital's city matches any preferred
// location, using the same predicate as the preferred filter
func (s *GeoRankService) IsPreferred(hospital *entities.Hospital, preferred []string) bool {
	return matchesPreferred(hospital.City, preferred)
}

// matchesPreferred is the single matching rule shared by the preferred
// filter, the IsPreferred tag and the preferred-location bookkeeping:
// case-insensitive equality or either-direction substring containment.
func matchesPreferred(city string, preferred []string) bool {
	c := normalizeLocation(city)
	if c == "" {
		return false
	}
	for _, p := range preferred {
		pref := normalizeLocation(p)
		if pref == "" {
			continue
		}
		if c == pref || strings.Contains(c, pref) || strings.Contains(pref, c) {
			return true
		}
	}
	return false
}

func normalizeLocation(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
