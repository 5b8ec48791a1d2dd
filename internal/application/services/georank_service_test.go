package services

import (
	"testing"

	"github.com/medilinkx/benefits-backend/internal/domain/entities"
	"github.com/stretchr/testify/assert"
)

var chennaiUser = entities.Coordinates{Latitude: 13.08, Longitude: 80.27}

func hospitalAt(id, city string, lat, lng float64) *entities.Hospital {
	return &entities.Hospital{
		ID:          id,
		Name:        id,
		City:        city,
		Coordinates: &entities.Coordinates{Latitude: lat, Longitude: lng},
	}
}

func TestComputeDistance_ZeroForSamePoint(t *testing.T) {
	svc := NewGeoRankService(0)

	for _, c := range []entities.Coordinates{
		{Latitude: 13.08, Longitude: 80.27},
		{Latitude: -33.87, Longitude: 151.21},
		{Latitude: 0, Longitude: 0},
	} {
		assert.InDelta(t, 0, svc.ComputeDistance(c, c), 1e-9)
	}
}

func TestComputeDistance_Symmetry(t *testing.T) {
	svc := NewGeoRankService(0)

	a := entities.Coordinates{Latitude: 13.0604, Longitude: 80.2496}
	b := entities.Coordinates{Latitude: 10.7905, Longitude: 78.7047}

	assert.InDelta(t, svc.ComputeDistance(a, b), svc.ComputeDistance(b, a), 1e-9)
}

func TestComputeDistance_KnownCityPair(t *testing.T) {
	svc := NewGeoRankService(0)

	chennai := entities.Coordinates{Latitude: 13.0827, Longitude: 80.2707}
	trichy := entities.Coordinates{Latitude: 10.7905, Longitude: 78.7047}

	// Chennai to Trichy is roughly 300 km great-circle
	d := svc.ComputeDistance(chennai, trichy)
	assert.InDelta(t, 305, d, 15)
}

func TestAnnotate_SortsAscendingNilsLast(t *testing.T) {
	svc := NewGeoRankService(0)

	far := hospitalAt("far", "Chennai", 13.188, 80.27)
	near := hospitalAt("near", "Chennai", 13.089, 80.27)
	noCoords := &entities.Hospital{ID: "nocoords", City: "Chennai"}

	ranked := svc.Annotate([]*entities.Hospital{far, noCoords, near}, chennaiUser, nil)

	assert.Len(t, ranked, 3)
	assert.Equal(t, "near", ranked[0].ID)
	assert.Equal(t, "far", ranked[1].ID)
	assert.Equal(t, "nocoords", ranked[2].ID)
	assert.Nil(t, ranked[2].DistanceKm)
	assert.Empty(t, ranked[2].Distance)
	assert.NotNil(t, ranked[0].DistanceKm)
	assert.Regexp(t, `^\d+\.\d km$`, ranked[0].Distance)
}

func TestFilter_Nearby_KeepsWithinRadius(t *testing.T) {
	svc := NewGeoRankService(0)

	// ~1 km, ~5 km and ~12 km north of the user
	h1 := hospitalAt("h1", "Chennai", 13.089, 80.27)
	h5 := hospitalAt("h5", "Chennai", 13.125, 80.27)
	h12 := hospitalAt("h12", "Chennai", 13.188, 80.27)

	ranked := svc.Annotate([]*entities.Hospital{h12, h1, h5}, chennaiUser, nil)
	nearby := svc.Filter(ranked, FilterModeNearby, nil, 0)

	assert.Len(t, nearby, 2)
	assert.Equal(t, "h1", nearby[0].ID)
	assert.Equal(t, "h5", nearby[1].ID)
}

func TestFilter_Nearby_CustomRadius(t *testing.T) {
	svc := NewGeoRankService(0)

	h5 := hospitalAt("h5", "Chennai", 13.125, 80.27)
	h12 := hospitalAt("h12", "Chennai", 13.188, 80.27)

	ranked := svc.Annotate([]*entities.Hospital{h5, h12}, chennaiUser, nil)
	wide := svc.Filter(ranked, FilterModeNearby, nil, 20)

	assert.Len(t, wide, 2)
}

func TestFilter_Preferred_EmptySetReturnsEmpty(t *testing.T) {
	svc := NewGeoRankService(0)

	ranked := svc.Annotate([]*entities.Hospital{
		hospitalAt("h1", "Chennai", 13.06, 80.25),
		hospitalAt("h2", "Trichy", 10.79, 78.70),
	}, chennaiUser, nil)

	assert.Empty(t, svc.Filter(ranked, FilterModePreferred, nil, 0))
	assert.Empty(t, svc.Filter(ranked, FilterModePreferred, []string{}, 0))
}

func TestFilter_Preferred_SubstringContainment(t *testing.T) {
	svc := NewGeoRankService(0)

	exact := hospitalAt("exact", "Trichy", 10.79, 78.70)
	district := hospitalAt("district", "Trichy District", 10.80, 78.69)
	other := hospitalAt("other", "Chennai", 13.06, 80.25)

	ranked := svc.Annotate([]*entities.Hospital{exact, district, other}, chennaiUser, nil)
	preferred := svc.Filter(ranked, FilterModePreferred, []string{"trichy"}, 0)

	ids := make([]string, 0, len(preferred))
	for _, r := range preferred {
		ids = append(ids, r.ID)
	}
	assert.ElementsMatch(t, []string{"exact", "district"}, ids)
}

func TestFilter_Preferred_BlankCityNeverMatches(t *testing.T) {
	svc := NewGeoRankService(0)

	// A blank city must never satisfy the substring rule, or every
	// preferred entry would contain it
	blank := hospitalAt("blank", "", 13.06, 80.25)
	spaces := hospitalAt("spaces", "   ", 13.07, 80.26)
	trichy := hospitalAt("trichy", "Trichy", 10.79, 78.70)

	ranked := svc.Annotate([]*entities.Hospital{blank, spaces, trichy}, chennaiUser, nil)
	preferred := svc.Filter(ranked, FilterModePreferred, []string{"Trichy", "Chennai"}, 0)

	assert.Len(t, preferred, 1)
	assert.Equal(t, "trichy", preferred[0].ID)
	assert.False(t, svc.IsPreferred(blank, []string{"Chennai"}))
}

func TestIsPreferred_TaggedRegardlessOfMode(t *testing.T) {
	svc := NewGeoRankService(0)

	trichy := hospitalAt("t", "Trichy", 10.79, 78.70)
	chennai := hospitalAt("c", "Chennai", 13.06, 80.25)

	ranked := svc.Annotate([]*entities.Hospital{trichy, chennai}, chennaiUser, []string{"Trichy"})

	// chennai is closer so it sorts first, but the preferred tag follows city
	assert.Equal(t, "c", ranked[0].ID)
	assert.False(t, ranked[0].IsPreferred)
	assert.True(t, ranked[1].IsPreferred)
}

func TestRank_EndToEndScenario(t *testing.T) {
	svc := NewGeoRankService(0)

	hospitalA := hospitalAt("A", "Chennai", 13.107, 80.27) // ~3 km away
	hospitalB := hospitalAt("B", "Trichy", 10.7905, 78.7047)
	catalog := []*entities.Hospital{hospitalA, hospitalB}

	preferred := svc.Rank(catalog, chennaiUser, FilterModePreferred, []string{"Trichy"}, 0)
	assert.Len(t, preferred, 1)
	assert.Equal(t, "B", preferred[0].ID)
	assert.True(t, preferred[0].IsPreferred)

	nearby := svc.Rank(catalog, chennaiUser, FilterModeNearby, []string{"Trichy"}, 0)
	assert.Len(t, nearby, 1)
	assert.Equal(t, "A", nearby[0].ID)
}

func TestRank_EmptyCatalog(t *testing.T) {
	svc := NewGeoRankService(0)

	assert.Empty(t, svc.Rank(nil, chennaiUser, FilterModeAll, nil, 0))
	assert.Empty(t, svc.Rank([]*entities.Hospital{}, chennaiUser, FilterModeNearby, nil, 0))
}
