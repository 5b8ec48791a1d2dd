package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentToHospital(t *testing.T) {
	doc := map[string]interface{}{
		"id":                 "h-1",
		"name":               "Apollo Hospitals Chennai",
		"city":               "Chennai",
		"state":              "Tamil Nadu",
		"rating":             4.8,
		"is_active":          true,
		"specializations":    []interface{}{"Cardiology", "Diabetology"},
		"available_services": []interface{}{"Emergency", "ICU"},
		"location":           []interface{}{13.0827, 80.2707},
	}

	hospital := documentToHospital(doc)

	assert.Equal(t, "h-1", hospital.ID)
	assert.Equal(t, "Apollo Hospitals Chennai", hospital.Name)
	assert.Equal(t, "Chennai", hospital.City)
	assert.Equal(t, 4.8, hospital.Rating)
	assert.Equal(t, []string{"Cardiology", "Diabetology"}, hospital.Specializations)
	if assert.NotNil(t, hospital.Coordinates) {
		assert.InDelta(t, 13.0827, hospital.Coordinates.Latitude, 0.0001)
		assert.InDelta(t, 80.2707, hospital.Coordinates.Longitude, 0.0001)
	}
}

func TestDocumentToHospital_OriginLocationMeansNoCoordinates(t *testing.T) {
	doc := map[string]interface{}{
		"id":       "h-2",
		"name":     "City Clinic",
		"location": []interface{}{0.0, 0.0},
	}

	hospital := documentToHospital(doc)

	assert.Nil(t, hospital.Coordinates)
}

func TestDocumentToHospital_MissingFields(t *testing.T) {
	hospital := documentToHospital(map[string]interface{}{"id": "h-3"})

	assert.Equal(t, "h-3", hospital.ID)
	assert.Empty(t, hospital.Name)
	assert.Nil(t, hospital.Specializations)
	assert.Nil(t, hospital.Coordinates)
}
