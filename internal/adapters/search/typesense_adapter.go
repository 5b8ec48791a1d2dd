package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/medilinkx/benefits-backend/internal/domain/entities"
	"github.com/medilinkx/benefits-backend/internal/domain/repositories"
	tsclient "github.com/medilinkx/benefits-backend/internal/infrastructure/clients/typesense"
	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"
)

const collectionName = tsclient.HospitalsCollection

// TypesenseAdapter implements hospital search using Typesense
type TypesenseAdapter struct {
	client *tsclient.Client
}

// Ensure TypesenseAdapter implements HospitalSearchRepository
var _ repositories.HospitalSearchRepository = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// Index indexes a hospital. Hospitals without coordinates are indexed at
// the origin geopoint; geo filters will not match them.
func (a *TypesenseAdapter) Index(ctx context.Context, hospital *entities.Hospital) error {
	location := []float64{0, 0}
	if hospital.Coordinates != nil {
		location = []float64{hospital.Coordinates.Latitude, hospital.Coordinates.Longitude}
	}

	document := map[string]interface{}{
		"id":                 hospital.ID,
		"name":               hospital.Name,
		"city":               hospital.City,
		"state":              hospital.State,
		"location":           location,
		"rating":             hospital.Rating,
		"specializations":    hospital.Specializations,
		"available_services": hospital.AvailableServices,
		"is_active":          hospital.IsActive,
		"created_at":         hospital.CreatedAt.Unix(),
	}

	_, err := a.client.Client().Collection(collectionName).Documents().Upsert(ctx, document)
	if err != nil {
		return fmt.Errorf("failed to index hospital: %w", err)
	}

	return nil
}

// Delete removes a hospital from the index
func (a *TypesenseAdapter) Delete(ctx context.Context, id string) error {
	_, err := a.client.Client().Collection(collectionName).Document(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete hospital from index: %w", err)
	}
	return nil
}

// Search searches hospitals by free text, optionally constrained to a
// geo radius around the given coordinates
func (a *TypesenseAdapter) Search(ctx context.Context, params repositories.SearchParams) ([]*entities.Hospital, error) {
	query := strings.TrimSpace(params.Query)
	if query == "" {
		query = "*"
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	filters := []string{"is_active:=true"}
	if params.RadiusKm > 0 {
		filters = append(filters, fmt.Sprintf("location:(%f, %f, %f km)", params.Latitude, params.Longitude, params.RadiusKm))
	}

	searchParams := &api.SearchCollectionParams{
		Q:        pointer.String(query),
		QueryBy:  pointer.String("name,city,specializations"),
		FilterBy: pointer.String(strings.Join(filters, " && ")),
		Page:     pointer.Int(params.Offset/limit + 1),
		PerPage:  pointer.Int(limit),
	}

	result, err := a.client.Client().Collection(collectionName).Documents().Search(ctx, searchParams)
	if err != nil {
		return nil, fmt.Errorf("failed to search hospitals: %w", err)
	}

	hospitals := []*entities.Hospital{}
	if result.Hits == nil {
		return hospitals, nil
	}

	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		hospitals = append(hospitals, documentToHospital(*hit.Document))
	}

	return hospitals, nil
}

// documentToHospital rebuilds a partial hospital entity from an indexed
// document. Callers needing full records should fetch them by ID.
func documentToHospital(doc map[string]interface{}) *entities.Hospital {
	hospital := &entities.Hospital{}

	if val, ok := doc["id"].(string); ok {
		hospital.ID = val
	}
	if val, ok := doc["name"].(string); ok {
		hospital.Name = val
	}
	if val, ok := doc["city"].(string); ok {
		hospital.City = val
	}
	if val, ok := doc["state"].(string); ok {
		hospital.State = val
	}
	if val, ok := doc["rating"].(float64); ok {
		hospital.Rating = val
	}
	if val, ok := doc["is_active"].(bool); ok {
		hospital.IsActive = val
	}

	hospital.Specializations = toStringSlice(doc["specializations"])
	hospital.AvailableServices = toStringSlice(doc["available_services"])

	if loc, ok := doc["location"].([]interface{}); ok && len(loc) == 2 {
		lat, latOK := loc[0].(float64)
		lng, lngOK := loc[1].(float64)
		if latOK && lngOK && (lat != 0 || lng != 0) {
			hospital.Coordinates = &entities.Coordinates{Latitude: lat, Longitude: lng}
		}
	}

	return hospital
}

func toStringSlice(value interface{}) []string {
	items, ok := value.([]interface{})
	if !ok {
		return nil
	}

	result := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}
	return result
}
