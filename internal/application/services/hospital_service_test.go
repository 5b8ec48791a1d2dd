package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/medilinkx/benefits-backend/internal/application/services"
	"github.com/medilinkx/benefits-backend/internal/domain/entities"
	"github.com/medilinkx/benefits-backend/internal/domain/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func chennaiHospital() *entities.Hospital {
	return &entities.Hospital{
		ID:   "h-chennai",
		Name: "Apollo Hospitals Chennai",
		City: "Chennai",
		Coordinates: &entities.Coordinates{
			Latitude:  13.0827,
			Longitude: 80.2707,
		},
		IsActive: true,
	}
}

func TestHospitalService_Create_PersistsAndIndexes(t *testing.T) {
	repo := new(MockHospitalRepository)
	searchRepo := new(MockHospitalSearchRepository)

	hospital := chennaiHospital()
	repo.On("Create", mock.Anything, hospital).Return(nil)
	searchRepo.On("Index", mock.Anything, hospital).Return(nil)

	service := services.NewHospitalService(repo, searchRepo, services.NewGeoRankService(0))

	err := service.Create(context.Background(), hospital)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
	searchRepo.AssertExpectations(t)
}

func TestHospitalService_Create_IndexFailureIsNonFatal(t *testing.T) {
	repo := new(MockHospitalRepository)
	searchRepo := new(MockHospitalSearchRepository)

	hospital := chennaiHospital()
	repo.On("Create", mock.Anything, hospital).Return(nil)
	searchRepo.On("Index", mock.Anything, hospital).Return(errors.New("typesense unavailable"))

	service := services.NewHospitalService(repo, searchRepo, services.NewGeoRankService(0))

	err := service.Create(context.Background(), hospital)

	assert.NoError(t, err)
}

func TestHospitalService_Create_RepoErrorSkipsIndexing(t *testing.T) {
	repo := new(MockHospitalRepository)
	searchRepo := new(MockHospitalSearchRepository)

	hospital := chennaiHospital()
	repo.On("Create", mock.Anything, hospital).Return(errors.New("db down"))

	service := services.NewHospitalService(repo, searchRepo, services.NewGeoRankService(0))

	err := service.Create(context.Background(), hospital)

	assert.Error(t, err)
	searchRepo.AssertNotCalled(t, "Index", mock.Anything, mock.Anything)
}

func TestHospitalService_Search_UsesSearchEngine(t *testing.T) {
	repo := new(MockHospitalRepository)
	searchRepo := new(MockHospitalSearchRepository)

	params := repositories.SearchParams{Query: "apollo", Limit: 10}
	searchRepo.On("Search", mock.Anything, params).Return([]*entities.Hospital{chennaiHospital()}, nil)

	service := services.NewHospitalService(repo, searchRepo, services.NewGeoRankService(0))

	hospitals, err := service.Search(context.Background(), params)

	assert.NoError(t, err)
	assert.Len(t, hospitals, 1)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestHospitalService_Search_FallsBackToCatalog(t *testing.T) {
	repo := new(MockHospitalRepository)
	searchRepo := new(MockHospitalSearchRepository)

	params := repositories.SearchParams{Query: "Chennai", Limit: 10}
	searchRepo.On("Search", mock.Anything, params).Return(nil, errors.New("typesense unavailable"))
	repo.On("List", mock.Anything, mock.MatchedBy(func(filter repositories.HospitalFilter) bool {
		return filter.City == "Chennai" && filter.IsActive != nil && *filter.IsActive
	})).Return([]*entities.Hospital{chennaiHospital()}, nil)

	service := services.NewHospitalService(repo, searchRepo, services.NewGeoRankService(0))

	hospitals, err := service.Search(context.Background(), params)

	assert.NoError(t, err)
	assert.Len(t, hospitals, 1)
	repo.AssertExpectations(t)
}

func TestHospitalService_Rank(t *testing.T) {
	repo := new(MockHospitalRepository)
	repo.On("List", mock.Anything, mock.AnythingOfType("repositories.HospitalFilter")).
		Return([]*entities.Hospital{chennaiHospital()}, nil)

	service := services.NewHospitalService(repo, nil, services.NewGeoRankService(0))

	ranked := service.Rank(context.Background(), services.RankRequest{
		Location: entities.Coordinates{Latitude: 13.08, Longitude: 80.27},
		Mode:     services.FilterModeAll,
	})

	assert.Len(t, ranked, 1)
	assert.NotNil(t, ranked[0].DistanceKm)
	assert.NotEmpty(t, ranked[0].Distance)
}

func TestHospitalService_Rank_CatalogErrorYieldsEmpty(t *testing.T) {
	repo := new(MockHospitalRepository)
	repo.On("List", mock.Anything, mock.AnythingOfType("repositories.HospitalFilter")).
		Return(nil, errors.New("db down"))

	service := services.NewHospitalService(repo, nil, services.NewGeoRankService(0))

	ranked := service.Rank(context.Background(), services.RankRequest{
		Location: entities.Coordinates{Latitude: 13.08, Longitude: 80.27},
		Mode:     services.FilterModeNearby,
	})

	assert.Empty(t, ranked)
}

func TestHospitalService_Index_LogsAndContinuesOnFailure(t *testing.T) {
	repo := new(MockHospitalRepository)
	searchRepo := new(MockHospitalSearchRepository)
	searchRepo.On("Index", mock.Anything, mock.AnythingOfType("*entities.Hospital")).
		Return(errors.New("typesense unavailable"))

	service := services.NewHospitalService(repo, searchRepo, services.NewGeoRankService(0))

	service.Index(context.Background(), chennaiHospital())

	searchRepo.AssertExpectations(t)
}
