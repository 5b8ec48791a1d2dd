package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medilinkx/benefits-backend/internal/application/services"
	"github.com/medilinkx/benefits-backend/internal/domain/entities"
	apperrors "github.com/medilinkx/benefits-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func schemeCatalog() []*entities.Scheme {
	return []*entities.Scheme{
		{ID: "s-diabetes", Name: "Diabetes Care Plus", Category: entities.SchemeCategoryDiabetesCare},
		{ID: "s-general", Name: "General Health Cover", Category: entities.SchemeCategoryGeneralHealth},
		{ID: "s-family", Name: "Family Care Shield", Category: entities.SchemeCategoryFamilyCare},
		{ID: "s-emergency", Name: "Emergency Care Guard", Category: entities.SchemeCategoryEmergencyCare},
	}
}

func newRecommendationService(
	schemeRepo *MockSchemeRepository,
	healthIDRepo *MockHealthIDRepository,
	recommendationRepo *MockRecommendationRepository,
) *services.RecommendationService {
	eligibility := services.NewEligibilityService(services.AdditiveScoringStrategy{})
	return services.NewRecommendationService(schemeRepo, healthIDRepo, recommendationRepo, eligibility)
}

func TestRecommendationService_Recommend_AnonymousProfile(t *testing.T) {
	schemeRepo := new(MockSchemeRepository)
	schemeRepo.On("List", mock.Anything).Return(schemeCatalog(), nil)

	service := newRecommendationService(schemeRepo, nil, nil)

	scored, err := service.Recommend(context.Background(), services.RecommendRequest{
		Age:               45,
		MedicalConditions: "diabetes",
	})

	assert.NoError(t, err)
	assert.Len(t, scored, 4)
	assert.Equal(t, "s-diabetes", scored[0].ID)
	assert.Equal(t, 95, scored[0].MatchPercentage)
	assert.Equal(t, entities.RiskLevelMedium, scored[0].RiskLevel)
}

func TestRecommendationService_Recommend_FillsProfileFromHealthID(t *testing.T) {
	schemeRepo := new(MockSchemeRepository)
	healthIDRepo := new(MockHealthIDRepository)
	recommendationRepo := new(MockRecommendationRepository)

	healthID := testHealthID()
	healthIDRepo.On("GetByID", mock.Anything, "hid-1").Return(healthID, nil)
	schemeRepo.On("List", mock.Anything).Return(schemeCatalog(), nil)

	var stored *entities.Recommendation
	recommendationRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Recommendation")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*entities.Recommendation)
		}).Return(nil)

	service := newRecommendationService(schemeRepo, healthIDRepo, recommendationRepo)

	scored, err := service.Recommend(context.Background(), services.RecommendRequest{HealthIDID: "hid-1"})

	assert.NoError(t, err)
	// diabetes from the stored record drives the top match
	assert.Equal(t, "s-diabetes", scored[0].ID)

	assert.NotNil(t, stored)
	assert.Equal(t, "hid-1", stored.HealthIDID)
	assert.Equal(t, "additive", stored.Strategy)
	assert.Equal(t, 95, stored.EligibilityScore)
	assert.Equal(t, entities.RiskLevelMedium, stored.RiskLevel)
	assert.Len(t, stored.Matches, 4)
}

func TestRecommendationService_Recommend_StoreFailureIsNonFatal(t *testing.T) {
	schemeRepo := new(MockSchemeRepository)
	healthIDRepo := new(MockHealthIDRepository)
	recommendationRepo := new(MockRecommendationRepository)

	healthIDRepo.On("GetByID", mock.Anything, "hid-1").Return(testHealthID(), nil)
	schemeRepo.On("List", mock.Anything).Return(schemeCatalog(), nil)
	recommendationRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	service := newRecommendationService(schemeRepo, healthIDRepo, recommendationRepo)

	scored, err := service.Recommend(context.Background(), services.RecommendRequest{HealthIDID: "hid-1"})

	assert.NoError(t, err)
	assert.NotEmpty(t, scored)
}

func TestRecommendationService_Recommend_UnresolvedHealthIDSkipsStore(t *testing.T) {
	schemeRepo := new(MockSchemeRepository)
	healthIDRepo := new(MockHealthIDRepository)
	recommendationRepo := new(MockRecommendationRepository)

	healthIDRepo.On("GetByID", mock.Anything, "missing").Return(nil, apperrors.NewNotFoundError("health id not found"))
	schemeRepo.On("List", mock.Anything).Return(schemeCatalog(), nil)

	service := newRecommendationService(schemeRepo, healthIDRepo, recommendationRepo)

	scored, err := service.Recommend(context.Background(), services.RecommendRequest{
		HealthIDID:        "missing",
		Age:               30,
		MedicalConditions: "none",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, scored)
	recommendationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRecommendationService_Recommend_CatalogError(t *testing.T) {
	schemeRepo := new(MockSchemeRepository)
	schemeRepo.On("List", mock.Anything).Return(nil, errors.New("db down"))

	service := newRecommendationService(schemeRepo, nil, nil)

	_, err := service.Recommend(context.Background(), services.RecommendRequest{Age: 30})

	assert.Error(t, err)
}

func TestRecommendationService_Latest(t *testing.T) {
	recommendationRepo := new(MockRecommendationRepository)
	recommendationRepo.On("GetLatestByHealthID", mock.Anything, "hid-1").Return(&entities.Recommendation{
		ID:         "r-1",
		HealthIDID: "hid-1",
		CreatedAt:  time.Now(),
	}, nil)

	service := newRecommendationService(nil, nil, recommendationRepo)

	recommendation, err := service.Latest(context.Background(), "hid-1")

	assert.NoError(t, err)
	assert.Equal(t, "r-1", recommendation.ID)
}
