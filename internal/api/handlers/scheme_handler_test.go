package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/medilinkx/benefits-backend/internal/api/handlers"
	"github.com/medilinkx/benefits-backend/internal/application/services"
	"github.com/medilinkx/benefits-backend/internal/domain/entities"
	"github.com/medilinkx/benefits-backend/internal/domain/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type scoredSchemesResponse struct {
	Schemes []entities.ScoredScheme `json:"schemes"`
}

type recommendationsResponse struct {
	Recommendations []entities.ScoredScheme `json:"recommendations"`
	Count           int                     `json:"count"`
}

func newSchemeHandler(schemeRepo repositories.SchemeRepository, healthIDRepo repositories.HealthIDRepository) *handlers.SchemeHandler {
	eligibility := services.NewEligibilityService(services.AdditiveScoringStrategy{})
	recommendations := services.NewRecommendationService(schemeRepo, healthIDRepo, nil, eligibility)
	return handlers.NewSchemeHandler(schemeRepo, eligibility, recommendations)
}

func testCatalog() []*entities.Scheme {
	return []*entities.Scheme{
		{ID: "s-diabetes", Name: "Diabetes Care Plus", Category: entities.SchemeCategoryDiabetesCare, MatchPercentage: 80},
		{ID: "s-general", Name: "General Health Cover", Category: entities.SchemeCategoryGeneralHealth, MatchPercentage: 75},
	}
}

func TestSchemeHandler_ScoreSchemes_UsesRequestStrategy(t *testing.T) {
	mockSchemes := new(MockSchemeRepository)
	handler := newSchemeHandler(mockSchemes, new(MockHealthIDRepository))

	mockSchemes.On("List", mock.Anything).Return(testCatalog(), nil)

	body := `{"age":42,"medical_conditions":"diabetes","strategy":"override"}`
	req := httptest.NewRequest("POST", "/api/schemes/score", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.ScoreSchemes(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp scoredSchemesResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Len(t, resp.Schemes, 2)

	// Override strategy: diabetes-care matches at 95, general-health keeps
	// its catalog percentage for a middle-aged patient with conditions.
	assert.Equal(t, "s-diabetes", resp.Schemes[0].ID)
	assert.Equal(t, 95, resp.Schemes[0].MatchPercentage)
	assert.Empty(t, resp.Schemes[0].Reasoning)
	assert.Equal(t, 75, resp.Schemes[1].MatchPercentage)
}

func TestSchemeHandler_ScoreSchemes_DefaultsToConfiguredStrategy(t *testing.T) {
	mockSchemes := new(MockSchemeRepository)
	handler := newSchemeHandler(mockSchemes, new(MockHealthIDRepository))

	mockSchemes.On("List", mock.Anything).Return(testCatalog(), nil)

	body := `{"age":42,"medical_conditions":"diabetes"}`
	req := httptest.NewRequest("POST", "/api/schemes/score", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.ScoreSchemes(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp scoredSchemesResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, 95, resp.Schemes[0].MatchPercentage)
	assert.NotEmpty(t, resp.Schemes[0].Reasoning)
}

func TestSchemeHandler_ScoreSchemes_RejectsNegativeAge(t *testing.T) {
	handler := newSchemeHandler(new(MockSchemeRepository), new(MockHealthIDRepository))

	body := `{"age":-1}`
	req := httptest.NewRequest("POST", "/api/schemes/score", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.ScoreSchemes(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSchemeHandler_Recommend_ReturnsSortedMatches(t *testing.T) {
	mockSchemes := new(MockSchemeRepository)
	handler := newSchemeHandler(mockSchemes, new(MockHealthIDRepository))

	mockSchemes.On("List", mock.Anything).Return(testCatalog(), nil)

	body := `{"age":42,"medical_conditions":"diabetes"}`
	req := httptest.NewRequest("POST", "/api/recommendations", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Recommend(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp recommendationsResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "s-diabetes", resp.Recommendations[0].ID)
	assert.Equal(t, entities.RiskLevelMedium, resp.Recommendations[0].RiskLevel)
}

func TestSchemeHandler_Recommend_EmptyCatalog(t *testing.T) {
	mockSchemes := new(MockSchemeRepository)
	handler := newSchemeHandler(mockSchemes, new(MockHealthIDRepository))

	mockSchemes.On("List", mock.Anything).Return([]*entities.Scheme{}, nil)

	body := `{"age":30}`
	req := httptest.NewRequest("POST", "/api/recommendations", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Recommend(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp recommendationsResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, 0, resp.Count)
}
