package services_test

import (
	"context"
	"testing"

	"github.com/medilinkx/benefits-backend/internal/application/services"
	apperrors "github.com/medilinkx/benefits-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPreferredLocationService_Add(t *testing.T) {
	repo := new(MockPreferredLocationRepository)
	repo.On("Get", mock.Anything, "hid-1").Return([]string{"Chennai"}, nil)
	repo.On("Save", mock.Anything, "hid-1", []string{"Chennai", "Trichy"}).Return(nil)

	service := services.NewPreferredLocationService(repo)

	locations, err := service.Add(context.Background(), "hid-1", "Trichy")

	assert.NoError(t, err)
	assert.Equal(t, []string{"Chennai", "Trichy"}, locations)
	repo.AssertExpectations(t)
}

func TestPreferredLocationService_Add_RejectsCaseInsensitiveDuplicate(t *testing.T) {
	repo := new(MockPreferredLocationRepository)
	repo.On("Get", mock.Anything, "hid-1").Return([]string{"Chennai"}, nil)

	service := services.NewPreferredLocationService(repo)

	_, err := service.Add(context.Background(), "hid-1", "chennai")

	appErr, ok := apperrors.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestPreferredLocationService_Add_RejectsBlank(t *testing.T) {
	repo := new(MockPreferredLocationRepository)
	service := services.NewPreferredLocationService(repo)

	_, err := service.Add(context.Background(), "hid-1", "   ")

	appErr, ok := apperrors.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestPreferredLocationService_Remove(t *testing.T) {
	repo := new(MockPreferredLocationRepository)
	repo.On("Get", mock.Anything, "hid-1").Return([]string{"Chennai", "Trichy"}, nil)
	repo.On("Save", mock.Anything, "hid-1", []string{"Chennai"}).Return(nil)

	service := services.NewPreferredLocationService(repo)

	locations, err := service.Remove(context.Background(), "hid-1", "TRICHY")

	assert.NoError(t, err)
	assert.Equal(t, []string{"Chennai"}, locations)
}

func TestPreferredLocationService_Remove_NotFound(t *testing.T) {
	repo := new(MockPreferredLocationRepository)
	repo.On("Get", mock.Anything, "hid-1").Return([]string{"Chennai"}, nil)

	service := services.NewPreferredLocationService(repo)

	_, err := service.Remove(context.Background(), "hid-1", "Madurai")

	appErr, ok := apperrors.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
}

func TestPreferredLocationService_Matches(t *testing.T) {
	service := services.NewPreferredLocationService(nil)

	assert.True(t, service.Matches("Trichy", []string{"trichy"}))
	assert.True(t, service.Matches("Trichy", []string{"Trichy District"}))
	assert.False(t, service.Matches("Chennai", []string{"Trichy"}))
	assert.False(t, service.Matches("Chennai", nil))
}
