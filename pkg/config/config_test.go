package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_ScoringConfig(t *testing.T) {
	os.Setenv("SCORING_STRATEGY", "override")
	os.Setenv("NEARBY_RADIUS_KM", "25")
	defer func() {
		os.Unsetenv("SCORING_STRATEGY")
		os.Unsetenv("NEARBY_RADIUS_KM")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "override", cfg.Scoring.Strategy)
	assert.Equal(t, 25.0, cfg.Scoring.NearbyRadiusKm)
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("SCORING_STRATEGY")
	os.Unsetenv("NEARBY_RADIUS_KM")
	os.Unsetenv("DB_NAME")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "additive", cfg.Scoring.Strategy)
	assert.Equal(t, 10.0, cfg.Scoring.NearbyRadiusKm)
	assert.Equal(t, "medilinkx_benefits", cfg.Database.Database)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     5433,
		User:     "svc",
		Password: "secret",
		Database: "benefits",
		SSLMode:  "require",
	}

	assert.Equal(t, "host=db port=5433 user=svc password=secret dbname=benefits sslmode=require", cfg.DatabaseDSN())
}
