package config

import (
	"testing"
	"time"

	"github.com/shenikar/coastal_verification_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayerWeights_EmptyGivesDefaults(t *testing.T) {
	weights, err := parseLayerWeights("")

	require.NoError(t, err)
	assert.InDelta(t, 0.20, weights[models.LayerGeofence], 1e-9)
	assert.InDelta(t, 0.25, weights[models.LayerWeather], 1e-9)
	assert.InDelta(t, 0.25, weights[models.LayerText], 1e-9)
	assert.InDelta(t, 0.20, weights[models.LayerImage], 1e-9)
	assert.InDelta(t, 0.10, weights[models.LayerReporter], 1e-9)
}

func TestParseLayerWeights_Custom(t *testing.T) {
	weights, err := parseLayerWeights("geofence:0.5, weather:0.3, text:0.2")

	require.NoError(t, err)
	require.Len(t, weights, 3)
	assert.InDelta(t, 0.5, weights[models.LayerGeofence], 1e-9)
	assert.InDelta(t, 0.3, weights[models.LayerWeather], 1e-9)
	assert.InDelta(t, 0.2, weights[models.LayerText], 1e-9)
}

func TestParseLayerWeights_MalformedEntry(t *testing.T) {
	_, err := parseLayerWeights("geofence=0.5")

	require.Error(t, err)
	assert.ErrorContains(t, err, "expected name:weight")
}

func TestParseLayerWeights_UnknownLayer(t *testing.T) {
	_, err := parseLayerWeights("sonar:1.0")

	require.Error(t, err)
	assert.ErrorContains(t, err, `unknown layer "sonar"`)
}

func TestParseLayerWeights_BadNumber(t *testing.T) {
	_, err := parseLayerWeights("geofence:heavy")

	require.Error(t, err)
	assert.ErrorContains(t, err, `invalid weight for layer "geofence"`)
}

func TestValidate_WeightsMustSumToOne(t *testing.T) {
	cfg := &Config{
		LayerWeights: map[models.LayerName]float64{
			models.LayerGeofence: 0.5,
			models.LayerWeather:  0.6,
		},
		ApproveThreshold: 75,
		ReviewThreshold:  40,
	}

	err := cfg.validate()

	require.Error(t, err)
	assert.ErrorContains(t, err, "must sum to 1.0")
}

func TestValidate_NegativeWeight(t *testing.T) {
	cfg := &Config{
		LayerWeights: map[models.LayerName]float64{
			models.LayerGeofence: 1.2,
			models.LayerWeather:  -0.2,
		},
		ApproveThreshold: 75,
		ReviewThreshold:  40,
	}

	err := cfg.validate()

	require.Error(t, err)
	assert.ErrorContains(t, err, "must be non-negative")
}

func TestValidate_ThresholdOrdering(t *testing.T) {
	cfg := &Config{
		LayerWeights:     defaultLayerWeights(),
		ApproveThreshold: 40,
		ReviewThreshold:  75,
	}

	err := cfg.validate()

	require.Error(t, err)
	assert.ErrorContains(t, err, "REVIEW_THRESHOLD")
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/coastal")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.InDelta(t, 75.0, cfg.ApproveThreshold, 1e-9)
	assert.InDelta(t, 40.0, cfg.ReviewThreshold, 1e-9)
	assert.Equal(t, 5*time.Second, cfg.LayerTimeout)
	assert.Equal(t, 2, cfg.LayerMaxRetries)
	assert.Equal(t, 10*time.Minute, cfg.ClaimTTL)
	assert.InDelta(t, 0.25, cfg.LayerWeights[models.LayerWeather], 1e-9)
}

func TestLoadConfig_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestLoadConfig_APIKeys(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/coastal")
	t.Setenv("API_KEYS", "key-one, key-two ,key-three")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, []string{"key-one", "key-two", "key-three"}, cfg.APIKeys)
}

func TestLoadConfig_CustomWeightsAndThresholds(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/coastal")
	t.Setenv("LAYER_WEIGHTS", "geofence:0.5,weather:0.5")
	t.Setenv("APPROVE_THRESHOLD", "90")
	t.Setenv("REVIEW_THRESHOLD", "50")
	t.Setenv("CLAIM_TTL", "30m")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	require.Len(t, cfg.LayerWeights, 2)
	assert.InDelta(t, 0.5, cfg.LayerWeights[models.LayerGeofence], 1e-9)
	assert.InDelta(t, 90.0, cfg.ApproveThreshold, 1e-9)
	assert.Equal(t, 30*time.Minute, cfg.ClaimTTL)
}

func TestLoadConfig_InvalidWeightsRejected(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/coastal")
	t.Setenv("LAYER_WEIGHTS", "geofence:0.5,weather:0.6")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.ErrorContains(t, err, "must sum to 1.0")
}
