package verifier

import (
	"testing"

	"github.com/shenikar/coastal_verification_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_Valid(t *testing.T) {
	registry, err := NewRegistry(map[models.LayerName]float64{
		models.LayerGeofence: 0.6,
		models.LayerWeather:  0.4,
	}, passStub(models.LayerGeofence, 0.9), passStub(models.LayerWeather, 0.8))

	require.NoError(t, err)
	assert.Len(t, registry.Evaluators(), 2)
	assert.InDelta(t, 0.6, registry.Weights()[models.LayerGeofence], 1e-9)
}

func TestNewRegistry_MissingWeight(t *testing.T) {
	_, err := NewRegistry(map[models.LayerName]float64{
		models.LayerGeofence: 1.0,
	}, passStub(models.LayerGeofence, 0.9), passStub(models.LayerWeather, 0.8))

	require.Error(t, err)
	assert.ErrorContains(t, err, "no weight configured")
}

func TestNewRegistry_NegativeWeight(t *testing.T) {
	_, err := NewRegistry(map[models.LayerName]float64{
		models.LayerGeofence: 1.2,
		models.LayerWeather:  -0.2,
	}, passStub(models.LayerGeofence, 0.9), passStub(models.LayerWeather, 0.8))

	require.Error(t, err)
	assert.ErrorContains(t, err, "negative weight")
}

func TestNewRegistry_WeightsMustSumToOne(t *testing.T) {
	_, err := NewRegistry(map[models.LayerName]float64{
		models.LayerGeofence: 0.6,
		models.LayerWeather:  0.6,
	}, passStub(models.LayerGeofence, 0.9), passStub(models.LayerWeather, 0.8))

	require.Error(t, err)
	assert.ErrorContains(t, err, "must sum to 1.0")
}

func TestRegistry_WeightsReturnsCopy(t *testing.T) {
	registry, err := NewRegistry(map[models.LayerName]float64{
		models.LayerGeofence: 1.0,
	}, passStub(models.LayerGeofence, 0.9))
	require.NoError(t, err)

	weights := registry.Weights()
	weights[models.LayerGeofence] = 0.0

	assert.InDelta(t, 1.0, registry.Weights()[models.LayerGeofence], 1e-9)
}
