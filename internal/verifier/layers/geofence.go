package layers

import (
	"context"
	"fmt"

	"github.com/shenikar/coastal_verification_system/internal/models"
)

// maxCoastalDistanceKm — дальше этого расстояния от берега отчет о прибрежной
// опасности не получает геозонных баллов
const maxCoastalDistanceKm = 50.0

// GeofenceEvaluator оценивает правдоподобие координат отчета относительно
// береговой линии
type GeofenceEvaluator struct {
	client GeofenceClient
}

func NewGeofenceEvaluator(client GeofenceClient) *GeofenceEvaluator {
	return &GeofenceEvaluator{client: client}
}

func (e *GeofenceEvaluator) Name() models.LayerName { return models.LayerGeofence }

// Evaluate переводит расстояние до берега в score: на берегу ~1.0, на границе
// зоны ~0.0; точка в глубине суши — это fail, а не skip
func (e *GeofenceEvaluator) Evaluate(ctx context.Context, report *models.Report) (*models.LayerResult, error) {
	info, err := e.client.Lookup(ctx, report.Latitude, report.Longitude)
	if err != nil {
		return nil, fmt.Errorf("geofence lookup: %w", err)
	}

	meta := models.GeofenceMetadata{
		DistanceToCoastKm: info.DistanceToCoastKm,
		NearestPoint:      info.NearestPoint,
		IsInland:          info.IsInland,
	}

	if info.IsInland {
		return &models.LayerResult{
			LayerName:  models.LayerGeofence,
			Status:     models.LayerFail,
			Score:      0.1,
			Confidence: 0.95,
			Reasoning:  fmt.Sprintf("location is inland, %.1f km from the nearest coast", info.DistanceToCoastKm),
			Metadata:   meta,
		}, nil
	}

	score := clamp01(1 - info.DistanceToCoastKm/maxCoastalDistanceKm)
	return &models.LayerResult{
		LayerName:  models.LayerGeofence,
		Status:     statusFor(score),
		Score:      score,
		Confidence: 0.9,
		Reasoning:  fmt.Sprintf("%.1f km from coast (nearest point: %s)", info.DistanceToCoastKm, info.NearestPoint),
		Metadata:   meta,
	}, nil
}
