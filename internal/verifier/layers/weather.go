package layers

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/coastal_verification_system/internal/models"
)

// WeatherEvaluator сопоставляет заявленную опасность с фактическими погодными
// и морскими условиями в точке на момент отправки отчета
type WeatherEvaluator struct {
	client EnvironmentClient
}

func NewWeatherEvaluator(client EnvironmentClient) *WeatherEvaluator {
	return &WeatherEvaluator{client: client}
}

func (e *WeatherEvaluator) Name() models.LayerName { return models.LayerWeather }

// Evaluate строит score из числа индикаторов угрозы; совпадение индикатора с
// типом опасности из отчета поднимает score дополнительно
func (e *WeatherEvaluator) Evaluate(ctx context.Context, report *models.Report) (*models.LayerResult, error) {
	snapshot, err := e.client.Snapshot(ctx, report.Latitude, report.Longitude, report.SubmittedAt)
	if err != nil {
		return nil, fmt.Errorf("environment snapshot: %w", err)
	}

	meta := models.WeatherMetadata{
		WeatherCondition: snapshot.WeatherCondition,
		MarineCondition:  snapshot.MarineCondition,
		ThreatIndicators: snapshot.ThreatIndicators,
	}

	if len(snapshot.ThreatIndicators) == 0 {
		return &models.LayerResult{
			LayerName:  models.LayerWeather,
			Status:     models.LayerFail,
			Score:      0.2,
			Confidence: 0.8,
			Reasoning:  "no active threat indicators at the reported location",
			Metadata:   meta,
		}, nil
	}

	score := clamp01(0.5 + 0.1*float64(len(snapshot.ThreatIndicators)))
	matched := false
	for _, indicator := range snapshot.ThreatIndicators {
		if strings.EqualFold(indicator, report.HazardType) {
			matched = true
			score = clamp01(score + 0.2)
			break
		}
	}

	reasoning := fmt.Sprintf("%d active threat indicator(s)", len(snapshot.ThreatIndicators))
	if matched {
		reasoning += fmt.Sprintf(", including reported hazard %q", report.HazardType)
	}

	return &models.LayerResult{
		LayerName:  models.LayerWeather,
		Status:     statusFor(score),
		Score:      score,
		Confidence: 0.85,
		Reasoning:  reasoning,
		Metadata:   meta,
	}, nil
}
