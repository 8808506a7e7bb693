package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// LayerName — имя слоя доказательств
type LayerName string

const (
	LayerGeofence LayerName = "geofence"
	LayerWeather  LayerName = "weather"
	LayerText     LayerName = "text"
	LayerImage    LayerName = "image"
	LayerReporter LayerName = "reporter"
)

// AllLayers возвращает все слои в каноническом порядке
func AllLayers() []LayerName {
	return []LayerName{LayerGeofence, LayerImage, LayerReporter, LayerText, LayerWeather}
}

// LayerStatus — исход оценки одного слоя
type LayerStatus string

const (
	// LayerPass — доказательства слоя говорят в пользу отчета
	LayerPass LayerStatus = "pass"
	// LayerFail — доказательства слоя говорят против отчета (низкий score),
	// это не ошибка выполнения
	LayerFail LayerStatus = "fail"
	// LayerSkip — слой не смог дать оценку (нет входных данных или источник
	// недоступен); исключается из числителя и знаменателя композитного score
	LayerSkip LayerStatus = "skip"
)

// LayerMetadata — типизированные метаданные слоя, вариант по layer_name
type LayerMetadata interface {
	Layer() LayerName
}

// GeofenceMetadata — метаданные геозонного слоя
type GeofenceMetadata struct {
	DistanceToCoastKm float64 `json:"distance_to_coast_km"`
	NearestPoint      string  `json:"nearest_point,omitempty"`
	IsInland          bool    `json:"is_inland"`
}

func (GeofenceMetadata) Layer() LayerName { return LayerGeofence }

// WeatherMetadata — метаданные погодного слоя
type WeatherMetadata struct {
	WeatherCondition string   `json:"weather_condition,omitempty"`
	MarineCondition  string   `json:"marine_condition,omitempty"`
	ThreatIndicators []string `json:"threat_indicators,omitempty"`
}

func (WeatherMetadata) Layer() LayerName { return LayerWeather }

// TextMetadata — метаданные текстового слоя
type TextMetadata struct {
	PredictedHazardType string  `json:"predicted_hazard_type,omitempty"`
	SimilarityScore     float64 `json:"similarity_score"`
	PanicLevel          float64 `json:"panic_level"`
	IsSpam              bool    `json:"is_spam"`
}

func (TextMetadata) Layer() LayerName { return LayerText }

// ImageMetadata — метаданные слоя изображений
type ImageMetadata struct {
	PredictedClass string  `json:"predicted_class,omitempty"`
	Confidence     float64 `json:"confidence"`
	IsMatch        bool    `json:"is_match"`
}

func (ImageMetadata) Layer() LayerName { return LayerImage }

// ReporterMetadata — метаданные слоя достоверности репортера
type ReporterMetadata struct {
	TotalReports       int     `json:"total_reports"`
	VerifiedReports    int     `json:"verified_reports"`
	HistoricalAccuracy float64 `json:"historical_accuracy"`
	CredibilityScore   float64 `json:"credibility_score"`
}

func (ReporterMetadata) Layer() LayerName { return LayerReporter }

// LayerResult — результат оценки одного слоя для одного отчета.
// Неизменяем после записи: повторный прогон создает новый набор.
type LayerResult struct {
	LayerName   LayerName     `json:"layer_name"`
	Status      LayerStatus   `json:"status"`
	Score       float64       `json:"score"`
	Confidence  float64       `json:"confidence"`
	Reasoning   string        `json:"reasoning,omitempty"`
	Metadata    LayerMetadata `json:"metadata,omitempty"`
	EvaluatedAt time.Time     `json:"evaluated_at"`
}

// layerResultAlias нужен, чтобы UnmarshalJSON не зацикливался
type layerResultAlias struct {
	LayerName   LayerName       `json:"layer_name"`
	Status      LayerStatus     `json:"status"`
	Score       float64         `json:"score"`
	Confidence  float64         `json:"confidence"`
	Reasoning   string          `json:"reasoning,omitempty"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	EvaluatedAt time.Time       `json:"evaluated_at"`
}

// UnmarshalJSON восстанавливает типизированные метаданные по layer_name
func (lr *LayerResult) UnmarshalJSON(data []byte) error {
	var alias layerResultAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	lr.LayerName = alias.LayerName
	lr.Status = alias.Status
	lr.Score = alias.Score
	lr.Confidence = alias.Confidence
	lr.Reasoning = alias.Reasoning
	lr.EvaluatedAt = alias.EvaluatedAt
	lr.Metadata = nil

	if len(alias.Metadata) == 0 || string(alias.Metadata) == "null" {
		return nil
	}

	meta, err := UnmarshalLayerMetadata(alias.LayerName, alias.Metadata)
	if err != nil {
		return err
	}
	lr.Metadata = meta
	return nil
}

// UnmarshalLayerMetadata декодирует метаданные в конкретный тип по имени слоя
func UnmarshalLayerMetadata(layer LayerName, data []byte) (LayerMetadata, error) {
	switch layer {
	case LayerGeofence:
		var m GeofenceMetadata
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal geofence metadata: %w", err)
		}
		return m, nil
	case LayerWeather:
		var m WeatherMetadata
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal weather metadata: %w", err)
		}
		return m, nil
	case LayerText:
		var m TextMetadata
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal text metadata: %w", err)
		}
		return m, nil
	case LayerImage:
		var m ImageMetadata
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal image metadata: %w", err)
		}
		return m, nil
	case LayerReporter:
		var m ReporterMetadata
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal reporter metadata: %w", err)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown layer name %q in metadata", layer)
	}
}
