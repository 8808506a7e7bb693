package layers

import (
	"context"
	"time"
)

// Контракты внешних источников данных. Реализации (геосервис, погодный
// провайдер, модели классификации, хранилище достоверности) живут вне этого
// сервиса и потребляются только через эти интерфейсы.

// GeofenceInfo — результат геозонного поиска
type GeofenceInfo struct {
	DistanceToCoastKm float64
	NearestPoint      string
	IsInland          bool
}

// GeofenceClient — поиск ближайшей береговой линии по координатам
type GeofenceClient interface {
	Lookup(ctx context.Context, lat, lon float64) (*GeofenceInfo, error)
}

// EnvironmentSnapshot — снимок окружающей среды в точке на момент времени
type EnvironmentSnapshot struct {
	WeatherCondition string
	MarineCondition  string
	ThreatIndicators []string
}

// EnvironmentClient — провайдер погодных и морских условий
type EnvironmentClient interface {
	Snapshot(ctx context.Context, lat, lon float64, at time.Time) (*EnvironmentSnapshot, error)
}

// TextAnalysis — результат классификации текста отчета
type TextAnalysis struct {
	PredictedHazardType string
	SimilarityScore     float64
	PanicLevel          float64
	IsSpam              bool
}

// TextClassifier — классификатор описаний опасности
type TextClassifier interface {
	Classify(ctx context.Context, description string) (*TextAnalysis, error)
}

// ImageAnalysis — результат классификации изображений отчета
type ImageAnalysis struct {
	PredictedClass string
	Confidence     float64
	IsMatch        bool
}

// ImageClassifier — классификатор приложенных изображений
type ImageClassifier interface {
	Classify(ctx context.Context, imageRefs []string) (*ImageAnalysis, error)
}

// ReporterProfile — история достоверности репортера
type ReporterProfile struct {
	TotalReports       int
	VerifiedReports    int
	HistoricalAccuracy float64
	CredibilityScore   float64
}

// CredibilityStore — хранилище репутации репортеров
type CredibilityStore interface {
	Credibility(ctx context.Context, reporterID string) (*ReporterProfile, error)
}
