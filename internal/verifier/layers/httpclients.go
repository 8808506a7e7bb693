package layers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTP-реализации контрактов внешних источников данных. Все источники
// принимают JSON POST и отвечают JSON-объектом; протокол единый, поэтому
// запрос делается общим хелпером.

func postJSON(ctx context.Context, client *http.Client, url string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s returned status %d", url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", url, err)
	}
	return nil
}

// HTTPGeofenceClient — клиент геозонного сервиса
type HTTPGeofenceClient struct {
	url        string
	httpClient *http.Client
}

func NewHTTPGeofenceClient(url string, timeout time.Duration) *HTTPGeofenceClient {
	return &HTTPGeofenceClient{url: url, httpClient: &http.Client{Timeout: timeout}}
}

func (c *HTTPGeofenceClient) Lookup(ctx context.Context, lat, lon float64) (*GeofenceInfo, error) {
	in := map[string]float64{"latitude": lat, "longitude": lon}
	var out struct {
		DistanceToCoastKm float64 `json:"distance_to_coast_km"`
		NearestPoint      string  `json:"nearest_point"`
		IsInland          bool    `json:"is_inland"`
	}
	if err := postJSON(ctx, c.httpClient, c.url, in, &out); err != nil {
		return nil, err
	}
	return &GeofenceInfo{
		DistanceToCoastKm: out.DistanceToCoastKm,
		NearestPoint:      out.NearestPoint,
		IsInland:          out.IsInland,
	}, nil
}

// HTTPEnvironmentClient — клиент провайдера погодных и морских условий
type HTTPEnvironmentClient struct {
	url        string
	httpClient *http.Client
}

func NewHTTPEnvironmentClient(url string, timeout time.Duration) *HTTPEnvironmentClient {
	return &HTTPEnvironmentClient{url: url, httpClient: &http.Client{Timeout: timeout}}
}

func (c *HTTPEnvironmentClient) Snapshot(ctx context.Context, lat, lon float64, at time.Time) (*EnvironmentSnapshot, error) {
	in := map[string]any{"latitude": lat, "longitude": lon, "at": at}
	var out struct {
		WeatherCondition string   `json:"weather_condition"`
		MarineCondition  string   `json:"marine_condition"`
		ThreatIndicators []string `json:"threat_indicators"`
	}
	if err := postJSON(ctx, c.httpClient, c.url, in, &out); err != nil {
		return nil, err
	}
	return &EnvironmentSnapshot{
		WeatherCondition: out.WeatherCondition,
		MarineCondition:  out.MarineCondition,
		ThreatIndicators: out.ThreatIndicators,
	}, nil
}

// HTTPTextClassifier — клиент классификатора описаний
type HTTPTextClassifier struct {
	url        string
	httpClient *http.Client
}

func NewHTTPTextClassifier(url string, timeout time.Duration) *HTTPTextClassifier {
	return &HTTPTextClassifier{url: url, httpClient: &http.Client{Timeout: timeout}}
}

func (c *HTTPTextClassifier) Classify(ctx context.Context, description string) (*TextAnalysis, error) {
	in := map[string]string{"description": description}
	var out struct {
		PredictedHazardType string  `json:"predicted_hazard_type"`
		SimilarityScore     float64 `json:"similarity_score"`
		PanicLevel          float64 `json:"panic_level"`
		IsSpam              bool    `json:"is_spam"`
	}
	if err := postJSON(ctx, c.httpClient, c.url, in, &out); err != nil {
		return nil, err
	}
	return &TextAnalysis{
		PredictedHazardType: out.PredictedHazardType,
		SimilarityScore:     out.SimilarityScore,
		PanicLevel:          out.PanicLevel,
		IsSpam:              out.IsSpam,
	}, nil
}

// HTTPImageClassifier — клиент классификатора изображений
type HTTPImageClassifier struct {
	url        string
	httpClient *http.Client
}

func NewHTTPImageClassifier(url string, timeout time.Duration) *HTTPImageClassifier {
	return &HTTPImageClassifier{url: url, httpClient: &http.Client{Timeout: timeout}}
}

func (c *HTTPImageClassifier) Classify(ctx context.Context, imageRefs []string) (*ImageAnalysis, error) {
	in := map[string][]string{"image_refs": imageRefs}
	var out struct {
		PredictedClass string  `json:"predicted_class"`
		Confidence     float64 `json:"confidence"`
		IsMatch        bool    `json:"is_match"`
	}
	if err := postJSON(ctx, c.httpClient, c.url, in, &out); err != nil {
		return nil, err
	}
	return &ImageAnalysis{
		PredictedClass: out.PredictedClass,
		Confidence:     out.Confidence,
		IsMatch:        out.IsMatch,
	}, nil
}

// HTTPCredibilityStore — клиент хранилища репутации репортеров
type HTTPCredibilityStore struct {
	url        string
	httpClient *http.Client
}

func NewHTTPCredibilityStore(url string, timeout time.Duration) *HTTPCredibilityStore {
	return &HTTPCredibilityStore{url: url, httpClient: &http.Client{Timeout: timeout}}
}

func (c *HTTPCredibilityStore) Credibility(ctx context.Context, reporterID string) (*ReporterProfile, error) {
	in := map[string]string{"reporter_id": reporterID}
	var out struct {
		TotalReports       int     `json:"total_reports"`
		VerifiedReports    int     `json:"verified_reports"`
		HistoricalAccuracy float64 `json:"historical_accuracy"`
		CredibilityScore   float64 `json:"credibility_score"`
	}
	if err := postJSON(ctx, c.httpClient, c.url, in, &out); err != nil {
		return nil, err
	}
	return &ReporterProfile{
		TotalReports:       out.TotalReports,
		VerifiedReports:    out.VerifiedReports,
		HistoricalAccuracy: out.HistoricalAccuracy,
		CredibilityScore:   out.CredibilityScore,
	}, nil
}
