package v1

import (
	"encoding/json"

	"github.com/shenikar/coastal_verification_system/internal/models"
	"github.com/shenikar/coastal_verification_system/internal/verifier"
)

// DTOToReportModel преобразует DTO подачи отчета в доменную модель
func DTOToReportModel(dto SubmitReportRequest) *models.Report {
	return &models.Report{
		HazardType:   dto.HazardType,
		Description:  dto.Description,
		Latitude:     dto.Latitude,
		Longitude:    dto.Longitude,
		LocationName: dto.LocationName,
		Severity:     dto.Severity,
		ReporterID:   dto.ReporterID,
		Images:       dto.Images,
	}
}

// metadataToMap переводит типизированные метаданные слоя в generic key/value
// структуру для wire-формата
func metadataToMap(meta models.LayerMetadata) map[string]any {
	if meta == nil {
		return nil
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		return nil
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// ModelToLayerResultResponse преобразует результат слоя в DTO
func ModelToLayerResultResponse(lr models.LayerResult) LayerResultResponse {
	resp := LayerResultResponse{
		LayerName:   string(lr.LayerName),
		Status:      string(lr.Status),
		Reasoning:   lr.Reasoning,
		Metadata:    metadataToMap(lr.Metadata),
		EvaluatedAt: lr.EvaluatedAt,
	}
	// skip не имеет осмысленного score, наружу он не сериализуется
	if lr.Status != models.LayerSkip {
		score := lr.Score
		confidence := lr.Confidence
		resp.Score = &score
		resp.Confidence = &confidence
	}
	return resp
}

// ModelToVerificationResponse преобразует результат верификации в DTO
func ModelToVerificationResponse(result *models.VerificationResult, reportStatus models.VerificationState) *VerificationResultResponse {
	layers := make([]LayerResultResponse, len(result.LayerResults))
	for i, lr := range result.LayerResults {
		layers[i] = ModelToLayerResultResponse(lr)
	}

	weights := make(map[string]float64, len(result.WeightsUsed))
	for layer, w := range result.WeightsUsed {
		weights[string(layer)] = w
	}

	return &VerificationResultResponse{
		ReportID:       result.ReportID,
		ReportStatus:   string(reportStatus),
		AttemptNumber:  result.AttemptNumber,
		CompositeScore: result.CompositeScore,
		Decision:       string(result.Decision),
		WeightsUsed:    weights,
		LayerResults:   layers,
		ComputedAt:     result.ComputedAt,
	}
}

// stateForResponse восстанавливает статус отчета из автоматического вердикта
func stateForResponse(result *models.VerificationResult) models.VerificationState {
	switch result.Decision {
	case models.DecisionAutoApproved:
		return models.StateAutoApproved
	case models.DecisionAutoRejected:
		return models.StateAutoRejected
	default:
		return models.StateNeedsManualReview
	}
}

// ModelToQueueEntryResponse преобразует запись очереди в DTO
func ModelToQueueEntryResponse(entry *models.QueueEntry) *QueueEntryResponse {
	summary := make(map[string]string, len(entry.LayerSummary))
	for layer, status := range entry.LayerSummary {
		summary[string(layer)] = string(status)
	}
	return &QueueEntryResponse{
		ReportID:       entry.ReportID,
		HazardType:     entry.HazardType,
		Severity:       entry.Severity,
		State:          string(entry.State),
		CompositeScore: entry.CompositeScore,
		LayerSummary:   summary,
		ClaimedBy:      entry.ClaimedBy,
		EnqueuedAt:     entry.EnqueuedAt,
	}
}

// ModelsToQueueEntryResponses преобразует слайс записей очереди в DTO
func ModelsToQueueEntryResponses(entries []*models.QueueEntry) []*QueueEntryResponse {
	responses := make([]*QueueEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ModelToQueueEntryResponse(entry)
	}
	return responses
}

// HealthToResponse преобразует снимок здоровья слоев в DTO
func HealthToResponse(health map[models.LayerName]verifier.LayerHealth) *HealthResponse {
	overall := "ok"
	layers := make(map[string]LayerHealthResponse, len(health))
	for layer, lh := range health {
		layers[string(layer)] = LayerHealthResponse{
			Status:    string(lh.Status),
			ErrorRate: lh.ErrorRate,
			Samples:   lh.Samples,
		}
		if lh.Status != verifier.HealthUp {
			overall = "degraded"
		}
	}
	return &HealthResponse{
		Status: overall,
		Layers: layers,
	}
}
