package v1

import (
	"time"

	"github.com/google/uuid"
)

// SubmitReportRequest DTO для подачи отчета об опасности
// @Description DTO для подачи отчета об опасности
type SubmitReportRequest struct {
	HazardType   string   `json:"hazard_type" validate:"required,min=2,max=100"`
	Description  string   `json:"description,omitempty"`
	Latitude     float64  `json:"latitude" validate:"required,latitude"`
	Longitude    float64  `json:"longitude" validate:"required,longitude"`
	LocationName string   `json:"location_name,omitempty"`
	Severity     string   `json:"severity" validate:"omitempty,oneof=low medium high critical"`
	ReporterID   string   `json:"reporter_id" validate:"required"`
	Images       []string `json:"images,omitempty"`
}

// AnalystActionRequest DTO для решения аналитика (approve/reject)
// @Description DTO для решения аналитика
type AnalystActionRequest struct {
	AnalystID string `json:"analyst_id" validate:"required"`
	Reason    string `json:"reason,omitempty"`
}

// ClaimRequest DTO для захвата записи очереди
// @Description DTO для захвата записи очереди
type ClaimRequest struct {
	AnalystID string `json:"analyst_id" validate:"required"`
}

// LayerResultResponse DTO результата одного слоя.
// Score у skip-слоя отсутствует: слой исключен из оценки, а не равен нулю.
type LayerResultResponse struct {
	LayerName   string         `json:"layer_name"`
	Status      string         `json:"status"`
	Score       *float64       `json:"score,omitempty"`
	Confidence  *float64       `json:"confidence,omitempty"`
	Reasoning   string         `json:"reasoning,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	EvaluatedAt time.Time      `json:"evaluated_at"`
}

// VerificationResultResponse DTO результата попытки верификации
// @Description DTO результата попытки верификации
type VerificationResultResponse struct {
	ReportID       uuid.UUID             `json:"report_id"`
	ReportStatus   string                `json:"report_status,omitempty"`
	AttemptNumber  int                   `json:"attempt_number"`
	CompositeScore float64               `json:"composite_score"`
	Decision       string                `json:"decision"`
	WeightsUsed    map[string]float64    `json:"weights_used"`
	LayerResults   []LayerResultResponse `json:"layer_results"`
	ComputedAt     time.Time             `json:"computed_at"`
}

// QueueEntryResponse DTO записи очереди ручной проверки
// @Description DTO записи очереди ручной проверки
type QueueEntryResponse struct {
	ReportID       uuid.UUID         `json:"report_id"`
	HazardType     string            `json:"hazard_type"`
	Severity       string            `json:"severity,omitempty"`
	State          string            `json:"state"`
	CompositeScore float64           `json:"composite_score"`
	LayerSummary   map[string]string `json:"layer_summary,omitempty"`
	ClaimedBy      string            `json:"claimed_by,omitempty"`
	EnqueuedAt     time.Time         `json:"enqueued_at"`
}

// ApproveResponse DTO ответа на подтверждение отчета
// @Description DTO ответа на подтверждение отчета
type ApproveResponse struct {
	ReportID uuid.UUID `json:"report_id"`
	Status   string    `json:"status"`
	TicketID string    `json:"ticket_id"`
}

// RejectResponse DTO ответа на отклонение отчета
// @Description DTO ответа на отклонение отчета
type RejectResponse struct {
	ReportID uuid.UUID `json:"report_id"`
	Status   string    `json:"status"`
	Notified bool      `json:"notified"`
}

// LayerHealthResponse DTO здоровья одного слоя
type LayerHealthResponse struct {
	Status    string  `json:"status"`
	ErrorRate float64 `json:"error_rate"`
	Samples   int     `json:"samples"`
}

// HealthResponse DTO для /verification/health
// @Description DTO агрегированного здоровья слоев
type HealthResponse struct {
	Status string                         `json:"status"`
	Layers map[string]LayerHealthResponse `json:"layers"`
}
