package models

import (
	"time"

	"github.com/google/uuid"
)

// Decision — автоматический вердикт по композитному score
type Decision string

const (
	DecisionAutoApproved Decision = "auto_approved"
	DecisionAutoRejected Decision = "auto_rejected"
	DecisionNeedsReview  Decision = "needs_manual_review"
)

// VerificationResult — результат одной попытки оценки отчета.
// История попыток append-only: каждая попытка получает свой attempt_number.
type VerificationResult struct {
	ID             uuid.UUID             `json:"id"`
	ReportID       uuid.UUID             `json:"report_id"`
	AttemptNumber  int                   `json:"attempt_number"`
	LayerResults   []LayerResult         `json:"layer_results"`
	WeightsUsed    map[LayerName]float64 `json:"weights_used"`
	CompositeScore float64               `json:"composite_score"`
	Decision       Decision              `json:"decision"`
	ComputedAt     time.Time             `json:"computed_at"`
}

// AnalystAction — действие аналитика над отчетом
type AnalystAction string

const (
	ActionApprove AnalystAction = "approve"
	ActionReject  AnalystAction = "reject"
)

// AnalystDecision — решение аналитика, фиксируется в журнале аудита
type AnalystDecision struct {
	ID        uuid.UUID     `json:"id"`
	ReportID  uuid.UUID     `json:"report_id"`
	AnalystID string        `json:"analyst_id"`
	Action    AnalystAction `json:"action"`
	Reason    string        `json:"reason"`
	DecidedAt time.Time     `json:"decided_at"`
}

// QueueEntry — запись очереди ручной проверки
type QueueEntry struct {
	ReportID       uuid.UUID                 `json:"report_id"`
	HazardType     string                    `json:"hazard_type"`
	Severity       string                    `json:"severity"`
	State          VerificationState         `json:"state"`
	CompositeScore float64                   `json:"composite_score"`
	LayerSummary   map[LayerName]LayerStatus `json:"layer_summary,omitempty"`
	ClaimedBy      string                    `json:"claimed_by,omitempty"`
	EnqueuedAt     time.Time                 `json:"enqueued_at"`
}
