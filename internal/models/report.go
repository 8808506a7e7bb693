package models

import (
	"time"

	"github.com/google/uuid"
)

// VerificationState — статус верификации отчета
type VerificationState string

const (
	StatePending           VerificationState = "pending"
	StateAutoApproved      VerificationState = "auto_approved"
	StateAutoRejected      VerificationState = "auto_rejected"
	StateNeedsManualReview VerificationState = "needs_manual_review"
	StateInvestigating     VerificationState = "investigating"
	StateVerified          VerificationState = "verified"
	StateRejected          VerificationState = "rejected"
)

// IsTerminal сообщает, является ли статус терминальным
func (s VerificationState) IsTerminal() bool {
	return s == StateVerified || s == StateRejected
}

// Report представляет отчет о прибрежной опасности, отправленный гражданином
type Report struct {
	ID           uuid.UUID         `json:"id"`
	HazardType   string            `json:"hazard_type"`
	Description  string            `json:"description"`
	Latitude     float64           `json:"latitude"`
	Longitude    float64           `json:"longitude"`
	LocationName string            `json:"location_name,omitempty"`
	Severity     string            `json:"severity"`
	ReporterID   string            `json:"reporter_id"`
	Images       []string          `json:"images,omitempty"`
	Status       VerificationState `json:"status"`
	TicketID     string            `json:"ticket_id,omitempty"`
	SubmittedAt  time.Time         `json:"submitted_at"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
