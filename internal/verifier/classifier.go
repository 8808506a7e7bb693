package verifier

import "github.com/shenikar/coastal_verification_system/internal/models"

// Bands — пороги классификации композитного score.
// Границы включающие: score == ApproveAt это approve, score == ReviewAt это review.
type Bands struct {
	ApproveAt float64 // score >= ApproveAt -> auto_approved
	ReviewAt  float64 // ReviewAt <= score < ApproveAt -> needs_manual_review
}

// DefaultBands возвращает пороги по умолчанию: 75 / 40
func DefaultBands() Bands {
	return Bands{ApproveAt: 75, ReviewAt: 40}
}

// Classify детерминированно отображает score в вердикт
func (b Bands) Classify(score float64) models.Decision {
	switch {
	case score >= b.ApproveAt:
		return models.DecisionAutoApproved
	case score >= b.ReviewAt:
		return models.DecisionNeedsReview
	default:
		return models.DecisionAutoRejected
	}
}
