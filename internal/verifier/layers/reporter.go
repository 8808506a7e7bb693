package layers

import (
	"context"
	"fmt"

	"github.com/shenikar/coastal_verification_system/internal/models"
)

// ReporterEvaluator оценивает историческую достоверность репортера
type ReporterEvaluator struct {
	store CredibilityStore
}

func NewReporterEvaluator(store CredibilityStore) *ReporterEvaluator {
	return &ReporterEvaluator{store: store}
}

func (e *ReporterEvaluator) Name() models.LayerName { return models.LayerReporter }

// Evaluate: у первого отчета репортера истории нет — skip, не штраф
func (e *ReporterEvaluator) Evaluate(ctx context.Context, report *models.Report) (*models.LayerResult, error) {
	profile, err := e.store.Credibility(ctx, report.ReporterID)
	if err != nil {
		return nil, fmt.Errorf("credibility lookup: %w", err)
	}

	if profile.TotalReports == 0 {
		return skipped(models.LayerReporter, "first-time reporter, no history"), nil
	}

	meta := models.ReporterMetadata{
		TotalReports:       profile.TotalReports,
		VerifiedReports:    profile.VerifiedReports,
		HistoricalAccuracy: profile.HistoricalAccuracy,
		CredibilityScore:   profile.CredibilityScore,
	}

	score := clamp01(profile.CredibilityScore)
	return &models.LayerResult{
		LayerName:  models.LayerReporter,
		Status:     statusFor(score),
		Score:      score,
		Confidence: clamp01(profile.HistoricalAccuracy),
		Reasoning:  fmt.Sprintf("%d of %d prior reports verified, credibility %.2f", profile.VerifiedReports, profile.TotalReports, profile.CredibilityScore),
		Metadata:   meta,
	}, nil
}
