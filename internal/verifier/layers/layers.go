package layers

import (
	"github.com/shenikar/coastal_verification_system/internal/models"
)

// statusFor разделяет pass/fail по вкладу слоя: score ниже 0.5 активно
// свидетельствует против отчета
func statusFor(score float64) models.LayerStatus {
	if score >= 0.5 {
		return models.LayerPass
	}
	return models.LayerFail
}

// skipped строит skip-результат: слой исключается из score, а не учитывается нулем
func skipped(name models.LayerName, reasoning string) *models.LayerResult {
	return &models.LayerResult{
		LayerName: name,
		Status:    models.LayerSkip,
		Reasoning: reasoning,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
