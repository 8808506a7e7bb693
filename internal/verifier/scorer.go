package verifier

import (
	"fmt"

	"github.com/shenikar/coastal_verification_system/internal/models"
)

// ComputeComposite вычисляет композитный score 0-100 по слоям со статусом != skip.
// Базовые веса ренормализуются по не-skip слоям так, чтобы их сумма была 1.0;
// fail-слои участвуют со своим низким score, skip-слои исключаются и из числителя,
// и из знаменателя. Возвращает также weights_used — фактически примененные веса
// для аудита (skip-слои получают вес 0).
func ComputeComposite(results []models.LayerResult, baseWeights map[models.LayerName]float64) (float64, map[models.LayerName]float64, error) {
	weightsUsed := make(map[models.LayerName]float64, len(results))

	activeSum := 0.0
	for _, lr := range results {
		if lr.Status == models.LayerSkip {
			continue
		}
		w, ok := baseWeights[lr.LayerName]
		if !ok {
			return 0, nil, fmt.Errorf("no base weight for layer %q", lr.LayerName)
		}
		activeSum += w
	}

	if activeSum == 0 {
		return 0, nil, fmt.Errorf("%w", ErrInsufficientEvidence)
	}

	composite := 0.0
	for _, lr := range results {
		if lr.Status == models.LayerSkip {
			weightsUsed[lr.LayerName] = 0
			continue
		}
		normalized := baseWeights[lr.LayerName] / activeSum
		weightsUsed[lr.LayerName] = normalized
		composite += normalized * lr.Score
	}

	return composite * 100, weightsUsed, nil
}
