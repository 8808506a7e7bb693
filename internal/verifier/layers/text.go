package layers

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/coastal_verification_system/internal/models"
)

// TextEvaluator оценивает описание отчета через внешний текстовый классификатор
type TextEvaluator struct {
	client TextClassifier
}

func NewTextEvaluator(client TextClassifier) *TextEvaluator {
	return &TextEvaluator{client: client}
}

func (e *TextEvaluator) Name() models.LayerName { return models.LayerText }

// Evaluate: пустое описание — skip; спам — fail с минимальным score;
// иначе score = похожесть на заявленный тип опасности с бонусом за совпадение
// предсказанного типа
func (e *TextEvaluator) Evaluate(ctx context.Context, report *models.Report) (*models.LayerResult, error) {
	description := strings.TrimSpace(report.Description)
	if description == "" {
		return skipped(models.LayerText, "report has no description"), nil
	}

	analysis, err := e.client.Classify(ctx, description)
	if err != nil {
		return nil, fmt.Errorf("text classification: %w", err)
	}

	meta := models.TextMetadata{
		PredictedHazardType: analysis.PredictedHazardType,
		SimilarityScore:     analysis.SimilarityScore,
		PanicLevel:          analysis.PanicLevel,
		IsSpam:              analysis.IsSpam,
	}

	if analysis.IsSpam {
		return &models.LayerResult{
			LayerName:  models.LayerText,
			Status:     models.LayerFail,
			Score:      0.05,
			Confidence: 0.9,
			Reasoning:  "description classified as spam",
			Metadata:   meta,
		}, nil
	}

	score := clamp01(analysis.SimilarityScore)
	matched := strings.EqualFold(analysis.PredictedHazardType, report.HazardType)
	if matched {
		score = clamp01(score + 0.15)
	}

	reasoning := fmt.Sprintf("similarity %.2f, predicted hazard %q", analysis.SimilarityScore, analysis.PredictedHazardType)
	if matched {
		reasoning += " matches the report"
	}

	return &models.LayerResult{
		LayerName:  models.LayerText,
		Status:     statusFor(score),
		Score:      score,
		Confidence: clamp01(1 - analysis.PanicLevel*0.3),
		Reasoning:  reasoning,
		Metadata:   meta,
	}, nil
}
