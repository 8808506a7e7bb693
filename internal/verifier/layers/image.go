package layers

import (
	"context"
	"fmt"

	"github.com/shenikar/coastal_verification_system/internal/models"
)

// ImageEvaluator оценивает приложенные изображения через внешний классификатор
type ImageEvaluator struct {
	client ImageClassifier
}

func NewImageEvaluator(client ImageClassifier) *ImageEvaluator {
	return &ImageEvaluator{client: client}
}

func (e *ImageEvaluator) Name() models.LayerName { return models.LayerImage }

// Evaluate: отчет без изображений — skip; совпадение класса изображения с
// опасностью дает score равный уверенности классификатора
func (e *ImageEvaluator) Evaluate(ctx context.Context, report *models.Report) (*models.LayerResult, error) {
	if len(report.Images) == 0 {
		return skipped(models.LayerImage, "report has no images"), nil
	}

	analysis, err := e.client.Classify(ctx, report.Images)
	if err != nil {
		return nil, fmt.Errorf("image classification: %w", err)
	}

	meta := models.ImageMetadata{
		PredictedClass: analysis.PredictedClass,
		Confidence:     analysis.Confidence,
		IsMatch:        analysis.IsMatch,
	}

	if !analysis.IsMatch {
		return &models.LayerResult{
			LayerName:  models.LayerImage,
			Status:     models.LayerFail,
			Score:      0.15,
			Confidence: clamp01(analysis.Confidence),
			Reasoning:  fmt.Sprintf("images classified as %q, not matching the reported hazard", analysis.PredictedClass),
			Metadata:   meta,
		}, nil
	}

	score := clamp01(analysis.Confidence)
	return &models.LayerResult{
		LayerName:  models.LayerImage,
		Status:     statusFor(score),
		Score:      score,
		Confidence: score,
		Reasoning:  fmt.Sprintf("images match hazard class %q with confidence %.2f", analysis.PredictedClass, analysis.Confidence),
		Metadata:   meta,
	}, nil
}
