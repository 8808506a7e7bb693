package verifier

import (
	"context"

	"github.com/shenikar/coastal_verification_system/internal/models"
)

// Evaluator — контракт одного слоя доказательств.
// Реализация не должна мутировать отчет или глобальное состояние.
// Отсутствие входных данных — это skip, а не ошибка; ошибка означает временный
// сбой, который координатор ретраит и затем деградирует в skip.
type Evaluator interface {
	Name() models.LayerName
	Evaluate(ctx context.Context, report *models.Report) (*models.LayerResult, error)
}
