package verifier

import (
	"fmt"
	"math"

	"github.com/shenikar/coastal_verification_system/internal/models"
)

// WeightEpsilon — допуск при проверке суммы весов
const WeightEpsilon = 1e-6

// Registry — упорядоченный список активных слоев с неизменяемым снимком весов.
// Снимок делается при создании, чтобы попытки оценки были воспроизводимы.
type Registry struct {
	evaluators []Evaluator
	weights    map[models.LayerName]float64
}

// NewRegistry создает реестр слоев и валидирует таблицу весов:
// для каждого слоя должен быть вес, сумма весов — 1.0 ± epsilon.
func NewRegistry(weights map[models.LayerName]float64, evaluators ...Evaluator) (*Registry, error) {
	if len(evaluators) == 0 {
		return nil, fmt.Errorf("registry requires at least one evaluator")
	}

	snapshot := make(map[models.LayerName]float64, len(weights))
	sum := 0.0
	for _, ev := range evaluators {
		w, ok := weights[ev.Name()]
		if !ok {
			return nil, fmt.Errorf("no weight configured for layer %q", ev.Name())
		}
		if w < 0 {
			return nil, fmt.Errorf("negative weight %f for layer %q", w, ev.Name())
		}
		snapshot[ev.Name()] = w
		sum += w
	}

	if math.Abs(sum-1.0) > WeightEpsilon {
		return nil, fmt.Errorf("layer weights must sum to 1.0, got %f", sum)
	}

	return &Registry{
		evaluators: evaluators,
		weights:    snapshot,
	}, nil
}

// Evaluators возвращает активные слои в порядке регистрации
func (r *Registry) Evaluators() []Evaluator {
	return r.evaluators
}

// Weights возвращает копию снимка базовых весов
func (r *Registry) Weights() map[models.LayerName]float64 {
	out := make(map[models.LayerName]float64, len(r.weights))
	for k, v := range r.weights {
		out[k] = v
	}
	return out
}
