package verifier

import (
	"sync"

	"github.com/shenikar/coastal_verification_system/internal/models"
)

// LayerHealthStatus — агрегированное состояние одного слоя
type LayerHealthStatus string

const (
	HealthUp       LayerHealthStatus = "up"
	HealthDegraded LayerHealthStatus = "degraded"
	HealthDown     LayerHealthStatus = "down"
)

// LayerHealth — снимок здоровья слоя для /verification/health
type LayerHealth struct {
	Status    LayerHealthStatus `json:"status"`
	ErrorRate float64           `json:"error_rate"`
	Samples   int               `json:"samples"`
}

// HealthTracker ведет скользящее окно исходов по каждому слою.
// Исход считается ошибкой, когда слой деградировал в skip из-за таймаута или
// недоступности; skip из-за отсутствия входных данных ошибкой не является.
type HealthTracker struct {
	mu         sync.Mutex
	window     int
	degradedAt float64
	downAt     float64
	outcomes   map[models.LayerName][]bool
}

// NewHealthTracker создает трекер со скользящим окном window исходов на слой
func NewHealthTracker(window int, degradedAt, downAt float64) *HealthTracker {
	if window < 1 {
		window = 50
	}
	return &HealthTracker{
		window:     window,
		degradedAt: degradedAt,
		downAt:     downAt,
		outcomes:   make(map[models.LayerName][]bool),
	}
}

// Record фиксирует исход вызова слоя
func (h *HealthTracker) Record(layer models.LayerName, failed bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	window := append(h.outcomes[layer], failed)
	if len(window) > h.window {
		window = window[len(window)-h.window:]
	}
	h.outcomes[layer] = window
}

// Snapshot возвращает текущее состояние всех слоев, по которым были вызовы
func (h *HealthTracker) Snapshot() map[models.LayerName]LayerHealth {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make(map[models.LayerName]LayerHealth, len(h.outcomes))
	for layer, window := range h.outcomes {
		failures := 0
		for _, failed := range window {
			if failed {
				failures++
			}
		}
		rate := 0.0
		if len(window) > 0 {
			rate = float64(failures) / float64(len(window))
		}

		status := HealthUp
		switch {
		case rate >= h.downAt:
			status = HealthDown
		case rate >= h.degradedAt:
			status = HealthDegraded
		}

		out[layer] = LayerHealth{
			Status:    status,
			ErrorRate: rate,
			Samples:   len(window),
		}
	}
	return out
}
