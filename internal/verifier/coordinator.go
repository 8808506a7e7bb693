package verifier

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/coastal_verification_system/internal/models"
	"github.com/shenikar/coastal_verification_system/internal/observability"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// CoordinatorOptions — настройки координатора оценки
type CoordinatorOptions struct {
	LayerTimeout  time.Duration // таймаут одного вызова слоя
	MaxRetries    int           // дополнительные попытки при временном сбое
	BaseDelay     time.Duration // базовая задержка экспоненциального бэкоффа
	MaxConcurrent int           // потолок параллельных вызовов слоев
}

// Coordinator запускает все слои для одного отчета параллельно и собирает
// полный набор LayerResult. Гарантирует не более одной одновременной оценки
// на report_id.
type Coordinator struct {
	registry *Registry
	logger   *logrus.Logger
	clock    clockwork.Clock
	metrics  *observability.Metrics
	health   *HealthTracker
	opts     CoordinatorOptions

	mu       sync.Mutex
	inFlight map[uuid.UUID]struct{}
}

// NewCoordinator создает координатор оценки
func NewCoordinator(registry *Registry, logger *logrus.Logger, clock clockwork.Clock, metrics *observability.Metrics, health *HealthTracker, opts CoordinatorOptions) *Coordinator {
	if opts.LayerTimeout <= 0 {
		opts.LayerTimeout = 5 * time.Second
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = 500 * time.Millisecond
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = len(registry.Evaluators())
	}

	return &Coordinator{
		registry: registry,
		logger:   logger,
		clock:    clock,
		metrics:  metrics,
		health:   health,
		opts:     opts,
		inFlight: make(map[uuid.UUID]struct{}),
	}
}

// Acquire захватывает эксклюзивную блокировку оценки для отчета.
// Возвращает функцию освобождения; при уже идущей оценке — ErrEvaluationInFlight.
func (c *Coordinator) Acquire(reportID uuid.UUID) (func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, busy := c.inFlight[reportID]; busy {
		return nil, fmt.Errorf("report %s: %w", reportID, ErrEvaluationInFlight)
	}
	c.inFlight[reportID] = struct{}{}

	var once sync.Once
	release := func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.inFlight, reportID)
			c.mu.Unlock()
		})
	}
	return release, nil
}

// Run выполняет фан-аут по всем зарегистрированным слоям без захвата блокировки.
// Результаты собираются детерминированно по имени слоя независимо от порядка
// завершения. При отмене контекста частичные результаты отбрасываются.
func (c *Coordinator) Run(ctx context.Context, report *models.Report) ([]models.LayerResult, error) {
	started := c.clock.Now()
	evaluators := c.registry.Evaluators()
	results := make([]models.LayerResult, len(evaluators))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.MaxConcurrent)
	for i, ev := range evaluators {
		g.Go(func() error {
			results[i] = c.evaluateLayer(gctx, ev, report)
			return nil
		})
	}
	// Горутины слоев ошибок не возвращают: сбои деградируют в skip внутри
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("evaluation of report %s cancelled: %w", report.ID, err)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].LayerName < results[j].LayerName
	})

	if c.metrics != nil {
		for _, lr := range results {
			c.metrics.LayerResultsTotal.WithLabelValues(string(lr.LayerName), string(lr.Status)).Inc()
		}
		c.metrics.EvaluationDuration.Observe(c.clock.Since(started).Seconds())
	}

	allSkipped := true
	for _, lr := range results {
		if lr.Status != models.LayerSkip {
			allSkipped = false
			break
		}
	}
	if allSkipped {
		return nil, fmt.Errorf("report %s: %w", report.ID, ErrInsufficientEvidence)
	}

	return results, nil
}

// Evaluate — захват блокировки плюс Run, для вызывающих без своей оркестровки
func (c *Coordinator) Evaluate(ctx context.Context, report *models.Report) ([]models.LayerResult, error) {
	release, err := c.Acquire(report.ID)
	if err != nil {
		return nil, err
	}
	defer release()
	return c.Run(ctx, report)
}

// Health возвращает снимок здоровья слоев
func (c *Coordinator) Health() map[models.LayerName]LayerHealth {
	return c.health.Snapshot()
}

// evaluateLayer вызывает один слой с таймаутом и ретраями; после исчерпания
// бюджета ретраев деградирует в skip с причиной "timeout" или "unavailable"
func (c *Coordinator) evaluateLayer(ctx context.Context, ev Evaluator, report *models.Report) models.LayerResult {
	log := c.logger.WithFields(logrus.Fields{
		"component": "coordinator",
		"layer":     ev.Name(),
		"report_id": report.ID,
	})

	delay := c.opts.BaseDelay
	var lastErr error
	for attempt := 0; attempt <= c.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			if c.metrics != nil {
				c.metrics.LayerRetriesTotal.WithLabelValues(string(ev.Name())).Inc()
			}
			select {
			case <-ctx.Done():
				c.health.Record(ev.Name(), true)
				return c.skippedResult(ev.Name(), "unavailable")
			case <-c.clock.After(delay):
			}
			delay *= 2
		}

		layerCtx, cancel := context.WithTimeout(ctx, c.opts.LayerTimeout)
		result, err := ev.Evaluate(layerCtx, report)
		cancel()

		if err == nil && result != nil {
			if result.EvaluatedAt.IsZero() {
				result.EvaluatedAt = c.clock.Now()
			}
			c.health.Record(ev.Name(), false)
			return *result
		}

		lastErr = err
		log.WithError(err).Warnf("Layer evaluation failed, attempt %d of %d", attempt+1, c.opts.MaxRetries+1)
	}

	c.health.Record(ev.Name(), true)

	reasoning := "unavailable"
	if errors.Is(lastErr, context.DeadlineExceeded) || errors.Is(lastErr, ErrLayerTimeout) {
		reasoning = "timeout"
	}
	log.WithError(lastErr).Warnf("Layer degraded to skip: %s", reasoning)
	return c.skippedResult(ev.Name(), reasoning)
}

func (c *Coordinator) skippedResult(name models.LayerName, reasoning string) models.LayerResult {
	return models.LayerResult{
		LayerName:   name,
		Status:      models.LayerSkip,
		Reasoning:   reasoning,
		EvaluatedAt: c.clock.Now(),
	}
}
