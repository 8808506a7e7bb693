package verifier

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/coastal_verification_system/internal/models"
	"github.com/shenikar/coastal_verification_system/internal/observability"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEvaluator — управляемый слой для тестов координатора
type stubEvaluator struct {
	name models.LayerName
	fn   func(ctx context.Context, report *models.Report) (*models.LayerResult, error)
}

func (s *stubEvaluator) Name() models.LayerName { return s.name }

func (s *stubEvaluator) Evaluate(ctx context.Context, report *models.Report) (*models.LayerResult, error) {
	return s.fn(ctx, report)
}

func passStub(name models.LayerName, score float64) *stubEvaluator {
	return &stubEvaluator{
		name: name,
		fn: func(ctx context.Context, report *models.Report) (*models.LayerResult, error) {
			return &models.LayerResult{
				LayerName:  name,
				Status:     models.LayerPass,
				Score:      score,
				Confidence: 0.9,
			}, nil
		},
	}
}

func skipStub(name models.LayerName) *stubEvaluator {
	return &stubEvaluator{
		name: name,
		fn: func(ctx context.Context, report *models.Report) (*models.LayerResult, error) {
			return &models.LayerResult{
				LayerName: name,
				Status:    models.LayerSkip,
				Reasoning: "no input data",
			}, nil
		},
	}
}

func newTestCoordinator(t *testing.T, opts CoordinatorOptions, evaluators ...Evaluator) *Coordinator {
	t.Helper()

	weights := make(map[models.LayerName]float64, len(evaluators))
	per := 1.0 / float64(len(evaluators))
	for _, ev := range evaluators {
		weights[ev.Name()] = per
	}

	registry, err := NewRegistry(weights, evaluators...)
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	health := NewHealthTracker(50, 0.1, 0.5)
	return NewCoordinator(registry, logger, clockwork.NewRealClock(), observability.NewMetricsForTesting(), health, opts)
}

func testReport() *models.Report {
	return &models.Report{
		ID:         uuid.New(),
		HazardType: "rip_current",
		ReporterID: "reporter-1",
	}
}

func TestRun_CollectsResultsInLayerNameOrder(t *testing.T) {
	// Слои регистрируются не по алфавиту; результаты должны быть отсортированы
	coordinator := newTestCoordinator(t, CoordinatorOptions{},
		passStub(models.LayerWeather, 0.8),
		passStub(models.LayerGeofence, 0.9),
		passStub(models.LayerText, 0.7),
		passStub(models.LayerReporter, 0.6),
	)

	results, err := coordinator.Run(context.Background(), testReport())

	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.Equal(t, models.LayerGeofence, results[0].LayerName)
	assert.Equal(t, models.LayerReporter, results[1].LayerName)
	assert.Equal(t, models.LayerText, results[2].LayerName)
	assert.Equal(t, models.LayerWeather, results[3].LayerName)
}

func TestRun_AllLayersSkipped(t *testing.T) {
	coordinator := newTestCoordinator(t, CoordinatorOptions{},
		skipStub(models.LayerGeofence),
		skipStub(models.LayerWeather),
	)

	results, err := coordinator.Run(context.Background(), testReport())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientEvidence)
	assert.Nil(t, results)
}

func TestRun_TimeoutDegradesToSkip(t *testing.T) {
	blocking := &stubEvaluator{
		name: models.LayerWeather,
		fn: func(ctx context.Context, report *models.Report) (*models.LayerResult, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}

	coordinator := newTestCoordinator(t, CoordinatorOptions{
		LayerTimeout: 5 * time.Millisecond,
		BaseDelay:    time.Millisecond,
	}, passStub(models.LayerGeofence, 0.9), blocking)

	results, err := coordinator.Run(context.Background(), testReport())

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, models.LayerPass, results[0].Status)
	assert.Equal(t, models.LayerSkip, results[1].Status)
	assert.Equal(t, "timeout", results[1].Reasoning)
}

func TestRun_UnavailableDegradesToSkipAfterRetries(t *testing.T) {
	var attempts atomic.Int32
	failing := &stubEvaluator{
		name: models.LayerImage,
		fn: func(ctx context.Context, report *models.Report) (*models.LayerResult, error) {
			attempts.Add(1)
			return nil, errors.New("connection refused")
		},
	}

	coordinator := newTestCoordinator(t, CoordinatorOptions{
		MaxRetries: 2,
		BaseDelay:  time.Millisecond,
	}, passStub(models.LayerGeofence, 0.9), failing)

	results, err := coordinator.Run(context.Background(), testReport())

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, models.LayerSkip, results[1].Status)
	assert.Equal(t, "unavailable", results[1].Reasoning)
	// Первая попытка плюс два ретрая
	assert.Equal(t, int32(3), attempts.Load())
}

func TestAcquire_SingleEvaluationPerReport(t *testing.T) {
	coordinator := newTestCoordinator(t, CoordinatorOptions{}, passStub(models.LayerGeofence, 0.9))
	report := testReport()

	// Первый захват успешен и держится до release
	release, err := coordinator.Acquire(report.ID)
	require.NoError(t, err)

	const n = 10
	var wg sync.WaitGroup
	inFlightErrs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := coordinator.Evaluate(context.Background(), report)
			inFlightErrs <- err
		}()
	}
	wg.Wait()
	close(inFlightErrs)

	for err := range inFlightErrs {
		assert.ErrorIs(t, err, ErrEvaluationInFlight)
	}

	// После освобождения оценка снова доступна
	release()
	_, err = coordinator.Evaluate(context.Background(), report)
	require.NoError(t, err)
}

func TestAcquire_ReleaseIsIdempotent(t *testing.T) {
	coordinator := newTestCoordinator(t, CoordinatorOptions{}, passStub(models.LayerGeofence, 0.9))
	reportID := uuid.New()

	release, err := coordinator.Acquire(reportID)
	require.NoError(t, err)

	release()
	release() // Повторный вызов не должен паниковать или ломать состояние

	_, err = coordinator.Acquire(reportID)
	require.NoError(t, err)
}

func TestAcquire_DifferentReportsDoNotContend(t *testing.T) {
	coordinator := newTestCoordinator(t, CoordinatorOptions{}, passStub(models.LayerGeofence, 0.9))

	releaseA, err := coordinator.Acquire(uuid.New())
	require.NoError(t, err)
	defer releaseA()

	releaseB, err := coordinator.Acquire(uuid.New())
	require.NoError(t, err)
	defer releaseB()
}

func TestRun_ContextCancellationDiscardsPartialResults(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	slow := &stubEvaluator{
		name: models.LayerWeather,
		fn: func(ctx context.Context, report *models.Report) (*models.LayerResult, error) {
			cancel()
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}

	coordinator := newTestCoordinator(t, CoordinatorOptions{
		LayerTimeout: 5 * time.Millisecond,
		BaseDelay:    time.Millisecond,
	}, passStub(models.LayerGeofence, 0.9), slow)

	results, err := coordinator.Run(ctx, testReport())

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
}

func TestHealth_TracksLayerFailures(t *testing.T) {
	failing := &stubEvaluator{
		name: models.LayerImage,
		fn: func(ctx context.Context, report *models.Report) (*models.LayerResult, error) {
			return nil, errors.New("connection refused")
		},
	}

	coordinator := newTestCoordinator(t, CoordinatorOptions{
		BaseDelay: time.Millisecond,
	}, passStub(models.LayerGeofence, 0.9), failing)

	_, err := coordinator.Run(context.Background(), testReport())
	require.NoError(t, err)

	health := coordinator.Health()
	assert.Equal(t, HealthUp, health[models.LayerGeofence].Status)
	assert.Equal(t, HealthDown, health[models.LayerImage].Status)
	assert.InDelta(t, 1.0, health[models.LayerImage].ErrorRate, 1e-9)
}
