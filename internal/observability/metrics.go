package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics — счетчики и гистограммы Prometheus движка верификации
type Metrics struct {
	EvaluationsTotal   *prometheus.CounterVec // label: decision={auto_approved,auto_rejected,needs_manual_review,failed}
	EvaluationDuration prometheus.Histogram

	LayerResultsTotal *prometheus.CounterVec // labels: layer, status={pass,fail,skip}
	LayerRetriesTotal *prometheus.CounterVec // label: layer

	QueueClaimsTotal   *prometheus.CounterVec // label: outcome={acquired,conflict,released}
	NotificationsTotal *prometheus.CounterVec // label: outcome={delivered,failed}
}

func newMetrics() *Metrics {
	return &Metrics{
		EvaluationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coastal_verify",
			Name:      "evaluations_total",
			Help:      "Completed evaluation attempts by decision band.",
		}, []string{"decision"}),
		EvaluationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "coastal_verify",
			Name:      "evaluation_duration_seconds",
			Help:      "Duration of a full evaluation fan-out including retries.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		}),
		LayerResultsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coastal_verify",
			Name:      "layer_results_total",
			Help:      "Layer evaluation outcomes by layer and status.",
		}, []string{"layer", "status"}),
		LayerRetriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coastal_verify",
			Name:      "layer_retries_total",
			Help:      "Transient layer failures that triggered a retry.",
		}, []string{"layer"}),
		QueueClaimsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coastal_verify",
			Name:      "queue_claims_total",
			Help:      "Review queue claim attempts by outcome.",
		}, []string{"outcome"}),
		NotificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coastal_verify",
			Name:      "notifications_total",
			Help:      "Reporter notification deliveries by outcome.",
		}, []string{"outcome"}),
	}
}

// NewMetrics создает метрики и регистрирует их в реестре Prometheus по умолчанию
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.EvaluationsTotal,
		m.EvaluationDuration,
		m.LayerResultsTotal,
		m.LayerRetriesTotal,
		m.QueueClaimsTotal,
		m.NotificationsTotal,
	)
	return m
}

// NewMetricsForTesting создает метрики без регистрации, чтобы избежать
// паники "already registered" при параллельных тестах
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
