package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	PredictionsTotal      prometheus.Counter
	AlertasRegistradas    prometheus.Counter
	RecordatoriosEnviados prometheus.Counter
	PredictionLatency     prometheus.Histogram
	ErrorsCount           *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		PredictionsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "The total number of cancellation predictions requested",
		}),
		AlertasRegistradas: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alertas_registradas_total",
			Help:      "The total number of cancellation alerts stored",
		}),
		RecordatoriosEnviados: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recordatorios_enviados_total",
			Help:      "The total number of reminders delivered",
		}),
		PredictionLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "prediction_latency_seconds",
			Help:      "Time taken by the cancellation prediction service",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
