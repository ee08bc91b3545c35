package checkout

import (
	"github.com/prometheus/client_golang/prometheus"
)

// NoopMetricsCollector is a no-op implementation of MetricsCollector
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordCalculation(string)  {}
func (n *NoopMetricsCollector) RecordFee(string, float64) {}

// PrometheusMetrics exports fee calculation metrics.
type PrometheusMetrics struct {
	calculations *prometheus.CounterVec
	feeAmount    *prometheus.HistogramVec
}

// NewPrometheusMetrics creates the collectors and registers them with reg.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "payfee",
			Name:      "calculations_total",
			Help:      "Payment fee calculations by outcome.",
		}, []string{"outcome"}),
		feeAmount: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "payfee",
			Name:      "fee_amount",
			Help:      "Rounded payment fee amounts attached to checkout totals.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 25, 50, 100, 250},
		}, []string{"payment_method"}),
	}
	reg.MustRegister(m.calculations, m.feeAmount)
	return m
}

func (m *PrometheusMetrics) RecordCalculation(outcome string) {
	m.calculations.WithLabelValues(outcome).Inc()
}

func (m *PrometheusMetrics) RecordFee(method string, amount float64) {
	m.feeAmount.WithLabelValues(method).Observe(amount)
}
