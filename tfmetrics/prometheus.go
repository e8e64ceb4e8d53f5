package tfmetrics

import "github.com/prometheus/client_golang/prometheus"

// PrometheusRecorder records registry operation outcomes as a single
// CounterVec partitioned by operation and outcome label.
type PrometheusRecorder struct {
	ops *prometheus.CounterVec
}

// NewPrometheusRecorder creates a PrometheusRecorder and registers its
// collector with reg. Passing prometheus.DefaultRegisterer matches the
// usual top-level registration call in a service's main package.
func NewPrometheusRecorder(reg prometheus.Registerer, namespace string) (*PrometheusRecorder, error) {
	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "tframe",
		Name:      "registry_operations_total",
		Help:      "Count of tframe registry operations by kind and outcome.",
	}, []string{"op", "outcome"})

	if err := reg.Register(ops); err != nil {
		return nil, err
	}
	return &PrometheusRecorder{ops: ops}, nil
}

// Observe implements Recorder.
func (p *PrometheusRecorder) Observe(op string, err error) {
	p.ops.WithLabelValues(op, outcomeLabel(err)).Inc()
}
