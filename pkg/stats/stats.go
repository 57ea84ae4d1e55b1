package stats

import (
	"bufio"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Recorder collects metrics about curve evaluations.
type Recorder struct {
	registry    *prometheus.Registry
	evaluations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewRecorder returns a Recorder whose metrics are registered on a dedicated
// registry.
func NewRecorder() *Recorder {
	evaluations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bondingcurve",
			Name:      "evaluations_total",
			Help:      "Number of curve evaluations by operation, curve and outcome.",
		},
		[]string{"operation", "curve", "outcome"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bondingcurve",
			Name:      "evaluation_duration_seconds",
			Help:      "Time spent evaluating a curve.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		},
		[]string{"operation", "curve"},
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(evaluations, duration)

	return &Recorder{registry, evaluations, duration}
}

// Observe records the outcome and the duration of an evaluation.
func (r *Recorder) Observe(operation, curve string, elapsed time.Duration, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	r.evaluations.WithLabelValues(operation, curve, outcome).Inc()
	r.duration.WithLabelValues(operation, curve).Observe(elapsed.Seconds())
}

// Evaluations returns the counter of evaluations for the given labels.
func (r *Recorder) Evaluations(operation, curve, outcome string) prometheus.Counter {
	return r.evaluations.WithLabelValues(operation, curve, outcome)
}

// Dump appends the gathered metrics to the file at the given path.
func (r *Recorder) Dump(path string) error {
	file, err := os.OpenFile(
		path,
		os.O_APPEND|os.O_CREATE|os.O_RDWR,
		0644,
	)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	metricFamily, err := r.registry.Gather()
	if err != nil {
		return err
	}
	for _, v := range metricFamily {
		if _, err := writer.WriteString(v.String() + "\n"); err != nil {
			return err
		}
	}

	return writer.Flush()
}
