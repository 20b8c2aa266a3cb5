package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	simulations     prometheus.Counter
	trials          prometheus.Counter
	recommendations *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
	poolSize        *prometheus.GaugeVec
	latency         *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		simulations: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "courtiq_simulations_total",
				Help: "Total number of matchup simulations run",
			},
		),
		trials: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "courtiq_simulation_trials_total",
				Help: "Total number of Monte Carlo trials executed",
			},
		),
		recommendations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "courtiq_recommendations_total",
				Help: "Total number of roster moves produced, by strategy",
			},
			[]string{"strategy"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "courtiq_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		poolSize: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "courtiq_player_pool_size",
				Help: "Number of players loaded for a season",
			},
			[]string{"season"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "courtiq_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordSimulation records one completed simulation run.
func (r *Recorder) RecordSimulation(trials int, seconds float64) {
	r.simulations.Inc()
	r.trials.Add(float64(trials))
	r.latency.WithLabelValues("simulate").Observe(seconds)
}

// RecordRecommendations records produced roster moves by strategy.
func (r *Recorder) RecordRecommendations(strategy string, count int) {
	r.recommendations.WithLabelValues(strategy).Add(float64(count))
}

// RecordPoolSize records the loaded player pool size for a season.
func (r *Recorder) RecordPoolSize(season string, size int) {
	r.poolSize.WithLabelValues(season).Set(float64(size))
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
