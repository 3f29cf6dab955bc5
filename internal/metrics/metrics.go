// Package metrics exposes Prometheus instrumentation for the job lifecycle
// and the model round trip.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	JobsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fightlab_jobs_submitted_total",
		Help: "Analysis jobs accepted for background processing.",
	})

	JobsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fightlab_jobs_completed_total",
		Help: "Analysis jobs that reached the completed state.",
	})

	JobsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fightlab_jobs_failed_total",
		Help: "Analysis jobs that reached the failed state, by failure class.",
	}, []string{"reason"})

	ModelRequestSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fightlab_model_request_seconds",
		Help:    "Wall-clock duration of model round trips, success or failure.",
		Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 720},
	})
)

// ObserveModelRequest records one model round trip.
func ObserveModelRequest(d time.Duration) {
	ModelRequestSeconds.Observe(d.Seconds())
}

// Handler serves the Prometheus exposition endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
