package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcomes recorded for calculator runs.
const (
	OutcomeOK          = "ok"
	OutcomeRejected    = "rejected"
	OutcomeUnavailable = "unavailable"
)

// Recorder holds the pricing collectors. A nil *Recorder is a no-op.
type Recorder struct {
	computations *prometheus.CounterVec
	duration     prometheus.Histogram
	cacheLookups *prometheus.CounterVec
	upstream     *prometheus.CounterVec
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		computations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "frontdesk",
			Subsystem: "pricing",
			Name:      "computations_total",
			Help:      "Charge breakdowns computed, by source and outcome.",
		}, []string{"source", "outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "frontdesk",
			Subsystem: "pricing",
			Name:      "computation_seconds",
			Help:      "Time spent computing a charge breakdown.",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05},
		}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "frontdesk",
			Subsystem: "pricing",
			Name:      "preview_cache_lookups_total",
			Help:      "Preview cache lookups, by result.",
		}, []string{"result"}),
		upstream: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "frontdesk",
			Subsystem: "bookings",
			Name:      "upstream_requests_total",
			Help:      "Booking backend fetches, by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(r.computations, r.duration, r.cacheLookups, r.upstream)
	return r
}

func (r *Recorder) ObserveComputation(source, outcome string, d time.Duration) {
	if r == nil {
		return
	}
	r.computations.WithLabelValues(source, outcome).Inc()
	r.duration.Observe(d.Seconds())
}

func (r *Recorder) CacheLookup(hit bool) {
	if r == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheLookups.WithLabelValues(result).Inc()
}

func (r *Recorder) UpstreamFetch(result string) {
	if r == nil {
		return
	}
	r.upstream.WithLabelValues(result).Inc()
}
