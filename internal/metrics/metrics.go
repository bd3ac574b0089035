// Package metrics exposes Prometheus metrics for the lighting engine:
// tick throughput and latency, hardware and persistence failures, and
// state-change counts fed from the event bus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/smazurov/fourzone/internal/events"
)

// Recorder registers and updates the daemon's Prometheus metrics.
type Recorder struct {
	registry *prometheus.Registry

	ticks         prometheus.Counter
	tickDuration  prometheus.Histogram
	hardwareErrs  *prometheus.CounterVec
	persistErrs   prometheus.Counter
	stateChanges  *prometheus.CounterVec
	unsubscribers []func()
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fourzone_ticks_total",
			Help: "Animation ticks rendered",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fourzone_tick_duration_seconds",
			Help:    "Time spent computing and writing one animation frame",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 10),
		}),
		hardwareErrs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fourzone_hardware_errors_total",
			Help: "Hardware backend failures by operation",
		}, []string{"op"}),
		persistErrs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fourzone_persist_failures_total",
			Help: "Snapshot save failures (best-effort, logged only)",
		}),
		stateChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fourzone_state_changes_total",
			Help: "Successful state transitions by kind",
		}, []string{"kind"}),
	}

	r.registry.MustRegister(r.ticks, r.tickDuration, r.hardwareErrs, r.persistErrs, r.stateChanges)
	return r
}

// ObserveTick records one rendered animation frame.
func (r *Recorder) ObserveTick(seconds float64) {
	r.ticks.Inc()
	r.tickDuration.Observe(seconds)
}

// HardwareError records a backend failure for op ("read" or "write").
func (r *Recorder) HardwareError(op string) {
	r.hardwareErrs.WithLabelValues(op).Inc()
}

// PersistFailure records a snapshot save failure.
func (r *Recorder) PersistFailure() {
	r.persistErrs.Inc()
}

// Attach subscribes the state-change counters to the event bus.
func (r *Recorder) Attach(bus *events.Bus) {
	r.unsubscribers = append(r.unsubscribers,
		bus.Subscribe(func(e events.ModeChangedEvent) {
			r.stateChanges.WithLabelValues("mode").Inc()
		}),
		bus.Subscribe(func(e events.SpeedChangedEvent) {
			r.stateChanges.WithLabelValues("speed").Inc()
		}),
		bus.Subscribe(func(e events.BrightnessChangedEvent) {
			r.stateChanges.WithLabelValues("brightness").Inc()
		}),
		bus.Subscribe(func(e events.ZoneColorChangedEvent) {
			r.stateChanges.WithLabelValues("color").Inc()
		}),
	)
}

// Detach removes the event bus subscriptions.
func (r *Recorder) Detach() {
	for _, unsub := range r.unsubscribers {
		unsub()
	}
	r.unsubscribers = nil
}

// Handler returns the HTTP handler serving the metrics endpoint.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
