package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "loadplanner"

// Metrics holds all Prometheus collectors of the service.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Planner metrics
	PlansTotal     *prometheus.CounterVec
	PlanDuration   *prometheus.HistogramVec
	PlacedBoxes    *prometheus.CounterVec
	OverflowBoxes  *prometheus.CounterVec
	VolumePct      *prometheus.HistogramVec
	SnapshotRuns   *prometheus.CounterVec
	SnapshotTrucks *prometheus.CounterVec
}

// NewMetrics creates the collectors on a fresh registry, together with the
// Go runtime and process collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "route"},
		),

		PlansTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "plans_total",
				Help:      "Total number of load plans computed",
			},
			[]string{"source", "status"},
		),
		PlanDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "plan_duration_seconds",
				Help:      "Time to compute a load plan, data access included",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"source"},
		),
		PlacedBoxes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "placed_boxes_total",
				Help:      "Boxes placed inside a container",
			},
			[]string{"source"},
		),
		OverflowBoxes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "overflow_boxes_total",
				Help:      "Boxes that did not fit their container",
			},
			[]string{"source"},
		),
		VolumePct: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "plan_volume_occupancy_pct",
				Help:      "Volume occupancy of computed plans in percent",
				Buckets:   prometheus.LinearBuckets(10, 10, 10),
			},
			[]string{"source"},
		),
		SnapshotRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "snapshot_runs_total",
				Help:      "Snapshot job runs by outcome",
			},
			[]string{"outcome"},
		),
		SnapshotTrucks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "snapshot_trucks_total",
				Help:      "Trucks planned by the snapshot job by outcome",
			},
			[]string{"outcome"},
		),
	}
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one HTTP request. route is the matched route
// pattern, not the raw path.
func (m *Metrics) ObserveRequest(method, route, status string, elapsed time.Duration) {
	m.RequestsTotal.WithLabelValues(method, route, status).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObservePlan records one computed plan.
func (m *Metrics) ObservePlan(
	source string,
	status string,
	placed int,
	overflow int,
	volumePct float64,
	elapsed time.Duration,
) {
	m.PlansTotal.WithLabelValues(source, status).Inc()
	m.PlanDuration.WithLabelValues(source).Observe(elapsed.Seconds())
	m.PlacedBoxes.WithLabelValues(source).Add(float64(placed))
	m.OverflowBoxes.WithLabelValues(source).Add(float64(overflow))
	m.VolumePct.WithLabelValues(source).Observe(volumePct)
}

// ObserveSnapshot records one snapshot run with its per-truck outcome counts.
func (m *Metrics) ObserveSnapshot(planned, failed int) {
	outcome := "success"
	if failed > 0 {
		outcome = "partial"
		if planned == 0 {
			outcome = "failure"
		}
	}
	m.SnapshotRuns.WithLabelValues(outcome).Inc()
	m.SnapshotTrucks.WithLabelValues("planned").Add(float64(planned))
	m.SnapshotTrucks.WithLabelValues("failed").Add(float64(failed))
}
