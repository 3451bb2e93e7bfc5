package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "charterplan"
	subsystem = "planning"
)

// PlanningMetricsCollector handles all plan computation metrics
type PlanningMetricsCollector struct {
	plansTotal   *prometheus.CounterVec
	planDuration *prometheus.HistogramVec
	refuelStops  prometheus.Histogram
	noRouteTotal prometheus.Counter
}

// NewPlanningMetricsCollector creates a new planning metrics collector
func NewPlanningMetricsCollector() *PlanningMetricsCollector {
	return &PlanningMetricsCollector{
		// Plan computations by mode and outcome (ok or failure code)
		plansTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "plans_total",
				Help:      "Total number of plan computations by mode and outcome",
			},
			[]string{"mode", "outcome"},
		),

		// Computation duration histogram
		planDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "plan_duration_seconds",
				Help:      "Plan computation duration distribution",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
			},
			[]string{"mode"},
		),

		// Refuel stops inserted per successful plan
		refuelStops: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "refuel_stops",
				Help:      "Refuel stops inserted per successful plan",
				Buckets:   []float64{0, 1, 2, 3, 4, 5},
			},
		),

		// Infeasible route counter
		noRouteTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "no_route_total",
				Help:      "Total number of computations that found no feasible route",
			},
		),
	}
}

// Register registers all collectors with the given registry
func (c *PlanningMetricsCollector) Register(registry *prometheus.Registry) error {
	collectors := []prometheus.Collector{
		c.plansTotal,
		c.planDuration,
		c.refuelStops,
		c.noRouteTotal,
	}
	for _, collector := range collectors {
		if err := registry.Register(collector); err != nil {
			return err
		}
	}
	return nil
}

// ObservePlan implements the application metrics port
func (c *PlanningMetricsCollector) ObservePlan(mode, outcome string, seconds float64, stops int) {
	if outcome == "" {
		outcome = "error"
	}
	c.plansTotal.WithLabelValues(mode, outcome).Inc()
	c.planDuration.WithLabelValues(mode).Observe(seconds)
	if outcome == "ok" {
		c.refuelStops.Observe(float64(stops))
	}
	if outcome == "NO_ROUTE" {
		c.noRouteTotal.Inc()
	}
}
