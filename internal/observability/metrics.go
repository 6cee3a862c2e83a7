package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the application-level prometheus collectors. The registry
// is exposed on /metrics by the HTTP server.
type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequests           *prometheus.CounterVec
	CommissionRuns         prometheus.Counter
	CommissionAmountCents  prometheus.Counter
	ActionPlanRuns         prometheus.Counter
	HierarchyCycleFailures prometheus.Counter
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		Registry: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "teleforce_http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		CommissionRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "teleforce_commission_runs_total",
			Help: "Monthly commission calculations performed.",
		}),
		CommissionAmountCents: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "teleforce_commission_amount_cents_total",
			Help: "Total commission amount computed, in cents.",
		}),
		ActionPlanRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "teleforce_action_plan_runs_total",
			Help: "Action plan computations performed.",
		}),
		HierarchyCycleFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "teleforce_hierarchy_cycle_failures_total",
			Help: "Aggregations aborted because of a sponsor-code cycle.",
		}),
	}
	reg.MustRegister(
		m.HTTPRequests,
		m.CommissionRuns,
		m.CommissionAmountCents,
		m.ActionPlanRuns,
		m.HierarchyCycleFailures,
	)
	return m
}
