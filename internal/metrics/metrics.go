package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AggregationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "workload_aggregations_total",
		Help: "Total number of workload aggregation cycles by result",
	}, []string{"result"})

	AggregationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "workload_aggregation_duration_seconds",
		Help:    "Wall-clock duration of a workload aggregation cycle",
		Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
	})

	PullRequestsFetchedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "github_pull_requests_fetched_total",
		Help: "Total number of open pull requests fetched before milestone filtering",
	})

	GitHubRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "github_requests_total",
		Help: "Total number of upstream GitHub requests by endpoint and result",
	}, []string{"endpoint", "result"})

	SubmissionsRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dashboard_submissions_rejected_total",
		Help: "Total number of form submissions rejected while another cycle was running",
	})

	SessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dashboard_sessions_active",
		Help: "Number of browser sessions holding a rendered dashboard",
	})
)
