package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: prometheus.DefBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)
)

// Reward pipeline metrics
var (
	QuestsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuestsProcessed,
			Help: HelpTextQuestsProcessed,
		},
		[]string{LabelSource},
	)

	RewardsDistributed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRewardsDistributed,
			Help: HelpTextRewardsDistributed,
		},
	)

	TokensCredited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTokensCredited,
			Help: HelpTextTokensCredited,
		},
	)

	DistributionErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDistributionErrors,
			Help: HelpTextDistributionErrors,
		},
	)

	ReconciliationRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameReconciliationRuns,
			Help: HelpTextReconciliationRuns,
		},
	)

	ReconciliationSkips = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameReconciliationSkips,
			Help: HelpTextReconciliationSkips,
		},
	)

	ParticipantsPromoted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameParticipantsPromoted,
			Help: HelpTextParticipantsPromoted,
		},
	)

	SubmissionsReconciled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSubmissionsReconciled,
			Help: HelpTextSubmissionsReconciled,
		},
	)
)
