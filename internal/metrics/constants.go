package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal   = "http_requests_total"
	MetricNameHTTPRequestDuration = "http_request_duration_seconds"

	MetricNameQuestsProcessed       = "quests_processed_total"
	MetricNameRewardsDistributed    = "rewards_distributed_total"
	MetricNameTokensCredited        = "tokens_credited_total"
	MetricNameDistributionErrors    = "distribution_errors_total"
	MetricNameReconciliationRuns    = "reconciliation_runs_total"
	MetricNameReconciliationSkips   = "reconciliation_skips_total"
	MetricNameParticipantsPromoted  = "participants_promoted_total"
	MetricNameSubmissionsReconciled = "submissions_reconciled_total"
)

// Metric help text
const (
	HelpTextHTTPRequestsTotal   = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration = "HTTP request latency in seconds"

	HelpTextQuestsProcessed       = "Total number of quest completion runs, by trigger path"
	HelpTextRewardsDistributed    = "Total number of successful per-participant reward distributions"
	HelpTextTokensCredited        = "Total tokens credited to user ledgers"
	HelpTextDistributionErrors    = "Total number of failed reward sub-grants"
	HelpTextReconciliationRuns    = "Total number of monthly reconciliation sweeps"
	HelpTextReconciliationSkips   = "Total participants skipped as already rewarded"
	HelpTextParticipantsPromoted  = "Total participants promoted to completed by reconciliation"
	HelpTextSubmissionsReconciled = "Total approved submissions pulled in by the reconciliation bridge"
)

// Metric labels
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelSource = "source"
)
