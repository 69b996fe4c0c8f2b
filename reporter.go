package suitegen

import (
	"github.com/compliance-tools/suitegen/metrics"
	"github.com/compliance-tools/suitegen/runner"
)

// MetricsReporter is responsible for reporting metrics from check results.
type MetricsReporter interface {
	ReportResults(runID string, result *runner.RunnerResult)
}

// DefaultMetricsReporter implements the MetricsReporter interface.
type DefaultMetricsReporter struct{}

// NewDefaultMetricsReporter creates a new DefaultMetricsReporter.
func NewDefaultMetricsReporter() *DefaultMetricsReporter {
	return &DefaultMetricsReporter{}
}

// ReportResults reports the check run results to metrics systems.
func (r *DefaultMetricsReporter) ReportResults(runID string, result *runner.RunnerResult) {
	metrics.RecordRun(
		runID,
		string(result.Status),
		result.Stats.Total,
		result.Stats.Passed,
		result.Stats.Failed,
		result.Duration,
	)
}
