// Package reporting builds structured report data from check run results
// and renders it to report files.
package reporting

import (
	"fmt"
	"sort"
	"time"

	"github.com/compliance-tools/suitegen/runner"
	"github.com/compliance-tools/suitegen/types"
)

// ReportStats contains aggregated statistics for a check run
type ReportStats struct {
	Total    int
	Passed   int
	Failed   int
	Skipped  int
	Errored  int
	PassRate float64
}

// PassedCount implements templates.ReportableStats
func (s ReportStats) PassedCount() int { return s.Passed }

// FailedCount implements templates.ReportableStats
func (s ReportStats) FailedCount() int { return s.Failed + s.Errored }

// ReportCheckItem represents a single check result in the report
type ReportCheckItem struct {
	ID       string
	Suite    string
	Dataset  string
	Level    types.Level
	Status   types.CheckStatus
	Score    int
	OutOf    int
	Label    string
	Messages []string
	Error    string
	Duration time.Duration
	LogPath  string
}

// ReportSuite represents one synthesized suite in the report
type ReportSuite struct {
	Name     string
	Status   types.CheckStatus
	Duration time.Duration
	Stats    ReportStats
	Checks   []ReportCheckItem
}

// ReportData contains all the structured data needed for any report format
type ReportData struct {
	RunID        string
	Timestamp    time.Time
	Duration     time.Duration
	Stats        ReportStats
	PassRateText string
	HasFailures  bool
	Suites       []ReportSuite

	FailedChecks     []ReportCheckItem
	FailedCheckNames []string
}

// ReportBuilder constructs ReportData from a run result
type ReportBuilder struct {
	logPathGenerator func(item *ReportCheckItem) string
}

// NewReportBuilder creates a new report builder
func NewReportBuilder() *ReportBuilder {
	return &ReportBuilder{
		logPathGenerator: func(item *ReportCheckItem) string {
			return ""
		},
	}
}

// WithLogPathGenerator overrides how per-check log paths are derived
func (b *ReportBuilder) WithLogPathGenerator(gen func(item *ReportCheckItem) string) *ReportBuilder {
	b.logPathGenerator = gen
	return b
}

// BuildFromRunnerResult converts a run result into report data.
// Suites and checks are sorted by name so report output is stable.
func (b *ReportBuilder) BuildFromRunnerResult(result *runner.RunnerResult) *ReportData {
	data := &ReportData{
		RunID:     result.RunID,
		Timestamp: result.Stats.StartTime,
		Duration:  result.Duration,
		Stats:     convertStats(result.Stats),
	}
	data.PassRateText = formatPassRate(data.Stats.PassRate)
	data.HasFailures = data.Stats.Failed > 0 || data.Stats.Errored > 0

	suiteNames := make([]string, 0, len(result.Suites))
	for name := range result.Suites {
		suiteNames = append(suiteNames, name)
	}
	sort.Strings(suiteNames)

	for _, name := range suiteNames {
		suite := result.Suites[name]
		reportSuite := ReportSuite{
			Name:     name,
			Status:   suite.Status,
			Duration: suite.Duration,
			Stats:    convertStats(suite.Stats),
		}

		checkKeys := make([]string, 0, len(suite.Checks))
		for key := range suite.Checks {
			checkKeys = append(checkKeys, key)
		}
		sort.Strings(checkKeys)

		for _, key := range checkKeys {
			check := suite.Checks[key]
			item := ReportCheckItem{
				ID:       key,
				Suite:    name,
				Dataset:  check.Dataset,
				Level:    check.Level,
				Status:   check.Status,
				Score:    check.Score,
				OutOf:    check.OutOf,
				Label:    check.Label,
				Messages: check.Messages,
				Duration: check.Duration,
			}
			if check.Error != nil {
				item.Error = check.Error.Error()
			}
			item.LogPath = b.logPathGenerator(&item)

			reportSuite.Checks = append(reportSuite.Checks, item)
			if item.Status == types.CheckStatusFail || item.Status == types.CheckStatusError {
				data.FailedChecks = append(data.FailedChecks, item)
				data.FailedCheckNames = append(data.FailedCheckNames, name+"/"+key)
			}
		}

		data.Suites = append(data.Suites, reportSuite)
	}

	return data
}

func convertStats(stats runner.ResultStats) ReportStats {
	rs := ReportStats{
		Total:   stats.Total,
		Passed:  stats.Passed,
		Failed:  stats.Failed,
		Skipped: stats.Skipped,
		Errored: stats.Errored,
	}
	executed := rs.Total - rs.Skipped
	if executed > 0 {
		rs.PassRate = float64(rs.Passed) / float64(executed)
	}
	return rs
}

func formatPassRate(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate*100)
}
