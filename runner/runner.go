// Package runner plays the host-framework role: it invokes every check of
// every synthesized suite against the configured datasets, sequentially,
// and aggregates the results into a suite/check hierarchy with statistics.
package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/compliance-tools/suitegen/logging"
	"github.com/compliance-tools/suitegen/metrics"
	"github.com/compliance-tools/suitegen/synth"
	"github.com/compliance-tools/suitegen/types"
	"github.com/compliance-tools/suitegen/ui"
)

// SuiteResult captures aggregated results for one check suite
type SuiteResult struct {
	Name     string
	Checks   map[string]*types.CheckResult
	Status   types.CheckStatus
	Duration time.Duration
	Stats    ResultStats
}

// RunnerResult captures the complete run results
type RunnerResult struct {
	Suites   map[string]*SuiteResult
	Status   types.CheckStatus
	Duration time.Duration
	Stats    ResultStats
	RunID    string
}

// ResultStats tracks check statistics at each level
type ResultStats struct {
	Total     int
	Passed    int
	Failed    int
	Skipped   int
	Errored   int
	StartTime time.Time
	EndTime   time.Time
}

// CheckRunner defines the interface for running synthesized suites
type CheckRunner interface {
	RunAll(ctx context.Context) (*RunnerResult, error)
}

// Config holds configuration for creating a new runner
type Config struct {
	Suites     []*synth.Suite
	Datasets   []types.Dataset
	Log        log.Logger
	FileLogger *logging.FileLogger // Optional persistence of per-check logs
}

// runner struct implements the CheckRunner interface
type runner struct {
	suites     []*synth.Suite
	datasets   []types.Dataset
	log        log.Logger
	fileLogger *logging.FileLogger
	runID      string
	tracer     trace.Tracer
}

// NewCheckRunner creates a new check runner instance
func NewCheckRunner(cfg Config) (CheckRunner, error) {
	if len(cfg.Suites) == 0 {
		return nil, fmt.Errorf("at least one suite is required")
	}
	if len(cfg.Datasets) == 0 {
		return nil, fmt.Errorf("at least one dataset is required")
	}
	if cfg.Log == nil {
		cfg.Log = log.New()
		cfg.Log.Error("No logger provided, using default")
	}

	cfg.Log.Debug("NewCheckRunner()", "suites", len(cfg.Suites), "datasets", len(cfg.Datasets))

	return &runner{
		suites:     cfg.Suites,
		datasets:   cfg.Datasets,
		log:        cfg.Log,
		fileLogger: cfg.FileLogger,
		tracer:     otel.Tracer("check runner"),
	}, nil
}

// RunAll implements the CheckRunner interface
func (r *runner) RunAll(ctx context.Context) (*RunnerResult, error) {
	if r.fileLogger != nil {
		r.runID = r.fileLogger.GetRunID()
	} else {
		r.runID = uuid.New().String()
	}
	defer func() {
		r.runID = ""
	}()

	result := &RunnerResult{
		Suites: make(map[string]*SuiteResult),
		RunID:  r.runID,
		Stats:  ResultStats{StartTime: time.Now()},
	}

	for _, suite := range r.suites {
		suiteResult, err := r.runSuite(ctx, suite)
		if err != nil {
			return nil, fmt.Errorf("running suite %q: %w", suite.Name, err)
		}
		result.Suites[suite.Name] = suiteResult
		result.Duration += suiteResult.Duration
		addStats(&result.Stats, &suiteResult.Stats)
	}

	result.Stats.EndTime = time.Now()
	result.Status = statusFromStats(result.Stats)

	// Run-level metrics are recorded once by the reporter, not here
	r.log.Info("Check run completed", "run_id", r.runID, "status", result.Status,
		"total", result.Stats.Total, "passed", result.Stats.Passed,
		"failed", result.Stats.Failed, "skipped", result.Stats.Skipped)
	return result, nil
}

// runSuite invokes every check of one suite against every dataset
func (r *runner) runSuite(ctx context.Context, suite *synth.Suite) (*SuiteResult, error) {
	_, span := r.tracer.Start(ctx, fmt.Sprintf("suite %s", suite.Name))
	defer span.End()

	suiteResult := &SuiteResult{
		Name:   suite.Name,
		Checks: make(map[string]*types.CheckResult),
		Stats:  ResultStats{StartTime: time.Now()},
	}

	for _, check := range suite.Checks() {
		for _, ds := range r.datasets {
			key := check.ID
			if len(r.datasets) > 1 {
				key = fmt.Sprintf("%s[%s]", check.ID, filepath.Base(ds.Path()))
			}

			var checkResult *types.CheckResult
			if !check.Supports(ds.Kind()) {
				// Dataset-type filtering happens here, before invocation,
				// so checks never see a kind they don't declare
				r.log.Debug("Skipping check for unsupported dataset kind",
					"suite", suite.Name, "check", check.ID, "kind", ds.Kind())
				checkResult = &types.CheckResult{
					CheckID: check.ID,
					Suite:   suite.Name,
					Dataset: ds.Path(),
					Level:   check.Level,
					OutOf:   check.OutOf,
					Status:  types.CheckStatusSkip,
				}
			} else {
				checkResult = check.Run(ds)
			}

			suiteResult.Checks[key] = checkResult
			suiteResult.Duration += checkResult.Duration
			updateStats(&suiteResult.Stats, checkResult.Status)

			metrics.RecordCheck(suite.Name, r.runID, check.ID, checkResult.Status)

			if r.fileLogger != nil {
				if err := r.fileLogger.LogResult(checkResult); err != nil {
					r.log.Error("Failed to write check log", "check", check.ID, "error", err)
				}
			}
		}
	}

	suiteResult.Stats.EndTime = time.Now()
	suiteResult.Status = statusFromStats(suiteResult.Stats)
	return suiteResult, nil
}

// updateStats records one check outcome
func updateStats(stats *ResultStats, status types.CheckStatus) {
	stats.Total++
	switch status {
	case types.CheckStatusPass:
		stats.Passed++
	case types.CheckStatusFail:
		stats.Failed++
	case types.CheckStatusSkip:
		stats.Skipped++
	case types.CheckStatusError:
		stats.Errored++
	}
}

// addStats folds child statistics into a parent
func addStats(dst *ResultStats, src *ResultStats) {
	dst.Total += src.Total
	dst.Passed += src.Passed
	dst.Failed += src.Failed
	dst.Skipped += src.Skipped
	dst.Errored += src.Errored
}

// statusFromStats derives the aggregate status. Errored checks count as
// failures for the run outcome; an all-skipped run reports skip.
func statusFromStats(stats ResultStats) types.CheckStatus {
	if stats.Failed > 0 || stats.Errored > 0 {
		return types.CheckStatusFail
	}
	if stats.Passed > 0 {
		return types.CheckStatusPass
	}
	return types.CheckStatusSkip
}

// formatDuration formats the duration to seconds with 1 decimal place
func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// String returns a formatted string representation of the run results.
// Suites and checks render in sorted order so the tree is stable.
func (r *RunnerResult) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Check Run Results (%s):\n", formatDuration(r.Duration)))
	b.WriteString(fmt.Sprintf("Total: %d, Passed: %d, Failed: %d, Skipped: %d, Errored: %d\n",
		r.Stats.Total, r.Stats.Passed, r.Stats.Failed, r.Stats.Skipped, r.Stats.Errored))

	suiteNames := make([]string, 0, len(r.Suites))
	for name := range r.Suites {
		suiteNames = append(suiteNames, name)
	}
	sort.Strings(suiteNames)

	for _, suiteName := range suiteNames {
		suite := r.Suites[suiteName]
		b.WriteString(fmt.Sprintf("\nSuite: %s (%s)\n", suiteName, formatDuration(suite.Duration)))
		b.WriteString(fmt.Sprintf("%sStatus: %s\n", ui.BuildTreePrefix(1, false, nil), suite.Status))
		b.WriteString(fmt.Sprintf("%sChecks: %d passed, %d failed, %d skipped, %d errored\n",
			ui.BuildTreePrefix(1, false, nil),
			suite.Stats.Passed, suite.Stats.Failed, suite.Stats.Skipped, suite.Stats.Errored))

		keys := make([]string, 0, len(suite.Checks))
		for key := range suite.Checks {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for i, key := range keys {
			check := suite.Checks[key]
			lastCheck := i == len(keys)-1
			b.WriteString(fmt.Sprintf("%sCheck: %s (%d/%d) [status=%s]\n",
				ui.BuildTreePrefix(1, lastCheck, nil), key, check.Score, check.OutOf, check.Status))

			lines := check.Messages
			if check.Error != nil {
				lines = append(lines[:len(lines):len(lines)], fmt.Sprintf("Error: %s", check.Error.Error()))
			}
			for j, line := range lines {
				b.WriteString(fmt.Sprintf("%s%s\n",
					ui.BuildTreePrefix(2, j == len(lines)-1, []bool{lastCheck}), line))
			}
		}
	}
	return b.String()
}
