package suitegen

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compliance-tools/suitegen/checklib/register"
	"github.com/compliance-tools/suitegen/logging"
	"github.com/compliance-tools/suitegen/registry"
	"github.com/compliance-tools/suitegen/runner"
	"github.com/compliance-tools/suitegen/synth"
	"github.com/compliance-tools/suitegen/types"
)

// TestDefaultMetricsReporter_ReportResults tests the metrics reporter
func TestDefaultMetricsReporter_ReportResults(t *testing.T) {
	result := &runner.RunnerResult{
		RunID:    "check-run-1",
		Status:   types.CheckStatusPass,
		Duration: 100 * time.Millisecond,
		Stats: runner.ResultStats{
			Total:  5,
			Passed: 5,
		},
	}

	reporter := NewDefaultMetricsReporter()

	// Report results - mostly checking the metrics plumbing doesn't panic
	reporter.ReportResults(result.RunID, result)

	assert.True(t, true, "Test completed without panicking")
}

// TestDefaultMetricsReporter_ReportResults_Failures tests reporting failed checks
func TestDefaultMetricsReporter_ReportResults_Failures(t *testing.T) {
	result := &runner.RunnerResult{
		RunID:    "check-run-2",
		Status:   types.CheckStatusFail,
		Duration: 150 * time.Millisecond,
		Stats: runner.ResultStats{
			Total:  10,
			Passed: 7,
			Failed: 3,
		},
	}

	reporter := NewDefaultMetricsReporter()
	reporter.ReportResults(result.RunID, result)

	assert.True(t, true, "Test completed without panicking")
}

// TestRunMetricsRecordedOnce drives the full run wiring (RunAll followed by
// ReportResults, as runChecks does) and reads the run-level counter back to
// confirm check counts are recorded exactly once per run.
func TestRunMetricsRecordedOnce(t *testing.T) {
	reg := registry.NewRegistry(registry.Config{})
	require.NoError(t, register.Register(reg))

	suite, err := synth.Synthesize(&types.SuiteDescriptor{
		SuiteName: "compliance",
		Checks: []types.CheckSpec{
			{
				CheckID:    "file_size",
				CheckName:  register.FileSizeCheck,
				Parameters: map[string]any{"threshold": 1024},
			},
		},
	}, reg)
	require.NoError(t, err)

	dir := t.TempDir()
	datasetPath := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(datasetPath, []byte("a,b\n1,2\n"), 0o644))

	const runID = "metrics-once-run"
	fileLogger, err := logging.NewFileLogger(filepath.Join(dir, "logs"), runID)
	require.NoError(t, err)

	r, err := runner.NewCheckRunner(runner.Config{
		Suites:     []*synth.Suite{suite},
		Datasets:   []types.Dataset{types.NewFileDataset(datasetPath)},
		Log:        log.New(),
		FileLogger: fileLogger,
	})
	require.NoError(t, err)

	result, err := r.RunAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, runID, result.RunID)
	require.Equal(t, 1, result.Stats.Total)

	NewDefaultMetricsReporter().ReportResults(result.RunID, result)

	assert.Equal(t, float64(1), runCounterValue(t, "suitegen_run_checks_total", runID))
	assert.Equal(t, float64(1), runCounterValue(t, "suitegen_run_checks_passed", runID))
	assert.Equal(t, float64(0), runCounterValue(t, "suitegen_run_checks_failed", runID))
}

// runCounterValue reads one run-labelled counter from the default registry
func runCounterValue(t *testing.T, name, runID string) float64 {
	t.Helper()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, label := range m.GetLabel() {
				if label.GetName() == "run_id" && label.GetValue() == runID {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	t.Fatalf("no %s sample recorded for run %s", name, runID)
	return 0
}
