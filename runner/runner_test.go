package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compliance-tools/suitegen/checklib/register"
	"github.com/compliance-tools/suitegen/logging"
	"github.com/compliance-tools/suitegen/registry"
	"github.com/compliance-tools/suitegen/synth"
	"github.com/compliance-tools/suitegen/types"
	"github.com/compliance-tools/suitegen/ui"
)

// memDataset is an in-memory dataset with a configurable kind and size
type memDataset struct {
	kind    string
	path    string
	size    int64
	sizeErr error
}

func (d *memDataset) Kind() string { return d.kind }
func (d *memDataset) Path() string { return d.path }
func (d *memDataset) Size() (int64, error) {
	if d.sizeErr != nil {
		return 0, d.sizeErr
	}
	return d.size, nil
}

func synthesizeSuite(t *testing.T, desc *types.SuiteDescriptor) *synth.Suite {
	t.Helper()
	reg := registry.NewRegistry(registry.Config{})
	require.NoError(t, register.Register(reg))
	suite, err := synth.Synthesize(desc, reg)
	require.NoError(t, err)
	return suite
}

func fileSizeSuite(t *testing.T, suiteName string, thresholdMB int) *synth.Suite {
	return synthesizeSuite(t, &types.SuiteDescriptor{
		SuiteName: suiteName,
		Checks: []types.CheckSpec{
			{CheckID: "file_size", CheckName: register.FileSizeCheck, Parameters: map[string]any{"threshold": thresholdMB}},
		},
	})
}

func TestNewCheckRunnerValidation(t *testing.T) {
	suite := fileSizeSuite(t, "compliance", 4)
	ds := &memDataset{kind: "file", path: "/data/a.csv"}

	_, err := NewCheckRunner(Config{Datasets: []types.Dataset{ds}})
	assert.Error(t, err)

	_, err = NewCheckRunner(Config{Suites: []*synth.Suite{suite}})
	assert.Error(t, err)

	_, err = NewCheckRunner(Config{Suites: []*synth.Suite{suite}, Datasets: []types.Dataset{ds}})
	assert.NoError(t, err)
}

func TestRunAllPassingSuite(t *testing.T) {
	suite := fileSizeSuite(t, "compliance", 4)
	r, err := NewCheckRunner(Config{
		Suites:   []*synth.Suite{suite},
		Datasets: []types.Dataset{&memDataset{kind: "file", path: "/data/small.csv", size: 1 << 20}},
	})
	require.NoError(t, err)

	result, err := r.RunAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, types.CheckStatusPass, result.Status)
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, 1, result.Stats.Total)
	assert.Equal(t, 1, result.Stats.Passed)

	suiteResult := result.Suites["compliance"]
	require.NotNil(t, suiteResult)
	require.Contains(t, suiteResult.Checks, "file_size")
	assert.Equal(t, types.CheckStatusPass, suiteResult.Checks["file_size"].Status)
}

func TestRunAllFailingCheckFailsRun(t *testing.T) {
	suite := fileSizeSuite(t, "compliance", 1)
	r, err := NewCheckRunner(Config{
		Suites:   []*synth.Suite{suite},
		Datasets: []types.Dataset{&memDataset{kind: "file", path: "/data/big.csv", size: 2 << 20}},
	})
	require.NoError(t, err)

	result, err := r.RunAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, types.CheckStatusFail, result.Status)
	assert.Equal(t, 1, result.Stats.Failed)
}

// Checks never see a dataset kind they don't declare; the invocation is
// recorded as skipped.
func TestRunAllSkipsUnsupportedKind(t *testing.T) {
	suite := fileSizeSuite(t, "compliance", 4)
	r, err := NewCheckRunner(Config{
		Suites:   []*synth.Suite{suite},
		Datasets: []types.Dataset{&memDataset{kind: "table", path: "/data/rows.parquet"}},
	})
	require.NoError(t, err)

	result, err := r.RunAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, types.CheckStatusSkip, result.Status)
	assert.Equal(t, 1, result.Stats.Skipped)
	assert.Equal(t, 0, result.Stats.Failed)
}

// An unreadable dataset errors one check; sibling checks still run and the
// run completes.
func TestRunAllFileErrorDoesNotStopSiblings(t *testing.T) {
	suite := synthesizeSuite(t, &types.SuiteDescriptor{
		SuiteName: "compliance",
		Checks: []types.CheckSpec{
			{CheckID: "file_size", CheckName: register.FileSizeCheck, Parameters: map[string]any{"threshold": 4}},
			{CheckID: "name_format", CheckName: register.NameFormatCheck, Parameters: map[string]any{"pattern": `\.csv$`}},
		},
	})
	r, err := NewCheckRunner(Config{
		Suites:   []*synth.Suite{suite},
		Datasets: []types.Dataset{&memDataset{kind: "file", path: "/data/gone.csv", sizeErr: errors.New("unreadable")}},
	})
	require.NoError(t, err)

	result, err := r.RunAll(context.Background())
	require.NoError(t, err)

	suiteResult := result.Suites["compliance"]
	assert.Equal(t, types.CheckStatusError, suiteResult.Checks["file_size"].Status)
	assert.Equal(t, types.CheckStatusPass, suiteResult.Checks["name_format"].Status)
	assert.Equal(t, 1, result.Stats.Errored)
	assert.Equal(t, 1, result.Stats.Passed)
	assert.Equal(t, types.CheckStatusFail, result.Status)
}

// With multiple datasets, result keys carry the dataset's base name.
func TestRunAllMultipleDatasetKeys(t *testing.T) {
	suite := fileSizeSuite(t, "compliance", 4)
	r, err := NewCheckRunner(Config{
		Suites: []*synth.Suite{suite},
		Datasets: []types.Dataset{
			&memDataset{kind: "file", path: "/data/jan.csv", size: 1 << 20},
			&memDataset{kind: "file", path: "/data/feb.csv", size: 1 << 20},
		},
	})
	require.NoError(t, err)

	result, err := r.RunAll(context.Background())
	require.NoError(t, err)

	suiteResult := result.Suites["compliance"]
	assert.Contains(t, suiteResult.Checks, "file_size[jan.csv]")
	assert.Contains(t, suiteResult.Checks, "file_size[feb.csv]")
	assert.Equal(t, 2, result.Stats.Total)
}

func TestRunAllUsesFileLoggerRunID(t *testing.T) {
	fileLogger, err := logging.NewFileLogger(t.TempDir(), "fixed-run-id")
	require.NoError(t, err)

	suite := fileSizeSuite(t, "compliance", 4)
	r, err := NewCheckRunner(Config{
		Suites:     []*synth.Suite{suite},
		Datasets:   []types.Dataset{&memDataset{kind: "file", path: "/data/small.csv", size: 1}},
		FileLogger: fileLogger,
	})
	require.NoError(t, err)

	result, err := r.RunAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fixed-run-id", result.RunID)
}

func TestStatusFromStats(t *testing.T) {
	tests := []struct {
		name  string
		stats ResultStats
		want  types.CheckStatus
	}{
		{"all passed", ResultStats{Total: 2, Passed: 2}, types.CheckStatusPass},
		{"any failure fails", ResultStats{Total: 2, Passed: 1, Failed: 1}, types.CheckStatusFail},
		{"errors count as failures", ResultStats{Total: 2, Passed: 1, Errored: 1}, types.CheckStatusFail},
		{"all skipped", ResultStats{Total: 2, Skipped: 2}, types.CheckStatusSkip},
		{"mixed pass and skip passes", ResultStats{Total: 2, Passed: 1, Skipped: 1}, types.CheckStatusPass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromStats(tt.stats))
		})
	}
}

func TestRunnerResultString(t *testing.T) {
	suite := fileSizeSuite(t, "compliance", 1)
	r, err := NewCheckRunner(Config{
		Suites:   []*synth.Suite{suite},
		Datasets: []types.Dataset{&memDataset{kind: "file", path: "/data/big.csv", size: 2 << 20}},
	})
	require.NoError(t, err)

	result, err := r.RunAll(context.Background())
	require.NoError(t, err)

	s := result.String()
	assert.Contains(t, s, "Suite: compliance")
	assert.Contains(t, s, "file_size")
	assert.Contains(t, s, "File size exceeds the limit of 1Mb")

	// The only check renders as the last branch, its message nested below
	assert.Contains(t, s, ui.TreeLastBranch+"Check: file_size")
	assert.Contains(t, s, ui.TreeIndent+ui.TreeLastBranch+"File size exceeds the limit of 1Mb")
	assert.Contains(t, s, ui.TreeBranch+"Status: fail")
}
