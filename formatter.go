package suitegen

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/compliance-tools/suitegen/runner"
	"github.com/compliance-tools/suitegen/types"
)

// ResultFormatter is responsible for formatting and displaying check results.
type ResultFormatter interface {
	FormatResults(result *runner.RunnerResult) error
}

// ConsoleResultFormatter implements the ResultFormatter interface.
type ConsoleResultFormatter struct {
	logger log.Logger
}

// NewConsoleResultFormatter creates a new ConsoleResultFormatter.
func NewConsoleResultFormatter(logger log.Logger) *ConsoleResultFormatter {
	return &ConsoleResultFormatter{
		logger: logger,
	}
}

// FormatResults formats and displays the check results.
func (f *ConsoleResultFormatter) FormatResults(result *runner.RunnerResult) error {
	f.logger.Info("Printing results...")
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("Compliance Check Results (%s)", formatDuration(result.Duration)))

	// Configure columns
	t.AppendHeader(table.Row{
		"Type", "ID", "Level", "Score", "Passed", "Failed", "Skipped", "Status", "Messages",
	})

	// Set column configurations for better readability
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Type", AutoMerge: true},
		{Name: "ID", WidthMax: 50, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Score", Align: text.AlignRight},
		{Name: "Passed", Align: text.AlignRight},
		{Name: "Failed", Align: text.AlignRight},
		{Name: "Skipped", Align: text.AlignRight},
		{Name: "Messages", WidthMax: 80, WidthMaxEnforcer: text.WrapSoft},
	})

	// Print suites and their checks
	for _, suiteName := range sortedSuiteNames(result) {
		suite := result.Suites[suiteName]

		// Suite row - show check counts but no score
		t.AppendRow(table.Row{
			"Suite",
			suiteName,
			"",
			"-",
			suite.Stats.Passed,
			suite.Stats.Failed,
			suite.Stats.Skipped,
			getResultString(suite.Status),
			"",
		})

		i := 0
		for key, check := range suite.Checks {
			prefix := "├─"
			if i == len(suite.Checks)-1 {
				prefix = "└─"
			}

			t.AppendRow(table.Row{
				"",
				fmt.Sprintf("%s %s", prefix, key),
				check.Level,
				fmt.Sprintf("%d/%d", check.Score, check.OutOf),
				boolToInt(check.Status == types.CheckStatusPass),
				boolToInt(check.Status == types.CheckStatusFail),
				boolToInt(check.Status == types.CheckStatusSkip),
				getResultString(check.Status),
				formatMessages(check),
			})
			i++
		}

		t.AppendSeparator()
	}

	// Update the table style setting based on result status
	if result.Status == types.CheckStatusPass {
		t.SetStyle(table.StyleColoredBlackOnGreenWhite)
	} else if result.Status == types.CheckStatusSkip {
		t.SetStyle(table.StyleColoredBlackOnYellowWhite)
	} else {
		t.SetStyle(table.StyleColoredBlackOnRedWhite)
	}

	// Add summary footer
	t.AppendFooter(table.Row{
		"TOTAL",
		"",
		"",
		result.Stats.Total,
		result.Stats.Passed,
		result.Stats.Failed,
		result.Stats.Skipped,
		getResultString(result.Status),
		"",
	})

	t.Render()

	fmt.Println(result.String())

	return nil
}

// formatMessages collapses a check's diagnostics into one cell
func formatMessages(check *types.CheckResult) string {
	msgs := check.Messages
	if check.Error != nil && len(msgs) == 0 {
		msgs = []string{check.Error.Error()}
	}
	return strings.Join(msgs, "; ")
}

// sortedSuiteNames returns suite names in stable order for rendering
func sortedSuiteNames(result *runner.RunnerResult) []string {
	names := make([]string, 0, len(result.Suites))
	for name := range result.Suites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Helper function to format duration to seconds with 1 decimal place
func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
