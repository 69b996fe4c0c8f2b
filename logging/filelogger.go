// Package logging persists check results to per-run log files: one file
// per check under passed/ and failed/, plus a combined all.log and a run
// summary.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/acarl005/stripansi"

	"github.com/compliance-tools/suitegen/types"
)

const (
	// RunDirectoryPrefix is the standardized prefix for run directories
	RunDirectoryPrefix = "checkrun-"

	summaryFilename = "summary.log"
	allLogsFilename = "all.log"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// FileLogger handles writing check results to files
type FileLogger struct {
	baseDir     string // Base directory for logs
	logDir      string // Directory for this run
	passedDir   string
	failedDir   string
	summaryFile string
	allLogsFile string
	runID       string
	mu          sync.Mutex // Protects concurrent file operations
}

// NewFileLogger creates a FileLogger rooted at baseDir for the given run
func NewFileLogger(baseDir string, runID string) (*FileLogger, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("baseDir cannot be empty")
	}
	if runID == "" {
		return nil, fmt.Errorf("runID cannot be empty")
	}

	logDir := filepath.Join(baseDir, RunDirectoryPrefix+runID)
	l := &FileLogger{
		baseDir:     baseDir,
		logDir:      logDir,
		passedDir:   filepath.Join(logDir, "passed"),
		failedDir:   filepath.Join(logDir, "failed"),
		summaryFile: filepath.Join(logDir, summaryFilename),
		allLogsFile: filepath.Join(logDir, allLogsFilename),
		runID:       runID,
	}

	for _, dir := range []string{baseDir, logDir, l.passedDir, l.failedDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
		}
	}
	return l, nil
}

// GetRunID returns the run identifier this logger writes under
func (l *FileLogger) GetRunID() string {
	return l.runID
}

// GetDirectory returns the run's log directory
func (l *FileLogger) GetDirectory() string {
	return l.logDir
}

// LogResult writes one check result to its own file and appends it to the
// combined log. Output is ANSI-stripped so files stay grep-friendly.
func (l *FileLogger) LogResult(result *types.CheckResult) error {
	content := renderResult(result)

	dir := l.passedDir
	if result.Status == types.CheckStatusFail || result.Status == types.CheckStatusError {
		dir = l.failedDir
	}

	name := safeFilename(fmt.Sprintf("%s_%s", result.Suite, result.CheckID)) + ".log"

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := appendFile(filepath.Join(dir, name), content); err != nil {
		return err
	}
	return appendFile(l.allLogsFile, content)
}

// LogSummary writes the run summary file
func (l *FileLogger) LogSummary(summary string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return os.WriteFile(l.summaryFile, []byte(stripansi.Strip(summary)), 0644)
}

func renderResult(result *types.CheckResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== %s / %s\n", result.Suite, result.CheckID)
	fmt.Fprintf(&b, "dataset:  %s\n", result.Dataset)
	fmt.Fprintf(&b, "label:    %s\n", stripansi.Strip(result.Label))
	fmt.Fprintf(&b, "level:    %s\n", result.Level)
	fmt.Fprintf(&b, "status:   %s\n", result.Status)
	fmt.Fprintf(&b, "score:    %d/%d\n", result.Score, result.OutOf)
	fmt.Fprintf(&b, "duration: %s\n", result.Duration)
	for _, msg := range result.Messages {
		fmt.Fprintf(&b, "message:  %s\n", stripansi.Strip(msg))
	}
	if result.Error != nil {
		fmt.Fprintf(&b, "error:    %s\n", stripansi.Strip(result.Error.Error()))
	}
	b.WriteString("\n")
	return b.String()
}

func safeFilename(name string) string {
	return unsafeFilenameChars.ReplaceAllString(name, "_")
}

func appendFile(path string, content string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("failed to write log file %s: %w", path, err)
	}
	return nil
}
