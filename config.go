package suitegen

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	"github.com/compliance-tools/suitegen/flags"
)

// Config holds the application configuration
type Config struct {
	SuiteFiles   []string      // YAML suite descriptor files to synthesize
	DatasetPaths []string      // Dataset files checks run against
	RunInterval  time.Duration // Interval between check runs
	RunOnce      bool          // Indicates if the service should exit after one run
	LogDir       string        // Directory to store check result logs
	Log          log.Logger
}

// NewConfig creates a new Config from cli context
func NewConfig(ctx *cli.Context, log log.Logger, suiteFiles []string, datasetPaths []string) (*Config, error) {
	if err := flags.CheckRequired(ctx); err != nil {
		return nil, fmt.Errorf("missing required flags: %w", err)
	}
	if len(suiteFiles) == 0 {
		return nil, errors.New("at least one suite descriptor file is required")
	}
	if len(datasetPaths) == 0 {
		return nil, errors.New("at least one dataset path is required")
	}

	absSuiteFiles := make([]string, len(suiteFiles))
	for i, f := range suiteFiles {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve absolute path for suite file '%s': %w", f, err)
		}
		absSuiteFiles[i] = abs
	}

	absDatasets := make([]string, len(datasetPaths))
	for i, d := range datasetPaths {
		abs, err := filepath.Abs(d)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve absolute path for dataset '%s': %w", d, err)
		}
		absDatasets[i] = abs
	}

	runInterval := ctx.Duration(flags.RunInterval.Name)
	runOnce := runInterval == 0

	// Get log directory, default to "logs" if not specified
	logDir := ctx.String(flags.LogDir.Name)
	if logDir == "" {
		logDir = "logs"
	}
	logDir, err := filepath.Abs(logDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path for log directory '%s': %w", logDir, err)
	}

	return &Config{
		SuiteFiles:   absSuiteFiles,
		DatasetPaths: absDatasets,
		RunInterval:  runInterval,
		RunOnce:      runOnce,
		LogDir:       logDir,
		Log:          log,
	}, nil
}
