package suitegen

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ethereum-optimism/optimism/op-service/cliapp"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/compliance-tools/suitegen/checklib/register"
	"github.com/compliance-tools/suitegen/exitcodes"
	"github.com/compliance-tools/suitegen/loader"
	"github.com/compliance-tools/suitegen/logging"
	"github.com/compliance-tools/suitegen/registry"
	"github.com/compliance-tools/suitegen/reporting"
	"github.com/compliance-tools/suitegen/runner"
	"github.com/compliance-tools/suitegen/synth"
	"github.com/compliance-tools/suitegen/types"
)

// Service implements the cliapp.Lifecycle interface.
var _ cliapp.Lifecycle = &Service{}

// Service loads suite descriptors, synthesizes check suites and runs them
// against the configured datasets.
type Service struct {
	ctx      context.Context
	config   *Config
	version  string
	registry *registry.Registry
	suites   []*synth.Suite
	result   *runner.RunnerResult

	fileLogger *logging.FileLogger
	scheduler  CheckScheduler
	executor   CheckExecutor
	formatter  ResultFormatter
	reporter   MetricsReporter

	shutdownCallback func(error) // Callback to signal application shutdown
}

func New(ctx context.Context, config *Config, version string, shutdownCallback func(error)) (*Service, error) {
	if config == nil {
		return nil, errors.New("config is required")
	}

	config.Log.Debug("Creating service with config",
		"suiteFiles", config.SuiteFiles,
		"datasetPaths", config.DatasetPaths,
		"runInterval", config.RunInterval,
		"runOnce", config.RunOnce)

	reg := registry.NewRegistry(registry.Config{Log: config.Log})
	if err := register.Register(reg); err != nil {
		return nil, fmt.Errorf("failed to populate registry: %w", err)
	}

	descriptors := make([]*types.SuiteDescriptor, 0, len(config.SuiteFiles))
	for _, file := range config.SuiteFiles {
		desc, err := loader.LoadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to load suite descriptor %q: %w", file, err)
		}
		descriptors = append(descriptors, desc)
	}

	suites, err := synth.SynthesizeAll(descriptors, reg)
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize suites: %w", err)
	}

	datasets := make([]types.Dataset, 0, len(config.DatasetPaths))
	for _, path := range config.DatasetPaths {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("dataset %q is not accessible: %w", path, err)
		}
		datasets = append(datasets, types.NewFileDataset(path))
	}

	fileLogger, err := logging.NewFileLogger(config.LogDir, uuid.New().String())
	if err != nil {
		return nil, fmt.Errorf("failed to create file logger: %w", err)
	}

	checkRunner, err := runner.NewCheckRunner(runner.Config{
		Suites:     suites,
		Datasets:   datasets,
		Log:        config.Log,
		FileLogger: fileLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create check runner: %w", err)
	}
	config.Log.Info("suitegen.New: synthesized suites and created check runner",
		"suites", len(suites), "datasets", len(datasets))

	return &Service{
		ctx:              ctx,
		config:           config,
		version:          version,
		registry:         reg,
		suites:           suites,
		fileLogger:       fileLogger,
		scheduler:        NewDefaultCheckScheduler(config.RunInterval, config.RunOnce, config.Log),
		executor:         NewDefaultCheckExecutor(checkRunner, config.Log),
		formatter:        NewConsoleResultFormatter(config.Log),
		reporter:         NewDefaultMetricsReporter(),
		shutdownCallback: shutdownCallback,
	}, nil
}

// Start runs the check suites periodically at the configured interval.
// Start implements the cliapp.Lifecycle interface.
func (s *Service) Start(ctx context.Context) error {
	// Exit with code 2 for runtime errors
	defer func() {
		if r := recover(); r != nil {
			s.config.Log.Error("Runtime error occurred", "error", r)
			os.Exit(exitcodes.RuntimeErr)
		}
	}()

	s.ctx = ctx

	if s.config.RunOnce {
		s.config.Log.Info("Starting suitegen in run-once mode")
	} else {
		s.config.Log.Info("Starting suitegen in continuous mode", "interval", s.config.RunInterval)
	}

	s.scheduler.RegisterCallback(s.runChecks)

	if err := s.scheduler.Start(ctx); err != nil {
		s.config.Log.Error("Runtime error running checks", "error", err)
		return cli.Exit(err.Error(), exitcodes.RuntimeErr)
	}

	// In run-once mode the scheduler already completed a full run
	if s.config.RunOnce {
		s.config.Log.Info("Checks completed, exiting (run-once mode)")

		if s.result != nil && s.result.Status == types.CheckStatusFail {
			s.config.Log.Warn("Run-once check run completed with failures, returning exit code 1")
			return NewCheckFailureError(s.result.String())
		}

		go func() {
			s.shutdownCallback(nil)
		}()
		return nil
	}

	s.config.Log.Debug("suitegen started successfully")
	return nil
}

// runChecks runs all suites once and processes the results.
func (s *Service) runChecks() error {
	result, err := s.executor.RunChecks(s.ctx)
	if err != nil {
		// Runtime error, not a check failure
		return NewRuntimeError(err)
	}
	s.result = result

	if err := s.formatter.FormatResults(result); err != nil {
		s.config.Log.Warn("Failed to format results", "error", err)
	}
	s.reporter.ReportResults(result.RunID, result)
	if err := s.fileLogger.LogSummary(result.String()); err != nil {
		s.config.Log.Warn("Failed to persist run summary", "error", err)
	}
	s.writeHTMLReport(result)

	s.config.Log.Info("Check run completed", "run_id", result.RunID, "status", result.Status)
	return nil
}

// writeHTMLReport renders the run report next to the per-check logs.
func (s *Service) writeHTMLReport(result *runner.RunnerResult) {
	sink, err := reporting.NewHTMLSink(s.fileLogger.GetDirectory())
	if err != nil {
		s.config.Log.Warn("Failed to create HTML report sink", "error", err)
		return
	}
	data := reporting.NewReportBuilder().BuildFromRunnerResult(result)
	if err := sink.Complete(data); err != nil {
		s.config.Log.Warn("Failed to write HTML report", "error", err)
	}
}

// Stop stops the suitegen service.
// Stop implements the cliapp.Lifecycle interface.
func (s *Service) Stop(ctx context.Context) error {
	s.config.Log.Info("Stopping suitegen")

	if err := s.scheduler.Stop(); err != nil {
		return err
	}

	s.config.Log.Info("suitegen stopped successfully")
	return nil
}

// Stopped returns true if the suitegen service is stopped.
// Stopped implements the cliapp.Lifecycle interface.
func (s *Service) Stopped() bool {
	return s.scheduler.Stopped()
}

// WaitForShutdown blocks until all goroutines have terminated.
// This is useful in tests to ensure complete cleanup before moving to the next test.
func (s *Service) WaitForShutdown(ctx context.Context) error {
	return s.scheduler.WaitForShutdown(ctx)
}

// Result returns the most recent run result, or nil before the first run.
func (s *Service) Result() *runner.RunnerResult {
	return s.result
}
