package suitegen

import (
	"context"

	"github.com/ethereum/go-ethereum/log"

	"github.com/compliance-tools/suitegen/runner"
)

// CheckExecutor is responsible for running synthesized suites.
type CheckExecutor interface {
	RunChecks(ctx context.Context) (*runner.RunnerResult, error)
}

// DefaultCheckExecutor implements the CheckExecutor interface.
type DefaultCheckExecutor struct {
	runner runner.CheckRunner
	logger log.Logger
}

// NewDefaultCheckExecutor creates a new DefaultCheckExecutor.
func NewDefaultCheckExecutor(runner runner.CheckRunner, logger log.Logger) *DefaultCheckExecutor {
	return &DefaultCheckExecutor{
		runner: runner,
		logger: logger,
	}
}

// RunChecks runs all checks and returns the results.
func (e *DefaultCheckExecutor) RunChecks(ctx context.Context) (*runner.RunnerResult, error) {
	e.logger.Info("Running all checks...")
	result, err := e.runner.RunAll(ctx)
	if err != nil {
		e.logger.Error("Error running checks", "error", err)
		return nil, err
	}
	e.logger.Info("Check run completed", "run_id", result.RunID, "status", result.Status)
	return result, nil
}
