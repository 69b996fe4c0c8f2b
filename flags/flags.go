package flags

import (
	"fmt"

	"github.com/urfave/cli/v2"

	opservice "github.com/ethereum-optimism/optimism/op-service"
	opflags "github.com/ethereum-optimism/optimism/op-service/flags"
	oplog "github.com/ethereum-optimism/optimism/op-service/log"
	opmetrics "github.com/ethereum-optimism/optimism/op-service/metrics"
	oprpc "github.com/ethereum-optimism/optimism/op-service/rpc"
)

const EnvVarPrefix = "SUITEGEN"

var (
	SuiteFile = &cli.StringSliceFlag{
		Name:     "suite",
		Required: true,
		EnvVars:  opservice.PrefixEnvVar(EnvVarPrefix, "SUITE"),
		Usage:    "Path to a suite descriptor file (eg. 'suite.yaml'). May be repeated.",
	}
	DatasetPath = &cli.StringSliceFlag{
		Name:     "dataset",
		Required: true,
		EnvVars:  opservice.PrefixEnvVar(EnvVarPrefix, "DATASET"),
		Usage:    "Path to a dataset file to run checks against. May be repeated.",
	}
	RunInterval = &cli.DurationFlag{
		Name:    "run-interval",
		Value:   0,
		EnvVars: opservice.PrefixEnvVar(EnvVarPrefix, "RUN_INTERVAL"),
		Usage:   "Interval between check runs (e.g. '1h', '30m'). Set to 0 or omit for run-once mode.",
	}
	LogDir = &cli.StringFlag{
		Name:    "logdir",
		Value:   "logs",
		EnvVars: opservice.PrefixEnvVar(EnvVarPrefix, "LOGDIR"),
		Usage:   "Directory to store per-check result logs",
	}
)

var requiredFlags = []cli.Flag{
	SuiteFile,
	DatasetPath,
}

var optionalFlags = []cli.Flag{
	RunInterval,
	LogDir,
}
var Flags []cli.Flag

func init() {
	optionalFlags = append(optionalFlags, oprpc.CLIFlags(EnvVarPrefix)...)
	optionalFlags = append(optionalFlags, oplog.CLIFlags(EnvVarPrefix)...)
	optionalFlags = append(optionalFlags, opmetrics.CLIFlags(EnvVarPrefix)...)

	Flags = append(requiredFlags, optionalFlags...)
}

func CheckRequired(ctx *cli.Context) error {
	for _, f := range requiredFlags {
		if !ctx.IsSet(f.Names()[0]) {
			return fmt.Errorf("flag %s is required", f.Names()[0])
		}
	}
	return opflags.CheckRequiredXor(ctx)
}
