package metrics

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/compliance-tools/suitegen/types"
)

const (
	MetricsNamespace = "suitegen"
)

var (
	Debug        bool = true
	validResults      = []types.CheckStatus{
		types.CheckStatusPass, types.CheckStatusFail,
		types.CheckStatusSkip, types.CheckStatusError,
	}
	nonAlphanumericRegex = regexp.MustCompile(`[^a-zA-Z ]+`)

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "errors_total",
		Help:      "Count of errors",
	}, []string{
		"error",
	})

	checksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "checks_total",
		Help:      "Count of check invocations",
	}, []string{
		"suite",
		"run_id",
		"check",
		"result",
	})

	runResults = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "run_results",
		Help:      "Result of check runs",
	}, []string{
		"run_id",
		"result",
	})

	runChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "run_checks_total",
		Help:      "Total number of checks in a run",
	}, []string{
		"run_id",
	})

	runChecksPassed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "run_checks_passed",
		Help:      "Number of passed checks in a run",
	}, []string{
		"run_id",
	})

	runChecksFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "run_checks_failed",
		Help:      "Number of failed checks in a run",
	}, []string{
		"run_id",
	})

	runDuration = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "run_duration",
		Help:      "Duration of check runs",
	}, []string{
		"run_id",
	})
)

// errToLabel tries to make the error string a more valid Prometheus label
func errToLabel(err error) string {
	if err == nil {
		return "nil"
	}
	errClean := nonAlphanumericRegex.ReplaceAllString(err.Error(), "")
	errClean = strings.ReplaceAll(errClean, " ", "_")
	errClean = strings.ReplaceAll(errClean, "__", "_")
	return errClean
}

func RecordError(error string) {
	if Debug {
		log.Debug("metric inc",
			"m", "errors_total",
			"error", error,
		)
	}
	errorsTotal.WithLabelValues(error).Inc()
}

// RecordErrorDetails concats the error message to the label
// and also tries to clean the label to be a valid Prometheus label
func RecordErrorDetails(label string, err error) {
	if err == nil {
		return
	}
	label = fmt.Sprintf("%s.%s", label, errToLabel(err))
	RecordError(label)
}

func RecordCheck(suite string, runID string, checkID string, result types.CheckStatus) {
	if !isValidResult(result) {
		log.Error("RecordCheck - invalid result", "result", result)
		return
	}
	if Debug {
		log.Debug("metric inc",
			"m", "checks_total",
			"suite", suite,
			"run_id", runID,
			"check", checkID,
			"result", result)
	}
	checksTotal.WithLabelValues(suite, runID, checkID, string(result)).Inc()
}

func RecordRun(
	runID string,
	result string,
	total int,
	passed int,
	failed int,
	duration time.Duration,
) {
	runResults.WithLabelValues(runID, result).Set(1)
	runChecksTotal.WithLabelValues(runID).Add(float64(total))
	runChecksPassed.WithLabelValues(runID).Add(float64(passed))
	runChecksFailed.WithLabelValues(runID).Add(float64(failed))
	runDuration.WithLabelValues(runID).Set(duration.Seconds())
}

func isValidResult(result types.CheckStatus) bool {
	return slices.Contains(validResults, result)
}
