package templates

import (
	"fmt"
	"html/template"
	"time"

	"github.com/compliance-tools/suitegen/types"
)

// GetTemplateFunc returns the centralized template functions used across the application
func GetTemplateFunc() template.FuncMap {
	return template.FuncMap{
		"formatDuration": func(d time.Duration) string {
			if d < time.Second {
				return fmt.Sprintf("%dms", d.Milliseconds())
			}
			return d.Truncate(time.Millisecond).String()
		},
		"getStatusClass": func(status types.CheckStatus) string {
			return getStatusString(status)
		},
		"getStatusText": func(status types.CheckStatus) string {
			return getStatusString(status)
		},
		"formatScore": func(score, outOf int) string {
			return fmt.Sprintf("%d/%d", score, outOf)
		},
		"getOverallStatus": func(stats ReportableStats) types.CheckStatus {
			if stats.FailedCount() > 0 {
				return types.CheckStatusFail
			}
			if stats.PassedCount() > 0 {
				return types.CheckStatusPass
			}
			return types.CheckStatusSkip
		},
	}
}

// ReportableStats is the minimal statistics view the template functions need
type ReportableStats interface {
	PassedCount() int
	FailedCount() int
}

// getStatusString returns a consistent lowercase status string
func getStatusString(status types.CheckStatus) string {
	switch status {
	case types.CheckStatusPass:
		return "pass"
	case types.CheckStatusFail:
		return "fail"
	case types.CheckStatusSkip:
		return "skip"
	case types.CheckStatusError:
		return "error"
	default:
		return "unknown"
	}
}
