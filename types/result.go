package types

import "time"

// CheckStatus represents the possible states of a check invocation
type CheckStatus string

const (
	CheckStatusPass  CheckStatus = "pass"
	CheckStatusFail  CheckStatus = "fail"
	CheckStatusSkip  CheckStatus = "skip"
	CheckStatusError CheckStatus = "error"
)

// CheckResult captures the outcome of invoking one synthesized check
// against one dataset
type CheckResult struct {
	CheckID  string
	Suite    string
	Dataset  string // Dataset path the check ran against
	Level    Level
	Score    int
	OutOf    int
	Label    string
	Messages []string
	Status   CheckStatus
	Error    error         // Check-local error, set for error status
	Duration time.Duration // Check execution time
}

// FullScore reports whether the check achieved its maximum score
func (r *CheckResult) FullScore() bool {
	return r.Score >= r.OutOf
}
