package suitegen

import (
	"github.com/compliance-tools/suitegen/types"
)

// Helper function to convert bool to int
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// getResultString returns a colored string representing the check result
func getResultString(status types.CheckStatus) string {
	switch status {
	case types.CheckStatusPass:
		return "✓ pass"
	case types.CheckStatusSkip:
		return "- skip"
	case types.CheckStatusError:
		return "! error"
	default:
		return "✗ fail"
	}
}
