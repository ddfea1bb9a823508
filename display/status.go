// Package display turns job records into terminal output: a block-letter
// banner and a boxed status table. Functions return strings; printing is
// left to the caller.
package display

import (
	"github.com/pterm/pterm"
	"github.com/teranos/jobs/jobs"
)

// DefaultStatusColor is used for any status without an explicit mapping.
// It matches the Applied color.
const DefaultStatusColor = pterm.FgLightYellow

// StatusColor returns the display color for a status. Matching is exact:
// no case folding, no trimming.
func StatusColor(status jobs.Status) pterm.Color {
	switch status {
	case jobs.StatusAccepted:
		return pterm.FgLightGreen
	case jobs.StatusApplied:
		return pterm.FgLightYellow
	case jobs.StatusRejected:
		return pterm.FgLightRed
	default:
		return DefaultStatusColor
	}
}
