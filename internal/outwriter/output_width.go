package outwriter

import (
	"os"

	"github.com/vitalscan/vitalscan/internal/contract"
	"golang.org/x/term"
)

// getMaxTableURLWidth calculates the maximum width for URLs in table output
// based on terminal width and table configuration.
func getMaxTableURLWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed metric columns with borders and padding
	baseWidth := 95 // Strategy + Score + Rating + six metric columns

	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable URL width
		return 15
	}
	if available > 60 {
		// Maximum URL width to prevent overly long rows
		return 60
	}
	return available
}
