// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/gitpulse/gitpulse/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableRepoWidth calculates the maximum width for repository names in
// table output based on terminal width.
func GetMaxTableRepoWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the gap and label columns plus table borders.
	available := termWidth - 30
	if available < 15 {
		return 15
	}
	if available > 60 {
		return 60
	}
	return available
}

// TruncateRepo shortens a repository name to the given width, keeping the
// tail, which carries the repository's own name.
func TruncateRepo(repo string, width int) string {
	if len(repo) <= width || width <= 3 {
		return repo
	}
	return "..." + repo[len(repo)-(width-3):]
}
