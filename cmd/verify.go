package cmd

import (
	"github.com/gitpulse/gitpulse/core"
	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/internal/outwriter"
	"github.com/gitpulse/gitpulse/internal/rawlog"
	"github.com/spf13/cobra"
)

// verifyCmd audits the raw log against the trailing-window invariant.
var verifyCmd = &cobra.Command{
	Use:   "verify --data <raw log>",
	Short: "Audit raw snapshots against the trailing-window invariant",
	Long: `Check that every snapshot's earliest reported day lies within the
expected trailing-window distance of its fetch time, and print the sorted
distribution of gaps.

The reconciliation engine assumes the traffic API never reports further back
than its nominal window; this command catches a change in API behavior before
it can corrupt reconciliation. It never mutates data.`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := contract.RequireData(cfg); err != nil {
			contract.LogFatal("Cannot verify raw log", err)
		}

		snaps, err := rawlog.NewStore(cfg.DataFile).ReadAll()
		if err != nil {
			contract.LogFatal("Cannot read raw log", err)
		}

		gaps, verifyErr := core.VerifyWindows(snaps)
		if gaps != nil {
			if printErr := outwriter.PrintGapReport(gaps, cfg); printErr != nil {
				contract.LogWarn("Cannot print gap report", printErr)
			}
		}
		if verifyErr != nil {
			outwriter.PrintGapViolation(verifyErr)
			contract.LogFatal("Window invariant violated", verifyErr)
		}
	},
}
