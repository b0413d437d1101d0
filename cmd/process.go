package cmd

import (
	"fmt"

	"github.com/gitpulse/gitpulse/core"
	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/internal/procstore"
	"github.com/gitpulse/gitpulse/internal/rawlog"
	"github.com/spf13/cobra"
)

// processCmd rebuilds the processed per-repository records from the raw log.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Reconcile raw snapshots into one canonical record per repository",
	Long: `Read the full raw snapshot log, reconcile the overlapping trailing
windows of every repository into one continuous, gap-filled daily series, and
write one JSON record per repository.

The processed directory is wiped and fully rebuilt on every run; the raw log
is always the source of truth. Overlapping snapshots that disagree on a day's
traffic abort that repository's record, but never the rest of the batch.`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		snaps, err := rawlog.NewStore(cfg.RawFile).ReadAll()
		if err != nil {
			contract.LogFatal("Cannot read raw log", err)
		}

		processed, procErr := core.ProcessAll(snaps)
		if procErr != nil {
			contract.LogWarn("Some repositories failed to process", procErr)
		}

		if err := procstore.NewStore(cfg.ProcDir).WriteAll(processed); err != nil {
			contract.LogFatal("Cannot write processed records", err)
		}

		fmt.Printf("Processed %d repositories from %d snapshots into %s\n",
			len(processed), len(snaps), cfg.ProcDir)
		if procErr != nil {
			contract.LogFatal("Processing incomplete", procErr)
		}
	},
}
