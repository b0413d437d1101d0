package cmd

import (
	"fmt"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/internal/plotter"
	"github.com/gitpulse/gitpulse/internal/procstore"
	"github.com/spf13/cobra"
)

// plotCmd renders the processed records as HTML charts.
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render processed traffic records as HTML charts",
	Long: `Read every processed record and render one self-contained HTML page
per repository: the daily clone/view series on the canonical date axis plus
the star/fork/watcher counters per poll.

The plot directory is wiped and rebuilt on every run, mirroring the processed
store's full-rebuild contract.`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		records, err := procstore.NewStore(cfg.ProcDir).LoadAll()
		if err != nil {
			contract.LogFatal("Cannot load processed records", err)
		}

		if err := plotter.WriteAll(records, cfg.PlotDir); err != nil {
			contract.LogFatal("Cannot render plots", err)
		}

		fmt.Printf("Rendered %d charts into %s\n", len(records), cfg.PlotDir)
	},
}
