package cmd

import (
	"fmt"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/internal/githubapi"
	"github.com/gitpulse/gitpulse/internal/rawlog"
	"github.com/spf13/cobra"
)

// fetchCmd polls the GitHub traffic API and appends one snapshot per
// configured repository to the raw log.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Poll the GitHub traffic API and append snapshots to the raw log",
	Long: `Fetch repository metadata plus clone and view traffic for every
configured repository and append one JSON line per repository to the raw log.

The traffic API only exposes a short trailing window of daily data, so fetch
is meant to run on a schedule (for example twice a week) to keep the log's
windows overlapping. Appended snapshots are never rewritten.`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := contract.RequireRepos(cfg); err != nil {
			contract.LogFatal("Cannot fetch traffic", err)
		}

		client := githubapi.NewClient(cfg.Token)
		store := rawlog.NewStore(cfg.RawFile)

		failed := 0
		for _, repo := range cfg.Repos {
			snap, err := client.FetchSnapshot(rootCtx, repo)
			if err != nil {
				contract.LogWarn(fmt.Sprintf("Cannot fetch %s", repo), err)
				failed++
				continue
			}
			if err := store.Append(*snap); err != nil {
				contract.LogFatal("Cannot append to raw log", err)
			}
			fmt.Printf("Fetched %s: %d stars, %d clone days, %d view days\n",
				repo, snap.Stars, len(snap.Clones.Daily), len(snap.Views.Daily))
		}

		if failed > 0 {
			contract.LogFatal("Fetch incomplete", fmt.Errorf("%d of %d repositories failed", failed, len(cfg.Repos)))
		}
	},
}
