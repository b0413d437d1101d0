package outwriter

import (
	"fmt"
	"os"

	"github.com/gitpulse/gitpulse/core"
	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintGapReport renders the sorted window-gap distribution as a table.
func PrintGapReport(gaps []core.WindowGap, cfg *contract.Config) error {
	fmt.Println("Expect to see:")
	fmt.Printf("- If every day has traffic, 13-%d days (all have complete lists)\n", core.WindowDays)
	fmt.Printf("- If traffic is sparse, 0-%d days (due to incomplete lists)\n", core.WindowDays)
	fmt.Println()

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Repo", "Gap (days)", "Window"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := GetMaxTableRepoWidth(cfg)
	var data [][]string
	for _, gap := range gaps {
		row := []string{
			TruncateRepo(gap.Repo, maxWidth),
			fmt.Sprintf("%2.3f", gap.GapDays),
			contract.GetColorGapLabel(gap.GapDays),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Checked %d snapshots.\n", len(gaps))
	return nil
}

// PrintGapViolation highlights an out-of-range gap after the distribution
// has been printed.
func PrintGapViolation(err error) {
	fmt.Println()
	fmt.Println(contract.BadColor.Sprint("Window invariant violated:"), err)
}
