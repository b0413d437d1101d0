package cmd

import (
	"fmt"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/internal/parquet"
	"github.com/gitpulse/gitpulse/internal/procstore"
	"github.com/spf13/cobra"
)

// exportCmd exports processed records to Parquet files.
var exportCmd = &cobra.Command{
	Use:   "export --output-file <prefix>",
	Short: "Export processed traffic records to Parquet files",
	Long: `Flatten every processed record into two Parquet files: one row per
repository per canonical day, and one row per repository per poll.

The Parquet files can be used with Apache Spark, Pandas (via pyarrow),
DuckDB, and any other Parquet-compatible tool.`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := contract.RequireOutputFile(cfg); err != nil {
			contract.LogFatal("Cannot export records", err)
		}

		records, err := procstore.NewStore(cfg.ProcDir).LoadAll()
		if err != nil {
			contract.LogFatal("Cannot load processed records", err)
		}

		dailyRows := parquet.ConvertDailyRecords(records)
		dailyFile := cfg.OutputFile + ".daily_traffic.parquet"
		if err := parquet.WriteDailyTrafficParquet(dailyRows, dailyFile); err != nil {
			contract.LogFatal("Cannot write daily traffic", err)
		}
		fmt.Printf("Exported %d daily rows to: %s\n", len(dailyRows), dailyFile)

		pointRows := parquet.ConvertPointRecords(records)
		pointFile := cfg.OutputFile + ".point_counters.parquet"
		if err := parquet.WritePointCountersParquet(pointRows, pointFile); err != nil {
			contract.LogFatal("Cannot write point counters", err)
		}
		fmt.Printf("Exported %d point rows to: %s\n", len(pointRows), pointFile)
	},
}
