// Package cmd defines the command-line interface for gitpulse.
package cmd

import (
	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(plotCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Persistent flags shared by every command
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default "+contract.DefaultConfigFile+")")
	rootCmd.PersistentFlags().String("raw", "", "Path to the raw snapshot log")
	rootCmd.PersistentFlags().String("proc", "", "Directory for processed per-repo records")
	rootCmd.PersistentFlags().String("plots", "", "Directory for rendered charts")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Cannot bind persistent flags", err)
	}

	// Command-specific flags
	verifyCmd.Flags().String("data", "", "Path to the raw snapshot log to audit")
	if err := viper.BindPFlags(verifyCmd.Flags()); err != nil {
		contract.LogFatal("Cannot bind verify flags", err)
	}

	exportCmd.Flags().String("output-file", "", "Output path prefix for the Parquet files")
	if err := viper.BindPFlags(exportCmd.Flags()); err != nil {
		contract.LogFatal("Cannot bind export flags", err)
	}
}
