// main is the entry point for the gitpulse CLI.
package main

import (
	"os"

	"github.com/gitpulse/gitpulse/cmd"
	"github.com/gitpulse/gitpulse/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogWarn("Command failed", err)
		os.Exit(1)
	}
}
