package main

import (
	"fmt"

	"github.com/Aurora-NEW/gcli2api/bootstrap"
	"github.com/spf13/cobra"
)

var (
	// Set via ldflags at build time
	commit    = "none"
	buildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gcli2api %s\n", bootstrap.Version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", buildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
