package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gcli2api",
	Short: "Usage telemetry service with a control panel API",
	Long: `gcli2api keeps a bounded in-memory record of API usage events and
serves aggregated views of them over a password-protected panel API.

Quick start:
  gcli2api init      # Interactive setup wizard
  gcli2api serve     # Start the service

Management:
  gcli2api usage     # Query a running service
  gcli2api validate  # Validate configuration`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "gcli2api.yaml", "config file path")
}
