package main

import (
	"fmt"
	"os"

	"github.com/Aurora-NEW/gcli2api/bootstrap"
	"github.com/Aurora-NEW/gcli2api/config"
	"github.com/spf13/cobra"
)

var (
	hotReload bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the usage telemetry service",
	Long: `Start the gcli2api service.

The server will:
  - Load configuration from gcli2api.yaml (or --config)
  - Or load configuration from GCLI2API_* environment variables
  - Accept usage events and serve aggregated views
  - Protect the panel API with the configured password

Environment variables (for Docker deployments):
  GCLI2API_PANEL_PASSWORD       - Panel password (required)
  GCLI2API_PANEL_PASSWORD_HASH  - Bcrypt hash alternative to the password
  GCLI2API_SERVER_PORT          - Server port (default: 8080)
  GCLI2API_USAGE_CAPACITY       - Retained event cap (default: 50000)
  GCLI2API_LOG_LEVEL            - Log level: debug, info, warn, error

Examples:
  gcli2api serve
  gcli2api serve --config /etc/gcli2api/config.yaml
  gcli2api serve --hot-reload=false

  # Docker (env vars only):
  GCLI2API_PANEL_PASSWORD=secret gcli2api serve`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&hotReload, "hot-reload", true, "enable hot reload of configuration")
}

func runServe(cmd *cobra.Command, args []string) error {
	hasConfigFile := false
	if _, err := os.Stat(cfgFile); err == nil {
		hasConfigFile = true
	}

	hasEnvConfig := config.HasEnvConfig()

	// No configuration at all
	if !hasConfigFile && !hasEnvConfig {
		fmt.Println("No configuration found.")
		fmt.Println()
		fmt.Printf("Option 1: Run 'gcli2api init' to create %s\n", cfgFile)
		fmt.Println("Option 2: Set GCLI2API_PANEL_PASSWORD environment variable")
		fmt.Println()
		fmt.Println("Example (env vars):")
		fmt.Println("  GCLI2API_PANEL_PASSWORD=secret gcli2api serve")
		return nil
	}

	// Create application
	var app *bootstrap.App
	var err error

	if hasConfigFile && hotReload {
		// Hot reload only works with a config file
		app, err = bootstrap.NewWithHotReload(cfgFile)
	} else {
		// Load config (file with env overrides, or env-only)
		cfg, loadErr := config.LoadWithFallback(cfgFile)
		if loadErr != nil {
			return fmt.Errorf("error loading config: %w", loadErr)
		}

		if !hasConfigFile {
			fmt.Println("Running with environment variables (no config file)")
		}

		app, err = bootstrap.New(cfg)
	}

	if err != nil {
		return fmt.Errorf("error initializing: %w", err)
	}

	// Run (blocks until shutdown)
	return app.Run()
}
