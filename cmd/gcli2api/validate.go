package main

import (
	"fmt"
	"net"
	"os"

	"github.com/Aurora-NEW/gcli2api/config"
	"github.com/spf13/cobra"
)

const (
	checkMark = "\033[32m✓\033[0m"
	crossMark = "\033[31m✗\033[0m"
)

var checkListen bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	Long: `Validate checks the configuration file for errors without starting
the server. It reports each check as it runs and exits non-zero if
any check fails.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&checkListen, "check-listen", false, "verify the listen address can be bound")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	fmt.Printf("Validating %s\n\n", cfgFile)

	if _, err := os.Stat(cfgFile); err != nil {
		fmt.Printf("%s config file not found\n", crossMark)
		return fmt.Errorf("config file %s: %w", cfgFile, err)
	}
	fmt.Printf("%s config file exists\n", checkMark)

	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Printf("%s config is valid\n", crossMark)
		return err
	}
	fmt.Printf("%s config is valid\n", checkMark)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	if checkListen {
		ln, err := net.Listen("tcp", addr)
		if err != nil {
			fmt.Printf("%s listen address %s can be bound\n", crossMark, addr)
			return err
		}
		ln.Close()
		fmt.Printf("%s listen address %s can be bound\n", checkMark, addr)
	}

	authMode := "password"
	if cfg.Panel.PasswordHash != "" {
		authMode = "password hash (bcrypt)"
	}

	fmt.Println()
	fmt.Printf("  listen address:  %s\n", addr)
	fmt.Printf("  panel auth:      %s\n", authMode)
	fmt.Printf("  event capacity:  %d\n", cfg.Usage.Capacity)
	fmt.Printf("  max batch size:  %d\n", cfg.Usage.MaxBatch)
	fmt.Printf("  metrics:         %s\n", enabledString(cfg.Metrics.Enabled))
	fmt.Printf("  openapi:         %s\n", enabledString(cfg.OpenAPI.Enabled))

	fmt.Println("\nConfiguration OK")
	return nil
}

func enabledString(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
