package main

import (
	"bufio"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	initPort           int
	initPassword       string
	initNonInteractive bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration file interactively",
	Long: `Init walks through the settings the service needs and writes a
configuration file. Run it once before the first 'gcli2api serve'.

In non-interactive mode it accepts every default, which is useful
for scripted setups:

  gcli2api init --non-interactive --password my-secret`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().IntVar(&initPort, "port", 8080, "port the server listens on")
	initCmd.Flags().StringVar(&initPassword, "password", "", "panel password (generated if empty)")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "accept defaults without prompting")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(os.Stdin)

	if _, err := os.Stat(cfgFile); err == nil {
		if initNonInteractive {
			return fmt.Errorf("%s already exists, refusing to overwrite in non-interactive mode", cfgFile)
		}
		if !confirm(reader, fmt.Sprintf("%s already exists. Overwrite?", cfgFile)) {
			fmt.Println("Aborted.")
			return nil
		}
	}

	host := "0.0.0.0"
	port := initPort
	capacity := 50000
	password := initPassword

	if !initNonInteractive {
		fmt.Println("gcli2api setup")
		fmt.Println()

		host = prompt(reader, "Listen host", host)
		port = promptInt(reader, "Listen port", port)
		capacity = promptInt(reader, "Event capacity (oldest events are dropped beyond this)", capacity)
		if password == "" {
			password = prompt(reader, "Panel password (leave empty to generate)", "")
		}
	}

	generated := false
	if password == "" {
		var err error
		password, err = generatePassword()
		if err != nil {
			return fmt.Errorf("generating password: %w", err)
		}
		generated = true
	}

	content := generateConfig(host, port, capacity, password)
	if err := os.WriteFile(cfgFile, []byte(content), 0600); err != nil {
		return fmt.Errorf("writing %s: %w", cfgFile, err)
	}

	fmt.Println()
	fmt.Printf("Wrote %s\n", cfgFile)
	if generated {
		fmt.Println()
		fmt.Println("Panel password (save this, it is shown once):")
		fmt.Printf("  %s\n", password)
	}
	fmt.Println()
	fmt.Println("Run 'gcli2api serve' to start the server.")
	return nil
}

func prompt(reader *bufio.Reader, label, def string) string {
	if def != "" {
		fmt.Printf("%s [%s]: ", label, def)
	} else {
		fmt.Printf("%s: ", label)
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		return def
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

func promptInt(reader *bufio.Reader, label string, def int) int {
	for {
		line := prompt(reader, label, strconv.Itoa(def))
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Println("Please enter a number.")
			continue
		}
		return n
	}
}

func confirm(reader *bufio.Reader, label string) bool {
	line := prompt(reader, label+" (y/N)", "")
	line = strings.ToLower(line)
	return line == "y" || line == "yes"
}

func generatePassword() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf)[:16], nil
}

func generateConfig(host string, port, capacity int, password string) string {
	return fmt.Sprintf(`# gcli2api configuration
# Generated by 'gcli2api init'. Edit as needed; the server reloads
# this file on change when started with hot reload (the default).

server:
  host: %s
  port: %d
  read_timeout: 30s
  write_timeout: 60s
  shutdown_timeout: 10s

panel:
  # Plaintext password for the panel API. For production, replace with
  # password_hash (bcrypt) and remove this line.
  password: %s
  session_ttl: 24h

usage:
  # Maximum events kept in memory. Oldest events are dropped first.
  capacity: %d
  # Maximum events accepted in a single ingest request.
  max_batch: 1000

logging:
  level: info
  format: json

metrics:
  enabled: true
  path: /metrics

openapi:
  enabled: true
`, host, port, password, capacity)
}
