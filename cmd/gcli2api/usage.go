package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/Aurora-NEW/gcli2api/domain/usage"
	"github.com/spf13/cobra"
)

var (
	usageAddr     string
	usagePassword string
	usageJSON     bool
	resetFilename string
)

var panelClient = &http.Client{Timeout: 10 * time.Second}

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Inspect and reset usage statistics on a running server",
	Long: `Usage talks to a running gcli2api server over its panel API.

The password is read from --password or the GCLI2API_PANEL_PASSWORD
environment variable.`,
}

var usageStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Per-source statistics for the last 24 hours",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := panelGet("/usage/stats")
		if err != nil {
			return err
		}
		if usageJSON {
			return printJSON(data)
		}

		var stats map[string]usage.SourceStats
		if err := json.Unmarshal(data, &stats); err != nil {
			return fmt.Errorf("decoding stats: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No usage recorded in the last 24 hours.")
			return nil
		}

		sources := make([]string, 0, len(stats))
		for source := range stats {
			sources = append(sources, source)
		}
		sort.Strings(sources)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SOURCE\tCALLS\tSUCCESS\tFAILED\tTOKENS")
		fmt.Fprintln(w, "------\t-----\t-------\t------\t------")
		for _, source := range sources {
			s := stats[source]
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n", source, s.Calls, s.Success, s.Failed, s.Tokens)
		}
		return w.Flush()
	},
}

var usageSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Aggregated totals for the last 24 hours",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := panelGet("/usage/aggregated")
		if err != nil {
			return err
		}
		if usageJSON {
			return printJSON(data)
		}

		var agg usage.AggregatedStats
		if err := json.Unmarshal(data, &agg); err != nil {
			return fmt.Errorf("decoding summary: %w", err)
		}

		fmt.Printf("total calls:     %d\n", agg.TotalCalls)
		fmt.Printf("sources:         %d\n", agg.TotalFiles)
		fmt.Printf("calls per file:  %.2f\n", agg.AvgCallsPerFile)
		return nil
	},
}

var usageSnapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Full drill-down over all retained events",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := panelGet("/usage/snapshot")
		if err != nil {
			return err
		}
		if usageJSON {
			return printJSON(data)
		}

		var snap usage.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return fmt.Errorf("decoding snapshot: %w", err)
		}

		fmt.Printf("total requests:  %d (%d ok, %d failed)\n", snap.TotalRequests, snap.SuccessCount, snap.FailureCount)
		fmt.Printf("total tokens:    %d\n", snap.TotalTokens)

		if len(snap.APIs) > 0 {
			fmt.Println()
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "API\tMODEL\tREQUESTS\tTOKENS")
			fmt.Fprintln(w, "---\t-----\t--------\t------")
			for _, api := range sortedKeys(snap.APIs) {
				for _, model := range sortedKeys(snap.APIs[api].Models) {
					m := snap.APIs[api].Models[model]
					fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", api, model, m.TotalRequests, m.TotalTokens)
				}
			}
			if err := w.Flush(); err != nil {
				return err
			}
		}

		if len(snap.RequestsByDay) > 0 {
			fmt.Println()
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DAY\tREQUESTS\tTOKENS")
			fmt.Fprintln(w, "---\t--------\t------")
			for _, day := range sortedKeys(snap.RequestsByDay) {
				fmt.Fprintf(w, "%s\t%d\t%d\n", day, snap.RequestsByDay[day], snap.TokensByDay[day])
			}
			if err := w.Flush(); err != nil {
				return err
			}
		}
		return nil
	},
}

var usageResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset usage statistics",
	Long: `Reset removes retained events. Without --filename every event is
removed; with it only events from that source are removed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]string{}
		if resetFilename != "" {
			body["filename"] = resetFilename
		}

		env, err := panelPost("/usage/reset", body)
		if err != nil {
			return err
		}
		fmt.Println(env.Message)
		return nil
	},
}

func init() {
	usageCmd.PersistentFlags().StringVar(&usageAddr, "addr", "http://localhost:8080", "server address")
	usageCmd.PersistentFlags().StringVar(&usagePassword, "password", os.Getenv("GCLI2API_PANEL_PASSWORD"), "panel password")
	usageCmd.PersistentFlags().BoolVar(&usageJSON, "json", false, "print raw JSON instead of tables")
	usageResetCmd.Flags().StringVar(&resetFilename, "filename", "", "reset only this source")

	usageCmd.AddCommand(usageStatsCmd)
	usageCmd.AddCommand(usageSummaryCmd)
	usageCmd.AddCommand(usageSnapshotCmd)
	usageCmd.AddCommand(usageResetCmd)
	rootCmd.AddCommand(usageCmd)
}

// panelEnvelope mirrors the panel API response wrapper.
type panelEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Removed *int            `json:"removed"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func panelGet(path string) (json.RawMessage, error) {
	env, err := panelDo(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

func panelPost(path string, body any) (*panelEnvelope, error) {
	return panelDo(http.MethodPost, path, body)
}

func panelDo(method, path string, body any) (*panelEnvelope, error) {
	if usagePassword == "" {
		return nil, fmt.Errorf("no panel password: use --password or set GCLI2API_PANEL_PASSWORD")
	}

	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return nil, err
		}
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, usageAddr+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Panel-Token", usagePassword)
	req.Header.Set("Content-Type", "application/json")

	resp, err := panelClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", usageAddr+path, err)
	}
	defer resp.Body.Close()

	var env panelEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decoding response (status %d): %w", resp.StatusCode, err)
	}
	if !env.Success {
		if env.Error != nil {
			return nil, fmt.Errorf("server error: %s (%s)", env.Error.Message, env.Error.Code)
		}
		return nil, fmt.Errorf("server error: status %d", resp.StatusCode)
	}
	return &env, nil
}

func printJSON(data json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return err
	}
	fmt.Println(buf.String())
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
