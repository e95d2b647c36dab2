package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-summarizer/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently executed searches",
	Long: `History lists past searches recorded in the local SQLite database:
the term, the requested result bound, how many records came back, and when
the search ran. Feed content is never stored, only query metadata.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 0, "maximum number of entries to list (default 10)")
	historyCmd.Flags().Bool("json", false, "output entries as JSON")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := loadConfig().History
	if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 {
		cfg.Limit = limit
	}

	store, err := history.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No searches recorded yet.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-30s  %-6s  %-8s  %s\n", "Term", "Bound", "Results", "When")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 70))
	for _, e := range entries {
		fmt.Fprintf(os.Stdout, "%-30s  %-6d  %-8d  %s\n",
			e.Term, e.MaxResults, e.Results, e.At.Local().Format(time.DateTime))
	}
	return nil
}
