package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-summarizer/internal/feed"
	"github.com/pdiddy/arxiv-summarizer/internal/history"
	"github.com/pdiddy/arxiv-summarizer/internal/server"
	"github.com/pdiddy/arxiv-summarizer/internal/summarize"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive search page",
	Long: `Serve starts the web presentation layer: a search form, a result-count
input, the results table, and the optional overall summary. Each page load
re-executes the whole fetch-normalize-summarize cycle.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cfg.Server.Addr
	}

	hist, err := history.Open(cfg.History)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: search history disabled: %v\n", err)
		hist = nil
	} else {
		defer hist.Close()
	}

	// The model instance is built lazily on the first summarizing request
	// and reused for the process lifetime.
	summarizer := func() (*summarize.Summarizer, error) {
		return summarize.Default(cfg.Summarizer)
	}

	srv := server.New(feed.NewClient(cfg.Feed), summarizer, hist)

	fmt.Fprintf(os.Stderr, "Listening on %s\n", addr)
	return srv.Router().Run(addr)
}
