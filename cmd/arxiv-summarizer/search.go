package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-summarizer/internal/feed"
	"github.com/pdiddy/arxiv-summarizer/internal/history"
	"github.com/pdiddy/arxiv-summarizer/internal/summarize"
	"github.com/pdiddy/arxiv-summarizer/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search arXiv for articles matching a term",
	Long: `Search fetches articles from the arXiv API for a search term, normalizes
the feed into records sorted by publication timestamp (newest first), and
prints them as a table, JSON, or YAML.

With --summarize each abstract is replaced by a model-generated summary and
one more summary is computed over all abstracts together.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Int("start", 0, "starting index of results")
	searchCmd.Flags().Int("max-results", 0, "maximum number of results to return (1-100, default 10)")
	searchCmd.Flags().Bool("summarize", false, "summarize abstracts through the configured model provider")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().Bool("yaml", false, "output results as YAML")
	searchCmd.Flags().Bool("no-history", false, "do not record the search in the history database")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	term := args[0]
	cfg := loadConfig()

	start, _ := cmd.Flags().GetInt("start")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults == 0 {
		maxResults = cfg.Feed.MaxResults
	}
	summarizeOn, _ := cmd.Flags().GetBool("summarize")

	client := feed.NewClient(cfg.Feed)
	doc, err := client.Fetch(cmd.Context(), term, start, maxResults)
	if err != nil {
		return err
	}

	rs := types.ResultSet{Term: term}
	if summarizeOn {
		sum, err := summarize.Default(cfg.Summarizer)
		if err != nil {
			return err
		}
		if rs.Records, rs.OverallSummary, err = feed.ParseAndSummarize(cmd.Context(), doc, sum); err != nil {
			return err
		}
	} else {
		if rs.Records, err = feed.Parse(doc); err != nil {
			return err
		}
	}

	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		recordSearch(cmd, cfg.History, term, maxResults, len(rs.Records))
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	yamlOutput, _ := cmd.Flags().GetBool("yaml")
	switch {
	case jsonOutput:
		return feed.FormatJSON(rs, os.Stdout)
	case yamlOutput:
		return feed.FormatYAML(rs, os.Stdout)
	default:
		feed.FormatTable(rs, os.Stdout)
		return nil
	}
}

// recordSearch stores the search in the history database. History failures
// never fail the search itself.
func recordSearch(cmd *cobra.Command, cfg types.HistoryConfig, term string, maxResults, results int) {
	store, err := history.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open history: %v\n", err)
		return
	}
	defer store.Close()

	if err := store.Record(cmd.Context(), term, maxResults, results); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record search: %v\n", err)
	}
}
