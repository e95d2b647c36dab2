// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-summarizer/pkg/types"
)

// FormatTable writes the result set as a human-readable table to w.
func FormatTable(rs types.ResultSet, w io.Writer) {
	if len(rs.Records) == 0 {
		fmt.Fprintln(w, "No results found. Try a different search term.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-24s  %-20s  %s\n",
		"Rank", "Title", "Authors", "Published", "Link")
	fmt.Fprintln(w, strings.Repeat("-", 130))

	for i, r := range rs.Records {
		fmt.Fprintf(w, "%-4d  %-60s  %-24s  %-20s  %s\n",
			i+1, truncate(r.Title, 60), formatAuthors(r.Authors), truncate(r.Published, 20), r.Link)
	}

	fmt.Fprintf(w, "\n%d results for %q\n", len(rs.Records), rs.Term)

	if rs.OverallSummary != "" {
		fmt.Fprintf(w, "\nOverall summary:\n%s\n", rs.OverallSummary)
	}
}

// FormatJSON writes the result set as indented JSON to w.
func FormatJSON(rs types.ResultSet, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rs)
}

// FormatYAML writes the result set as YAML to w.
func FormatYAML(rs types.ResultSet, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(rs)
}

func formatAuthors(authors string) string {
	names := strings.Split(authors, ", ")
	switch {
	case authors == "":
		return ""
	case len(names) == 1:
		return truncate(names[0], 24)
	default:
		return truncate(names[0], 18) + " et al."
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
