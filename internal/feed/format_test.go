// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pdiddy/arxiv-summarizer/pkg/types"
)

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(types.ResultSet{Term: "nothing"}, &buf)

	if !strings.Contains(buf.String(), "No results found") {
		t.Errorf("output = %q, want no-results warning", buf.String())
	}
}

func TestFormatTable(t *testing.T) {
	rs := types.ResultSet{
		Term: "attention",
		Records: []types.Record{
			{
				Title:     "Attention Is All You Need",
				Authors:   "Ashish Vaswani, Noam Shazeer",
				Published: "2017-06-12T17:57:34Z",
				Link:      "http://arxiv.org/abs/1706.03762v1",
			},
		},
		OverallSummary: "one combined summary",
	}

	var buf bytes.Buffer
	FormatTable(rs, &buf)
	out := buf.String()

	for _, want := range []string{
		"Attention Is All You Need",
		"Ashish Vaswani et al.",
		"1 results for \"attention\"",
		"Overall summary:",
		"one combined summary",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatJSONRoundTrips(t *testing.T) {
	rs := types.ResultSet{
		Term:    "q",
		Records: []types.Record{{Title: "Paper", Published: "2024-01-01T00:00:00Z"}},
	}

	var buf bytes.Buffer
	if err := FormatJSON(rs, &buf); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"title": "Paper"`) {
		t.Errorf("output = %s", buf.String())
	}
}
