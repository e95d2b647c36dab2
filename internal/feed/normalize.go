// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"context"
	"encoding/xml"
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/arxiv-summarizer/internal/summarize"
	"github.com/pdiddy/arxiv-summarizer/pkg/types"
)

// arXiv Atom feed XML structures.
type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	Title     string       `xml:"title"`
	Summary   string       `xml:"summary"`
	Published string       `xml:"published"`
	Authors   []atomAuthor `xml:"author"`
	Links     []atomLink   `xml:"link"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

type atomLink struct {
	Rel  string `xml:"rel,attr"`
	Href string `xml:"href,attr"`
}

// Parse decodes an arXiv Atom document into records sorted by publication
// timestamp, descending. Each entry yields one record; absent nodes leave the
// corresponding field empty rather than failing the entry. A structurally
// invalid document is an error.
func Parse(doc string) ([]types.Record, error) {
	entries, err := decode(doc)
	if err != nil {
		return nil, err
	}

	records := make([]types.Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, newRecord(e))
	}
	sortByPublished(records)
	return records, nil
}

// ParseAndSummarize decodes the document like Parse, then replaces each
// record's abstract with its summarized version and computes one more summary
// over the space-joined aggregate of all raw abstracts. When no entry had an
// abstract the overall summary is the fixed fallback message.
func ParseAndSummarize(ctx context.Context, doc string, s *summarize.Summarizer) ([]types.Record, string, error) {
	entries, err := decode(doc)
	if err != nil {
		return nil, "", err
	}

	records := make([]types.Record, 0, len(entries))
	var abstracts []string
	for _, e := range entries {
		r := newRecord(e)
		if r.Abstract != "" {
			abstracts = append(abstracts, r.Abstract)
			if r.Abstract, err = s.Text(ctx, r.Abstract); err != nil {
				return nil, "", err
			}
		}
		records = append(records, r)
	}

	overall, err := s.Overall(ctx, strings.Join(abstracts, " "))
	if err != nil {
		return nil, "", err
	}

	sortByPublished(records)
	return records, overall, nil
}

func decode(doc string) ([]atomEntry, error) {
	var f atomFeed
	if err := xml.Unmarshal([]byte(doc), &f); err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}
	return f.Entries, nil
}

func newRecord(e atomEntry) types.Record {
	names := make([]string, 0, len(e.Authors))
	for _, a := range e.Authors {
		names = append(names, strings.TrimSpace(a.Name))
	}

	return types.Record{
		Title:     strings.TrimSpace(e.Title),
		Abstract:  strings.TrimSpace(e.Summary),
		Authors:   strings.Join(names, ", "),
		Published: strings.TrimSpace(e.Published),
		Link:      alternateLink(e.Links),
	}
}

// alternateLink returns the href of the first alternate-relation link.
func alternateLink(links []atomLink) string {
	for _, l := range links {
		if l.Rel == "alternate" {
			return l.Href
		}
	}
	return ""
}

// sortByPublished orders records by publication timestamp, descending. The
// timestamps are ISO-8601 text, so lexicographic comparison matches
// chronological order. The sort is stable: ties keep feed order, and records
// with no timestamp sort last.
func sortByPublished(records []types.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].Published, records[j].Published
		if a == "" || b == "" {
			return a != "" && b == ""
		}
		return a > b
	})
}
