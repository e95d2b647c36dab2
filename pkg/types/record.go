// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the arxiv-summarizer
// pipeline: normalized feed records, result sets, and per-stage configuration.
package types

import "time"

// Record is one normalized article entry from the arXiv Atom feed. Fields
// mirror the feed: a missing source node leaves the field empty, which is
// common and not an error.
type Record struct {
	// Title is the article title as returned by the feed.
	Title string `json:"title" yaml:"title"`

	// Abstract is the article abstract, or its summarized replacement when
	// summarization is enabled.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Authors is the comma-space-joined author display string, in document
	// order. Zero author nodes yield the empty string.
	Authors string `json:"authors" yaml:"authors"`

	// Published is the publication timestamp exactly as the feed supplied
	// it (ISO-8601 text). It is carried as a string and compared
	// lexicographically for ordering, never parsed into a date type.
	Published string `json:"published" yaml:"published"`

	// Link is the canonical article URL from the alternate-relation link
	// element, when present.
	Link string `json:"link" yaml:"link"`
}

// ResultSet holds the records of one completed search in display order
// (published descending) plus the optional overall summary computed over the
// concatenation of all raw abstracts. A ResultSet lives for a single display
// cycle and is never cached across queries.
type ResultSet struct {
	// Term is the search term the set was produced for.
	Term string `json:"term" yaml:"term"`

	// Records are the normalized entries, sorted by Published descending.
	Records []Record `json:"records" yaml:"records"`

	// OverallSummary is the summary over all abstracts. Empty when
	// summarization was not requested.
	OverallSummary string `json:"overall_summary,omitempty" yaml:"overall_summary,omitempty"`
}

// HistoryEntry is one recorded past search.
type HistoryEntry struct {
	// Term is the search term that was executed.
	Term string `json:"term" yaml:"term"`

	// MaxResults is the result-count bound the search ran with.
	MaxResults int `json:"max_results" yaml:"max_results"`

	// Results is the number of records the search actually returned.
	Results int `json:"results" yaml:"results"`

	// At is the time the search was executed.
	At time.Time `json:"at" yaml:"at"`
}
