// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"context"
	"strings"
	"testing"

	"github.com/pdiddy/arxiv-summarizer/internal/summarize"
)

const sampleFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <title>Attention Is All You Need</title>
    <summary>We propose a new architecture based solely on attention mechanisms, dispensing with recurrence entirely.</summary>
    <published>2017-06-12T17:57:34Z</published>
    <author><name>Ashish Vaswani</name></author>
    <author><name>Noam Shazeer</name></author>
    <link rel="alternate" type="text/html" href="http://arxiv.org/abs/1706.03762v1"/>
    <link title="pdf" rel="related" href="http://arxiv.org/pdf/1706.03762v1"/>
  </entry>
  <entry>
    <title>BERT: Pre-training of Deep Bidirectional Transformers</title>
    <summary>We introduce BERT, a new language representation model.</summary>
    <published>2018-10-11T00:00:00Z</published>
    <author><name>Jacob Devlin</name></author>
    <link rel="alternate" href="http://arxiv.org/abs/1810.04805v2"/>
  </entry>
</feed>`

func TestParseFields(t *testing.T) {
	records, err := Parse(sampleFeedXML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}

	// Sorted by published descending: BERT (2018) before Attention (2017).
	r := records[0]
	if r.Title != "BERT: Pre-training of Deep Bidirectional Transformers" {
		t.Errorf("Title = %q", r.Title)
	}
	if r.Authors != "Jacob Devlin" {
		t.Errorf("Authors = %q", r.Authors)
	}
	if r.Link != "http://arxiv.org/abs/1810.04805v2" {
		t.Errorf("Link = %q", r.Link)
	}

	r = records[1]
	if r.Authors != "Ashish Vaswani, Noam Shazeer" {
		t.Errorf("Authors = %q, want comma-space-joined names in document order", r.Authors)
	}
	if r.Published != "2017-06-12T17:57:34Z" {
		t.Errorf("Published = %q", r.Published)
	}
	if r.Link != "http://arxiv.org/abs/1706.03762v1" {
		t.Errorf("Link = %q, want the alternate-relation href", r.Link)
	}
	if !strings.HasPrefix(r.Abstract, "We propose") {
		t.Errorf("Abstract = %q", r.Abstract)
	}
}

func TestParseSortsPublishedDescending(t *testing.T) {
	doc := `<feed xmlns="http://www.w3.org/2005/Atom">
  <entry><title>January</title><published>2024-01-01T00:00:00Z</published></entry>
  <entry><title>March</title><published>2024-03-01T00:00:00Z</published></entry>
  <entry><title>February</title><published>2024-02-01T00:00:00Z</published></entry>
</feed>`

	records, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []string{"March", "February", "January"}
	for i, title := range want {
		if records[i].Title != title {
			t.Errorf("records[%d].Title = %q, want %q", i, records[i].Title, title)
		}
	}
	for i := 1; i < len(records); i++ {
		if records[i-1].Published < records[i].Published {
			t.Errorf("records not sorted: [%d]=%q < [%d]=%q",
				i-1, records[i-1].Published, i, records[i].Published)
		}
	}
}

func TestParseSortIsStableAndEmptyPublishedSortsLast(t *testing.T) {
	doc := `<feed xmlns="http://www.w3.org/2005/Atom">
  <entry><title>Undated</title></entry>
  <entry><title>First tie</title><published>2024-05-01T00:00:00Z</published></entry>
  <entry><title>Second tie</title><published>2024-05-01T00:00:00Z</published></entry>
</feed>`

	records, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []string{"First tie", "Second tie", "Undated"}
	for i, title := range want {
		if records[i].Title != title {
			t.Errorf("records[%d].Title = %q, want %q", i, records[i].Title, title)
		}
	}
}

func TestParsePartialEntries(t *testing.T) {
	doc := `<feed xmlns="http://www.w3.org/2005/Atom">
  <entry><published>2024-01-01T00:00:00Z</published></entry>
</feed>`

	records, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}

	r := records[0]
	if r.Title != "" || r.Abstract != "" || r.Link != "" {
		t.Errorf("absent nodes should yield empty fields, got %+v", r)
	}
	if r.Authors != "" {
		t.Errorf("zero authors should yield empty string, got %q", r.Authors)
	}
}

func TestParseEmptyFeed(t *testing.T) {
	records, err := Parse(`<feed xmlns="http://www.w3.org/2005/Atom"></feed>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("len(records) = %d, want 0", len(records))
	}
}

func TestParseMalformedDocument(t *testing.T) {
	if _, err := Parse("<feed><entry>"); err == nil {
		t.Fatal("expected error for malformed document")
	}
}

// echoProvider marks summarized text so tests can tell it apart from passthrough.
type echoProvider struct {
	calls int
}

func (p *echoProvider) Name() string { return "echo" }

func (p *echoProvider) Summarize(_ context.Context, text string, _ summarize.Options) (string, error) {
	p.calls++
	return "summary: " + text[:20], nil
}

func TestParseAndSummarize(t *testing.T) {
	provider := &echoProvider{}
	s := summarize.New(provider, summarize.Options{})

	records, overall, err := ParseAndSummarize(context.Background(), sampleFeedXML, s)
	if err != nil {
		t.Fatalf("ParseAndSummarize: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}

	for _, r := range records {
		if !strings.HasPrefix(r.Abstract, "summary: ") {
			t.Errorf("abstract %q was not replaced by its summary", r.Abstract)
		}
	}

	// Two abstracts plus one aggregate call.
	if provider.calls != 3 {
		t.Errorf("provider calls = %d, want 3", provider.calls)
	}
	if !strings.HasPrefix(overall, "summary: ") {
		t.Errorf("overall = %q, want aggregate summary", overall)
	}
}

func TestParseAndSummarizeNoAbstracts(t *testing.T) {
	provider := &echoProvider{}
	s := summarize.New(provider, summarize.Options{})

	doc := `<feed xmlns="http://www.w3.org/2005/Atom">
  <entry><title>Only a title</title><published>2024-01-01T00:00:00Z</published></entry>
</feed>`

	_, overall, err := ParseAndSummarize(context.Background(), doc, s)
	if err != nil {
		t.Fatalf("ParseAndSummarize: %v", err)
	}
	if overall != summarize.OverallFallback {
		t.Errorf("overall = %q, want fallback %q", overall, summarize.OverallFallback)
	}
	if provider.calls != 0 {
		t.Errorf("provider calls = %d, want 0", provider.calls)
	}
}
