// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server renders the interactive search page and a JSON API around
// the fetch-normalize-summarize cycle. Every request re-executes the whole
// cycle from scratch; no results are cached between interactions.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/arxiv-summarizer/internal/feed"
	"github.com/pdiddy/arxiv-summarizer/internal/history"
	"github.com/pdiddy/arxiv-summarizer/internal/summarize"
	"github.com/pdiddy/arxiv-summarizer/pkg/types"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Fetcher fetches one raw feed document. *feed.Client implements it.
type Fetcher interface {
	Fetch(ctx context.Context, term string, start, maxResults int) (string, error)
}

// SummarizerFunc supplies the summarizer on demand so the model instance can
// be initialized lazily on first use.
type SummarizerFunc func() (*summarize.Summarizer, error)

// Server wires the feed client, summarizer, and history store behind HTTP
// handlers.
type Server struct {
	fetcher    Fetcher
	summarizer SummarizerFunc
	hist       *history.Store // nil disables history
}

// New builds a Server. hist may be nil to disable search history.
func New(fetcher Fetcher, summarizer SummarizerFunc, hist *history.Store) *Server {
	return &Server{fetcher: fetcher, summarizer: summarizer, hist: hist}
}

// Router constructs the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.tmpl")))

	r.GET("/", s.handleIndex)
	r.GET("/api/search", s.handleSearchAPI)
	r.GET("/healthz", s.handleHealth)
	return r
}

// pageData feeds the index template.
type pageData struct {
	Term      string
	Count     int
	Summarize bool
	Result    *types.ResultSet
	Error     string
	Warning   string
	History   []types.HistoryEntry
}

func (s *Server) handleIndex(c *gin.Context) {
	data := pageData{
		Term:      c.Query("q"),
		Count:     parseCount(c.Query("n")),
		Summarize: c.Query("summarize") == "on",
	}

	if data.Term != "" {
		rs, err := s.runSearch(c.Request.Context(), data.Term, data.Count, data.Summarize)
		switch {
		case err != nil:
			data.Error = err.Error()
		case len(rs.Records) == 0:
			data.Warning = "No results found. Try a different search term."
		default:
			data.Result = &rs
		}
	}

	if s.hist != nil {
		entries, err := s.hist.Recent(c.Request.Context())
		if err == nil {
			data.History = entries
		}
	}

	c.HTML(http.StatusOK, "index.html.tmpl", data)
}

func (s *Server) handleSearchAPI(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter q"})
		return
	}
	count := parseCount(c.Query("max_results"))
	summarizeOn := c.Query("summarize") == "true" || c.Query("summarize") == "on"

	rs, err := s.runSearch(c.Request.Context(), term, count, summarizeOn)
	if err != nil {
		var fe *feed.FetchError
		if errors.As(err, &fe) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rs)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// runSearch executes one fetch-normalize-summarize cycle and records it in
// the history store.
func (s *Server) runSearch(ctx context.Context, term string, count int, summarizeOn bool) (types.ResultSet, error) {
	doc, err := s.fetcher.Fetch(ctx, term, 0, count)
	if err != nil {
		return types.ResultSet{}, err
	}

	rs := types.ResultSet{Term: term}
	if summarizeOn {
		sum, err := s.summarizer()
		if err != nil {
			return types.ResultSet{}, fmt.Errorf("initializing summarizer: %w", err)
		}
		rs.Records, rs.OverallSummary, err = feed.ParseAndSummarize(ctx, doc, sum)
		if err != nil {
			return types.ResultSet{}, err
		}
	} else {
		if rs.Records, err = feed.Parse(doc); err != nil {
			return types.ResultSet{}, err
		}
	}

	if s.hist != nil {
		if err := s.hist.Record(ctx, term, count, len(rs.Records)); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not record search: %v\n", err)
		}
	}
	return rs, nil
}

func parseCount(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return feed.DefaultMaxResults
	}
	if n > feed.MaxResultsCap {
		return feed.MaxResultsCap
	}
	return n
}
