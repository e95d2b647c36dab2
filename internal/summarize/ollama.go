// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	ollama "github.com/ollama/ollama/api"

	"github.com/pdiddy/arxiv-summarizer/internal/httputil"
	"github.com/pdiddy/arxiv-summarizer/pkg/types"
)

const defaultOllamaModel = "llama3.2"

// Ollama summarizes through a locally running Ollama server.
type Ollama struct {
	client *ollama.Client
	model  string
}

// NewOllama builds the Ollama provider. Host resolution order: config,
// OLLAMA_HOST, then http://localhost:11434. Construction does not dial the
// server; the first Summarize call does.
func NewOllama(cfg types.SummarizerConfig) (*Ollama, error) {
	host := cfg.OllamaHost
	if host == "" {
		host = os.Getenv("OLLAMA_HOST")
	}
	if host == "" {
		host = "http://localhost:11434"
	}

	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host %q: %w", host, err)
	}

	model := cfg.Model
	if model == "" {
		model = defaultOllamaModel
	}

	return &Ollama{
		client: ollama.NewClient(u, httputil.NewClient(cfg.HTTPConfig)),
		model:  model,
	}, nil
}

// Name returns the provider identifier.
func (o *Ollama) Name() string { return "ollama" }

// Summarize generates the summary, accumulating the streamed response.
func (o *Ollama) Summarize(ctx context.Context, text string, opts Options) (string, error) {
	req := &ollama.GenerateRequest{
		Model:  o.model,
		Prompt: prompt(text, opts),
	}

	var out strings.Builder
	err := o.client.Generate(ctx, req, func(gr ollama.GenerateResponse) error {
		out.WriteString(gr.Response)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama generate: %w", err)
	}
	return out.String(), nil
}
