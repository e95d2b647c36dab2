// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"context"
	"fmt"
	"os"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"

	"github.com/pdiddy/arxiv-summarizer/internal/httputil"
	"github.com/pdiddy/arxiv-summarizer/pkg/types"
)

const defaultCohereModel = "command-r"

// Cohere summarizes through the Cohere chat API.
type Cohere struct {
	client *cohereclient.Client
	model  string
}

// NewCohere builds the Cohere provider. The API key comes from config or the
// COHERE_API_KEY environment variable.
func NewCohere(cfg types.SummarizerConfig) (*Cohere, error) {
	key := cfg.APIKey
	if key == "" {
		key = os.Getenv("COHERE_API_KEY")
	}
	if key == "" {
		return nil, fmt.Errorf("cohere provider requires an API key (config api_key or COHERE_API_KEY)")
	}

	model := cfg.Model
	if model == "" {
		model = defaultCohereModel
	}

	client := cohereclient.NewClient(
		cohereclient.WithToken(key),
		cohereclient.WithHTTPClient(httputil.NewClient(cfg.HTTPConfig)),
	)
	return &Cohere{client: client, model: model}, nil
}

// Name returns the provider identifier.
func (c *Cohere) Name() string { return "cohere" }

// Summarize sends one chat turn and returns the response text.
func (c *Cohere) Summarize(ctx context.Context, text string, opts Options) (string, error) {
	model := c.model
	resp, err := c.client.Chat(ctx, &cohere.ChatRequest{
		Model:   &model,
		Message: prompt(text, opts),
	})
	if err != nil {
		return "", fmt.Errorf("cohere chat: %w", err)
	}
	return resp.Text, nil
}
