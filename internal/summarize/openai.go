// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"context"
	"errors"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/pdiddy/arxiv-summarizer/internal/httputil"
	"github.com/pdiddy/arxiv-summarizer/pkg/types"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAI summarizes through the OpenAI chat completion API.
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI builds the OpenAI provider. The API key comes from config or the
// OPENAI_API_KEY environment variable.
func NewOpenAI(cfg types.SummarizerConfig) (*OpenAI, error) {
	key := cfg.APIKey
	if key == "" {
		key = os.Getenv("OPENAI_API_KEY")
	}
	if key == "" {
		return nil, fmt.Errorf("openai provider requires an API key (config api_key or OPENAI_API_KEY)")
	}

	conf := openai.DefaultConfig(key)
	conf.HTTPClient = httputil.NewClient(cfg.HTTPConfig)

	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}

	return &OpenAI{client: openai.NewClientWithConfig(conf), model: model}, nil
}

// Name returns the provider identifier.
func (o *OpenAI) Name() string { return "openai" }

// Summarize requests a chat completion and uses the first choice's content.
func (o *OpenAI) Summarize(ctx context.Context, text string, opts Options) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt(text, opts),
		}},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
